package streams_services

import (
	"casterdesk-backend/internal/features/audit_logs"
	credits_services "casterdesk-backend/internal/features/credits/services"
	"casterdesk-backend/internal/features/realtime"
	spaces_services "casterdesk-backend/internal/features/spaces/services"
	staff_services "casterdesk-backend/internal/features/staff/services"
	streams_repositories "casterdesk-backend/internal/features/streams/repositories"
	"casterdesk-backend/internal/util/logger"
)

var streamRepository = &streams_repositories.StreamRepository{}
var assignmentRepository = &streams_repositories.AssignmentRepository{}
var rsvpRepository = &streams_repositories.RSVPRepository{}

var streamService = &StreamService{
	streamRepository:     streamRepository,
	assignmentRepository: assignmentRepository,
	rsvpRepository:       rsvpRepository,
	staffService:         staff_services.GetStaffService(),
	spaceService:         spaces_services.GetSpaceService(),
	ledgerService:        credits_services.GetLedgerService(),
	auditLogService:      audit_logs.GetAuditLogService(),
	hub:                  realtime.GetHub(),
	logger:               logger.GetLogger(),
}

func GetStreamService() *StreamService {
	return streamService
}

func SetupDependencies() {
	spaces_services.GetSpaceService().AddSpaceDeletionListener(streamService)
}
