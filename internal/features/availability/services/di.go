package availability_services

import (
	"casterdesk-backend/internal/features/audit_logs"
	availability_repositories "casterdesk-backend/internal/features/availability/repositories"
	"casterdesk-backend/internal/features/realtime"
	spaces_services "casterdesk-backend/internal/features/spaces/services"
	staff_services "casterdesk-backend/internal/features/staff/services"
)

var availabilityRepository = &availability_repositories.AvailabilityRepository{}

var availabilityService = &AvailabilityService{
	availabilityRepository: availabilityRepository,
	staffService:           staff_services.GetStaffService(),
	spaceService:           spaces_services.GetSpaceService(),
	auditLogService:        audit_logs.GetAuditLogService(),
	hub:                    realtime.GetHub(),
}

func GetAvailabilityService() *AvailabilityService {
	return availabilityService
}

func SetupDependencies() {
	spaces_services.GetSpaceService().AddSpaceDeletionListener(availabilityService)
}
