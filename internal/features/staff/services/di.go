package staff_services

import (
	"casterdesk-backend/internal/features/audit_logs"
	"casterdesk-backend/internal/features/realtime"
	spaces_services "casterdesk-backend/internal/features/spaces/services"
	staff_repositories "casterdesk-backend/internal/features/staff/repositories"
)

var staffRepository = &staff_repositories.StaffRepository{}

var staffService = &StaffService{
	staffRepository: staffRepository,
	spaceService:    spaces_services.GetSpaceService(),
	auditLogService: audit_logs.GetAuditLogService(),
	hub:             realtime.GetHub(),
}

func GetStaffService() *StaffService {
	return staffService
}

func SetupDependencies() {
	spaces_services.GetSpaceService().AddSpaceDeletionListener(staffService)
}
