package credits_services

import (
	"casterdesk-backend/internal/features/audit_logs"
	credits_repositories "casterdesk-backend/internal/features/credits/repositories"
	"casterdesk-backend/internal/features/realtime"
	spaces_services "casterdesk-backend/internal/features/spaces/services"
	staff_services "casterdesk-backend/internal/features/staff/services"
)

var creditRepository = &credits_repositories.CreditRepository{}

var ledgerService = &LedgerService{
	creditRepository: creditRepository,
	staffService:     staff_services.GetStaffService(),
	spaceService:     spaces_services.GetSpaceService(),
	auditLogService:  audit_logs.GetAuditLogService(),
	hub:              realtime.GetHub(),
}

func GetLedgerService() *LedgerService {
	return ledgerService
}

func SetupDependencies() {
	spaces_services.GetSpaceService().AddSpaceDeletionListener(ledgerService)
}
