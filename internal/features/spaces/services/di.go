package spaces_services

import (
	"casterdesk-backend/internal/features/audit_logs"
	"casterdesk-backend/internal/features/realtime"
	spaces_repositories "casterdesk-backend/internal/features/spaces/repositories"
)

var spaceRepository = &spaces_repositories.SpaceRepository{}
var membershipRepository = &spaces_repositories.MembershipRepository{}
var joinRequestRepository = &spaces_repositories.JoinRequestRepository{}

var spaceService = &SpaceService{
	spaceRepository:      spaceRepository,
	membershipRepository: membershipRepository,
	auditLogService:      audit_logs.GetAuditLogService(),
	hub:                  realtime.GetHub(),
}

var membershipService = &MembershipService{
	membershipRepository: membershipRepository,
	spaceService:         spaceService,
	auditLogService:      audit_logs.GetAuditLogService(),
	hub:                  realtime.GetHub(),
}

var joinRequestService = &JoinRequestService{
	joinRequestRepository: joinRequestRepository,
	membershipRepository:  membershipRepository,
	spaceService:          spaceService,
	auditLogService:       audit_logs.GetAuditLogService(),
	hub:                   realtime.GetHub(),
}

func GetSpaceService() *SpaceService {
	return spaceService
}

func GetMembershipService() *MembershipService {
	return membershipService
}

func GetJoinRequestService() *JoinRequestService {
	return joinRequestService
}
