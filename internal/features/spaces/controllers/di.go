package spaces_controllers

import (
	spaces_services "casterdesk-backend/internal/features/spaces/services"
)

var spaceController = &SpaceController{
	spaceService: spaces_services.GetSpaceService(),
}

var membershipController = &MembershipController{
	membershipService: spaces_services.GetMembershipService(),
}

var joinRequestController = &JoinRequestController{
	joinRequestService: spaces_services.GetJoinRequestService(),
}

func GetSpaceController() *SpaceController {
	return spaceController
}

func GetMembershipController() *MembershipController {
	return membershipController
}

func GetJoinRequestController() *JoinRequestController {
	return joinRequestController
}
