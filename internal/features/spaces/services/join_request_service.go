package spaces_services

import (
	"errors"
	"fmt"
	"time"

	"casterdesk-backend/internal/features/audit_logs"
	"casterdesk-backend/internal/features/realtime"
	spaces_dto "casterdesk-backend/internal/features/spaces/dto"
	spaces_models "casterdesk-backend/internal/features/spaces/models"
	spaces_repositories "casterdesk-backend/internal/features/spaces/repositories"
	users_models "casterdesk-backend/internal/features/users/models"

	"github.com/google/uuid"
)

var (
	ErrAlreadyMember       = errors.New("user is already a member of this space")
	ErrRequestPending      = errors.New("a join request for this space is already pending")
	ErrRejectionCooldown   = errors.New("a rejected request must wait 7 days before reapplying")
	ErrSpaceNotJoinable    = errors.New("space does not accept join requests")
	ErrRequestNotPending   = errors.New("join request is not pending")
	ErrRoleNotAssignable   = errors.New("role is not assignable")
	ErrJoinRequestNotFound = errors.New("join request not found")
)

type JoinRequestService struct {
	joinRequestRepository *spaces_repositories.JoinRequestRepository
	membershipRepository  *spaces_repositories.MembershipRepository
	spaceService          *SpaceService
	auditLogService       *audit_logs.AuditLogService
	hub                   *realtime.Hub
}

// RequestToJoin files a join request for a public space. A previous
// request still gates the new one: pending blocks outright, rejected
// blocks until the cool-down elapses, and approved only blocks while
// the resulting membership still exists.
func (s *JoinRequestService) RequestToJoin(
	spaceID uuid.UUID,
	request *spaces_dto.CreateJoinRequestDTO,
	user *users_models.User,
) (*spaces_models.JoinRequest, error) {
	space, err := s.spaceService.GetSpaceByID(spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get space: %w", err)
	}

	if !space.IsPublic {
		return nil, ErrSpaceNotJoinable
	}

	membership, err := s.membershipRepository.GetMembershipByUserAndSpace(user.ID, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}
	if membership != nil && membership.Status == spaces_models.MembershipStatusApproved {
		return nil, ErrAlreadyMember
	}

	lastRequest, err := s.joinRequestRepository.GetJoinRequestByUserAndSpace(user.ID, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get join request: %w", err)
	}

	if lastRequest != nil {
		switch lastRequest.Status {
		case spaces_models.JoinRequestStatusPending:
			return nil, ErrRequestPending
		case spaces_models.JoinRequestStatusRejected:
			if !lastRequest.IsReapplyEligible(time.Now().UTC()) {
				return nil, ErrRejectionCooldown
			}
		case spaces_models.JoinRequestStatusApproved:
			// Membership was removed after approval, so a fresh request
			// is allowed.
		}
	}

	if request.Role != nil && !request.Role.IsAssignable() {
		return nil, ErrRoleNotAssignable
	}

	joinRequest := &spaces_models.JoinRequest{
		SpaceID: spaceID,
		UserID:  user.ID,
		Message: request.Message,
		Role:    request.Role,
		Status:  spaces_models.JoinRequestStatusPending,
	}

	if err := s.joinRequestRepository.CreateJoinRequest(joinRequest); err != nil {
		return nil, fmt.Errorf("failed to create join request: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Join request filed by %s", user.Email),
		&user.ID,
		&spaceID,
	)
	s.hub.Publish(spaceID, "join_requests")

	return joinRequest, nil
}

func (s *JoinRequestService) GetPendingRequests(
	spaceID uuid.UUID,
	user *users_models.User,
) (*spaces_dto.ListJoinRequestsResponseDTO, error) {
	canManage, err := s.spaceService.CanUserManageSpace(spaceID, user)
	if err != nil {
		return nil, err
	}
	if !canManage {
		return nil, errors.New("insufficient permissions to view join requests")
	}

	requests, err := s.joinRequestRepository.GetPendingRequestsForSpace(spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get join requests: %w", err)
	}

	return &spaces_dto.ListJoinRequestsResponseDTO{
		JoinRequests: requests,
	}, nil
}

// GetMyRequestStatus reports the caller's latest request for a space,
// or nothing when the latest request no longer gates a new one. An
// approved request whose membership has since been removed, and a
// rejection older than the cool-down, both read back as no request at
// all; RequestToJoin would accept immediately in either state.
func (s *JoinRequestService) GetMyRequestStatus(
	spaceID uuid.UUID,
	user *users_models.User,
) (*spaces_models.JoinRequest, error) {
	request, err := s.joinRequestRepository.GetJoinRequestByUserAndSpace(user.ID, spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get join request: %w", err)
	}
	if request == nil {
		return nil, nil
	}

	switch request.Status {
	case spaces_models.JoinRequestStatusApproved:
		membership, err := s.membershipRepository.GetMembershipByUserAndSpace(user.ID, spaceID)
		if err != nil {
			return nil, fmt.Errorf("failed to get membership: %w", err)
		}

		if membership == nil {
			return nil, nil
		}
	case spaces_models.JoinRequestStatusRejected:
		if request.IsReapplyEligible(time.Now().UTC()) {
			return nil, nil
		}
	}

	return request, nil
}

func (s *JoinRequestService) ApproveRequest(
	requestID uuid.UUID,
	approval *spaces_dto.ApproveJoinRequestDTO,
	actor *users_models.User,
) error {
	request, err := s.joinRequestRepository.GetJoinRequestByID(requestID)
	if err != nil {
		return fmt.Errorf("failed to get join request: %w", err)
	}
	if request == nil {
		return ErrJoinRequestNotFound
	}

	canManage, err := s.spaceService.CanUserManageSpace(request.SpaceID, actor)
	if err != nil {
		return err
	}
	if !canManage {
		return errors.New("insufficient permissions to approve join requests")
	}

	if request.Status != spaces_models.JoinRequestStatusPending {
		return ErrRequestNotPending
	}

	if !approval.Role.IsAssignable() {
		return ErrRoleNotAssignable
	}

	membership := &spaces_models.SpaceMembership{
		SpaceID: request.SpaceID,
		UserID:  request.UserID,
		Role:    approval.Role,
		Status:  spaces_models.MembershipStatusApproved,
	}

	if err := s.membershipRepository.CreateMembership(membership); err != nil {
		return fmt.Errorf("failed to create membership: %w", err)
	}

	request.Status = spaces_models.JoinRequestStatusApproved
	if err := s.joinRequestRepository.UpdateJoinRequest(request); err != nil {
		return fmt.Errorf("failed to update join request: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Join request approved with role %s", approval.Role),
		&actor.ID,
		&request.SpaceID,
	)
	s.hub.Publish(request.SpaceID, "join_requests")
	s.hub.Publish(request.SpaceID, "space_memberships")

	return nil
}

func (s *JoinRequestService) RejectRequest(
	requestID uuid.UUID,
	actor *users_models.User,
) error {
	request, err := s.joinRequestRepository.GetJoinRequestByID(requestID)
	if err != nil {
		return fmt.Errorf("failed to get join request: %w", err)
	}
	if request == nil {
		return ErrJoinRequestNotFound
	}

	canManage, err := s.spaceService.CanUserManageSpace(request.SpaceID, actor)
	if err != nil {
		return err
	}
	if !canManage {
		return errors.New("insufficient permissions to reject join requests")
	}

	if request.Status != spaces_models.JoinRequestStatusPending {
		return ErrRequestNotPending
	}

	request.Status = spaces_models.JoinRequestStatusRejected
	if err := s.joinRequestRepository.UpdateJoinRequest(request); err != nil {
		return fmt.Errorf("failed to update join request: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		"Join request rejected",
		&actor.ID,
		&request.SpaceID,
	)
	s.hub.Publish(request.SpaceID, "join_requests")

	return nil
}
