package spaces_services

import (
	"errors"
	"fmt"

	"casterdesk-backend/internal/features/audit_logs"
	"casterdesk-backend/internal/features/realtime"
	spaces_dto "casterdesk-backend/internal/features/spaces/dto"
	spaces_repositories "casterdesk-backend/internal/features/spaces/repositories"
	users_enums "casterdesk-backend/internal/features/users/enums"
	users_models "casterdesk-backend/internal/features/users/models"

	"github.com/google/uuid"
)

type MembershipService struct {
	membershipRepository *spaces_repositories.MembershipRepository
	spaceService         *SpaceService
	auditLogService      *audit_logs.AuditLogService
	hub                  *realtime.Hub
}

func (s *MembershipService) GetSpaceMembers(
	spaceID uuid.UUID,
	user *users_models.User,
) (*spaces_dto.GetMembersResponseDTO, error) {
	canView, _, err := s.spaceService.CanUserAccessSpace(spaceID, user)
	if err != nil {
		return nil, err
	}
	if !canView {
		return nil, errors.New("insufficient permissions to view space members")
	}

	members, err := s.membershipRepository.GetSpaceMembers(spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get space members: %w", err)
	}

	return &spaces_dto.GetMembersResponseDTO{
		Members: members,
	}, nil
}

func (s *MembershipService) ChangeMemberRole(
	spaceID uuid.UUID,
	memberUserID uuid.UUID,
	newRole users_enums.SpaceRole,
	actor *users_models.User,
) error {
	canManage, err := s.spaceService.CanUserManageSpace(spaceID, actor)
	if err != nil {
		return err
	}
	if !canManage {
		return errors.New("insufficient permissions to change member roles")
	}

	if !newRole.IsAssignable() {
		return errors.New("role is not assignable")
	}

	membership, err := s.membershipRepository.GetMembershipByUserAndSpace(memberUserID, spaceID)
	if err != nil {
		return fmt.Errorf("failed to get membership: %w", err)
	}
	if membership == nil {
		return errors.New("member not found")
	}

	if membership.Role == users_enums.SpaceRoleOwner {
		return errors.New("cannot change role of space owner")
	}

	if err := s.membershipRepository.UpdateMemberRole(memberUserID, spaceID, newRole); err != nil {
		return fmt.Errorf("failed to update member role: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Member role changed to %s", newRole),
		&actor.ID,
		&spaceID,
	)
	s.hub.Publish(spaceID, "space_memberships")

	return nil
}

func (s *MembershipService) RemoveMember(
	spaceID uuid.UUID,
	memberUserID uuid.UUID,
	actor *users_models.User,
) error {
	// Members may always leave a space on their own.
	isSelf := actor.ID == memberUserID

	if !isSelf {
		canManage, err := s.spaceService.CanUserManageSpace(spaceID, actor)
		if err != nil {
			return err
		}
		if !canManage {
			return errors.New("insufficient permissions to remove members")
		}
	}

	membership, err := s.membershipRepository.GetMembershipByUserAndSpace(memberUserID, spaceID)
	if err != nil {
		return fmt.Errorf("failed to get membership: %w", err)
	}
	if membership == nil {
		return errors.New("member not found")
	}

	if membership.Role == users_enums.SpaceRoleOwner {
		return errors.New("cannot remove space owner")
	}

	if err := s.membershipRepository.RemoveMember(memberUserID, spaceID); err != nil {
		return fmt.Errorf("failed to remove member: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		"Member removed from space",
		&actor.ID,
		&spaceID,
	)
	s.hub.Publish(spaceID, "space_memberships")

	return nil
}
