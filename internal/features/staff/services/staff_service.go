package staff_services

import (
	"errors"
	"fmt"

	"casterdesk-backend/internal/features/audit_logs"
	"casterdesk-backend/internal/features/realtime"
	spaces_services "casterdesk-backend/internal/features/spaces/services"
	staff_dto "casterdesk-backend/internal/features/staff/dto"
	staff_models "casterdesk-backend/internal/features/staff/models"
	staff_repositories "casterdesk-backend/internal/features/staff/repositories"
	users_models "casterdesk-backend/internal/features/users/models"

	"github.com/google/uuid"
)

var ErrStaffMemberNotFound = errors.New("staff member not found")

type StaffService struct {
	staffRepository *staff_repositories.StaffRepository
	spaceService    *spaces_services.SpaceService
	auditLogService *audit_logs.AuditLogService
	hub             *realtime.Hub
}

func (s *StaffService) CreateStaffMember(
	spaceID uuid.UUID,
	request *staff_dto.CreateStaffMemberRequestDTO,
	user *users_models.User,
) (*staff_models.StaffMember, error) {
	canManage, err := s.spaceService.CanUserManageSpace(spaceID, user)
	if err != nil {
		return nil, err
	}
	if !canManage {
		return nil, errors.New("insufficient permissions to manage staff")
	}

	member := &staff_models.StaffMember{
		SpaceID:   spaceID,
		Name:      request.Name,
		Email:     request.Email,
		Role:      request.Role,
		AvatarURL: request.AvatarURL,
	}

	if err := member.Validate(); err != nil {
		return nil, err
	}

	if err := s.staffRepository.CreateStaffMember(member); err != nil {
		return nil, fmt.Errorf("failed to create staff member: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Staff member added: %s (%s)", member.Name, member.Role),
		&user.ID,
		&spaceID,
	)
	s.hub.Publish(spaceID, "staff_members")

	return member, nil
}

func (s *StaffService) GetStaffMember(
	memberID uuid.UUID,
	user *users_models.User,
) (*staff_models.StaffMember, error) {
	member, err := s.staffRepository.GetStaffMemberByID(memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	if member == nil {
		return nil, ErrStaffMemberNotFound
	}

	canView, _, err := s.spaceService.CanUserAccessSpace(member.SpaceID, user)
	if err != nil {
		return nil, err
	}
	if !canView {
		return nil, errors.New("insufficient permissions to view staff")
	}

	return member, nil
}

// GetSpaceStaff lists a space's staff, optionally filtered to a single
// role. Calendar and leaderboard views pass the role they display.
func (s *StaffService) GetSpaceStaff(
	spaceID uuid.UUID,
	role *staff_models.StaffRole,
	user *users_models.User,
) (*staff_dto.ListStaffResponseDTO, error) {
	canView, _, err := s.spaceService.CanUserAccessSpace(spaceID, user)
	if err != nil {
		return nil, err
	}
	if !canView {
		return nil, errors.New("insufficient permissions to view staff")
	}

	var members []staff_models.StaffMember
	if role != nil {
		if !role.IsValid() {
			return nil, errors.New("staff member role must be caster or observer")
		}

		members, err = s.staffRepository.GetStaffForSpaceByRole(spaceID, *role)
	} else {
		members, err = s.staffRepository.GetStaffForSpace(spaceID)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get staff: %w", err)
	}

	return &staff_dto.ListStaffResponseDTO{
		Staff: members,
	}, nil
}

func (s *StaffService) UpdateStaffMember(
	memberID uuid.UUID,
	request *staff_dto.UpdateStaffMemberRequestDTO,
	user *users_models.User,
) (*staff_models.StaffMember, error) {
	member, err := s.staffRepository.GetStaffMemberByID(memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	if member == nil {
		return nil, ErrStaffMemberNotFound
	}

	canManage, err := s.spaceService.CanUserManageSpace(member.SpaceID, user)
	if err != nil {
		return nil, err
	}
	if !canManage {
		return nil, errors.New("insufficient permissions to manage staff")
	}

	member.Name = request.Name
	member.Email = request.Email
	member.Role = request.Role
	member.AvatarURL = request.AvatarURL

	if err := member.Validate(); err != nil {
		return nil, err
	}

	if err := s.staffRepository.UpdateStaffMember(member); err != nil {
		return nil, fmt.Errorf("failed to update staff member: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Staff member updated: %s", member.Name),
		&user.ID,
		&member.SpaceID,
	)
	s.hub.Publish(member.SpaceID, "staff_members")

	return member, nil
}

func (s *StaffService) DeleteStaffMember(
	memberID uuid.UUID,
	user *users_models.User,
) error {
	member, err := s.staffRepository.GetStaffMemberByID(memberID)
	if err != nil {
		return fmt.Errorf("failed to get staff member: %w", err)
	}
	if member == nil {
		return ErrStaffMemberNotFound
	}

	canManage, err := s.spaceService.CanUserManageSpace(member.SpaceID, user)
	if err != nil {
		return err
	}
	if !canManage {
		return errors.New("insufficient permissions to manage staff")
	}

	if err := s.staffRepository.DeleteStaffMember(memberID); err != nil {
		return fmt.Errorf("failed to delete staff member: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Staff member removed: %s", member.Name),
		&user.ID,
		&member.SpaceID,
	)
	s.hub.Publish(member.SpaceID, "staff_members")

	return nil
}

func (s *StaffService) GetStaffMemberByID(
	memberID uuid.UUID,
) (*staff_models.StaffMember, error) {
	return s.staffRepository.GetStaffMemberByID(memberID)
}

func (s *StaffService) OnBeforeSpaceDeletion(spaceID uuid.UUID) error {
	return s.staffRepository.RemoveAllForSpace(spaceID)
}
