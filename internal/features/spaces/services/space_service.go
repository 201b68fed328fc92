package spaces_services

import (
	"errors"
	"fmt"
	"time"

	"casterdesk-backend/internal/features/audit_logs"
	"casterdesk-backend/internal/features/realtime"
	spaces_dto "casterdesk-backend/internal/features/spaces/dto"
	spaces_interfaces "casterdesk-backend/internal/features/spaces/interfaces"
	spaces_models "casterdesk-backend/internal/features/spaces/models"
	spaces_repositories "casterdesk-backend/internal/features/spaces/repositories"
	users_enums "casterdesk-backend/internal/features/users/enums"
	users_models "casterdesk-backend/internal/features/users/models"

	"github.com/google/uuid"
)

type SpaceService struct {
	spaceRepository        *spaces_repositories.SpaceRepository
	membershipRepository   *spaces_repositories.MembershipRepository
	auditLogService        *audit_logs.AuditLogService
	hub                    *realtime.Hub
	spaceDeletionListeners []spaces_interfaces.SpaceDeletionListener
}

func (s *SpaceService) AddSpaceDeletionListener(
	listener spaces_interfaces.SpaceDeletionListener,
) {
	s.spaceDeletionListeners = append(s.spaceDeletionListeners, listener)
}

func (s *SpaceService) CreateSpace(
	request *spaces_dto.CreateSpaceRequestDTO,
	creator *users_models.User,
) (*spaces_dto.SpaceResponseDTO, error) {
	space := &spaces_models.Space{
		ID:          uuid.New(),
		Name:        request.Name,
		Description: request.Description,
		IsPublic:    request.IsPublic,
		OwnerID:     creator.ID,
		CreatedAt:   time.Now().UTC(),
		UpdatedAt:   time.Now().UTC(),
	}

	if err := space.Validate(); err != nil {
		return nil, err
	}

	if err := s.spaceRepository.CreateSpace(space); err != nil {
		return nil, fmt.Errorf("failed to create space: %w", err)
	}

	membership := &spaces_models.SpaceMembership{
		UserID:  creator.ID,
		SpaceID: space.ID,
		Role:    users_enums.SpaceRoleOwner,
		Status:  spaces_models.MembershipStatusApproved,
	}

	if err := s.membershipRepository.CreateMembership(membership); err != nil {
		return nil, fmt.Errorf("failed to create space membership: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Space created: %s", space.Name),
		&creator.ID,
		&space.ID,
	)
	s.hub.Publish(space.ID, "spaces")

	ownerRole := users_enums.SpaceRoleOwner
	return &spaces_dto.SpaceResponseDTO{
		ID:          space.ID,
		Name:        space.Name,
		Description: space.Description,
		IsPublic:    space.IsPublic,
		OwnerID:     space.OwnerID,
		CreatedAt:   space.CreatedAt,
		UserRole:    &ownerRole,
	}, nil
}

func (s *SpaceService) GetSpace(
	spaceID uuid.UUID,
	user *users_models.User,
) (*spaces_models.Space, error) {
	canView, _, err := s.CanUserAccessSpace(spaceID, user)
	if err != nil {
		return nil, err
	}
	if !canView {
		return nil, errors.New("insufficient permissions to view space")
	}

	return s.spaceRepository.GetSpaceByID(spaceID)
}

func (s *SpaceService) GetUserSpaces(
	user *users_models.User,
) (*spaces_dto.ListSpacesResponseDTO, error) {
	spaces, err := s.membershipRepository.GetSpacesWithRolesByUserID(user.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get user spaces: %w", err)
	}

	return &spaces_dto.ListSpacesResponseDTO{
		Spaces: spaces,
	}, nil
}

func (s *SpaceService) GetPublicSpaces() (*spaces_dto.ListPublicSpacesResponseDTO, error) {
	spaces, err := s.spaceRepository.GetPublicSpaces()
	if err != nil {
		return nil, fmt.Errorf("failed to get public spaces: %w", err)
	}

	return &spaces_dto.ListPublicSpacesResponseDTO{
		Spaces: spaces,
	}, nil
}

func (s *SpaceService) UpdateSpace(
	spaceID uuid.UUID,
	updateDTO *spaces_models.Space,
	user *users_models.User,
) (*spaces_models.Space, error) {
	canManage, err := s.CanUserManageSpace(spaceID, user)
	if err != nil {
		return nil, err
	}
	if !canManage {
		return nil, errors.New("insufficient permissions to update space")
	}

	existingSpace, err := s.spaceRepository.GetSpaceByID(spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get space: %w", err)
	}

	existingSpace.UpdateFromDTO(updateDTO)

	if err := existingSpace.Validate(); err != nil {
		return nil, err
	}

	if err := s.spaceRepository.UpdateSpace(existingSpace); err != nil {
		return nil, fmt.Errorf("failed to update space: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Space updated: %s", existingSpace.Name),
		&user.ID,
		&spaceID,
	)
	s.hub.Publish(spaceID, "spaces")

	return existingSpace, nil
}

func (s *SpaceService) DeleteSpace(spaceID uuid.UUID, user *users_models.User) error {
	if !user.IsInstanceAdmin() {
		userRole, err := s.membershipRepository.GetUserSpaceRole(spaceID, user.ID)
		if err != nil {
			return fmt.Errorf("failed to get user role: %w", err)
		}

		if userRole == nil || *userRole != users_enums.SpaceRoleOwner {
			return errors.New("only space owner can delete space")
		}
	}

	space, err := s.spaceRepository.GetSpaceByID(spaceID)
	if err != nil {
		return fmt.Errorf("failed to get space: %w", err)
	}

	for _, listener := range s.spaceDeletionListeners {
		if err := listener.OnBeforeSpaceDeletion(spaceID); err != nil {
			return fmt.Errorf("failed to delete space: %w", err)
		}
	}

	if err := s.membershipRepository.RemoveAllForSpace(spaceID); err != nil {
		return fmt.Errorf("failed to remove space memberships: %w", err)
	}

	if err := s.spaceRepository.DeleteSpace(spaceID); err != nil {
		return fmt.Errorf("failed to delete space: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Space deleted: %s", space.Name),
		&user.ID,
		&spaceID,
	)
	s.hub.Publish(spaceID, "spaces")

	return nil
}

func (s *SpaceService) GetUserSpaceRole(
	spaceID uuid.UUID,
	userID uuid.UUID,
) (*users_enums.SpaceRole, error) {
	return s.membershipRepository.GetUserSpaceRole(spaceID, userID)
}

func (s *SpaceService) CanUserAccessSpace(
	spaceID uuid.UUID,
	user *users_models.User,
) (bool, *users_enums.SpaceRole, error) {
	if user.IsInstanceAdmin() {
		adminRole := users_enums.SpaceRoleOwner
		return true, &adminRole, nil
	}

	role, err := s.membershipRepository.GetUserSpaceRole(spaceID, user.ID)
	if err != nil {
		return false, nil, err
	}

	return role != nil, role, nil
}

func (s *SpaceService) CanUserManageSpace(
	spaceID uuid.UUID,
	user *users_models.User,
) (bool, error) {
	if user.IsInstanceAdmin() {
		return true, nil
	}

	role, err := s.membershipRepository.GetUserSpaceRole(spaceID, user.ID)
	if err != nil {
		return false, err
	}

	if role == nil {
		return false, nil
	}

	return *role == users_enums.SpaceRoleOwner || *role == users_enums.SpaceRoleAdmin, nil
}

func (s *SpaceService) GetSpaceAuditLogs(
	spaceID uuid.UUID,
	user *users_models.User,
	request *audit_logs.GetAuditLogsRequest,
) (*audit_logs.GetAuditLogsResponse, error) {
	canView, _, err := s.CanUserAccessSpace(spaceID, user)
	if err != nil {
		return nil, err
	}
	if !canView {
		return nil, errors.New("insufficient permissions to view space audit logs")
	}

	return s.auditLogService.GetSpaceAuditLogs(spaceID, request)
}

func (s *SpaceService) GetSpaceByID(spaceID uuid.UUID) (*spaces_models.Space, error) {
	return s.spaceRepository.GetSpaceByID(spaceID)
}
