package spaces_repositories

import (
	"errors"
	"time"

	spaces_dto "casterdesk-backend/internal/features/spaces/dto"
	spaces_models "casterdesk-backend/internal/features/spaces/models"
	"casterdesk-backend/internal/storage"
	users_enums "casterdesk-backend/internal/features/users/enums"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MembershipRepository struct{}

func (r *MembershipRepository) CreateMembership(
	membership *spaces_models.SpaceMembership,
) error {
	if membership.ID == uuid.Nil {
		membership.ID = uuid.New()
	}

	if membership.CreatedAt.IsZero() {
		membership.CreatedAt = time.Now().UTC()
		membership.UpdatedAt = membership.CreatedAt
	}

	return storage.GetDb().Create(membership).Error
}

func (r *MembershipRepository) GetMembershipByUserAndSpace(
	userID, spaceID uuid.UUID,
) (*spaces_models.SpaceMembership, error) {
	var membership spaces_models.SpaceMembership

	err := storage.GetDb().
		Where("user_id = ? AND space_id = ?", userID, spaceID).
		First(&membership).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &membership, nil
}

func (r *MembershipRepository) GetSpaceMembers(
	spaceID uuid.UUID,
) ([]spaces_dto.SpaceMemberResponseDTO, error) {
	members := make([]spaces_dto.SpaceMemberResponseDTO, 0)

	err := storage.GetDb().
		Table("space_memberships sm").
		Select("sm.id, sm.user_id, u.email, u.name, sm.role, sm.status, sm.created_at").
		Joins("JOIN users u ON sm.user_id = u.id").
		Where("sm.space_id = ? AND sm.status = ?", spaceID, spaces_models.MembershipStatusApproved).
		Order("sm.created_at ASC").
		Scan(&members).Error

	return members, err
}

func (r *MembershipRepository) GetUserSpaceRole(
	spaceID, userID uuid.UUID,
) (*users_enums.SpaceRole, error) {
	var membership spaces_models.SpaceMembership

	err := storage.GetDb().
		Where("space_id = ? AND user_id = ? AND status = ?",
			spaceID, userID, spaces_models.MembershipStatusApproved).
		First(&membership).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &membership.Role, nil
}

func (r *MembershipRepository) UpdateMemberRole(
	userID, spaceID uuid.UUID,
	role users_enums.SpaceRole,
) error {
	return storage.GetDb().
		Model(&spaces_models.SpaceMembership{}).
		Where("user_id = ? AND space_id = ?", userID, spaceID).
		Updates(map[string]any{
			"role":       role,
			"updated_at": time.Now().UTC(),
		}).Error
}

func (r *MembershipRepository) RemoveMember(userID, spaceID uuid.UUID) error {
	return storage.GetDb().
		Where("user_id = ? AND space_id = ?", userID, spaceID).
		Delete(&spaces_models.SpaceMembership{}).Error
}

func (r *MembershipRepository) RemoveAllForSpace(spaceID uuid.UUID) error {
	return storage.GetDb().
		Where("space_id = ?", spaceID).
		Delete(&spaces_models.SpaceMembership{}).Error
}

func (r *MembershipRepository) GetSpacesWithRolesByUserID(
	userID uuid.UUID,
) ([]spaces_dto.SpaceResponseDTO, error) {
	results := make([]spaces_dto.SpaceResponseDTO, 0)

	err := storage.GetDb().
		Table("spaces s").
		Select("s.id, s.name, s.description, s.is_public, s.owner_id, s.created_at, "+
			"sm.role as user_role").
		Joins("JOIN space_memberships sm ON s.id = sm.space_id").
		Where("sm.user_id = ? AND sm.status = ?", userID, spaces_models.MembershipStatusApproved).
		Order("s.name ASC").
		Scan(&results).Error

	return results, err
}
