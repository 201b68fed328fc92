package staff_repositories

import (
	"errors"
	"time"

	staff_models "casterdesk-backend/internal/features/staff/models"
	"casterdesk-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StaffRepository struct{}

func (r *StaffRepository) CreateStaffMember(member *staff_models.StaffMember) error {
	if member.ID == uuid.Nil {
		member.ID = uuid.New()
	}

	if member.CreatedAt.IsZero() {
		member.CreatedAt = time.Now().UTC()
		member.UpdatedAt = member.CreatedAt
	}

	return storage.GetDb().Create(member).Error
}

func (r *StaffRepository) GetStaffMemberByID(
	memberID uuid.UUID,
) (*staff_models.StaffMember, error) {
	var member staff_models.StaffMember

	err := storage.GetDb().Where("id = ?", memberID).First(&member).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &member, nil
}

func (r *StaffRepository) GetStaffForSpace(
	spaceID uuid.UUID,
) ([]staff_models.StaffMember, error) {
	members := make([]staff_models.StaffMember, 0)

	err := storage.GetDb().
		Where("space_id = ?", spaceID).
		Order("name ASC").
		Find(&members).Error

	return members, err
}

func (r *StaffRepository) GetStaffForSpaceByRole(
	spaceID uuid.UUID,
	role staff_models.StaffRole,
) ([]staff_models.StaffMember, error) {
	members := make([]staff_models.StaffMember, 0)

	err := storage.GetDb().
		Where("space_id = ? AND role = ?", spaceID, role).
		Order("name ASC").
		Find(&members).Error

	return members, err
}

func (r *StaffRepository) UpdateStaffMember(member *staff_models.StaffMember) error {
	member.UpdatedAt = time.Now().UTC()
	return storage.GetDb().Save(member).Error
}

func (r *StaffRepository) DeleteStaffMember(memberID uuid.UUID) error {
	return storage.GetDb().Delete(&staff_models.StaffMember{}, memberID).Error
}

func (r *StaffRepository) RemoveAllForSpace(spaceID uuid.UUID) error {
	return storage.GetDb().
		Where("space_id = ?", spaceID).
		Delete(&staff_models.StaffMember{}).Error
}
