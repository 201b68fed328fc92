package availability_repositories

import (
	"errors"
	"time"

	availability_models "casterdesk-backend/internal/features/availability/models"
	"casterdesk-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AvailabilityRepository struct{}

func (r *AvailabilityRepository) CreateSlot(
	slot *availability_models.AvailabilitySlot,
) error {
	if slot.ID == uuid.Nil {
		slot.ID = uuid.New()
	}

	if slot.CreatedAt.IsZero() {
		slot.CreatedAt = time.Now().UTC()
		slot.UpdatedAt = slot.CreatedAt
	}

	return storage.GetDb().Create(slot).Error
}

// GetSlotByKey looks a slot up by its save key (staff, date, start
// time). Saving reuses the matching row when one exists.
func (r *AvailabilityRepository) GetSlotByKey(
	staffID uuid.UUID,
	date string,
	startTime string,
) (*availability_models.AvailabilitySlot, error) {
	var slot availability_models.AvailabilitySlot

	err := storage.GetDb().
		Where("staff_id = ? AND date = ? AND start_time = ?", staffID, date, startTime).
		First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &slot, nil
}

func (r *AvailabilityRepository) GetSlotByID(
	slotID uuid.UUID,
) (*availability_models.AvailabilitySlot, error) {
	var slot availability_models.AvailabilitySlot

	err := storage.GetDb().Where("id = ?", slotID).First(&slot).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &slot, nil
}

func (r *AvailabilityRepository) GetSlotsForStaffOnDate(
	staffID uuid.UUID,
	date string,
) ([]availability_models.AvailabilitySlot, error) {
	slots := make([]availability_models.AvailabilitySlot, 0)

	err := storage.GetDb().
		Where("staff_id = ? AND date = ?", staffID, date).
		Order("created_at ASC").
		Find(&slots).Error

	return slots, err
}

func (r *AvailabilityRepository) GetSlotsForSpaceInRange(
	spaceID uuid.UUID,
	from string,
	to string,
) ([]availability_models.AvailabilitySlot, error) {
	slots := make([]availability_models.AvailabilitySlot, 0)

	err := storage.GetDb().
		Where("space_id = ? AND date >= ? AND date <= ?", spaceID, from, to).
		Order("date ASC, start_time ASC").
		Find(&slots).Error

	return slots, err
}

func (r *AvailabilityRepository) UpdateSlot(
	slot *availability_models.AvailabilitySlot,
) error {
	slot.UpdatedAt = time.Now().UTC()
	return storage.GetDb().Save(slot).Error
}

func (r *AvailabilityRepository) DeleteSlot(slotID uuid.UUID) error {
	return storage.GetDb().
		Delete(&availability_models.AvailabilitySlot{}, slotID).Error
}

func (r *AvailabilityRepository) RemoveAllForSpace(spaceID uuid.UUID) error {
	return storage.GetDb().
		Where("space_id = ?", spaceID).
		Delete(&availability_models.AvailabilitySlot{}).Error
}
