package streams_repositories

import (
	"errors"
	"time"

	streams_models "casterdesk-backend/internal/features/streams/models"
	"casterdesk-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type RSVPRepository struct{}

// SaveRSVP upserts the staff member's answer for a stream, keyed by
// (stream, staff).
func (r *RSVPRepository) SaveRSVP(rsvp *streams_models.StreamRSVP) error {
	var existing streams_models.StreamRSVP

	err := storage.GetDb().
		Where("stream_id = ? AND staff_id = ?", rsvp.StreamID, rsvp.StaffID).
		First(&existing).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		rsvp.ID = uuid.New()
		rsvp.CreatedAt = time.Now().UTC()
		rsvp.UpdatedAt = rsvp.CreatedAt

		return storage.GetDb().Create(rsvp).Error
	}

	existing.Status = rsvp.Status
	existing.Notes = rsvp.Notes
	existing.UpdatedAt = time.Now().UTC()

	if err := storage.GetDb().Save(&existing).Error; err != nil {
		return err
	}

	*rsvp = existing

	return nil
}

func (r *RSVPRepository) GetRSVPsForStream(
	streamID uuid.UUID,
) ([]streams_models.StreamRSVP, error) {
	rsvps := make([]streams_models.StreamRSVP, 0)

	err := storage.GetDb().
		Where("stream_id = ?", streamID).
		Order("created_at ASC").
		Find(&rsvps).Error

	return rsvps, err
}
