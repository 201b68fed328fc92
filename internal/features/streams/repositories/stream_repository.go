package streams_repositories

import (
	"errors"
	"time"

	streams_models "casterdesk-backend/internal/features/streams/models"
	"casterdesk-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StreamRepository struct{}

func (r *StreamRepository) CreateStream(stream *streams_models.StreamEvent) error {
	if stream.ID == uuid.Nil {
		stream.ID = uuid.New()
	}

	if stream.CreatedAt.IsZero() {
		stream.CreatedAt = time.Now().UTC()
		stream.UpdatedAt = stream.CreatedAt
	}

	return storage.GetDb().Create(stream).Error
}

func (r *StreamRepository) GetStreamByID(
	streamID uuid.UUID,
) (*streams_models.StreamEvent, error) {
	var stream streams_models.StreamEvent

	err := storage.GetDb().Where("id = ?", streamID).First(&stream).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &stream, nil
}

func (r *StreamRepository) GetStreamsForSpace(
	spaceID uuid.UUID,
	from string,
	to string,
) ([]streams_models.StreamEvent, error) {
	streams := make([]streams_models.StreamEvent, 0)

	query := storage.GetDb().Where("space_id = ?", spaceID)
	if from != "" {
		query = query.Where("date >= ?", from)
	}
	if to != "" {
		query = query.Where("date <= ?", to)
	}

	err := query.Order("date ASC, start_time ASC").Find(&streams).Error

	return streams, err
}

// GetUpcomingScheduledStreams returns scheduled streams on today's or
// tomorrow's date. The reminder scheduler narrows the window itself.
func (r *StreamRepository) GetUpcomingScheduledStreams(
	today string,
	tomorrow string,
) ([]streams_models.StreamEvent, error) {
	streams := make([]streams_models.StreamEvent, 0)

	err := storage.GetDb().
		Where("status = ? AND date IN ?", streams_models.StreamStatusScheduled,
			[]string{today, tomorrow}).
		Find(&streams).Error

	return streams, err
}

func (r *StreamRepository) UpdateStream(stream *streams_models.StreamEvent) error {
	stream.UpdatedAt = time.Now().UTC()
	return storage.GetDb().Save(stream).Error
}

func (r *StreamRepository) DeleteStream(streamID uuid.UUID) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("stream_id = ?", streamID).
			Delete(&streams_models.StreamAssignment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("stream_id = ?", streamID).
			Delete(&streams_models.StreamRSVP{}).Error; err != nil {
			return err
		}

		return tx.Delete(&streams_models.StreamEvent{}, streamID).Error
	})
}

func (r *StreamRepository) RemoveAllForSpace(spaceID uuid.UUID) error {
	return storage.GetDb().Transaction(func(tx *gorm.DB) error {
		subquery := tx.Model(&streams_models.StreamEvent{}).
			Select("id").
			Where("space_id = ?", spaceID)

		if err := tx.Where("stream_id IN (?)", subquery).
			Delete(&streams_models.StreamAssignment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("stream_id IN (?)", subquery).
			Delete(&streams_models.StreamRSVP{}).Error; err != nil {
			return err
		}

		return tx.Where("space_id = ?", spaceID).
			Delete(&streams_models.StreamEvent{}).Error
	})
}
