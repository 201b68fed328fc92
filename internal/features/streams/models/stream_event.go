package streams_models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type StreamStatus string

const (
	StreamStatusScheduled StreamStatus = "scheduled"
	StreamStatusLive      StreamStatus = "live"
	StreamStatusCompleted StreamStatus = "completed"
	StreamStatusCancelled StreamStatus = "cancelled"
)

func (s StreamStatus) IsValid() bool {
	switch s {
	case StreamStatusScheduled, StreamStatusLive, StreamStatusCompleted, StreamStatusCancelled:
		return true
	}

	return false
}

// CanTransitionTo encodes the stream lifecycle. Completed and
// cancelled are terminal, and a live stream can no longer be
// cancelled, only completed.
func (s StreamStatus) CanTransitionTo(target StreamStatus) bool {
	switch s {
	case StreamStatusScheduled:
		return target == StreamStatusLive ||
			target == StreamStatusCompleted ||
			target == StreamStatusCancelled
	case StreamStatusLive:
		return target == StreamStatusCompleted
	default:
		return false
	}
}

type StreamEvent struct {
	ID          uuid.UUID    `json:"id"          gorm:"type:uuid;primaryKey"`
	SpaceID     uuid.UUID    `json:"spaceId"     gorm:"type:uuid;not null;index"`
	Title       string       `json:"title"       gorm:"not null"`
	Date        string       `json:"date"        gorm:"not null;index"`
	StartTime   string       `json:"startTime"   gorm:"not null"`
	EndTime     string       `json:"endTime"`
	Description string       `json:"description"`
	StreamLink  string       `json:"streamLink"`
	Status      StreamStatus `json:"status"      gorm:"not null"`
	CreatedBy   uuid.UUID    `json:"createdBy"   gorm:"type:uuid;not null"`
	CreatedAt   time.Time    `json:"createdAt"   gorm:"not null"`
	UpdatedAt   time.Time    `json:"updatedAt"   gorm:"not null"`
}

func (StreamEvent) TableName() string {
	return "stream_events"
}

func (e *StreamEvent) Validate() error {
	if e.Title == "" {
		return errors.New("stream title is required")
	}

	if _, err := time.Parse("2006-01-02", e.Date); err != nil {
		return errors.New("invalid stream date: expected YYYY-MM-DD")
	}

	if _, err := time.Parse("15:04", e.StartTime); err != nil {
		return errors.New("invalid stream start time: expected HH:MM")
	}

	if e.EndTime != "" {
		if _, err := time.Parse("15:04", e.EndTime); err != nil {
			return errors.New("invalid stream end time: expected HH:MM")
		}
	}

	if !e.Status.IsValid() {
		return errors.New("invalid stream status")
	}

	return nil
}

// StartsAt combines the event's date and start time in UTC. Used by
// the reminder scheduler.
func (e *StreamEvent) StartsAt() (time.Time, error) {
	return time.Parse("2006-01-02 15:04", e.Date+" "+e.StartTime)
}
