package streams_models

import (
	"time"

	"github.com/google/uuid"
)

type RSVPStatus string

const (
	RSVPStatusAttending    RSVPStatus = "attending"
	RSVPStatusNotAttending RSVPStatus = "not_attending"
	RSVPStatusMaybe        RSVPStatus = "maybe"
)

func (s RSVPStatus) IsValid() bool {
	return s == RSVPStatusAttending || s == RSVPStatusNotAttending || s == RSVPStatusMaybe
}

// StreamRSVP records one staff member's answer per stream, upserted by
// (stream, staff).
type StreamRSVP struct {
	ID        uuid.UUID  `json:"id"        gorm:"type:uuid;primaryKey"`
	StreamID  uuid.UUID  `json:"streamId"  gorm:"type:uuid;not null;uniqueIndex:idx_rsvp_stream_staff"`
	StaffID   uuid.UUID  `json:"staffId"   gorm:"type:uuid;not null;uniqueIndex:idx_rsvp_stream_staff"`
	Status    RSVPStatus `json:"status"    gorm:"not null"`
	Notes     string     `json:"notes"`
	CreatedAt time.Time  `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time  `json:"updatedAt" gorm:"not null"`
}

func (StreamRSVP) TableName() string {
	return "stream_rsvps"
}
