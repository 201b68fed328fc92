package streams_models

import (
	"time"

	staff_models "casterdesk-backend/internal/features/staff/models"

	"github.com/google/uuid"
)

type StreamAssignment struct {
	ID        uuid.UUID              `json:"id"        gorm:"type:uuid;primaryKey"`
	StreamID  uuid.UUID              `json:"streamId"  gorm:"type:uuid;not null;index"`
	StaffID   uuid.UUID              `json:"staffId"   gorm:"type:uuid;not null;index"`
	Role      staff_models.StaffRole `json:"role"      gorm:"not null"`
	IsPrimary bool                   `json:"isPrimary" gorm:"not null;default:false"`
	CreatedAt time.Time              `json:"createdAt" gorm:"not null"`
}

func (StreamAssignment) TableName() string {
	return "stream_assignments"
}
