package audit_logs

import (
	"time"

	"github.com/google/uuid"
)

type AuditLog struct {
	ID        uuid.UUID  `json:"id"        gorm:"column:id;primaryKey;type:uuid"`
	UserID    *uuid.UUID `json:"userId"    gorm:"column:user_id;type:uuid"`
	SpaceID   *uuid.UUID `json:"spaceId"   gorm:"column:space_id;type:uuid;index"`
	Message   string     `json:"message"   gorm:"column:message;not null"`
	CreatedAt time.Time  `json:"createdAt" gorm:"column:created_at"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
