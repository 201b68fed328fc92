package spaces_models

import (
	"time"

	users_enums "casterdesk-backend/internal/features/users/enums"

	"github.com/google/uuid"
)

type JoinRequestStatus string

const (
	JoinRequestStatusPending  JoinRequestStatus = "PENDING"
	JoinRequestStatusApproved JoinRequestStatus = "APPROVED"
	JoinRequestStatusRejected JoinRequestStatus = "REJECTED"
)

// RejectionCooldown is how long a user must wait after a rejection
// before requesting to join the same space again.
const RejectionCooldown = 7 * 24 * time.Hour

type JoinRequest struct {
	ID        uuid.UUID              `json:"id"        gorm:"column:id;primaryKey;type:uuid"`
	SpaceID   uuid.UUID              `json:"spaceId"   gorm:"column:space_id;type:uuid;not null;index"`
	UserID    uuid.UUID              `json:"userId"    gorm:"column:user_id;type:uuid;not null;index"`
	Message   string                 `json:"message"   gorm:"column:message"`
	Role      *users_enums.SpaceRole `json:"role"      gorm:"column:role"`
	Status    JoinRequestStatus      `json:"status"    gorm:"column:status;not null"`
	CreatedAt time.Time              `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time              `json:"updatedAt" gorm:"column:updated_at"`
}

func (JoinRequest) TableName() string {
	return "join_requests"
}

// IsReapplyEligible reports whether a rejected request has aged past the
// cool-down window. UpdatedAt carries the rejection timestamp.
func (r *JoinRequest) IsReapplyEligible(now time.Time) bool {
	if r.Status != JoinRequestStatusRejected {
		return false
	}

	return now.Sub(r.UpdatedAt) >= RejectionCooldown
}
