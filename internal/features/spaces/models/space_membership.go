package spaces_models

import (
	"time"

	users_enums "casterdesk-backend/internal/features/users/enums"

	"github.com/google/uuid"
)

type MembershipStatus string

const (
	MembershipStatusPending  MembershipStatus = "PENDING"
	MembershipStatusApproved MembershipStatus = "APPROVED"
	MembershipStatusRejected MembershipStatus = "REJECTED"
)

type SpaceMembership struct {
	ID        uuid.UUID             `json:"id"        gorm:"column:id;primaryKey;type:uuid"`
	SpaceID   uuid.UUID             `json:"spaceId"   gorm:"column:space_id;type:uuid;not null;index"`
	UserID    uuid.UUID             `json:"userId"    gorm:"column:user_id;type:uuid;not null;index"`
	Role      users_enums.SpaceRole `json:"role"      gorm:"column:role;not null"`
	Status    MembershipStatus      `json:"status"    gorm:"column:status;not null"`
	CreatedAt time.Time             `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time             `json:"updatedAt" gorm:"column:updated_at"`
}

func (SpaceMembership) TableName() string {
	return "space_memberships"
}
