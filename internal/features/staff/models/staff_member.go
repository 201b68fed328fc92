package staff_models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type StaffRole string

const (
	StaffRoleCaster   StaffRole = "caster"
	StaffRoleObserver StaffRole = "observer"
)

func (r StaffRole) IsValid() bool {
	return r == StaffRoleCaster || r == StaffRoleObserver
}

type StaffMember struct {
	ID        uuid.UUID `json:"id"        gorm:"type:uuid;primaryKey"`
	SpaceID   uuid.UUID `json:"spaceId"   gorm:"type:uuid;not null;index"`
	Name      string    `json:"name"      gorm:"not null"`
	Email     string    `json:"email"`
	Role      StaffRole `json:"role"      gorm:"not null"`
	AvatarURL string    `json:"avatarUrl"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`
}

func (StaffMember) TableName() string {
	return "staff_members"
}

func (m *StaffMember) Validate() error {
	if m.Name == "" {
		return errors.New("staff member name is required")
	}

	if !m.Role.IsValid() {
		return errors.New("staff member role must be caster or observer")
	}

	return nil
}
