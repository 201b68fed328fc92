package spaces_models

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

type Space struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id;primaryKey;type:uuid"`
	Name        string    `json:"name"        gorm:"column:name;not null"`
	Description string    `json:"description" gorm:"column:description"`
	IsPublic    bool      `json:"isPublic"    gorm:"column:is_public;not null;default:false"`
	OwnerID     uuid.UUID `json:"ownerId"     gorm:"column:owner_id;type:uuid;not null"`
	CreatedAt   time.Time `json:"createdAt"   gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updatedAt"   gorm:"column:updated_at"`
}

func (Space) TableName() string {
	return "spaces"
}

func (s *Space) Validate() error {
	if s.Name == "" {
		return errors.New("space name is required")
	}
	return nil
}

func (s *Space) UpdateFromDTO(incoming *Space) {
	s.Name = incoming.Name
	s.Description = incoming.Description
	s.IsPublic = incoming.IsPublic
	s.UpdatedAt = time.Now().UTC()
}
