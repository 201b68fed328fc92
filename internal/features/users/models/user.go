package users_models

import (
	"time"

	users_enums "casterdesk-backend/internal/features/users/enums"

	"github.com/google/uuid"
)

type User struct {
	ID             uuid.UUID           `json:"id"        gorm:"column:id;primaryKey;type:uuid"`
	Email          string              `json:"email"     gorm:"column:email;uniqueIndex;not null"`
	Name           string              `json:"name"      gorm:"column:name;not null"`
	HashedPassword string              `json:"-"         gorm:"column:hashed_password;not null"`
	Role           users_enums.UserRole `json:"role"      gorm:"column:role;not null"`
	CreatedAt      time.Time           `json:"createdAt" gorm:"column:created_at"`
}

func (User) TableName() string {
	return "users"
}

func (u *User) IsInstanceAdmin() bool {
	return u.Role == users_enums.UserRoleAdmin
}
