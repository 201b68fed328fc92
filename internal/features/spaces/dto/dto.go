package spaces_dto

import (
	"time"

	spaces_models "casterdesk-backend/internal/features/spaces/models"
	users_enums "casterdesk-backend/internal/features/users/enums"

	"github.com/google/uuid"
)

// Space DTOs
type CreateSpaceRequestDTO struct {
	Name        string `json:"name"        binding:"required,min=1,max=255"`
	Description string `json:"description" binding:"max=2000"`
	IsPublic    bool   `json:"isPublic"`
}

type SpaceResponseDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	IsPublic    bool      `json:"isPublic"`
	OwnerID     uuid.UUID `json:"ownerId"`
	CreatedAt   time.Time `json:"createdAt"`

	// User's role in this space (populated when fetching for specific user)
	UserRole *users_enums.SpaceRole `json:"userRole,omitempty"`
}

type ListSpacesResponseDTO struct {
	Spaces []SpaceResponseDTO `json:"spaces"`
}

// Public directory entry for spaces open to join requests
type PublicSpaceResponseDTO struct {
	ID          uuid.UUID `json:"id"          gorm:"column:id"`
	Name        string    `json:"name"        gorm:"column:name"`
	Description string    `json:"description" gorm:"column:description"`
	OwnerName   string    `json:"ownerName"   gorm:"column:owner_name"`
	MemberCount int64     `json:"memberCount" gorm:"column:member_count"`
}

type ListPublicSpacesResponseDTO struct {
	Spaces []PublicSpaceResponseDTO `json:"spaces"`
}

// Membership DTOs
type ChangeMemberRoleRequestDTO struct {
	Role users_enums.SpaceRole `json:"role" binding:"required"`
}

type SpaceMemberResponseDTO struct {
	ID        uuid.UUID                      `json:"id"        gorm:"column:id"`
	UserID    uuid.UUID                      `json:"userId"    gorm:"column:user_id"`
	Email     string                         `json:"email"     gorm:"column:email"`
	Name      string                         `json:"name"      gorm:"column:name"`
	Role      users_enums.SpaceRole          `json:"role"      gorm:"column:role"`
	Status    spaces_models.MembershipStatus `json:"status"    gorm:"column:status"`
	CreatedAt time.Time                      `json:"createdAt" gorm:"column:created_at"`
}

type GetMembersResponseDTO struct {
	Members []SpaceMemberResponseDTO `json:"members"`
}

// Join request DTOs
type CreateJoinRequestDTO struct {
	Message string                 `json:"message" binding:"max=2000"`
	Role    *users_enums.SpaceRole `json:"role"`
}

type ApproveJoinRequestDTO struct {
	Role users_enums.SpaceRole `json:"role" binding:"required"`
}

type JoinRequestResponseDTO struct {
	ID        uuid.UUID                       `json:"id"        gorm:"column:id"`
	SpaceID   uuid.UUID                       `json:"spaceId"   gorm:"column:space_id"`
	UserID    uuid.UUID                       `json:"userId"    gorm:"column:user_id"`
	Message   string                          `json:"message"   gorm:"column:message"`
	Status    spaces_models.JoinRequestStatus `json:"status"    gorm:"column:status"`
	UserName  string                          `json:"userName"  gorm:"column:user_name"`
	UserEmail string                          `json:"userEmail" gorm:"column:user_email"`
	CreatedAt time.Time                       `json:"createdAt" gorm:"column:created_at"`
	UpdatedAt time.Time                       `json:"updatedAt" gorm:"column:updated_at"`
}

type ListJoinRequestsResponseDTO struct {
	JoinRequests []JoinRequestResponseDTO `json:"joinRequests"`
}
