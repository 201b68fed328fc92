package staff_dto

import (
	staff_models "casterdesk-backend/internal/features/staff/models"
)

type CreateStaffMemberRequestDTO struct {
	Name      string                 `json:"name"      binding:"required,min=1,max=255"`
	Email     string                 `json:"email"     binding:"omitempty,email"`
	Role      staff_models.StaffRole `json:"role"      binding:"required"`
	AvatarURL string                 `json:"avatarUrl" binding:"omitempty,url"`
}

type UpdateStaffMemberRequestDTO struct {
	Name      string                 `json:"name"      binding:"required,min=1,max=255"`
	Email     string                 `json:"email"     binding:"omitempty,email"`
	Role      staff_models.StaffRole `json:"role"      binding:"required"`
	AvatarURL string                 `json:"avatarUrl" binding:"omitempty,url"`
}

type ListStaffResponseDTO struct {
	Staff []staff_models.StaffMember `json:"staff"`
}
