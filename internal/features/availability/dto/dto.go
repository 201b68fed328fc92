package availability_dto

import (
	availability_models "casterdesk-backend/internal/features/availability/models"

	"github.com/google/uuid"
)

type SaveSlotRequestDTO struct {
	StaffID   uuid.UUID                      `json:"staffId"   binding:"required"`
	Date      string                         `json:"date"      binding:"required"`
	StartTime string                         `json:"startTime" binding:"required"`
	EndTime   string                         `json:"endTime"   binding:"required"`
	Status    availability_models.SlotStatus `json:"status"    binding:"required"`
	Note      string                         `json:"note"      binding:"max=2000"`
}

type GetWeekSlotsRequestDTO struct {
	From string `form:"from" binding:"required"`
	To   string `form:"to"   binding:"required"`
}

type ListSlotsResponseDTO struct {
	Slots []availability_models.AvailabilitySlot `json:"slots"`
}

type ResolveStatusResponseDTO struct {
	Status availability_models.SlotStatus `json:"status"`
}
