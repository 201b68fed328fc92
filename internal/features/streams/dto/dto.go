package streams_dto

import (
	staff_models "casterdesk-backend/internal/features/staff/models"
	streams_models "casterdesk-backend/internal/features/streams/models"

	"github.com/google/uuid"
)

type CreateStreamRequestDTO struct {
	Title       string `json:"title"       binding:"required,min=1,max=255"`
	Date        string `json:"date"        binding:"required"`
	StartTime   string `json:"startTime"   binding:"required"`
	EndTime     string `json:"endTime"`
	Description string `json:"description" binding:"max=4000"`
	StreamLink  string `json:"streamLink"  binding:"omitempty,url"`
}

type UpdateStreamRequestDTO struct {
	Title       string `json:"title"       binding:"required,min=1,max=255"`
	Date        string `json:"date"        binding:"required"`
	StartTime   string `json:"startTime"   binding:"required"`
	EndTime     string `json:"endTime"`
	Description string `json:"description" binding:"max=4000"`
	StreamLink  string `json:"streamLink"  binding:"omitempty,url"`
}

type SetStreamStatusRequestDTO struct {
	Status streams_models.StreamStatus `json:"status" binding:"required"`

	// Recording link, required when completing a stream that has none.
	StreamLink string `json:"streamLink" binding:"omitempty,url"`
}

type AssignStaffRequestDTO struct {
	StaffID   uuid.UUID              `json:"staffId"   binding:"required"`
	Role      staff_models.StaffRole `json:"role"      binding:"required"`
	IsPrimary bool                   `json:"isPrimary"`
}

type SaveRSVPRequestDTO struct {
	StaffID uuid.UUID                 `json:"staffId" binding:"required"`
	Status  streams_models.RSVPStatus `json:"status"  binding:"required"`
	Notes   string                    `json:"notes"   binding:"max=2000"`
}

type GetStreamsRequestDTO struct {
	From string `form:"from"`
	To   string `form:"to"`
}

type StreamDetailsResponseDTO struct {
	Stream      *streams_models.StreamEvent       `json:"stream"`
	Assignments []streams_models.StreamAssignment `json:"assignments"`
	RSVPs       []streams_models.StreamRSVP       `json:"rsvps"`
}

type ListStreamsResponseDTO struct {
	Streams []streams_models.StreamEvent `json:"streams"`
}
