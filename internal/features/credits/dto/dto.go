package credits_dto

import (
	"time"

	credits_models "casterdesk-backend/internal/features/credits/models"
	staff_models "casterdesk-backend/internal/features/staff/models"

	"github.com/google/uuid"
)

type AdjustCreditsRequestDTO struct {
	StaffID  uuid.UUID  `json:"staffId" binding:"required"`
	Amount   int        `json:"amount"  binding:"required"`
	Reason   string     `json:"reason"  binding:"required,max=500"`
	StreamID *uuid.UUID `json:"streamId"`
}

type LeaderboardEntryDTO struct {
	StaffID   uuid.UUID              `json:"staffId"   gorm:"column:staff_id"`
	StaffName string                 `json:"staffName" gorm:"column:staff_name"`
	Role      staff_models.StaffRole `json:"role"      gorm:"column:role"`
	AvatarURL string                 `json:"avatarUrl" gorm:"column:avatar_url"`
	Credits   int                    `json:"credits"   gorm:"column:credits"`
}

type LeaderboardResponseDTO struct {
	Entries []LeaderboardEntryDTO `json:"entries"`
}

type TransactionDTO struct {
	ID        uuid.UUID  `json:"id"`
	StaffID   uuid.UUID  `json:"staffId"`
	Amount    int        `json:"amount"`
	Reason    string     `json:"reason"`
	StreamID  *uuid.UUID `json:"streamId"`
	CreatedAt time.Time  `json:"createdAt"`
}

type ListTransactionsResponseDTO struct {
	Transactions []credits_models.CreditTransaction `json:"transactions"`
}
