package credits_models

import (
	"time"

	"github.com/google/uuid"
)

// StaffCreditBalance is the running aggregate per (staff, space). It
// is only ever mutated by upsert-increment alongside a ledger entry,
// so it always equals the sum of that staff member's transactions.
type StaffCreditBalance struct {
	ID        uuid.UUID `json:"id"        gorm:"type:uuid;primaryKey"`
	StaffID   uuid.UUID `json:"staffId"   gorm:"type:uuid;not null;uniqueIndex:idx_balance_staff_space"`
	SpaceID   uuid.UUID `json:"spaceId"   gorm:"type:uuid;not null;uniqueIndex:idx_balance_staff_space"`
	Credits   int       `json:"credits"   gorm:"not null;default:0"`
	CreatedAt time.Time `json:"createdAt" gorm:"not null"`
	UpdatedAt time.Time `json:"updatedAt" gorm:"not null"`
}

func (StaffCreditBalance) TableName() string {
	return "staff_credit_balances"
}
