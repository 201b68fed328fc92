package credits_models

import (
	"time"

	"github.com/google/uuid"
)

// CreditAwardAmount is granted to each assigned caster when a stream
// completes.
const (
	CreditAwardAmount = 5
	CreditAwardReason = "Stream completion bonus"
)

// CreditTransaction is an append-only ledger entry. Rows are never
// updated or deleted; balances are derived by the paired aggregate.
type CreditTransaction struct {
	ID        uuid.UUID  `json:"id"        gorm:"type:uuid;primaryKey"`
	StaffID   uuid.UUID  `json:"staffId"   gorm:"type:uuid;not null;index"`
	SpaceID   uuid.UUID  `json:"spaceId"   gorm:"type:uuid;not null;index"`
	Amount    int        `json:"amount"    gorm:"not null"`
	Reason    string     `json:"reason"    gorm:"not null"`
	StreamID  *uuid.UUID `json:"streamId"  gorm:"type:uuid"`
	CreatedAt time.Time  `json:"createdAt" gorm:"not null"`
}

func (CreditTransaction) TableName() string {
	return "credit_transactions"
}
