package credits_repositories

import (
	"time"

	credits_dto "casterdesk-backend/internal/features/credits/dto"
	credits_models "casterdesk-backend/internal/features/credits/models"
	staff_models "casterdesk-backend/internal/features/staff/models"
	"casterdesk-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type CreditRepository struct{}

// Adjust appends a ledger entry and increments the matching balance
// aggregate in one database transaction, so the two can never diverge.
// The aggregate row is created on first use and incremented in place
// afterwards; the API never writes an absolute balance.
func (r *CreditRepository) Adjust(
	spaceID uuid.UUID,
	staffID uuid.UUID,
	amount int,
	reason string,
	streamID *uuid.UUID,
) (*credits_models.CreditTransaction, error) {
	transaction := &credits_models.CreditTransaction{
		ID:        uuid.New(),
		StaffID:   staffID,
		SpaceID:   spaceID,
		Amount:    amount,
		Reason:    reason,
		StreamID:  streamID,
		CreatedAt: time.Now().UTC(),
	}

	err := storage.GetDb().Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(transaction).Error; err != nil {
			return err
		}

		balance := &credits_models.StaffCreditBalance{
			ID:        uuid.New(),
			StaffID:   staffID,
			SpaceID:   spaceID,
			Credits:   amount,
			CreatedAt: transaction.CreatedAt,
			UpdatedAt: transaction.CreatedAt,
		}

		return tx.Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "staff_id"}, {Name: "space_id"}},
			DoUpdates: clause.Assignments(map[string]any{
				"credits":    gorm.Expr("staff_credit_balances.credits + ?", amount),
				"updated_at": transaction.CreatedAt,
			}),
		}).Create(balance).Error
	})
	if err != nil {
		return nil, err
	}

	return transaction, nil
}

func (r *CreditRepository) GetBalance(
	spaceID uuid.UUID,
	staffID uuid.UUID,
) (int, error) {
	var balance credits_models.StaffCreditBalance

	err := storage.GetDb().
		Where("space_id = ? AND staff_id = ?", spaceID, staffID).
		First(&balance).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return 0, nil
		}

		return 0, err
	}

	return balance.Credits, nil
}

// GetLeaderboard returns balances for one staff role, highest first.
// Ties keep the order balances were first created in.
func (r *CreditRepository) GetLeaderboard(
	spaceID uuid.UUID,
	role staff_models.StaffRole,
) ([]credits_dto.LeaderboardEntryDTO, error) {
	entries := make([]credits_dto.LeaderboardEntryDTO, 0)

	err := storage.GetDb().
		Table("staff_credit_balances b").
		Select("b.staff_id, s.name as staff_name, s.role, s.avatar_url, b.credits").
		Joins("JOIN staff_members s ON b.staff_id = s.id").
		Where("b.space_id = ? AND s.role = ?", spaceID, role).
		Order("b.credits DESC, b.created_at ASC").
		Scan(&entries).Error

	return entries, err
}

func (r *CreditRepository) GetTransactionsForStaff(
	spaceID uuid.UUID,
	staffID uuid.UUID,
	limit int,
) ([]credits_models.CreditTransaction, error) {
	transactions := make([]credits_models.CreditTransaction, 0)

	err := storage.GetDb().
		Where("space_id = ? AND staff_id = ?", spaceID, staffID).
		Order("created_at DESC").
		Limit(limit).
		Find(&transactions).Error

	return transactions, err
}

func (r *CreditRepository) HasAwardForStream(
	staffID uuid.UUID,
	streamID uuid.UUID,
) (bool, error) {
	var count int64

	err := storage.GetDb().
		Model(&credits_models.CreditTransaction{}).
		Where("staff_id = ? AND stream_id = ?", staffID, streamID).
		Count(&count).Error

	return count > 0, err
}

func (r *CreditRepository) RemoveAllForSpace(spaceID uuid.UUID) error {
	if err := storage.GetDb().
		Where("space_id = ?", spaceID).
		Delete(&credits_models.CreditTransaction{}).Error; err != nil {
		return err
	}

	return storage.GetDb().
		Where("space_id = ?", spaceID).
		Delete(&credits_models.StaffCreditBalance{}).Error
}
