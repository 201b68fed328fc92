package credits_services

import (
	"errors"
	"fmt"

	"casterdesk-backend/internal/features/audit_logs"
	credits_dto "casterdesk-backend/internal/features/credits/dto"
	credits_models "casterdesk-backend/internal/features/credits/models"
	credits_repositories "casterdesk-backend/internal/features/credits/repositories"
	"casterdesk-backend/internal/features/realtime"
	spaces_services "casterdesk-backend/internal/features/spaces/services"
	staff_models "casterdesk-backend/internal/features/staff/models"
	staff_services "casterdesk-backend/internal/features/staff/services"
	users_models "casterdesk-backend/internal/features/users/models"

	"github.com/google/uuid"
)

type LedgerService struct {
	creditRepository *credits_repositories.CreditRepository
	staffService     *staff_services.StaffService
	spaceService     *spaces_services.SpaceService
	auditLogService  *audit_logs.AuditLogService
	hub              *realtime.Hub
}

// Adjust appends a signed credit transaction for a staff member and
// bumps their balance. The ledger row and the aggregate move together
// or not at all.
func (s *LedgerService) Adjust(
	spaceID uuid.UUID,
	request *credits_dto.AdjustCreditsRequestDTO,
	user *users_models.User,
) (*credits_models.CreditTransaction, error) {
	canManage, err := s.spaceService.CanUserManageSpace(spaceID, user)
	if err != nil {
		return nil, err
	}
	if !canManage {
		return nil, errors.New("insufficient permissions to adjust credits")
	}

	if request.Amount == 0 {
		return nil, errors.New("credit adjustment amount cannot be zero")
	}

	staffMember, err := s.staffService.GetStaffMemberByID(request.StaffID)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff member: %w", err)
	}
	if staffMember == nil || staffMember.SpaceID != spaceID {
		return nil, errors.New("staff member not found in this space")
	}

	transaction, err := s.creditRepository.Adjust(
		spaceID, request.StaffID, request.Amount, request.Reason, request.StreamID)
	if err != nil {
		return nil, fmt.Errorf("failed to adjust credits: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Credits adjusted by %+d for %s: %s",
			request.Amount, staffMember.Name, request.Reason),
		&user.ID,
		&spaceID,
	)
	s.hub.Publish(spaceID, "credit_transactions")

	return transaction, nil
}

// AwardStreamCompletion grants the completion bonus to one caster for
// a completed stream. A caster is paid at most once per stream, so a
// retried completion pass never double-awards.
func (s *LedgerService) AwardStreamCompletion(
	spaceID uuid.UUID,
	staffID uuid.UUID,
	streamID uuid.UUID,
) error {
	alreadyAwarded, err := s.creditRepository.HasAwardForStream(staffID, streamID)
	if err != nil {
		return fmt.Errorf("failed to check existing award: %w", err)
	}
	if alreadyAwarded {
		return nil
	}

	_, err = s.creditRepository.Adjust(
		spaceID,
		staffID,
		credits_models.CreditAwardAmount,
		credits_models.CreditAwardReason,
		&streamID,
	)
	if err != nil {
		return fmt.Errorf("failed to award credits: %w", err)
	}

	s.hub.Publish(spaceID, "credit_transactions")

	return nil
}

func (s *LedgerService) GetLeaderboard(
	spaceID uuid.UUID,
	role staff_models.StaffRole,
	user *users_models.User,
) (*credits_dto.LeaderboardResponseDTO, error) {
	canView, _, err := s.spaceService.CanUserAccessSpace(spaceID, user)
	if err != nil {
		return nil, err
	}
	if !canView {
		return nil, errors.New("insufficient permissions to view leaderboard")
	}

	if !role.IsValid() {
		return nil, errors.New("leaderboard role must be caster or observer")
	}

	entries, err := s.creditRepository.GetLeaderboard(spaceID, role)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	return &credits_dto.LeaderboardResponseDTO{
		Entries: entries,
	}, nil
}

func (s *LedgerService) GetStaffTransactions(
	spaceID uuid.UUID,
	staffID uuid.UUID,
	user *users_models.User,
) (*credits_dto.ListTransactionsResponseDTO, error) {
	canView, _, err := s.spaceService.CanUserAccessSpace(spaceID, user)
	if err != nil {
		return nil, err
	}
	if !canView {
		return nil, errors.New("insufficient permissions to view transactions")
	}

	transactions, err := s.creditRepository.GetTransactionsForStaff(spaceID, staffID, 200)
	if err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}

	return &credits_dto.ListTransactionsResponseDTO{
		Transactions: transactions,
	}, nil
}

func (s *LedgerService) OnBeforeSpaceDeletion(spaceID uuid.UUID) error {
	return s.creditRepository.RemoveAllForSpace(spaceID)
}
