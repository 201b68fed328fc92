package spaces_repositories

import (
	"errors"
	"time"

	spaces_dto "casterdesk-backend/internal/features/spaces/dto"
	spaces_models "casterdesk-backend/internal/features/spaces/models"
	"casterdesk-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JoinRequestRepository struct{}

func (r *JoinRequestRepository) CreateJoinRequest(request *spaces_models.JoinRequest) error {
	if request.ID == uuid.Nil {
		request.ID = uuid.New()
	}

	if request.CreatedAt.IsZero() {
		request.CreatedAt = time.Now().UTC()
		request.UpdatedAt = request.CreatedAt
	}

	return storage.GetDb().Create(request).Error
}

func (r *JoinRequestRepository) GetJoinRequestByID(
	requestID uuid.UUID,
) (*spaces_models.JoinRequest, error) {
	var request spaces_models.JoinRequest

	if err := storage.GetDb().Where("id = ?", requestID).First(&request).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &request, nil
}

func (r *JoinRequestRepository) GetJoinRequestByUserAndSpace(
	userID, spaceID uuid.UUID,
) (*spaces_models.JoinRequest, error) {
	var request spaces_models.JoinRequest

	err := storage.GetDb().
		Where("user_id = ? AND space_id = ?", userID, spaceID).
		Order("created_at DESC").
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &request, nil
}

func (r *JoinRequestRepository) GetPendingRequestsForSpace(
	spaceID uuid.UUID,
) ([]spaces_dto.JoinRequestResponseDTO, error) {
	requests := make([]spaces_dto.JoinRequestResponseDTO, 0)

	err := storage.GetDb().
		Table("join_requests jr").
		Select("jr.id, jr.space_id, jr.user_id, jr.message, jr.status, "+
			"u.name as user_name, u.email as user_email, jr.created_at, jr.updated_at").
		Joins("JOIN users u ON jr.user_id = u.id").
		Where("jr.space_id = ? AND jr.status = ?", spaceID, spaces_models.JoinRequestStatusPending).
		Order("jr.created_at ASC").
		Scan(&requests).Error

	return requests, err
}

func (r *JoinRequestRepository) UpdateJoinRequest(request *spaces_models.JoinRequest) error {
	request.UpdatedAt = time.Now().UTC()
	return storage.GetDb().Save(request).Error
}

func (r *JoinRequestRepository) RemoveAllForSpace(spaceID uuid.UUID) error {
	return storage.GetDb().
		Where("space_id = ?", spaceID).
		Delete(&spaces_models.JoinRequest{}).Error
}
