package streams_repositories

import (
	"errors"
	"time"

	staff_models "casterdesk-backend/internal/features/staff/models"
	streams_models "casterdesk-backend/internal/features/streams/models"
	"casterdesk-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AssignmentRepository struct{}

func (r *AssignmentRepository) CreateAssignment(
	assignment *streams_models.StreamAssignment,
) error {
	if assignment.ID == uuid.Nil {
		assignment.ID = uuid.New()
	}

	if assignment.CreatedAt.IsZero() {
		assignment.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(assignment).Error
}

func (r *AssignmentRepository) GetAssignmentByStreamAndStaff(
	streamID, staffID uuid.UUID,
) (*streams_models.StreamAssignment, error) {
	var assignment streams_models.StreamAssignment

	err := storage.GetDb().
		Where("stream_id = ? AND staff_id = ?", streamID, staffID).
		First(&assignment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &assignment, nil
}

func (r *AssignmentRepository) GetAssignmentsForStream(
	streamID uuid.UUID,
) ([]streams_models.StreamAssignment, error) {
	assignments := make([]streams_models.StreamAssignment, 0)

	err := storage.GetDb().
		Where("stream_id = ?", streamID).
		Order("created_at ASC").
		Find(&assignments).Error

	return assignments, err
}

func (r *AssignmentRepository) GetAssignmentsForStreamByRole(
	streamID uuid.UUID,
	role staff_models.StaffRole,
) ([]streams_models.StreamAssignment, error) {
	assignments := make([]streams_models.StreamAssignment, 0)

	err := storage.GetDb().
		Where("stream_id = ? AND role = ?", streamID, role).
		Order("created_at ASC").
		Find(&assignments).Error

	return assignments, err
}

func (r *AssignmentRepository) RemoveAssignment(streamID, staffID uuid.UUID) error {
	return storage.GetDb().
		Where("stream_id = ? AND staff_id = ?", streamID, staffID).
		Delete(&streams_models.StreamAssignment{}).Error
}
