package spaces_repositories

import (
	"time"

	spaces_dto "casterdesk-backend/internal/features/spaces/dto"
	spaces_models "casterdesk-backend/internal/features/spaces/models"
	"casterdesk-backend/internal/storage"

	"github.com/google/uuid"
)

type SpaceRepository struct{}

func (r *SpaceRepository) CreateSpace(space *spaces_models.Space) error {
	if space.ID == uuid.Nil {
		space.ID = uuid.New()
	}

	if space.CreatedAt.IsZero() {
		space.CreatedAt = time.Now().UTC()
		space.UpdatedAt = space.CreatedAt
	}

	return storage.GetDb().Create(space).Error
}

func (r *SpaceRepository) GetSpaceByID(spaceID uuid.UUID) (*spaces_models.Space, error) {
	var space spaces_models.Space

	if err := storage.GetDb().Where("id = ?", spaceID).First(&space).Error; err != nil {
		return nil, err
	}

	return &space, nil
}

func (r *SpaceRepository) UpdateSpace(space *spaces_models.Space) error {
	return storage.GetDb().Save(space).Error
}

func (r *SpaceRepository) DeleteSpace(spaceID uuid.UUID) error {
	return storage.GetDb().Delete(&spaces_models.Space{}, spaceID).Error
}

func (r *SpaceRepository) GetPublicSpaces() ([]spaces_dto.PublicSpaceResponseDTO, error) {
	results := make([]spaces_dto.PublicSpaceResponseDTO, 0)

	err := storage.GetDb().
		Table("spaces s").
		Select("s.id, s.name, s.description, u.name as owner_name, "+
			"(SELECT COUNT(*) FROM space_memberships sm "+
			"WHERE sm.space_id = s.id AND sm.status = ?) as member_count",
			spaces_models.MembershipStatusApproved).
		Joins("JOIN users u ON s.owner_id = u.id").
		Where("s.is_public = ?", true).
		Order("s.name ASC").
		Scan(&results).Error

	return results, err
}
