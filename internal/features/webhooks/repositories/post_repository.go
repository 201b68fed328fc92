package webhooks_repositories

import (
	"errors"
	"time"

	webhooks_models "casterdesk-backend/internal/features/webhooks/models"
	"casterdesk-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type PostRepository struct{}

func (r *PostRepository) CreatePost(post *webhooks_models.StreamDiscordPost) error {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}

	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now().UTC()
	}

	return storage.GetDb().Create(post).Error
}

// GetSuccessfulPost finds the successful post of a given type for a
// (stream, webhook) pair. Reminders check it to post at most once,
// updates check it for the message id to edit.
func (r *PostRepository) GetSuccessfulPost(
	streamID uuid.UUID,
	webhookID uuid.UUID,
	postType webhooks_models.PostType,
) (*webhooks_models.StreamDiscordPost, error) {
	var post webhooks_models.StreamDiscordPost

	err := storage.GetDb().
		Where("stream_id = ? AND webhook_id = ? AND post_type = ? AND success = ?",
			streamID, webhookID, postType, true).
		First(&post).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &post, nil
}

func (r *PostRepository) GetPostsForStream(
	streamID uuid.UUID,
) ([]webhooks_models.StreamDiscordPost, error) {
	posts := make([]webhooks_models.StreamDiscordPost, 0)

	err := storage.GetDb().
		Where("stream_id = ?", streamID).
		Order("created_at DESC").
		Find(&posts).Error

	return posts, err
}
