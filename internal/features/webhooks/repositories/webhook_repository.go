package webhooks_repositories

import (
	"errors"
	"time"

	webhooks_models "casterdesk-backend/internal/features/webhooks/models"
	"casterdesk-backend/internal/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type WebhookRepository struct{}

func (r *WebhookRepository) CreateWebhook(webhook *webhooks_models.DiscordWebhook) error {
	if webhook.ID == uuid.Nil {
		webhook.ID = uuid.New()
	}

	if webhook.CreatedAt.IsZero() {
		webhook.CreatedAt = time.Now().UTC()
		webhook.UpdatedAt = webhook.CreatedAt
	}

	return storage.GetDb().Create(webhook).Error
}

func (r *WebhookRepository) GetWebhookByID(
	webhookID uuid.UUID,
) (*webhooks_models.DiscordWebhook, error) {
	var webhook webhooks_models.DiscordWebhook

	err := storage.GetDb().Where("id = ?", webhookID).First(&webhook).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}

		return nil, err
	}

	return &webhook, nil
}

func (r *WebhookRepository) GetWebhooksForSpace(
	spaceID uuid.UUID,
) ([]webhooks_models.DiscordWebhook, error) {
	webhooks := make([]webhooks_models.DiscordWebhook, 0)

	err := storage.GetDb().
		Where("space_id = ?", spaceID).
		Order("created_at ASC").
		Find(&webhooks).Error

	return webhooks, err
}

func (r *WebhookRepository) GetActiveAutoPostWebhooksForSpace(
	spaceID uuid.UUID,
) ([]webhooks_models.DiscordWebhook, error) {
	webhooks := make([]webhooks_models.DiscordWebhook, 0)

	err := storage.GetDb().
		Where("space_id = ? AND is_active = ? AND auto_post_streams = ?", spaceID, true, true).
		Find(&webhooks).Error

	return webhooks, err
}

func (r *WebhookRepository) GetAllActiveAutoPostWebhooks() (
	[]webhooks_models.DiscordWebhook, error,
) {
	webhooks := make([]webhooks_models.DiscordWebhook, 0)

	err := storage.GetDb().
		Where("is_active = ? AND auto_post_streams = ?", true, true).
		Find(&webhooks).Error

	return webhooks, err
}

func (r *WebhookRepository) UpdateWebhook(webhook *webhooks_models.DiscordWebhook) error {
	webhook.UpdatedAt = time.Now().UTC()
	return storage.GetDb().Save(webhook).Error
}

func (r *WebhookRepository) DeleteWebhook(webhookID uuid.UUID) error {
	return storage.GetDb().Delete(&webhooks_models.DiscordWebhook{}, webhookID).Error
}

func (r *WebhookRepository) RemoveAllForSpace(spaceID uuid.UUID) error {
	return storage.GetDb().
		Where("space_id = ?", spaceID).
		Delete(&webhooks_models.DiscordWebhook{}).Error
}
