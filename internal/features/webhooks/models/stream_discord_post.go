package webhooks_models

import (
	"time"

	"github.com/google/uuid"
)

type PostType string

const (
	PostTypeCreation PostType = "creation"
	PostTypeReminder PostType = "reminder"
)

// StreamDiscordPost records every posting attempt, successful or not.
// Failed posts are never retried.
type StreamDiscordPost struct {
	ID           uuid.UUID `json:"id"           gorm:"type:uuid;primaryKey"`
	StreamID     uuid.UUID `json:"streamId"     gorm:"type:uuid;not null;index"`
	WebhookID    uuid.UUID `json:"webhookId"    gorm:"type:uuid;not null;index"`
	MessageID    string    `json:"messageId"`
	PostType     PostType  `json:"postType"     gorm:"not null"`
	Success      bool      `json:"success"      gorm:"not null"`
	ErrorMessage string    `json:"errorMessage"`
	CreatedAt    time.Time `json:"createdAt"    gorm:"not null"`
}

func (StreamDiscordPost) TableName() string {
	return "stream_discord_posts"
}
