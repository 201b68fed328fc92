package webhooks_models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
)

type PostTiming string

const (
	PostTimingOnCreation   PostTiming = "on_creation"
	PostTimingBeforeStream PostTiming = "before_stream"
	PostTimingBoth         PostTiming = "both"
)

func (t PostTiming) IsValid() bool {
	return t == PostTimingOnCreation || t == PostTimingBeforeStream || t == PostTimingBoth
}

func (t PostTiming) PostsOnCreation() bool {
	return t == PostTimingOnCreation || t == PostTimingBoth
}

func (t PostTiming) PostsBeforeStream() bool {
	return t == PostTimingBeforeStream || t == PostTimingBoth
}

type DiscordWebhook struct {
	ID              uuid.UUID  `json:"id"              gorm:"type:uuid;primaryKey"`
	SpaceID         uuid.UUID  `json:"spaceId"         gorm:"type:uuid;not null;index"`
	Name            string     `json:"name"            gorm:"not null"`
	URL             string     `json:"url"             gorm:"not null"`
	IsActive        bool       `json:"isActive"        gorm:"not null;default:true"`
	AutoPostStreams bool       `json:"autoPostStreams" gorm:"not null;default:true"`
	PostTiming      PostTiming `json:"postTiming"      gorm:"not null;default:on_creation"`
	MinutesBefore   int        `json:"minutesBefore"   gorm:"not null;default:30"`
	CreatedBy       uuid.UUID  `json:"createdBy"       gorm:"type:uuid;not null"`
	CreatedAt       time.Time  `json:"createdAt"       gorm:"not null"`
	UpdatedAt       time.Time  `json:"updatedAt"       gorm:"not null"`
}

func (DiscordWebhook) TableName() string {
	return "discord_webhooks"
}

func (w *DiscordWebhook) Validate() error {
	if w.Name == "" {
		return errors.New("webhook name is required")
	}

	if w.URL == "" {
		return errors.New("webhook URL is required")
	}

	if !w.PostTiming.IsValid() {
		return errors.New("post timing must be on_creation, before_stream, or both")
	}

	if w.MinutesBefore < 0 {
		return errors.New("minutes before must not be negative")
	}

	return nil
}

type discordMessageResponse struct {
	ID string `json:"id"`
}

// PostMessage sends an embed payload to the webhook. The ?wait=true
// query makes Discord return the created message, so the message id
// can be stored for later edits.
func (w *DiscordWebhook) PostMessage(payload map[string]any) (string, error) {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to marshal Discord payload: %w", err)
	}

	req, err := http.NewRequest("POST", w.URL+"?wait=true", bytes.NewReader(jsonPayload))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send Discord message: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf(
			"discord API returned non-OK status: %s. Error: %s",
			resp.Status,
			string(bodyBytes),
		)
	}

	var message discordMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&message); err != nil {
		return "", fmt.Errorf("failed to decode Discord response: %w", err)
	}

	return message.ID, nil
}

// EditMessage patches a previously posted message in place.
func (w *DiscordWebhook) EditMessage(messageID string, payload map[string]any) error {
	jsonPayload, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal Discord payload: %w", err)
	}

	url := fmt.Sprintf("%s/messages/%s", w.URL, messageID)

	req, err := http.NewRequest("PATCH", url, bytes.NewReader(jsonPayload))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: 15 * time.Second}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to edit Discord message: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		bodyBytes, _ := io.ReadAll(resp.Body)
		return fmt.Errorf(
			"discord API returned non-OK status: %s. Error: %s",
			resp.Status,
			string(bodyBytes),
		)
	}

	return nil
}
