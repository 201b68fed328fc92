package webhooks_services

import (
	"errors"
	"fmt"
	"log/slog"

	"casterdesk-backend/internal/features/audit_logs"
	spaces_services "casterdesk-backend/internal/features/spaces/services"
	streams_models "casterdesk-backend/internal/features/streams/models"
	users_models "casterdesk-backend/internal/features/users/models"
	webhooks_dto "casterdesk-backend/internal/features/webhooks/dto"
	webhooks_models "casterdesk-backend/internal/features/webhooks/models"
	webhooks_repositories "casterdesk-backend/internal/features/webhooks/repositories"

	"github.com/google/uuid"
)

var ErrWebhookNotFound = errors.New("webhook not found")

type WebhookService struct {
	webhookRepository *webhooks_repositories.WebhookRepository
	postRepository    *webhooks_repositories.PostRepository
	spaceService      *spaces_services.SpaceService
	auditLogService   *audit_logs.AuditLogService
	logger            *slog.Logger
}

func (s *WebhookService) CreateWebhook(
	spaceID uuid.UUID,
	request *webhooks_dto.SaveWebhookRequestDTO,
	user *users_models.User,
) (*webhooks_models.DiscordWebhook, error) {
	canManage, err := s.spaceService.CanUserManageSpace(spaceID, user)
	if err != nil {
		return nil, err
	}
	if !canManage {
		return nil, errors.New("insufficient permissions to manage webhooks")
	}

	webhook := &webhooks_models.DiscordWebhook{
		SpaceID:         spaceID,
		Name:            request.Name,
		URL:             request.URL,
		IsActive:        request.IsActive,
		AutoPostStreams: request.AutoPostStreams,
		PostTiming:      request.PostTiming,
		MinutesBefore:   request.MinutesBefore,
		CreatedBy:       user.ID,
	}

	if err := webhook.Validate(); err != nil {
		return nil, err
	}

	if err := s.webhookRepository.CreateWebhook(webhook); err != nil {
		return nil, fmt.Errorf("failed to create webhook: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Discord webhook added: %s", webhook.Name),
		&user.ID,
		&spaceID,
	)

	return webhook, nil
}

func (s *WebhookService) GetSpaceWebhooks(
	spaceID uuid.UUID,
	user *users_models.User,
) (*webhooks_dto.ListWebhooksResponseDTO, error) {
	canManage, err := s.spaceService.CanUserManageSpace(spaceID, user)
	if err != nil {
		return nil, err
	}
	if !canManage {
		return nil, errors.New("insufficient permissions to view webhooks")
	}

	webhooks, err := s.webhookRepository.GetWebhooksForSpace(spaceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get webhooks: %w", err)
	}

	return &webhooks_dto.ListWebhooksResponseDTO{
		Webhooks: webhooks,
	}, nil
}

func (s *WebhookService) UpdateWebhook(
	webhookID uuid.UUID,
	request *webhooks_dto.SaveWebhookRequestDTO,
	user *users_models.User,
) (*webhooks_models.DiscordWebhook, error) {
	webhook, err := s.getManageableWebhook(webhookID, user)
	if err != nil {
		return nil, err
	}

	webhook.Name = request.Name
	webhook.URL = request.URL
	webhook.IsActive = request.IsActive
	webhook.AutoPostStreams = request.AutoPostStreams
	webhook.PostTiming = request.PostTiming
	webhook.MinutesBefore = request.MinutesBefore

	if err := webhook.Validate(); err != nil {
		return nil, err
	}

	if err := s.webhookRepository.UpdateWebhook(webhook); err != nil {
		return nil, fmt.Errorf("failed to update webhook: %w", err)
	}

	return webhook, nil
}

func (s *WebhookService) DeleteWebhook(
	webhookID uuid.UUID,
	user *users_models.User,
) error {
	webhook, err := s.getManageableWebhook(webhookID, user)
	if err != nil {
		return err
	}

	if err := s.webhookRepository.DeleteWebhook(webhookID); err != nil {
		return fmt.Errorf("failed to delete webhook: %w", err)
	}

	s.auditLogService.WriteAuditLog(
		fmt.Sprintf("Discord webhook removed: %s", webhook.Name),
		&user.ID,
		&webhook.SpaceID,
	)

	return nil
}

// TestSend posts a short message through the webhook so an operator
// can verify the URL before relying on it.
func (s *WebhookService) TestSend(
	webhookID uuid.UUID,
	user *users_models.User,
) error {
	webhook, err := s.getManageableWebhook(webhookID, user)
	if err != nil {
		return err
	}

	_, err = webhook.PostMessage(map[string]any{
		"content": fmt.Sprintf("Test message from webhook %q", webhook.Name),
	})
	if err != nil {
		return fmt.Errorf("test send failed: %w", err)
	}

	return nil
}

func (s *WebhookService) GetStreamPosts(
	streamID uuid.UUID,
	spaceID uuid.UUID,
	user *users_models.User,
) (*webhooks_dto.ListPostsResponseDTO, error) {
	canManage, err := s.spaceService.CanUserManageSpace(spaceID, user)
	if err != nil {
		return nil, err
	}
	if !canManage {
		return nil, errors.New("insufficient permissions to view webhook posts")
	}

	posts, err := s.postRepository.GetPostsForStream(streamID)
	if err != nil {
		return nil, fmt.Errorf("failed to get posts: %w", err)
	}

	return &webhooks_dto.ListPostsResponseDTO{
		Posts: posts,
	}, nil
}

// AnnounceStreamCreated posts the stream to every active auto-posting
// webhook whose timing includes creation. Failures are recorded and
// logged, never retried.
func (s *WebhookService) AnnounceStreamCreated(stream *streams_models.StreamEvent) {
	webhooks, err := s.webhookRepository.GetActiveAutoPostWebhooksForSpace(stream.SpaceID)
	if err != nil {
		s.logger.Error("failed to load webhooks for stream announcement",
			"streamId", stream.ID, "error", err)
		return
	}

	for i := range webhooks {
		webhook := &webhooks[i]

		if !webhook.PostTiming.PostsOnCreation() {
			continue
		}

		s.postStream(webhook, stream, webhooks_models.PostTypeCreation)
	}
}

// AnnounceStreamUpdated edits the original creation message where one
// exists. Webhooks that never posted the stream are left alone.
func (s *WebhookService) AnnounceStreamUpdated(stream *streams_models.StreamEvent) {
	webhooks, err := s.webhookRepository.GetActiveAutoPostWebhooksForSpace(stream.SpaceID)
	if err != nil {
		s.logger.Error("failed to load webhooks for stream update",
			"streamId", stream.ID, "error", err)
		return
	}

	for i := range webhooks {
		webhook := &webhooks[i]

		post, err := s.postRepository.GetSuccessfulPost(
			stream.ID, webhook.ID, webhooks_models.PostTypeCreation)
		if err != nil {
			s.logger.Error("failed to look up creation post",
				"streamId", stream.ID, "webhookId", webhook.ID, "error", err)
			continue
		}
		if post == nil || post.MessageID == "" {
			continue
		}

		payload := buildStreamEmbed(stream, "Stream updated")
		if err := webhook.EditMessage(post.MessageID, payload); err != nil {
			s.logger.Error("failed to edit Discord message",
				"streamId", stream.ID, "webhookId", webhook.ID, "error", err)
		}
	}
}

func (s *WebhookService) postStream(
	webhook *webhooks_models.DiscordWebhook,
	stream *streams_models.StreamEvent,
	postType webhooks_models.PostType,
) {
	heading := "Stream scheduled"
	if postType == webhooks_models.PostTypeReminder {
		heading = "Stream starting soon"
	}

	payload := buildStreamEmbed(stream, heading)

	messageID, err := webhook.PostMessage(payload)

	post := &webhooks_models.StreamDiscordPost{
		StreamID:  stream.ID,
		WebhookID: webhook.ID,
		MessageID: messageID,
		PostType:  postType,
		Success:   err == nil,
	}
	if err != nil {
		post.ErrorMessage = err.Error()
		s.logger.Error("failed to post stream to Discord",
			"streamId", stream.ID, "webhookId", webhook.ID, "error", err)
	}

	if createErr := s.postRepository.CreatePost(post); createErr != nil {
		s.logger.Error("failed to record Discord post",
			"streamId", stream.ID, "webhookId", webhook.ID, "error", createErr)
	}
}

func (s *WebhookService) getManageableWebhook(
	webhookID uuid.UUID,
	user *users_models.User,
) (*webhooks_models.DiscordWebhook, error) {
	webhook, err := s.webhookRepository.GetWebhookByID(webhookID)
	if err != nil {
		return nil, fmt.Errorf("failed to get webhook: %w", err)
	}
	if webhook == nil {
		return nil, ErrWebhookNotFound
	}

	canManage, err := s.spaceService.CanUserManageSpace(webhook.SpaceID, user)
	if err != nil {
		return nil, err
	}
	if !canManage {
		return nil, errors.New("insufficient permissions to manage webhooks")
	}

	return webhook, nil
}

func (s *WebhookService) OnBeforeSpaceDeletion(spaceID uuid.UUID) error {
	return s.webhookRepository.RemoveAllForSpace(spaceID)
}

func buildStreamEmbed(stream *streams_models.StreamEvent, heading string) map[string]any {
	fields := []map[string]any{
		{"name": "Date", "value": stream.Date, "inline": true},
		{"name": "Start", "value": stream.StartTime, "inline": true},
	}

	if stream.StreamLink != "" {
		fields = append(fields, map[string]any{
			"name": "Link", "value": stream.StreamLink, "inline": false,
		})
	}

	embed := map[string]any{
		"title":  fmt.Sprintf("%s: %s", heading, stream.Title),
		"fields": fields,
	}

	if stream.Description != "" {
		embed["description"] = stream.Description
	}

	return map[string]any{
		"embeds": []map[string]any{embed},
	}
}
