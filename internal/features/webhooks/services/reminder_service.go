package webhooks_services

import (
	"log/slog"
	"time"

	streams_services "casterdesk-backend/internal/features/streams/services"
	webhooks_models "casterdesk-backend/internal/features/webhooks/models"
	webhooks_repositories "casterdesk-backend/internal/features/webhooks/repositories"

	"github.com/robfig/cron/v3"
)

// ReminderService posts "starting soon" reminders for scheduled
// streams. It wakes every minute and posts through each webhook whose
// timing includes before_stream, once the stream is within that
// webhook's lead time. A reminder goes out at most once per
// (stream, webhook).
type ReminderService struct {
	webhookRepository *webhooks_repositories.WebhookRepository
	postRepository    *webhooks_repositories.PostRepository
	webhookService    *WebhookService
	streamService     *streams_services.StreamService
	logger            *slog.Logger
	cron              *cron.Cron
}

func (s *ReminderService) Start() {
	s.cron = cron.New()

	_, err := s.cron.AddFunc("* * * * *", s.runReminderPass)
	if err != nil {
		s.logger.Error("failed to schedule reminder pass", "error", err)
		return
	}

	s.cron.Start()
	s.logger.Info("stream reminder scheduler started")
}

func (s *ReminderService) Stop() {
	if s.cron != nil {
		s.cron.Stop()
	}
}

func (s *ReminderService) runReminderPass() {
	now := time.Now().UTC()
	today := now.Format("2006-01-02")
	tomorrow := now.Add(24 * time.Hour).Format("2006-01-02")

	streams, err := s.streamService.GetUpcomingScheduledStreams(today, tomorrow)
	if err != nil {
		s.logger.Error("failed to load upcoming streams", "error", err)
		return
	}

	if len(streams) == 0 {
		return
	}

	for i := range streams {
		stream := &streams[i]

		startsAt, err := stream.StartsAt()
		if err != nil {
			s.logger.Error("stream has unparsable start time",
				"streamId", stream.ID, "error", err)
			continue
		}

		if startsAt.Before(now) {
			continue
		}

		webhooks, err := s.webhookRepository.GetActiveAutoPostWebhooksForSpace(stream.SpaceID)
		if err != nil {
			s.logger.Error("failed to load webhooks for reminders",
				"spaceId", stream.SpaceID, "error", err)
			continue
		}

		for j := range webhooks {
			webhook := &webhooks[j]

			if !webhook.PostTiming.PostsBeforeStream() {
				continue
			}

			leadTime := time.Duration(webhook.MinutesBefore) * time.Minute
			if now.Before(startsAt.Add(-leadTime)) {
				continue
			}

			existing, err := s.postRepository.GetSuccessfulPost(
				stream.ID, webhook.ID, webhooks_models.PostTypeReminder)
			if err != nil {
				s.logger.Error("failed to check existing reminder",
					"streamId", stream.ID, "webhookId", webhook.ID, "error", err)
				continue
			}
			if existing != nil {
				continue
			}

			s.webhookService.postStream(webhook, stream, webhooks_models.PostTypeReminder)
		}
	}
}
