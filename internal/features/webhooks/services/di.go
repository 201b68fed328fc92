package webhooks_services

import (
	"casterdesk-backend/internal/features/audit_logs"
	spaces_services "casterdesk-backend/internal/features/spaces/services"
	streams_services "casterdesk-backend/internal/features/streams/services"
	webhooks_repositories "casterdesk-backend/internal/features/webhooks/repositories"
	"casterdesk-backend/internal/util/logger"
)

var webhookRepository = &webhooks_repositories.WebhookRepository{}
var postRepository = &webhooks_repositories.PostRepository{}

var webhookService = &WebhookService{
	webhookRepository: webhookRepository,
	postRepository:    postRepository,
	spaceService:      spaces_services.GetSpaceService(),
	auditLogService:   audit_logs.GetAuditLogService(),
	logger:            logger.GetLogger(),
}

var reminderService = &ReminderService{
	webhookRepository: webhookRepository,
	postRepository:    postRepository,
	webhookService:    webhookService,
	streamService:     streams_services.GetStreamService(),
	logger:            logger.GetLogger(),
}

func GetWebhookService() *WebhookService {
	return webhookService
}

func GetReminderService() *ReminderService {
	return reminderService
}

func SetupDependencies() {
	streams_services.GetStreamService().SetAnnouncer(webhookService)
	spaces_services.GetSpaceService().AddSpaceDeletionListener(webhookService)
}
