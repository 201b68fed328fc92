package webhooks_controllers

import (
	webhooks_services "casterdesk-backend/internal/features/webhooks/services"
)

var webhookController = &WebhookController{
	webhookService: webhooks_services.GetWebhookService(),
}

func GetWebhookController() *WebhookController {
	return webhookController
}
