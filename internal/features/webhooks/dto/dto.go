package webhooks_dto

import (
	webhooks_models "casterdesk-backend/internal/features/webhooks/models"
)

type SaveWebhookRequestDTO struct {
	Name            string                     `json:"name"            binding:"required,min=1,max=255"`
	URL             string                     `json:"url"             binding:"required,url"`
	IsActive        bool                       `json:"isActive"`
	AutoPostStreams bool                       `json:"autoPostStreams"`
	PostTiming      webhooks_models.PostTiming `json:"postTiming"      binding:"required"`
	MinutesBefore   int                        `json:"minutesBefore"   binding:"min=0,max=1440"`
}

type ListWebhooksResponseDTO struct {
	Webhooks []webhooks_models.DiscordWebhook `json:"webhooks"`
}

type ListPostsResponseDTO struct {
	Posts []webhooks_models.StreamDiscordPost `json:"posts"`
}
