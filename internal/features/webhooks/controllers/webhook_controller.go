package webhooks_controllers

import (
	"net/http"
	"strings"

	users_middleware "casterdesk-backend/internal/features/users/middleware"
	webhooks_dto "casterdesk-backend/internal/features/webhooks/dto"
	webhooks_services "casterdesk-backend/internal/features/webhooks/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type WebhookController struct {
	webhookService *webhooks_services.WebhookService
}

func (c *WebhookController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/spaces/:id/webhooks", c.CreateWebhook)
	router.GET("/spaces/:id/webhooks", c.GetSpaceWebhooks)
	router.PUT("/webhooks/:webhookId", c.UpdateWebhook)
	router.DELETE("/webhooks/:webhookId", c.DeleteWebhook)
	router.POST("/webhooks/:webhookId/test", c.TestSend)
	router.GET("/spaces/:id/streams/:streamId/posts", c.GetStreamPosts)
}

func statusFromError(err error) int {
	message := err.Error()

	switch {
	case strings.Contains(message, "permissions"):
		return http.StatusForbidden
	case strings.Contains(message, "not found"):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// CreateWebhook
// @Summary Add a Discord webhook to a space
// @Tags webhooks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Param request body webhooks_dto.SaveWebhookRequestDTO true "Webhook data"
// @Success 200 {object} webhooks_models.DiscordWebhook
// @Failure 403 {object} map[string]string
// @Router /spaces/{id}/webhooks [post]
func (c *WebhookController) CreateWebhook(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	spaceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid space ID"})
		return
	}

	var request webhooks_dto.SaveWebhookRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	webhook, err := c.webhookService.CreateWebhook(spaceID, &request, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, webhook)
}

// GetSpaceWebhooks
// @Summary List a space's Discord webhooks
// @Tags webhooks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Success 200 {object} webhooks_dto.ListWebhooksResponseDTO
// @Failure 403 {object} map[string]string
// @Router /spaces/{id}/webhooks [get]
func (c *WebhookController) GetSpaceWebhooks(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	spaceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid space ID"})
		return
	}

	response, err := c.webhookService.GetSpaceWebhooks(spaceID, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateWebhook
// @Summary Update a Discord webhook
// @Tags webhooks
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param webhookId path string true "Webhook ID"
// @Param request body webhooks_dto.SaveWebhookRequestDTO true "Webhook data"
// @Success 200 {object} webhooks_models.DiscordWebhook
// @Failure 403 {object} map[string]string
// @Router /webhooks/{webhookId} [put]
func (c *WebhookController) UpdateWebhook(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	webhookID, err := uuid.Parse(ctx.Param("webhookId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook ID"})
		return
	}

	var request webhooks_dto.SaveWebhookRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	webhook, err := c.webhookService.UpdateWebhook(webhookID, &request, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, webhook)
}

// DeleteWebhook
// @Summary Delete a Discord webhook
// @Tags webhooks
// @Produce json
// @Security BearerAuth
// @Param webhookId path string true "Webhook ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /webhooks/{webhookId} [delete]
func (c *WebhookController) DeleteWebhook(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	webhookID, err := uuid.Parse(ctx.Param("webhookId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook ID"})
		return
	}

	if err := c.webhookService.DeleteWebhook(webhookID, user); err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Webhook deleted successfully"})
}

// TestSend
// @Summary Send a test message through a webhook
// @Tags webhooks
// @Produce json
// @Security BearerAuth
// @Param webhookId path string true "Webhook ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Router /webhooks/{webhookId}/test [post]
func (c *WebhookController) TestSend(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	webhookID, err := uuid.Parse(ctx.Param("webhookId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook ID"})
		return
	}

	if err := c.webhookService.TestSend(webhookID, user); err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Test message sent"})
}

// GetStreamPosts
// @Summary List Discord post attempts for a stream
// @Tags webhooks
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Param streamId path string true "Stream ID"
// @Success 200 {object} webhooks_dto.ListPostsResponseDTO
// @Failure 403 {object} map[string]string
// @Router /spaces/{id}/streams/{streamId}/posts [get]
func (c *WebhookController) GetStreamPosts(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	spaceID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid space ID"})
		return
	}

	streamID, err := uuid.Parse(ctx.Param("streamId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stream ID"})
		return
	}

	response, err := c.webhookService.GetStreamPosts(streamID, spaceID, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
