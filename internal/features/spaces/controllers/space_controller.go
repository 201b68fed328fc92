package spaces_controllers

import (
	"net/http"
	"strings"

	"casterdesk-backend/internal/features/audit_logs"
	spaces_dto "casterdesk-backend/internal/features/spaces/dto"
	spaces_models "casterdesk-backend/internal/features/spaces/models"
	spaces_services "casterdesk-backend/internal/features/spaces/services"
	users_middleware "casterdesk-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type SpaceController struct {
	spaceService *spaces_services.SpaceService
}

func (c *SpaceController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/spaces", c.CreateSpace)
	router.GET("/spaces", c.GetUserSpaces)
	router.GET("/spaces/public", c.GetPublicSpaces)
	router.GET("/spaces/:id", c.GetSpace)
	router.PUT("/spaces/:id", c.UpdateSpace)
	router.DELETE("/spaces/:id", c.DeleteSpace)
	router.GET("/spaces/:id/audit-logs", c.GetSpaceAuditLogs)
}

func statusFromError(err error) int {
	message := err.Error()

	switch {
	case strings.Contains(message, "permissions"),
		strings.Contains(message, "only space owner"):
		return http.StatusForbidden
	case strings.Contains(message, "not found"),
		strings.Contains(message, "record not found"):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// CreateSpace
// @Summary Create a space
// @Description Create a space and make the caller its owner
// @Tags spaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body spaces_dto.CreateSpaceRequestDTO true "Space data"
// @Success 200 {object} spaces_dto.SpaceResponseDTO
// @Failure 400 {object} map[string]string
// @Router /spaces [post]
func (c *SpaceController) CreateSpace(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	var request spaces_dto.CreateSpaceRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.spaceService.CreateSpace(&request, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetUserSpaces
// @Summary List spaces the caller belongs to
// @Tags spaces
// @Produce json
// @Security BearerAuth
// @Success 200 {object} spaces_dto.ListSpacesResponseDTO
// @Router /spaces [get]
func (c *SpaceController) GetUserSpaces(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	response, err := c.spaceService.GetUserSpaces(user)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetPublicSpaces
// @Summary List public spaces open to join requests
// @Tags spaces
// @Produce json
// @Security BearerAuth
// @Success 200 {object} spaces_dto.ListPublicSpacesResponseDTO
// @Router /spaces/public [get]
func (c *SpaceController) GetPublicSpaces(ctx *gin.Context) {
	response, err := c.spaceService.GetPublicSpaces()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetSpace
// @Summary Get a space
// @Tags spaces
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Success 200 {object} spaces_models.Space
// @Failure 403 {object} map[string]string
// @Router /spaces/{id} [get]
func (c *SpaceController) GetSpace(ctx *gin.Context) {
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

	space, err := c.spaceService.GetSpace(spaceID, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, space)
}

// UpdateSpace
// @Summary Update a space
// @Tags spaces
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Param request body spaces_models.Space true "Space data"
// @Success 200 {object} spaces_models.Space
// @Failure 403 {object} map[string]string
// @Router /spaces/{id} [put]
func (c *SpaceController) UpdateSpace(ctx *gin.Context) {
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

	var updateDTO spaces_models.Space
	if err := ctx.ShouldBindJSON(&updateDTO); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	space, err := c.spaceService.UpdateSpace(spaceID, &updateDTO, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, space)
}

// DeleteSpace
// @Summary Delete a space
// @Tags spaces
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /spaces/{id} [delete]
func (c *SpaceController) DeleteSpace(ctx *gin.Context) {
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

	if err := c.spaceService.DeleteSpace(spaceID, user); err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Space deleted successfully"})
}

// GetSpaceAuditLogs
// @Summary Get audit logs for a space
// @Tags spaces
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Param limit query int false "Max entries to return"
// @Success 200 {object} audit_logs.GetAuditLogsResponse
// @Failure 403 {object} map[string]string
// @Router /spaces/{id}/audit-logs [get]
func (c *SpaceController) GetSpaceAuditLogs(ctx *gin.Context) {
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

	var request audit_logs.GetAuditLogsRequest
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.spaceService.GetSpaceAuditLogs(spaceID, user, &request)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
