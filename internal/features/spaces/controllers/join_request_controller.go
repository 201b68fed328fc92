package spaces_controllers

import (
	"net/http"

	spaces_dto "casterdesk-backend/internal/features/spaces/dto"
	spaces_services "casterdesk-backend/internal/features/spaces/services"
	users_middleware "casterdesk-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type JoinRequestController struct {
	joinRequestService *spaces_services.JoinRequestService
}

func (c *JoinRequestController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/spaces/:id/join-requests", c.RequestToJoin)
	router.GET("/spaces/:id/join-requests", c.GetPendingRequests)
	router.GET("/spaces/:id/join-requests/me", c.GetMyRequestStatus)
	router.POST("/join-requests/:requestId/approve", c.ApproveRequest)
	router.POST("/join-requests/:requestId/reject", c.RejectRequest)
}

// RequestToJoin
// @Summary Request to join a public space
// @Tags join-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Param request body spaces_dto.CreateJoinRequestDTO true "Join request data"
// @Success 200 {object} spaces_models.JoinRequest
// @Failure 400 {object} map[string]string
// @Router /spaces/{id}/join-requests [post]
func (c *JoinRequestController) RequestToJoin(ctx *gin.Context) {
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

	var request spaces_dto.CreateJoinRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	joinRequest, err := c.joinRequestService.RequestToJoin(spaceID, &request, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, joinRequest)
}

// GetPendingRequests
// @Summary List pending join requests for a space
// @Tags join-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Success 200 {object} spaces_dto.ListJoinRequestsResponseDTO
// @Failure 403 {object} map[string]string
// @Router /spaces/{id}/join-requests [get]
func (c *JoinRequestController) GetPendingRequests(ctx *gin.Context) {
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

	response, err := c.joinRequestService.GetPendingRequests(spaceID, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetMyRequestStatus
// @Summary Get the caller's latest join request for a space
// @Tags join-requests
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Success 200 {object} spaces_models.JoinRequest
// @Failure 404 {object} map[string]string
// @Router /spaces/{id}/join-requests/me [get]
func (c *JoinRequestController) GetMyRequestStatus(ctx *gin.Context) {
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

	request, err := c.joinRequestService.GetMyRequestStatus(spaceID, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	if request == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "No join request found"})
		return
	}

	ctx.JSON(http.StatusOK, request)
}

// ApproveRequest
// @Summary Approve a join request
// @Tags join-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param requestId path string true "Join request ID"
// @Param request body spaces_dto.ApproveJoinRequestDTO true "Role to grant"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /join-requests/{requestId}/approve [post]
func (c *JoinRequestController) ApproveRequest(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	requestID, err := uuid.Parse(ctx.Param("requestId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	var approval spaces_dto.ApproveJoinRequestDTO
	if err := ctx.ShouldBindJSON(&approval); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	if err := c.joinRequestService.ApproveRequest(requestID, &approval, user); err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Join request approved"})
}

// RejectRequest
// @Summary Reject a join request
// @Description Starts the 7-day reapply cool-down for the requester
// @Tags join-requests
// @Produce json
// @Security BearerAuth
// @Param requestId path string true "Join request ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /join-requests/{requestId}/reject [post]
func (c *JoinRequestController) RejectRequest(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	requestID, err := uuid.Parse(ctx.Param("requestId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request ID"})
		return
	}

	if err := c.joinRequestService.RejectRequest(requestID, user); err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Join request rejected"})
}
