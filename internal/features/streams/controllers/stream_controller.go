package streams_controllers

import (
	"net/http"
	"strings"

	streams_dto "casterdesk-backend/internal/features/streams/dto"
	streams_services "casterdesk-backend/internal/features/streams/services"
	users_middleware "casterdesk-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StreamController struct {
	streamService *streams_services.StreamService
}

func (c *StreamController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/spaces/:id/streams", c.CreateStream)
	router.GET("/spaces/:id/streams", c.GetSpaceStreams)
	router.GET("/streams/:streamId", c.GetStreamDetails)
	router.PUT("/streams/:streamId", c.UpdateStream)
	router.PUT("/streams/:streamId/status", c.SetStatus)
	router.DELETE("/streams/:streamId", c.DeleteStream)
	router.POST("/streams/:streamId/assignments", c.AssignStaff)
	router.DELETE("/streams/:streamId/assignments/:staffId", c.RemoveAssignment)
	router.PUT("/streams/:streamId/rsvp", c.SaveRSVP)
}

func statusFromError(err error) int {
	message := err.Error()

	switch {
	case strings.Contains(message, "permissions"):
		return http.StatusForbidden
	case strings.Contains(message, "not found"):
		return http.StatusNotFound
	case strings.Contains(message, "not allowed"),
		strings.Contains(message, "already assigned"):
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// CreateStream
// @Summary Schedule a stream
// @Tags streams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Param request body streams_dto.CreateStreamRequestDTO true "Stream data"
// @Success 200 {object} streams_models.StreamEvent
// @Failure 403 {object} map[string]string
// @Router /spaces/{id}/streams [post]
func (c *StreamController) CreateStream(ctx *gin.Context) {
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

	var request streams_dto.CreateStreamRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	stream, err := c.streamService.CreateStream(spaceID, &request, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, stream)
}

// GetSpaceStreams
// @Summary List streams for a space, optionally within a date range
// @Tags streams
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Param from query string false "Range start (YYYY-MM-DD)"
// @Param to query string false "Range end (YYYY-MM-DD)"
// @Success 200 {object} streams_dto.ListStreamsResponseDTO
// @Failure 403 {object} map[string]string
// @Router /spaces/{id}/streams [get]
func (c *StreamController) GetSpaceStreams(ctx *gin.Context) {
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

	var request streams_dto.GetStreamsRequestDTO
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.streamService.GetSpaceStreams(spaceID, &request, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetStreamDetails
// @Summary Get a stream with its assignments and RSVPs
// @Tags streams
// @Produce json
// @Security BearerAuth
// @Param streamId path string true "Stream ID"
// @Success 200 {object} streams_dto.StreamDetailsResponseDTO
// @Failure 404 {object} map[string]string
// @Router /streams/{streamId} [get]
func (c *StreamController) GetStreamDetails(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	streamID, err := uuid.Parse(ctx.Param("streamId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stream ID"})
		return
	}

	response, err := c.streamService.GetStreamDetails(streamID, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// UpdateStream
// @Summary Update a stream's details
// @Tags streams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param streamId path string true "Stream ID"
// @Param request body streams_dto.UpdateStreamRequestDTO true "Stream data"
// @Success 200 {object} streams_models.StreamEvent
// @Failure 403 {object} map[string]string
// @Router /streams/{streamId} [put]
func (c *StreamController) UpdateStream(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	streamID, err := uuid.Parse(ctx.Param("streamId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stream ID"})
		return
	}

	var request streams_dto.UpdateStreamRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	stream, err := c.streamService.UpdateStream(streamID, &request, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, stream)
}

// SetStatus
// @Summary Move a stream through its lifecycle
// @Description Completing a stream awards credits to its assigned casters
// @Tags streams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param streamId path string true "Stream ID"
// @Param request body streams_dto.SetStreamStatusRequestDTO true "Target status"
// @Success 200 {object} streams_models.StreamEvent
// @Failure 409 {object} map[string]string
// @Router /streams/{streamId}/status [put]
func (c *StreamController) SetStatus(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	streamID, err := uuid.Parse(ctx.Param("streamId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stream ID"})
		return
	}

	var request streams_dto.SetStreamStatusRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	stream, err := c.streamService.SetStatus(streamID, &request, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, stream)
}

// DeleteStream
// @Summary Delete a stream
// @Tags streams
// @Produce json
// @Security BearerAuth
// @Param streamId path string true "Stream ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /streams/{streamId} [delete]
func (c *StreamController) DeleteStream(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	streamID, err := uuid.Parse(ctx.Param("streamId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stream ID"})
		return
	}

	if err := c.streamService.DeleteStream(streamID, user); err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Stream deleted successfully"})
}

// AssignStaff
// @Summary Assign a staff member to a stream
// @Tags streams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param streamId path string true "Stream ID"
// @Param request body streams_dto.AssignStaffRequestDTO true "Assignment data"
// @Success 200 {object} streams_models.StreamAssignment
// @Failure 409 {object} map[string]string
// @Router /streams/{streamId}/assignments [post]
func (c *StreamController) AssignStaff(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	streamID, err := uuid.Parse(ctx.Param("streamId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stream ID"})
		return
	}

	var request streams_dto.AssignStaffRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	assignment, err := c.streamService.AssignStaff(streamID, &request, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, assignment)
}

// RemoveAssignment
// @Summary Remove a staff assignment from a stream
// @Tags streams
// @Produce json
// @Security BearerAuth
// @Param streamId path string true "Stream ID"
// @Param staffId path string true "Staff member ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /streams/{streamId}/assignments/{staffId} [delete]
func (c *StreamController) RemoveAssignment(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	streamID, err := uuid.Parse(ctx.Param("streamId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stream ID"})
		return
	}

	staffID, err := uuid.Parse(ctx.Param("staffId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff member ID"})
		return
	}

	if err := c.streamService.RemoveAssignment(streamID, staffID, user); err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Assignment removed successfully"})
}

// SaveRSVP
// @Summary Save a staff member's RSVP for a stream
// @Description Upserts by (stream, staff)
// @Tags streams
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param streamId path string true "Stream ID"
// @Param request body streams_dto.SaveRSVPRequestDTO true "RSVP data"
// @Success 200 {object} streams_models.StreamRSVP
// @Failure 403 {object} map[string]string
// @Router /streams/{streamId}/rsvp [put]
func (c *StreamController) SaveRSVP(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	streamID, err := uuid.Parse(ctx.Param("streamId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid stream ID"})
		return
	}

	var request streams_dto.SaveRSVPRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	rsvp, err := c.streamService.SaveRSVP(streamID, &request, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, rsvp)
}
