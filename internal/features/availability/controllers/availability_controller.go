package availability_controllers

import (
	"net/http"
	"strings"

	availability_dto "casterdesk-backend/internal/features/availability/dto"
	availability_services "casterdesk-backend/internal/features/availability/services"
	users_middleware "casterdesk-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type AvailabilityController struct {
	availabilityService *availability_services.AvailabilityService
}

func (c *AvailabilityController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/spaces/:id/availability", c.SaveSlot)
	router.GET("/spaces/:id/availability", c.GetSpaceSlots)
	router.GET("/spaces/:id/availability/resolve", c.ResolveStaffStatus)
	router.DELETE("/spaces/:id/availability/:slotId", c.DeleteSlot)
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

// SaveSlot
// @Summary Save an availability slot
// @Description Updates the slot matching (staff, date, start time), otherwise inserts a new one
// @Tags availability
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Param request body availability_dto.SaveSlotRequestDTO true "Slot data"
// @Success 200 {object} availability_models.AvailabilitySlot
// @Failure 403 {object} map[string]string
// @Router /spaces/{id}/availability [post]
func (c *AvailabilityController) SaveSlot(ctx *gin.Context) {
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

	var request availability_dto.SaveSlotRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	slot, err := c.availabilityService.SaveSlot(spaceID, &request, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, slot)
}

// GetSpaceSlots
// @Summary List availability slots for a space in a date range
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Param from query string true "Range start (YYYY-MM-DD)"
// @Param to query string true "Range end (YYYY-MM-DD)"
// @Success 200 {object} availability_dto.ListSlotsResponseDTO
// @Failure 403 {object} map[string]string
// @Router /spaces/{id}/availability [get]
func (c *AvailabilityController) GetSpaceSlots(ctx *gin.Context) {
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

	var request availability_dto.GetWeekSlotsRequestDTO
	if err := ctx.ShouldBindQuery(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	response, err := c.availabilityService.GetSpaceSlots(spaceID, &request, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// ResolveStaffStatus
// @Summary Resolve a staff member's status at a point in time
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Param staffId query string true "Staff member ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param time query string true "Clock time (HH:MM)"
// @Success 200 {object} availability_dto.ResolveStatusResponseDTO
// @Failure 403 {object} map[string]string
// @Router /spaces/{id}/availability/resolve [get]
func (c *AvailabilityController) ResolveStaffStatus(ctx *gin.Context) {
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

	staffID, err := uuid.Parse(ctx.Query("staffId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff member ID"})
		return
	}

	status, err := c.availabilityService.ResolveStaffStatus(
		spaceID, staffID, ctx.Query("date"), ctx.Query("time"), user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, availability_dto.ResolveStatusResponseDTO{Status: status})
}

// DeleteSlot
// @Summary Delete an availability slot
// @Tags availability
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Param slotId path string true "Slot ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /spaces/{id}/availability/{slotId} [delete]
func (c *AvailabilityController) DeleteSlot(ctx *gin.Context) {
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

	slotID, err := uuid.Parse(ctx.Param("slotId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid slot ID"})
		return
	}

	if err := c.availabilityService.DeleteSlot(spaceID, slotID, user); err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Slot deleted successfully"})
}
