package staff_controllers

import (
	"net/http"
	"strings"

	staff_dto "casterdesk-backend/internal/features/staff/dto"
	staff_models "casterdesk-backend/internal/features/staff/models"
	staff_services "casterdesk-backend/internal/features/staff/services"
	users_middleware "casterdesk-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type StaffController struct {
	staffService *staff_services.StaffService
}

func (c *StaffController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/spaces/:id/staff", c.CreateStaffMember)
	router.GET("/spaces/:id/staff", c.GetSpaceStaff)
	router.GET("/staff/:staffId", c.GetStaffMember)
	router.PUT("/staff/:staffId", c.UpdateStaffMember)
	router.DELETE("/staff/:staffId", c.DeleteStaffMember)
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

// CreateStaffMember
// @Summary Add a staff member to a space
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Param request body staff_dto.CreateStaffMemberRequestDTO true "Staff member data"
// @Success 200 {object} staff_models.StaffMember
// @Failure 403 {object} map[string]string
// @Router /spaces/{id}/staff [post]
func (c *StaffController) CreateStaffMember(ctx *gin.Context) {
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

	var request staff_dto.CreateStaffMemberRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	member, err := c.staffService.CreateStaffMember(spaceID, &request, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, member)
}

// GetSpaceStaff
// @Summary List staff members of a space
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Param role query string false "Filter by role (caster or observer)"
// @Success 200 {object} staff_dto.ListStaffResponseDTO
// @Failure 403 {object} map[string]string
// @Router /spaces/{id}/staff [get]
func (c *StaffController) GetSpaceStaff(ctx *gin.Context) {
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

	var role *staff_models.StaffRole
	if roleParam := ctx.Query("role"); roleParam != "" {
		staffRole := staff_models.StaffRole(roleParam)
		role = &staffRole
	}

	response, err := c.staffService.GetSpaceStaff(spaceID, role, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetStaffMember
// @Summary Get a staff member
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param staffId path string true "Staff member ID"
// @Success 200 {object} staff_models.StaffMember
// @Failure 404 {object} map[string]string
// @Router /staff/{staffId} [get]
func (c *StaffController) GetStaffMember(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	memberID, err := uuid.Parse(ctx.Param("staffId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff member ID"})
		return
	}

	member, err := c.staffService.GetStaffMember(memberID, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, member)
}

// UpdateStaffMember
// @Summary Update a staff member
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param staffId path string true "Staff member ID"
// @Param request body staff_dto.UpdateStaffMemberRequestDTO true "Staff member data"
// @Success 200 {object} staff_models.StaffMember
// @Failure 403 {object} map[string]string
// @Router /staff/{staffId} [put]
func (c *StaffController) UpdateStaffMember(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	memberID, err := uuid.Parse(ctx.Param("staffId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff member ID"})
		return
	}

	var request staff_dto.UpdateStaffMemberRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	member, err := c.staffService.UpdateStaffMember(memberID, &request, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, member)
}

// DeleteStaffMember
// @Summary Remove a staff member
// @Tags staff
// @Produce json
// @Security BearerAuth
// @Param staffId path string true "Staff member ID"
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /staff/{staffId} [delete]
func (c *StaffController) DeleteStaffMember(ctx *gin.Context) {
	user, ok := users_middleware.GetUserFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "User not authenticated"})
		return
	}

	memberID, err := uuid.Parse(ctx.Param("staffId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff member ID"})
		return
	}

	if err := c.staffService.DeleteStaffMember(memberID, user); err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Staff member removed successfully"})
}
