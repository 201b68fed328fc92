package credits_controllers

import (
	"net/http"
	"strings"

	credits_dto "casterdesk-backend/internal/features/credits/dto"
	credits_services "casterdesk-backend/internal/features/credits/services"
	staff_models "casterdesk-backend/internal/features/staff/models"
	users_middleware "casterdesk-backend/internal/features/users/middleware"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type CreditController struct {
	ledgerService *credits_services.LedgerService
}

func (c *CreditController) RegisterRoutes(router gin.IRoutes) {
	router.POST("/spaces/:id/credits/adjust", c.AdjustCredits)
	router.GET("/spaces/:id/credits/leaderboard", c.GetLeaderboard)
	router.GET("/spaces/:id/credits/staff/:staffId", c.GetStaffTransactions)
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

// AdjustCredits
// @Summary Adjust a staff member's credits
// @Description Appends a signed ledger transaction and updates the balance
// @Tags credits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Param request body credits_dto.AdjustCreditsRequestDTO true "Adjustment data"
// @Success 200 {object} credits_models.CreditTransaction
// @Failure 403 {object} map[string]string
// @Router /spaces/{id}/credits/adjust [post]
func (c *CreditController) AdjustCredits(ctx *gin.Context) {
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

	var request credits_dto.AdjustCreditsRequestDTO
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	transaction, err := c.ledgerService.Adjust(spaceID, &request, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, transaction)
}

// GetLeaderboard
// @Summary Get the credit leaderboard for one staff role
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Param role query string true "Staff role (caster or observer)"
// @Success 200 {object} credits_dto.LeaderboardResponseDTO
// @Failure 403 {object} map[string]string
// @Router /spaces/{id}/credits/leaderboard [get]
func (c *CreditController) GetLeaderboard(ctx *gin.Context) {
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

	role := staff_models.StaffRole(ctx.Query("role"))

	response, err := c.ledgerService.GetLeaderboard(spaceID, role, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}

// GetStaffTransactions
// @Summary List a staff member's credit transactions, newest first
// @Tags credits
// @Produce json
// @Security BearerAuth
// @Param id path string true "Space ID"
// @Param staffId path string true "Staff member ID"
// @Success 200 {object} credits_dto.ListTransactionsResponseDTO
// @Failure 403 {object} map[string]string
// @Router /spaces/{id}/credits/staff/{staffId} [get]
func (c *CreditController) GetStaffTransactions(ctx *gin.Context) {
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

	staffID, err := uuid.Parse(ctx.Param("staffId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid staff member ID"})
		return
	}

	response, err := c.ledgerService.GetStaffTransactions(spaceID, staffID, user)
	if err != nil {
		ctx.JSON(statusFromError(err), gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, response)
}
