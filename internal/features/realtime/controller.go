package realtime

import (
	"net/http"

	users_models "casterdesk-backend/internal/features/users/models"
	users_services "casterdesk-backend/internal/features/users/services"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// AccessChecker verifies that the user may subscribe to a space's
// change feed. Wired from main to avoid a dependency cycle with spaces.
type AccessChecker func(spaceID uuid.UUID, user *users_models.User) (bool, error)

type RealtimeController struct {
	hub           *Hub
	userService   *users_services.UserService
	accessChecker AccessChecker
	upgrader      websocket.Upgrader
}

func (c *RealtimeController) SetAccessChecker(checker AccessChecker) {
	c.accessChecker = checker
}

func (c *RealtimeController) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/realtime/ws", c.Subscribe)
}

// Subscribe
// @Summary Subscribe to space change notifications
// @Description Upgrades to a WebSocket; pushes {table, spaceId} events on every mutation
// @Tags realtime
// @Param spaceId query string true "Space ID"
// @Param token query string true "Access token"
// @Success 101
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Router /realtime/ws [get]
func (c *RealtimeController) Subscribe(ctx *gin.Context) {
	// Browsers cannot set headers on WebSocket upgrades, so the token
	// is passed as a query parameter.
	user, err := c.userService.GetUserFromToken(ctx.Query("token"))
	if err != nil {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token"})
		return
	}

	spaceID, err := uuid.Parse(ctx.Query("spaceId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid space ID"})
		return
	}

	if c.accessChecker != nil {
		canAccess, err := c.accessChecker(spaceID, user)
		if err != nil || !canAccess {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "No access to this space"})
			return
		}
	}

	conn, err := c.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		return
	}

	c.hub.serveClient(&client{
		conn:    conn,
		spaceID: spaceID,
		send:    make(chan []byte, 16),
	})
}
