package realtime

import (
	users_services "casterdesk-backend/internal/features/users/services"
	"casterdesk-backend/internal/util/logger"

	"github.com/gorilla/websocket"
)

var hub = NewHub(logger.GetLogger())

var realtimeController = &RealtimeController{
	hub:         hub,
	userService: users_services.GetUserService(),
	upgrader: websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	},
}

func GetHub() *Hub {
	return hub
}

func GetRealtimeController() *RealtimeController {
	return realtimeController
}
