package game

import (
	"net/http"
	"slices"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/yashsinha880/Pointify/shared/logger"
)

type RoomHandler struct {
	room     *Room
	upgrader websocket.Upgrader
}

func NewRoomHandler(room *Room, allowedOrigins []string) *RoomHandler {
	return &RoomHandler{
		room: room,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				// non-browser clients send no Origin header
				return origin == "" || slices.Contains(allowedOrigins, origin)
			},
		},
	}
}

// ConnectHandler upgrades the request and starts the connection's pumps. The
// connection stays inert until its join message is processed by the room.
func (h *RoomHandler) ConnectHandler(ctx *gin.Context) {
	conn, err := h.upgrader.Upgrade(ctx.Writer, ctx.Request, nil)
	if err != nil {
		logger.Warningf("ws upgrade failed: %v", err)
		return
	}

	connID := uuid.NewString()
	logger.Debugf("connection %s opened from %s", connID, ctx.ClientIP())

	c := NewClient(connID, NewWebsocketConnection(conn), h.room)
	go c.ReadPump()
	go c.WritePump()
}
