package handlers

import (
	"net/http"

	"wheel_backend/internal/logger"
	"wheel_backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Feed upgrades an admin connection to the live spin feed.
func (h *Handler) Feed(c *gin.Context) {
	username, ok := getUsername(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Warn("feed upgrade failed", "user", username, "error", err)
		return
	}

	client := ws.NewClient(username, conn, h.Hub)
	go client.Run()
}
