package websocket

import (
	"log"
	"net/http"

	"fitstride/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// NotificationsHandler upgrades the connection and registers the client for
// per-user notification pushes. The token is accepted via query parameter
// because browsers cannot set headers on WebSocket upgrades.
func NotificationsHandler(c *gin.Context) {
	tokenString := c.Query("token")
	if tokenString == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization token required"})
		return
	}

	valid, email, err := utils.ValidateTokenAndFetchEmail(tokenString)
	if err != nil || !valid {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return
	}

	userID, err := utils.GetUserIDFromEmail(email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to get user ID"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("Failed to upgrade websocket connection: %v", err)
		return
	}

	client := &NotificationClient{
		Conn:     conn,
		ClientID: uuid.NewString(),
		UserID:   userID.Hex(),
	}
	RegisterNotificationClient(client)
	go heartbeat(client)

	// Read loop: we ignore inbound messages, but reading is required to
	// detect disconnects and process control frames.
	go func() {
		defer UnregisterNotificationClient(client)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
