package websocket

import (
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// NotificationClient represents a client connected for notification updates
type NotificationClient struct {
	Conn     *websocket.Conn
	ClientID string
	UserID   string
	writeMu  sync.Mutex
}

// SafeWriteJSON safely writes JSON data to the client's WebSocket connection
func (nc *NotificationClient) SafeWriteJSON(v interface{}) error {
	nc.writeMu.Lock()
	defer nc.writeMu.Unlock()
	return nc.Conn.WriteJSON(v)
}

// Global notification hub
var (
	notificationClients = make(map[*NotificationClient]bool)
	notificationMutex   sync.RWMutex
)

// RegisterNotificationClient registers a client for notification updates
func RegisterNotificationClient(client *NotificationClient) {
	notificationMutex.Lock()
	defer notificationMutex.Unlock()
	notificationClients[client] = true
	log.Printf("Notification client registered. Total clients: %d", len(notificationClients))
}

// UnregisterNotificationClient removes a client and closes its connection
func UnregisterNotificationClient(client *NotificationClient) {
	notificationMutex.Lock()
	defer notificationMutex.Unlock()
	delete(notificationClients, client)
	client.Conn.Close()
	log.Printf("Notification client unregistered. Total clients: %d", len(notificationClients))
}

// PushUserNotification sends a payload to every connection owned by userID
func PushUserNotification(userID string, payload interface{}) {
	notificationMutex.RLock()
	defer notificationMutex.RUnlock()

	for client := range notificationClients {
		if client.UserID != userID {
			continue
		}
		if err := client.SafeWriteJSON(payload); err != nil {
			log.Printf("Error sending notification to client %s: %v", client.ClientID, err)
		}
	}
}

// BroadcastNotification sends a payload to every connected client
func BroadcastNotification(payload interface{}) {
	notificationMutex.RLock()
	defer notificationMutex.RUnlock()

	for client := range notificationClients {
		if err := client.SafeWriteJSON(payload); err != nil {
			log.Printf("Error broadcasting to client %s: %v", client.ClientID, err)
		}
	}
}

// heartbeat keeps idle connections alive
func heartbeat(client *NotificationClient) {
	ticker := time.NewTicker(30 * time.Second)
	defer ticker.Stop()

	for range ticker.C {
		client.writeMu.Lock()
		err := client.Conn.WriteMessage(websocket.PingMessage, nil)
		client.writeMu.Unlock()
		if err != nil {
			return
		}
	}
}
