package achievement

import (
	"fmt"
	"time"
)

// NotificationTypeEarned tags payloads produced for newly earned badges.
const NotificationTypeEarned = "achievement_earned"

// Notification is a display payload for one newly earned badge. Delivery
// (push, in-app, WebSocket) is the caller's concern.
type Notification struct {
	UserID        string    `json:"userId"`
	Type          string    `json:"type"`
	Title         string    `json:"title"`
	Message       string    `json:"message"`
	AchievementID string    `json:"achievementId"`
	Timestamp     time.Time `json:"timestamp"`
}

// FormatEarnedNotification builds the notification payload for a single
// newly earned badge. Call it once per NewlyEarned entry, in order.
func FormatEarnedNotification(userID string, badge Badge, now time.Time) Notification {
	return Notification{
		UserID:        userID,
		Type:          NotificationTypeEarned,
		Title:         "Achievement unlocked!",
		Message:       fmt.Sprintf("You earned the \"%s\" badge. %s", badge.Title, badge.Description),
		AchievementID: badge.ID,
		Timestamp:     now,
	}
}
