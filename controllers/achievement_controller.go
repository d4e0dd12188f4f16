package controllers

import (
	"context"
	"net/http"
	"time"

	"fitstride/db"
	"fitstride/internal/achievement"
	"fitstride/models"
	"fitstride/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
)

// AchievementView joins catalog display metadata with per-user state. A
// badge with no stored record is shown unearned at 0 progress.
type AchievementView struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	IconType    string     `json:"iconType"`
	IconColor   string     `json:"iconColor"`
	Earned      bool       `json:"earned"`
	Progress    float64    `json:"progress"`
	EarnedDate  *time.Time `json:"earnedDate,omitempty"`
}

// GetAchievements returns the full catalog merged with the current user's state
func GetAchievements(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := db.MongoDatabase.Collection("user_achievements").Find(ctx, bson.M{"userId": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch achievements"})
		return
	}
	defer cursor.Close(ctx)

	var stored []models.UserAchievement
	if err := cursor.All(ctx, &stored); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode achievements"})
		return
	}

	byID := make(map[string]models.UserAchievement, len(stored))
	for _, s := range stored {
		byID[s.AchievementID] = s
	}

	var views []AchievementView
	for _, badge := range achievement.DefaultCatalog() {
		view := AchievementView{
			ID:          badge.ID,
			Title:       badge.Title,
			Description: badge.Description,
			IconType:    badge.IconType,
			IconColor:   badge.IconColor,
		}
		if s, exists := byID[badge.ID]; exists {
			view.Earned = s.Earned
			view.Progress = s.Progress
			view.EarnedDate = s.EarnedDate
			if s.Earned {
				view.Progress = 100
			}
		}
		views = append(views, view)
	}

	c.JSON(http.StatusOK, gin.H{"achievements": views})
}

// RefreshAchievements re-runs the evaluation on demand and returns any
// newly earned badges
func RefreshAchievements(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	notifications, err := services.EvaluateUserAchievements(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to evaluate achievements"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":         "Achievements evaluated",
		"newAchievements": notifications,
	})
}
