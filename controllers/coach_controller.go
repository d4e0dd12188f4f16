package controllers

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"fitstride/services"

	"github.com/gin-gonic/gin"
)

// GetDailyTip returns one AI-generated coaching tip based on the user's
// recent activity
func GetDailyTip(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
	defer cancel()

	snap, err := services.BuildSnapshot(ctx, userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load activity history"})
		return
	}

	summary := fmt.Sprintf(
		"Completed workouts: %d. Total running distance: %.1f km. Total weight lifted: %.0f kg. Nutrition entries logged: %d. Water entries logged: %d.",
		snap.CompletedWorkouts,
		snap.TotalRunningDistance,
		snap.TotalWeightLifted,
		len(snap.NutritionLogs),
		len(snap.WaterLogs),
	)

	tip, err := services.GenerateDailyTip(ctx, summary)
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Coach is unavailable right now"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"tip": tip})
}
