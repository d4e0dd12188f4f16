package controllers

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"fitstride/db"
	"fitstride/internal/achievement"
	"fitstride/models"
	"fitstride/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// weightGoalReached reports whether a new measurement crosses the user's
// weight goal, with the direction implied by the starting weight. A goal at
// or below the start is a loss goal; above it, a gain goal.
func weightGoalReached(start, goal, value float64) bool {
	if goal <= start {
		return value <= goal
	}
	return value >= goal
}

// evaluateAfterLog runs the achievement pass after an activity write. A
// failed evaluation never fails the log request; newly earned badges are
// returned for inclusion in the response.
func evaluateAfterLog(ctx context.Context, userID primitive.ObjectID) []achievement.Notification {
	notifications, err := services.EvaluateUserAchievements(ctx, userID)
	if err != nil {
		log.Printf("Error evaluating achievements for %s: %v", userID.Hex(), err)
		return nil
	}
	return notifications
}

// LogWorkout records a completed workout and re-evaluates achievements
func LogWorkout(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Type            string     `json:"type" binding:"required"`
		DurationMinutes int        `json:"durationMinutes" binding:"required,gt=0"`
		DistanceKm      float64    `json:"distanceKm"`
		WeightLiftedKg  float64    `json:"weightLiftedKg"`
		CaloriesBurned  float64    `json:"caloriesBurned"`
		Date            *time.Time `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	workout := models.Workout{
		ID:              primitive.NewObjectID(),
		UserID:          userID,
		Type:            req.Type,
		DurationMinutes: req.DurationMinutes,
		DistanceKm:      req.DistanceKm,
		WeightLiftedKg:  req.WeightLiftedKg,
		CaloriesBurned:  req.CaloriesBurned,
		Date:            date,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if _, err := db.MongoDatabase.Collection("workouts").InsertOne(ctx, workout); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log workout"})
		return
	}

	newAchievements := evaluateAfterLog(ctx, userID)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Workout logged",
		"workout":         workout,
		"newAchievements": newAchievements,
	})
}

// GetWorkouts lists the current user's workouts, newest first
func GetWorkouts(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := db.MongoDatabase.Collection("workouts").Find(
		ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"date": -1}),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch workouts"})
		return
	}
	defer cursor.Close(ctx)

	var workouts []models.Workout
	if err := cursor.All(ctx, &workouts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode workouts"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workouts": workouts})
}

// LogNutrition records a meal entry and re-evaluates achievements
func LogNutrition(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		MealType string     `json:"mealType"`
		Calories float64    `json:"calories" binding:"required,gt=0"`
		Date     *time.Time `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	entry := models.NutritionLog{
		ID:       primitive.NewObjectID(),
		UserID:   userID,
		MealType: req.MealType,
		Calories: req.Calories,
		Date:     date,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if _, err := db.MongoDatabase.Collection("nutrition_logs").InsertOne(ctx, entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log nutrition"})
		return
	}

	newAchievements := evaluateAfterLog(ctx, userID)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Nutrition logged",
		"entry":           entry,
		"newAchievements": newAchievements,
	})
}

// GetNutritionLogs lists the current user's nutrition entries, newest first
func GetNutritionLogs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := db.MongoDatabase.Collection("nutrition_logs").Find(
		ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"date": -1}),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch nutrition logs"})
		return
	}
	defer cursor.Close(ctx)

	var logs []models.NutritionLog
	if err := cursor.All(ctx, &logs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode nutrition logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// LogWater records a water intake entry and re-evaluates achievements
func LogWater(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Amount float64    `json:"amount" binding:"required,gt=0"`
		Date   *time.Time `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	entry := models.WaterLog{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		Amount: req.Amount,
		Date:   date,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if _, err := db.MongoDatabase.Collection("water_logs").InsertOne(ctx, entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log water intake"})
		return
	}

	newAchievements := evaluateAfterLog(ctx, userID)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Water intake logged",
		"entry":           entry,
		"newAchievements": newAchievements,
	})
}

// GetWaterLogs lists the current user's water entries, newest first
func GetWaterLogs(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := db.MongoDatabase.Collection("water_logs").Find(
		ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"date": -1}),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch water logs"})
		return
	}
	defer cursor.Close(ctx)

	var logs []models.WaterLog
	if err := cursor.All(ctx, &logs); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode water logs"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logs": logs})
}

// LogWeight records a weight measurement, updates the profile's current
// weight and re-evaluates achievements
func LogWeight(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Value float64    `json:"value" binding:"required,gt=0"`
		Date  *time.Time `json:"date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	date := time.Now()
	if req.Date != nil {
		date = *req.Date
	}

	entry := models.WeightEntry{
		ID:     primitive.NewObjectID(),
		UserID: userID,
		Value:  req.Value,
		Date:   date,
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if _, err := db.MongoDatabase.Collection("weight_entries").InsertOne(ctx, entry); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to log weight"})
		return
	}

	// Keep the profile's current weight in sync; the first entry also
	// becomes the starting weight for goal progress. Goal direction is
	// undefined until a start weight exists, so the entry that establishes
	// it never latches the goal flag.
	var user models.User
	err := db.MongoDatabase.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err == nil {
		set := bson.M{"currentWeight": req.Value, "updatedAt": time.Now()}
		if user.StartWeight == 0 {
			set["startWeight"] = req.Value
		} else if user.WeightGoal != 0 && !user.HasReachedWeightGoal &&
			weightGoalReached(user.StartWeight, user.WeightGoal, req.Value) {
			set["hasReachedWeightGoal"] = true
		}
		db.MongoDatabase.Collection("users").UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": set})
	} else if err != mongo.ErrNoDocuments {
		log.Printf("Error updating current weight: %v", err)
	}

	newAchievements := evaluateAfterLog(ctx, userID)

	c.JSON(http.StatusOK, gin.H{
		"message":         "Weight logged",
		"entry":           entry,
		"newAchievements": newAchievements,
	})
}

// GetWeightHistory lists the current user's weight entries, oldest first
func GetWeightHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := db.MongoDatabase.Collection("weight_entries").Find(
		ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"date": 1}),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch weight history"})
		return
	}
	defer cursor.Close(ctx)

	var entries []models.WeightEntry
	if err := cursor.All(ctx, &entries); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode weight history"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"entries": entries})
}

// GetProgressHistory returns chart-ready series: weight over time and
// workouts per ISO week
func GetProgressHistory(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	weightCursor, err := db.MongoDatabase.Collection("weight_entries").Find(
		ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"date": 1}),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch weight history"})
		return
	}
	defer weightCursor.Close(ctx)

	var weightSeries []struct {
		Date  time.Time `bson:"date" json:"date"`
		Value float64   `bson:"value" json:"value"`
	}
	if err := weightCursor.All(ctx, &weightSeries); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode weight history"})
		return
	}

	workoutCursor, err := db.MongoDatabase.Collection("workouts").Find(
		ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"date": 1}),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch workouts"})
		return
	}
	defer workoutCursor.Close(ctx)

	var workouts []models.Workout
	if err := workoutCursor.All(ctx, &workouts); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode workouts"})
		return
	}

	type weekPoint struct {
		Week     string `json:"week"`
		Workouts int    `json:"workouts"`
	}
	var weeklySeries []weekPoint
	counts := map[string]int{}
	var weekOrder []string
	for _, w := range workouts {
		year, week := w.Date.ISOWeek()
		label := fmt.Sprintf("%d-W%02d", year, week)
		if _, seen := counts[label]; !seen {
			weekOrder = append(weekOrder, label)
		}
		counts[label]++
	}
	for _, label := range weekOrder {
		weeklySeries = append(weeklySeries, weekPoint{Week: label, Workouts: counts[label]})
	}

	c.JSON(http.StatusOK, gin.H{
		"weightHistory":  weightSeries,
		"weeklyWorkouts": weeklySeries,
	})
}
