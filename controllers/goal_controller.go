package controllers

import (
	"context"
	"net/http"
	"time"

	"fitstride/db"
	"fitstride/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CreateGoal adds a new goal for the current user
func CreateGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	var req struct {
		Title       string     `json:"title" binding:"required"`
		Category    string     `json:"category" binding:"required"`
		TargetValue float64    `json:"targetValue" binding:"required,gt=0"`
		Unit        string     `json:"unit"`
		Deadline    *time.Time `json:"deadline"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	goal := models.Goal{
		ID:          primitive.NewObjectID(),
		UserID:      userID,
		Title:       req.Title,
		Category:    req.Category,
		TargetValue: req.TargetValue,
		Unit:        req.Unit,
		Deadline:    req.Deadline,
		CreatedAt:   time.Now(),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := db.MongoDatabase.Collection("goals").InsertOne(ctx, goal); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create goal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal created", "goal": goal})
}

// GetGoals lists the current user's goals, newest first
func GetGoals(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := db.MongoDatabase.Collection("goals").Find(
		ctx,
		bson.M{"userId": userID},
		options.Find().SetSort(bson.M{"createdAt": -1}),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch goals"})
		return
	}
	defer cursor.Close(ctx)

	var goals []models.Goal
	if err := cursor.All(ctx, &goals); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode goals"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"goals": goals})
}

// UpdateGoal updates a goal's current value and fields; reaching the target
// marks it completed
func UpdateGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	goalID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goal ID"})
		return
	}

	var req struct {
		Title        *string    `json:"title"`
		CurrentValue *float64   `json:"currentValue"`
		TargetValue  *float64   `json:"targetValue"`
		Deadline     *time.Time `json:"deadline"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	collection := db.MongoDatabase.Collection("goals")

	var goal models.Goal
	if err := collection.FindOne(ctx, bson.M{"_id": goalID, "userId": userID}).Decode(&goal); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if req.Title != nil {
		set["title"] = *req.Title
	}
	if req.TargetValue != nil {
		goal.TargetValue = *req.TargetValue
		set["targetValue"] = *req.TargetValue
	}
	if req.CurrentValue != nil {
		goal.CurrentValue = *req.CurrentValue
		set["currentValue"] = *req.CurrentValue
	}
	if req.Deadline != nil {
		set["deadline"] = *req.Deadline
	}
	// Completion never un-completes once reached
	if !goal.Completed && goal.TargetValue > 0 && goal.CurrentValue >= goal.TargetValue {
		set["completed"] = true
	}

	if _, err := collection.UpdateOne(ctx, bson.M{"_id": goalID, "userId": userID}, bson.M{"$set": set}); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update goal"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal updated"})
}

// DeleteGoal removes one of the current user's goals
func DeleteGoal(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	goalID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid goal ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	result, err := db.MongoDatabase.Collection("goals").DeleteOne(ctx, bson.M{"_id": goalID, "userId": userID})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete goal"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "Goal not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Goal deleted"})
}
