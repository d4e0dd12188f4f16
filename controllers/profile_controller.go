package controllers

import (
	"context"
	"net/http"
	"time"

	"fitstride/db"
	"fitstride/models"
	"fitstride/utils"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetProfile retrieves and returns user profile data
func GetProfile(ctx *gin.Context) {
	email := ctx.GetString("email")
	if email == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Fetch user profile
	var user models.User
	err := db.MongoDatabase.Collection("users").FindOne(dbCtx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	// Set avatar URL with DiceBear fallback
	profileAvatarURL := user.AvatarURL
	if profileAvatarURL == "" {
		profileName := user.DisplayName
		if profileName == "" {
			profileName = utils.ExtractNameFromEmail(email)
		}
		profileAvatarURL = "https://api.dicebear.com/9.x/adventurer/svg?seed=" + profileName
	}

	// Aggregate workout totals
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$match", Value: bson.M{"userId": user.ID}}},
		bson.D{{Key: "$group", Value: bson.M{
			"_id":           nil,
			"totalWorkouts": bson.M{"$sum": 1},
			"totalDistance": bson.M{"$sum": "$distanceKm"},
			"totalLifted":   bson.M{"$sum": "$weightLiftedKg"},
			"totalMinutes":  bson.M{"$sum": "$durationMinutes"},
		}}},
	}
	statsCursor, err := db.MongoDatabase.Collection("workouts").Aggregate(dbCtx, pipeline)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error aggregating stats"})
		return
	}
	defer statsCursor.Close(dbCtx)

	var stats struct {
		TotalWorkouts int     `bson:"totalWorkouts" json:"totalWorkouts"`
		TotalDistance float64 `bson:"totalDistance" json:"totalDistance"`
		TotalLifted   float64 `bson:"totalLifted" json:"totalLifted"`
		TotalMinutes  int     `bson:"totalMinutes" json:"totalMinutes"`
	}
	if statsCursor.Next(dbCtx) {
		statsCursor.Decode(&stats)
	}

	// Build weight history series for the chart
	weightCursor, err := db.MongoDatabase.Collection("weight_entries").Find(
		dbCtx,
		bson.M{"userId": user.ID},
		options.Find().SetSort(bson.M{"date": 1}),
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching weight history"})
		return
	}
	defer weightCursor.Close(dbCtx)

	var weightHistory []struct {
		Date  time.Time `bson:"date" json:"date"`
		Value float64   `bson:"value" json:"value"`
	}
	if err := weightCursor.All(dbCtx, &weightHistory); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error decoding weight history"})
		return
	}

	// Recent workouts
	recentCursor, err := db.MongoDatabase.Collection("workouts").Find(
		dbCtx,
		bson.M{"userId": user.ID},
		options.Find().SetSort(bson.M{"date": -1}).SetLimit(5),
	)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error fetching recent workouts"})
		return
	}
	defer recentCursor.Close(dbCtx)

	var recentWorkouts []models.Workout
	if err := recentCursor.All(dbCtx, &recentWorkouts); err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Error decoding recent workouts"})
		return
	}

	// Friend count
	friendCount, _ := db.MongoDatabase.Collection("friendships").CountDocuments(dbCtx, bson.M{
		"status": models.FriendshipAccepted,
		"$or": []bson.M{
			{"requesterId": user.ID},
			{"recipientId": user.ID},
		},
	})

	// Earned badge count
	earnedCount, _ := db.MongoDatabase.Collection("user_achievements").CountDocuments(dbCtx, bson.M{
		"userId": user.ID,
		"earned": true,
	})

	response := gin.H{
		"profile": gin.H{
			"displayName":       user.DisplayName,
			"email":             user.Email,
			"bio":               user.Bio,
			"avatarUrl":         profileAvatarURL,
			"startWeight":       user.StartWeight,
			"currentWeight":     user.CurrentWeight,
			"weightGoal":        user.WeightGoal,
			"targetCalories":    user.TargetCalories,
			"waterIntakeTarget": user.WaterIntakeTarget,
			"profilePublic":     user.ProfilePublic,
			"showWeight":        user.ShowWeight,
		},
		"stats":          stats,
		"weightHistory":  weightHistory,
		"recentWorkouts": recentWorkouts,
		"friendCount":    friendCount,
		"earnedBadges":   earnedCount,
	}
	ctx.JSON(http.StatusOK, response)
}

// visitorProfileView builds the profile fields shown to another user. Weight
// data stays hidden unless the owner enabled the showWeight toggle.
func visitorProfileView(user models.User, avatarURL string) gin.H {
	view := gin.H{
		"id":          user.ID.Hex(),
		"displayName": user.DisplayName,
		"bio":         user.Bio,
		"avatarUrl":   avatarURL,
	}
	if user.ShowWeight {
		view["startWeight"] = user.StartWeight
		view["currentWeight"] = user.CurrentWeight
		view["weightGoal"] = user.WeightGoal
	}
	return view
}

// GetUserProfile returns another user's profile. Public profiles are visible
// to everyone; private ones only to accepted friends.
func GetUserProfile(ctx *gin.Context) {
	viewerID, ok := currentUserID(ctx)
	if !ok {
		return
	}

	targetID, err := primitive.ObjectIDFromHex(ctx.Param("userId"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var user models.User
	err = db.MongoDatabase.Collection("users").FindOne(dbCtx, bson.M{"_id": targetID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		} else {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	if !user.ProfilePublic && viewerID != targetID {
		friendCount, err := db.MongoDatabase.Collection("friendships").CountDocuments(dbCtx, bson.M{
			"status": models.FriendshipAccepted,
			"$or": []bson.M{
				{"requesterId": viewerID, "recipientId": targetID},
				{"requesterId": targetID, "recipientId": viewerID},
			},
		})
		if err != nil {
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		if friendCount == 0 {
			ctx.JSON(http.StatusForbidden, gin.H{"error": "This profile is private"})
			return
		}
	}

	avatarURL := user.AvatarURL
	if avatarURL == "" {
		name := user.DisplayName
		if name == "" {
			name = utils.ExtractNameFromEmail(user.Email)
		}
		avatarURL = "https://api.dicebear.com/9.x/adventurer/svg?seed=" + name
	}

	earnedCount, _ := db.MongoDatabase.Collection("user_achievements").CountDocuments(dbCtx, bson.M{
		"userId": user.ID,
		"earned": true,
	})

	view := visitorProfileView(user, avatarURL)
	view["earnedBadges"] = earnedCount

	ctx.JSON(http.StatusOK, gin.H{"profile": view})
}

// UpdateProfile modifies profile fields, body metrics, targets and privacy toggles
func UpdateProfile(ctx *gin.Context) {
	email := ctx.GetString("email")
	if email == "" {
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized", "message": "Missing user email in context"})
		return
	}

	var updateData struct {
		DisplayName       *string  `json:"displayName"`
		Bio               *string  `json:"bio"`
		StartWeight       *float64 `json:"startWeight"`
		CurrentWeight     *float64 `json:"currentWeight"`
		WeightGoal        *float64 `json:"weightGoal"`
		TargetCalories    *float64 `json:"targetCalories"`
		WaterIntakeTarget *float64 `json:"waterIntakeTarget"`
		ProfilePublic     *bool    `json:"profilePublic"`
		ShowWeight        *bool    `json:"showWeight"`
	}
	if err := ctx.ShouldBindJSON(&updateData); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	set := bson.M{"updatedAt": time.Now()}
	if updateData.DisplayName != nil {
		set["displayName"] = *updateData.DisplayName
	}
	if updateData.Bio != nil {
		set["bio"] = *updateData.Bio
	}
	if updateData.StartWeight != nil {
		set["startWeight"] = *updateData.StartWeight
	}
	if updateData.CurrentWeight != nil {
		set["currentWeight"] = *updateData.CurrentWeight
	}
	if updateData.WeightGoal != nil {
		set["weightGoal"] = *updateData.WeightGoal
	}
	if updateData.TargetCalories != nil {
		set["targetCalories"] = *updateData.TargetCalories
	}
	if updateData.WaterIntakeTarget != nil {
		set["waterIntakeTarget"] = *updateData.WaterIntakeTarget
	}
	if updateData.ProfilePublic != nil {
		set["profilePublic"] = *updateData.ProfilePublic
	}
	if updateData.ShowWeight != nil {
		set["showWeight"] = *updateData.ShowWeight
	}

	dbCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, err := db.MongoDatabase.Collection("users").UpdateOne(dbCtx, bson.M{"email": email}, bson.M{"$set": set})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully"})
}
