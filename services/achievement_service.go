package services

import (
	"context"
	"log"
	"time"

	"fitstride/db"
	"fitstride/internal/achievement"
	"fitstride/models"
	"fitstride/websocket"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BuildSnapshot assembles the activity view the achievement engine
// evaluates against. Missing history simply leaves zero values; the engine
// treats those as "no progress", never as errors.
func BuildSnapshot(ctx context.Context, userID primitive.ObjectID) (achievement.Snapshot, error) {
	var snap achievement.Snapshot

	var user models.User
	err := db.MongoDatabase.Collection("users").FindOne(ctx, bson.M{"_id": userID}).Decode(&user)
	if err != nil && err != mongo.ErrNoDocuments {
		return snap, err
	}
	snap.StartWeight = user.StartWeight
	snap.CurrentWeight = user.CurrentWeight
	snap.WeightGoal = user.WeightGoal
	snap.HasReachedWeightGoal = user.HasReachedWeightGoal
	snap.TargetCalories = user.TargetCalories
	snap.WaterTarget = user.WaterIntakeTarget

	cursor, err := db.MongoDatabase.Collection("workouts").Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return snap, err
	}
	var workouts []models.Workout
	if err := cursor.All(ctx, &workouts); err != nil {
		return snap, err
	}
	snap.CompletedWorkouts = len(workouts)
	for _, w := range workouts {
		snap.WorkoutDates = append(snap.WorkoutDates, w.Date)
		snap.TotalRunningDistance += w.DistanceKm
		snap.TotalWeightLifted += w.WeightLiftedKg
	}

	cursor, err = db.MongoDatabase.Collection("nutrition_logs").Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return snap, err
	}
	var nutrition []models.NutritionLog
	if err := cursor.All(ctx, &nutrition); err != nil {
		return snap, err
	}
	for _, n := range nutrition {
		snap.NutritionLogs = append(snap.NutritionLogs, achievement.NutritionEntry{Date: n.Date, Calories: n.Calories})
	}

	cursor, err = db.MongoDatabase.Collection("water_logs").Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return snap, err
	}
	var water []models.WaterLog
	if err := cursor.All(ctx, &water); err != nil {
		return snap, err
	}
	for _, w := range water {
		snap.WaterLogs = append(snap.WaterLogs, achievement.WaterEntry{Date: w.Date, Amount: w.Amount})
	}

	return snap, nil
}

// loadRecords fetches the user's stored achievement records
func loadRecords(ctx context.Context, userID primitive.ObjectID) ([]achievement.Record, error) {
	cursor, err := db.MongoDatabase.Collection("user_achievements").Find(ctx, bson.M{"userId": userID})
	if err != nil {
		return nil, err
	}

	var stored []models.UserAchievement
	if err := cursor.All(ctx, &stored); err != nil {
		return nil, err
	}

	records := make([]achievement.Record, 0, len(stored))
	for _, s := range stored {
		records = append(records, achievement.Record{
			ID:         s.AchievementID,
			Earned:     s.Earned,
			Progress:   s.Progress,
			EarnedDate: s.EarnedDate,
		})
	}
	return records, nil
}

// persistRecords upserts the merged record set
func persistRecords(ctx context.Context, userID primitive.ObjectID, records []achievement.Record) error {
	collection := db.MongoDatabase.Collection("user_achievements")
	now := time.Now()

	for _, r := range records {
		filter := bson.M{"userId": userID, "achievementId": r.ID}
		update := bson.M{"$set": bson.M{
			"earned":     r.Earned,
			"progress":   r.Progress,
			"earnedDate": r.EarnedDate,
			"updatedAt":  now,
		}}
		_, err := collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
		if err != nil {
			return err
		}
	}
	return nil
}

// EvaluateUserAchievements rebuilds the user's snapshot, runs the badge
// evaluation, persists the merged records, stores a notification per newly
// earned badge and pushes it over the WebSocket hub. Returns the formatted
// notifications in catalog order.
//
// Mongo is the single writer per user here; callers logging activity for
// the same user concurrently would need to serialize these calls.
func EvaluateUserAchievements(ctx context.Context, userID primitive.ObjectID) ([]achievement.Notification, error) {
	snap, err := BuildSnapshot(ctx, userID)
	if err != nil {
		return nil, err
	}

	prior, err := loadRecords(ctx, userID)
	if err != nil {
		return nil, err
	}

	result := achievement.Evaluate(achievement.DefaultCatalog(), snap, prior, time.Now())

	if err := persistRecords(ctx, userID, result.Records); err != nil {
		return nil, err
	}

	var notifications []achievement.Notification
	for _, badge := range result.NewlyEarned {
		n := achievement.FormatEarnedNotification(userID.Hex(), badge, time.Now())
		notifications = append(notifications, n)

		stored := models.Notification{
			ID:            primitive.NewObjectID(),
			UserID:        userID,
			Type:          n.Type,
			Title:         n.Title,
			Message:       n.Message,
			AchievementID: n.AchievementID,
			CreatedAt:     n.Timestamp,
		}
		if _, err := db.MongoDatabase.Collection("notifications").InsertOne(ctx, stored); err != nil {
			log.Printf("Error saving notification: %v", err)
			// Badge state is already persisted, keep going
		}

		websocket.PushUserNotification(userID.Hex(), n)
	}

	return notifications, nil
}
