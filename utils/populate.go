package utils

import (
	"context"
	"time"

	"fitstride/db"
	"fitstride/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PopulateTestUsers inserts sample users into the database
func PopulateTestUsers() {
	collection := db.MongoDatabase.Collection("users")

	// Define sample users
	users := []models.User{
		{
			ID:                primitive.NewObjectID(),
			Email:             "alice@example.com",
			DisplayName:       "Alice Johnson",
			Bio:               "Morning runner",
			StartWeight:       68,
			CurrentWeight:     66,
			WeightGoal:        63,
			TargetCalories:    2000,
			WaterIntakeTarget: 2000,
			ProfilePublic:     true,
			CreatedAt:         time.Now(),
		},
		{
			ID:             primitive.NewObjectID(),
			Email:          "bob@example.com",
			DisplayName:    "Bob Smith",
			Bio:            "Powerlifting and pizza",
			TargetCalories: 2800,
			ProfilePublic:  true,
			CreatedAt:      time.Now(),
		},
		{
			ID:            primitive.NewObjectID(),
			Email:         "carol@example.com",
			DisplayName:   "Carol Davis",
			Bio:           "Training for a half marathon",
			ProfilePublic: true,
			CreatedAt:     time.Now(),
		},
	}

	// Insert users, skipping any that already exist
	for _, user := range users {
		count, err := collection.CountDocuments(context.Background(), bson.M{"email": user.Email})
		if err != nil || count > 0 {
			continue
		}
		collection.InsertOne(context.Background(), user)
	}
}
