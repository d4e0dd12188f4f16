package utils

import (
	"context"
	"fmt"
	"time"

	"fitstride/db"
	"fitstride/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// GetUserIDFromEmail resolves a user's ObjectID from their email
func GetUserIDFromEmail(email string) (primitive.ObjectID, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var user models.User
	err := db.MongoDatabase.Collection("users").FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return primitive.NilObjectID, fmt.Errorf("user not found: %s", email)
		}
		return primitive.NilObjectID, err
	}

	return user.ID, nil
}

// EnsureUserExists creates a user document on first login if none exists yet
func EnsureUserExists(email string) (primitive.ObjectID, error) {
	id, err := GetUserIDFromEmail(email)
	if err == nil {
		return id, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	user := models.User{
		ID:            primitive.NewObjectID(),
		Email:         email,
		DisplayName:   ExtractNameFromEmail(email),
		ProfilePublic: true,
		CreatedAt:     time.Now(),
	}
	if _, err := db.MongoDatabase.Collection("users").InsertOne(ctx, user); err != nil {
		return primitive.NilObjectID, fmt.Errorf("failed to create user: %w", err)
	}

	return user.ID, nil
}
