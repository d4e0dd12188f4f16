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
)

// currentUserID resolves the authenticated user's ObjectID from context
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	email := c.GetString("email")
	if email == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return primitive.NilObjectID, false
	}
	id, err := utils.GetUserIDFromEmail(email)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to get user ID"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// SendFriendRequest creates a pending friendship
func SendFriendRequest(c *gin.Context) {
	requesterID, ok := currentUserID(c)
	if !ok {
		return
	}

	recipientID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if requesterID == recipientID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot friend yourself"})
		return
	}

	// Rate limiting (5 seconds between requests)
	if db.RedisClient != nil {
		rateKey := "friend:rate:" + requesterID.Hex()
		exists, _ := db.RedisClient.Exists(c, rateKey).Result()
		if exists > 0 {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Please wait before sending another friend request"})
			return
		}
		db.RedisClient.Set(c, rateKey, "1", 5*time.Second)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Make sure the recipient exists
	count, err := db.MongoDatabase.Collection("users").CountDocuments(ctx, bson.M{"_id": recipientID})
	if err != nil || count == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}

	friendCollection := db.MongoDatabase.Collection("friendships")

	// Check for an existing relationship in either direction
	var existing models.Friendship
	err = friendCollection.FindOne(ctx, bson.M{"$or": []bson.M{
		{"requesterId": requesterID, "recipientId": recipientID},
		{"requesterId": recipientID, "recipientId": requesterID},
	}}).Decode(&existing)
	if err == nil {
		if existing.Status == models.FriendshipAccepted {
			c.JSON(http.StatusOK, gin.H{"message": "Already friends"})
		} else {
			c.JSON(http.StatusOK, gin.H{"message": "Friend request already pending"})
		}
		return
	}

	friendship := models.Friendship{
		ID:          primitive.NewObjectID(),
		RequesterID: requesterID,
		RecipientID: recipientID,
		Status:      models.FriendshipPending,
		CreatedAt:   time.Now(),
	}

	if _, err := friendCollection.InsertOne(ctx, friendship); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send friend request"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friend request sent"})
}

// AcceptFriendRequest accepts a pending request addressed to the current user
func AcceptFriendRequest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	requesterID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	now := time.Now()
	result, err := db.MongoDatabase.Collection("friendships").UpdateOne(
		ctx,
		bson.M{"requesterId": requesterID, "recipientId": userID, "status": models.FriendshipPending},
		bson.M{"$set": bson.M{"status": models.FriendshipAccepted, "respondedAt": now}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to accept friend request"})
		return
	}
	if result.MatchedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No pending friend request from this user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friend request accepted"})
}

// DeclineFriendRequest removes a pending request addressed to the current user
func DeclineFriendRequest(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	requesterID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := db.MongoDatabase.Collection("friendships").DeleteOne(
		ctx,
		bson.M{"requesterId": requesterID, "recipientId": userID, "status": models.FriendshipPending},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decline friend request"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusNotFound, gin.H{"error": "No pending friend request from this user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friend request declined"})
}

// RemoveFriend deletes an accepted friendship in either direction
func RemoveFriend(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	otherID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	result, err := db.MongoDatabase.Collection("friendships").DeleteOne(ctx, bson.M{
		"status": models.FriendshipAccepted,
		"$or": []bson.M{
			{"requesterId": userID, "recipientId": otherID},
			{"requesterId": otherID, "recipientId": userID},
		},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove friend"})
		return
	}
	if result.DeletedCount == 0 {
		c.JSON(http.StatusOK, gin.H{"message": "Not friends with this user"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Friend removed"})
}

// GetFriends lists the current user's accepted friends
func GetFriends(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := db.MongoDatabase.Collection("friendships").Find(ctx, bson.M{
		"status": models.FriendshipAccepted,
		"$or": []bson.M{
			{"requesterId": userID},
			{"recipientId": userID},
		},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch friends"})
		return
	}
	defer cursor.Close(ctx)

	var friendships []models.Friendship
	if err := cursor.All(ctx, &friendships); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch friends"})
		return
	}

	var friendIDs []primitive.ObjectID
	for _, f := range friendships {
		if f.RequesterID == userID {
			friendIDs = append(friendIDs, f.RecipientID)
		} else {
			friendIDs = append(friendIDs, f.RequesterID)
		}
	}

	users, err := loadUsersByIDs(ctx, friendIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load friend details"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"friends": users})
}

// GetPendingRequests lists pending requests addressed to the current user
func GetPendingRequests(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := db.MongoDatabase.Collection("friendships").Find(ctx, bson.M{
		"recipientId": userID,
		"status":      models.FriendshipPending,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch friend requests"})
		return
	}
	defer cursor.Close(ctx)

	var friendships []models.Friendship
	if err := cursor.All(ctx, &friendships); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch friend requests"})
		return
	}

	var requesterIDs []primitive.ObjectID
	for _, f := range friendships {
		requesterIDs = append(requesterIDs, f.RequesterID)
	}

	users, err := loadUsersByIDs(ctx, requesterIDs)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load requester details"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"requests": users})
}

func loadUsersByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.User, error) {
	var users []models.User
	if len(ids) == 0 {
		return users, nil
	}

	cursor, err := db.MongoDatabase.Collection("users").Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}
