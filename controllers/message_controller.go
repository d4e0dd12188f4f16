package controllers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"fitstride/db"
	"fitstride/models"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// SendMessage sends a direct message to another user
func SendMessage(c *gin.Context) {
	senderID, ok := currentUserID(c)
	if !ok {
		return
	}

	recipientID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	if senderID == recipientID {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Cannot message yourself"})
		return
	}

	var req struct {
		Content string `json:"content" binding:"required,max=2000"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "message": err.Error()})
		return
	}

	// Rate limiting (1 second between messages)
	if db.RedisClient != nil {
		rateKey := "message:rate:" + senderID.Hex()
		exists, _ := db.RedisClient.Exists(c, rateKey).Result()
		if exists > 0 {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "Sending messages too fast"})
			return
		}
		db.RedisClient.Set(c, rateKey, "1", time.Second)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Messaging is limited to accepted friends
	count, err := db.MongoDatabase.Collection("friendships").CountDocuments(ctx, bson.M{
		"status": models.FriendshipAccepted,
		"$or": []bson.M{
			{"requesterId": senderID, "recipientId": recipientID},
			{"requesterId": recipientID, "recipientId": senderID},
		},
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check friendship"})
		return
	}
	if count == 0 {
		c.JSON(http.StatusForbidden, gin.H{"error": "You can only message friends"})
		return
	}

	message := models.Message{
		ID:          primitive.NewObjectID(),
		SenderID:    senderID,
		RecipientID: recipientID,
		Content:     req.Content,
		CreatedAt:   time.Now(),
	}

	if _, err := db.MongoDatabase.Collection("messages").InsertOne(ctx, message); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message sent", "data": message})
}

// GetConversation returns messages between the current user and another
// user, newest first. Clients poll with ?before=<RFC3339> for older pages.
func GetConversation(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	otherID, err := primitive.ObjectIDFromHex(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid user ID"})
		return
	}

	limit := int64(50)
	if limitStr := c.Query("limit"); limitStr != "" {
		if parsed, err := strconv.Atoi(limitStr); err == nil && parsed > 0 && parsed <= 100 {
			limit = int64(parsed)
		}
	}

	filter := bson.M{"$or": []bson.M{
		{"senderId": userID, "recipientId": otherID},
		{"senderId": otherID, "recipientId": userID},
	}}
	if beforeStr := c.Query("before"); beforeStr != "" {
		before, err := time.Parse(time.RFC3339, beforeStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid before timestamp"})
			return
		}
		filter["createdAt"] = bson.M{"$lt": before}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := db.MongoDatabase.Collection("messages").Find(
		ctx,
		filter,
		options.Find().SetSort(bson.M{"createdAt": -1}).SetLimit(limit),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
		return
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode messages"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"messages": messages})
}

// GetConversations lists the other users the current user has exchanged
// messages with, with unread counts
func GetConversations(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cursor, err := db.MongoDatabase.Collection("messages").Find(
		ctx,
		bson.M{"$or": []bson.M{{"senderId": userID}, {"recipientId": userID}}},
		options.Find().SetSort(bson.M{"createdAt": -1}),
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch conversations"})
		return
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to decode conversations"})
		return
	}

	type conversation struct {
		UserID      string         `json:"userId"`
		LastMessage models.Message `json:"lastMessage"`
		Unread      int            `json:"unread"`
	}

	order := []primitive.ObjectID{}
	byOther := map[primitive.ObjectID]*conversation{}
	for _, m := range messages {
		other := m.SenderID
		if other == userID {
			other = m.RecipientID
		}
		conv, exists := byOther[other]
		if !exists {
			conv = &conversation{UserID: other.Hex(), LastMessage: m}
			byOther[other] = conv
			order = append(order, other)
		}
		if m.RecipientID == userID && !m.Read {
			conv.Unread++
		}
	}

	conversations := make([]conversation, 0, len(order))
	for _, id := range order {
		conversations = append(conversations, *byOther[id])
	}

	c.JSON(http.StatusOK, gin.H{"conversations": conversations})
}

// MarkConversationRead marks all messages from the given user as read
func MarkConversationRead(c *gin.Context) {
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

	result, err := db.MongoDatabase.Collection("messages").UpdateMany(
		ctx,
		bson.M{"senderId": otherID, "recipientId": userID, "read": false},
		bson.M{"$set": bson.M{"read": true}},
	)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark messages read"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Conversation marked read", "updated": result.ModifiedCount})
}
