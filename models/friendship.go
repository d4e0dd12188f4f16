package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Friendship statuses
const (
	FriendshipPending  = "pending"
	FriendshipAccepted = "accepted"
)

// Friendship represents a friend relationship between two users. A pending
// row is a request from Requester to Recipient; accepting flips the status.
type Friendship struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	RequesterID primitive.ObjectID `bson:"requesterId" json:"requesterId"`
	RecipientID primitive.ObjectID `bson:"recipientId" json:"recipientId"`
	Status      string             `bson:"status" json:"status"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	RespondedAt *time.Time         `bson:"respondedAt,omitempty" json:"respondedAt,omitempty"`
}
