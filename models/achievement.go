package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserAchievement is the persisted per-user state for one badge. Earned is
// monotonic; it is only ever written by the achievement evaluation pass.
type UserAchievement struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	AchievementID string             `bson:"achievementId" json:"achievementId"`
	Earned        bool               `bson:"earned" json:"earned"`
	Progress      float64            `bson:"progress" json:"progress"`
	EarnedDate    *time.Time         `bson:"earnedDate,omitempty" json:"earnedDate,omitempty"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Notification is a persisted in-app notification
type Notification struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID        primitive.ObjectID `bson:"userId" json:"userId"`
	Type          string             `bson:"type" json:"type"`
	Title         string             `bson:"title" json:"title"`
	Message       string             `bson:"message" json:"message"`
	AchievementID string             `bson:"achievementId,omitempty" json:"achievementId,omitempty"`
	Read          bool               `bson:"read" json:"read"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}
