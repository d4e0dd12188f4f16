package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User defines a user entity
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Email       string             `bson:"email" json:"email"`
	DisplayName string             `bson:"displayName" json:"displayName"`
	Bio         string             `bson:"bio" json:"bio"`
	AvatarURL   string             `bson:"avatarUrl,omitempty" json:"avatarUrl,omitempty"`

	// Body metrics and daily targets used by the achievement engine.
	StartWeight          float64 `bson:"startWeight,omitempty" json:"startWeight,omitempty"`
	CurrentWeight        float64 `bson:"currentWeight,omitempty" json:"currentWeight,omitempty"`
	WeightGoal           float64 `bson:"weightGoal,omitempty" json:"weightGoal,omitempty"`
	HasReachedWeightGoal bool    `bson:"hasReachedWeightGoal" json:"hasReachedWeightGoal"`
	TargetCalories       float64 `bson:"targetCalories,omitempty" json:"targetCalories,omitempty"`
	WaterIntakeTarget    float64 `bson:"waterIntakeTarget,omitempty" json:"waterIntakeTarget,omitempty"`

	// Privacy toggles
	ProfilePublic bool `bson:"profilePublic" json:"profilePublic"`
	ShowWeight    bool `bson:"showWeight" json:"showWeight"`

	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
