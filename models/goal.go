package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Goal is a user-defined target, e.g. "run 100 km" or "lose 5 kg"
type Goal struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	Title        string             `bson:"title" json:"title"`
	Category     string             `bson:"category" json:"category"` // "workout", "weight", "nutrition", "water"
	TargetValue  float64            `bson:"targetValue" json:"targetValue"`
	CurrentValue float64            `bson:"currentValue" json:"currentValue"`
	Unit         string             `bson:"unit" json:"unit"`
	Deadline     *time.Time         `bson:"deadline,omitempty" json:"deadline,omitempty"`
	Completed    bool               `bson:"completed" json:"completed"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}
