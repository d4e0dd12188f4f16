package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Workout is a single completed workout session
type Workout struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID          primitive.ObjectID `bson:"userId" json:"userId"`
	Type            string             `bson:"type" json:"type"` // "running", "lifting", "cycling", ...
	DurationMinutes int                `bson:"durationMinutes" json:"durationMinutes"`
	DistanceKm      float64            `bson:"distanceKm,omitempty" json:"distanceKm,omitempty"`
	WeightLiftedKg  float64            `bson:"weightLiftedKg,omitempty" json:"weightLiftedKg,omitempty"`
	CaloriesBurned  float64            `bson:"caloriesBurned,omitempty" json:"caloriesBurned,omitempty"`
	Date            time.Time          `bson:"date" json:"date"`
}

// NutritionLog is a single logged meal or snack
type NutritionLog struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID   primitive.ObjectID `bson:"userId" json:"userId"`
	MealType string             `bson:"mealType,omitempty" json:"mealType,omitempty"`
	Calories float64            `bson:"calories" json:"calories"`
	Date     time.Time          `bson:"date" json:"date"`
}

// WaterLog is a single logged water intake
type WaterLog struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
	Amount float64            `bson:"amount" json:"amount"` // ml
	Date   time.Time          `bson:"date" json:"date"`
}

// WeightEntry is a single weight measurement
type WeightEntry struct {
	ID     primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UserID primitive.ObjectID `bson:"userId" json:"userId"`
	Value  float64            `bson:"value" json:"value"` // kg
	Date   time.Time          `bson:"date" json:"date"`
}
