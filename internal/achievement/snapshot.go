package achievement

import "time"

// NutritionEntry is a single logged meal or snack.
type NutritionEntry struct {
	Date     time.Time
	Calories float64
}

// WaterEntry is a single logged water intake.
type WaterEntry struct {
	Date   time.Time
	Amount float64
}

// Snapshot is the per-user activity view the engine evaluates badges
// against. It is assembled by the caller from stored history; the engine
// never touches storage itself. Zero values stand in for missing fields,
// so a partially populated snapshot is always valid input.
type Snapshot struct {
	CompletedWorkouts    int
	WorkoutDates         []time.Time
	TotalRunningDistance float64 // km
	TotalWeightLifted    float64 // kg

	NutritionLogs  []NutritionEntry
	TargetCalories float64

	WaterLogs   []WaterEntry
	WaterTarget float64

	// Weight goal inputs. A zero value means the field is not set.
	StartWeight          float64
	CurrentWeight        float64
	WeightGoal           float64
	HasReachedWeightGoal bool
}
