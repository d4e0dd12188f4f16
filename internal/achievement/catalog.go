package achievement

// Kind selects the evaluation rule for a badge. Keeping the rule as a tag
// instead of a closure keeps catalog entries plain data, so test fixtures
// can build reduced catalogs.
type Kind string

const (
	KindWorkoutCount    Kind = "workout_count"
	KindRunningDistance Kind = "running_distance"
	KindWeightLifted    Kind = "weight_lifted"
	KindWeightGoal      Kind = "weight_goal"
	KindWorkoutStreak   Kind = "workout_streak"
	KindNutritionStreak Kind = "nutrition_streak"
	KindWaterStreak     Kind = "water_streak"
)

// Badge is a static catalog entry. IDs are stable across releases; they join
// persisted per-user records back to display metadata.
type Badge struct {
	ID          string  `json:"id"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	IconType    string  `json:"iconType"`
	IconColor   string  `json:"iconColor"`
	Kind        Kind    `json:"kind"`
	Target      float64 `json:"target"`

	// Binary badges have no partial-progress display; they are either
	// earned or absent.
	Binary bool `json:"binary,omitempty"`
}

// DefaultCatalog returns the badge catalog in display and notification
// order. Callers treat the returned slice as read-only.
func DefaultCatalog() []Badge {
	return []Badge{
		{ID: "first_workout", Title: "First Steps", Description: "Complete your first workout", IconType: "dumbbell", IconColor: "green", Kind: KindWorkoutCount, Target: 1, Binary: true},
		{ID: "workout_warrior", Title: "Workout Warrior", Description: "Complete 25 workouts", IconType: "dumbbell", IconColor: "gold", Kind: KindWorkoutCount, Target: 25},
		{ID: "marathon_runner", Title: "Marathon Runner", Description: "Run a total of 50 km", IconType: "run", IconColor: "blue", Kind: KindRunningDistance, Target: 50},
		{ID: "century_rider", Title: "Century Club", Description: "Run a total of 100 km", IconType: "run", IconColor: "purple", Kind: KindRunningDistance, Target: 100},
		{ID: "heavy_lifter", Title: "Heavy Lifter", Description: "Lift a cumulative 10,000 kg", IconType: "barbell", IconColor: "red", Kind: KindWeightLifted, Target: 10000},
		{ID: "goal_crusher", Title: "Goal Crusher", Description: "Reach your weight goal", IconType: "target", IconColor: "orange", Kind: KindWeightGoal},
		{ID: "streak_starter", Title: "Streak Starter", Description: "Work out 3 days in a row", IconType: "flame", IconColor: "orange", Kind: KindWorkoutStreak, Target: 3},
		{ID: "week_streak", Title: "Seven Day Streak", Description: "Work out 7 days in a row", IconType: "flame", IconColor: "red", Kind: KindWorkoutStreak, Target: 7},
		{ID: "balanced_diet", Title: "Balanced Diet", Description: "Hit your nutrition plan 7 days in a row", IconType: "apple", IconColor: "green", Kind: KindNutritionStreak, Target: 7},
		{ID: "hydration_hero", Title: "Hydration Hero", Description: "Meet your water target 7 days in a row", IconType: "droplet", IconColor: "blue", Kind: KindWaterStreak, Target: 7},
	}
}

// Earned reports whether the snapshot satisfies the badge.
func (b Badge) Earned(snap Snapshot) bool {
	switch b.Kind {
	case KindWorkoutCount:
		return float64(snap.CompletedWorkouts) >= b.Target
	case KindRunningDistance:
		return snap.TotalRunningDistance >= b.Target
	case KindWeightLifted:
		return snap.TotalWeightLifted >= b.Target
	case KindWeightGoal:
		return snap.HasReachedWeightGoal || weightGoalProgress(snap) >= 100
	case KindWorkoutStreak:
		return float64(LongestRun(workoutDays(snap))) >= b.Target
	case KindNutritionStreak:
		return float64(LongestRun(nutritionDays(snap))) >= b.Target
	case KindWaterStreak:
		return float64(LongestRun(waterDays(snap))) >= b.Target
	}
	return false
}

// Progress returns the badge's completion percentage in [0, 100]. The
// second result is false for binary badges, which have no partial progress.
func (b Badge) Progress(snap Snapshot) (float64, bool) {
	if b.Binary {
		return 0, false
	}
	switch b.Kind {
	case KindWorkoutCount:
		return ratioProgress(float64(snap.CompletedWorkouts), b.Target), true
	case KindRunningDistance:
		return ratioProgress(snap.TotalRunningDistance, b.Target), true
	case KindWeightLifted:
		return ratioProgress(snap.TotalWeightLifted, b.Target), true
	case KindWeightGoal:
		return weightGoalProgress(snap), true
	case KindWorkoutStreak:
		return ratioProgress(float64(LongestRun(workoutDays(snap))), b.Target), true
	case KindNutritionStreak:
		return ratioProgress(float64(LongestRun(nutritionDays(snap))), b.Target), true
	case KindWaterStreak:
		return ratioProgress(float64(LongestRun(waterDays(snap))), b.Target), true
	}
	return 0, false
}

func ratioProgress(accumulated, target float64) float64 {
	if target <= 0 {
		return 0
	}
	p := accumulated / target * 100
	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}

// weightGoalProgress handles both loss- and gain-direction goals. All three
// inputs must be set; otherwise progress is 0. A goal equal to the starting
// weight counts as already achieved.
func weightGoalProgress(snap Snapshot) float64 {
	if snap.StartWeight == 0 || snap.CurrentWeight == 0 || snap.WeightGoal == 0 {
		return 0
	}
	if snap.WeightGoal == snap.StartWeight {
		return 100
	}

	var p float64
	if snap.WeightGoal < snap.StartWeight {
		p = (snap.StartWeight - snap.CurrentWeight) / (snap.StartWeight - snap.WeightGoal) * 100
	} else {
		p = (snap.CurrentWeight - snap.StartWeight) / (snap.WeightGoal - snap.StartWeight) * 100
	}

	if p > 100 {
		return 100
	}
	if p < 0 {
		return 0
	}
	return p
}
