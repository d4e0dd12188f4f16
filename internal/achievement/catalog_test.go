package achievement

import (
	"testing"
	"time"
)

func TestWeightGoalLossDirection(t *testing.T) {
	snap := Snapshot{StartWeight: 80, WeightGoal: 70, CurrentWeight: 75}
	if got := weightGoalProgress(snap); got != 50 {
		t.Errorf("expected 50%% loss progress, got %v", got)
	}
}

func TestWeightGoalGainDirection(t *testing.T) {
	snap := Snapshot{StartWeight: 60, WeightGoal: 70, CurrentWeight: 65}
	if got := weightGoalProgress(snap); got != 50 {
		t.Errorf("expected 50%% gain progress, got %v", got)
	}
}

func TestWeightGoalMissingInputs(t *testing.T) {
	if got := weightGoalProgress(Snapshot{StartWeight: 80, WeightGoal: 70}); got != 0 {
		t.Errorf("expected 0 with missing current weight, got %v", got)
	}
	if got := weightGoalProgress(Snapshot{}); got != 0 {
		t.Errorf("expected 0 for empty snapshot, got %v", got)
	}
}

func TestWeightGoalEqualsStartCountsAsAchieved(t *testing.T) {
	snap := Snapshot{StartWeight: 70, WeightGoal: 70, CurrentWeight: 70}
	if got := weightGoalProgress(snap); got != 100 {
		t.Errorf("expected 100 when goal equals start, got %v", got)
	}
}

func TestWeightGoalClampsToBounds(t *testing.T) {
	// Moved the wrong direction: clamp to 0.
	snap := Snapshot{StartWeight: 80, WeightGoal: 70, CurrentWeight: 85}
	if got := weightGoalProgress(snap); got != 0 {
		t.Errorf("expected 0 when moving away from goal, got %v", got)
	}
	// Overshot the goal: clamp to 100.
	snap = Snapshot{StartWeight: 80, WeightGoal: 70, CurrentWeight: 65}
	if got := weightGoalProgress(snap); got != 100 {
		t.Errorf("expected 100 when past the goal, got %v", got)
	}
}

func TestProgressBoundsAcrossCatalog(t *testing.T) {
	base := time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)
	snapshots := []Snapshot{
		{},
		{CompletedWorkouts: 1000, TotalRunningDistance: 5000, TotalWeightLifted: 1e6},
		{StartWeight: 80, WeightGoal: 70, CurrentWeight: 100},
		{
			CompletedWorkouts:    3,
			WorkoutDates:         []time.Time{base, base.AddDate(0, 0, 1), base.AddDate(0, 0, 2)},
			TotalRunningDistance: 12.5,
			TargetCalories:       2000,
			WaterTarget:          2000,
		},
	}

	for _, snap := range snapshots {
		for _, badge := range DefaultCatalog() {
			progress, ok := badge.Progress(snap)
			if !ok {
				continue
			}
			if progress < 0 || progress > 100 {
				t.Errorf("badge %s progress %v out of bounds", badge.ID, progress)
			}
		}
	}
}

func TestBinaryBadgeHasNoProgress(t *testing.T) {
	catalog := DefaultCatalog()
	if catalog[0].ID != "first_workout" {
		t.Fatalf("expected first_workout to lead the catalog, got %s", catalog[0].ID)
	}
	if _, ok := catalog[0].Progress(Snapshot{}); ok {
		t.Errorf("first_workout should not report partial progress")
	}
}

func TestStreakBadgeProgress(t *testing.T) {
	base := time.Date(2025, time.May, 1, 7, 0, 0, 0, time.UTC)
	snap := Snapshot{
		WorkoutDates: []time.Time{base, base.AddDate(0, 0, 1), base.AddDate(0, 0, 2)},
	}

	weekStreak := Badge{ID: "week_streak", Kind: KindWorkoutStreak, Target: 7}
	progress, ok := weekStreak.Progress(snap)
	if !ok {
		t.Fatalf("expected streak badge to report progress")
	}
	want := 3.0 / 7.0 * 100
	if progress != want {
		t.Errorf("expected %v, got %v", want, progress)
	}

	starter := Badge{ID: "streak_starter", Kind: KindWorkoutStreak, Target: 3}
	if !starter.Earned(snap) {
		t.Errorf("3-day run should earn a 3-day streak badge")
	}
}

func TestCatalogIDsAreUnique(t *testing.T) {
	seen := make(map[string]bool)
	for _, badge := range DefaultCatalog() {
		if seen[badge.ID] {
			t.Errorf("duplicate badge id %s", badge.ID)
		}
		seen[badge.ID] = true
	}
}
