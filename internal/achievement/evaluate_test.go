package achievement

import (
	"testing"
	"time"
)

var testNow = time.Date(2025, time.June, 1, 12, 0, 0, 0, time.UTC)

func findRecord(records []Record, id string) *Record {
	for i := range records {
		if records[i].ID == id {
			return &records[i]
		}
	}
	return nil
}

func TestFirstWorkoutEarned(t *testing.T) {
	snap := Snapshot{CompletedWorkouts: 1}
	result := Evaluate(DefaultCatalog(), snap, nil, testNow)

	if len(result.NewlyEarned) == 0 || result.NewlyEarned[0].ID != "first_workout" {
		t.Fatalf("expected first_workout in newly earned, got %v", result.NewlyEarned)
	}

	rec := findRecord(result.Records, "first_workout")
	if rec == nil || !rec.Earned {
		t.Fatalf("expected earned first_workout record, got %v", rec)
	}
	if rec.EarnedDate == nil || !rec.EarnedDate.Equal(testNow) {
		t.Errorf("expected earned date %v, got %v", testNow, rec.EarnedDate)
	}
}

func TestPartialDistanceProgress(t *testing.T) {
	snap := Snapshot{TotalRunningDistance: 25}
	result := Evaluate(DefaultCatalog(), snap, nil, testNow)

	rec := findRecord(result.Records, "marathon_runner")
	if rec == nil {
		t.Fatalf("expected a marathon_runner record")
	}
	if rec.Earned {
		t.Errorf("25 km should not earn a 50 km badge")
	}
	if rec.Progress != 50 {
		t.Errorf("expected 50%% progress, got %v", rec.Progress)
	}
}

func TestEarnedBadgeSkippedOnReevaluation(t *testing.T) {
	earnedAt := testNow.Add(-48 * time.Hour)
	prior := []Record{{ID: "first_workout", Earned: true, Progress: 100, EarnedDate: &earnedAt}}

	// History corrected downward; the earned badge must survive untouched.
	result := Evaluate(DefaultCatalog(), Snapshot{CompletedWorkouts: 0}, prior, testNow)

	rec := findRecord(result.Records, "first_workout")
	if rec == nil || !rec.Earned {
		t.Fatalf("earned badge regressed: %v", rec)
	}
	if rec.EarnedDate == nil || !rec.EarnedDate.Equal(earnedAt) {
		t.Errorf("earned date changed: want %v, got %v", earnedAt, rec.EarnedDate)
	}
	if len(result.NewlyEarned) != 0 {
		t.Errorf("nothing should be newly earned, got %v", result.NewlyEarned)
	}
}

func TestEvaluateIsIdempotent(t *testing.T) {
	base := time.Date(2025, time.May, 1, 7, 0, 0, 0, time.UTC)
	snap := Snapshot{
		CompletedWorkouts:    5,
		WorkoutDates:         []time.Time{base, base.AddDate(0, 0, 1), base.AddDate(0, 0, 2), base.AddDate(0, 0, 4), base.AddDate(0, 0, 5)},
		TotalRunningDistance: 60,
		TotalWeightLifted:    2500,
	}

	first := Evaluate(DefaultCatalog(), snap, nil, testNow)
	if len(first.NewlyEarned) == 0 {
		t.Fatalf("expected some badges earned on first pass")
	}

	second := Evaluate(DefaultCatalog(), snap, first.Records, testNow.Add(time.Hour))
	if len(second.NewlyEarned) != 0 {
		t.Errorf("second pass earned %v, expected nothing", second.NewlyEarned)
	}
	if len(second.Records) != len(first.Records) {
		t.Fatalf("record count changed between passes: %d vs %d", len(first.Records), len(second.Records))
	}
	for i := range first.Records {
		a, b := first.Records[i], second.Records[i]
		if a.ID != b.ID || a.Earned != b.Earned || a.Progress != b.Progress {
			t.Errorf("record %s changed between passes: %+v vs %+v", a.ID, a, b)
		}
	}
}

func TestNewlyEarnedFollowsCatalogOrder(t *testing.T) {
	snap := Snapshot{CompletedWorkouts: 30, TotalRunningDistance: 120, TotalWeightLifted: 15000}
	result := Evaluate(DefaultCatalog(), snap, nil, testNow)

	wantOrder := []string{"first_workout", "workout_warrior", "marathon_runner", "century_rider", "heavy_lifter"}
	if len(result.NewlyEarned) != len(wantOrder) {
		t.Fatalf("expected %d newly earned, got %d", len(wantOrder), len(result.NewlyEarned))
	}
	for i, id := range wantOrder {
		if result.NewlyEarned[i].ID != id {
			t.Errorf("position %d: expected %s, got %s", i, id, result.NewlyEarned[i].ID)
		}
	}
}

func TestUnknownRecordPassesThrough(t *testing.T) {
	prior := []Record{{ID: "retired_badge", Earned: true, Progress: 100}}
	result := Evaluate(DefaultCatalog(), Snapshot{}, prior, testNow)

	rec := findRecord(result.Records, "retired_badge")
	if rec == nil || !rec.Earned {
		t.Errorf("record for a badge outside the catalog must be preserved, got %v", rec)
	}
}

func TestPriorRecordsNotMutated(t *testing.T) {
	prior := []Record{{ID: "marathon_runner", Progress: 10}}
	Evaluate(DefaultCatalog(), Snapshot{TotalRunningDistance: 25}, prior, testNow)

	if prior[0].Progress != 10 {
		t.Errorf("prior slice was mutated: progress is %v", prior[0].Progress)
	}
}

func TestDuplicatePriorRecordsCollapse(t *testing.T) {
	prior := []Record{
		{ID: "marathon_runner", Progress: 10},
		{ID: "marathon_runner", Progress: 90},
	}
	result := Evaluate(DefaultCatalog(), Snapshot{TotalRunningDistance: 25}, prior, testNow)

	count := 0
	for _, r := range result.Records {
		if r.ID == "marathon_runner" {
			count++
		}
	}
	if count != 1 {
		t.Errorf("expected exactly one marathon_runner record, got %d", count)
	}
}

func TestNoRecordFabricatedAtZeroProgress(t *testing.T) {
	result := Evaluate(DefaultCatalog(), Snapshot{}, nil, testNow)
	if len(result.Records) != 0 {
		t.Errorf("empty snapshot should create no records, got %v", result.Records)
	}
}

func TestBinaryBadgeLeavesNoUnearnedRecord(t *testing.T) {
	// first_workout is binary: while unearned there is nothing to store.
	result := Evaluate(DefaultCatalog(), Snapshot{TotalRunningDistance: 5}, nil, testNow)
	if rec := findRecord(result.Records, "first_workout"); rec != nil {
		t.Errorf("binary badge should leave state untouched while unearned, got %v", rec)
	}
}

func TestFormatEarnedNotification(t *testing.T) {
	badge := DefaultCatalog()[0]
	n := FormatEarnedNotification("user-123", badge, testNow)

	if n.Type != NotificationTypeEarned {
		t.Errorf("expected type %s, got %s", NotificationTypeEarned, n.Type)
	}
	if n.UserID != "user-123" || n.AchievementID != "first_workout" {
		t.Errorf("wrong identifiers in payload: %+v", n)
	}
	if n.Message == "" || n.Title == "" {
		t.Errorf("expected non-empty title and message, got %+v", n)
	}
	if !n.Timestamp.Equal(testNow) {
		t.Errorf("expected timestamp %v, got %v", testNow, n.Timestamp)
	}
}
