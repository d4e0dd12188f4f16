package achievement

import (
	"testing"
	"time"
)

func day(y int, m time.Month, d int) Day {
	return Day{Year: y, Month: m, Day: d}
}

func TestLongestRunEmpty(t *testing.T) {
	if got := LongestRun(nil); got != 0 {
		t.Errorf("expected 0 for empty input, got %d", got)
	}
}

func TestLongestRunSingleDay(t *testing.T) {
	if got := LongestRun([]Day{day(2025, time.March, 10)}); got != 1 {
		t.Errorf("expected 1 for single day, got %d", got)
	}
}

func TestLongestRunGapResetsToOne(t *testing.T) {
	days := []Day{
		day(2025, time.March, 10),
		day(2025, time.March, 11),
		day(2025, time.March, 13),
	}
	if got := LongestRun(days); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
}

func TestLongestRunDuplicatesCollapse(t *testing.T) {
	days := []Day{
		day(2025, time.March, 10),
		day(2025, time.March, 10),
		day(2025, time.March, 11),
	}
	if got := LongestRun(days); got != 2 {
		t.Errorf("expected 2, got %d", got)
	}
}

func TestLongestRunUnsortedInput(t *testing.T) {
	days := []Day{
		day(2025, time.March, 12),
		day(2025, time.March, 10),
		day(2025, time.March, 11),
	}
	if got := LongestRun(days); got != 3 {
		t.Errorf("expected 3, got %d", got)
	}
}

func TestLongestRunAcrossMonthBoundary(t *testing.T) {
	days := []Day{
		day(2025, time.January, 31),
		day(2025, time.February, 1),
		day(2025, time.February, 2),
	}
	if got := LongestRun(days); got != 3 {
		t.Errorf("expected 3 across month boundary, got %d", got)
	}
}

func TestDayOfDiscardsTimeOfDay(t *testing.T) {
	morning := time.Date(2025, time.June, 5, 6, 30, 0, 0, time.UTC)
	night := time.Date(2025, time.June, 5, 23, 59, 59, 0, time.UTC)
	if DayOf(morning) != DayOf(night) {
		t.Errorf("expected same calendar day, got %v and %v", DayOf(morning), DayOf(night))
	}
}

func TestNutritionDaysRequireEntryCountAndCalories(t *testing.T) {
	base := time.Date(2025, time.April, 1, 12, 0, 0, 0, time.UTC)
	snap := Snapshot{
		TargetCalories: 2000,
		NutritionLogs: []NutritionEntry{
			// Day 1: three entries, 1700 kcal >= 80% of 2000. Qualifies.
			{Date: base, Calories: 600},
			{Date: base.Add(2 * time.Hour), Calories: 600},
			{Date: base.Add(6 * time.Hour), Calories: 500},
			// Day 2: only two entries. Does not qualify.
			{Date: base.AddDate(0, 0, 1), Calories: 1000},
			{Date: base.AddDate(0, 0, 1).Add(time.Hour), Calories: 1000},
			// Day 3: three entries but too few calories.
			{Date: base.AddDate(0, 0, 2), Calories: 200},
			{Date: base.AddDate(0, 0, 2).Add(time.Hour), Calories: 200},
			{Date: base.AddDate(0, 0, 2).Add(2 * time.Hour), Calories: 200},
		},
	}
	days := nutritionDays(snap)
	if len(days) != 1 {
		t.Fatalf("expected 1 qualifying nutrition day, got %d", len(days))
	}
	if days[0] != day(2025, time.April, 1) {
		t.Errorf("wrong qualifying day: %v", days[0])
	}
}

func TestWaterDaysSumPerDay(t *testing.T) {
	base := time.Date(2025, time.April, 1, 8, 0, 0, 0, time.UTC)
	snap := Snapshot{
		WaterTarget: 2000,
		WaterLogs: []WaterEntry{
			{Date: base, Amount: 1200},
			{Date: base.Add(5 * time.Hour), Amount: 900}, // 2100 total, qualifies
			{Date: base.AddDate(0, 0, 1), Amount: 1500},  // short of target
		},
	}
	days := waterDays(snap)
	if len(days) != 1 {
		t.Fatalf("expected 1 qualifying water day, got %d", len(days))
	}
}

func TestQualifyingDaysWithoutTargets(t *testing.T) {
	snap := Snapshot{
		NutritionLogs: []NutritionEntry{{Date: time.Now(), Calories: 500}},
		WaterLogs:     []WaterEntry{{Date: time.Now(), Amount: 3000}},
	}
	if days := nutritionDays(snap); len(days) != 0 {
		t.Errorf("expected no nutrition days without a target, got %d", len(days))
	}
	if days := waterDays(snap); len(days) != 0 {
		t.Errorf("expected no water days without a target, got %d", len(days))
	}
}
