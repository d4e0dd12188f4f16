package achievement

import (
	"sort"
	"time"
)

// Day is a calendar day. Comparing Days compares the year/month/day triple
// only; time of day and zone offset are discarded when one is built.
type Day struct {
	Year  int
	Month time.Month
	Day   int
}

// DayOf truncates t to its calendar day.
func DayOf(t time.Time) Day {
	y, m, d := t.Date()
	return Day{Year: y, Month: m, Day: d}
}

// Next returns the following calendar day, rolling over months and years.
func (d Day) Next() Day {
	t := time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return DayOf(t)
}

func (d Day) before(o Day) bool {
	if d.Year != o.Year {
		return d.Year < o.Year
	}
	if d.Month != o.Month {
		return d.Month < o.Month
	}
	return d.Day < o.Day
}

// LongestRun returns the length of the longest run of consecutive calendar
// days in the input. Duplicate days collapse to one qualifying day. A gap
// resets the running count to 1, not 0: an isolated day is a run of length 1.
// Empty input returns 0.
func LongestRun(days []Day) int {
	if len(days) == 0 {
		return 0
	}

	unique := make([]Day, 0, len(days))
	seen := make(map[Day]struct{}, len(days))
	for _, d := range days {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		unique = append(unique, d)
	}

	sort.Slice(unique, func(i, j int) bool { return unique[i].before(unique[j]) })

	longest := 1
	current := 1
	for i := 1; i < len(unique); i++ {
		if unique[i-1].Next() == unique[i] {
			current++
		} else {
			current = 1
		}
		if current > longest {
			longest = current
		}
	}
	return longest
}

// workoutDays buckets workout timestamps into calendar days.
func workoutDays(snap Snapshot) []Day {
	days := make([]Day, 0, len(snap.WorkoutDates))
	for _, t := range snap.WorkoutDates {
		days = append(days, DayOf(t))
	}
	return days
}

// nutritionDays returns the days on which the user adhered to their
// nutrition plan: at least three logged entries and a calorie total of at
// least 80% of the daily target.
func nutritionDays(snap Snapshot) []Day {
	if snap.TargetCalories <= 0 {
		return nil
	}

	type dayTotal struct {
		entries  int
		calories float64
	}
	totals := make(map[Day]*dayTotal)
	for _, entry := range snap.NutritionLogs {
		d := DayOf(entry.Date)
		if totals[d] == nil {
			totals[d] = &dayTotal{}
		}
		totals[d].entries++
		totals[d].calories += entry.Calories
	}

	var days []Day
	for d, total := range totals {
		if total.entries >= 3 && total.calories >= 0.8*snap.TargetCalories {
			days = append(days, d)
		}
	}
	return days
}

// waterDays returns the days on which summed intake met the daily target.
func waterDays(snap Snapshot) []Day {
	if snap.WaterTarget <= 0 {
		return nil
	}

	totals := make(map[Day]float64)
	for _, entry := range snap.WaterLogs {
		totals[DayOf(entry.Date)] += entry.Amount
	}

	var days []Day
	for d, amount := range totals {
		if amount >= snap.WaterTarget {
			days = append(days, d)
		}
	}
	return days
}
