package controllers

import "testing"

func TestWeightGoalReachedLossDirection(t *testing.T) {
	// Loss goal 80 -> 70: still above the goal is not a crossing.
	if weightGoalReached(80, 70, 75) {
		t.Errorf("75 kg should not reach a 70 kg loss goal")
	}
	if !weightGoalReached(80, 70, 70) {
		t.Errorf("hitting the goal exactly should count")
	}
	if !weightGoalReached(80, 70, 68) {
		t.Errorf("dropping past the goal should count")
	}
}

func TestWeightGoalReachedGainDirection(t *testing.T) {
	// Gain goal 60 -> 70: below the goal is not a crossing.
	if weightGoalReached(60, 70, 65) {
		t.Errorf("65 kg should not reach a 70 kg gain goal")
	}
	if !weightGoalReached(60, 70, 70) {
		t.Errorf("hitting the goal exactly should count")
	}
}

func TestWeightGoalReachedFirstMeasurementAboveLossGoal(t *testing.T) {
	// A loss-goal user whose measurement sits above the goal has not reached
	// it, even when that measurement also establishes the starting weight.
	// With the entry value as the effective start (goal 70, first log 80)
	// the direction must resolve to loss, not gain.
	if weightGoalReached(80, 70, 80) {
		t.Errorf("a measurement above a loss goal must not count as a crossing")
	}
}
