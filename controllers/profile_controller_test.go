package controllers

import (
	"testing"

	"fitstride/models"
)

func TestVisitorProfileViewHidesWeightByDefault(t *testing.T) {
	user := models.User{
		DisplayName:   "Alice Johnson",
		StartWeight:   80,
		CurrentWeight: 75,
		WeightGoal:    70,
	}

	view := visitorProfileView(user, "https://example.com/avatar.svg")

	for _, field := range []string{"startWeight", "currentWeight", "weightGoal"} {
		if _, ok := view[field]; ok {
			t.Errorf("field %s should be hidden when showWeight is off", field)
		}
	}
	if view["displayName"] != "Alice Johnson" {
		t.Errorf("expected display name in view, got %v", view["displayName"])
	}
}

func TestVisitorProfileViewShowsWeightWhenEnabled(t *testing.T) {
	user := models.User{
		DisplayName:   "Alice Johnson",
		ShowWeight:    true,
		StartWeight:   80,
		CurrentWeight: 75,
		WeightGoal:    70,
	}

	view := visitorProfileView(user, "https://example.com/avatar.svg")

	if view["currentWeight"] != 75.0 {
		t.Errorf("expected current weight 75, got %v", view["currentWeight"])
	}
	if view["startWeight"] != 80.0 || view["weightGoal"] != 70.0 {
		t.Errorf("expected full weight data in view, got %v", view)
	}
}
