package service_test

import (
	"testing"
	"time"

	"github.com/lukejerome/viligant-tracker-dk/internal/model"
	"github.com/lukejerome/viligant-tracker-dk/internal/service"
)

func TestAddWeightEntryPrependsAndMovesGoal(t *testing.T) {
	t.Parallel()
	db, store := newTestStore(t)
	defer db.Close()

	now := time.Date(2026, 8, 28, 7, 0, 0, 0, time.Local)
	if _, err := service.AddWeightEntry(store, "user-1", 84.5, "morning", now); err != nil {
		t.Fatalf("first entry: %v", err)
	}
	if _, err := service.AddWeightEntry(store, "user-1", 84.1, "", now.AddDate(0, 0, 1)); err != nil {
		t.Fatalf("second entry: %v", err)
	}

	history, err := service.WeightHistory(store, "user-1")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("history has %d entries", len(history))
	}
	if history[0].WeightKg != 84.1 {
		t.Fatalf("history[0] = %.1f, want the newest entry first", history[0].WeightKg)
	}

	goal, err := service.WeightGoalFor(store, "user-1")
	if err != nil {
		t.Fatalf("goal: %v", err)
	}
	if goal.CurrentWeightKg != 84.1 {
		t.Fatalf("goal current = %.1f, want to follow the latest weigh-in", goal.CurrentWeightKg)
	}
}

func TestAddWeightEntryRejectsNonPositive(t *testing.T) {
	t.Parallel()
	db, store := newTestStore(t)
	defer db.Close()

	if _, err := service.AddWeightEntry(store, "user-1", 0, "", time.Now()); err == nil {
		t.Fatal("expected error for zero weight")
	}
	if _, err := service.AddWeightEntry(store, "user-1", -5, "", time.Now()); err == nil {
		t.Fatal("expected error for negative weight")
	}
}

func TestWeightTrend(t *testing.T) {
	t.Parallel()

	if trend := service.WeightTrend(nil); trend != nil {
		t.Fatal("trend with no entries should be nil")
	}
	if trend := service.WeightTrend([]model.WeightEntry{{WeightKg: 84}}); trend != nil {
		t.Fatal("trend with one entry should be nil")
	}

	history := []model.WeightEntry{
		{WeightKg: 84.1}, // newest
		{WeightKg: 84.5},
	}
	trend := service.WeightTrend(history)
	if trend == nil {
		t.Fatal("expected a trend")
	}
	if *trend < 0.39 || *trend > 0.41 {
		t.Fatalf("trend = %f, want ~0.4 (previous minus newest)", *trend)
	}
}

func TestSetWeightGoalValidation(t *testing.T) {
	t.Parallel()
	db, store := newTestStore(t)
	defer db.Close()

	goal := model.WeightGoal{CurrentWeightKg: 85, TargetWeightKg: 78, WeeklyGoalKg: 0.5, TargetDate: "2027-01-01"}
	if err := service.SetWeightGoal(store, "user-1", goal); err != nil {
		t.Fatalf("set goal: %v", err)
	}

	goal.TargetDate = "not-a-date"
	if err := service.SetWeightGoal(store, "user-1", goal); err == nil {
		t.Fatal("expected error for malformed target date")
	}
	goal.TargetDate = ""
	goal.TargetWeightKg = 0
	if err := service.SetWeightGoal(store, "user-1", goal); err == nil {
		t.Fatal("expected error for zero target weight")
	}
}

func TestTimeToGoalMonths(t *testing.T) {
	t.Parallel()

	goal := model.WeightGoal{CurrentWeightKg: 85, TargetWeightKg: 78, WeeklyGoalKg: 0.5}
	months, ok := service.TimeToGoalMonths(goal)
	if !ok {
		t.Fatal("expected an estimate")
	}
	// 7kg at 0.5kg/week is 14 weeks, about 3.2 months.
	if months != 3.2 {
		t.Fatalf("months = %.1f, want 3.2", months)
	}

	goal.WeeklyGoalKg = 0
	if _, ok := service.TimeToGoalMonths(goal); ok {
		t.Fatal("expected no estimate without a weekly rate")
	}
}

func TestWeightGoalDefault(t *testing.T) {
	t.Parallel()
	db, store := newTestStore(t)
	defer db.Close()

	goal, err := service.WeightGoalFor(store, "user-1")
	if err != nil {
		t.Fatalf("goal: %v", err)
	}
	if goal.CurrentWeightKg != 70 || goal.TargetWeightKg != 65 || goal.WeeklyGoalKg != 0.5 {
		t.Fatalf("default goal = %+v", goal)
	}
}
