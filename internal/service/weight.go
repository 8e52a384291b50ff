package service

import (
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lukejerome/viligant-tracker-dk/internal/model"
)

var defaultWeightGoal = model.WeightGoal{
	CurrentWeightKg: 70,
	TargetWeightKg:  65,
	WeeklyGoalKg:    0.5,
}

// AddWeightEntry prepends a weigh-in (newest first) and moves the
// weight goal's current weight along with it.
func AddWeightEntry(store *KeyedStore, userID string, weightKg float64, notes string, now time.Time) (*model.WeightEntry, error) {
	if err := validatePositiveFloat("weight", weightKg); err != nil {
		return nil, err
	}

	entry := model.WeightEntry{
		ID:       uuid.NewString(),
		WeightKg: weightKg,
		Date:     dayString(now),
		Notes:    strings.TrimSpace(notes),
	}

	history, err := WeightHistory(store, userID)
	if err != nil {
		return nil, err
	}
	history = append([]model.WeightEntry{entry}, history...)
	if err := store.Set(userID, keyWeightHistory, history); err != nil {
		return nil, err
	}

	goal, err := WeightGoalFor(store, userID)
	if err != nil {
		return nil, err
	}
	goal.CurrentWeightKg = weightKg
	if err := store.Set(userID, keyWeightGoal, goal); err != nil {
		return nil, err
	}
	return &entry, nil
}

func WeightHistory(store *KeyedStore, userID string) ([]model.WeightEntry, error) {
	history := []model.WeightEntry{}
	if err := store.Get(userID, keyWeightHistory, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func SetWeightGoal(store *KeyedStore, userID string, goal model.WeightGoal) error {
	if err := validatePositiveFloat("current weight", goal.CurrentWeightKg); err != nil {
		return err
	}
	if err := validatePositiveFloat("target weight", goal.TargetWeightKg); err != nil {
		return err
	}
	if err := validateNonNegativeFloat("weekly goal", goal.WeeklyGoalKg); err != nil {
		return err
	}
	if strings.TrimSpace(goal.TargetDate) != "" {
		if _, err := parseDay(goal.TargetDate); err != nil {
			return validationErr("target date", "expected YYYY-MM-DD")
		}
	}
	return store.Set(userID, keyWeightGoal, goal)
}

func WeightGoalFor(store *KeyedStore, userID string) (model.WeightGoal, error) {
	goal := defaultWeightGoal
	if err := store.Get(userID, keyWeightGoal, &goal); err != nil {
		return defaultWeightGoal, err
	}
	return goal, nil
}

// WeightTrend is the difference between the previous weigh-in and the
// newest one; positive means weight went down. Nil with fewer than two
// entries.
func WeightTrend(history []model.WeightEntry) *float64 {
	if len(history) < 2 {
		return nil
	}
	trend := history[1].WeightKg - history[0].WeightKg
	return &trend
}

// TimeToGoalMonths estimates months to reach the target at the weekly
// rate, rounded to one decimal. False when no weekly rate is set.
func TimeToGoalMonths(goal model.WeightGoal) (float64, bool) {
	if goal.WeeklyGoalKg <= 0 {
		return 0, false
	}
	weeks := math.Abs(goal.CurrentWeightKg-goal.TargetWeightKg) / goal.WeeklyGoalKg
	return math.Round(weeks/4.33*10) / 10, true
}
