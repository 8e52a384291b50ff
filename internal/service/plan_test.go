package service_test

import (
	"math"
	"testing"
	"time"

	"github.com/lukejerome/viligant-tracker-dk/internal/model"
	"github.com/lukejerome/viligant-tracker-dk/internal/service"
)

func TestGenerateWorkoutPlanCoversFullWeek(t *testing.T) {
	t.Parallel()

	p := testProfile()
	p.Goal = model.GoalMaintain
	p.GoalWeightKg = p.CurrentWeightKg

	for days := 3; days <= 7; days++ {
		p.WorkoutDaysPerWeek = days
		plan, err := service.GenerateWorkoutPlan(p, 250)
		if err != nil {
			t.Fatalf("generate plan for %d days: %v", days, err)
		}
		if len(plan) != 7 {
			t.Fatalf("plan for %d days has %d entries, want 7", days, len(plan))
		}

		active := 0
		for _, day := range plan {
			if day.Type != model.WorkoutRest {
				active++
				continue
			}
			if day.CaloriesBurned != 50 || day.TotalDuration != 20 {
				t.Errorf("rest day %s = %d kcal / %d min, want 50 / 20", day.Day, day.CaloriesBurned, day.TotalDuration)
			}
		}
		if active != days {
			t.Errorf("plan for %d days has %d active days", days, active)
		}
	}
}

func TestGenerateWorkoutPlanLoseIsAllCardio(t *testing.T) {
	t.Parallel()

	p := testProfile()
	p.Goal = model.GoalLose
	plan, err := service.GenerateWorkoutPlan(p, 150)
	if err != nil {
		t.Fatalf("generate plan: %v", err)
	}
	for _, day := range plan {
		if day.Type == model.WorkoutStrength {
			t.Errorf("%s is a strength day in a lose plan", day.Day)
		}
	}
}

func TestGenerateWorkoutPlanGainIsAllStrength(t *testing.T) {
	t.Parallel()

	p := testProfile()
	p.Goal = model.GoalGain
	p.GoalWeightKg = p.CurrentWeightKg + 5
	plan, err := service.GenerateWorkoutPlan(p, 200)
	if err != nil {
		t.Fatalf("generate plan: %v", err)
	}
	for _, day := range plan {
		if day.Type == model.WorkoutCardio {
			t.Errorf("%s is a cardio day in a gain plan", day.Day)
		}
	}
}

func TestGenerateWorkoutPlanSpreadsWeeklyBurn(t *testing.T) {
	t.Parallel()

	p := testProfile()
	p.Goal = model.GoalMaintain
	p.GoalWeightKg = p.CurrentWeightKg
	p.WorkoutDaysPerWeek = 4

	plan, err := service.GenerateWorkoutPlan(p, 250)
	if err != nil {
		t.Fatalf("generate plan: %v", err)
	}
	want := int(math.Round(250.0 * 7 / 4))
	for _, day := range plan {
		if day.Type == model.WorkoutRest {
			continue
		}
		if day.CaloriesBurned != want {
			t.Errorf("%s burns %d kcal, want %d", day.Day, day.CaloriesBurned, want)
		}
	}
}

func TestGenerateNutritionPlanMealShares(t *testing.T) {
	t.Parallel()

	p := testProfile()
	plan, err := service.GenerateNutritionPlan(p, 2000)
	if err != nil {
		t.Fatalf("generate nutrition plan: %v", err)
	}
	if len(plan.Meals) != 5 {
		t.Fatalf("plan has %d meals, want 5", len(plan.Meals))
	}

	wantCalories := []int{500, 200, 600, 200, 500} // 25/10/30/10/25% of 2000
	for i, meal := range plan.Meals {
		if meal.Calories != wantCalories[i] {
			t.Errorf("meal %s = %d kcal, want %d", meal.Name, meal.Calories, wantCalories[i])
		}
		if len(meal.Foods) == 0 {
			t.Errorf("meal %s has no foods", meal.Name)
		}
	}
	if plan.WaterLiters != 2.5+0.5*float64(p.WorkoutDaysPerWeek) {
		t.Errorf("water = %.2f", plan.WaterLiters)
	}
}

func TestGeneratePersonalPlan(t *testing.T) {
	t.Parallel()

	p := testProfile()
	now := time.Date(2026, 9, 5, 0, 0, 0, 0, time.Local)

	plan, err := service.GeneratePersonalPlan(p, now)
	if err != nil {
		t.Fatalf("generate personal plan: %v", err)
	}
	if plan.WeeklyWorkouts != p.WorkoutDaysPerWeek {
		t.Errorf("weekly workouts = %d, want %d", plan.WeeklyWorkouts, p.WorkoutDaysPerWeek)
	}
	if len(plan.WorkoutPlan) != 7 {
		t.Errorf("workout plan has %d days", len(plan.WorkoutPlan))
	}
	if plan.NutritionPlan.TotalCalories != plan.DailyCalories {
		t.Errorf("nutrition total %d != daily calories %d", plan.NutritionPlan.TotalCalories, plan.DailyCalories)
	}
	if plan.Timeline.EstimatedCompletion != "January 1, 2027" {
		t.Errorf("estimated completion = %q", plan.Timeline.EstimatedCompletion)
	}
	if len(plan.Recommendations) != 6 {
		t.Errorf("got %d recommendations, want 6", len(plan.Recommendations))
	}
	// Lose goal gets the protein recommendation as its final entry.
	last := plan.Recommendations[len(plan.Recommendations)-1]
	if last != "Focus on protein to maintain muscle mass" {
		t.Errorf("last recommendation = %q", last)
	}
}
