package service_test

import (
	"math"
	"testing"
	"time"

	"github.com/lukejerome/viligant-tracker-dk/internal/model"
	"github.com/lukejerome/viligant-tracker-dk/internal/service"
)

func TestBasalMetabolicRate(t *testing.T) {
	t.Parallel()

	p := testProfile()
	got := service.BasalMetabolicRate(p)
	want := 88.362 + 13.397*85 + 4.799*180 - 5.677*30
	if math.Abs(got-want) > 0.001 {
		t.Fatalf("male BMR = %.3f, want %.3f", got, want)
	}

	p.Sex = model.SexFemale
	got = service.BasalMetabolicRate(p)
	want = 447.593 + 9.247*85 + 3.098*180 - 4.33*30
	if math.Abs(got-want) > 0.001 {
		t.Fatalf("female BMR = %.3f, want %.3f", got, want)
	}
}

func TestEnergyTargetsLoseSplitsDeficit(t *testing.T) {
	t.Parallel()

	p := testProfile()
	target := time.Date(2027, 1, 1, 0, 0, 0, 0, time.Local)
	now := target.AddDate(0, 0, -112) // 16 weeks out

	targets, err := service.ComputeEnergyTargets(p, now)
	if err != nil {
		t.Fatalf("compute targets: %v", err)
	}

	weeklyChange := (78.0 - 85.0) / 16.0
	dailyDeficit := math.Abs(weeklyChange) * 7700 / 7
	wantCalories := targets.TDEE - dailyDeficit*0.7
	wantBurn := dailyDeficit * 0.3

	if math.Abs(float64(targets.DailyCalories)-wantCalories) > 2 {
		t.Errorf("daily calories = %d, want ~%.0f", targets.DailyCalories, wantCalories)
	}
	if math.Abs(float64(targets.DailyCaloriesToBurn)-wantBurn) > 2 {
		t.Errorf("daily calories to burn = %d, want ~%.0f", targets.DailyCaloriesToBurn, wantBurn)
	}
	if targets.WeeklyWeightChangeKg >= 0 {
		t.Errorf("weekly change = %.3f, want negative for a lose goal", targets.WeeklyWeightChangeKg)
	}
	if math.Abs(targets.WeeksRemaining-16) > 0.1 {
		t.Errorf("weeks remaining = %.3f, want ~16", targets.WeeksRemaining)
	}
}

func TestEnergyTargetsLoseNeverBelowFloor(t *testing.T) {
	t.Parallel()

	p := model.UserProfile{
		HeightCm:           150,
		CurrentWeightKg:    90,
		GoalWeightKg:       50,
		Age:                60,
		Sex:                model.SexFemale,
		WorkoutDaysPerWeek: 3,
		ActivityLevel:      model.ActivitySedentary,
		Goal:               model.GoalLose,
		TargetDate:         "2026-09-15",
	}
	// Days from the goal, so the implied deficit is absurdly large.
	now := time.Date(2026, 9, 10, 12, 0, 0, 0, time.Local)

	targets, err := service.ComputeEnergyTargets(p, now)
	if err != nil {
		t.Fatalf("compute targets: %v", err)
	}
	if targets.DailyCalories != 1200 {
		t.Fatalf("daily calories = %d, want clamped to 1200", targets.DailyCalories)
	}
}

func TestEnergyTargetsMaintainAndGain(t *testing.T) {
	t.Parallel()

	p := testProfile()
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)

	p.Goal = model.GoalMaintain
	p.GoalWeightKg = p.CurrentWeightKg
	targets, err := service.ComputeEnergyTargets(p, now)
	if err != nil {
		t.Fatalf("maintain targets: %v", err)
	}
	if targets.DailyCaloriesToBurn != 250 {
		t.Errorf("maintain burn = %d, want 250", targets.DailyCaloriesToBurn)
	}
	if targets.DailyCalories != int(math.Round(targets.TDEE)) {
		t.Errorf("maintain calories = %d, want TDEE %.0f", targets.DailyCalories, targets.TDEE)
	}

	p.Goal = model.GoalGain
	p.GoalWeightKg = p.CurrentWeightKg + 5
	targets, err = service.ComputeEnergyTargets(p, now)
	if err != nil {
		t.Fatalf("gain targets: %v", err)
	}
	if targets.DailyCaloriesToBurn != 200 {
		t.Errorf("gain burn = %d, want 200", targets.DailyCaloriesToBurn)
	}
	if float64(targets.DailyCalories) <= targets.TDEE {
		t.Errorf("gain calories = %d, want above TDEE %.0f", targets.DailyCalories, targets.TDEE)
	}
}

func TestEnergyTargetsPastTargetDateClampsToOneWeek(t *testing.T) {
	t.Parallel()

	p := testProfile()
	now := time.Date(2027, 6, 1, 0, 0, 0, 0, time.Local) // after the target date

	targets, err := service.ComputeEnergyTargets(p, now)
	if err != nil {
		t.Fatalf("compute targets: %v", err)
	}
	if targets.WeeksRemaining != 1 {
		t.Fatalf("weeks remaining = %.3f, want clamped to 1", targets.WeeksRemaining)
	}
}

func TestMacroSplitMatchesCalorieBudget(t *testing.T) {
	t.Parallel()

	for _, calories := range []float64{1200, 1857, 2282, 2640, 3100} {
		macros := service.MacroSplit(calories)
		sum := macros.Protein*4 + macros.Carbs*4 + macros.Fat*9
		if math.Abs(sum-calories) > 1 {
			t.Errorf("macro energy for %.0f kcal sums to %.2f", calories, sum)
		}
	}
}

func TestEnergyTargetsWaterScalesWithWorkoutDays(t *testing.T) {
	t.Parallel()

	p := testProfile()
	now := time.Date(2026, 8, 1, 0, 0, 0, 0, time.Local)
	for days := 3; days <= 7; days++ {
		p.WorkoutDaysPerWeek = days
		targets, err := service.ComputeEnergyTargets(p, now)
		if err != nil {
			t.Fatalf("compute targets for %d days: %v", days, err)
		}
		want := 2.5 + 0.5*float64(days)
		if math.Abs(targets.WaterLiters-want) > 0.001 {
			t.Errorf("water for %d days = %.2f, want %.2f", days, targets.WaterLiters, want)
		}
	}
}

func TestValidateProfileRejectsBadInput(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name   string
		mutate func(*model.UserProfile)
	}{
		{"zero height", func(p *model.UserProfile) { p.HeightCm = 0 }},
		{"negative weight", func(p *model.UserProfile) { p.CurrentWeightKg = -70 }},
		{"zero age", func(p *model.UserProfile) { p.Age = 0 }},
		{"unknown sex", func(p *model.UserProfile) { p.Sex = "other" }},
		{"too few workout days", func(p *model.UserProfile) { p.WorkoutDaysPerWeek = 2 }},
		{"too many workout days", func(p *model.UserProfile) { p.WorkoutDaysPerWeek = 8 }},
		{"unknown activity", func(p *model.UserProfile) { p.ActivityLevel = "extreme" }},
		{"unknown goal", func(p *model.UserProfile) { p.Goal = "bulk" }},
		{"bad target date", func(p *model.UserProfile) { p.TargetDate = "01/01/2027" }},
	}
	for _, tc := range cases {
		p := testProfile()
		tc.mutate(&p)
		if err := service.ValidateProfile(p); err == nil {
			t.Errorf("%s: expected validation error", tc.name)
		}
	}
}
