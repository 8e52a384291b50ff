package service

import (
	"math"
	"time"

	"github.com/lukejerome/viligant-tracker-dk/internal/model"
)

// Energy cost of one kilogram of body fat, used to convert a weekly
// weight-change target into a daily calorie delta.
const kcalPerKg = 7700

const minDailyCalories = 1200

var activityMultipliers = map[model.ActivityLevel]float64{
	model.ActivitySedentary:  1.2,
	model.ActivityLight:      1.375,
	model.ActivityModerate:   1.55,
	model.ActivityActive:     1.725,
	model.ActivityVeryActive: 1.9,
}

type EnergyTargets struct {
	BMR                  float64          `json:"bmr"`
	TDEE                 float64          `json:"tdee"`
	DailyCalories        int              `json:"daily_calories"`
	DailyCaloriesToBurn  int              `json:"daily_calories_to_burn"`
	Macros               model.MacroGoals `json:"macros"` // grams
	WaterLiters          float64          `json:"water_liters"`
	WeeksRemaining       float64          `json:"weeks_remaining"`
	WeeklyWeightChangeKg float64          `json:"weekly_weight_change_kg"`
}

// ValidateProfile checks the ranges every calculation depends on.
func ValidateProfile(p model.UserProfile) error {
	if err := validatePositiveFloat("height", p.HeightCm); err != nil {
		return err
	}
	if err := validatePositiveFloat("current weight", p.CurrentWeightKg); err != nil {
		return err
	}
	if err := validatePositiveFloat("goal weight", p.GoalWeightKg); err != nil {
		return err
	}
	if p.Age <= 0 {
		return validationErr("age", "must be > 0")
	}
	if p.Sex != model.SexMale && p.Sex != model.SexFemale {
		return validationErr("sex", "must be male or female")
	}
	if p.WorkoutDaysPerWeek < 3 || p.WorkoutDaysPerWeek > 7 {
		return validationErr("workout days per week", "must be between 3 and 7")
	}
	if _, ok := activityMultipliers[p.ActivityLevel]; !ok {
		return validationErr("activity level", "must be one of sedentary, light, moderate, active, very_active")
	}
	switch p.Goal {
	case model.GoalLose, model.GoalMaintain, model.GoalGain:
	default:
		return validationErr("goal", "must be lose, maintain, or gain")
	}
	if _, err := parseDay(p.TargetDate); err != nil {
		return validationErr("target date", "expected YYYY-MM-DD")
	}
	return nil
}

// BasalMetabolicRate implements the Mifflin-St Jeor equation.
func BasalMetabolicRate(p model.UserProfile) float64 {
	if p.Sex == model.SexMale {
		return 88.362 + 13.397*p.CurrentWeightKg + 4.799*p.HeightCm - 5.677*float64(p.Age)
	}
	return 447.593 + 9.247*p.CurrentWeightKg + 3.098*p.HeightCm - 4.33*float64(p.Age)
}

// ComputeEnergyTargets maps a profile to daily calorie, exercise,
// macro, and water targets as of now.
func ComputeEnergyTargets(p model.UserProfile, now time.Time) (*EnergyTargets, error) {
	if err := ValidateProfile(p); err != nil {
		return nil, err
	}

	bmr := BasalMetabolicRate(p)
	tdee := bmr * activityMultipliers[p.ActivityLevel]

	targetDate, err := parseDay(p.TargetDate)
	if err != nil {
		return nil, err
	}
	weeksRemaining := math.Max(1, targetDate.Sub(now).Hours()/(24*7))
	weeklyChange := (p.GoalWeightKg - p.CurrentWeightKg) / weeksRemaining

	dailyCalories := tdee
	dailyToBurn := 0.0

	switch p.Goal {
	case model.GoalLose:
		dailyDeficit := math.Abs(weeklyChange) * kcalPerKg / 7
		// 70% from diet, 30% from exercise, never below the floor.
		dailyCalories = math.Max(minDailyCalories, tdee-dailyDeficit*0.7)
		dailyToBurn = dailyDeficit * 0.3
	case model.GoalGain:
		dailySurplus := weeklyChange * kcalPerKg / 7
		dailyCalories = tdee + dailySurplus
		dailyToBurn = 200
	case model.GoalMaintain:
		dailyToBurn = 250
	}

	rounded := math.Round(dailyCalories)
	return &EnergyTargets{
		BMR:                  bmr,
		TDEE:                 tdee,
		DailyCalories:        int(rounded),
		DailyCaloriesToBurn:  int(math.Round(dailyToBurn)),
		Macros:               MacroSplit(rounded),
		WaterLiters:          2.5 + 0.5*float64(p.WorkoutDaysPerWeek),
		WeeksRemaining:       weeksRemaining,
		WeeklyWeightChangeKg: weeklyChange,
	}, nil
}

// MacroSplit divides daily calories 30/40/30 across protein, carbs,
// and fat, in grams at 4/4/9 kcal per gram.
func MacroSplit(dailyCalories float64) model.MacroGoals {
	return model.MacroGoals{
		Protein: dailyCalories * 0.3 / 4,
		Carbs:   dailyCalories * 0.4 / 4,
		Fat:     dailyCalories * 0.3 / 9,
	}
}
