package service

import (
	"fmt"
	"math"
	"time"

	"github.com/lukejerome/viligant-tracker-dk/internal/model"
)

type PlannedExercise struct {
	Name         string `json:"name"`
	Sets         int    `json:"sets,omitempty"`
	Reps         string `json:"reps,omitempty"`
	DurationMin  int    `json:"duration,omitempty"`
	Rest         string `json:"rest,omitempty"`
	Instructions string `json:"instructions"`
}

type DailyWorkoutPlan struct {
	Day            string            `json:"day"`
	Type           model.WorkoutType `json:"type"`
	Exercises      []PlannedExercise `json:"exercises"`
	TotalDuration  int               `json:"totalDuration"`
	CaloriesBurned int               `json:"caloriesBurned"`
}

type PlannedFood struct {
	Item     string  `json:"item"`
	Amount   string  `json:"amount"`
	Calories int     `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

type PlannedMeal struct {
	Name     string        `json:"name"`
	Time     string        `json:"time"`
	Calories int           `json:"calories"`
	Foods    []PlannedFood `json:"foods"`
}

type NutritionPlan struct {
	TotalCalories int              `json:"totalCalories"`
	Macros        model.MacroGoals `json:"macros"` // grams, rounded
	Meals         []PlannedMeal    `json:"meals"`
	WaterLiters   float64          `json:"waterIntake"`
}

type Timeline struct {
	WeeksToGoal          int     `json:"weeksToGoal"`
	WeeklyWeightChangeKg float64 `json:"weeklyWeightChange"`
	EstimatedCompletion  string  `json:"estimatedCompletion"`
}

type PersonalPlan struct {
	DailyCalories       int                `json:"dailyCalories"`
	DailyCaloriesToBurn int                `json:"dailyCaloriesToBurn"`
	WeeklyWorkouts      int                `json:"weeklyWorkouts"`
	WorkoutPlan         []DailyWorkoutPlan `json:"workoutPlan"`
	NutritionPlan       NutritionPlan      `json:"nutritionPlan"`
	Timeline            Timeline           `json:"timeline"`
	Recommendations     []string           `json:"recommendations"`
}

var weekDays = [7]string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday"}

// Active day indexes per configured workout frequency.
var workoutDayLookup = map[int][]int{
	3: {0, 2, 4},          // Mon, Wed, Fri
	4: {0, 1, 3, 5},       // Mon, Tue, Thu, Sat
	5: {0, 1, 2, 4, 5},    // Mon-Wed, Fri-Sat
	6: {0, 1, 2, 3, 4, 5}, // Mon-Sat
	7: {0, 1, 2, 3, 4, 5, 6},
}

func strengthDayTemplate() []PlannedExercise {
	return []PlannedExercise{
		{Name: "Warm-up", DurationMin: 10, Instructions: "5 minutes light cardio + 5 minutes dynamic stretching"},
		{Name: "Squats", Sets: 3, Reps: "8-12", Rest: "60-90 seconds", Instructions: "Keep chest up, knees behind toes, full range of motion"},
		{Name: "Push-ups", Sets: 3, Reps: "8-15", Rest: "60 seconds", Instructions: "Maintain straight line from head to heels"},
		{Name: "Deadlifts", Sets: 3, Reps: "6-10", Rest: "90 seconds", Instructions: "Keep back straight, drive through heels"},
		{Name: "Plank", Sets: 3, DurationMin: 30, Rest: "30 seconds", Instructions: "Hold strong core position, breathe normally"},
		{Name: "Cool-down", DurationMin: 10, Instructions: "Static stretching focusing on worked muscles"},
	}
}

func cardioDayTemplate() []PlannedExercise {
	return []PlannedExercise{
		{Name: "Warm-up", DurationMin: 5, Instructions: "Light walking or marching in place"},
		{Name: "High-Intensity Intervals", DurationMin: 20, Instructions: "30 seconds high intensity, 30 seconds rest. Repeat 20 times."},
		{Name: "Steady-State Cardio", DurationMin: 15, Instructions: "Moderate pace running, cycling, or brisk walking"},
		{Name: "Cool-down", DurationMin: 5, Instructions: "Slow walking and light stretching"},
	}
}

func restDayTemplate() []PlannedExercise {
	return []PlannedExercise{
		{Name: "Active Recovery", DurationMin: 20, Instructions: "Light walking, yoga, or gentle stretching"},
	}
}

// GenerateWorkoutPlan produces the Monday-Sunday schedule. Active days
// alternate strength and cardio by day parity; gain goals bias toward
// strength and lose goals force cardio on every active day.
func GenerateWorkoutPlan(p model.UserProfile, dailyCaloriesToBurn float64) ([]DailyWorkoutPlan, error) {
	if err := ValidateProfile(p); err != nil {
		return nil, err
	}
	if err := validateNonNegativeFloat("daily calories to burn", dailyCaloriesToBurn); err != nil {
		return nil, err
	}

	activeDays := workoutDayLookup[p.WorkoutDaysPerWeek]
	caloriesPerWorkout := int(math.Round(dailyCaloriesToBurn * 7 / float64(p.WorkoutDaysPerWeek)))

	plan := make([]DailyWorkoutPlan, 0, len(weekDays))
	for index, day := range weekDays {
		if !containsInt(activeDays, index) {
			plan = append(plan, DailyWorkoutPlan{
				Day:            day,
				Type:           model.WorkoutRest,
				Exercises:      restDayTemplate(),
				TotalDuration:  20,
				CaloriesBurned: 50,
			})
			continue
		}

		isStrengthDay := index%2 == 0 || p.Goal == model.GoalGain
		if isStrengthDay && p.Goal != model.GoalLose {
			plan = append(plan, DailyWorkoutPlan{
				Day:            day,
				Type:           model.WorkoutStrength,
				Exercises:      strengthDayTemplate(),
				TotalDuration:  45,
				CaloriesBurned: caloriesPerWorkout,
			})
		} else {
			plan = append(plan, DailyWorkoutPlan{
				Day:            day,
				Type:           model.WorkoutCardio,
				Exercises:      cardioDayTemplate(),
				TotalDuration:  45,
				CaloriesBurned: caloriesPerWorkout,
			})
		}
	}
	return plan, nil
}

// GenerateNutritionPlan splits daily calories across five fixed meals.
// The food lists are illustrative portions, not scaled to the target.
func GenerateNutritionPlan(p model.UserProfile, dailyCalories int) (*NutritionPlan, error) {
	if err := ValidateProfile(p); err != nil {
		return nil, err
	}
	if dailyCalories <= 0 {
		return nil, validationErr("daily calories", "must be > 0")
	}

	mealShare := func(share float64) int {
		return int(math.Round(float64(dailyCalories) * share))
	}

	meals := []PlannedMeal{
		{
			Name: "Breakfast", Time: "7:00 AM", Calories: mealShare(0.25),
			Foods: []PlannedFood{
				{Item: "Oatmeal with berries", Amount: "1 cup", Calories: 150, Protein: 5, Carbs: 30, Fat: 3},
				{Item: "Greek yogurt", Amount: "150g", Calories: 100, Protein: 15, Carbs: 6, Fat: 0},
				{Item: "Almonds", Amount: "15g", Calories: 87, Protein: 3, Carbs: 3, Fat: 7},
			},
		},
		{
			Name: "Mid-Morning Snack", Time: "10:00 AM", Calories: mealShare(0.1),
			Foods: []PlannedFood{
				{Item: "Apple", Amount: "1 medium", Calories: 80, Protein: 0, Carbs: 21, Fat: 0},
				{Item: "Peanut butter", Amount: "1 tbsp", Calories: 95, Protein: 4, Carbs: 3, Fat: 8},
			},
		},
		{
			Name: "Lunch", Time: "1:00 PM", Calories: mealShare(0.3),
			Foods: []PlannedFood{
				{Item: "Grilled chicken breast", Amount: "150g", Calories: 248, Protein: 46, Carbs: 0, Fat: 5},
				{Item: "Brown rice", Amount: "100g cooked", Calories: 111, Protein: 3, Carbs: 23, Fat: 1},
				{Item: "Mixed vegetables", Amount: "200g", Calories: 50, Protein: 3, Carbs: 10, Fat: 0},
			},
		},
		{
			Name: "Afternoon Snack", Time: "4:00 PM", Calories: mealShare(0.1),
			Foods: []PlannedFood{
				{Item: "Protein shake", Amount: "1 scoop + 250ml milk", Calories: 150, Protein: 25, Carbs: 5, Fat: 3},
			},
		},
		{
			Name: "Dinner", Time: "7:00 PM", Calories: mealShare(0.25),
			Foods: []PlannedFood{
				{Item: "Salmon fillet", Amount: "120g", Calories: 250, Protein: 30, Carbs: 0, Fat: 14},
				{Item: "Sweet potato", Amount: "150g", Calories: 129, Protein: 2, Carbs: 30, Fat: 0},
				{Item: "Green salad", Amount: "100g", Calories: 20, Protein: 2, Carbs: 4, Fat: 0},
			},
		},
	}

	macros := MacroSplit(float64(dailyCalories))
	return &NutritionPlan{
		TotalCalories: dailyCalories,
		Macros: model.MacroGoals{
			Protein: math.Round(macros.Protein),
			Carbs:   math.Round(macros.Carbs),
			Fat:     math.Round(macros.Fat),
		},
		Meals:       meals,
		WaterLiters: 2.5 + 0.5*float64(p.WorkoutDaysPerWeek),
	}, nil
}

// GeneratePersonalPlan orchestrates the calculator and both generators
// into the full plan shown on the trainer dashboard.
func GeneratePersonalPlan(p model.UserProfile, now time.Time) (*PersonalPlan, error) {
	targets, err := ComputeEnergyTargets(p, now)
	if err != nil {
		return nil, err
	}

	workoutPlan, err := GenerateWorkoutPlan(p, float64(targets.DailyCaloriesToBurn))
	if err != nil {
		return nil, err
	}
	nutritionPlan, err := GenerateNutritionPlan(p, targets.DailyCalories)
	if err != nil {
		return nil, err
	}

	targetDate, err := parseDay(p.TargetDate)
	if err != nil {
		return nil, err
	}

	recommendations := []string{
		fmt.Sprintf("Aim for %.1fkg per week to reach your goal", math.Abs(targets.WeeklyWeightChangeKg)),
		fmt.Sprintf("Drink %.1fL of water daily", targets.WaterLiters),
		"Get 7-9 hours of sleep each night for optimal recovery",
		"Track your progress weekly and adjust portions as needed",
		"Take progress photos and measurements monthly",
	}
	if p.Goal == model.GoalLose {
		recommendations = append(recommendations, "Focus on protein to maintain muscle mass")
	} else {
		recommendations = append(recommendations, "Eat within 30 minutes post-workout")
	}

	return &PersonalPlan{
		DailyCalories:       targets.DailyCalories,
		DailyCaloriesToBurn: targets.DailyCaloriesToBurn,
		WeeklyWorkouts:      p.WorkoutDaysPerWeek,
		WorkoutPlan:         workoutPlan,
		NutritionPlan:       *nutritionPlan,
		Timeline: Timeline{
			WeeksToGoal:          int(math.Round(targets.WeeksRemaining)),
			WeeklyWeightChangeKg: targets.WeeklyWeightChangeKg,
			EstimatedCompletion:  targetDate.Format("January 2, 2006"),
		},
		Recommendations: recommendations,
	}, nil
}

func containsInt(values []int, v int) bool {
	for _, value := range values {
		if value == v {
			return true
		}
	}
	return false
}
