package model

import "time"

type Sex string

const (
	SexMale   Sex = "male"
	SexFemale Sex = "female"
)

type ActivityLevel string

const (
	ActivitySedentary  ActivityLevel = "sedentary"
	ActivityLight      ActivityLevel = "light"
	ActivityModerate   ActivityLevel = "moderate"
	ActivityActive     ActivityLevel = "active"
	ActivityVeryActive ActivityLevel = "very_active"
)

type Goal string

const (
	GoalLose     Goal = "lose"
	GoalMaintain Goal = "maintain"
	GoalGain     Goal = "gain"
)

type WorkoutType string

const (
	WorkoutStrength WorkoutType = "strength"
	WorkoutCardio   WorkoutType = "cardio"
	WorkoutRest     WorkoutType = "rest"
)

type UserAccount struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// UserProfile is replaced wholesale on edit; there is no partial merge.
type UserProfile struct {
	HeightCm           float64       `json:"height"`
	CurrentWeightKg    float64       `json:"currentWeight"`
	GoalWeightKg       float64       `json:"goalWeight"`
	Age                int           `json:"age"`
	Sex                Sex           `json:"sex"`
	WorkoutDaysPerWeek int           `json:"workoutDaysPerWeek"`
	ActivityLevel      ActivityLevel `json:"activityLevel"`
	Goal               Goal          `json:"goal"`
	TargetDate         string        `json:"targetDate"` // YYYY-MM-DD
}

type LoggedExercise struct {
	Name           string   `json:"name"`
	Sets           int      `json:"sets,omitempty"`
	Reps           *int     `json:"reps,omitempty"`
	DurationMin    *int     `json:"duration,omitempty"`
	WeightKg       *float64 `json:"weight,omitempty"`
	DistanceKm     *float64 `json:"distance,omitempty"`
	CaloriesBurned int      `json:"caloriesBurned,omitempty"`
	Completed      bool     `json:"completed"`
}

type WorkoutLog struct {
	ID             string           `json:"id"`
	Date           string           `json:"date"` // YYYY-MM-DD
	DayOfWeek      string           `json:"dayOfWeek"`
	WorkoutType    WorkoutType      `json:"workoutType"`
	Exercises      []LoggedExercise `json:"exercises"`
	TotalDuration  int              `json:"totalDuration"` // minutes
	CaloriesBurned int              `json:"caloriesBurned"`
	Completed      bool             `json:"completed"`
	Notes          string           `json:"notes,omitempty"`
}

type FoodItem struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Calories int     `json:"calories"`
	Quantity float64 `json:"quantity"`
	Unit     string  `json:"unit"`
	Date     string  `json:"date"` // YYYY-MM-DD
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// PersonalRecord entries are append-only; a new one is added only when
// it strictly beats the best prior score for its (ExerciseName, Type).
type PersonalRecord struct {
	ExerciseName string      `json:"exerciseName"`
	Type         WorkoutType `json:"type"`
	WeightKg     *float64    `json:"weight,omitempty"`
	Reps         *int        `json:"reps,omitempty"`
	DurationMin  *int        `json:"duration,omitempty"`
	DistanceKm   *float64    `json:"distance,omitempty"`
	Date         string      `json:"date"`
	WorkoutID    string      `json:"workoutId"`
}

type WeightEntry struct {
	ID       string  `json:"id"`
	WeightKg float64 `json:"weight"`
	Date     string  `json:"date"`
	Notes    string  `json:"notes,omitempty"`
}

// DailyStats is the running total for a single calendar day; it resets
// when the stored date no longer matches today.
type DailyStats struct {
	CaloriesConsumed  int    `json:"caloriesConsumed"`
	CaloriesBurned    int    `json:"caloriesBurned"`
	WorkoutsCompleted int    `json:"workoutsCompleted"`
	Date              string `json:"date"`
}

type DailyMacros struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
	Date    string  `json:"date"`
}

type MacroGoals struct {
	Protein float64 `json:"protein"`
	Carbs   float64 `json:"carbs"`
	Fat     float64 `json:"fat"`
}

type WeightGoal struct {
	CurrentWeightKg float64 `json:"currentWeight"`
	TargetWeightKg  float64 `json:"targetWeight"`
	TargetDate      string  `json:"targetDate"`
	WeeklyGoalKg    float64 `json:"weeklyGoal"`
}

type Subscription struct {
	Active    bool   `json:"active"`
	Plan      string `json:"plan,omitempty"`
	StartedAt string `json:"startedAt,omitempty"`
}
