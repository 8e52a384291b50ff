package service

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/lukejerome/viligant-tracker-dk/internal/model"
)

const recentExerciseLimit = 10

// Estimated calories per set for known exercises; unknown exercises
// fall back to defaultCaloriesPerSet.
var exerciseCalories = map[string]int{
	"Push-ups":          8,
	"Squats":            10,
	"Burpees":           15,
	"Running":           12,
	"Cycling":           8,
	"Jumping Jacks":     10,
	"Plank":             5,
	"Deadlifts":         12,
	"Bench Press":       10,
	"Pull-ups":          12,
	"Bicep Curls":       6,
	"Tricep Dips":       8,
	"Lunges":            9,
	"Mountain Climbers": 12,
	"Russian Twists":    7,
	"Leg Press":         10,
	"Shoulder Press":    8,
	"Lat Pulldowns":     9,
	"Chest Flyes":       7,
	"Leg Curls":         8,
	"Calf Raises":       5,
	"Hip Thrusts":       9,
	"Face Pulls":        6,
	"Hammer Curls":      6,
	"Overhead Press":    9,
	"Rows":              8,
	"Dumbbell Press":    8,
	"Kettlebell Swings": 12,
	"Battle Ropes":      15,
	"Box Jumps":         11,
}

const defaultCaloriesPerSet = 8

// StartWorkout opens a scratch workout session of the given type.
// Only one workout can be active at a time.
func StartWorkout(store *KeyedStore, userID string, typ model.WorkoutType, now time.Time) (*model.WorkoutLog, error) {
	if typ != model.WorkoutStrength && typ != model.WorkoutCardio {
		return nil, validationErr("workout type", "must be strength or cardio")
	}
	return startWorkout(store, userID, model.WorkoutLog{
		ID:          uuid.NewString(),
		Date:        dayString(now),
		DayOfWeek:   now.Weekday().String(),
		WorkoutType: typ,
		Exercises:   []model.LoggedExercise{},
	})
}

// StartWorkoutFromPlan materializes a planned day into an active
// workout: the template exercises come in unchecked, with no weights.
func StartWorkoutFromPlan(store *KeyedStore, userID string, day DailyWorkoutPlan, now time.Time) (*model.WorkoutLog, error) {
	exercises := make([]model.LoggedExercise, 0, len(day.Exercises))
	for _, planned := range day.Exercises {
		exercise := model.LoggedExercise{
			Name: planned.Name,
			Sets: planned.Sets,
		}
		if planned.DurationMin > 0 {
			duration := planned.DurationMin
			exercise.DurationMin = &duration
		}
		exercises = append(exercises, exercise)
	}
	return startWorkout(store, userID, model.WorkoutLog{
		ID:             uuid.NewString(),
		Date:           dayString(now),
		DayOfWeek:      day.Day,
		WorkoutType:    day.Type,
		Exercises:      exercises,
		TotalDuration:  day.TotalDuration,
		CaloriesBurned: day.CaloriesBurned,
	})
}

func startWorkout(store *KeyedStore, userID string, log model.WorkoutLog) (*model.WorkoutLog, error) {
	active, err := ActiveWorkout(store, userID)
	if err != nil {
		return nil, err
	}
	if active != nil {
		return nil, validationErr("workout", "another workout is already active")
	}
	if err := store.Set(userID, keyActiveWorkout, log); err != nil {
		return nil, err
	}
	return &log, nil
}

// ActiveWorkout returns the in-progress workout, or nil when none.
func ActiveWorkout(store *KeyedStore, userID string) (*model.WorkoutLog, error) {
	var log model.WorkoutLog
	if err := store.Get(userID, keyActiveWorkout, &log); err != nil {
		return nil, err
	}
	if log.ID == "" {
		return nil, nil
	}
	return &log, nil
}

type ExerciseInput struct {
	Name           string
	Sets           int
	Reps           *int
	DurationMin    *int
	WeightKg       *float64
	DistanceKm     *float64
	CaloriesBurned int // estimated from sets when 0 (strength only)
}

// AddExercise records a finished exercise or cardio activity against
// the active workout and bumps the recent-exercise list.
func AddExercise(store *KeyedStore, userID string, in ExerciseInput) (*model.WorkoutLog, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return nil, validationErr("exercise name", "is required")
	}
	if in.Reps != nil && *in.Reps < 0 {
		return nil, validationErr("reps", "must be >= 0")
	}
	if in.DurationMin != nil && *in.DurationMin <= 0 {
		return nil, validationErr("duration", "must be > 0")
	}
	if in.WeightKg != nil && *in.WeightKg <= 0 {
		return nil, validationErr("weight", "must be > 0")
	}
	if in.DistanceKm != nil && *in.DistanceKm <= 0 {
		return nil, validationErr("distance", "must be > 0")
	}

	active, err := ActiveWorkout(store, userID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, validationErr("workout", "no active workout")
	}

	calories := in.CaloriesBurned
	if calories == 0 && active.WorkoutType == model.WorkoutStrength {
		perSet, ok := exerciseCalories[in.Name]
		if !ok {
			perSet = defaultCaloriesPerSet
		}
		sets := in.Sets
		if sets == 0 {
			sets = 1
		}
		calories = sets * perSet
	}

	active.Exercises = append(active.Exercises, model.LoggedExercise{
		Name:           in.Name,
		Sets:           in.Sets,
		Reps:           in.Reps,
		DurationMin:    in.DurationMin,
		WeightKg:       in.WeightKg,
		DistanceKm:     in.DistanceKm,
		CaloriesBurned: calories,
		Completed:      true,
	})
	active.CaloriesBurned += calories

	if err := store.Set(userID, keyActiveWorkout, active); err != nil {
		return nil, err
	}
	if err := bumpRecentExercises(store, userID, in.Name); err != nil {
		return nil, err
	}
	return active, nil
}

// RemoveExercise drops the exercise at position index from the active
// workout.
func RemoveExercise(store *KeyedStore, userID string, index int) (*model.WorkoutLog, error) {
	active, err := ActiveWorkout(store, userID)
	if err != nil {
		return nil, err
	}
	if active == nil {
		return nil, validationErr("workout", "no active workout")
	}
	if index < 0 || index >= len(active.Exercises) {
		return nil, validationErr("exercise index", "out of range")
	}

	active.CaloriesBurned -= active.Exercises[index].CaloriesBurned
	if active.CaloriesBurned < 0 {
		active.CaloriesBurned = 0
	}
	active.Exercises = append(active.Exercises[:index], active.Exercises[index+1:]...)

	if err := store.Set(userID, keyActiveWorkout, active); err != nil {
		return nil, err
	}
	return active, nil
}

// CompleteWorkout finalizes the active workout, appends it to the
// immutable history, records any personal bests beaten, and refreshes
// today's totals. The returned records are the newly added ones.
func CompleteWorkout(store *KeyedStore, userID, notes string, now time.Time) (*model.WorkoutLog, []model.PersonalRecord, error) {
	active, err := ActiveWorkout(store, userID)
	if err != nil {
		return nil, nil, err
	}
	if active == nil {
		return nil, nil, validationErr("workout", "no active workout")
	}
	if len(active.Exercises) == 0 {
		return nil, nil, validationErr("workout", "cannot complete a workout with no exercises")
	}

	active.Completed = true
	active.Notes = strings.TrimSpace(notes)
	if active.TotalDuration == 0 {
		for _, exercise := range active.Exercises {
			if exercise.DurationMin != nil {
				active.TotalDuration += *exercise.DurationMin
			}
		}
	}

	records, err := PersonalRecords(store, userID)
	if err != nil {
		return nil, nil, err
	}
	newRecords := make([]model.PersonalRecord, 0)
	if active.WorkoutType != model.WorkoutRest {
		for _, exercise := range active.Exercises {
			if !exercise.Completed {
				continue
			}
			candidate := ExercisePerformance{
				WeightKg:    exercise.WeightKg,
				Reps:        exercise.Reps,
				DurationMin: exercise.DurationMin,
				DistanceKm:  exercise.DistanceKm,
			}
			if !IsNewRecord(exercise.Name, active.WorkoutType, candidate, records) {
				continue
			}
			record := model.PersonalRecord{
				ExerciseName: exercise.Name,
				Type:         active.WorkoutType,
				WeightKg:     exercise.WeightKg,
				Reps:         exercise.Reps,
				DurationMin:  exercise.DurationMin,
				DistanceKm:   exercise.DistanceKm,
				Date:         dayString(now),
				WorkoutID:    active.ID,
			}
			records = AppendRecord(records, record)
			newRecords = append(newRecords, record)
		}
	}

	history, err := WorkoutHistory(store, userID)
	if err != nil {
		return nil, nil, err
	}
	history = append([]model.WorkoutLog{*active}, history...)

	if err := store.Set(userID, keyWorkouts, history); err != nil {
		return nil, nil, err
	}
	if len(newRecords) > 0 {
		if err := store.Set(userID, keyPersonalRecords, records); err != nil {
			return nil, nil, err
		}
	}
	if err := store.Delete(userID, keyActiveWorkout); err != nil {
		return nil, nil, err
	}
	if err := refreshDaily(store, userID, now); err != nil {
		return nil, nil, err
	}
	return active, newRecords, nil
}

func DeleteWorkout(store *KeyedStore, userID, id string, now time.Time) error {
	history, err := WorkoutHistory(store, userID)
	if err != nil {
		return err
	}

	kept := make([]model.WorkoutLog, 0, len(history))
	found := false
	for _, log := range history {
		if log.ID == id {
			found = true
			continue
		}
		kept = append(kept, log)
	}
	if !found {
		return validationErr("workout id", "not found")
	}

	if err := store.Set(userID, keyWorkouts, kept); err != nil {
		return err
	}
	return refreshDaily(store, userID, now)
}

// WorkoutHistory returns completed workouts, newest first.
func WorkoutHistory(store *KeyedStore, userID string) ([]model.WorkoutLog, error) {
	history := []model.WorkoutLog{}
	if err := store.Get(userID, keyWorkouts, &history); err != nil {
		return nil, err
	}
	return history, nil
}

func PersonalRecords(store *KeyedStore, userID string) ([]model.PersonalRecord, error) {
	records := []model.PersonalRecord{}
	if err := store.Get(userID, keyPersonalRecords, &records); err != nil {
		return nil, err
	}
	return records, nil
}

func RecentExercises(store *KeyedStore, userID string) ([]string, error) {
	recent := []string{}
	if err := store.Get(userID, keyRecentExercises, &recent); err != nil {
		return nil, err
	}
	return recent, nil
}

// Most-recently-used list, capped at recentExerciseLimit entries.
func bumpRecentExercises(store *KeyedStore, userID, name string) error {
	recent, err := RecentExercises(store, userID)
	if err != nil {
		return err
	}
	updated := []string{name}
	for _, existing := range recent {
		if existing != name {
			updated = append(updated, existing)
		}
	}
	if len(updated) > recentExerciseLimit {
		updated = updated[:recentExerciseLimit]
	}
	return store.Set(userID, keyRecentExercises, updated)
}
