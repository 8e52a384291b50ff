package service

import (
	"time"

	"github.com/lukejerome/viligant-tracker-dk/internal/model"
)

// RolloverIfStale resets the running totals when the stored date is no
// longer today. Day changes are detected lazily on read, never by a
// scheduled job.
func RolloverIfStale(stats model.DailyStats, today string) model.DailyStats {
	if stats.Date == today {
		return stats
	}
	return model.DailyStats{Date: today}
}

func RolloverMacrosIfStale(macros model.DailyMacros, today string) model.DailyMacros {
	if macros.Date == today {
		return macros
	}
	return model.DailyMacros{Date: today}
}

// RecomputeDaily derives today's totals from today's entries, so the
// stored counters always equal the sum of the underlying logs.
func RecomputeDaily(foods []model.FoodItem, workouts []model.WorkoutLog, today string) (model.DailyStats, model.DailyMacros) {
	stats := model.DailyStats{Date: today}
	macros := model.DailyMacros{Date: today}

	for _, food := range foods {
		if food.Date != today {
			continue
		}
		stats.CaloriesConsumed += food.Calories
		macros.Protein += food.Protein
		macros.Carbs += food.Carbs
		macros.Fat += food.Fat
	}
	for _, workout := range workouts {
		if workout.Date != today || !workout.Completed {
			continue
		}
		stats.CaloriesBurned += workout.CaloriesBurned
		stats.WorkoutsCompleted++
	}
	return stats, macros
}

// refreshDaily recomputes and persists today's stats and macros. The
// two keys are written independently; there is no cross-key atomicity.
func refreshDaily(store *KeyedStore, userID string, now time.Time) error {
	foods, err := FoodLogEntries(store, userID)
	if err != nil {
		return err
	}
	workouts, err := WorkoutHistory(store, userID)
	if err != nil {
		return err
	}

	today := dayString(now)
	stats, macros := RecomputeDaily(foods, workouts, today)
	if err := store.Set(userID, keyDailyStats, stats); err != nil {
		return err
	}
	return store.Set(userID, keyDailyMacros, macros)
}

type TodayStatus struct {
	Stats            model.DailyStats  `json:"stats"`
	Macros           model.DailyMacros `json:"macros"`
	Goals            model.MacroGoals  `json:"goals"`
	NetCalories      int               `json:"netCalories"`
	RemainingProtein float64           `json:"remainingProtein"`
	RemainingCarbs   float64           `json:"remainingCarbs"`
	RemainingFat     float64           `json:"remainingFat"`
}

// TodaySummary rolls the day over if needed, recomputes the totals
// from today's entries, persists them, and reports progress against
// the macro goals.
func TodaySummary(store *KeyedStore, userID string, now time.Time) (*TodayStatus, error) {
	if err := refreshDaily(store, userID, now); err != nil {
		return nil, err
	}

	today := dayString(now)
	var stats model.DailyStats
	if err := store.Get(userID, keyDailyStats, &stats); err != nil {
		return nil, err
	}
	var macros model.DailyMacros
	if err := store.Get(userID, keyDailyMacros, &macros); err != nil {
		return nil, err
	}
	stats = RolloverIfStale(stats, today)
	macros = RolloverMacrosIfStale(macros, today)

	goals, err := MacroGoalsFor(store, userID)
	if err != nil {
		return nil, err
	}

	return &TodayStatus{
		Stats:            stats,
		Macros:           macros,
		Goals:            goals,
		NetCalories:      stats.CaloriesConsumed - stats.CaloriesBurned,
		RemainingProtein: goals.Protein - macros.Protein,
		RemainingCarbs:   goals.Carbs - macros.Carbs,
		RemainingFat:     goals.Fat - macros.Fat,
	}, nil
}
