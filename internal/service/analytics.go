package service

import (
	"fmt"
	"time"

	"github.com/lukejerome/viligant-tracker-dk/internal/model"
)

// Window is an inclusive day-granularity date range.
type Window struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

func NewWindow(from, to time.Time) (Window, error) {
	from = beginningOfDay(from)
	to = beginningOfDay(to)
	if from.After(to) {
		return Window{}, validationErr("window", "from date must be <= to date")
	}
	return Window{From: from, To: to}, nil
}

// WeekWindow covers the last 7 days ending today.
func WeekWindow(now time.Time) Window {
	to := beginningOfDay(now)
	return Window{From: to.AddDate(0, 0, -6), To: to}
}

// MonthWindow covers the last 30 days ending today.
func MonthWindow(now time.Time) Window {
	to := beginningOfDay(now)
	return Window{From: to.AddDate(0, 0, -29), To: to}
}

func (w Window) contains(day time.Time) bool {
	return !day.Before(w.From) && !day.After(w.To)
}

func (w Window) String() string {
	return fmt.Sprintf("%s..%s", w.From.Format(dayFormat), w.To.Format(dayFormat))
}

type WorkoutSummary struct {
	Window                  Window  `json:"window"`
	TotalWorkouts           int     `json:"totalWorkouts"`
	TotalDurationMin        int     `json:"totalDuration"`
	TotalCaloriesBurned     int     `json:"totalCaloriesBurned"`
	ActiveDays              int     `json:"activeDays"`
	AvgDurationPerActiveDay float64 `json:"avgDurationPerActiveDay"`
	AvgCaloriesPerActiveDay float64 `json:"avgCaloriesPerActiveDay"`
	StrengthWorkouts        int     `json:"strengthWorkouts"`
	CardioWorkouts          int     `json:"cardioWorkouts"`
}

// SummarizeWorkouts reduces completed logs inside the window. Averages
// are per active day: days with no workouts do not depress them.
func SummarizeWorkouts(logs []model.WorkoutLog, w Window) WorkoutSummary {
	summary := WorkoutSummary{Window: w}
	days := map[string]struct{}{}

	for _, log := range logs {
		if !log.Completed {
			continue
		}
		day, err := parseDay(log.Date)
		if err != nil || !w.contains(day) {
			continue
		}
		summary.TotalWorkouts++
		summary.TotalDurationMin += log.TotalDuration
		summary.TotalCaloriesBurned += log.CaloriesBurned
		days[log.Date] = struct{}{}
		switch log.WorkoutType {
		case model.WorkoutStrength:
			summary.StrengthWorkouts++
		case model.WorkoutCardio:
			summary.CardioWorkouts++
		}
	}

	summary.ActiveDays = len(days)
	if summary.ActiveDays > 0 {
		div := float64(summary.ActiveDays)
		summary.AvgDurationPerActiveDay = float64(summary.TotalDurationMin) / div
		summary.AvgCaloriesPerActiveDay = float64(summary.TotalCaloriesBurned) / div
	}
	return summary
}

type FoodSummary struct {
	Window                  Window  `json:"window"`
	Entries                 int     `json:"entries"`
	TotalCalories           int     `json:"totalCalories"`
	TotalProtein            float64 `json:"totalProtein"`
	TotalCarbs              float64 `json:"totalCarbs"`
	TotalFat                float64 `json:"totalFat"`
	ActiveDays              int     `json:"activeDays"`
	AvgCaloriesPerActiveDay float64 `json:"avgCaloriesPerActiveDay"`
}

func SummarizeFood(items []model.FoodItem, w Window) FoodSummary {
	summary := FoodSummary{Window: w}
	days := map[string]struct{}{}

	for _, item := range items {
		day, err := parseDay(item.Date)
		if err != nil || !w.contains(day) {
			continue
		}
		summary.Entries++
		summary.TotalCalories += item.Calories
		summary.TotalProtein += item.Protein
		summary.TotalCarbs += item.Carbs
		summary.TotalFat += item.Fat
		days[item.Date] = struct{}{}
	}

	summary.ActiveDays = len(days)
	if summary.ActiveDays > 0 {
		summary.AvgCaloriesPerActiveDay = float64(summary.TotalCalories) / float64(summary.ActiveDays)
	}
	return summary
}

type WeekBucket struct {
	Label               string `json:"label"`
	Window              Window `json:"window"`
	Workouts            int    `json:"workouts"`
	TotalDurationMin    int    `json:"duration"`
	TotalCaloriesBurned int    `json:"calories"`
	StrengthWorkouts    int    `json:"strength"`
	CardioWorkouts      int    `json:"cardio"`
}

// WeeklyProgression partitions the last 28 days into four contiguous
// 7-day buckets, returned oldest to newest. Every completed workout in
// the 28-day window lands in exactly one bucket.
func WeeklyProgression(logs []model.WorkoutLog, now time.Time) []WeekBucket {
	to := beginningOfDay(now)
	from := to.AddDate(0, 0, -27)

	buckets := make([]WeekBucket, 4)
	for i := range buckets {
		start := from.AddDate(0, 0, 7*i)
		buckets[i] = WeekBucket{
			Label:  fmt.Sprintf("Week %d", i+1),
			Window: Window{From: start, To: start.AddDate(0, 0, 6)},
		}
	}

	for _, log := range logs {
		if !log.Completed {
			continue
		}
		day, err := parseDay(log.Date)
		if err != nil {
			continue
		}
		index := int(day.Sub(from).Hours() / 24 / 7)
		if day.Before(from) || day.After(to) || index < 0 || index > 3 {
			continue
		}
		b := &buckets[index]
		b.Workouts++
		b.TotalDurationMin += log.TotalDuration
		b.TotalCaloriesBurned += log.CaloriesBurned
		switch log.WorkoutType {
		case model.WorkoutStrength:
			b.StrengthWorkouts++
		case model.WorkoutCardio:
			b.CardioWorkouts++
		}
	}
	return buckets
}
