package viligant

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lukejerome/viligant-tracker-dk/internal/model"
	"github.com/lukejerome/viligant-tracker-dk/internal/service"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarize workouts and nutrition over a date range",
}

var (
	statsRange string
	statsFrom  string
	statsTo    string
)

func statsWindow(now time.Time) (service.Window, error) {
	if statsFrom != "" || statsTo != "" {
		if statsFrom == "" || statsTo == "" {
			return service.Window{}, fmt.Errorf("--from and --to must be used together")
		}
		from, err := parseDayFlag(statsFrom)
		if err != nil {
			return service.Window{}, err
		}
		to, err := parseDayFlag(statsTo)
		if err != nil {
			return service.Window{}, err
		}
		return service.NewWindow(from, to)
	}
	switch statsRange {
	case "week":
		return service.WeekWindow(now), nil
	case "month":
		return service.MonthWindow(now), nil
	default:
		return service.Window{}, fmt.Errorf("unknown range %q (want week or month)", statsRange)
	}
}

var statsWorkoutsCmd = &cobra.Command{
	Use:   "workouts",
	Short: "Workout totals and per-day averages",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			window, err := statsWindow(time.Now())
			if err != nil {
				return err
			}
			history, err := service.WorkoutHistory(store, user.ID)
			if err != nil {
				return err
			}
			summary := service.SummarizeWorkouts(history, window)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Workouts %s\n", summary.Window)
			fmt.Fprintf(out, "  Total: %d (%d strength, %d cardio) across %d active days\n",
				summary.TotalWorkouts, summary.StrengthWorkouts, summary.CardioWorkouts, summary.ActiveDays)
			fmt.Fprintf(out, "  Duration: %d min total, %.1f min/active day\n",
				summary.TotalDurationMin, summary.AvgDurationPerActiveDay)
			fmt.Fprintf(out, "  Calories: %d kcal total, %.1f kcal/active day\n",
				summary.TotalCaloriesBurned, summary.AvgCaloriesPerActiveDay)
			return nil
		})
	},
}

var statsFoodCmd = &cobra.Command{
	Use:   "food",
	Short: "Nutrition totals and per-day averages",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			window, err := statsWindow(time.Now())
			if err != nil {
				return err
			}
			entries, err := service.FoodLogEntries(store, user.ID)
			if err != nil {
				return err
			}
			summary := service.SummarizeFood(entries, window)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Food %s\n", summary.Window)
			fmt.Fprintf(out, "  Entries: %d across %d active days\n", summary.Entries, summary.ActiveDays)
			fmt.Fprintf(out, "  Calories: %d kcal total, %.1f kcal/active day\n",
				summary.TotalCalories, summary.AvgCaloriesPerActiveDay)
			fmt.Fprintf(out, "  Macros: P%.0fg C%.0fg F%.0fg\n",
				summary.TotalProtein, summary.TotalCarbs, summary.TotalFat)
			return nil
		})
	},
}

var statsProgressionCmd = &cobra.Command{
	Use:   "progression",
	Short: "Four-week workout progression, oldest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			history, err := service.WorkoutHistory(store, user.ID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, bucket := range service.WeeklyProgression(history, time.Now()) {
				fmt.Fprintf(out, "%s (%s): %d workouts, %d min, %d kcal\n",
					bucket.Label, bucket.Window, bucket.Workouts, bucket.TotalDurationMin, bucket.TotalCaloriesBurned)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
	statsCmd.AddCommand(statsWorkoutsCmd, statsFoodCmd, statsProgressionCmd)

	for _, c := range []*cobra.Command{statsWorkoutsCmd, statsFoodCmd} {
		c.Flags().StringVar(&statsRange, "range", "week", "week or month")
		c.Flags().StringVar(&statsFrom, "from", "", "Range start YYYY-MM-DD")
		c.Flags().StringVar(&statsTo, "to", "", "Range end YYYY-MM-DD")
	}
}
