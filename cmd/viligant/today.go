package viligant

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lukejerome/viligant-tracker-dk/internal/model"
	"github.com/lukejerome/viligant-tracker-dk/internal/service"
)

var todayCmd = &cobra.Command{
	Use:   "today",
	Short: "Show today's totals against your macro goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			status, err := service.TodaySummary(store, user.ID, time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Today (%s)\n", status.Stats.Date)
			fmt.Fprintf(out, "  Consumed: %d kcal | Burned: %d kcal | Net: %d kcal\n",
				status.Stats.CaloriesConsumed, status.Stats.CaloriesBurned, status.NetCalories)
			fmt.Fprintf(out, "  Workouts completed: %d\n", status.Stats.WorkoutsCompleted)
			fmt.Fprintf(out, "  Protein: %.0f/%.0fg (%.0fg left)\n", status.Macros.Protein, status.Goals.Protein, status.RemainingProtein)
			fmt.Fprintf(out, "  Carbs:   %.0f/%.0fg (%.0fg left)\n", status.Macros.Carbs, status.Goals.Carbs, status.RemainingCarbs)
			fmt.Fprintf(out, "  Fat:     %.0f/%.0fg (%.0fg left)\n", status.Macros.Fat, status.Goals.Fat, status.RemainingFat)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(todayCmd)
}
