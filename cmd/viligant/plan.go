package viligant

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lukejerome/viligant-tracker-dk/internal/model"
	"github.com/lukejerome/viligant-tracker-dk/internal/service"
)

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Generate your personal training and nutrition plan",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			subscribed, err := service.IsSubscribed(store, user.ID)
			if err != nil {
				return err
			}
			if !subscribed {
				return fmt.Errorf("personal plans require an active subscription. Run: viligant subscribe start")
			}

			profile, err := service.ProfileFor(store, user.ID)
			if err != nil {
				return err
			}
			if profile == nil {
				return fmt.Errorf("no profile set. Run: viligant profile set")
			}

			plan, err := service.GeneratePersonalPlan(*profile, time.Now())
			if err != nil {
				return err
			}
			printPlan(cmd, plan)
			return nil
		})
	},
}

func printPlan(cmd *cobra.Command, plan *service.PersonalPlan) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Daily target: eat %d kcal, burn %d kcal through exercise\n", plan.DailyCalories, plan.DailyCaloriesToBurn)
	fmt.Fprintf(out, "Timeline: %d weeks (%.2f kg/week), done by %s\n\n",
		plan.Timeline.WeeksToGoal, plan.Timeline.WeeklyWeightChangeKg, plan.Timeline.EstimatedCompletion)

	fmt.Fprintf(out, "Workout schedule (%d days/week):\n", plan.WeeklyWorkouts)
	for _, day := range plan.WorkoutPlan {
		fmt.Fprintf(out, "  %-9s %-8s %3d min %4d kcal\n", day.Day, day.Type, day.TotalDuration, day.CaloriesBurned)
		for _, exercise := range day.Exercises {
			fmt.Fprintf(out, "    - %s", exercise.Name)
			if exercise.Sets > 0 {
				fmt.Fprintf(out, " (%d x %s)", exercise.Sets, exercise.Reps)
			} else if exercise.DurationMin > 0 {
				fmt.Fprintf(out, " (%d min)", exercise.DurationMin)
			}
			fmt.Fprintln(out)
		}
	}

	nutrition := plan.NutritionPlan
	fmt.Fprintf(out, "\nNutrition: %d kcal/day, P%.0fg C%.0fg F%.0fg, %.1fL water\n",
		nutrition.TotalCalories, nutrition.Macros.Protein, nutrition.Macros.Carbs, nutrition.Macros.Fat, nutrition.WaterLiters)
	for _, meal := range nutrition.Meals {
		fmt.Fprintf(out, "  %s (%s) ~%d kcal\n", meal.Name, meal.Time, meal.Calories)
		for _, food := range meal.Foods {
			fmt.Fprintf(out, "    - %s, %s\n", food.Item, food.Amount)
		}
	}

	fmt.Fprintln(out, "\nRecommendations:")
	for _, recommendation := range plan.Recommendations {
		fmt.Fprintf(out, "  - %s\n", recommendation)
	}
}

func init() {
	rootCmd.AddCommand(planCmd)
}
