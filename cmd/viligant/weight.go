package viligant

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lukejerome/viligant-tracker-dk/internal/model"
	"github.com/lukejerome/viligant-tracker-dk/internal/service"
)

var weightCmd = &cobra.Command{
	Use:   "weight",
	Short: "Track body weight",
}

var (
	weightValue      float64
	weightNotes      string
	weightGoalTarget float64
	weightGoalWeekly float64
	weightGoalDate   string
)

var weightLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Record a weigh-in",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			entry, err := service.AddWeightEntry(store, user.ID, weightValue, weightNotes, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Recorded %.1f kg on %s\n", entry.WeightKg, entry.Date)
			return nil
		})
	},
}

var weightListCmd = &cobra.Command{
	Use:   "list",
	Short: "Show weigh-ins, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			history, err := service.WeightHistory(store, user.ID)
			if err != nil {
				return err
			}
			if len(history) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No weigh-ins yet")
				return nil
			}
			out := cmd.OutOrStdout()
			for _, entry := range history {
				fmt.Fprintf(out, "%s  %6.1f kg", entry.Date, entry.WeightKg)
				if entry.Notes != "" {
					fmt.Fprintf(out, "  %s", entry.Notes)
				}
				fmt.Fprintln(out)
			}
			if trend := service.WeightTrend(history); trend != nil {
				fmt.Fprintf(out, "Change since previous weigh-in: %+.1f kg\n", -*trend)
			}
			return nil
		})
	},
}

var weightGoalCmd = &cobra.Command{
	Use:   "goal",
	Short: "Show or set the weight goal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			out := cmd.OutOrStdout()
			flags := cmd.Flags()
			if flags.Changed("target") || flags.Changed("weekly") || flags.Changed("by") {
				goal, err := service.WeightGoalFor(store, user.ID)
				if err != nil {
					return err
				}
				if flags.Changed("target") {
					goal.TargetWeightKg = weightGoalTarget
				}
				if flags.Changed("weekly") {
					goal.WeeklyGoalKg = weightGoalWeekly
				}
				if flags.Changed("by") {
					goal.TargetDate = weightGoalDate
				}
				if err := service.SetWeightGoal(store, user.ID, goal); err != nil {
					return err
				}
				fmt.Fprintln(out, "Goal updated")
			}

			goal, err := service.WeightGoalFor(store, user.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Current %.1f kg, target %.1f kg at %.1f kg/week\n",
				goal.CurrentWeightKg, goal.TargetWeightKg, goal.WeeklyGoalKg)
			if months, ok := service.TimeToGoalMonths(goal); ok {
				fmt.Fprintf(out, "Estimated %.1f months to goal\n", months)
			}
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(weightCmd)
	weightCmd.AddCommand(weightLogCmd, weightListCmd, weightGoalCmd)

	weightLogCmd.Flags().Float64Var(&weightValue, "kg", 0, "Weight in kg")
	weightLogCmd.Flags().StringVar(&weightNotes, "notes", "", "Optional note")
	_ = weightLogCmd.MarkFlagRequired("kg")

	weightGoalCmd.Flags().Float64Var(&weightGoalTarget, "target", 0, "Target weight in kg")
	weightGoalCmd.Flags().Float64Var(&weightGoalWeekly, "weekly", 0, "Planned change per week in kg")
	weightGoalCmd.Flags().StringVar(&weightGoalDate, "by", "", "Target date YYYY-MM-DD")
}
