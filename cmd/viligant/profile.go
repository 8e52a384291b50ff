package viligant

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lukejerome/viligant-tracker-dk/internal/model"
	"github.com/lukejerome/viligant-tracker-dk/internal/service"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage your training profile",
}

var (
	profileHeight     float64
	profileWeight     float64
	profileGoalWeight float64
	profileAge        int
	profileSex        string
	profileDays       int
	profileActivity   string
	profileGoal       string
	profileTargetDate string
)

var profileSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Replace the stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			profile := model.UserProfile{
				HeightCm:           profileHeight,
				CurrentWeightKg:    profileWeight,
				GoalWeightKg:       profileGoalWeight,
				Age:                profileAge,
				Sex:                model.Sex(profileSex),
				WorkoutDaysPerWeek: profileDays,
				ActivityLevel:      model.ActivityLevel(profileActivity),
				Goal:               model.Goal(profileGoal),
				TargetDate:         profileTargetDate,
			}
			if err := service.SaveProfile(store, user.ID, profile); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Profile saved")
			return nil
		})
	},
}

var profileShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the stored profile",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			profile, err := service.ProfileFor(store, user.ID)
			if err != nil {
				return err
			}
			if profile == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No profile set. Run: viligant profile set")
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Height: %.0f cm | Weight: %.1f kg -> %.1f kg\n", profile.HeightCm, profile.CurrentWeightKg, profile.GoalWeightKg)
			fmt.Fprintf(out, "Age: %d | Sex: %s | Activity: %s\n", profile.Age, profile.Sex, profile.ActivityLevel)
			fmt.Fprintf(out, "Goal: %s by %s | Workout days/week: %d\n", profile.Goal, profile.TargetDate, profile.WorkoutDaysPerWeek)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(profileCmd)
	profileCmd.AddCommand(profileSetCmd, profileShowCmd)

	profileSetCmd.Flags().Float64Var(&profileHeight, "height", 0, "Height in cm")
	profileSetCmd.Flags().Float64Var(&profileWeight, "weight", 0, "Current weight in kg")
	profileSetCmd.Flags().Float64Var(&profileGoalWeight, "goal-weight", 0, "Goal weight in kg")
	profileSetCmd.Flags().IntVar(&profileAge, "age", 0, "Age in years")
	profileSetCmd.Flags().StringVar(&profileSex, "sex", "", "male or female")
	profileSetCmd.Flags().IntVar(&profileDays, "days", 0, "Workout days per week (3-7)")
	profileSetCmd.Flags().StringVar(&profileActivity, "activity", "", "sedentary|light|moderate|active|very_active")
	profileSetCmd.Flags().StringVar(&profileGoal, "goal", "", "lose|maintain|gain")
	profileSetCmd.Flags().StringVar(&profileTargetDate, "target-date", "", "Target date YYYY-MM-DD")
	for _, flag := range []string{"height", "weight", "goal-weight", "age", "sex", "days", "activity", "goal", "target-date"} {
		_ = profileSetCmd.MarkFlagRequired(flag)
	}
}
