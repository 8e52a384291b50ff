package viligant

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/lukejerome/viligant-tracker-dk/internal/model"
	"github.com/lukejerome/viligant-tracker-dk/internal/service"
)

var workoutCmd = &cobra.Command{
	Use:   "workout",
	Short: "Track workout sessions",
}

var (
	workoutType      string
	workoutFromPlan  string
	exerciseName     string
	exerciseSets     int
	exerciseReps     int
	exerciseMin      int
	exerciseWeight   float64
	exerciseDist     float64
	exerciseKcal     int
	workoutNotes     string
	workoutListLimit int
)

var workoutStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Start a workout session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			var log *model.WorkoutLog
			var err error
			if workoutFromPlan != "" {
				log, err = startFromPlan(store, user.ID, workoutFromPlan)
			} else {
				log, err = service.StartWorkout(store, user.ID, model.WorkoutType(workoutType), time.Now())
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Started %s workout [%s]\n", log.WorkoutType, log.ID)
			return nil
		})
	},
}

// startFromPlan materializes the named day of the generated weekly
// schedule into an active workout.
func startFromPlan(store *service.KeyedStore, userID, dayName string) (*model.WorkoutLog, error) {
	profile, err := service.ProfileFor(store, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, fmt.Errorf("no profile set. Run: viligant profile set")
	}

	now := time.Now()
	targets, err := service.ComputeEnergyTargets(*profile, now)
	if err != nil {
		return nil, err
	}
	plan, err := service.GenerateWorkoutPlan(*profile, float64(targets.DailyCaloriesToBurn))
	if err != nil {
		return nil, err
	}
	for _, day := range plan {
		if strings.EqualFold(day.Day, dayName) {
			return service.StartWorkoutFromPlan(store, userID, day, now)
		}
	}
	return nil, fmt.Errorf("no planned day named %q", dayName)
}

var workoutAddCmd = &cobra.Command{
	Use:   "add",
	Short: "Add a finished exercise to the active workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			flags := cmd.Flags()
			active, err := service.AddExercise(store, user.ID, service.ExerciseInput{
				Name:           exerciseName,
				Sets:           exerciseSets,
				Reps:           optionalInt(flags.Changed("reps"), exerciseReps),
				DurationMin:    optionalInt(flags.Changed("duration"), exerciseMin),
				WeightKg:       optionalFloat(flags.Changed("weight"), exerciseWeight),
				DistanceKm:     optionalFloat(flags.Changed("distance"), exerciseDist),
				CaloriesBurned: exerciseKcal,
			})
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added %s (%d exercises, %d kcal so far)\n",
				exerciseName, len(active.Exercises), active.CaloriesBurned)
			return nil
		})
	},
}

var workoutRemoveCmd = &cobra.Command{
	Use:   "remove <index>",
	Short: "Remove an exercise from the active workout by position",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			var index int
			if _, err := fmt.Sscanf(args[0], "%d", &index); err != nil {
				return fmt.Errorf("invalid index %q", args[0])
			}
			active, err := service.RemoveExercise(store, user.ID, index)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Removed. %d exercises remain\n", len(active.Exercises))
			return nil
		})
	},
}

var workoutActiveCmd = &cobra.Command{
	Use:   "active",
	Short: "Show the in-progress workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			active, err := service.ActiveWorkout(store, user.ID)
			if err != nil {
				return err
			}
			if active == nil {
				fmt.Fprintln(cmd.OutOrStdout(), "No active workout")
				return nil
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s workout started %s, %d kcal\n", active.WorkoutType, active.Date, active.CaloriesBurned)
			for i, exercise := range active.Exercises {
				fmt.Fprintf(out, "  %d. %s%s\n", i, exercise.Name, exerciseDetail(exercise))
			}
			return nil
		})
	},
}

var workoutDoneCmd = &cobra.Command{
	Use:   "done",
	Short: "Complete the active workout",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			finished, newRecords, err := service.CompleteWorkout(store, user.ID, workoutNotes, time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Completed %s workout: %d exercises, %d min, %d kcal\n",
				finished.WorkoutType, len(finished.Exercises), finished.TotalDuration, finished.CaloriesBurned)
			for _, record := range newRecords {
				fmt.Fprintf(out, "New personal record: %s\n", record.ExerciseName)
			}
			return nil
		})
	},
}

var workoutListCmd = &cobra.Command{
	Use:   "list",
	Short: "List completed workouts, newest first",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			history, err := service.WorkoutHistory(store, user.ID)
			if err != nil {
				return err
			}
			if len(history) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No workouts yet")
				return nil
			}
			if workoutListLimit > 0 && len(history) > workoutListLimit {
				history = history[:workoutListLimit]
			}
			out := cmd.OutOrStdout()
			for _, log := range history {
				fmt.Fprintf(out, "%s  %-8s %2d exercises %3d min %4d kcal  [%s]\n",
					log.Date, log.WorkoutType, len(log.Exercises), log.TotalDuration, log.CaloriesBurned, log.ID)
			}
			return nil
		})
	},
}

var workoutDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a completed workout by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			if err := service.DeleteWorkout(store, user.ID, args[0], time.Now()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			return nil
		})
	},
}

func exerciseDetail(e model.LoggedExercise) string {
	detail := ""
	if e.Sets > 0 {
		detail += fmt.Sprintf(" %d sets", e.Sets)
	}
	if e.Reps != nil {
		detail += fmt.Sprintf(" x%d reps", *e.Reps)
	}
	if e.WeightKg != nil {
		detail += fmt.Sprintf(" @%.1fkg", *e.WeightKg)
	}
	if e.DurationMin != nil {
		detail += fmt.Sprintf(" %dmin", *e.DurationMin)
	}
	if e.DistanceKm != nil {
		detail += fmt.Sprintf(" %.2fkm", *e.DistanceKm)
	}
	return detail
}

func init() {
	rootCmd.AddCommand(workoutCmd)
	workoutCmd.AddCommand(workoutStartCmd, workoutAddCmd, workoutRemoveCmd, workoutActiveCmd, workoutDoneCmd, workoutListCmd, workoutDeleteCmd)

	workoutStartCmd.Flags().StringVar(&workoutType, "type", "strength", "strength or cardio")
	workoutStartCmd.Flags().StringVar(&workoutFromPlan, "from-plan", "", "Start from the named day of the weekly schedule")

	workoutAddCmd.Flags().StringVar(&exerciseName, "name", "", "Exercise name")
	workoutAddCmd.Flags().IntVar(&exerciseSets, "sets", 0, "Sets performed")
	workoutAddCmd.Flags().IntVar(&exerciseReps, "reps", 0, "Reps per set")
	workoutAddCmd.Flags().IntVar(&exerciseMin, "duration", 0, "Duration in minutes")
	workoutAddCmd.Flags().Float64Var(&exerciseWeight, "weight", 0, "Weight in kg")
	workoutAddCmd.Flags().Float64Var(&exerciseDist, "distance", 0, "Distance in km")
	workoutAddCmd.Flags().IntVar(&exerciseKcal, "calories", 0, "Calories burned (estimated when omitted)")
	_ = workoutAddCmd.MarkFlagRequired("name")

	workoutDoneCmd.Flags().StringVar(&workoutNotes, "notes", "", "Session notes")

	workoutListCmd.Flags().IntVar(&workoutListLimit, "limit", 0, "Show at most N workouts")
}
