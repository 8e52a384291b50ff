package viligant

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lukejerome/viligant-tracker-dk/internal/model"
	"github.com/lukejerome/viligant-tracker-dk/internal/service"
)

var recordsExercise string

var recordsCmd = &cobra.Command{
	Use:   "records",
	Short: "Show personal records",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			records, err := service.PersonalRecords(store, user.ID)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if recordsExercise != "" {
				best := service.BestRecord(recordsExercise, model.WorkoutStrength, records)
				if best == nil {
					best = service.BestRecord(recordsExercise, model.WorkoutCardio, records)
				}
				if best == nil {
					fmt.Fprintf(out, "No records for %s\n", recordsExercise)
					return nil
				}
				fmt.Fprintf(out, "%s best: %s\n", best.ExerciseName, recordDetail(*best))
				return nil
			}

			if len(records) == 0 {
				fmt.Fprintln(out, "No personal records yet")
				return nil
			}
			for _, record := range records {
				fmt.Fprintf(out, "%s  %-8s %-20s %s\n", record.Date, record.Type, record.ExerciseName, recordDetail(record))
			}
			return nil
		})
	},
}

func recordDetail(r model.PersonalRecord) string {
	detail := ""
	if r.WeightKg != nil {
		detail += fmt.Sprintf("%.1fkg", *r.WeightKg)
	}
	if r.Reps != nil {
		if detail != "" {
			detail += " x "
		}
		detail += fmt.Sprintf("%d reps", *r.Reps)
	}
	if r.DistanceKm != nil {
		if detail != "" {
			detail += ", "
		}
		detail += fmt.Sprintf("%.2fkm", *r.DistanceKm)
	}
	if r.DurationMin != nil {
		if detail != "" {
			detail += ", "
		}
		detail += fmt.Sprintf("%dmin", *r.DurationMin)
	}
	if detail == "" {
		detail = "(no metrics)"
	}
	return detail
}

func init() {
	rootCmd.AddCommand(recordsCmd)
	recordsCmd.Flags().StringVar(&recordsExercise, "exercise", "", "Show only the best record for this exercise")
}
