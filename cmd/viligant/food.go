package viligant

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lukejerome/viligant-tracker-dk/internal/model"
	"github.com/lukejerome/viligant-tracker-dk/internal/service"
)

var foodCmd = &cobra.Command{
	Use:   "food",
	Short: "Log and review food entries",
}

var (
	foodName     string
	foodCalories int
	foodQuantity float64
	foodUnit     string
	foodProtein  float64
	foodCarbs    float64
	foodFat      float64
	foodDate     string
	foodListAll  bool
)

var foodLogCmd = &cobra.Command{
	Use:   "log",
	Short: "Log a food entry",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			item, err := service.LogFood(store, user.ID, service.FoodLogInput{
				Name:     foodName,
				Calories: foodCalories,
				Quantity: foodQuantity,
				Unit:     foodUnit,
				Protein:  foodProtein,
				Carbs:    foodCarbs,
				Fat:      foodFat,
				Date:     foodDate,
			}, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged %s (%d kcal) on %s [%s]\n", item.Name, item.Calories, item.Date, item.ID)
			return nil
		})
	},
}

var foodListCmd = &cobra.Command{
	Use:   "list",
	Short: "List food entries (today by default)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			var entries []model.FoodItem
			var err error
			if foodListAll {
				entries, err = service.FoodLogEntries(store, user.ID)
			} else {
				entries, err = service.TodayFoods(store, user.ID, time.Now())
			}
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No food entries")
				return nil
			}
			out := cmd.OutOrStdout()
			for _, entry := range entries {
				fmt.Fprintf(out, "%s  %-24s %4d kcal  P%.0f C%.0f F%.0f  %.0f%s  [%s]\n",
					entry.Date, entry.Name, entry.Calories, entry.Protein, entry.Carbs, entry.Fat, entry.Quantity, entry.Unit, entry.ID)
			}
			return nil
		})
	},
}

var foodDeleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a food entry by id",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			if err := service.DeleteFood(store, user.ID, args[0], time.Now()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(foodCmd)
	foodCmd.AddCommand(foodLogCmd, foodListCmd, foodDeleteCmd)

	foodLogCmd.Flags().StringVar(&foodName, "name", "", "Food name")
	foodLogCmd.Flags().IntVar(&foodCalories, "calories", 0, "Calories")
	foodLogCmd.Flags().Float64Var(&foodQuantity, "quantity", 0, "Quantity (default 100)")
	foodLogCmd.Flags().StringVar(&foodUnit, "unit", "", "Unit (default g)")
	foodLogCmd.Flags().Float64Var(&foodProtein, "protein", 0, "Protein in grams")
	foodLogCmd.Flags().Float64Var(&foodCarbs, "carbs", 0, "Carbs in grams")
	foodLogCmd.Flags().Float64Var(&foodFat, "fat", 0, "Fat in grams")
	foodLogCmd.Flags().StringVar(&foodDate, "date", "", "Entry date YYYY-MM-DD (default today)")
	_ = foodLogCmd.MarkFlagRequired("name")
	_ = foodLogCmd.MarkFlagRequired("calories")

	foodListCmd.Flags().BoolVar(&foodListAll, "all", false, "Show the full log, not just today")
}
