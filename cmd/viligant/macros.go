package viligant

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lukejerome/viligant-tracker-dk/internal/model"
	"github.com/lukejerome/viligant-tracker-dk/internal/service"
)

var macrosCmd = &cobra.Command{
	Use:   "macros",
	Short: "Manage daily macro goals",
}

var (
	macroProtein float64
	macroCarbs   float64
	macroFat     float64
)

var macrosSetCmd = &cobra.Command{
	Use:   "set",
	Short: "Set daily macro goals in grams",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			goals := model.MacroGoals{Protein: macroProtein, Carbs: macroCarbs, Fat: macroFat}
			if err := service.SetMacroGoals(store, user.ID, goals); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Macro goals saved")
			return nil
		})
	},
}

var macrosShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show daily macro goals",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			goals, err := service.MacroGoalsFor(store, user.ID)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Protein %.0fg | Carbs %.0fg | Fat %.0fg\n", goals.Protein, goals.Carbs, goals.Fat)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(macrosCmd)
	macrosCmd.AddCommand(macrosSetCmd, macrosShowCmd)

	macrosSetCmd.Flags().Float64Var(&macroProtein, "protein", 0, "Protein in grams")
	macrosSetCmd.Flags().Float64Var(&macroCarbs, "carbs", 0, "Carbs in grams")
	macrosSetCmd.Flags().Float64Var(&macroFat, "fat", 0, "Fat in grams")
	_ = macrosSetCmd.MarkFlagRequired("protein")
	_ = macrosSetCmd.MarkFlagRequired("carbs")
	_ = macrosSetCmd.MarkFlagRequired("fat")
}
