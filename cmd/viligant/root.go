package viligant

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lukejerome/viligant-tracker-dk/internal/config"
	"github.com/lukejerome/viligant-tracker-dk/pkg/logger"
)

var (
	dbPath  string
	verbose bool

	cfg *config.Config
	log *logger.Logger
)

var rootCmd = &cobra.Command{
	Use:   "viligant",
	Short: "viligant tracks workouts, food, weight, and personal plans from your terminal",
	Long:  "viligant is a local-first fitness tracker with multi-user accounts, workout and food logging, weight goals, personal records, and a premium personal-trainer plan generator.",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		loaded, err := config.Load()
		if err != nil {
			return err
		}
		cfg = loaded
		if verbose || cfg.Verbose {
			log = logger.NewDevelopment()
		} else {
			log = logger.New()
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if log != nil {
			_ = log.Sync()
		}
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "Path to SQLite database")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
}
