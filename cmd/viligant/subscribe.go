package viligant

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/lukejerome/viligant-tracker-dk/internal/model"
	"github.com/lukejerome/viligant-tracker-dk/internal/service"
)

var subscribeCmd = &cobra.Command{
	Use:   "subscribe",
	Short: "Manage the trainer subscription",
}

var subscribePlan string

var subscribeStartCmd = &cobra.Command{
	Use:   "start",
	Short: "Activate the trainer subscription",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			sub, err := service.Subscribe(store, user.ID, subscribePlan, time.Now())
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Subscribed (%s plan) since %s\n", sub.Plan, sub.StartedAt)
			return nil
		})
	},
}

var subscribeCancelCmd = &cobra.Command{
	Use:   "cancel",
	Short: "Cancel the trainer subscription",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			if err := service.CancelSubscription(store, user.ID); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Subscription cancelled")
			return nil
		})
	},
}

var subscribeStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show subscription state",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withUser(func(store *service.KeyedStore, user *model.UserAccount) error {
			sub, err := service.SubscriptionFor(store, user.ID)
			if err != nil {
				return err
			}
			if !sub.Active {
				fmt.Fprintln(cmd.OutOrStdout(), "Not subscribed")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Active (%s plan) since %s\n", sub.Plan, sub.StartedAt)
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(subscribeCmd)
	subscribeCmd.AddCommand(subscribeStartCmd, subscribeCancelCmd, subscribeStatusCmd)

	subscribeStartCmd.Flags().StringVar(&subscribePlan, "plan", "monthly", "Subscription plan name")
}
