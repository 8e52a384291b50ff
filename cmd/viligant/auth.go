package viligant

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lukejerome/viligant-tracker-dk/internal/service"
)

var authCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage accounts and the active session",
}

var (
	authEmail    string
	authPassword string
	authName     string
)

var signupCmd = &cobra.Command{
	Use:   "signup",
	Short: "Create an account and log in",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Creating account...")
			account, err := sessions(sqldb).Signup(cmd.Context(), authEmail, authPassword, authName)
			if err != nil {
				return err
			}
			log.Infow("account created", "id", account.ID, "email", account.Email)
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome, %s! You are now logged in.\n", account.Name)
			return nil
		})
	},
}

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in to an existing account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			fmt.Fprintln(cmd.OutOrStdout(), "Logging in...")
			account, err := sessions(sqldb).Login(cmd.Context(), authEmail, authPassword)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s <%s>\n", account.Name, account.Email)
			return nil
		})
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the active session",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			if err := sessions(sqldb).Logout(cmd.Context()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		})
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in account",
	RunE: func(cmd *cobra.Command, args []string) error {
		return withDB(func(sqldb *sql.DB) error {
			account, err := sessions(sqldb).Current()
			if err != nil {
				return err
			}
			if account == nil {
				return service.ErrNotLoggedIn
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s <%s> (since %s)\n", account.Name, account.Email, account.CreatedAt.Format("2006-01-02"))
			return nil
		})
	},
}

func init() {
	rootCmd.AddCommand(authCmd)
	authCmd.AddCommand(signupCmd, loginCmd, logoutCmd, whoamiCmd)

	for _, c := range []*cobra.Command{signupCmd, loginCmd} {
		c.Flags().StringVar(&authEmail, "email", "", "Account email")
		c.Flags().StringVar(&authPassword, "password", "", "Account password")
		_ = c.MarkFlagRequired("email")
		_ = c.MarkFlagRequired("password")
	}
	signupCmd.Flags().StringVar(&authName, "name", "", "Display name")
	_ = signupCmd.MarkFlagRequired("name")
}
