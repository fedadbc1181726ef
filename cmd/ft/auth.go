package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fieldtask/fieldtask/internal/session"
	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register <email> <password>",
	Short: "Create an account",
	Long:  `Create a new account on the server and log in.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		email, password := args[0], args[1]

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		user, err := c.Register(context.Background(), email, password)
		if err != nil {
			handleError(err)
		}

		token, err := c.Login(context.Background(), email, password)
		if err != nil {
			handleError(err)
		}

		if err := saveSession(user.Email, token); err != nil {
			handleError(err)
		}

		printSuccess(os.Stdout, fmt.Sprintf("Registered and logged in as %s", user.Email), jsonOutput)
	},
}

var loginCmd = &cobra.Command{
	Use:   "login <email> <password>",
	Short: "Log in to the server",
	Long:  `Log in with an existing account and store the session token.`,
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		email, password := args[0], args[1]

		c, err := getClient()
		if err != nil {
			handleError(err)
		}

		token, err := c.Login(context.Background(), email, password)
		if err != nil {
			handleError(err)
		}

		if err := saveSession(email, token); err != nil {
			handleError(err)
		}

		printSuccess(os.Stdout, fmt.Sprintf("Logged in as %s", email), jsonOutput)
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out",
	Long:  `Remove the stored session token. Safe to run when not logged in.`,
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			handleError(fmt.Errorf("failed to get home directory: %w", err))
		}

		if err := session.Clear(homeDir); err != nil {
			handleError(err)
		}

		printSuccess(os.Stdout, "Logged out", jsonOutput)
	},
}

func saveSession(email, token string) error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}
	return session.Save(homeDir, &session.Session{Email: email, Token: token})
}

func init() {
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
}
