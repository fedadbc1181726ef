package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ft",
	Short: "Fieldtask to-do CLI",
	Long:  `A CLI for the Fieldtask to-do service.`,
}

// Global flags
var (
	jsonOutput bool
	serverURL  string
)

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")
	rootCmd.PersistentFlags().StringVar(&serverURL, "server", "", "Server base URL (overrides config and FIELDTASK_SERVER)")
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitGeneralError)
	}
}
