package cmd

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd is the base command all subcommands attach to.
var rootCmd = &cobra.Command{
	Use:   "gymtrack",
	Short: "Personal fitness tracker API server",
	Long: `gymtrack is the backend for the personal fitness tracker.

It serves the workout plan, workout session and exercise catalog API,
and ships the database migration and seed tooling.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
