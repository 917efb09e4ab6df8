package cmd

import (
	"github.com/linskybing/projecthub-go/internal/config"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "projecthub",
	Short: "School project tracking API",
	Long: `projecthub serves the project, phase and review workflow API.

Configuration is read from the environment and an optional .env file.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.LoadConfig()
	},
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}
