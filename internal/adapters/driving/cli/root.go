// Package cli implements the SwimForge command-line interface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/swimforge-labs/swimforge-cli/internal/logger"
)

var (
	version = "dev"
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "swimforge",
	Short: "Local swimming knowledge assistant",
	Long: `SwimForge answers swimming questions from your own notes.

It indexes a local document corpus, retrieves context with hybrid
keyword and semantic search, and routes structured requests (workouts,
pace analysis, race pacing, advice) to dedicated generators.`,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
}

// Execute runs the root command.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}
