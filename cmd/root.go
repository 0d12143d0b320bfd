package cmd

import (
	"context"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "lingua-service",
	Short: "Language learning API: courses, writing checks and vocabulary quizzes",
	// Runtime failures print the error without the usage text.
	SilenceUsage: true,
}

// Execute runs the root command. It exits the process on failure.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		os.Exit(1)
	}
}
