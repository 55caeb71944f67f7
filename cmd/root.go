package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cvmatch/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "cvmatch",
	Short: "CV and job description matching CLI",
	Long: `cvmatch scores how well a CV matches a job description.
It submits text or document files to a remote scoring service and renders
the overall match with skill, experience, education and semantic sub-scores.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize app with all dependencies
		application, err := app.NewApp(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		// Store app in command context
		cmd.SetContext(app.SetAppInContext(cmd.Context(), application))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
