package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"cvmatch/internal/app"
	"cvmatch/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive analyzer",
	Long:  "Launch the terminal analyzer for entering a CV and job description and viewing the match result",
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())

		p := tea.NewProgram(tui.NewModel(application.API))
		if _, err := p.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "Error running analyzer: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}
