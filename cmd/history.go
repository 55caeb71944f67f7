package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cvmatch/internal/app"
	"cvmatch/internal/render"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List past match results",
	Long:  "Fetch stored match results from the scoring service, newest first",
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())

		entries, err := application.API.History(cmd.Context())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load history: %v\n", err)
			os.Exit(1)
		}

		if len(entries) == 0 {
			fmt.Println("No match history yet. Start by analyzing your first CV-JD pair!")
			return
		}

		fmt.Println(titleStyle.Render("Match History"))
		for _, e := range entries {
			view := render.Build(e.MatchResult)
			fmt.Printf("%s  %s\n", view.Compact(), valueStyle.Render(e.CreatedAt.Local().Format("Jan 2, 2006 3:04 PM")))
			fmt.Printf("  %s %s\n", labelStyle.Render("CV:"), render.Preview(e.CVText, 150))
			fmt.Printf("  %s %s\n\n", labelStyle.Render("JD:"), render.Preview(e.JDText, 150))
		}
		fmt.Printf("%s %d\n", labelStyle.Render("Total Matches:"), len(entries))
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
