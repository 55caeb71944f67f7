package cmd

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"cvmatch/internal/app"
)

var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "Show the upload formats the scoring service accepts",
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())

		info, err := application.API.SupportedFormats(cmd.Context())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to fetch supported formats: %v\n", err)
			os.Exit(1)
		}

		fmt.Println(titleStyle.Render("Supported Formats"))

		exts := make([]string, 0, len(info.FileFormats))
		for ext := range info.FileFormats {
			exts = append(exts, ext)
		}
		sort.Strings(exts)
		for _, ext := range exts {
			fmt.Printf("  %s %s\n", labelStyle.Render("."+ext), info.FileFormats[ext])
		}

		fmt.Printf("\n%s %dMB per file\n", labelStyle.Render("Max Size:"), info.MaxFileSizeMB)
	},
}

func init() {
	rootCmd.AddCommand(formatsCmd)
}
