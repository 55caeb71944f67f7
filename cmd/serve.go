package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cvmatch/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local stub scoring service",
	Long: `Run a development stand-in for the remote scoring service.
It answers the predict, history and supported-formats endpoints with a
simple lexical scorer and keeps history in memory only.`,
	Run: func(cmd *cobra.Command, args []string) {
		addr, _ := cmd.Flags().GetString("addr")

		fmt.Printf("Stub scoring service listening on %s\n", addr)
		if err := server.New().Router().Run(addr); err != nil {
			fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", ":8000", "Listen address")
}
