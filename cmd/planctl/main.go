// Package main implements planctl, a small operator CLI for working with
// itinerary share tokens and travel estimates without a running server.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "planctl",
	Short:         "Inspect and produce itinerary share tokens",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrln("Error:", err)
		os.Exit(1)
	}
}
