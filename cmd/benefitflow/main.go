// Package main provides the benefitflow CLI entry point.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags
var Version = "dev"

func main() {
	// Missing .env is fine; environment variables win either way
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "benefitflow",
	Short: "Benefit-assessment flow diagrams with click-to-edit",
	Long: `benefitflow serves interactive benefit-assessment flow diagrams.

Clicking a node or link on the diagram opens a modal dialog whose content
is fetched from the server for in-place editing.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
}
