package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "astrologerd",
	Short: "Astrology reading service backed by web search and an LLM",
	// Running without a subcommand starts the server.
	RunE:         runServe,
	SilenceUsage: true,
}

func main() {
	rootCmd.AddCommand(serveCmd, signCmd)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
