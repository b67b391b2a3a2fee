// Package main is the entry point for the codex API server
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "codex-api",
	Short: "Arclight codex API server",
	Long:  `codex-api serves character sheets, the content builder, and check rolls for the Arclight ruleset over a JSON HTTP API.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(seedCmd)
}
