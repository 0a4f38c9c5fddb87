// Package main is the dogbreeds command: the HTTP server and one-shot CLI queries against the
// breed catalog.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:           "dogbreeds",
	Short:         "Dog breed search, recommendation and comparison",
	Long:          "Looks up dog breeds by name or nickname, recommends breeds for a living environment and compares two breeds. Run `serve` for the HTTP API.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

var jsonOutput bool

func init() {
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "print JSON instead of markdown")
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
