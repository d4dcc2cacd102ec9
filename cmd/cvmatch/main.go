// Package main provides the entry point for the cvmatch CLI.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cvmatch",
	Short: "Résumé/job-posting compatibility analyzer",
	Long:  "cvmatch analyzes a structured résumé against free-form job-posting text, scoring keyword compatibility and generating actionable suggestions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
