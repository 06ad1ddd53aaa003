// Package main provides the entry point for the Campus Connect recommendation API server.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "campus_api",
	Short: "Campus Connect Recommendation API Server",
	Long:  "Campus Connect serves hybrid job recommendations for students in Senegal, blending TF-IDF content matching with collaborative filtering over recorded interactions.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
