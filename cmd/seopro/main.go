// Package main provides the entry point for the listing SEO content service.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "seopro",
	Short: "Bất Động Sản SEO Pro content service",
	Long:  "Generates SEO-optimized Vietnamese real-estate listing content with Gemini and scores it with Hugging Face inference models.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
