// Command careerctl runs the resume matching engine from the terminal.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "careerctl",
	Short: "Resume analysis, ranking and mock interviews",
	Long: `careerctl scores resumes against job descriptions, ranks batches of
candidates, generates mock interview questions and serves the HTTP API.`,
}

func main() {
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
