package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"career-backend/internal/analyses"
	"career-backend/internal/extract"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Compare one resume with one job description",
	Long: `Extracts text from the resume (PDF, DOCX, HTML or plain text) and the job
description, then prints the match report.`,
	RunE: runAnalyze,
}

var (
	analyzeResume string
	analyzeJob    string
	analyzeJSON   bool
)

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeResume, "resume", "r", "", "Path to the resume file (required)")
	analyzeCmd.Flags().StringVarP(&analyzeJob, "job", "j", "", "Path to the job description file (required)")
	analyzeCmd.Flags().BoolVar(&analyzeJSON, "json", false, "Print the full report as JSON")

	_ = analyzeCmd.MarkFlagRequired("resume")
	_ = analyzeCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(_ *cobra.Command, _ []string) error {
	ctx := context.Background()
	ext := extract.New(nil)

	resume, err := readText(ctx, ext, analyzeResume)
	if err != nil {
		return err
	}
	job, err := readText(ctx, ext, analyzeJob)
	if err != nil {
		return err
	}
	if strings.TrimSpace(resume) == "" {
		return fmt.Errorf("resume %s has no text", analyzeResume)
	}
	if strings.TrimSpace(job) == "" {
		return fmt.Errorf("job description %s has no text", analyzeJob)
	}

	report := analyses.BuildReport(resume, job)
	if analyzeJSON {
		return writeJSON(os.Stdout, report)
	}
	printReport(report)
	return nil
}

func printReport(r analyses.AnalysisReport) {
	fmt.Printf("Match:      %d%%\n", r.MatchPercentage)
	fmt.Printf("ATS score:  %d\n", r.ATSScore)
	fmt.Printf("Matched:    %s\n", joinOrDash(r.MatchedKeywords))
	fmt.Printf("Missing:    %s\n", joinOrDash(r.MissingKeywords))
	if len(r.Strengths) > 0 {
		fmt.Println("\nStrengths:")
		for _, s := range r.Strengths {
			fmt.Printf("  - %s\n", s)
		}
	}
	if len(r.ImprovementAreas) > 0 {
		fmt.Println("\nImprovement areas:")
		for _, s := range r.ImprovementAreas {
			fmt.Printf("  - %s\n", s)
		}
	}
	if len(r.Suggestions) > 0 {
		fmt.Println("\nSuggestions:")
		for _, s := range r.Suggestions {
			fmt.Printf("  [%s] %s\n", s.Category, s.Text)
		}
	}
}

func joinOrDash(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}
