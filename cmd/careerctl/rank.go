package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"career-backend/internal/extract"
	"career-backend/internal/ranking"
)

var rankCmd = &cobra.Command{
	Use:   "rank [flags] RESUME...",
	Short: "Rank a batch of resumes against a job description",
	Long: `Scores every resume file against the job description and prints the
candidates from best to worst match. Files that cannot be read are listed
after the table.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runRank,
}

var (
	rankJob  string
	rankJSON bool
)

func init() {
	rankCmd.Flags().StringVarP(&rankJob, "job", "j", "", "Path to the job description file")
	rankCmd.Flags().BoolVar(&rankJSON, "json", false, "Print candidates as JSON")

	rootCmd.AddCommand(rankCmd)
}

func runRank(_ *cobra.Command, args []string) error {
	ctx := context.Background()
	ext := extract.New(nil)

	job := ""
	if rankJob != "" {
		text, err := readText(ctx, ext, rankJob)
		if err != nil {
			return err
		}
		job = text
	}

	files := make([]extract.Upload, 0, len(args))
	for _, path := range args {
		up, err := readUpload(path)
		if err != nil {
			return err
		}
		files = append(files, up)
	}

	svc := ranking.NewService(ranking.NewCollection(), ext, nil)
	result, err := svc.Ingest(ctx, files, job)
	if err != nil {
		return err
	}

	candidates := svc.Collection.List()
	if rankJSON {
		return writeJSON(os.Stdout, map[string]any{"candidates": candidates, "failures": result.Failures})
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RANK\tNAME\tFILE\tMATCH\tATS\tBADGE\tMISSING")
	for i, c := range candidates {
		fmt.Fprintf(w, "%d\t%s\t%s\t%d%%\t%d\t%s\t%s\n",
			i+1, c.Name, c.FileName, c.MatchPercentage, c.ATSScore, c.Badge, joinOrDash(c.MissingSkills))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	if len(result.Failures) > 0 {
		fmt.Println("\nSkipped:")
		for _, f := range result.Failures {
			fmt.Printf("  %s: %s (%s)\n", f.FileName, f.Message, f.Code)
		}
	}
	if strings.TrimSpace(job) == "" {
		fmt.Println("\nNo job description given; every candidate scored neutral.")
	}
	return nil
}
