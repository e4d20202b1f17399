package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"career-backend/internal/interview"
)

var interviewCmd = &cobra.Command{
	Use:   "interview",
	Short: "Mock coding interview tools",
}

var interviewQuestionCmd = &cobra.Command{
	Use:   "question",
	Short: "Generate a mock coding interview question",
	Long: `Asks the configured Gemini model for a coding question and prints it with
the starter template for the chosen language. Requires GEMINI_API_KEY.`,
	RunE: runInterviewQuestion,
}

var (
	interviewDifficulty string
	interviewLanguage   string
	interviewModel      string
	interviewTimeout    time.Duration
)

func init() {
	interviewQuestionCmd.Flags().StringVarP(&interviewDifficulty, "difficulty", "d", interview.DifficultyMedium, "Question difficulty: easy, medium or hard")
	interviewQuestionCmd.Flags().StringVarP(&interviewLanguage, "language", "l", interview.DefaultLanguage, "Template language")
	interviewQuestionCmd.Flags().StringVar(&interviewModel, "model", "", "Gemini model (default from GEMINI_MODEL)")
	interviewQuestionCmd.Flags().DurationVar(&interviewTimeout, "timeout", 60*time.Second, "Generation timeout")

	interviewCmd.AddCommand(interviewQuestionCmd)
	rootCmd.AddCommand(interviewCmd)
}

func runInterviewQuestion(_ *cobra.Command, _ []string) error {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is not set")
	}
	model := interviewModel
	if model == "" {
		model = os.Getenv("GEMINI_MODEL")
	}

	ctx, cancel := context.WithTimeout(context.Background(), interviewTimeout)
	defer cancel()

	client, err := interview.NewGeminiClient(ctx, apiKey, model)
	if err != nil {
		return err
	}
	defer client.Close()

	svc := interview.NewService(client, interview.NewSessionStore(1))
	session, err := svc.NewQuestion(ctx, interviewDifficulty, interviewLanguage)
	if err != nil {
		return err
	}

	q := session.Question
	fmt.Printf("Difficulty: %s    Language: %s    Time: %s\n\n", session.Difficulty, session.Language, interview.SessionDuration)
	fmt.Println(q.Problem)
	printSection("Examples", string(q.Examples))
	printSection("Constraints", string(q.Constraints))
	printSection("Follow-up", string(q.FollowUp))
	printSection("Template", session.Template)
	return nil
}

func printSection(title, body string) {
	if strings.TrimSpace(body) == "" {
		return
	}
	fmt.Printf("\n%s:\n%s\n", title, body)
}
