package interview

import (
	"fmt"
	"strings"
)

func questionPrompt(difficulty string) string {
	return fmt.Sprintf(`Generate a FAANG-style %s coding interview problem.

Return ONLY JSON:
{
  "problem": "",
  "examples": "",
  "constraints": "",
  "followUp": ""
}
`, difficulty)
}

func clarificationPrompt(problem, question string) string {
	var sb strings.Builder
	sb.WriteString("You are the interviewer.\n")
	sb.WriteString("Answer the candidate's clarification briefly and realistically.\n\n")
	if strings.TrimSpace(problem) != "" {
		sb.WriteString("Problem:\n")
		sb.WriteString(problem)
		sb.WriteString("\n\n")
	}
	sb.WriteString("Question:\n")
	sb.WriteString(question)
	sb.WriteString("\n")
	return sb.String()
}

func evaluationPrompt(language, problem, code string) string {
	return fmt.Sprintf(`You are a FAANG interviewer.

Language: %s
Problem:
%s

Candidate Solution:
%s

Evaluate and score.

Return JSON ONLY:
{
  "scores": {
    "correctness": 0,
    "efficiency": 0,
    "codeQuality": 0,
    "communication": 0,
    "problemSolving": 0
  },
  "verdict": "Hire / No Hire",
  "feedback": ""
}
`, language, problem, code)
}
