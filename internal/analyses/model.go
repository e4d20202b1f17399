package analyses

import (
	"time"

	"career-backend/internal/analyses/recommendations"
	"career-backend/internal/matching"
)

// Analysis is a stored report. Reports live for the lifetime of the process.
type Analysis struct {
	ID         string         `json:"id"`
	SourceFile string         `json:"sourceFile,omitempty"`
	Report     AnalysisReport `json:"report"`
	CreatedAt  time.Time      `json:"createdAt"`
}

// AnalysisReport is the result of comparing one resume with one job description.
type AnalysisReport struct {
	MatchPercentage   int                               `json:"matchPercentage"`
	ATSScore          int                               `json:"atsScore"`
	MatchedKeywords   []string                          `json:"matchedKeywords"`
	MissingKeywords   []string                          `json:"missingKeywords"`
	Suggestions       []recommendations.Suggestion      `json:"suggestions"`
	Strengths         []string                          `json:"strengths"`
	ImprovementAreas  []string                          `json:"improvementAreas"`
	Skills            SkillsReport                      `json:"skills"`
	GapAnalysis       []recommendations.GapGroup        `json:"gapAnalysis"`
	LearningPaths     []recommendations.LearningPath    `json:"learningPaths"`
	ProjectSuggestion recommendations.ProjectSuggestion `json:"projectSuggestion"`
	SemanticAnalysis  matching.SemanticAnalysis         `json:"semanticAnalysis"`
	Recommendations   []recommendations.Recommendation  `json:"recommendations"`
}

// SkillsReport pairs the extracted skill sets with their gap.
type SkillsReport struct {
	Present  matching.SkillSet `json:"present"`
	Required matching.SkillSet `json:"required"`
	Gap      matching.SkillGap `json:"gap"`
}
