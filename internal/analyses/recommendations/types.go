package recommendations

import "career-backend/internal/matching"

// Recommendation areas, from most to least urgent on a tie.
const (
	AreaATS        = "ATS"
	AreaSkills     = "SKILLS"
	AreaExperience = "EXPERIENCE"
	AreaStructure  = "STRUCTURE"
	AreaFormatting = "FORMATTING"
)

// Severities and impacts attached to a Recommendation.
const (
	SeverityCritical = "critical"
	SeverityWarning  = "warning"
	SeverityInfo     = "info"

	ImpactHigh   = "high"
	ImpactMedium = "medium"
	ImpactLow    = "low"
)

// Recommendation is one prioritized action in a report.
type Recommendation struct {
	ID       string `json:"id"`
	Category string `json:"category"`
	Severity string `json:"severity"`
	Title    string `json:"title"`
	Why      string `json:"why"`
	Action   string `json:"action"`
	Impact   string `json:"impact"`
	Order    int    `json:"order"`
}

// Suggestion is one free-text recommendation under a named category.
type Suggestion struct {
	Category string `json:"category"`
	Text     string `json:"text"`
}

// GapGroup is a priority tier of missing skills.
type GapGroup struct {
	Priority    string   `json:"priority"`
	Skills      []string `json:"skills"`
	Description string   `json:"description"`
}

// LearningPath suggests where to pick up a missing skill.
type LearningPath struct {
	Skill     string   `json:"skill"`
	Resources []string `json:"resources"`
	Timeframe string   `json:"timeframe"`
	Platform  []string `json:"platform"`
}

// ProjectSuggestion is a synthesized portfolio project aimed at the job description.
type ProjectSuggestion struct {
	Title             string   `json:"title"`
	Description       string   `json:"description"`
	Features          []string `json:"features"`
	TechStack         []string `json:"techStack"`
	EstimatedDuration string   `json:"estimatedDuration"`
	Portfolio         bool     `json:"portfolio"`
	GithubPublic      bool     `json:"githubPublic"`
	DemoURL           bool     `json:"demoUrl"`
}

// CheckInput carries the texts and concept matching outcome the suggestion checks read.
type CheckInput struct {
	Resume         string
	JobDescription string
	Semantic       matching.SemanticAnalysis
	Thesaurus      matching.Thesaurus
}

// Input is the data needed for prioritized recommendation generation.
type Input struct {
	Suggestions      []Suggestion
	GapGroups        []GapGroup
	MissingKeywords  []string
	ImprovementAreas []string
}
