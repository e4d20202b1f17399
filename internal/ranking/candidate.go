package ranking

import (
	"time"

	"career-backend/internal/matching"
)

// Candidate is one uploaded resume with its ranker analysis.
type Candidate struct {
	ID              string            `json:"id"`
	FileName        string            `json:"fileName"`
	ContentHash     string            `json:"contentHash"`
	ResumeText      string            `json:"resumeText"`
	Name            string            `json:"name"`
	Email           string            `json:"email"`
	Phone           string            `json:"phone"`
	ResumeSkills    matching.SkillSet `json:"resumeSkills"`
	JobSkills       matching.SkillSet `json:"jobSkills"`
	MatchPercentage int               `json:"matchPercentage"`
	ATSScore        int               `json:"atsScore"`
	MissingSkills   []string          `json:"missingSkills"`
	PresentSkills   []string          `json:"presentSkills"`
	Badge           string            `json:"badge"`
	CreatedAt       time.Time         `json:"createdAt"`
}

// FileFailure records a file that could not be turned into a candidate.
type FileFailure struct {
	FileName string `json:"fileName"`
	Code     string `json:"code"`
	Message  string `json:"message"`
}

// BatchResult summarizes one upload batch.
type BatchResult struct {
	Added    []Candidate   `json:"added"`
	Failures []FileFailure `json:"failures"`
}

// OutreachResult summarizes a simulated outreach run.
type OutreachResult struct {
	Prepared int      `json:"prepared"`
	Sent     int      `json:"sent"`
	NoEmail  []string `json:"noEmail"`
}

// Rank badges.
const (
	BadgeExcellent = "Excellent"
	BadgeGood      = "Good"
	BadgeFair      = "Fair"
	BadgePoor      = "Poor"
)

// Badge labels a match percentage.
func Badge(pct int) string {
	switch {
	case pct >= 80:
		return BadgeExcellent
	case pct >= 60:
		return BadgeGood
	case pct >= 40:
		return BadgeFair
	default:
		return BadgePoor
	}
}
