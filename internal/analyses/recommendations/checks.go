package recommendations

import (
	"fmt"
	"math"
	"regexp"
	"strings"

	"career-backend/internal/matching"
)

const (
	CategorySemanticGap    = "Semantic Gap - Technical Alignment"
	CategoryAlignment      = "Job Requirements Alignment"
	CategoryExperience     = "Experience Clarity"
	CategoryQuantifiable   = "Quantifiable Achievements"
	CategoryFormatting     = "Formatting & Readability"
	CategoryStructure      = "Content Structure"
	CategoryLeadership     = "Leadership Visibility"
	CategoryTechnicalDepth = "Technical Depth Enhancement"
)

const (
	alignmentThreshold       = 70
	formattingMinBullets     = 5
	improvementMinBullets    = 8
	improvementMinLines      = 15
	timelineMinMentions      = 2
	maxUnmatchedInSuggestion = 3
)

var (
	yearsPattern        = regexp.MustCompile(`(?i)\d+\s*(years|yrs)`)
	quantifiedPattern   = regexp.MustCompile(`(?i)[0-9]{1,3}%|[0-9]+(\.[0-9]+)?x\s+(increase|growth|improvement)`)
	leadershipJDPattern = regexp.MustCompile(`(?i)leadership|manage|lead`)
	leadershipCVPattern = regexp.MustCompile(`(?i)lead|manage|supervise|directed|team`)
	seniorJDPattern     = regexp.MustCompile(`(?i)senior|architect|technical lead|principal`)
	depthCVPattern      = regexp.MustCompile(`(?i)architecture|design|pattern|framework|scale|optimize|mentor`)

	educationPattern     = regexp.MustCompile(`(?i)phd|master|m\.s\.|m\.a\.|b\.s\.|b\.a\.|certification in|certified|degree`)
	leadershipPattern    = regexp.MustCompile(`(?i)lead|manager|director|supervisor|head of|chief|vice president|president`)
	credentialPattern    = regexp.MustCompile(`(?i)certificate|certified|certification|credential|licensed|accredited`)
	timelinePattern      = regexp.MustCompile(`(?i)\d+\+?\s+(years?|months?)`)
	impactPattern        = regexp.MustCompile(`(?i)[0-9]{1,3}%|[0-9]+x|improved|increased|optimized|streamlined|enhanced|accelerated`)
	skillsSectionPattern = regexp.MustCompile(`(?i)\b(skills|proficiencies|expertise in)\b`)

	durationPattern  = regexp.MustCompile(`(?i)\d+\+?\s+(years?|yrs)`)
	phoneHintPattern = regexp.MustCompile(`(?i)phone|\(\d{3}\)|\d{3}[-.]?\d{3}[-.]?\d{4}`)
)

var optionalSections = []string{
	"professional summary",
	"core competencies",
	"professional certifications",
	"professional affiliations",
}

// Suggestions runs every check independently and returns one entry per failing check, in check order.
func Suggestions(in CheckInput) []Suggestion {
	out := make([]Suggestion, 0, 8)
	resumeLower := strings.ToLower(in.Resume)
	jobLower := strings.ToLower(in.JobDescription)

	if unmatched := in.Semantic.UnmatchedConcepts; len(unmatched) > 0 {
		areas := make([]string, 0, maxUnmatchedInSuggestion)
		for _, concept := range window(unmatched, 0, maxUnmatchedInSuggestion) {
			areas = append(areas, in.Thesaurus.CategoryOf(concept, concept))
		}
		out = append(out, Suggestion{
			Category: CategorySemanticGap,
			Text: fmt.Sprintf("Your resume lacks semantic alignment in critical areas: %s. Incorporate related keywords, demonstrate experience with similar technologies, and highlight relevant project work to improve semantic matching with this role.",
				strings.Join(areas, ", ")),
		})
	}

	if total := len(in.Semantic.Matches) + len(in.Semantic.UnmatchedConcepts); total > 0 {
		rate := float64(len(in.Semantic.Matches)) / float64(total) * 100
		if rate < alignmentThreshold {
			out = append(out, Suggestion{
				Category: CategoryAlignment,
				Text: fmt.Sprintf("Your resume's semantic coverage is %d%%. Increase alignment by: (1) Adding missing technology stacks, (2) Emphasizing relevant methodologies, (3) Highlighting similar projects or experiences that demonstrate capability in required domains.",
					int(math.Round(rate))),
			})
		}
	}

	if !yearsPattern.MatchString(in.Resume) {
		out = append(out, Suggestion{
			Category: CategoryExperience,
			Text:     "Explicitly state years of professional experience for each role. Include both duration in years and specific employment dates to demonstrate career progression.",
		})
	}

	if !quantifiedPattern.MatchString(in.Resume) {
		out = append(out, Suggestion{
			Category: CategoryQuantifiable,
			Text:     "Enhance impact statements with measurable results (e.g., 'increased revenue by 25%', 'reduced processing time by 40%'). Quantified accomplishments demonstrate concrete value delivery and are significantly more compelling to recruiters.",
		})
	}

	if matching.CountBullets(in.Resume) <= formattingMinBullets {
		out = append(out, Suggestion{
			Category: CategoryFormatting,
			Text:     "Use consistent bullet-point formatting throughout your professional experience section. This improves ATS compatibility and makes content more scannable for human reviewers.",
		})
	}

	missing := make([]string, 0, len(optionalSections))
	for _, section := range optionalSections {
		if !strings.Contains(resumeLower, section) {
			missing = append(missing, section)
		}
	}
	if len(missing) > 0 {
		out = append(out, Suggestion{
			Category: CategoryStructure,
			Text: fmt.Sprintf("Consider adding a %s section to provide additional context and strengthen your candidacy.",
				strings.Join(window(missing, 0, 2), " or ")),
		})
	}

	if leadershipJDPattern.MatchString(jobLower) && !leadershipCVPattern.MatchString(in.Resume) {
		out = append(out, Suggestion{
			Category: CategoryLeadership,
			Text:     "The role emphasizes leadership responsibilities. Highlight team management experiences, project leadership, mentoring activities, and cross-functional collaboration to demonstrate capability for leadership requirements.",
		})
	}

	if seniorJDPattern.MatchString(in.JobDescription) && !depthCVPattern.MatchString(in.Resume) {
		out = append(out, Suggestion{
			Category: CategoryTechnicalDepth,
			Text:     "Senior-level roles require demonstrating deep technical expertise. Add content about system architecture, technical design decisions, performance optimizations, and technical mentorship to establish seniority.",
		})
	}
	return out
}

const fallbackStrength = "Resume demonstrates relevant professional experience and qualifications"

// Strengths lists the positive signals found in the resume. It never returns an empty slice.
func Strengths(resume string) []string {
	out := make([]string, 0, 6)
	if educationPattern.MatchString(resume) {
		out = append(out, "Comprehensive educational qualifications demonstrating professional development and expertise")
	}
	if leadershipPattern.MatchString(resume) {
		out = append(out, "Leadership and management experience showcasing progressive career growth and team management capabilities")
	}
	if credentialPattern.MatchString(resume) {
		out = append(out, "Professional certifications and credentials enhancing domain expertise and industry credibility")
	}
	if len(timelinePattern.FindAllStringIndex(resume, -1)) > timelineMinMentions {
		out = append(out, "Clear professional timeline demonstrating sustained career trajectory and experience depth")
	}
	if impactPattern.MatchString(resume) {
		out = append(out, "Strong emphasis on measurable impact and quantified business outcomes")
	}
	if skillsSectionPattern.MatchString(resume) {
		out = append(out, "Well-defined technical skills and competencies clearly articulated")
	}
	if len(out) == 0 {
		out = append(out, fallbackStrength)
	}
	return out
}

// ImprovementAreas lists resume weaknesses as "Title: detail" strings.
func ImprovementAreas(resume string) []string {
	out := make([]string, 0, 5)
	if !durationPattern.MatchString(resume) {
		out = append(out, "Career timeline lacks specificity: Clearly indicate the duration of experience for each position to help recruiters assess your expertise level.")
	}
	if matching.CountBullets(resume) < improvementMinBullets {
		out = append(out, "Insufficient use of bullet points: Enhance visual hierarchy and scannability by using consistent bullet-point formatting throughout your experience section.")
	}
	if !matching.HasEmail(resume) {
		out = append(out, "Contact information incomplete: Include a professional email address prominently in the header for easy recruiter outreach.")
	}
	if len(strings.Split(resume, "\n")) < improvementMinLines {
		out = append(out, "Content depth is insufficient: Expand your professional experience descriptions with more detail about accomplishments, responsibilities, and impact.")
	}
	if !phoneHintPattern.MatchString(resume) {
		out = append(out, "Phone number missing: Include your phone number in the contact section for comprehensive recruiter accessibility.")
	}
	return out
}
