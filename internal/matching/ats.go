package matching

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	atsBase         = 50
	atsMax          = 100
	atsNameBonus    = 10
	atsPhoneBonus   = 5
	atsEmailBonus   = 5
	atsSectionBonus = 5
	atsBulletBonus  = 10
	atsVerbBonus    = 5
	atsMinBullets   = 5
)

var (
	namePattern  = regexp.MustCompile(`[A-Z][a-z]+\s+[A-Z][a-z]+`)
	phonePattern = regexp.MustCompile(`\b\d{3}[-.]?\d{3}[-.]?\d{4}\b`)
	emailPattern = regexp.MustCompile(`[\w.-]+@[\w.-]+\.\w+`)
)

// BulletGlyphs are the characters counted as list markers.
const BulletGlyphs = "•-*"

// ATSRules configures the applicant tracking system formatting score.
type ATSRules struct {
	// Contact enables the name, phone and email bonuses.
	Contact     bool
	Sections    []string
	ActionVerbs []string
}

// AnalyzerATS scores single resumes.
var AnalyzerATS = ATSRules{
	Contact:     true,
	Sections:    []string{"experience", "education", "skills", "projects", "certification"},
	ActionVerbs: []string{"developed", "managed", "led", "created", "implemented", "designed", "improved", "achieved"},
}

// RankerATS scores bulk candidates without contact bonuses.
var RankerATS = ATSRules{
	Sections:    []string{"experience", "education", "skills", "projects", "certification"},
	ActionVerbs: []string{"developed", "managed", "led", "created", "implemented", "designed"},
}

// Score starts at 50 and adds independent bonuses, capped at 100.
func (r ATSRules) Score(text string) int {
	folded := norm.NFKC.String(text)
	lower := strings.ToLower(folded)

	score := atsBase
	if r.Contact {
		if namePattern.MatchString(folded) {
			score += atsNameBonus
		}
		if phonePattern.MatchString(folded) {
			score += atsPhoneBonus
		}
		if emailPattern.MatchString(folded) {
			score += atsEmailBonus
		}
	}
	for _, section := range r.Sections {
		if strings.Contains(lower, section) {
			score += atsSectionBonus
		}
	}
	if CountBullets(folded) > atsMinBullets {
		score += atsBulletBonus
	}
	if containsAny(lower, r.ActionVerbs) {
		score += atsVerbBonus
	}
	return min(score, atsMax)
}

// CountBullets counts bullet glyphs anywhere in text, hyphens included.
func CountBullets(text string) int {
	n := 0
	for _, r := range text {
		if strings.ContainsRune(BulletGlyphs, r) {
			n++
		}
	}
	return n
}

// HasEmail reports whether text contains an email-shaped token.
func HasEmail(text string) bool {
	return emailPattern.MatchString(text)
}
