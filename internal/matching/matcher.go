package matching

import (
	"fmt"
	"math"
	"strings"
)

// Tier identifies how a job concept was found in a resume.
type Tier int

const (
	TierNone Tier = iota
	TierFuzzy
	TierSynonym
	TierExact
)

// Score returns the points a concept earns at this tier.
func (t Tier) Score() int {
	switch t {
	case TierExact:
		return 100
	case TierSynonym:
		return 80
	case TierFuzzy:
		return 60
	default:
		return 0
	}
}

func (t Tier) String() string {
	switch t {
	case TierExact:
		return "exact"
	case TierSynonym:
		return "synonym"
	case TierFuzzy:
		return "fuzzy"
	default:
		return "none"
	}
}

// MarshalText renders the tier by name in JSON output.
func (t Tier) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText parses a tier name written by MarshalText.
func (t *Tier) UnmarshalText(text []byte) error {
	switch string(text) {
	case "exact":
		*t = TierExact
	case "synonym":
		*t = TierSynonym
	case "fuzzy":
		*t = TierFuzzy
	case "none":
		*t = TierNone
	default:
		return fmt.Errorf("unknown match tier %q", text)
	}
	return nil
}

// ConceptMatch is the outcome for one job concept that was found in the resume.
type ConceptMatch struct {
	Concept   string   `json:"concept"`
	Score     int      `json:"score"`
	MatchedIn []string `json:"matchedIn"`
	Category  string   `json:"category"`
	Tier      Tier     `json:"tier"`
}

// SemanticAnalysis aggregates concept matching for one resume and job description pair.
type SemanticAnalysis struct {
	OverallMatch        int            `json:"overallMatch"`
	Matches             []ConceptMatch `json:"matches"`
	UnmatchedConcepts   []string       `json:"unmatchedConcepts"`
	JobConcepts         []string       `json:"jobConcepts"`
	ResumeConcepts      []string       `json:"resumeConcepts"`
	TotalJobConcepts    int            `json:"totalJobConcepts"`
	MatchedConceptCount int            `json:"matchedConceptCount"`
}

// Matcher scores job description concepts against a resume.
type Matcher struct {
	Lexicon Lexicon
}

// NewMatcher returns a Matcher over the analyzer lexicon.
func NewMatcher() Matcher {
	return Matcher{Lexicon: DefaultLexicon}
}

// matchInput is the normalized state shared by the tier evaluators for one pair of texts.
type matchInput struct {
	resume         string
	resumeConcepts []string
	thesaurus      Thesaurus
}

// tierEvaluator reports the terms that justify concept at a single tier; nil means no hit.
type tierEvaluator struct {
	tier Tier
	eval func(in matchInput, concept string) []string
}

// tiers are evaluated in order and the first hit decides the score.
var tiers = []tierEvaluator{
	{tier: TierExact, eval: exactHits},
	{tier: TierSynonym, eval: synonymHits},
	{tier: TierFuzzy, eval: fuzzyHits},
}

func exactHits(in matchInput, concept string) []string {
	if strings.Contains(in.resume, concept) {
		return []string{concept}
	}
	return nil
}

func synonymHits(in matchInput, concept string) []string {
	family, ok := in.thesaurus.FamilyOf(concept)
	if !ok {
		return nil
	}
	var hits []string
	for _, term := range family.Terms {
		if strings.Contains(in.resume, term) {
			hits = append(hits, term)
		}
	}
	return hits
}

func fuzzyHits(in matchInput, concept string) []string {
	var hits []string
	for _, candidate := range in.resumeConcepts {
		if Similar(concept, candidate) {
			hits = append(hits, candidate)
		}
	}
	return hits
}

// Classify returns the first tier at which concept is found in resumeText along with the terms
// that justified it.
func (m Matcher) Classify(resumeText, concept string) (Tier, []string) {
	resume := Normalize(resumeText)
	in := matchInput{
		resume:         resume,
		resumeConcepts: m.Lexicon.extract(resume),
		thesaurus:      m.Lexicon.Thesaurus,
	}
	return classify(in, concept)
}

func classify(in matchInput, concept string) (Tier, []string) {
	for _, t := range tiers {
		if hits := t.eval(in, concept); len(hits) > 0 {
			return t.tier, hits
		}
	}
	return TierNone, nil
}

// Match extracts concepts from both texts and scores every job concept in extraction order. Every
// job concept ends up in exactly one of Matches or UnmatchedConcepts.
func (m Matcher) Match(resumeText, jobText string) SemanticAnalysis {
	resume := Normalize(resumeText)
	job := Normalize(jobText)

	jobConcepts := m.Lexicon.extract(job)
	in := matchInput{
		resume:         resume,
		resumeConcepts: m.Lexicon.extract(resume),
		thesaurus:      m.Lexicon.Thesaurus,
	}

	matches := make([]ConceptMatch, 0, len(jobConcepts))
	unmatched := make([]string, 0)
	total := 0
	for _, concept := range jobConcepts {
		tier, hits := classify(in, concept)
		if tier == TierNone {
			unmatched = append(unmatched, concept)
			continue
		}
		matches = append(matches, ConceptMatch{
			Concept:   concept,
			Score:     tier.Score(),
			MatchedIn: hits,
			Category:  m.Lexicon.Thesaurus.CategoryOf(concept, "general"),
			Tier:      tier,
		})
		total += tier.Score()
	}

	return SemanticAnalysis{
		OverallMatch:        overallMatch(total, len(jobConcepts)),
		Matches:             matches,
		UnmatchedConcepts:   unmatched,
		JobConcepts:         jobConcepts,
		ResumeConcepts:      in.resumeConcepts,
		TotalJobConcepts:    len(jobConcepts),
		MatchedConceptCount: len(matches),
	}
}

// overallMatch is the mean concept score as a percentage. No job concepts scores 0.
func overallMatch(total, concepts int) int {
	if concepts == 0 {
		return 0
	}
	return clampPercent(roundHalfUp(float64(total) / float64(concepts*100) * 100))
}

// roundHalfUp rounds .5 toward positive infinity.
func roundHalfUp(v float64) int {
	return int(math.Floor(v + 0.5))
}

func clampPercent(v int) int {
	return min(max(v, 0), 100)
}
