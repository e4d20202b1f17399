package ranking

import (
	"math"
	"regexp"
	"slices"
	"strings"

	"career-backend/internal/matching"
)

// NeutralScore is returned when there is nothing to compare against.
const NeutralScore = 50

const (
	conceptWeight   = 0.6
	keywordWeight   = 0.4
	fuzzyConcept    = 60
	exactConcept    = 100
	minKeywordRunes = 5
	maxNameRunes    = 50
	defaultName     = "Candidate"
)

var keywordStopwords = []string{"with", "from", "must", "have", "that", "your", "will", "able"}

var (
	emailPattern = regexp.MustCompile(`[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}`)
	phonePattern = regexp.MustCompile(`(\+?\d{1,3}[-.\s]?)?\(?\d{3}\)?[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// Score blends concept overlap with raw keyword overlap into a 0-100 match percentage. A blank job
// description scores NeutralScore.
func Score(resume, jobText string) int {
	if strings.TrimSpace(jobText) == "" {
		return NeutralScore
	}
	resumeLower := matching.Normalize(resume)
	jobLower := matching.Normalize(jobText)

	resumeConcepts := matching.RankerLexicon.ExtractConcepts(resume)
	jobConcepts := matching.RankerLexicon.ExtractConcepts(jobText)

	total := 0
	for _, concept := range jobConcepts {
		switch {
		case slices.Contains(resumeConcepts, concept):
			total += exactConcept
		case slices.ContainsFunc(resumeConcepts, func(rc string) bool { return matching.Similar(concept, rc) }):
			total += fuzzyConcept
		}
	}

	keywords := jobKeywords(jobLower)
	hits := 0
	for _, kw := range keywords {
		if strings.Contains(resumeLower, kw) {
			hits++
		}
	}

	var final float64
	switch {
	case len(jobConcepts) > 0:
		conceptScore := float64(total) / float64(len(jobConcepts)*exactConcept) * 100
		keywordScore := 0.0
		if len(keywords) > 0 {
			keywordScore = float64(hits) / float64(len(keywords)) * 100
		}
		final = conceptScore*conceptWeight + keywordScore*keywordWeight
	case len(keywords) > 0:
		final = float64(hits) / float64(len(keywords)) * 100
	default:
		final = NeutralScore
	}
	return min(max(int(math.Floor(final+0.5)), 0), 100)
}

// jobKeywords splits on whitespace and keeps words of five or more characters that are not
// stopwords. Duplicates are kept and weigh in again.
func jobKeywords(jobLower string) []string {
	fields := strings.Fields(jobLower)
	out := make([]string, 0, len(fields))
	for _, w := range fields {
		if len([]rune(w)) < minKeywordRunes || slices.Contains(keywordStopwords, w) {
			continue
		}
		out = append(out, w)
	}
	return out
}

// ExtractEmail returns the first email address in text, or "".
func ExtractEmail(text string) string {
	return emailPattern.FindString(text)
}

// ExtractPhone returns the first phone number in text, or "".
func ExtractPhone(text string) string {
	return phonePattern.FindString(text)
}

// ExtractName takes the first line, trimmed and cut to 50 characters.
func ExtractName(text string) string {
	first, _, _ := strings.Cut(text, "\n")
	first = strings.TrimSpace(first)
	if first == "" {
		return defaultName
	}
	if r := []rune(first); len(r) > maxNameRunes {
		first = string(r[:maxNameRunes])
	}
	return first
}
