package recommendations

import (
	"sort"
	"strings"
	"unicode"
)

const maxRecommendations = 7

var (
	severityRanks = map[string]int{SeverityCritical: 3, SeverityWarning: 2, SeverityInfo: 1}
	impactRanks   = map[string]int{ImpactHigh: 3, ImpactMedium: 2, ImpactLow: 1}
	areaRanks     = map[string]int{AreaATS: 5, AreaSkills: 4, AreaExperience: 3, AreaStructure: 2, AreaFormatting: 1}
)

// GenerateRecommendations folds suggestions, skill gaps, missing concepts and improvement areas into
// one deterministic, prioritized list of at most seven entries.
func GenerateRecommendations(input Input) []Recommendation {
	var all []Recommendation
	all = append(all, fromGapGroups(input.GapGroups)...)
	all = append(all, fromMissingKeywords(input.MissingKeywords)...)
	all = append(all, fromSuggestions(input.Suggestions)...)
	all = append(all, fromImprovementAreas(input.ImprovementAreas)...)

	recs := dedupe(all)
	sortRecommendations(recs)
	if len(recs) > maxRecommendations {
		recs = recs[:maxRecommendations]
	}
	for i := range recs {
		recs[i].Order = i + 1
	}
	return recs
}

// rank looks up value case-insensitively. Unknown severities and impacts count as the lowest
// tier, unknown areas below every known one.
func rank(table map[string]int, value string, fallback int) int {
	if r, ok := table[strings.TrimSpace(value)]; ok {
		return r
	}
	for k, r := range table {
		if strings.EqualFold(k, strings.TrimSpace(value)) {
			return r
		}
	}
	return fallback
}

func sortRecommendations(items []Recommendation) {
	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if sa, sb := rank(severityRanks, a.Severity, 1), rank(severityRanks, b.Severity, 1); sa != sb {
			return sa > sb
		}
		if ia, ib := rank(impactRanks, a.Impact, 1), rank(impactRanks, b.Impact, 1); ia != ib {
			return ia > ib
		}
		if ca, cb := rank(areaRanks, a.Category, 0), rank(areaRanks, b.Category, 0); ca != cb {
			return ca > cb
		}
		return strings.ToLower(a.Title) < strings.ToLower(b.Title)
	})
}

// dedupe keeps the first recommendation per ID, filling its blank fields from later duplicates.
func dedupe(items []Recommendation) []Recommendation {
	index := make(map[string]int, len(items))
	out := make([]Recommendation, 0, len(items))
	for _, item := range items {
		id := strings.TrimSpace(item.ID)
		if id == "" {
			continue
		}
		i, ok := index[id]
		if !ok {
			index[id] = len(out)
			out = append(out, item)
			continue
		}
		kept := &out[i]
		kept.Title = firstNonBlank(kept.Title, item.Title)
		kept.Why = firstNonBlank(kept.Why, item.Why)
		kept.Action = firstNonBlank(kept.Action, item.Action)
		kept.Category = firstNonBlank(kept.Category, item.Category)
		kept.Severity = firstNonBlank(kept.Severity, item.Severity)
		kept.Impact = firstNonBlank(kept.Impact, item.Impact)
	}
	return out
}

func firstNonBlank(a, b string) string {
	if strings.TrimSpace(a) != "" {
		return a
	}
	return b
}

// inferCategory places free-text advice in an area by keyword.
func inferCategory(title string) string {
	t := strings.ToLower(strings.TrimSpace(title))
	has := func(words ...string) bool {
		for _, w := range words {
			if strings.Contains(t, w) {
				return true
			}
		}
		return false
	}
	switch {
	case has("skill", "keyword"):
		return AreaSkills
	case has("format", "bullet", "font", "layout"):
		return AreaFormatting
	case has("experience", "timeline", "content depth"):
		return AreaExperience
	case has("contact", "phone", "section", "summary"):
		return AreaStructure
	default:
		return AreaATS
	}
}

func slugify(input string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(strings.TrimSpace(input)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
		} else if !dash {
			b.WriteByte('-')
			dash = true
		}
	}
	if out := strings.Trim(b.String(), "-"); out != "" {
		return out
	}
	return "item"
}

// uniqueSortedStrings trims, drops blanks and case-insensitive duplicates, then sorts case-insensitively.
func uniqueSortedStrings(items []string) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		key := strings.ToLower(item)
		if item == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
	}
	sort.Slice(out, func(i, j int) bool {
		return strings.ToLower(out[i]) < strings.ToLower(out[j])
	})
	return out
}
