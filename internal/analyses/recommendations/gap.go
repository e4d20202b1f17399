package recommendations

import (
	"fmt"
	"strings"
)

const (
	PriorityCritical = "Critical"
	PriorityHigh     = "High"
)

// GapAnalysis groups the first three missing skills as Critical and the next three as High.
// Empty tiers are omitted.
func GapAnalysis(missingSkills []string) []GapGroup {
	groups := make([]GapGroup, 0, 2)

	critical := window(missingSkills, 0, 3)
	if len(critical) > 0 {
		groups = append(groups, GapGroup{
			Priority: PriorityCritical,
			Skills:   critical,
			Description: fmt.Sprintf("The role requires advanced proficiency in %s. These are core competencies that differentiate competitive candidates. Prioritize building expertise in these areas immediately.",
				strings.Join(critical, ", ")),
		})
	}

	high := window(missingSkills, 3, 6)
	if len(high) > 0 {
		groups = append(groups, GapGroup{
			Priority: PriorityHigh,
			Skills:   high,
			Description: fmt.Sprintf("Additional skills including %s would significantly enhance your candidacy and make you a more competitive applicant.",
				strings.Join(high, ", ")),
		})
	}
	return groups
}

// window returns a copy of items[from:to] clipped to the slice bounds.
func window(items []string, from, to int) []string {
	if from >= len(items) {
		return nil
	}
	to = min(to, len(items))
	return append([]string(nil), items[from:to]...)
}
