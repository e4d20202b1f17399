package recommendations

import "strings"

type suggestionRule struct {
	category string
	severity string
	impact   string
	title    string
	why      string
}

var suggestionRules = map[string]suggestionRule{
	CategorySemanticGap:    {AreaSkills, SeverityCritical, ImpactHigh, "Close semantic gaps with the role", "Job concepts with no evidence in the resume lower the semantic match score."},
	CategoryAlignment:      {AreaATS, SeverityWarning, ImpactHigh, "Raise job requirements coverage", "Low concept coverage means screening filters may skip the resume."},
	CategoryExperience:     {AreaExperience, SeverityWarning, ImpactMedium, "State years of experience", "Recruiters gauge seniority from explicit durations."},
	CategoryQuantifiable:   {AreaExperience, SeverityWarning, ImpactHigh, "Quantify achievements", "Numbers make impact concrete and comparable."},
	CategoryFormatting:     {AreaFormatting, SeverityInfo, ImpactMedium, "Use consistent bullet points", "Bulleted experience parses more reliably in ATS."},
	CategoryStructure:      {AreaStructure, SeverityInfo, ImpactLow, "Add supporting sections", "Optional sections give reviewers more context."},
	CategoryLeadership:     {AreaExperience, SeverityWarning, ImpactMedium, "Show leadership experience", "The role asks for leadership the resume does not evidence."},
	CategoryTechnicalDepth: {AreaExperience, SeverityWarning, ImpactHigh, "Demonstrate technical depth", "Senior roles are screened for architecture and design ownership."},
}

func fromSuggestions(items []Suggestion) []Recommendation {
	out := make([]Recommendation, 0, len(items))
	for _, item := range items {
		text := strings.TrimSpace(item.Text)
		if text == "" {
			continue
		}
		rule, ok := suggestionRules[item.Category]
		if !ok {
			rule = suggestionRule{
				category: inferCategory(item.Category),
				severity: SeverityInfo,
				impact:   ImpactLow,
				title:    item.Category,
				why:      "Improves clarity and relevance for recruiters.",
			}
		}
		out = append(out, Recommendation{
			ID:       "SUGGESTION_" + slugify(item.Category),
			Category: rule.category,
			Severity: rule.severity,
			Title:    rule.title,
			Why:      rule.why,
			Action:   text,
			Impact:   rule.impact,
		})
	}
	return out
}

func fromGapGroups(groups []GapGroup) []Recommendation {
	out := make([]Recommendation, 0, len(groups))
	for _, group := range groups {
		if len(group.Skills) == 0 {
			continue
		}
		severity, impact := SeverityWarning, ImpactMedium
		if group.Priority == PriorityCritical {
			severity, impact = SeverityCritical, ImpactHigh
		}
		out = append(out, Recommendation{
			ID:       "SKILL_GAP_" + strings.ToUpper(slugify(group.Priority)),
			Category: AreaSkills,
			Severity: severity,
			Title:    "Build skills: " + strings.Join(group.Skills, ", "),
			Why:      group.Description,
			Action:   "Add hands-on experience with " + strings.Join(group.Skills, ", ") + " and list it in Skills and Experience.",
			Impact:   impact,
		})
	}
	return out
}

func fromMissingKeywords(k []string) []Recommendation {
	keywords := uniqueSortedStrings(k)
	if len(keywords) == 0 {
		return nil
	}
	return []Recommendation{
		{
			ID:       "ATS_MISSING_JOB_CONCEPTS",
			Category: AreaATS,
			Severity: SeverityWarning,
			Title:    "Add missing job concepts",
			Why:      "Improves ATS match and helps recruiters quickly spot relevant skills.",
			Action:   "Mirror the job description by working these concepts into Skills and Experience bullets: " + strings.Join(keywords, ", "),
			Impact:   ImpactHigh,
		},
	}
}

func fromImprovementAreas(items []string) []Recommendation {
	out := make([]Recommendation, 0, len(items))
	for _, item := range items {
		title, detail, found := strings.Cut(item, ":")
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		action := strings.TrimSpace(detail)
		if !found || action == "" {
			action = "Fix: " + title
		}
		out = append(out, Recommendation{
			ID:       "IMPROVE_" + slugify(title),
			Category: inferCategory(title),
			Severity: SeverityInfo,
			Title:    title,
			Why:      "Recruiters expect this detail to evaluate fit quickly.",
			Action:   action,
			Impact:   ImpactMedium,
		})
	}
	return out
}
