package analyses

import (
	"career-backend/internal/analyses/recommendations"
	"career-backend/internal/matching"
)

// BuildReport runs the full matching pipeline. It is pure and total: any two strings, empty ones
// included, produce a well-formed report.
func BuildReport(resume, jobDescription string) AnalysisReport {
	semantic := matching.NewMatcher().Match(resume, jobDescription)

	resumeSkills := matching.AnalyzerSkills.Extract(resume)
	jobSkills := matching.AnalyzerSkills.Extract(jobDescription)
	gap := matching.IdentifySkillGap(resumeSkills, jobSkills)

	matched := make([]string, 0, len(semantic.Matches))
	for _, m := range semantic.Matches {
		matched = append(matched, m.Concept)
	}

	suggestions := recommendations.Suggestions(recommendations.CheckInput{
		Resume:         resume,
		JobDescription: jobDescription,
		Semantic:       semantic,
		Thesaurus:      matching.DefaultThesaurus,
	})
	gapGroups := recommendations.GapAnalysis(gap.MissingSkills)
	improvementAreas := recommendations.ImprovementAreas(resume)

	return AnalysisReport{
		MatchPercentage:  semantic.OverallMatch,
		ATSScore:         matching.AnalyzerATS.Score(resume),
		MatchedKeywords:  matched,
		MissingKeywords:  semantic.UnmatchedConcepts,
		Suggestions:      suggestions,
		Strengths:        recommendations.Strengths(resume),
		ImprovementAreas: improvementAreas,
		Skills: SkillsReport{
			Present:  resumeSkills,
			Required: jobSkills,
			Gap:      gap,
		},
		GapAnalysis:       gapGroups,
		LearningPaths:     recommendations.LearningPaths(gap.MissingSkills),
		ProjectSuggestion: recommendations.SuggestProject(jobDescription),
		SemanticAnalysis:  semantic,
		Recommendations: recommendations.GenerateRecommendations(recommendations.Input{
			Suggestions:      suggestions,
			GapGroups:        gapGroups,
			MissingKeywords:  semantic.UnmatchedConcepts,
			ImprovementAreas: improvementAreas,
		}),
	}
}
