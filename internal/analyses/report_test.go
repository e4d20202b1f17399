package analyses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const reactResume = "Experienced React developer, built REST APIs, AWS deployment, 5 years experience, increased conversion by 20%."

func TestBuildReportReactScenario(t *testing.T) {
	report := BuildReport(reactResume, "Looking for a React engineer with REST API and AWS cloud experience.")

	assert.GreaterOrEqual(t, report.MatchPercentage, 80)
	assert.GreaterOrEqual(t, report.ATSScore, 55)
	assert.Empty(t, report.MissingKeywords)
	assert.Contains(t, report.MatchedKeywords, "frontend frameworks")
	assert.Equal(t, report.SemanticAnalysis.OverallMatch, report.MatchPercentage)
	assert.Contains(t, report.Skills.Present.Technical, "react")
	assert.LessOrEqual(t, len(report.Recommendations), 7)
}

func TestBuildReportEmptyResume(t *testing.T) {
	report := BuildReport("", "Python Django SQL")

	assert.Equal(t, 0, report.MatchPercentage)
	assert.NotEmpty(t, report.MissingKeywords)
	assert.Empty(t, report.MatchedKeywords)
	assert.Empty(t, report.Skills.Present.Technical)
	assert.NotEmpty(t, report.Skills.Gap.MissingSkills)
	require.NotEmpty(t, report.GapAnalysis)
	assert.NotEmpty(t, report.LearningPaths)
	assert.NotEmpty(t, report.Recommendations)
}

func TestBuildReportIsTotal(t *testing.T) {
	inputs := [][2]string{
		{"", ""},
		{"   ", "\n\t"},
		{reactResume, ""},
		{"ＡＷＳ and ｋｕｂｅｒｎｅｔｅｓ", "AWS Kubernetes"},
	}
	for _, in := range inputs {
		report := BuildReport(in[0], in[1])
		assert.GreaterOrEqual(t, report.MatchPercentage, 0)
		assert.LessOrEqual(t, report.MatchPercentage, 100)
		assert.GreaterOrEqual(t, report.ATSScore, 50)
		assert.LessOrEqual(t, report.ATSScore, 100)
		sa := report.SemanticAnalysis
		assert.Equal(t, sa.TotalJobConcepts, len(sa.Matches)+len(sa.UnmatchedConcepts))
		assert.NotEmpty(t, report.ProjectSuggestion.Title)
	}
}

func TestBuildReportDeterministic(t *testing.T) {
	job := "Senior Go engineer: Kubernetes, PostgreSQL, gRPC, leadership and communication."
	first := BuildReport(reactResume, job)
	second := BuildReport(reactResume, job)
	assert.Equal(t, first, second)
}
