package recommendations

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"career-backend/internal/matching"
)

func TestSuggestionsAllChecksFire(t *testing.T) {
	in := CheckInput{
		Resume:         "hello",
		JobDescription: "Senior engineer to lead the team",
		Semantic: matching.SemanticAnalysis{
			Matches:           []matching.ConceptMatch{{Concept: "git", Score: 100}},
			UnmatchedConcepts: []string{"kubernetes", "rest", "cobol", "docker"},
		},
		Thesaurus: matching.DefaultThesaurus,
	}

	got := Suggestions(in)

	categories := make([]string, 0, len(got))
	for _, s := range got {
		categories = append(categories, s.Category)
	}
	assert.Equal(t, []string{
		CategorySemanticGap,
		CategoryAlignment,
		CategoryExperience,
		CategoryQuantifiable,
		CategoryFormatting,
		CategoryStructure,
		CategoryLeadership,
		CategoryTechnicalDepth,
	}, categories)
	assert.Contains(t, got[0].Text, "critical areas: kubernetes, api development, cobol.")
	assert.Contains(t, got[1].Text, "semantic coverage is 20%.")
	assert.Contains(t, got[5].Text, "Consider adding a professional summary or core competencies section")
}

func TestSuggestionsNoneFire(t *testing.T) {
	resume := strings.Join([]string{
		"Professional Summary",
		"Core Competencies",
		"Professional Certifications",
		"Professional Affiliations",
		"5 years experience",
		"Led team, increased revenue by 25%",
		"Designed architecture",
		"- a", "- b", "- c", "- d", "- e", "- f",
	}, "\n")
	in := CheckInput{
		Resume:         resume,
		JobDescription: "Senior lead",
		Semantic: matching.SemanticAnalysis{
			Matches: []matching.ConceptMatch{{Concept: "git", Score: 100}},
		},
		Thesaurus: matching.DefaultThesaurus,
	}

	assert.Empty(t, Suggestions(in))
}

func TestSuggestionsSkipAlignmentWithoutConcepts(t *testing.T) {
	got := Suggestions(CheckInput{Resume: "hello", Thesaurus: matching.DefaultThesaurus})

	for _, s := range got {
		assert.NotEqual(t, CategoryAlignment, s.Category)
		assert.NotEqual(t, CategorySemanticGap, s.Category)
	}
}

func TestStrengths(t *testing.T) {
	assert.Equal(t, []string{fallbackStrength}, Strengths("hello"))

	resume := "M.S. in CS\nEngineering Manager\nAWS Certified\n3 years at A, 2 years at B, 6 months at C\nImproved latency\nSkills: Go"
	got := Strengths(resume)
	require.Len(t, got, 6)
	assert.Equal(t, "Comprehensive educational qualifications demonstrating professional development and expertise", got[0])
	assert.Equal(t, "Well-defined technical skills and competencies clearly articulated", got[5])
}

func TestImprovementAreas(t *testing.T) {
	got := ImprovementAreas("hello")
	require.Len(t, got, 5)
	assert.True(t, strings.HasPrefix(got[0], "Career timeline lacks specificity:"))
	assert.True(t, strings.HasPrefix(got[4], "Phone number missing:"))

	lines := []string{"Jane Doe", "jane@example.com", "555-123-4567", "6 years of backend work"}
	for i := 0; i < 12; i++ {
		lines = append(lines, "• shipped feature")
	}
	assert.Empty(t, ImprovementAreas(strings.Join(lines, "\n")))
}

func TestGapAnalysis(t *testing.T) {
	groups := GapAnalysis([]string{"a", "b", "c", "d", "e", "f", "g"})
	require.Len(t, groups, 2)
	assert.Equal(t, PriorityCritical, groups[0].Priority)
	assert.Equal(t, []string{"a", "b", "c"}, groups[0].Skills)
	assert.Equal(t, "The role requires advanced proficiency in a, b, c. These are core competencies that differentiate competitive candidates. Prioritize building expertise in these areas immediately.", groups[0].Description)
	assert.Equal(t, PriorityHigh, groups[1].Priority)
	assert.Equal(t, []string{"d", "e", "f"}, groups[1].Skills)

	groups = GapAnalysis([]string{"a", "b"})
	require.Len(t, groups, 1)
	assert.Equal(t, PriorityCritical, groups[0].Priority)

	assert.Empty(t, GapAnalysis(nil))
}

func TestLearningPaths(t *testing.T) {
	paths := LearningPaths([]string{"React", "Rust", "sql", "aws"})
	require.Len(t, paths, 3)

	assert.Equal(t, "React", paths[0].Skill)
	assert.Equal(t, "6-10 weeks", paths[0].Timeframe)
	assert.Equal(t, []string{"React.dev", "Udemy", "Frontend Masters"}, paths[0].Platform)

	assert.Equal(t, []string{"Official Documentation", "Udemy", "Coursera"}, paths[1].Resources)
	assert.Equal(t, "4-8 weeks", paths[1].Timeframe)

	assert.Equal(t, "3-6 weeks", paths[2].Timeframe)
}

func TestSuggestProject(t *testing.T) {
	p := SuggestProject("We are an ecommerce startup using React and Node.js on AWS")
	assert.Equal(t, "Build a E-Commerce Platform", p.Title)
	assert.Equal(t, []string{"React", "Node.js", "AWS"}, p.TechStack)
	assert.Equal(t, "Create a comprehensive portfolio project that demonstrates proficiency in the required tech stack: React, Node.js, AWS.", p.Description)
	assert.Len(t, p.Features, 10)
	assert.Equal(t, "8-12 weeks", p.EstimatedDuration)
	assert.True(t, p.Portfolio && p.GithubPublic && p.DemoURL)

	fallback := SuggestProject("")
	assert.Equal(t, "Build a Full-Stack Application", fallback.Title)
	assert.Equal(t, []string{"React", "Node.js", "MongoDB"}, fallback.TechStack)
	assert.Contains(t, fallback.Description, "modern web technologies")
}
