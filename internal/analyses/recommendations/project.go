package recommendations

import (
	"fmt"
	"strings"

	"career-backend/internal/matching"
)

type techPattern struct {
	tech     string
	patterns []string
}

var techPatterns = []techPattern{
	{"React", []string{"react", "component", "jsx", "hooks"}},
	{"Node.js", []string{"nodejs", "node.js", "express", "backend"}},
	{"Python", []string{"python", "django", "flask"}},
	{"AWS", []string{"aws", "s3", "lambda", "cloud"}},
	{"Docker", []string{"docker", "container", "kubernetes"}},
}

type projectArchetype struct {
	keyword string
	name    string
}

// First keyword found in the job description decides the archetype.
var projectArchetypes = []projectArchetype{
	{"ecommerce", "E-Commerce Platform"},
	{"social", "Social Media Application"},
	{"saas", "SaaS Application"},
	{"analytics", "Analytics Dashboard"},
}

const defaultArchetype = "Full-Stack Application"

var projectFeatures = []string{
	"User authentication and authorization",
	"Real-time data processing",
	"Responsive UI/UX design",
	"RESTful API design",
	"Database design and optimization",
	"Error handling and logging",
	"Unit and integration testing",
	"CI/CD pipeline implementation",
	"Cloud deployment (AWS/Azure/GCP)",
	"Performance optimization",
}

var defaultTechStack = []string{"React", "Node.js", "MongoDB"}

// SuggestProject proposes a portfolio project whose archetype and stack are sniffed from the job
// description.
func SuggestProject(jobDescription string) ProjectSuggestion {
	job := matching.Normalize(jobDescription)

	stack := make([]string, 0, len(techPatterns))
	for _, tp := range techPatterns {
		for _, p := range tp.patterns {
			if strings.Contains(job, p) {
				stack = append(stack, tp.tech)
				break
			}
		}
	}

	archetype := defaultArchetype
	for _, a := range projectArchetypes {
		if strings.Contains(job, a.keyword) {
			archetype = a.name
			break
		}
	}

	described := "modern web technologies"
	if len(stack) > 0 {
		described = strings.Join(stack, ", ")
	} else {
		stack = append(stack, defaultTechStack...)
	}

	return ProjectSuggestion{
		Title:             "Build a " + archetype,
		Description:       fmt.Sprintf("Create a comprehensive portfolio project that demonstrates proficiency in the required tech stack: %s.", described),
		Features:          append([]string(nil), projectFeatures...),
		TechStack:         stack,
		EstimatedDuration: "8-12 weeks",
		Portfolio:         true,
		GithubPublic:      true,
		DemoURL:           true,
	}
}
