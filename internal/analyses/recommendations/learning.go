package recommendations

import "strings"

const maxLearningPaths = 3

type learningResource struct {
	resources []string
	timeframe string
	platform  []string
}

var curatedLearning = map[string]learningResource{
	"javascript": {[]string{"freeCodeCamp", "MDN Web Docs", "JavaScript.info"}, "4-8 weeks", []string{"Udemy", "Coursera"}},
	"typescript": {[]string{"Official TypeScript Handbook", "freeCodeCamp", "Udemy"}, "2-4 weeks", []string{"TypeScript.org", "Udemy"}},
	"react":      {[]string{"Official React Docs", "freeCodeCamp", "Scrimba"}, "6-10 weeks", []string{"React.dev", "Udemy", "Frontend Masters"}},
	"python":     {[]string{"Python.org", "Real Python", "freeCodeCamp"}, "4-8 weeks", []string{"Udemy", "Coursera"}},
	"aws":        {[]string{"AWS Training Center", "A Cloud Guru", "Linux Academy"}, "8-12 weeks", []string{"AWS Academy", "Udemy"}},
	"docker":     {[]string{"Docker Docs", "Play with Docker", "freeCodeCamp"}, "2-4 weeks", []string{"Docker.com", "Udemy"}},
	"kubernetes": {[]string{"Official Kubernetes Docs", "Linux Academy", "freeCodeCamp"}, "6-10 weeks", []string{"Linux Academy", "Udemy"}},
	"sql":        {[]string{"Mode Analytics SQL", "LeetCode Database", "HackerRank"}, "3-6 weeks", []string{"Mode Analytics", "Udemy"}},
}

var fallbackLearning = learningResource{
	resources: []string{"Official Documentation", "Udemy", "Coursera"},
	timeframe: "4-8 weeks",
	platform:  []string{"Udemy", "Coursera"},
}

// LearningPaths returns a resource plan for each of the first three missing skills. Skills without a
// curated entry get the generic fallback.
func LearningPaths(missingSkills []string) []LearningPath {
	skills := window(missingSkills, 0, maxLearningPaths)
	paths := make([]LearningPath, 0, len(skills))
	for _, skill := range skills {
		res, ok := curatedLearning[strings.ToLower(skill)]
		if !ok {
			res = fallbackLearning
		}
		paths = append(paths, LearningPath{
			Skill:     skill,
			Resources: append([]string(nil), res.resources...),
			Timeframe: res.timeframe,
			Platform:  append([]string(nil), res.platform...),
		})
	}
	return paths
}
