package matching

import "strings"

// SkillSet partitions skills found in a text into technical and soft buckets.
type SkillSet struct {
	Technical []string `json:"technical"`
	Soft      []string `json:"soft"`
}

// All returns technical skills followed by soft skills.
func (s SkillSet) All() []string {
	out := make([]string, 0, len(s.Technical)+len(s.Soft))
	out = append(out, s.Technical...)
	return append(out, s.Soft...)
}

// SkillGap compares the skills a job asks for with the skills a resume shows.
type SkillGap struct {
	MissingSkills   []string `json:"missingSkills"`
	MatchedSkills   []string `json:"matchedSkills"`
	MatchPercentage int      `json:"matchPercentage"`
}

// SkillVocabulary is a pair of disjoint term lists.
type SkillVocabulary struct {
	Technical []string
	Soft      []string
}

// Extract returns every vocabulary term that occurs in text, in vocabulary order and without
// repeats. Empty text yields empty, non-nil buckets.
func (v SkillVocabulary) Extract(text string) SkillSet {
	normalized := Normalize(text)
	return SkillSet{
		Technical: foundTerms(normalized, v.Technical),
		Soft:      foundTerms(normalized, v.Soft),
	}
}

func foundTerms(normalized string, vocabulary []string) []string {
	found := newOrderedSet(len(vocabulary))
	for _, term := range vocabulary {
		if strings.Contains(normalized, term) {
			found.add(term)
		}
	}
	return found.slice()
}

// IdentifySkillGap lists job skills absent from the resume and job technical skills present in it.
// MatchPercentage covers technical skills only and is 0 when the job names none.
func IdentifySkillGap(resume, job SkillSet) SkillGap {
	have := newOrderedSet(len(resume.Technical) + len(resume.Soft))
	for _, s := range resume.All() {
		have.add(s)
	}
	missing := make([]string, 0)
	for _, s := range job.All() {
		if !have.has(s) {
			missing = append(missing, s)
		}
	}

	_, matched := CompareTechnical(resume, job)

	pct := 0
	if len(job.Technical) > 0 {
		pct = roundHalfUp(float64(len(matched)) / float64(len(job.Technical)) * 100)
	}
	return SkillGap{
		MissingSkills:   missing,
		MatchedSkills:   matched,
		MatchPercentage: pct,
	}
}

// CompareTechnical splits the job's technical skills into those missing from and present in the
// resume, preserving job order.
func CompareTechnical(resume, job SkillSet) (missing, present []string) {
	have := make(map[string]struct{}, len(resume.Technical))
	for _, s := range resume.Technical {
		have[s] = struct{}{}
	}
	missing = make([]string, 0)
	present = make([]string, 0)
	for _, s := range job.Technical {
		if _, ok := have[s]; ok {
			present = append(present, s)
		} else {
			missing = append(missing, s)
		}
	}
	return missing, present
}

// AnalyzerSkills is the vocabulary of the single-resume analyzer.
var AnalyzerSkills = SkillVocabulary{
	Technical: []string{
		"javascript", "typescript", "python", "java", "c++", "react", "vue", "angular", "node.js",
		"express", "django", "flask", "sql", "mongodb", "aws", "azure", "docker", "kubernetes", "git",
		"rest api", "graphql", "html", "css", "tailwind", "bootstrap", "webpack", "vite", "jest",
		"testing", "ci/cd", "jenkins", "github actions", "terraform", "ansible", "microservices",
		"agile", "scrum", "linux", "windows", "mac", "mac os", "devops", "cloud", "api",
		"web development", "full stack", "frontend", "backend", "database", "machine learning",
		"artificial intelligence", "data analysis", "data science", "deep learning", "neural network",
		"tensorflow", "pytorch", "pandas", "numpy",
	},
	Soft: []string{
		"communication", "leadership", "problem solving", "team work", "collaboration",
		"project management", "critical thinking", "time management", "attention to detail",
		"creativity", "adaptability", "work ethic", "accountability",
	},
}

// RankerSkills is the vocabulary of bulk candidate scoring.
var RankerSkills = SkillVocabulary{
	Technical: []string{
		"javascript", "typescript", "python", "java", "react", "vue", "angular", "node.js", "express",
		"django", "flask", "sql", "mongodb", "aws", "azure", "docker", "kubernetes", "git", "rest api",
		"graphql", "html", "css", "devops", "ci/cd", "jenkins", "terraform", "ansible", "kafka",
		"redis", "testing", "jest", "pytest", "agile", "scrum", "machine learning",
	},
	Soft: []string{
		"communication", "leadership", "problem solving", "teamwork", "project management",
		"critical thinking", "time management",
	},
}
