package matching

import "strings"

// Lexicon pairs a thesaurus with a flat vocabulary of individual terms. Thesaurus hits are
// canonicalized to the family key; flat terms are reported verbatim.
type Lexicon struct {
	Thesaurus Thesaurus
	Terms     []string
}

// ExtractConcepts returns the concepts found in text, deduplicated. Thesaurus keys come first in
// table order, followed by flat terms in vocabulary order. Matching is literal substring
// containment, so "java" is found inside "javascript".
func (l Lexicon) ExtractConcepts(text string) []string {
	return l.extract(Normalize(text))
}

func (l Lexicon) extract(normalized string) []string {
	found := newOrderedSet(l.Thesaurus.Len() + len(l.Terms))
	for _, f := range l.Thesaurus.families {
		if strings.Contains(normalized, f.Key) || containsAny(normalized, f.Terms) {
			found.add(f.Key)
		}
	}
	for _, term := range l.Terms {
		if strings.Contains(normalized, term) {
			found.add(term)
		}
	}
	return found.slice()
}

// DefaultLexicon is used by the single-resume analyzer.
var DefaultLexicon = Lexicon{
	Thesaurus: DefaultThesaurus,
	Terms:     technicalTerms,
}

// RankerLexicon is used by bulk candidate scoring and carries no flat vocabulary.
var RankerLexicon = Lexicon{
	Thesaurus: RankerThesaurus,
}

// technicalTerms repeats a few entries across groups; extraction collapses them.
// Single letters such as "r" and short words such as "go" match almost any text.
var technicalTerms = []string{
	"javascript", "typescript", "python", "java", "c++", "c#", "go", "rust", "ruby", "php", "r", "scala",
	"react", "vue", "angular", "svelte", "nextjs", "nuxtjs", "gatsby", "ember",
	"nodejs", "express", "django", "flask", "fastapi", "spring", "laravel", "rails",
	"sql", "mongodb", "postgresql", "mysql", "firebase", "dynamodb", "cassandra", "oracle",
	"aws", "azure", "gcp", "heroku", "vercel", "netlify", "digitalocean",
	"docker", "kubernetes", "jenkins", "gitlab", "github", "circleci", "travis",
	"git", "webpack", "vite", "rollup", "parcel", "babel", "npm", "yarn", "pnpm", "maven", "gradle",
	"html", "css", "sass", "less", "bootstrap", "tailwind", "material ui", "ant design",
	"graphql", "rest", "soap", "grpc", "websocket",
	"jwt", "oauth", "oauth2", "saml", "ldap", "kerberos",
	"redis", "rabbitmq", "kafka", "elasticsearch", "memcached", "apache", "nginx",
	"junit", "pytest", "mocha", "jest", "rspec", "cucumber", "selenium",
	"agile", "scrum", "kanban", "jira", "confluence", "asana", "trello",
	"linux", "windows", "macos", "unix", "centos", "ubuntu", "debian",
	"terraform", "ansible", "puppet", "chef", "vagrant",
	"prometheus", "grafana", "datadog", "newrelic", "elk", "splunk",
	"tensorflow", "pytorch", "keras", "scikit-learn", "pandas", "numpy",
	"microservices", "rest api", "graphql", "websocket", "grpc",
	"database", "nosql", "relational", "document", "time-series",
	"authentication", "authorization", "encryption", "ssl", "tls",
	"testing", "unit test", "integration test", "e2e test", "tdd", "bdd",
	"devops", "ci/cd", "continuous integration", "continuous deployment",
	"cloud", "serverless", "iaas", "paas", "saas",
	"architecture", "design pattern", "microservices", "monolith",
	"performance", "scalability", "availability", "reliability",
	"leadership", "management", "mentoring", "coaching",
	"agile", "waterfall", "scrum", "kanban",
	"communication", "documentation", "presentation", "writing",
	"problem solving", "debugging", "optimization",
}
