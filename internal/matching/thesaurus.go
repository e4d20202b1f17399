package matching

// Family is a canonical concept and the surface terms that count as evidence for it.
type Family struct {
	Key   string   `json:"category"`
	Terms []string `json:"relatedTerms"`
}

// Thesaurus is an ordered, immutable list of concept families. Lookups walk the list in order and
// the first hit wins.
type Thesaurus struct {
	families []Family
}

// NewThesaurus copies families into a Thesaurus.
func NewThesaurus(families ...Family) Thesaurus {
	out := make([]Family, len(families))
	for i, f := range families {
		out[i] = Family{Key: f.Key, Terms: append([]string(nil), f.Terms...)}
	}
	return Thesaurus{families: out}
}

// Len returns the number of families.
func (t Thesaurus) Len() int {
	return len(t.families)
}

// Families returns a copy of the families in table order.
func (t Thesaurus) Families() []Family {
	out := make([]Family, len(t.families))
	for i, f := range t.families {
		out[i] = Family{Key: f.Key, Terms: append([]string(nil), f.Terms...)}
	}
	return out
}

// FamilyOf returns the first family whose key equals term or whose related terms contain it.
func (t Thesaurus) FamilyOf(term string) (Family, bool) {
	for _, f := range t.families {
		if f.Key == term {
			return Family{Key: f.Key, Terms: append([]string(nil), f.Terms...)}, true
		}
		for _, related := range f.Terms {
			if related == term {
				return Family{Key: f.Key, Terms: append([]string(nil), f.Terms...)}, true
			}
		}
	}
	return Family{}, false
}

// CategoryOf returns the family key for term, or fallback when term belongs to no family.
func (t Thesaurus) CategoryOf(term, fallback string) string {
	if f, ok := t.FamilyOf(term); ok {
		return f.Key
	}
	return fallback
}

// DefaultThesaurus backs the single-resume analyzer.
var DefaultThesaurus = NewThesaurus(
	Family{"api development", []string{"rest", "restful", "graphql", "rest api", "api", "endpoint", "web service", "http", "json", "xml", "swagger", "openapi", "api design", "api gateway", "serverless", "lambda"}},
	Family{"frontend development", []string{"react", "vue", "angular", "next", "gatsby", "svelte", "nuxt", "ui", "ux", "user interface", "web design", "html", "css", "responsive design", "user experience", "web components", "jsx", "tsx", "tailwind", "bootstrap", "material ui"}},
	Family{"backend development", []string{"node.js", "nodejs", "express", "django", "flask", "fastapi", "java", "spring", "laravel", "server", "backend", "api server", "business logic", "data processing", "postgresql", "mysql", "database"}},
	Family{"frontend frameworks", []string{"react", "react.js", "vue", "vue.js", "angular", "angularjs", "next.js", "nextjs", "gatsby", "svelte", "nuxt", "nuxt.js", "ember", "backbone"}},
	Family{"backend frameworks", []string{"express", "express.js", "django", "django rest", "flask", "fastapi", "spring", "spring boot", "laravel", "rails", "ruby on rails", "asp.net", "asp.net core"}},
	Family{"mobile development", []string{"react native", "flutter", "ios", "android", "swift", "kotlin", "xamarin", "mobile app", "cross-platform", "native app", "hybrid app", "app development"}},
	Family{"cloud computing", []string{"aws", "azure", "gcp", "google cloud", "cloud", "ec2", "lambda", "s3", "rds", "cloudformation", "cloud infrastructure", "serverless", "cloud services", "ibm cloud", "oracle cloud"}},
	Family{"containerization", []string{"docker", "container", "dockerfile", "registry", "orchestration", "compose", "container registry", "image registry", "containerized application"}},
	Family{"kubernetes", []string{"k8s", "pods", "helm", "deployment", "ingress", "service", "cluster", "orchestration", "container orchestration", "kube", "kubectl"}},
	Family{"devops", []string{"ci/cd", "continuous integration", "continuous deployment", "jenkins", "gitlab ci", "github actions", "pipeline", "automation", "infrastructure", "infrastructure as code", "iac", "terraform", "ansible", "deployment", "monitoring"}},
	Family{"database design", []string{"sql", "nosql", "mongodb", "postgresql", "postgres", "mysql", "database", "schema", "normalization", "indexes", "query optimization", "database design", "relational", "document database", "dynamo db"}},
	Family{"testing", []string{"unit test", "integration test", "jest", "mocha", "pytest", "testing", "qunit", "cucumber", "selenium", "test automation", "tdd", "bdd", "e2e test", "end to end testing", "test driven development"}},
	Family{"version control", []string{"git", "github", "gitlab", "bitbucket", "svn", "version control", "scm", "commit", "branch", "merge", "git flow", "pull request", "merge request"}},
	Family{"agile methodology", []string{"agile", "scrum", "kanban", "sprint", "jira", "confluence", "waterfall", "lean", "xp", "extreme programming", "scrumban", "agile development"}},
	Family{"machine learning", []string{"ml", "machine learning", "deep learning", "neural network", "tensorflow", "pytorch", "scikit-learn", "keras", "ai", "artificial intelligence", "nlp", "computer vision", "model", "training", "prediction"}},
	Family{"data analysis", []string{"data", "analytics", "pandas", "numpy", "matplotlib", "plotly", "excel", "pivot table", "statistical analysis", "data visualization", "data science", "analytics"}},
	Family{"security", []string{"authentication", "authorization", "encryption", "ssl", "https", "jwt", "oauth", "security", "firewall", "intrusion detection", "vulnerability", "penetration testing", "security scanning", "secure coding"}},
	Family{"performance optimization", []string{"optimization", "performance", "caching", "cdn", "lazy loading", "code splitting", "minification", "compression", "performance monitoring", "profiling", "optimization technique"}},
	Family{"microservices", []string{"microservices", "service", "distributed", "service mesh", "istio", "consul", "architecture", "service architecture", "microservice architecture"}},
	Family{"system design", []string{"architecture", "system design", "design pattern", "scalability", "availability", "distributed system", "load balancing", "caching", "partitioning", "architectural pattern"}},
	Family{"documentation", []string{"documentation", "readme", "javadoc", "swagger", "openapi", "technical writing", "api documentation", "wiki", "confluence", "docs"}},
	Family{"communication", []string{"communication", "presentation", "documentation", "technical writing", "speaking", "reporting", "stakeholder management", "collaboration"}},
	Family{"leadership", []string{"leadership", "management", "team lead", "mentor", "coaching", "delegation", "supervision", "team management", "people management"}},
	Family{"problem solving", []string{"problem solving", "analytical", "debugging", "troubleshooting", "critical thinking", "logic", "analytical thinking"}},
	Family{"collaboration", []string{"collaboration", "teamwork", "coordination", "partnership", "cooperation", "cross-functional", "team collaboration"}},
	Family{"web technologies", []string{"html", "css", "javascript", "dom", "web api", "web socket", "rest", "http", "https", "web standards"}},
	Family{"build tools", []string{"webpack", "vite", "rollup", "parcel", "gulp", "grunt", "build", "bundler", "module bundler", "build tool"}},
	Family{"package managers", []string{"npm", "yarn", "pnpm", "pip", "maven", "gradle", "package manager", "dependency management"}},
	Family{"cli development", []string{"cli", "command line", "console", "terminal", "bash", "shell script", "command-line tool", "cli tool"}},
	Family{"rest api", []string{"rest", "restful", "rest api", "http method", "get", "post", "put", "delete", "crud", "endpoint", "resource"}},
	Family{"graphql", []string{"graphql", "apollo", "query", "mutation", "subscription", "schema", "schema design", "query language"}},
	Family{"message queue", []string{"message queue", "kafka", "rabbitmq", "redis", "queue", "pub/sub", "publish subscribe", "asynchronous messaging"}},
	Family{"monitoring", []string{"monitoring", "logging", "prometheus", "grafana", "elk stack", "datadog", "observability", "metrics", "alerting"}},
	Family{"ci-cd pipeline", []string{"ci/cd", "jenkins", "gitlab", "github", "circle ci", "travis", "pipeline", "continuous integration", "continuous deployment", "automation"}},
)

// RankerThesaurus backs bulk candidate scoring. It is coarser than DefaultThesaurus.
var RankerThesaurus = NewThesaurus(
	Family{"frontend", []string{"react", "vue", "angular", "svelte", "html", "css", "sass", "less", "bootstrap", "tailwind", "javascript", "typescript", "responsive", "ui", "ux", "jsx", "tsx"}},
	Family{"backend", []string{"nodejs", "node.js", "python", "java", "spring", "django", "flask", "fastapi", "laravel", "rails", "api", "rest", "graphql", "express"}},
	Family{"database", []string{"sql", "mongodb", "postgresql", "mysql", "firebase", "redis", "nosql", "elasticsearch", "cassandra", "oracle", "mariadb"}},
	Family{"devops", []string{"docker", "kubernetes", "ci/cd", "jenkins", "gitlab", "github actions", "terraform", "ansible", "aws", "gcp", "azure", "automation"}},
	Family{"cloud", []string{"aws", "azure", "gcp", "cloud", "serverless", "lambda", "ec2", "s3", "cloudflare", "heroku"}},
	Family{"testing", []string{"jest", "pytest", "junit", "testing", "unit test", "integration test", "e2e", "test", "mocha", "rspec", "cucumber"}},
	Family{"version control", []string{"git", "github", "gitlab", "bitbucket", "svn", "version control", "scm"}},
	Family{"tools", []string{"webpack", "vite", "babel", "npm", "yarn", "pnpm", "maven", "gradle", "parcel", "rollup"}},
	Family{"communication", []string{"communication", "collaboration", "teamwork", "presentation", "writing", "documentation"}},
	Family{"leadership", []string{"leadership", "management", "mentoring", "coaching", "delegation", "team lead"}},
	Family{"problem solving", []string{"problem solving", "debugging", "optimization", "critical thinking", "analysis", "troubleshooting"}},
	Family{"mobile", []string{"react native", "flutter", "swift", "kotlin", "android", "ios", "mobile development", "xamarin"}},
	Family{"ai ml", []string{"machine learning", "deep learning", "tensorflow", "pytorch", "keras", "scikit-learn", "ai", "nlp", "cv", "artificial intelligence", "data science"}},
	Family{"security", []string{"security", "encryption", "ssl", "tls", "authentication", "authorization", "jwt", "oauth", "penetration testing"}},
)
