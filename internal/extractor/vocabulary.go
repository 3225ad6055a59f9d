package extractor

// technicalSkills and softSkills form the built-in vocabulary for the
// test-mode keyword matcher (KeywordExtractor): a deterministic,
// network-free extraction fallback (see DESIGN.md).
var technicalSkills = map[string]bool{
	"python": true, "go": true, "golang": true, "java": true, "javascript": true,
	"typescript": true, "c++": true, "c#": true, "ruby": true, "rust": true,
	"php": true, "swift": true, "kotlin": true, "scala": true, "r": true,

	"react": true, "react.js": true, "vue": true, "vue.js": true, "angular": true,
	"next.js": true, "nuxt": true, "svelte": true, "html": true, "css": true,
	"tailwind": true, "bootstrap": true,

	"node.js": true, "node": true, "express": true, "django": true, "flask": true,
	"fastapi": true, "spring": true, "spring boot": true, "rails": true, ".net": true,

	"postgresql": true, "postgres": true, "mysql": true, "mongodb": true,
	"redis": true, "sqlite": true, "dynamodb": true, "cassandra": true,
	"elasticsearch": true,

	"aws": true, "azure": true, "gcp": true, "kubernetes": true, "k8s": true,
	"docker": true, "terraform": true, "ansible": true, "jenkins": true,
	"ci/cd": true, "github actions": true, "gitlab ci": true,

	"git": true, "graphql": true, "rest": true, "grpc": true, "kafka": true,
	"rabbitmq": true, "microservices": true,

	"tensorflow": true, "pytorch": true, "scikit-learn": true, "pandas": true,
	"numpy": true, "machine learning": true, "deep learning": true, "nlp": true,

	"jest": true, "pytest": true, "junit": true, "selenium": true, "cypress": true,
}

var softSkills = map[string]bool{
	"leadership": true, "communication": true, "teamwork": true,
	"problem solving": true, "problem-solving": true, "collaboration": true,
	"mentoring": true, "mentorship": true, "project management": true,
	"time management": true, "adaptability": true, "critical thinking": true,
	"public speaking": true, "stakeholder management": true,
}
