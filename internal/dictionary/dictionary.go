// Package dictionary holds the static keyword vocabulary used by the analysis engine.
//
// Keywords are grouped by market category and stored in their canonical form:
// lower-case, diacritics already stripped, so they can be compared directly
// against normalized text. The tables are hand-curated for the Brazilian job
// market (Portuguese terms with embedded English technology names) and are
// never mutated at runtime; extending the vocabulary means editing this file.
package dictionary

// Category identifies a group of related dictionary keywords.
type Category string

// Dictionary categories, in the fixed iteration order used by extraction.
const (
	CategoryTechnology Category = "technology"
	CategoryDesign     Category = "design"
	CategoryMarketing  Category = "marketing"
	CategorySales      Category = "sales"
	CategoryManagement Category = "management"
	CategoryGeneral    Category = "general"
)

// CategoryKeywords pairs a category with its canonical keyword list.
type CategoryKeywords struct {
	Category Category
	Keywords []string
}

var categories = []CategoryKeywords{
	{CategoryTechnology, []string{
		"javascript", "typescript", "python", "java", "php", "ruby",
		"react", "angular", "vue", "node", "sql", "nosql", "mongodb",
		"postgresql", "mysql", "docker", "kubernetes", "aws", "azure",
		"git", "api", "rest", "graphql", "html", "css", "linux",
		"devops", "microsservicos", "automacao", "cloud",
	}},
	{CategoryDesign, []string{
		"figma", "photoshop", "illustrator", "ux ui", "design grafico",
		"prototipagem", "wireframe", "design system", "sketch",
		"motion design", "identidade visual", "tipografia",
	}},
	{CategoryMarketing, []string{
		"marketing digital", "seo", "google ads", "facebook ads",
		"redes sociais", "copywriting", "inbound marketing",
		"email marketing", "google analytics", "crm", "trafego pago",
		"branding", "growth",
	}},
	{CategorySales, []string{
		"vendas", "negociacao", "prospeccao", "funil de vendas",
		"inside sales", "b2b", "b2c", "pos venda", "fechamento",
		"metas", "relacionamento com cliente",
	}},
	{CategoryManagement, []string{
		"gestao", "lideranca", "gestao de projetos", "scrum", "kanban",
		"metodologias ageis", "okr", "gestao de equipes",
		"planejamento estrategico", "orcamento", "kpi",
	}},
	{CategoryGeneral, []string{
		"comunicacao", "trabalho em equipe", "proatividade",
		"organizacao", "criatividade", "resolucao de problemas",
		"pensamento critico", "adaptabilidade", "colaboracao",
		"foco em resultados",
	}},
}

// synonyms maps canonical keywords to alternate surface forms: abbreviations,
// spelling variants and related product names. Synonyms resolve to the
// canonical keyword during matching and are never surfaced in output.
var synonyms = map[string][]string{
	"javascript":             {"js", "java script", "ecmascript"},
	"typescript":             {"ts"},
	"node":                   {"nodejs", "node.js"},
	"react":                  {"reactjs", "react.js", "react native"},
	"vue":                    {"vuejs", "vue.js"},
	"angular":                {"angularjs"},
	"python":                 {"django", "flask"},
	"postgresql":             {"postgres"},
	"mongodb":                {"mongo"},
	"kubernetes":             {"k8s"},
	"aws":                    {"amazon web services"},
	"ux ui":                  {"ux/ui", "ui/ux", "user experience", "experiencia do usuario"},
	"design grafico":         {"designer grafico"},
	"marketing digital":      {"mkt digital", "marketing online"},
	"seo":                    {"otimizacao para buscadores", "search engine optimization"},
	"redes sociais":          {"social media", "midias sociais"},
	"google ads":             {"adwords", "google adwords"},
	"vendas":                 {"comercial", "vendedor"},
	"negociacao":             {"negociar", "negociador"},
	"prospeccao":             {"prospectar", "prospeccao de clientes"},
	"lideranca":              {"lider", "liderar", "gestao de pessoas"},
	"gestao de projetos":     {"gerenciamento de projetos", "project management"},
	"metodologias ageis":     {"agile", "metodologia agil"},
	"scrum":                  {"scrum master"},
	"comunicacao":            {"comunicativo", "boa comunicacao"},
	"trabalho em equipe":     {"trabalhar em equipe", "espirito de equipe"},
	"resolucao de problemas": {"resolver problemas", "solucao de problemas"},
}

// stopWords are common Portuguese words and job-posting boilerplate that must
// never survive extraction as keywords.
var stopWords = map[string]bool{
	"que": true, "com": true, "para": true, "por": true, "uma": true,
	"como": true, "mais": true, "mas": true, "dos": true, "das": true,
	"nos": true, "nas": true, "pelo": true, "pela": true, "ser": true,
	"ter": true, "sera": true, "area": true, "vaga": true, "vagas": true,
	"empresa": true, "buscamos": true, "procuramos": true,
	"profissional": true, "pessoa": true, "candidato": true,
	"conhecimento": true, "conhecimentos": true, "habilidade": true,
	"habilidades": true, "requisito": true, "requisitos": true,
	"desejavel": true, "diferencial": true, "necessario": true,
	"atividades": true, "responsabilidades": true, "beneficios": true,
	"salario": true,
}

// softSkills lists the soft-skill terms the insight generator looks for in
// résumé text, in canonical (normalized) form.
var softSkills = []string{
	"comunicacao", "lideranca", "trabalho em equipe", "proatividade",
	"organizacao", "criatividade", "resolucao de problemas",
	"pensamento critico", "adaptabilidade", "flexibilidade", "empatia",
	"colaboracao", "inteligencia emocional", "gestao de tempo",
	"negociacao", "resiliencia", "autonomia", "aprendizado continuo",
}

// educationLevels lists education-level terms recognized by extraction, in
// their display spelling.
var educationLevels = []string{
	"superior", "graduação", "pós-graduação", "mestrado", "doutorado",
	"técnico", "tecnólogo",
}

// Categories returns every category with its canonical keyword list, in the
// fixed extraction order. Callers must not modify the returned slices.
func Categories() []CategoryKeywords {
	return categories
}

// Keywords returns the canonical keywords of a single category, or nil for an
// unknown category.
func Keywords(c Category) []string {
	for _, ck := range categories {
		if ck.Category == c {
			return ck.Keywords
		}
	}
	return nil
}

// SynonymsOf returns the alternate surface forms of a canonical keyword.
// Keywords without synonym entries (including non-canonical strings) yield nil.
func SynonymsOf(keyword string) []string {
	return synonyms[keyword]
}

// IsStopWord reports whether a normalized word is job-posting boilerplate.
func IsStopWord(word string) bool {
	return stopWords[word]
}

// SoftSkills returns the soft-skill terms in canonical form.
func SoftSkills() []string {
	return softSkills
}

// EducationLevels returns the recognized education-level terms.
func EducationLevels() []string {
	return educationLevels
}
