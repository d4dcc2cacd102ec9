// Package insights derives human-readable strengths and improvements from a
// résumé and its match result.
//
// Each rule appends at most one sentence and rules run in a fixed order, so
// the output is deterministic for identical input. When no rule fires, a
// single fallback sentence is emitted so the caller always has something to
// display.
package insights

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/lucasmonteiro/cvmatch/internal/dictionary"
	"github.com/lucasmonteiro/cvmatch/internal/normalize"
	"github.com/lucasmonteiro/cvmatch/internal/types"
)

// Summary length tiers (in characters) for the improvement rules.
const (
	summaryMinLen  = 50
	summaryGoodLen = 100
)

// minExperienceDescriptionLen is the description length below which an
// experience entry counts as under-detailed.
const minExperienceDescriptionLen = 30

// Strengths builds the ordered list of strength sentences for a résumé given
// its match result.
func Strengths(resume *types.ResumeRecord, match *types.MatchResult) []string {
	var strengths []string

	if len(match.Matched) > 0 {
		strengths = append(strengths, fmt.Sprintf("Seu currículo tem %d%% de compatibilidade com a vaga", match.Score))

		top := firstN(match.Matched, 5)
		if len(top) > 0 {
			strengths = append(strengths, "Palavras-chave da vaga encontradas: "+strings.Join(top, ", "))
		}
	}

	if len(resume.Experiences) > 0 {
		strengths = append(strengths, fmt.Sprintf("%d experiência(s) profissional(is) cadastrada(s)", len(resume.Experiences)))

		if relevant := countRelevantExperiences(resume, match); relevant > 0 {
			strengths = append(strengths, fmt.Sprintf("%d experiência(s) relevante(s) para esta vaga", relevant))
		}
	}

	if skills := resume.SkillList(); len(skills) > 5 {
		strengths = append(strengths, fmt.Sprintf("Boa variedade de habilidades (%d habilidades listadas)", len(skills)))
	}

	if found := findSoftSkills(resume); len(found) > 0 {
		strengths = append(strengths, "Soft skills identificadas: "+strings.Join(firstN(found, 3), ", "))
	}

	if len(resume.Education) > 0 {
		strengths = append(strengths, fmt.Sprintf("Formação acadêmica: %d curso(s) cadastrado(s)", len(resume.Education)))
	}

	if len(strengths) == 0 {
		strengths = append(strengths, "Análise em andamento - adicione mais informações ao currículo")
	}

	return strengths
}

// Improvements builds the ordered list of improvement sentences for a résumé
// given its match result.
func Improvements(resume *types.ResumeRecord, match *types.MatchResult) []string {
	var improvements []string

	if len(match.Missing) > 0 {
		improvements = append(improvements, "Considere adicionar estas palavras-chave ao currículo: "+strings.Join(firstN(match.Missing, 5), ", "))

		if tech := technologyKeywords(match.Missing); len(tech) > 0 {
			improvements = append(improvements, "Habilidades técnicas em demanda na vaga: "+strings.Join(firstN(tech, 3), ", "))
		}
	}

	switch summaryLen := utf8.RuneCountInString(resume.Summary); {
	case summaryLen < summaryMinLen:
		improvements = append(improvements, "Expanda seu resumo profissional para pelo menos 50 caracteres")
	case summaryLen < summaryGoodLen:
		improvements = append(improvements, "Seu resumo pode ser mais detalhado para destacar suas qualificações")
	}

	if len(resume.Experiences) == 0 {
		improvements = append(improvements, "Adicione suas experiências profissionais ao currículo")
	} else if short := countShortDescriptions(resume.Experiences); short > 0 {
		improvements = append(improvements, fmt.Sprintf("Detalhe melhor %d experiência(s) com descrições mais completas", short))
	}

	if !strings.ContainsAny(resume.FlatText(), "0123456789") {
		improvements = append(improvements, "Quantifique seus resultados com números e métricas")
	}

	switch skillCount := len(resume.SkillList()); {
	case skillCount < 3:
		improvements = append(improvements, "Adicione pelo menos 3-5 habilidades principais")
	case skillCount < 5:
		improvements = append(improvements, "Considere adicionar mais habilidades relevantes para a vaga")
	}

	if len(improvements) == 0 {
		improvements = append(improvements, "Continue aprimorando seu currículo")
	}

	return improvements
}

// countRelevantExperiences counts experience entries whose flattened text
// contains at least one job keyword (matched or missing).
func countRelevantExperiences(resume *types.ResumeRecord, match *types.MatchResult) int {
	jobKeywords := make([]string, 0, len(match.Matched)+len(match.Missing))
	jobKeywords = append(jobKeywords, match.Matched...)
	jobKeywords = append(jobKeywords, match.Missing...)

	count := 0
	for _, exp := range resume.Experiences {
		text := normalize.Text(exp.Role + " " + exp.Company + " " + exp.Description)
		for _, keyword := range jobKeywords {
			if normalized := normalize.Text(keyword); normalized != "" && strings.Contains(text, normalized) {
				count++
				break
			}
		}
	}
	return count
}

// findSoftSkills returns the soft-skill terms present in the normalized résumé
// text, in dictionary order.
func findSoftSkills(resume *types.ResumeRecord) []string {
	text := normalize.Text(resume.FlatText())

	var found []string
	for _, skill := range dictionary.SoftSkills() {
		if strings.Contains(text, skill) {
			found = append(found, skill)
		}
	}
	return found
}

// countShortDescriptions counts experience entries with an absent or
// under-detailed description.
func countShortDescriptions(experiences []types.Experience) int {
	count := 0
	for _, exp := range experiences {
		if utf8.RuneCountInString(exp.Description) < minExperienceDescriptionLen {
			count++
		}
	}
	return count
}

// technologyKeywords filters keywords down to those in the technology
// category, preserving order.
func technologyKeywords(keywords []string) []string {
	techSet := make(map[string]bool)
	for _, keyword := range dictionary.Keywords(dictionary.CategoryTechnology) {
		techSet[keyword] = true
	}

	var tech []string
	for _, keyword := range keywords {
		if techSet[keyword] {
			tech = append(tech, keyword)
		}
	}
	return tech
}

// firstN returns at most the first n entries of items.
func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
