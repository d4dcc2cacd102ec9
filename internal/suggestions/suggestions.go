// Package suggestions turns match results into prioritized, actionable items.
package suggestions

import (
	"strings"
	"unicode/utf8"

	"github.com/lucasmonteiro/cvmatch/internal/dictionary"
	"github.com/lucasmonteiro/cvmatch/internal/types"
)

// summaryOptimizedLen is the summary length at which the summary suggestion
// stops firing.
const summaryOptimizedLen = 100

// Build produces the ordered suggestion list for a résumé given the full job
// keyword list and the missing subset. Suggestions are appended in a fixed
// generation order (skills, summary, experience, keywords); priorities affect
// display only.
func Build(resume *types.ResumeRecord, jobKeywords, missingKeywords []string) []types.Suggestion {
	suggestions := []types.Suggestion{}

	if skillGaps := hardSkillGaps(missingKeywords); len(skillGaps) > 0 {
		suggestions = append(suggestions, types.Suggestion{
			Type:        types.SuggestionSkill,
			Title:       "Adicione habilidades em demanda",
			Description: "A vaga pede: " + strings.Join(firstN(skillGaps, 5), ", "),
			Action:      "Adicionar às habilidades",
			Priority:    types.PriorityHigh,
		})
	}

	if len(missingKeywords) > 0 && utf8.RuneCountInString(resume.Summary) < summaryOptimizedLen {
		suggestions = append(suggestions, types.Suggestion{
			Type:        types.SuggestionSummary,
			Title:       "Otimize seu resumo profissional",
			Description: "Inclua palavras-chave da vaga no resumo para passar por filtros automáticos de recrutamento",
			Action:      "Editar resumo",
			Priority:    types.PriorityMedium,
		})
	}

	if len(resume.Experiences) == 0 {
		suggestions = append(suggestions, types.Suggestion{
			Type:        types.SuggestionExperience,
			Title:       "Adicione experiências profissionais",
			Description: "Recrutadores valorizam um histórico profissional detalhado",
			Action:      "Adicionar experiência",
			Priority:    types.PriorityHigh,
		})
	}

	if top := firstN(missingKeywords, 3); len(top) > 0 {
		suggestions = append(suggestions, types.Suggestion{
			Type:        types.SuggestionKeyword,
			Title:       "Palavras-chave mais importantes",
			Description: "Estas palavras aparecem na vaga mas não no seu currículo: " + strings.Join(top, ", "),
			Action:      "Revisar currículo",
			Priority:    types.PriorityHigh,
		})
	}

	return suggestions
}

// hardSkillGaps intersects the missing keywords with the technology, design
// and marketing categories, preserving missing-keyword order.
func hardSkillGaps(missingKeywords []string) []string {
	skillSet := make(map[string]bool)
	for _, category := range []dictionary.Category{
		dictionary.CategoryTechnology,
		dictionary.CategoryDesign,
		dictionary.CategoryMarketing,
	} {
		for _, keyword := range dictionary.Keywords(category) {
			skillSet[keyword] = true
		}
	}

	var gaps []string
	for _, keyword := range missingKeywords {
		if skillSet[keyword] {
			gaps = append(gaps, keyword)
		}
	}
	return gaps
}

// firstN returns at most the first n entries of items.
func firstN(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
