package analyzer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmonteiro/cvmatch/internal/dictionary"
	"github.com/lucasmonteiro/cvmatch/internal/types"
)

const devJobDescription = `Buscamos Desenvolvedor Full Stack com experiência em React, Node.js e SQL.
Requisitos: conhecimento em Docker, AWS e metodologias ágeis.
Desejável: Python e liderança de equipe.
Mínimo de 3 anos de experiência na área.`

func devResume() *types.ResumeRecord {
	return &types.ResumeRecord{
		FullName: "Ana Souza",
		Title:    "Desenvolvedora Full Stack",
		Summary:  "Desenvolvedora com 5 anos de experiência comprovada em aplicações web usando React e Node.",
		Skills:   "React, Node, SQL, Docker, Git",
		Experiences: []types.Experience{
			{
				Role:        "Desenvolvedora Pleno",
				Company:     "Acme Tecnologia",
				Description: "Construção de APIs REST e telas em React, com deploy em containers Docker.",
			},
		},
	}
}

func TestAnalyze_ShortJobDescription(t *testing.T) {
	analysis := Analyze(devResume(), "vaga de dev")

	assert.Equal(t, 0, analysis.MatchScore)
	assert.Empty(t, analysis.MatchedKeywords)
	assert.Empty(t, analysis.MissingKeywords)
	assert.Empty(t, analysis.Strengths)
	assert.Empty(t, analysis.Suggestions)
	require.Len(t, analysis.Improvements, 1)
	assert.Equal(t, "Descrição da vaga muito curta. Cole o texto completo da vaga para uma análise precisa.", analysis.Improvements[0])
}

func TestAnalyze_WhitespacePaddingDoesNotCountTowardLength(t *testing.T) {
	padded := "   \n\t  vaga de dev   \n  "

	analysis := Analyze(devResume(), padded)

	assert.Equal(t, 0, analysis.MatchScore)
	require.Len(t, analysis.Improvements, 1)
	assert.Contains(t, analysis.Improvements[0], "muito curta")
}

func TestAnalyze_DeveloperScenario(t *testing.T) {
	analysis := Analyze(devResume(), devJobDescription)

	assert.Greater(t, analysis.MatchScore, 0)
	assert.LessOrEqual(t, analysis.MatchScore, 100)

	assert.Contains(t, analysis.MatchedKeywords, "react")
	assert.Contains(t, analysis.MatchedKeywords, "sql")
	assert.Contains(t, analysis.MatchedKeywords, "docker")
	assert.Contains(t, analysis.MissingKeywords, "python")

	assert.NotEmpty(t, analysis.Strengths)
	assert.NotEmpty(t, analysis.Suggestions)
}

func TestAnalyze_ReportSlicesAreNeverNil(t *testing.T) {
	resume := &types.ResumeRecord{FullName: "Ana Souza"}

	analysis := Analyze(resume, devJobDescription)

	assert.NotNil(t, analysis.MatchedKeywords)
	assert.NotNil(t, analysis.MissingKeywords)
	assert.NotNil(t, analysis.Strengths)
	assert.NotNil(t, analysis.Improvements)
	assert.NotNil(t, analysis.Suggestions)
}

func TestAnalyze_MissingKeywordsSurfacedAtMost15(t *testing.T) {
	// A job text containing every dictionary keyword against an empty résumé
	// misses all of them; the report shows only the first 15.
	resume := &types.ResumeRecord{FullName: "Ana Souza"}

	analysis := Analyze(resume, allDictionaryText())

	assert.Equal(t, 0, analysis.MatchScore)
	assert.Empty(t, analysis.MatchedKeywords)
	assert.Len(t, analysis.MissingKeywords, 15)
}

func TestAnalyze_MatchedKeywordsSurfacedAtMost20(t *testing.T) {
	text := allDictionaryText()
	resume := &types.ResumeRecord{FullName: "Ana Souza", Summary: text}

	analysis := Analyze(resume, text)

	assert.Equal(t, 100, analysis.MatchScore)
	assert.Len(t, analysis.MatchedKeywords, 20)
	assert.Empty(t, analysis.MissingKeywords)
}

func TestAnalyze_Deterministic(t *testing.T) {
	first := Analyze(devResume(), devJobDescription)
	second := Analyze(devResume(), devJobDescription)

	assert.Equal(t, first, second)
}

func TestAnalyze_DesignScenario(t *testing.T) {
	job := `Procuramos Designer de Produto com domínio de Figma e noções de UX/UI.
Requisitos: portfólio com projetos de interface, experiência com prototipação.`
	resume := &types.ResumeRecord{
		FullName: "Bruno Lima",
		Title:    "Designer",
		Skills:   "Figma, Photoshop",
	}

	analysis := Analyze(resume, job)

	assert.Contains(t, analysis.MatchedKeywords, "figma")
	assert.Contains(t, analysis.MissingKeywords, "ux ui")
}

func allDictionaryText() string {
	var sb strings.Builder
	for _, ck := range dictionary.Categories() {
		for _, keyword := range ck.Keywords {
			sb.WriteString(keyword)
			sb.WriteString(". ")
		}
	}
	return sb.String()
}
