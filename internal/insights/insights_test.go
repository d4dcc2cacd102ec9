package insights

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmonteiro/cvmatch/internal/types"
)

func emptyMatch() *types.MatchResult {
	return &types.MatchResult{Score: 0, Matched: []string{}, Missing: []string{}}
}

func TestStrengths_EmptyResumeFallback(t *testing.T) {
	resume := &types.ResumeRecord{FullName: "Ana Souza"}

	strengths := Strengths(resume, emptyMatch())

	require.Len(t, strengths, 1)
	assert.Contains(t, strengths[0], "Análise em andamento")
}

func TestStrengths_MatchedKeywords(t *testing.T) {
	resume := &types.ResumeRecord{FullName: "Ana Souza"}
	match := &types.MatchResult{
		Score:   72,
		Matched: []string{"react", "sql", "docker"},
	}

	strengths := Strengths(resume, match)

	require.GreaterOrEqual(t, len(strengths), 2)
	assert.Contains(t, strengths[0], "72%")
	assert.Contains(t, strengths[1], "react, sql, docker")
}

func TestStrengths_MatchedKeywordsListsAtMostFive(t *testing.T) {
	resume := &types.ResumeRecord{FullName: "Ana Souza"}
	match := &types.MatchResult{
		Score:   90,
		Matched: []string{"react", "sql", "docker", "aws", "git", "python"},
	}

	strengths := Strengths(resume, match)

	assert.Contains(t, strengths[1], "git")
	assert.NotContains(t, strengths[1], "python")
}

func TestStrengths_ExperienceCount(t *testing.T) {
	resume := &types.ResumeRecord{
		FullName: "Ana Souza",
		Experiences: []types.Experience{
			{Role: "Analista"},
			{Role: "Coordenadora"},
		},
	}

	strengths := Strengths(resume, emptyMatch())

	assert.Contains(t, strings.Join(strengths, "\n"), "2 experiência(s) profissional(is)")
}

func TestStrengths_RelevantExperiences(t *testing.T) {
	resume := &types.ResumeRecord{
		FullName: "Ana Souza",
		Experiences: []types.Experience{
			{Role: "Desenvolvedora", Company: "Acme", Description: "Aplicações React em produção"},
			{Role: "Garçonete", Company: "Restaurante"},
		},
	}
	match := &types.MatchResult{Matched: []string{"react"}, Missing: []string{"python"}}

	strengths := Strengths(resume, match)

	assert.Contains(t, strings.Join(strengths, "\n"), "1 experiência(s) relevante(s)")
}

func TestStrengths_SkillVariety(t *testing.T) {
	resume := &types.ResumeRecord{
		FullName: "Ana Souza",
		Skills:   "React, Node, SQL, Docker, AWS, Git",
	}

	strengths := Strengths(resume, emptyMatch())

	assert.Contains(t, strings.Join(strengths, "\n"), "6 habilidades listadas")
}

func TestStrengths_SoftSkills(t *testing.T) {
	resume := &types.ResumeRecord{
		FullName: "Ana Souza",
		Summary:  "Perfil com forte comunicação, proatividade e empatia no trabalho",
	}

	strengths := Strengths(resume, emptyMatch())

	joined := strings.Join(strengths, "\n")
	assert.Contains(t, joined, "Soft skills identificadas")
	assert.Contains(t, joined, "comunicacao")
}

func TestStrengths_SoftSkillsListsAtMostThree(t *testing.T) {
	resume := &types.ResumeRecord{
		FullName: "Ana Souza",
		Summary:  "Comunicação, liderança, proatividade, criatividade e empatia",
	}

	strengths := Strengths(resume, emptyMatch())

	joined := strings.Join(strengths, "\n")
	assert.Contains(t, joined, "comunicacao, lideranca, proatividade")
	assert.NotContains(t, joined, "criatividade")
}

func TestStrengths_EducationCount(t *testing.T) {
	resume := &types.ResumeRecord{
		FullName:  "Ana Souza",
		Education: []types.Education{{Degree: "Bacharelado em ADS"}},
	}

	strengths := Strengths(resume, emptyMatch())

	assert.Contains(t, strings.Join(strengths, "\n"), "1 curso(s) cadastrado(s)")
}

func TestImprovements_MissingKeywords(t *testing.T) {
	resume := fullResume()
	match := &types.MatchResult{Missing: []string{"python", "docker"}}

	improvements := Improvements(resume, match)

	joined := strings.Join(improvements, "\n")
	assert.Contains(t, joined, "python, docker")
	assert.Contains(t, joined, "Habilidades técnicas em demanda")
}

func TestImprovements_MissingNonTechnologyKeywordsSkipTechSentence(t *testing.T) {
	resume := fullResume()
	match := &types.MatchResult{Missing: []string{"vendas", "figma"}}

	improvements := Improvements(resume, match)

	assert.NotContains(t, strings.Join(improvements, "\n"), "Habilidades técnicas em demanda")
}

func TestImprovements_ShortSummary(t *testing.T) {
	resume := fullResume()
	resume.Summary = "Dev júnior"

	improvements := Improvements(resume, emptyMatch())

	joined := strings.Join(improvements, "\n")
	assert.Contains(t, joined, "Expanda seu resumo")
	assert.NotContains(t, joined, "pode ser mais detalhado")
}

func TestImprovements_MediumSummary(t *testing.T) {
	resume := fullResume()
	resume.Summary = strings.Repeat("a", 70)

	improvements := Improvements(resume, emptyMatch())

	joined := strings.Join(improvements, "\n")
	assert.Contains(t, joined, "pode ser mais detalhado")
	assert.NotContains(t, joined, "Expanda seu resumo")
}

func TestImprovements_LongSummaryNoComplaint(t *testing.T) {
	resume := fullResume()

	improvements := Improvements(resume, emptyMatch())

	joined := strings.Join(improvements, "\n")
	assert.NotContains(t, joined, "resumo")
}

func TestImprovements_NoExperience(t *testing.T) {
	resume := fullResume()
	resume.Experiences = nil

	improvements := Improvements(resume, emptyMatch())

	assert.Contains(t, strings.Join(improvements, "\n"), "Adicione suas experiências")
}

func TestImprovements_ShortExperienceDescriptions(t *testing.T) {
	resume := fullResume()
	resume.Experiences = []types.Experience{
		{Role: "Analista", Description: "curta"},
		{Role: "Dev", Description: strings.Repeat("detalhes do trabalho realizado ", 3)},
	}

	improvements := Improvements(resume, emptyMatch())

	assert.Contains(t, strings.Join(improvements, "\n"), "Detalhe melhor 1 experiência(s)")
}

func TestImprovements_NoNumbersInResume(t *testing.T) {
	resume := fullResume()
	resume.Summary = strings.Repeat("texto sem numeração alguma ", 5)
	resume.Experiences = []types.Experience{
		{Role: "Analista", Description: strings.Repeat("atividades gerais do cargo ", 2)},
	}

	improvements := Improvements(resume, emptyMatch())

	assert.Contains(t, strings.Join(improvements, "\n"), "Quantifique seus resultados")
}

func TestImprovements_FewSkills(t *testing.T) {
	resume := fullResume()
	resume.Skills = "React, SQL"

	improvements := Improvements(resume, emptyMatch())

	assert.Contains(t, strings.Join(improvements, "\n"), "pelo menos 3-5 habilidades")
}

func TestImprovements_SomeSkills(t *testing.T) {
	resume := fullResume()
	resume.Skills = "React, SQL, Docker, AWS"

	improvements := Improvements(resume, emptyMatch())

	assert.Contains(t, strings.Join(improvements, "\n"), "mais habilidades relevantes")
}

func TestImprovements_CompleteResumeFallback(t *testing.T) {
	improvements := Improvements(fullResume(), emptyMatch())

	require.Len(t, improvements, 1)
	assert.Contains(t, improvements[0], "Continue aprimorando")
}

// fullResume returns a résumé that triggers no improvement rule on its own.
func fullResume() *types.ResumeRecord {
	return &types.ResumeRecord{
		FullName: "Ana Souza",
		Summary:  "Desenvolvedora full stack com 8 anos de atuação em produtos digitais, especializada em aplicações web escaláveis.",
		Skills:   "React, Node, SQL, Docker, AWS",
		Experiences: []types.Experience{
			{Role: "Desenvolvedora Sênior", Company: "Acme", Description: "Liderou a migração de 12 serviços para a nuvem, reduzindo custos em 30%."},
		},
	}
}
