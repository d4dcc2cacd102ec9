package schemas_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucasmonteiro/cvmatch/internal/schemas"
)

func resumeSchema(t *testing.T) string {
	t.Helper()
	data, err := os.ReadFile("resume.schema.json")
	require.NoError(t, err)
	return string(data)
}

func TestResumeSchema_AcceptsMinimalResume(t *testing.T) {
	err := schemas.ValidateJSONString(resumeSchema(t), `{"full_name": "Ana Souza"}`)
	assert.NoError(t, err)
}

func TestResumeSchema_AcceptsFullResume(t *testing.T) {
	doc := `{
		"full_name": "Ana Souza",
		"title": "Desenvolvedora Full Stack",
		"summary": "Resumo profissional",
		"skills": "React, Node, SQL",
		"experiences": [
			{"role": "Desenvolvedora", "company": "Acme", "start_date": "2020-01", "end_date": "2023-06", "location": "São Paulo", "description": "APIs REST"}
		],
		"education": [
			{"degree": "Bacharelado em ADS", "school": "USP", "description": "Ênfase em dados"}
		],
		"languages": [
			{"name": "Inglês", "level": "Avançado"}
		]
	}`

	assert.NoError(t, schemas.ValidateJSONString(resumeSchema(t), doc))
}

func TestResumeSchema_RejectsMissingFullName(t *testing.T) {
	err := schemas.ValidateJSONString(resumeSchema(t), `{"title": "Desenvolvedora"}`)
	assert.Error(t, err)
}

func TestResumeSchema_RejectsUnknownField(t *testing.T) {
	err := schemas.ValidateJSONString(resumeSchema(t), `{"full_name": "Ana", "salario": 1000}`)
	assert.Error(t, err)
}

func TestResumeSchema_RejectsExperienceWithoutRole(t *testing.T) {
	doc := `{"full_name": "Ana", "experiences": [{"company": "Acme"}]}`
	assert.Error(t, schemas.ValidateJSONString(resumeSchema(t), doc))
}

func TestResumeSchema_RejectsLanguageWithoutName(t *testing.T) {
	doc := `{"full_name": "Ana", "languages": [{"level": "Básico"}]}`
	assert.Error(t, schemas.ValidateJSONString(resumeSchema(t), doc))
}
