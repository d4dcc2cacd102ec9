package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `{"resume": "curriculo.json", "job_url": "https://empresa.gupy.io/jobs/1", "port": 9090, "verbose": true}`)

	cfg, err := LoadConfig(path)

	require.NoError(t, err)
	assert.Equal(t, "curriculo.json", cfg.Resume)
	assert.Equal(t, "https://empresa.gupy.io/jobs/1", cfg.JobURL)
	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfig(t, `{not json`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestValidate_JobAndJobURLAreExclusive(t *testing.T) {
	jobPath := writeConfig(t, "texto da vaga")

	cfg := &Config{Job: jobPath, JobURL: "https://example.com/vaga"}
	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "mutually exclusive")
}

func TestValidate_PortRange(t *testing.T) {
	assert.Error(t, (&Config{Port: -1}).Validate())
	assert.Error(t, (&Config{Port: 70000}).Validate())
	assert.NoError(t, (&Config{Port: 8080}).Validate())
}

func TestValidate_ResumeFileMustExist(t *testing.T) {
	cfg := &Config{Resume: filepath.Join(t.TempDir(), "nope.json")}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "resume file not found")
}

func TestValidate_JobFileMustExist(t *testing.T) {
	cfg := &Config{Job: filepath.Join(t.TempDir(), "nope.txt")}

	err := cfg.Validate()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "job file not found")
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := &Config{Resume: "meu.json"}
	defaults := Config{Resume: "padrao.json", Job: "vaga.txt", Port: 9000}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "meu.json", merged.Resume)
	assert.Equal(t, "vaga.txt", merged.Job)
	assert.Equal(t, 9000, merged.Port)
}

func TestMergeWithDefaults_PortFallsBackTo8080(t *testing.T) {
	merged := (&Config{}).MergeWithDefaults(Config{})
	assert.Equal(t, 8080, merged.Port)
}
