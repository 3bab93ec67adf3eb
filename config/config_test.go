package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, " ", cfg.Delimiter)
	assert.Equal(t, 0.8, cfg.DefaultExactness)
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "delimiter: \"-\"\ndefault_exactness: 0.5\n")

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, "-", cfg.Delimiter)
	assert.Equal(t, 0.5, cfg.DefaultExactness)
}

func TestLoadKeepsDefaultDelimiterWhenUnset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	writeFile(t, path, "default_exactness: 0.9\n")

	cfg, err := Load(path)
	assert.NoError(t, err)
	assert.Equal(t, " ", cfg.Delimiter)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestLoadRules(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	writeFile(t, path, "rules:\n  - abbr: ny\n    full: new york\n  - abbr: ibm\n    full: international business machines\n")

	rows, err := LoadRules(path)
	assert.NoError(t, err)
	assert.Len(t, rows, 2)
	assert.Equal(t, "ny", rows[0].Abbr)
	assert.Equal(t, "new york", rows[0].Full)
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	assert.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}
