package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileSourceReadsLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.txt")
	assert.NoError(t, os.WriteFile(path, []byte("new york\nibm\n"), 0o644))

	f := NewFile(path)
	defer f.Close()

	rows, err := f.Rows(context.Background(), "ignored", "ignored")
	assert.NoError(t, err)
	assert.Equal(t, []string{"new york", "ibm"}, rows)
}

func TestFileSourceSkipsBlankLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rows.txt")
	assert.NoError(t, os.WriteFile(path, []byte("new york\n\nibm\n"), 0o644))

	f := NewFile(path)
	rows, err := f.Rows(context.Background(), "ignored", "ignored")
	assert.NoError(t, err)
	assert.Equal(t, []string{"new york", "ibm"}, rows)
}

func TestFileSourceMissingFile(t *testing.T) {
	f := NewFile(filepath.Join(t.TempDir(), "missing.txt"))
	_, err := f.Rows(context.Background(), "t", "c")
	assert.Error(t, err)
}
