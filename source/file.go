package source

import (
	"bufio"
	"context"
	"fmt"
	"os"
)

// FileSource is a pseudo RowSource backed by a plain text file, one row per
// line. It ignores the table argument and treats column as a label only,
// so ad hoc corpora can be fed to the core without a database.
type FileSource struct {
	path string
}

// NewFile returns a FileSource reading rows from path.
func NewFile(path string) *FileSource {
	return &FileSource{path: path}
}

func (f *FileSource) Rows(ctx context.Context, table, column string) ([]string, error) {
	file, err := os.Open(f.path)
	if err != nil {
		return nil, fmt.Errorf("source: opening %q: %w", f.path, err)
	}
	defer file.Close()

	var out []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return out, scanner.Err()
}

func (f *FileSource) Close() error {
	return nil
}
