package changelog

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultOutputDir is where changelogs land, relative to the invocation
// directory (not the inspected repository).
const DefaultOutputDir = "Changelogs"

// WriteError wraps a filesystem failure while persisting a changelog
type WriteError struct {
	Path string
	Err  error
}

// Error returns a description of the failed write
func (e *WriteError) Error() string {
	return fmt.Sprintf("failed to write changelog %s: %v", e.Path, e.Err)
}

// Unwrap returns the underlying filesystem error
func (e *WriteError) Unwrap() error {
	return e.Err
}

// Writer persists changelog documents to a directory
type Writer struct {
	dir string
}

// NewWriter creates a Writer for the given directory, defaulting to
// DefaultOutputDir when empty.
func NewWriter(dir string) *Writer {
	if dir == "" {
		dir = DefaultOutputDir
	}
	return &Writer{dir: dir}
}

// Write persists the document, creating the output directory if needed and
// overwriting any existing file with the same name. It returns the path of
// the written file.
func (w *Writer) Write(doc *Document) (string, error) {
	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return "", &WriteError{Path: w.dir, Err: err}
	}

	path := filepath.Join(w.dir, doc.Filename())
	if err := os.WriteFile(path, []byte(doc.Content), 0644); err != nil {
		return "", &WriteError{Path: path, Err: err}
	}

	return path, nil
}
