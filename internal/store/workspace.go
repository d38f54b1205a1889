package store

import (
	"fmt"
	"os"
	"path/filepath"
)

// scriptMode makes the generated script directly executable.
const scriptMode os.FileMode = 0o755

// Workspace reads dump files and writes the generated script under dir.
type Workspace struct {
	dir string
}

func NewWorkspace(dir string) *Workspace { return &Workspace{dir: dir} }

func (w *Workspace) resolve(path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(w.dir, path)
}

// ReadDump returns the raw text of the dump file at path.
func (w *Workspace) ReadDump(path string) (string, error) {
	data, err := os.ReadFile(w.resolve(path))
	if err != nil {
		return "", fmt.Errorf("read dump %s: %w", path, err)
	}
	return string(data), nil
}

// WriteScript writes text to path, executable.
func (w *Workspace) WriteScript(path string, text string) error {
	if err := os.WriteFile(w.resolve(path), []byte(text), scriptMode); err != nil {
		return fmt.Errorf("write script %s: %w", path, err)
	}
	return nil
}
