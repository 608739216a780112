package dir

import (
	"os"
	"path/filepath"
)

// Writer implements schematic.Writer interface for schematic directories.
type Writer struct {
	rootDir string
}

// NewWriter creates a new Writer placing one .msch file per schematic
// under the given root directory.
func NewWriter(rootDir string) (*Writer, error) {
	if err := os.MkdirAll(rootDir, 0755); err != nil {
		return nil, err
	}
	return &Writer{rootDir}, nil
}

func (w *Writer) WriteSchematic(name string, data []byte) error {
	if err := validateName(name); err != nil {
		return err
	}

	filePath := filepath.Join(w.rootDir, name+Extension)
	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return err
	}

	return os.WriteFile(filePath, data, 0644)
}

func (w *Writer) Finalize() error {
	return nil
}
