package dir

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// Reader implements schematic.Reader interface for schematic directories.
type Reader struct {
	rootDir string
}

// NewReader creates a new Reader over the given root directory.
func NewReader(rootDir string) (*Reader, error) {
	info, err := os.Stat(rootDir)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %q", ErrNotDirectory, rootDir)
	}
	return &Reader{rootDir}, nil
}

func (r *Reader) ReadSchematic(name string) ([]byte, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(filepath.Join(r.rootDir, name+Extension))
	if os.IsNotExist(err) {
		return make([]byte, 0), nil
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}

func (r *Reader) VisitSchematics(visitor func(string, []byte) error) error {
	return filepath.WalkDir(r.rootDir, func(filePath string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(filePath, Extension) {
			return nil
		}

		rel, err := filepath.Rel(r.rootDir, filePath)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(strings.TrimSuffix(rel, Extension))

		data, err := os.ReadFile(filePath)
		if err != nil {
			return err
		}

		return visitor(name, data)
	})
}
