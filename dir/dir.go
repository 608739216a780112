// Package dir provides API for reading and writing schematics stored as
// individual .msch files under a root directory.
package dir

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Extension is the file name suffix for stored schematics.
const Extension = ".msch"

var ErrInvalidName = errors.New("msch: invalid schematic name")
var ErrNotDirectory = errors.New("msch: not a directory")

// Schematic names map to file paths relative to the root directory, so
// they must be non-empty local paths.
func validateName(name string) error {
	if name == "" || !filepath.IsLocal(name) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
