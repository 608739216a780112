package schematic

import (
	"errors"
	"iter"
)

var errVisitCancelled = errors.New("visit cancelled")

// IterSchematics returns an iterator over all schematics in the store.
// It yields schematic names and their encoded bytes. Iteration may panic
// on unrecoverable errors.
func IterSchematics(v Visitor) iter.Seq2[string, []byte] {
	return func(yield func(string, []byte) bool) {
		err := v.VisitSchematics(func(name string, data []byte) error {
			if !yield(name, data) {
				return errVisitCancelled
			}
			return nil
		})
		if err != nil && err != errVisitCancelled {
			panic(err)
		}
	}
}
