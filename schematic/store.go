package schematic

// Reader defines an interface for reading encoded schematics from a store.
type Reader interface {
	// ReadSchematic reads a single encoded schematic from the store.
	// It returns the schematic bytes or an error if they cannot be read.
	// If the schematic does not exist, it returns an empty slice with no error.
	ReadSchematic(name string) ([]byte, error)
}

// Writer defines an interface for writing encoded schematics to a store.
type Writer interface {
	// WriteSchematic writes a single encoded schematic to the store.
	WriteSchematic(name string, data []byte) error

	// Finalize completes the writing process: flushes buffers and writes indices.
	// It must be called before closing the Writer.
	Finalize() error
}

type Visitor interface {
	// VisitSchematics visits all schematics in the store, calling the visitor for each.
	// It returns an error if visiting fails.
	// Order, upfront cpu and memory consumption are implementation-defined.
	VisitSchematics(visitor func(name string, data []byte) error) error
}
