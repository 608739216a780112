package library_test

import (
	"maps"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/holmes-g/msch/internal"
	"github.com/holmes-g/msch/library"
	"github.com/holmes-g/msch/msch"
	"github.com/holmes-g/msch/schematic"
	_ "github.com/mattn/go-sqlite3"
)

func encodeCases(t *testing.T) map[string][]byte {
	t.Helper()

	schematics := make(map[string][]byte)
	for _, tc := range internal.Cases() {
		data, err := msch.Write(tc.Schematic)
		if err != nil {
			t.Fatalf("msch.Write(%v) failed: %v", tc.Name, err)
		}
		schematics[tc.Name] = data
	}
	return schematics
}

func TestWriterReader(t *testing.T) {
	schematics := encodeCases(t)
	filePath := filepath.Join(t.TempDir(), "schematics.db")
	writerMetadata := map[string]string{"source": "testcases"}

	writer, err := library.NewWriter(filePath, library.WithMetadata(writerMetadata))
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	for name, data := range schematics {
		if err := writer.WriteSchematic(name, data); err != nil {
			t.Fatalf("WriteSchematic failed: %v", err)
		}
	}

	if err := writer.Finalize(); err != nil {
		t.Fatalf("Finalize failed: %v", err)
	}
	if err := writer.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	reader, err := library.NewReader(filePath)
	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}
	defer reader.Close()

	readerMetadata, err := reader.ReadMetadata()
	if err != nil {
		t.Fatalf("ReadMetadata failed: %v", err)
	}
	if got, want := readerMetadata, writerMetadata; !cmp.Equal(got, want) {
		t.Errorf("ReadMetadata data mismatch")
	}

	if got, want := maps.Collect(schematic.IterSchematics(reader)), schematics; !cmp.Equal(got, want) {
		t.Errorf("VisitSchematics data mismatch")
	}

	for name, data := range schematics {
		stored, err := reader.ReadSchematic(name)
		if err != nil {
			t.Fatalf("ReadSchematic(%v) failed: %v", name, err)
		}
		if !cmp.Equal(stored, data) {
			t.Errorf("ReadSchematic(%v) data mismatch", name)
		}
	}

	missing, err := reader.ReadSchematic("no-such-schematic")
	if err != nil {
		t.Fatalf("ReadSchematic failed: %v", err)
	}
	if len(missing) != 0 {
		t.Errorf("ReadSchematic(missing) = %v bytes, want empty", len(missing))
	}
}

func TestWriterRejectsDuplicateNames(t *testing.T) {
	filePath := filepath.Join(t.TempDir(), "schematics.db")

	writer, err := library.NewWriter(filePath)
	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}
	defer writer.Close()

	if err := writer.WriteSchematic("dup", []byte{1}); err != nil {
		t.Fatalf("WriteSchematic failed: %v", err)
	}
	if err := writer.WriteSchematic("dup", []byte{2}); err != nil {
		t.Fatalf("WriteSchematic failed: %v", err)
	}

	if err := writer.Finalize(); err == nil {
		t.Error("Finalize succeeded with duplicate names")
	}
}
