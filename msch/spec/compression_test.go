package spec_test

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/holmes-g/msch/msch/spec"
)

func TestCompression(t *testing.T) {
	cases := []struct {
		Name string
		Data []byte
	}{
		{Name: "Empty", Data: []byte{}},
		{Name: "Repeat", Data: bytes.Repeat([]byte{42}, 100500)},
		{Name: "Foobar", Data: []byte("foobar")},
	}
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			compressed, err := spec.Compress(tc.Data)
			if err != nil {
				t.Fatalf("Compress failed: %v", err)
			}
			decompressed, err := spec.Decompress(compressed)
			if err != nil {
				t.Fatalf("Decompress failed: %v", err)
			}
			if !cmp.Equal(tc.Data, decompressed) {
				t.Errorf("Decompress(Compress(input)) != input")
			}
		})
	}
}

func TestDecompressGarbage(t *testing.T) {
	if _, err := spec.Decompress([]byte("not a zlib stream")); err == nil {
		t.Error("Decompress succeeded on garbage input")
	}
}
