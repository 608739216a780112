package spec_test

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/holmes-g/msch/msch/spec"
)

func TestConfigRoundTrip(t *testing.T) {
	cases := []struct {
		Name   string
		Config spec.Config
	}{
		{"Null", spec.Null{}},
		{"Int", spec.Int(-42)},
		{"Long", spec.Long(1 << 40)},
		{"Float", spec.Float(3.5)},
		{"String", spec.String{Value: "blueprint", Valid: true}},
		{"StringEmpty", spec.String{Value: "", Valid: true}},
		{"StringNull", spec.String{}},
		{"Content", spec.Content{Type: 4, ID: 300}},
		{"IntArray", spec.IntArray{1, -2, 3}},
		{"IntArrayEmpty", spec.IntArray{}},
		{"Point", spec.Point{X: -5, Y: 17}},
		{"PointArray", spec.PointArray{{X: 0, Y: 0}, {X: -1, Y: 1}}},
		{"Bool", spec.Bool(true)},
		{"Double", spec.Double(-2.25)},
		{"Building", spec.Building(spec.Point{X: 10, Y: 20})},
		{"ByteArray", spec.ByteArray{0, 1, 255}},
		{"BoolArray", spec.BoolArray{true, false, true}},
		{"Unit", spec.Unit(7)},
	}
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			t.Parallel()

			w := spec.NewCursor(nil)
			if err := spec.EncodeConfig(w, tc.Config); err != nil {
				t.Fatalf("EncodeConfig failed: %v", err)
			}
			if err := w.Err(); err != nil {
				t.Fatalf("EncodeConfig cursor error: %v", err)
			}

			r := spec.NewCursor(w.Data())
			decoded, err := spec.DecodeConfig(r)
			if err != nil {
				t.Fatalf("DecodeConfig failed: %v", err)
			}
			if diff := cmp.Diff(tc.Config, decoded); diff != "" {
				t.Errorf("DecodeConfig(EncodeConfig(input)) mismatch (-want+got):\n%v", diff)
			}
			if got, want := r.Remaining(), 0; got != want {
				t.Errorf("Remaining() = %v, want = %v", got, want)
			}
		})
	}
}

func TestNilConfigEncodesAsNull(t *testing.T) {
	c := spec.NewCursor(nil)
	if err := spec.EncodeConfig(c, nil); err != nil {
		t.Fatalf("EncodeConfig failed: %v", err)
	}
	if diff := cmp.Diff([]byte{0}, c.Data()); diff != "" {
		t.Errorf("encoded bytes mismatch (-want+got):\n%v", diff)
	}
}

// The exact payload encodings are compatibility-critical.
func TestConfigWireBytes(t *testing.T) {
	cases := []struct {
		Name   string
		Config spec.Config
		Bytes  []byte
	}{
		{"Null", spec.Null{}, []byte{0}},
		{"Int", spec.Int(1), []byte{1, 0, 0, 0, 1}},
		{"StringNull", spec.String{}, []byte{4, 0}},
		{"String", spec.String{Value: "ab", Valid: true}, []byte{4, 1, 0, 2, 'a', 'b'}},
		{"Content", spec.Content{Type: 5, ID: 10}, []byte{5, 5, 0, 10}},
		{"IntArray", spec.IntArray{1}, []byte{6, 0, 1, 0, 0, 0, 1}},
		{"Point", spec.Point{X: 2, Y: 3}, []byte{7, 0, 2, 0, 3}},
		{"PointArray", spec.PointArray{{X: 1, Y: 2}}, []byte{8, 1, 0, 1, 0, 2}},
		{"Bool", spec.Bool(true), []byte{10, 1}},
		{"Building", spec.Building(spec.Point{X: 1, Y: 1}), []byte{12, 0, 1, 0, 1}},
		{"ByteArray", spec.ByteArray{9}, []byte{14, 0, 0, 0, 1, 9}},
		{"BoolArray", spec.BoolArray{true, false}, []byte{16, 0, 0, 0, 2, 1, 0}},
		{"Unit", spec.Unit(3), []byte{17, 0, 0, 0, 3}},
	}
	for _, tc := range cases {
		t.Run(tc.Name, func(t *testing.T) {
			c := spec.NewCursor(nil)
			if err := spec.EncodeConfig(c, tc.Config); err != nil {
				t.Fatalf("EncodeConfig failed: %v", err)
			}
			if diff := cmp.Diff(tc.Bytes, c.Data()); diff != "" {
				t.Errorf("encoded bytes mismatch (-want+got):\n%v", diff)
			}
		})
	}
}

func TestUnknownConfigTag(t *testing.T) {
	for _, tag := range []byte{9, 13, 15, 42, 255} {
		c := spec.NewCursor([]byte{tag, 1, 2, 3})
		_, err := spec.DecodeConfig(c)
		if !errors.Is(err, spec.ErrUnknownConfigTag) {
			t.Fatalf("DecodeConfig(tag %d) error = %v, want ErrUnknownConfigTag", tag, err)
		}
		// no payload bytes are consumed speculatively
		if got, want := c.Pos(), 1; got != want {
			t.Errorf("Pos() after tag %d = %v, want = %v", tag, got, want)
		}
	}
}

func TestDecodeConfigTruncated(t *testing.T) {
	c := spec.NewCursor([]byte{byte(spec.TagInt), 0, 0})
	_, err := spec.DecodeConfig(c)
	if !errors.Is(err, spec.ErrOutOfBounds) {
		t.Fatalf("DecodeConfig error = %v, want ErrOutOfBounds", err)
	}
}
