package spec_test

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/holmes-g/msch/msch/spec"
)

func TestPackUnpack(t *testing.T) {
	for x := -300; x <= 300; x++ {
		for y := -300; y <= 300; y++ {
			p := spec.Point{X: int16(x), Y: int16(y)}
			if diff := cmp.Diff(p, spec.UnpackPoint(p.Pack())); diff != "" {
				t.Fatalf("UnpackPoint(%v.Pack()) mismatch (-want+got):\n%v", p, diff)
			}
		}
	}

	for _, x := range []int16{math.MinInt16, -1, 0, 1, math.MaxInt16} {
		for _, y := range []int16{math.MinInt16, -1, 0, 1, math.MaxInt16} {
			p := spec.Point{X: x, Y: y}
			if diff := cmp.Diff(p, spec.UnpackPoint(p.Pack())); diff != "" {
				t.Errorf("UnpackPoint(%v.Pack()) mismatch (-want+got):\n%v", p, diff)
			}
		}
	}
}

// The bit layout is compatibility-critical: x occupies the high 16 bits.
func TestPackLayout(t *testing.T) {
	cases := []struct {
		point  spec.Point
		packed int32
	}{
		{spec.Point{X: 0, Y: 0}, 0},
		{spec.Point{X: 1, Y: 2}, 0x00010002},
		{spec.Point{X: 127, Y: 127}, 0x007f007f},
		{spec.Point{X: -1, Y: -1}, -1},
		{spec.Point{X: 0, Y: -1}, 0x0000ffff},
	}
	for _, tc := range cases {
		if got := tc.point.Pack(); got != tc.packed {
			t.Errorf("%v.Pack() = %#x, want = %#x", tc.point, got, tc.packed)
		}
	}
}
