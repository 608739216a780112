package spec

// Point is a grid coordinate. The wire format stores it packed into one
// 32-bit value: x in the high 16 bits, y in the low 16 bits, each half a
// signed 16-bit integer.
type Point struct {
	X int16
	Y int16
}

// Pack reduces the coordinate pair to its packed wire form.
func (p Point) Pack() int32 {
	return int32(uint32(uint16(p.X))<<16 | uint32(uint16(p.Y)))
}

// UnpackPoint is the inverse of Point.Pack.
func UnpackPoint(v int32) Point {
	return Point{X: int16(v >> 16), Y: int16(v)}
}
