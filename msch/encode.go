package msch

import (
	"fmt"
	"maps"
	"math"
	"os"
	"slices"

	"github.com/holmes-g/msch/msch/spec"
	"github.com/holmes-g/msch/schematic"
)

// Write encodes the schematic into its serialized form. The output is
// deterministic: tags are written in sorted order and block names are
// interned in first-appearance order over the row-major tile scan, so
// encoding the same schematic twice yields identical bytes.
func Write(s *schematic.Schematic) ([]byte, error) {
	c := spec.NewCursor(nil)
	c.WriteU16(uint16(s.Width()))
	c.WriteU16(uint16(s.Height()))

	tags := s.Tags()
	if len(tags) > math.MaxUint8 {
		return nil, fmt.Errorf("%w: %d tags", spec.ErrValueTooLarge, len(tags))
	}
	c.WriteU8(uint8(len(tags)))
	for _, name := range slices.Sorted(maps.Keys(tags)) {
		c.WriteUTF(name)
		c.WriteUTF(tags[name])
	}

	var names []string
	ids := make(map[string]uint8)
	for t := range s.Tiles() {
		if _, seen := ids[t.Block]; seen {
			continue
		}
		if len(names) == math.MaxUint8 {
			return nil, fmt.Errorf("%w: more than %d block names", spec.ErrValueTooLarge, math.MaxUint8)
		}
		ids[t.Block] = uint8(len(names))
		names = append(names, t.Block)
	}
	c.WriteU8(uint8(len(names)))
	for _, name := range names {
		c.WriteUTF(name)
	}

	c.WriteI32(int32(s.Count()))
	for t := range s.Tiles() {
		if t.Rotation > 3 {
			return nil, fmt.Errorf("%w: %d", schematic.ErrInvalidRotation, t.Rotation)
		}
		c.WriteU8(ids[t.Block])
		c.WriteI32(spec.Point{X: int16(t.X), Y: int16(t.Y)}.Pack())
		if err := spec.EncodeConfig(c, t.Config); err != nil {
			return nil, err
		}
		c.WriteU8(t.Rotation)
	}
	if err := c.Err(); err != nil {
		return nil, err
	}

	payload, err := spec.Compress(c.Data())
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, spec.HeaderLength+len(payload))
	out = append(out, spec.Magic...)
	out = append(out, spec.Version)
	out = append(out, payload...)
	return out, nil
}

// WriteFile encodes the schematic and writes it to a file.
func WriteFile(filePath string, s *schematic.Schematic) error {
	data, err := Write(s)
	if err != nil {
		return err
	}
	return os.WriteFile(filePath, data, 0644)
}
