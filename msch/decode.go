// Package msch implements the framed schematic container format: "msch"
// magic bytes, one version byte and a zlib-compressed body holding the
// grid dimensions, string tags, the interned block-name table and the
// tile records.
package msch

import (
	"errors"
	"fmt"
	"os"

	"github.com/holmes-g/msch/msch/spec"
	"github.com/holmes-g/msch/schematic"
)

var (
	ErrBadMagic           = errors.New("msch: invalid file header")
	ErrUnsupportedVersion = errors.New("msch: unsupported version")
	ErrCorruptPayload     = errors.New("msch: corrupt compressed payload")
	ErrTooLarge           = errors.New("msch: schematic too large")
	ErrTooManyTiles       = errors.New("msch: too many tiles")
	ErrOutOfBounds        = errors.New("msch: tile outside schematic bounds")
)

// Read decodes one schematic from its serialized form.
func Read(data []byte) (*schematic.Schematic, error) {
	if len(data) < spec.HeaderLength || string(data[:len(spec.Magic)]) != spec.Magic {
		return nil, ErrBadMagic
	}
	if v := data[len(spec.Magic)]; v != spec.Version {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedVersion, v)
	}

	payload, err := spec.Decompress(data[spec.HeaderLength:])
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorruptPayload, err)
	}
	c := spec.NewCursor(payload)

	width, height := int(c.U16()), int(c.U16())
	if err := c.Err(); err != nil {
		return nil, err
	}
	if width > spec.MaxSize || height > spec.MaxSize {
		return nil, fmt.Errorf("%w: %dx%d exceeds %dx%d", ErrTooLarge, width, height, spec.MaxSize, spec.MaxSize)
	}
	s := schematic.New(width, height)

	for range c.U8() {
		name := c.UTF()
		value := c.UTF()
		s.SetTag(name, value)
	}

	names := make([]string, c.U8())
	for i := range names {
		names[i] = c.UTF()
	}

	tileCount := int(c.I32())
	if err := c.Err(); err != nil {
		return nil, err
	}
	if tileCount < 0 || tileCount > width*height {
		return nil, fmt.Errorf("%w: %d tiles in a %dx%d schematic", ErrTooManyTiles, tileCount, width, height)
	}

	for range tileCount {
		index := int(c.U8())
		pos := spec.UnpackPoint(c.I32())
		config, err := spec.DecodeConfig(c)
		if err != nil {
			return nil, err
		}
		rotation := c.U8()
		if err := c.Err(); err != nil {
			return nil, err
		}

		if index >= len(names) {
			return nil, fmt.Errorf("msch: block index %d outside name table of %d entries", index, len(names))
		}
		if rotation > 3 {
			return nil, fmt.Errorf("%w: %d", schematic.ErrInvalidRotation, rotation)
		}

		name := names[index]
		if name == "" || name == schematic.Air {
			continue
		}

		x, y := int(pos.X), int(pos.Y)
		if x < 0 || x >= width || y < 0 || y >= height {
			return nil, fmt.Errorf("%w: %q at (%d,%d) in a %dx%d schematic", ErrOutOfBounds, name, x, y, width, height)
		}

		// duplicate coordinates are not rejected, the last record wins
		s.SetTile(x, y, &schematic.Tile{
			Block:    name,
			Rotation: rotation,
			Config:   config,
		})
	}

	return s, nil
}

// ReadFile decodes one schematic from a file.
func ReadFile(filePath string) (*schematic.Schematic, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}
	return Read(data)
}
