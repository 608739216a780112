// Package schematic provides the in-memory model for grid blueprints:
// a bounded 2-D grid of placed blocks with string tags and labels.
package schematic

import (
	"encoding/json"
	"errors"
	"fmt"
	"iter"

	"github.com/holmes-g/msch/msch/spec"
)

var ErrInvalidRotation = errors.New("msch: invalid rotation")

// Air is the block name that marks an empty grid slot in tile records.
const Air = "air"

// Link is a named reference from a link-capable block to another tile,
// as a grid offset.
type Link struct {
	Name string
	X    int
	Y    int
}

// Tile is one occupied grid cell: block identity, position, rotation and
// typed configuration.
type Tile struct {
	Block    string
	X        int
	Y        int
	Rotation uint8
	Config   spec.Config

	// Links are in-memory metadata for link-capable blocks (message and
	// display wiring). The container format stores links inside the
	// block's config payload, so this list carries no round-trip contract.
	Links []Link
}

// SetRotation sets the tile rotation, one of the four cardinal steps.
func (t *Tile) SetRotation(r uint8) error {
	if r > 3 {
		return fmt.Errorf("%w: %d", ErrInvalidRotation, r)
	}
	t.Rotation = r
	return nil
}

func (t *Tile) String() string {
	return fmt.Sprintf("%s (%d,%d) rotation=%d config=%v", t.Block, t.X, t.Y, t.Rotation, t.Config)
}

// Schematic is a rectangular grid of optional tiles plus free-form string
// tags. Every non-nil tile's stored position equals its grid position.
type Schematic struct {
	width   int
	height  int
	version uint8
	grid    [][]*Tile // [y][x]
	tags    map[string]string
}

// New creates an empty schematic. Dimensions outside [0, spec.MaxSize]
// are a caller bug and panic.
func New(width, height int) *Schematic {
	if width < 0 || height < 0 || width > spec.MaxSize || height > spec.MaxSize {
		panic(fmt.Sprintf("msch: invalid schematic size %dx%d", width, height))
	}
	grid := make([][]*Tile, height)
	for y := range grid {
		grid[y] = make([]*Tile, width)
	}
	return &Schematic{
		width:   width,
		height:  height,
		version: spec.Version,
		grid:    grid,
		tags:    make(map[string]string),
	}
}

func (s *Schematic) Width() int     { return s.width }
func (s *Schematic) Height() int    { return s.height }
func (s *Schematic) Version() uint8 { return s.version }

// Tile returns the tile at (x, y), or nil for an empty slot.
// Coordinates outside the grid are a caller bug and panic.
func (s *Schematic) Tile(x, y int) *Tile {
	s.checkBounds(x, y)
	return s.grid[y][x]
}

// SetTile places tile at (x, y), replacing any previous occupant and
// updating the tile's stored position. A nil tile clears the slot.
func (s *Schematic) SetTile(x, y int, tile *Tile) {
	s.checkBounds(x, y)
	if tile != nil {
		tile.X, tile.Y = x, y
	}
	s.grid[y][x] = tile
}

func (s *Schematic) checkBounds(x, y int) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		panic(fmt.Sprintf("msch: position (%d,%d) outside %dx%d schematic", x, y, s.width, s.height))
	}
}

// Count returns the number of occupied cells.
func (s *Schematic) Count() int {
	count := 0
	for range s.Tiles() {
		count++
	}
	return count
}

// Tiles returns an iterator over occupied cells in row-major order
// (y ascending, then x ascending). This order is canonical: the container
// encoder interns block names in first-appearance order over it.
func (s *Schematic) Tiles() iter.Seq[*Tile] {
	return func(yield func(*Tile) bool) {
		for y := range s.height {
			for x := range s.width {
				if t := s.grid[y][x]; t != nil {
					if !yield(t) {
						return
					}
				}
			}
		}
	}
}

const labelsTag = "labels"

// Tags returns the schematic's tag map. The "labels" tag holds the label
// list JSON-encoded; prefer Labels and SetLabels over editing it directly.
func (s *Schematic) Tags() map[string]string { return s.tags }

func (s *Schematic) SetTag(name, value string) { s.tags[name] = value }

// Labels decodes the label list from the "labels" tag.
// A missing or malformed tag reads as no labels.
func (s *Schematic) Labels() []string {
	var labels []string
	if err := json.Unmarshal([]byte(s.tags[labelsTag]), &labels); err != nil {
		return nil
	}
	return labels
}

// SetLabels stores the label list in the "labels" tag.
func (s *Schematic) SetLabels(labels []string) {
	data, _ := json.Marshal(labels)
	s.tags[labelsTag] = string(data)
}
