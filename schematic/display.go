package schematic

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
	"unicode/utf8"
)

// String renders the grid with one character per cell: '.' for empty
// slots, the block name's first rune otherwise. The top row is the
// highest y, matching the in-game orientation.
func (s *Schematic) String() string {
	var b strings.Builder
	for y := s.height - 1; y >= 0; y-- {
		for x := range s.width {
			t := s.grid[y][x]
			if t == nil || t.Block == "" {
				b.WriteByte('.')
				continue
			}
			r, _ := utf8.DecodeRuneInString(t.Block)
			b.WriteRune(r)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Dump writes a human-readable description of the schematic: dimensions,
// grid, tags and, when verbose, one line per tile with rotation, config
// and links. Presentation only, no round-trip contract.
func (s *Schematic) Dump(w io.Writer, verbose bool) {
	fmt.Fprintf(w, "%dx%d, %d tiles\n", s.width, s.height, s.Count())
	io.WriteString(w, s.String())

	for _, name := range slices.Sorted(maps.Keys(s.tags)) {
		fmt.Fprintf(w, "%s = %s\n", name, s.tags[name])
	}

	if !verbose {
		return
	}
	for t := range s.Tiles() {
		fmt.Fprintln(w, t)
		for _, link := range t.Links {
			fmt.Fprintf(w, "  link %s (%+d,%+d)\n", link.Name, link.X, link.Y)
		}
	}
}
