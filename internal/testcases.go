// Package internal provides shared fixtures for codec and storage tests.
package internal

import (
	"github.com/holmes-g/msch/msch/spec"
	"github.com/holmes-g/msch/schematic"
)

// Case is a named sample schematic.
type Case struct {
	Name      string
	Schematic *schematic.Schematic
}

// Cases builds sample schematics covering every live config tag, tags,
// labels and link metadata.
func Cases() []Case {
	return []Case{
		{Name: "empty", Schematic: schematic.New(1, 1)},
		{Name: "single", Schematic: single()},
		{Name: "configs", Schematic: configs()},
		{Name: "conveyors", Schematic: conveyors()},
		{Name: "logic", Schematic: logic()},
	}
}

func tile(block string, rotation uint8, config spec.Config) *schematic.Tile {
	if config == nil {
		config = spec.Null{}
	}
	return &schematic.Tile{Block: block, Rotation: rotation, Config: config}
}

func single() *schematic.Schematic {
	s := schematic.New(1, 1)
	s.SetTile(0, 0, tile("copper-wall", 0, nil))
	return s
}

// configs exercises one tile per live config tag.
func configs() *schematic.Schematic {
	values := []spec.Config{
		spec.Null{},
		spec.Int(-7),
		spec.Long(1 << 40),
		spec.Float(2.5),
		spec.String{Value: "hello", Valid: true},
		spec.String{},
		spec.Content{Type: 4, ID: 21},
		spec.IntArray{1, -2, 3},
		spec.Point{X: -3, Y: 12},
		spec.PointArray{{X: 0, Y: 0}, {X: 1, Y: -1}},
		spec.Bool(true),
		spec.Double(-0.125),
		spec.Building(spec.Point{X: 5, Y: 6}),
		spec.ByteArray{0xde, 0xad, 0xbe, 0xef},
		spec.BoolArray{true, false, true},
		spec.Unit(12),
	}

	s := schematic.New(4, 4)
	s.SetLabels([]string{"test", "configs"})
	s.SetTag("name", "configs")
	for i, v := range values {
		s.SetTile(i%4, i/4, tile("sorter", uint8(i%4), v))
	}
	return s
}

func conveyors() *schematic.Schematic {
	s := schematic.New(8, 2)
	for x := range 8 {
		s.SetTile(x, 0, tile("conveyor", 0, nil))
		s.SetTile(x, 1, tile("titanium-conveyor", 2, nil))
	}
	s.SetTile(7, 0, tile("router", 0, nil))
	return s
}

func logic() *schematic.Schematic {
	s := schematic.New(3, 3)
	processor := tile("micro-processor", 0, spec.ByteArray("print \"hi\"\n"))
	processor.Links = []schematic.Link{{Name: "message1", X: 1, Y: 0}}
	s.SetTile(0, 0, processor)
	s.SetTile(1, 0, tile("message", 0, spec.String{Value: "hi", Valid: true}))
	s.SetTile(2, 2, tile("memory-cell", 0, nil))
	return s
}
