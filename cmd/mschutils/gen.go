package main

import (
	"context"
	"flag"
	"log"

	"github.com/google/subcommands"
	"github.com/holmes-g/msch/msch"
	"github.com/holmes-g/msch/msch/spec"
	"github.com/holmes-g/msch/schematic"
)

type genCmd struct {
	outputPath string
}

func (c *genCmd) Name() string     { return "gen" }
func (c *genCmd) Synopsis() string { return "generate a demo 3x3 schematic" }
func (c *genCmd) Usage() string {
	return "mschutils gen -o <path>\n"
}
func (c *genCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.outputPath, "o", "demo.msch", "Output file path")
}

// demo assembles a fixed 3x3 layout: a wall ring around a message block.
func demo() *schematic.Schematic {
	s := schematic.New(3, 3)
	s.SetTag("name", "demo")
	s.SetLabels([]string{"demo"})

	for y := range 3 {
		for x := range 3 {
			s.SetTile(x, y, &schematic.Tile{Block: "copper-wall"})
		}
	}

	message := &schematic.Tile{
		Block:  "message",
		Config: spec.String{Value: "hello from mschutils", Valid: true},
	}
	s.SetTile(1, 1, message)

	return s
}

func (c *genCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if err := msch.WriteFile(c.outputPath, demo()); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
