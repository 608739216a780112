package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/google/subcommands"
	"github.com/holmes-g/msch/msch"
)

type infoCmd struct {
	inputPath string
	verbose   bool
}

func (c *infoCmd) Name() string     { return "info" }
func (c *infoCmd) Synopsis() string { return "print schematic grid, tags and tiles" }
func (c *infoCmd) Usage() string {
	return "mschutils info -i <path> [-v]\n"
}
func (c *infoCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input file path")
	f.BoolVar(&c.verbose, "v", false, "Dump per-tile rotation, config and links")
}

func (c *infoCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	s, err := msch.ReadFile(c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	s.Dump(os.Stdout, c.verbose)
	return subcommands.ExitSuccess
}
