package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/google/subcommands"
	"github.com/holmes-g/msch/dir"
	"github.com/holmes-g/msch/library"
	"github.com/schollz/progressbar/v3"
)

type exportCmd struct {
	inputPath string
	outputDir string
}

func (c *exportCmd) Name() string     { return "export_dir" }
func (c *exportCmd) Synopsis() string { return "export a schematic library into a directory of .msch files" }
func (c *exportCmd) Usage() string {
	return "mschutils export_dir -i <path> -o <dir>\n"
}
func (c *exportCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputPath, "i", "", "Input library file path")
	f.StringVar(&c.outputDir, "o", "", "Output directory path")
}

func (c *exportCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	reader, err := library.NewReader(c.inputPath)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer reader.Close()

	writer, err := dir.NewWriter(c.outputDir)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	bar := progressbar.NewOptions(-1, progressbar.OptionShowIts(), progressbar.OptionShowCount())

	err = reader.VisitSchematics(func(name string, data []byte) error {
		if err := writer.WriteSchematic(name, data); err != nil {
			return err
		}

		bar.Add(1)

		return nil
	})

	bar.Finish()
	fmt.Println()

	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	if err := writer.Finalize(); err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	return subcommands.ExitSuccess
}
