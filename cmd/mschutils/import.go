package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/google/subcommands"
	"github.com/holmes-g/msch/dir"
	"github.com/holmes-g/msch/library"
	"github.com/holmes-g/msch/msch"
	"github.com/schollz/progressbar/v3"
)

type importCmd struct {
	inputDir    string
	outputPath  string
	skipInvalid bool
}

func (c *importCmd) Name() string     { return "import_dir" }
func (c *importCmd) Synopsis() string { return "create schematic library from a directory of .msch files" }
func (c *importCmd) Usage() string {
	return "mschutils import_dir -i <dir> -o <path> [-skip-invalid]\n"
}
func (c *importCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.inputDir, "i", "", "Input directory path")
	f.StringVar(&c.outputPath, "o", "", "Output library file path")
	f.BoolVar(&c.skipInvalid, "skip-invalid", false, "Skip files that fail to decode instead of aborting")
}

func (c *importCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	reader, err := dir.NewReader(c.inputDir)
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}

	writer, err := library.NewWriter(c.outputPath, library.WithLogger(slog.Default()))
	if err != nil {
		log.Println(err)
		return subcommands.ExitFailure
	}
	defer writer.Close()

	bar := progressbar.NewOptions(-1, progressbar.OptionShowIts(), progressbar.OptionShowCount())

	err = reader.VisitSchematics(func(name string, data []byte) error {
		if _, err := msch.Read(data); err != nil {
			if c.skipInvalid {
				log.Printf("skipping %q: %v", name, err)
				return nil
			}
			return fmt.Errorf("%q: %w", name, err)
		}

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
