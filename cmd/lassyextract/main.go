// Command lassyextract converts Lassy treebanks into type-logical grammar
// lexica and serves lookups over the result.
package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "lassyextract",
		Usage: "extract type-logical grammar lexica from Lassy treebanks",
		Commands: []*cli.Command{
			extractCommand(),
			showCommand(),
			visualizeCommand(),
			queryCommand(),
			serveCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// newLogger builds the console logger shared by all commands.
func newLogger(quiet bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if quiet {
		level = zerolog.WarnLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()
}
