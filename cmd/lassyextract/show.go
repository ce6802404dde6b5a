package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/konstantinosKokos/lassy-tlg-extraction/alpino"
	"github.com/konstantinosKokos/lassy-tlg-extraction/extract"
	"github.com/konstantinosKokos/lassy-tlg-extraction/results"
)

func showCommand() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "print the lexicon of a single tree",
		ArgsUsage: "<file.xml>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "json", Usage: "emit JSON instead of text"},
			&cli.BoolFlag{Name: "unify", Usage: "merge the per-derivation lexica"},
			&cli.BoolFlag{Name: "strip-colors", Usage: "drop dependency decorations from the types"},
		},
		Action: runShow,
	}
}

func runShow(c *cli.Context) error {
	if c.NArg() != 1 {
		return fmt.Errorf("exactly one alpino_ds file required")
	}

	data, err := os.ReadFile(c.Args().First())
	if err != nil {
		return fmt.Errorf("read tree: %w", err)
	}
	tree, err := alpino.Parse(data)
	if err != nil {
		return err
	}

	cfg := extract.DefaultConfig()
	cfg.Unify = c.Bool("unify")
	cfg.StripColors = c.Bool("strip-colors")

	out, err := extract.NewPipeline(cfg).Run(tree)
	if err != nil {
		return err
	}

	if c.Bool("json") {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results.FromLexica(out.Lexica))
	}

	for i, lex := range out.Lexica {
		if len(out.Lexica) > 1 {
			fmt.Printf("# derivation %d\n", i+1)
		}
		for _, e := range lex.Entries() {
			fmt.Printf("%s\t%s\n", e.Word, e.Type)
		}
	}
	for _, w := range out.Warnings {
		fmt.Fprintf(os.Stderr, "warning: %s\n", w)
	}
	return nil
}
