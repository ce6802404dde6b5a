package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/konstantinosKokos/lassy-tlg-extraction/alpino"
	"github.com/konstantinosKokos/lassy-tlg-extraction/extract"
	"github.com/konstantinosKokos/lassy-tlg-extraction/visualization"
)

func visualizeCommand() *cli.Command {
	return &cli.Command{
		Name:      "visualize",
		Usage:     "write Graphviz DOT for a tree or its transformed graph",
		ArgsUsage: "<file.xml>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "stage", Value: "tree", Usage: "render the raw `tree` or the transformed `dag`"},
			&cli.StringSliceFlag{Name: "attrs", Usage: "node attributes to render (default: id, word, cat, pos, index)"},
			&cli.StringFlag{Name: "output", Usage: "write DOT to `FILE` instead of stdout"},
		},
		Action: runVisualize,
	}
}

func runVisualize(c *cli.Context) error {
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

	attrs := c.StringSlice("attrs")
	var dot string
	switch stage := c.String("stage"); stage {
	case "tree":
		dot = visualization.TreeDOT(tree, attrs)
	case "dag":
		g, _, err := extract.NewPipeline(extract.DefaultConfig()).Transform(tree)
		if err != nil {
			return err
		}
		dot = visualization.GraphDOT(g, attrs)
	default:
		return fmt.Errorf("unknown stage %q (want tree or dag)", stage)
	}

	if out := c.String("output"); out != "" {
		if err := visualization.SaveDOT(dot, out); err != nil {
			return fmt.Errorf("write DOT: %w", err)
		}
		fmt.Printf("✓ DOT saved to %s\n", out)
		return nil
	}
	fmt.Print(dot)
	return nil
}
