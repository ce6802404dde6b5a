package main

import (
	"fmt"
	"os"

	"github.com/gosuri/uiprogress"
	"github.com/pebbe/util"
	"github.com/urfave/cli/v2"

	"github.com/konstantinosKokos/lassy-tlg-extraction/corpus"
	"github.com/konstantinosKokos/lassy-tlg-extraction/extract"
	"github.com/konstantinosKokos/lassy-tlg-extraction/results"
	"github.com/konstantinosKokos/lassy-tlg-extraction/storage"
)

func extractCommand() *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "run the extraction pipeline over a corpus",
		ArgsUsage: "[corpus]",
		Description: `Extracts a typed lexicon from every tree of the corpus. The corpus may
be a directory of alpino_ds XML files, a single .xml or .xml.gz file, a
compact corpus, a DBXML .dact file, or a .zip/.tar/.tar.gz archive.
Without a corpus argument, file names are read from a piped stdin, one
per line.`,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "out", Usage: "write the run record to `FILE`"},
			&cli.StringFlag{Name: "db", Usage: "store the run in the SQLite database `FILE`"},
			&cli.IntFlag{Name: "workers", Usage: "worker pool size (default: all CPUs)"},
			&cli.BoolFlag{Name: "unify", Usage: "merge the per-derivation lexica of each sentence"},
			&cli.BoolFlag{Name: "strip-colors", Usage: "drop dependency decorations from the types"},
			&cli.StringSliceFlag{Name: "remove-cats", Usage: "categories cut during the split stage"},
			&cli.StringSliceFlag{Name: "remove-rels", Usage: "relations cut during the split stage"},
			&cli.StringFlag{Name: "skip", Usage: "skip the failures of a previous run record `FILE`"},
			&cli.BoolFlag{Name: "quiet", Usage: "log warnings only"},
			&cli.BoolFlag{Name: "progress", Usage: "show a progress bar"},
		},
		Action: runExtract,
	}
}

func runExtract(c *cli.Context) error {
	cfg := extract.DefaultConfig()
	cfg.Unify = c.Bool("unify")
	cfg.StripColors = c.Bool("strip-colors")
	if cats := c.StringSlice("remove-cats"); len(cats) > 0 {
		cfg.Split.RemoveCats = cats
	}
	if rels := c.StringSlice("remove-rels"); len(rels) > 0 {
		cfg.Split.RemoveRels = rels
	}

	skip, err := loadSkipSet(c.String("skip"))
	if err != nil {
		return err
	}

	runner := &corpus.Runner{
		Pipeline: extract.NewPipeline(cfg),
		Workers:  c.Int("workers"),
		Logger:   newLogger(c.Bool("quiet")),
		Skip:     skip,
	}

	var extraction *results.Extraction
	if c.NArg() == 0 {
		if util.IsTerminal(os.Stdin) {
			return fmt.Errorf("corpus argument or piped file list required")
		}
		extraction, err = runner.RunList(c.Context, os.Stdin)
	} else {
		path := c.Args().First()
		progress := c.Bool("progress")
		if progress {
			if err := attachProgress(runner, path); err != nil {
				return err
			}
		}
		extraction, err = runner.Run(c.Context, path)
		if progress {
			uiprogress.Stop()
		}
	}
	if err != nil {
		return err
	}

	sum := extraction.Summary
	fmt.Printf("Processed %d samples: %d succeeded, %d failed, %d skipped\n",
		sum.Samples, sum.Succeeded, sum.Failed, sum.Skipped)

	if out := c.String("out"); out != "" {
		if err := results.WriteJSON(extraction, out); err != nil {
			return err
		}
		fmt.Printf("✓ Results saved to %s\n", out)
	}
	if db := c.String("db"); db != "" {
		store, err := storage.Open(db)
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.SaveExtraction(extraction); err != nil {
			return fmt.Errorf("store run: %w", err)
		}
		fmt.Printf("✓ Run stored in %s\n", db)
	}
	return nil
}

// attachProgress counts the corpus up front so the bar has a total, then
// hooks the runner's per-sample callback.
func attachProgress(runner *corpus.Runner, path string) error {
	total := 0
	if err := corpus.Walk(path, func(corpus.Sample) error {
		total++
		return nil
	}); err != nil {
		return err
	}

	uiprogress.Start()
	bar := uiprogress.AddBar(total)
	bar.AppendCompleted()
	runner.OnSample = func(results.SampleResult) { bar.Incr() }
	return nil
}

// loadSkipSet turns the failures of a previous run record into a skip set.
func loadSkipSet(path string) (map[string]bool, error) {
	if path == "" {
		return nil, nil
	}
	prev, err := results.ReadJSON(path)
	if err != nil {
		return nil, fmt.Errorf("load skip set: %w", err)
	}

	skip := make(map[string]bool)
	for _, name := range prev.Failures() {
		skip[name] = true
	}
	return skip, nil
}
