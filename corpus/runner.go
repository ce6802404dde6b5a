package corpus

import (
	"context"
	"io"
	"runtime"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/konstantinosKokos/lassy-tlg-extraction/alpino"
	"github.com/konstantinosKokos/lassy-tlg-extraction/extract"
	"github.com/konstantinosKokos/lassy-tlg-extraction/results"
)

// Runner drives the extraction pipeline over a corpus with a pool of
// workers, one tree per worker. Per-sample failures are recorded in the
// run record and never abort the run; only corpus-level read errors do.
type Runner struct {
	// Pipeline transforms trees. Nil means the default configuration.
	Pipeline *extract.Pipeline
	// Workers caps the pool size. Zero means runtime.NumCPU().
	Workers int
	// Logger receives per-sample diagnostics and the run summary.
	Logger zerolog.Logger
	// Skip names samples to bypass; they are recorded as skipped.
	Skip map[string]bool
	// OnSample, when set, is called serially after each sample completes.
	OnSample func(results.SampleResult)
}

// Run extracts every sample of the corpus at path and returns the run
// record. On a corpus-level failure the partial record is returned
// alongside the error.
func (r *Runner) Run(ctx context.Context, path string) (*results.Extraction, error) {
	return r.run(ctx, path, func(fn func(Sample) error) error {
		return Walk(path, fn)
	})
}

// RunList extracts every corpus named on list, one path per line, into a
// single run record.
func (r *Runner) RunList(ctx context.Context, list io.Reader) (*results.Extraction, error) {
	return r.run(ctx, "stdin", func(fn func(Sample) error) error {
		return WalkList(list, fn)
	})
}

func (r *Runner) run(ctx context.Context, label string, walk func(func(Sample) error) error) (*results.Extraction, error) {
	start := time.Now()

	workers := r.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	pipeline := r.Pipeline
	if pipeline == nil {
		pipeline = extract.NewPipeline(extract.DefaultConfig())
	}

	builder := results.NewBuilder().
		WithCorpus(label).
		WithWorkers(workers)

	var mu sync.Mutex
	record := func(sr results.SampleResult) {
		mu.Lock()
		defer mu.Unlock()
		builder.Add(sr)
		if r.OnSample != nil {
			r.OnSample(sr)
		}
	}

	g, ctx := errgroup.WithContext(ctx)
	samples := make(chan Sample)

	g.Go(func() error {
		defer close(samples)
		return walk(func(s Sample) error {
			select {
			case samples <- s:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	})

	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for s := range samples {
				record(r.process(pipeline, s))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		r.Logger.Error().Err(err).Str("corpus", label).Msg("extraction aborted")
		builder.WithError(err)
		return builder.Finish(time.Since(start).Seconds()), err
	}

	extraction := builder.Finish(time.Since(start).Seconds())
	s := extraction.Summary
	r.Logger.Info().
		Str("corpus", label).
		Int("samples", s.Samples).
		Int("succeeded", s.Succeeded).
		Int("failed", s.Failed).
		Int("skipped", s.Skipped).
		Int("warnings", s.Warnings).
		Dur("elapsed", time.Since(start)).
		Msg("extraction finished")
	return extraction, nil
}

func (r *Runner) process(p *extract.Pipeline, s Sample) results.SampleResult {
	if r.Skip[s.Name] {
		r.Logger.Debug().Str("sample", s.Name).Msg("skipped")
		return results.SampleResult{Name: s.Name, Status: results.StatusSkipped}
	}

	tree, err := alpino.Parse(s.Data)
	if err != nil {
		return r.failure(s.Name, "", err)
	}
	out, err := p.Run(tree)
	if err != nil {
		return r.failure(s.Name, tree.Sentence.Text, err)
	}

	sr := results.SampleResult{
		Name:     s.Name,
		Status:   results.StatusSuccess,
		Sentence: tree.Sentence.Text,
		Lexica:   results.FromLexica(out.Lexica),
	}
	for _, w := range out.Warnings {
		sr.Warnings = append(sr.Warnings, w.String())
	}
	if len(sr.Warnings) > 0 {
		r.Logger.Debug().Str("sample", s.Name).Strs("warnings", sr.Warnings).Msg("extraction warnings")
	}
	return sr
}

func (r *Runner) failure(name, sentence string, err error) results.SampleResult {
	r.Logger.Warn().Str("sample", name).Err(err).Msg("sample failed")
	return results.SampleResult{
		Name:     name,
		Status:   results.StatusError,
		Error:    results.Kind(err),
		Detail:   err.Error(),
		Sentence: sentence,
	}
}
