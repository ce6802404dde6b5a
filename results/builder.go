package results

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// Builder accumulates per-sample outcomes into an Extraction record
type Builder struct {
	extraction Extraction
}

// NewBuilder creates a builder with a fresh run id and timestamp
func NewBuilder() *Builder {
	return &Builder{
		extraction: Extraction{
			Version: SchemaVersion,
			Metadata: Metadata{
				RunID:     uuid.NewString(),
				Timestamp: time.Now(),
			},
		},
	}
}

// WithCorpus records the corpus path covered by the run
func (b *Builder) WithCorpus(path string) *Builder {
	b.extraction.Metadata.Corpus = path
	return b
}

// WithWorkers records the worker count used
func (b *Builder) WithWorkers(n int) *Builder {
	b.extraction.Metadata.Workers = n
	return b
}

// WithError marks the whole run as failed
func (b *Builder) WithError(err error) *Builder {
	b.extraction.Metadata.Status = StatusError
	b.extraction.Metadata.Error = err.Error()
	return b
}

// Add appends one sample outcome
func (b *Builder) Add(sample SampleResult) *Builder {
	b.extraction.Samples = append(b.extraction.Samples, sample)
	return b
}

// Finish sorts the samples by name, fills in the summary, and returns the
// completed record. Sorting keeps the record deterministic regardless of
// worker scheduling.
func (b *Builder) Finish(computeTime float64) *Extraction {
	e := &b.extraction
	e.Metadata.ComputeTime = computeTime
	if e.Metadata.Status == "" {
		e.Metadata.Status = StatusSuccess
	}

	sort.Slice(e.Samples, func(i, j int) bool {
		return e.Samples[i].Name < e.Samples[j].Name
	})

	summary := Summary{Samples: len(e.Samples)}
	for _, s := range e.Samples {
		switch s.Status {
		case StatusSuccess:
			summary.Succeeded++
		case StatusSkipped:
			summary.Skipped++
		default:
			summary.Failed++
			if s.Error != "" {
				if summary.ByError == nil {
					summary.ByError = make(map[string]int)
				}
				summary.ByError[s.Error]++
			}
		}
		summary.Warnings += len(s.Warnings)
	}
	e.Summary = summary
	return e
}
