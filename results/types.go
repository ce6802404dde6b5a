// Package results defines the structured output format for extraction runs
package results

import "time"

const SchemaVersion = "1.0.0"

// Sample statuses within a run.
const (
	StatusSuccess = "success"
	StatusError   = "error"
	StatusSkipped = "skipped"
)

// Extraction contains the complete output of one corpus extraction run.
type Extraction struct {
	Version  string         `json:"version"`
	Metadata Metadata       `json:"metadata"`
	Summary  Summary        `json:"summary"`
	Samples  []SampleResult `json:"samples"`
}

// Metadata contains run execution information
type Metadata struct {
	RunID       string    `json:"runId"`
	Timestamp   time.Time `json:"timestamp"`
	Corpus      string    `json:"corpus"`
	Workers     int       `json:"workers"`
	ComputeTime float64   `json:"computeTime"` // seconds
	Status      string    `json:"status"`      // success, error
	Error       string    `json:"error,omitempty"`
}

// Summary provides quick overview
type Summary struct {
	Samples   int            `json:"samples"`
	Succeeded int            `json:"succeeded"`
	Failed    int            `json:"failed"`
	Skipped   int            `json:"skipped"`
	Warnings  int            `json:"warnings"`
	ByError   map[string]int `json:"byError,omitempty"`
}

// SampleResult records the outcome for a single corpus sample.
type SampleResult struct {
	Name     string    `json:"name"`
	Status   string    `json:"status"` // success, error, skipped
	Error    string    `json:"error,omitempty"`
	Detail   string    `json:"detail,omitempty"`
	Sentence string    `json:"sentence,omitempty"`
	Lexica   [][]Entry `json:"lexica,omitempty"`
	Warnings []string  `json:"warnings,omitempty"`
}

// Entry is one (word, type) pair of a serialized lexicon.
type Entry struct {
	Word string `json:"word"`
	Type string `json:"type"`
}
