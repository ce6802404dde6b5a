package results

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"

	"github.com/konstantinosKokos/lassy-tlg-extraction/alpino"
	"github.com/konstantinosKokos/lassy-tlg-extraction/dag"
	"github.com/konstantinosKokos/lassy-tlg-extraction/extract"
	"github.com/konstantinosKokos/lassy-tlg-extraction/milltypes"
)

func TestBuilderFinish(t *testing.T) {
	b := NewBuilder().WithCorpus("testdata/corpus").WithWorkers(4)
	b.Add(SampleResult{Name: "b.xml", Status: StatusError, Error: "headless_structure"})
	b.Add(SampleResult{
		Name:     "c.xml",
		Status:   StatusSuccess,
		Warnings: []string{"unresolved_coindexed_primary: su edge 4 -> 7"},
	})
	b.Add(SampleResult{Name: "a.xml", Status: StatusSuccess})
	b.Add(SampleResult{Name: "d.xml", Status: StatusSkipped})

	e := b.Finish(1.5)

	if e.Version != SchemaVersion {
		t.Errorf("Version = %q", e.Version)
	}
	if e.Metadata.RunID == "" {
		t.Error("RunID is empty")
	}
	if e.Metadata.Status != StatusSuccess {
		t.Errorf("Status = %q", e.Metadata.Status)
	}
	if e.Metadata.Corpus != "testdata/corpus" || e.Metadata.Workers != 4 {
		t.Errorf("metadata = %+v", e.Metadata)
	}
	if e.Metadata.ComputeTime != 1.5 {
		t.Errorf("ComputeTime = %v", e.Metadata.ComputeTime)
	}

	names := make([]string, len(e.Samples))
	for i, s := range e.Samples {
		names[i] = s.Name
	}
	want := []string{"a.xml", "b.xml", "c.xml", "d.xml"}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("sample order = %v, want %v", names, want)
		}
	}

	s := e.Summary
	if s.Samples != 4 || s.Succeeded != 2 || s.Failed != 1 || s.Skipped != 1 || s.Warnings != 1 {
		t.Errorf("summary = %+v", s)
	}
	if s.ByError["headless_structure"] != 1 {
		t.Errorf("ByError = %v", s.ByError)
	}
}

func TestBuilderRunError(t *testing.T) {
	e := NewBuilder().WithError(errors.New("corpus not found")).Finish(0)
	if e.Metadata.Status != StatusError || e.Metadata.Error != "corpus not found" {
		t.Errorf("metadata = %+v", e.Metadata)
	}
}

func TestFailures(t *testing.T) {
	e := NewBuilder().
		Add(SampleResult{Name: "a.xml", Status: StatusSuccess}).
		Add(SampleResult{Name: "b.xml", Status: StatusError, Error: "headless_structure"}).
		Add(SampleResult{Name: "c.xml", Status: StatusSkipped}).
		Add(SampleResult{Name: "d.xml", Status: StatusError, Error: "no_root"}).
		Finish(0)

	got := e.Failures()
	want := []string{"b.xml", "d.xml"}
	if len(got) != len(want) {
		t.Fatalf("Failures() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Failures() = %v, want %v", got, want)
		}
	}
}

func TestJSONRoundTrip(t *testing.T) {
	e := NewBuilder().WithCorpus("one.xml").Add(SampleResult{
		Name:     "one.xml",
		Status:   StatusSuccess,
		Sentence: "Jan loopt",
		Lexica: [][]Entry{{
			{Word: "Jan", Type: "NP"},
			{Word: "loopt", Type: "NP<su> -> S"},
		}},
	}).Finish(0.25)

	path := filepath.Join(t.TempDir(), "run.json")
	if err := WriteJSON(e, path); err != nil {
		t.Fatalf("WriteJSON() error: %v", err)
	}
	read, err := ReadJSON(path)
	if err != nil {
		t.Fatalf("ReadJSON() error: %v", err)
	}

	if read.Version != e.Version || read.Metadata.RunID != e.Metadata.RunID {
		t.Errorf("read = %+v", read.Metadata)
	}
	if len(read.Samples) != 1 || read.Samples[0].Lexica[0][1].Type != "NP<su> -> S" {
		t.Errorf("samples = %+v", read.Samples)
	}

	str, err := ToJSON(e)
	if err != nil {
		t.Fatalf("ToJSON() error: %v", err)
	}
	again, err := FromJSON(str)
	if err != nil {
		t.Fatalf("FromJSON() error: %v", err)
	}
	if again.Summary.Succeeded != 1 {
		t.Errorf("summary = %+v", again.Summary)
	}
}

func TestKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "coindex", err: fmt.Errorf("group %q: %w", "1", dag.ErrInvalidCoindexGroup), want: "invalid_coindex_group"},
		{name: "malformed", err: dag.ErrMalformedGraph, want: "malformed_graph"},
		{name: "headless", err: fmt.Errorf("node 3: %w", extract.ErrHeadlessStructure), want: "headless_structure"},
		{name: "conflict", err: extract.ErrTypeConflict, want: "type_conflict"},
		{name: "premature", err: extract.ErrPrematureSecondaryAssignment, want: "premature_secondary_assignment"},
		{name: "secondary target", err: extract.ErrUnsupportedSecondaryTarget, want: "unsupported_secondary_target"},
		{name: "unknown category", err: fmt.Errorf("key %q: %w", "blorp", milltypes.ErrUnknownCategory), want: "unknown_category"},
		{name: "no root", err: alpino.ErrNoRoot, want: "no_root"},
		{name: "other", err: errors.New("disk on fire"), want: "other"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Kind(tt.err); got != tt.want {
				t.Errorf("Kind() = %q, want %q", got, tt.want)
			}
		})
	}
}
