package extract

import (
	"github.com/konstantinosKokos/lassy-tlg-extraction/alpino"
	"github.com/konstantinosKokos/lassy-tlg-extraction/dag"
	"github.com/konstantinosKokos/lassy-tlg-extraction/lexicon"
	"github.com/konstantinosKokos/lassy-tlg-extraction/milltypes"
)

// Config controls one pipeline run.
type Config struct {
	// Unify merges all sub-derivations of a sentence into one shared
	// lexicon instead of one lexicon per root.
	Unify bool `json:"unify"`
	// StripColors removes the dependency colors from every emitted type.
	StripColors bool `json:"stripColors"`
	// Split configures the category and relation filters of the graph
	// split.
	Split dag.SplitOptions `json:"split"`
}

// DefaultConfig returns the standard configuration: per-root lexica,
// colored types, default split filters.
func DefaultConfig() Config {
	return Config{Split: dag.DefaultSplitOptions()}
}

// Pipeline turns parse trees into typed lexica. The zero value is not
// usable; construct it with NewPipeline.
type Pipeline struct {
	Config Config
	Table  map[string]milltypes.AtomicType
}

// NewPipeline returns a pipeline with the given configuration and the
// default category table.
func NewPipeline(cfg Config) *Pipeline {
	return &Pipeline{Config: cfg, Table: milltypes.DefaultTable()}
}

// Outcome is the per-tree result of a pipeline run.
type Outcome struct {
	Graph    *dag.Graph
	Roots    []dag.NodeID
	Lexica   []*lexicon.Lexicon
	Warnings []dag.Warning
}

// Transform runs the graph stages only: coindexation resolution, grouping,
// mwu collapsing, splitting, and abstract argument promotion and removal.
// The input tree is never modified.
func (p *Pipeline) Transform(t *alpino.Tree) (*dag.Graph, []dag.Warning, error) {
	resolved, err := dag.Resolve(t)
	if err != nil {
		return nil, nil, err
	}
	g := resolved.Group()
	if err := g.CollapseMWU(); err != nil {
		return nil, nil, err
	}
	g.Split(p.Config.Split)
	g.PromoteAbstractArguments()
	warnings := g.RemoveAbstractArguments()
	return g, warnings, nil
}

// Run transforms one parse tree into its lexica. The stages run strictly in
// order: coindexation resolution, grouping, mwu collapsing, splitting,
// abstract argument promotion and removal, root discovery, and type
// assignment per root. The input tree is never modified.
func (p *Pipeline) Run(t *alpino.Tree) (*Outcome, error) {
	g, warnings, err := p.Transform(t)
	if err != nil {
		return nil, err
	}
	roots, err := g.Roots()
	if err != nil {
		return nil, err
	}

	table := p.Table
	if table == nil {
		table = milltypes.DefaultTable()
	}

	var lexica []*lexicon.Lexicon
	if p.Config.Unify {
		shared := lexicon.New()
		for _, root := range roots {
			if err := NewAssigner(g, table, shared).Assign(root); err != nil {
				return nil, err
			}
		}
		lexica = []*lexicon.Lexicon{shared}
	} else {
		for _, root := range roots {
			lex := lexicon.New()
			if err := NewAssigner(g, table, lex).Assign(root); err != nil {
				return nil, err
			}
			lexica = append(lexica, lex)
		}
	}

	if p.Config.StripColors {
		for i, lex := range lexica {
			lexica[i] = lex.StripColors()
		}
	}

	return &Outcome{Graph: g, Roots: roots, Lexica: lexica, Warnings: warnings}, nil
}
