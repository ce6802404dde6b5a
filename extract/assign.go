package extract

import (
	"fmt"
	"sort"

	"github.com/konstantinosKokos/lassy-tlg-extraction/dag"
	"github.com/konstantinosKokos/lassy-tlg-extraction/lexicon"
	"github.com/konstantinosKokos/lassy-tlg-extraction/milltypes"
)

// headRels is the head-relation priority set. The first child in span
// order whose relation is in the set wins.
var headRels = map[string]bool{
	"hd":    true,
	"rhd":   true,
	"whd":   true,
	"cmp":   true,
	"crd":   true,
	"dlink": true,
}

// Assigner performs recursive head-driven type assignment over one graph,
// writing an entry per lexical leaf into its lexicon.
type Assigner struct {
	graph *dag.Graph
	table map[string]milltypes.AtomicType
	lex   *lexicon.Lexicon
}

// NewAssigner returns an assigner over g that resolves plain types through
// table and records assignments in lex.
func NewAssigner(g *dag.Graph, table map[string]milltypes.AtomicType, lex *lexicon.Lexicon) *Assigner {
	return &Assigner{graph: g, table: table, lex: lex}
}

// Assign types the derivation rooted at root. The root takes its own plain
// type as the initial result type.
func (a *Assigner) Assign(root dag.NodeID) error {
	return a.assignNode(root, nil)
}

// argument carries one non-head sibling together with its plain type.
type argument struct {
	edge dag.ChildEdge
	typ  milltypes.Type
}

func (a *Assigner) assignNode(n dag.NodeID, top milltypes.Type) error {
	edges := a.graph.OrderedChildren(n, dag.Top)
	head, err := a.chooseHead(edges)
	if err != nil {
		return fmt.Errorf("node %d: %w", a.graph.Attrs(n).ID, err)
	}

	if top == nil {
		top, err = a.plainType(n)
		if err != nil {
			return err
		}
	}

	// Non-head siblings in span order, then stable-sorted on the canonical
	// string of their plain type so the functor's argument order does not
	// depend on traversal order.
	others := a.graph.OrderedChildren(n, head.Child)
	args := make([]argument, len(others))
	for i, e := range others {
		t, err := a.plainType(e.Child)
		if err != nil {
			return err
		}
		args[i] = argument{edge: e, typ: t}
	}
	ranked := append([]argument(nil), args...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].typ.String() < ranked[j].typ.String()
	})

	argTypes := make([]milltypes.Type, len(ranked))
	colors := make([]string, len(ranked))
	for i, arg := range ranked {
		argTypes[i] = arg.typ
		colors[i] = arg.edge.Rel
	}
	gap := head.Kind == dag.Secondary
	headType := milltypes.NewFunctor(argTypes, top, colors, gap)

	if attrs := a.graph.Attrs(head.Child); attrs.IsLeaf() {
		if prior, ok := a.lex.Lookup(attrs.ID); ok && !milltypes.EqualModuloModality(prior, headType) {
			return fmt.Errorf("head %q holds %s, got %s: %w", attrs.Word, prior, headType, ErrTypeConflict)
		}
		a.assign(attrs, headType)
	} else if err := a.assignNode(head.Child, headType); err != nil {
		return err
	}

	for _, arg := range args {
		if err := a.assignSibling(arg); err != nil {
			return err
		}
	}
	return nil
}

// assignSibling types one non-head child per its leaf and edge-kind
// combination.
func (a *Assigner) assignSibling(arg argument) error {
	e := arg.edge
	attrs := a.graph.Attrs(e.Child)

	switch {
	case attrs.IsLeaf() && e.Kind == dag.Primary:
		a.assign(attrs, arg.typ)
		return nil

	case attrs.IsLeaf() && e.Kind == dag.Secondary:
		prior, ok := a.lex.Lookup(attrs.ID)
		if !ok {
			return fmt.Errorf("gap %q (%s): %w", attrs.Word, e.Rel, ErrPrematureSecondaryAssignment)
		}
		if arg.typ.Equal(prior) {
			// The gap copies its primary occurrence verbatim: mark it.
			a.assign(attrs, milltypes.Mark(arg.typ))
			return nil
		}
		functor, ok := prior.(milltypes.FunctorType)
		if !ok {
			return fmt.Errorf("gap %q cannot combine %s with %s: %w", attrs.Word, arg.typ, prior, ErrTypeConflict)
		}
		// Filler-gap dependency: the local gap type feeds the primary
		// functor's first argument, keeping its outer result and color.
		inner := milltypes.NewFunctor([]milltypes.Type{arg.typ}, functor.Args[0], []string{e.Rel}, false)
		a.assign(attrs, milltypes.NewFunctor([]milltypes.Type{inner}, functor.Result, []string{functor.Colors[0]}, false))
		return nil

	case e.Kind == dag.Secondary:
		return fmt.Errorf("%s edge to node %d: %w", e.Rel, attrs.ID, ErrUnsupportedSecondaryTarget)

	default:
		// An internal Primary child starts its own local derivation.
		return a.assignNode(e.Child, nil)
	}
}

// chooseHead picks the head edge: the first whose relation is in the head
// set, else the first crd child, else the first cnj child.
func (a *Assigner) chooseHead(edges []dag.ChildEdge) (dag.ChildEdge, error) {
	for _, e := range edges {
		if headRels[e.Rel] {
			return e, nil
		}
	}
	for _, rel := range []string{"crd", "cnj"} {
		for _, e := range edges {
			if e.Rel == rel {
				return e, nil
			}
		}
	}
	rels := make([]string, len(edges))
	for i, e := range edges {
		rels[i] = e.Rel
	}
	return dag.ChildEdge{}, fmt.Errorf("children %v: %w", rels, ErrHeadlessStructure)
}

// plainType resolves a node's category or POS key to its atomic type.
func (a *Assigner) plainType(n dag.NodeID) (milltypes.Type, error) {
	key, err := a.graph.TypeKey(n)
	if err != nil {
		return nil, err
	}
	atom, err := milltypes.Lookup(a.table, key)
	if err != nil {
		return nil, fmt.Errorf("node %d: %w", a.graph.Attrs(n).ID, err)
	}
	return atom, nil
}

func (a *Assigner) assign(attrs dag.Attrs, t milltypes.Type) {
	a.lex.Assign(lexicon.Entry{
		Word:  attrs.Word,
		ID:    attrs.ID,
		Begin: attrs.Begin,
		End:   attrs.End,
		Type:  t,
	})
}
