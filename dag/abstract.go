package dag

import "fmt"

var (
	clauseCats     = map[string]bool{"smain": true, "ssub": true, "sv1": true}
	complementCats = map[string]bool{"ppart": true, "inf": true}
	abstractRels   = map[string]bool{"su": true, "obj1": true}
)

// infinitivalMarker is the category of the node wrapping te-infinitives.
const infinitivalMarker = "ti"

// WarningKind classifies non-fatal irregularities found during graph
// surgery.
type WarningKind uint8

const (
	// UnresolvedCoindexedPrimary flags a coindexed Primary su or obj1 edge
	// under a non-finite complement that was never promoted to an outer
	// clause. The edge is kept as is.
	UnresolvedCoindexedPrimary WarningKind = iota
)

func (k WarningKind) String() string {
	switch k {
	case UnresolvedCoindexedPrimary:
		return "unresolved_coindexed_primary"
	default:
		return "unknown"
	}
}

// Warning reports a non-fatal irregularity left in the graph.
type Warning struct {
	Kind   WarningKind
	Parent NodeID
	Node   NodeID
	Rel    string
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: %s edge %d -> %d", w.Kind, w.Rel, w.Parent, w.Node)
}

// PromoteAbstractArguments rewrites control and raising constructions. A
// clause holding a Secondary su or obj1 edge owns that argument in function
// but not in structure; when the coindexed counterpart sits as a Primary
// child of the clause's embedded non-finite complement, the Primary edge
// moves up to the clause and the Secondary edge disappears, so the group
// still resolves to exactly one Primary edge overall.
func (g *Graph) PromoteAbstractArguments() {
	for _, clause := range g.Parents() {
		if !clauseCats[g.Attrs(clause).Cat] {
			continue
		}
		real, ok := g.secondaryArgument(clause)
		if !ok {
			continue
		}
		index := g.Attrs(real.Child).Index
		if index == "" {
			continue
		}
		comp, ok := g.complementOf(clause)
		if !ok {
			continue
		}
		abstract, ok := g.abstractArgument(comp, index)
		if !ok {
			// One further level of chained non-finite embedding.
			comp, ok = g.complementOf(comp)
			if !ok {
				continue
			}
			abstract, ok = g.abstractArgument(comp, index)
			if !ok {
				continue
			}
		}
		g.removeEdge(comp, abstract.Child, abstract.Rel, Primary)
		g.removeEdge(clause, real.Child, real.Rel, Secondary)
		g.addEdge(clause, ChildEdge{Child: real.Child, Rel: real.Rel, Kind: Primary})
	}
}

// RemoveAbstractArguments deletes the redundant Secondary su and obj1
// copies left under non-finite complements once promotion has settled the
// real arguments. Coindexed Primary edges that were never promoted are kept
// and reported.
func (g *Graph) RemoveAbstractArguments() []Warning {
	var warnings []Warning
	for _, p := range g.Parents() {
		if !complementCats[g.Attrs(p).Cat] {
			continue
		}
		for _, e := range append([]ChildEdge(nil), g.adj[p]...) {
			if !abstractRels[e.Rel] || g.Attrs(e.Child).Index == "" {
				continue
			}
			switch e.Kind {
			case Secondary:
				g.removeEdge(p, e.Child, e.Rel, Secondary)
			case Primary:
				warnings = append(warnings, Warning{
					Kind:   UnresolvedCoindexedPrimary,
					Parent: p,
					Node:   e.Child,
					Rel:    e.Rel,
				})
			}
		}
	}
	return warnings
}

// secondaryArgument returns the clause's first Secondary su or obj1 edge.
func (g *Graph) secondaryArgument(clause NodeID) (ChildEdge, bool) {
	for _, e := range g.Children(clause) {
		if e.Kind == Secondary && abstractRels[e.Rel] {
			return e, true
		}
	}
	return ChildEdge{}, false
}

// complementOf finds a node's embedded non-finite complement, looking one
// level deeper through an infinitival marker when no direct complement
// exists.
func (g *Graph) complementOf(p NodeID) (NodeID, bool) {
	for _, e := range g.Children(p) {
		if complementCats[g.Attrs(e.Child).Cat] {
			return e.Child, true
		}
	}
	for _, e := range g.Children(p) {
		if g.Attrs(e.Child).Cat != infinitivalMarker {
			continue
		}
		for _, te := range g.Children(e.Child) {
			if complementCats[g.Attrs(te.Child).Cat] {
				return te.Child, true
			}
		}
	}
	return 0, false
}

// abstractArgument returns the complement's first Primary su or obj1 edge
// whose child is coindexed with the given group.
func (g *Graph) abstractArgument(comp NodeID, index string) (ChildEdge, bool) {
	for _, e := range g.Children(comp) {
		if e.Kind == Primary && abstractRels[e.Rel] && g.Attrs(e.Child).Index == index {
			return e, true
		}
	}
	return ChildEdge{}, false
}
