// Package dag converts Alpino parse trees into directed acyclic graphs and
// performs the structural surgery the extraction pipeline needs: coindex
// resolution, adjacency grouping, multi-word-unit collapsing, splitting
// into disjoint derivations, and abstract-argument relabeling.
//
// Nodes live in an arena and are addressed by integer handles assigned in
// document preorder. All edges live in a single adjacency map keyed by
// parent handle, so an edit to an edge has exactly one observable
// location no matter how many structural positions share the node.
package dag

import "sort"

// NodeID is an arena handle.
type NodeID int

// Top is the sentinel parent of nodes that have no primary attachment.
const Top NodeID = -1

// EdgeKind distinguishes a node's structural attachment from a
// coindexation back-reference.
type EdgeKind uint8

const (
	// Primary is the node's true structural attachment. Every non-root
	// live node has exactly one.
	Primary EdgeKind = iota
	// Secondary is a coindexation back-reference: the same lexical unit
	// also serves another structural position.
	Secondary
)

// String returns "primary" or "secondary".
func (k EdgeKind) String() string {
	if k == Secondary {
		return "secondary"
	}
	return "primary"
}

// Attrs holds the node attributes the pipeline reads. ID, spans and Index
// come from the source tree; Word and Cat are rewritten when a multi-word
// unit collapses.
type Attrs struct {
	ID    int
	Word  string
	Pos   string
	Cat   string
	Begin int
	End   int
	Index string
}

// IsLeaf reports whether the node carries a word.
func (a Attrs) IsLeaf() bool {
	return a.Word != ""
}

// ChildEdge is one labeled edge from a parent to a child.
type ChildEdge struct {
	Child NodeID
	Rel   string
	Kind  EdgeKind
}

// ParentEdge is the incoming view of an edge, derived on demand from the
// adjacency map.
type ParentEdge struct {
	Parent NodeID
	Rel    string
	Kind   EdgeKind
}

// Graph is a DAG over an arena of immutable node attributes. The adjacency
// map is the single canonical edge store; stages mutate it in place.
type Graph struct {
	nodes    []Attrs
	adj      map[NodeID][]ChildEdge
	sentence string
}

// Sentence returns the surface sentence of the originating tree.
func (g *Graph) Sentence() string {
	return g.sentence
}

// Attrs returns the attributes of a node. The sentinel Top and
// out-of-range handles yield zero attributes.
func (g *Graph) Attrs(id NodeID) Attrs {
	if id < 0 || int(id) >= len(g.nodes) {
		return Attrs{}
	}
	return g.nodes[id]
}

// Children returns the ordered child edges of a parent. The returned slice
// is the graph's own; callers must not modify it.
func (g *Graph) Children(p NodeID) []ChildEdge {
	return g.adj[p]
}

// IsParent reports whether the node currently has outgoing edges.
func (g *Graph) IsParent(id NodeID) bool {
	_, ok := g.adj[id]
	return ok
}

// Parents returns all adjacency keys in ascending handle order, which is
// document preorder with Top first. Iterating through Parents keeps every
// stage deterministic.
func (g *Graph) Parents() []NodeID {
	keys := make([]NodeID, 0, len(g.adj))
	for k := range g.adj {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}

// Incoming returns the incoming edges of a node, ordered by parent handle.
func (g *Graph) Incoming(n NodeID) []ParentEdge {
	var in []ParentEdge
	for _, p := range g.Parents() {
		for _, e := range g.adj[p] {
			if e.Child == n {
				in = append(in, ParentEdge{Parent: p, Rel: e.Rel, Kind: e.Kind})
			}
		}
	}
	return in
}

// Leaves returns every distinct leaf reachable as a child, ordered by
// (begin, end, id).
func (g *Graph) Leaves() []NodeID {
	seen := make(map[NodeID]bool)
	var leaves []NodeID
	for _, p := range g.Parents() {
		for _, e := range g.adj[p] {
			if seen[e.Child] || !g.Attrs(e.Child).IsLeaf() {
				continue
			}
			seen[e.Child] = true
			leaves = append(leaves, e.Child)
		}
	}
	g.sortBySpan(leaves)
	return leaves
}

// Acyclic reports whether the adjacency map contains no directed cycle.
func (g *Graph) Acyclic() bool {
	const (
		unseen = iota
		open
		done
	)
	state := make(map[NodeID]int)

	var visit func(n NodeID) bool
	visit = func(n NodeID) bool {
		switch state[n] {
		case open:
			return false
		case done:
			return true
		}
		state[n] = open
		for _, e := range g.adj[n] {
			if !visit(e.Child) {
				return false
			}
		}
		state[n] = done
		return true
	}

	for _, p := range g.Parents() {
		if !visit(p) {
			return false
		}
	}
	return true
}

// sortBySpan orders node handles by (begin, end, id) ascending.
func (g *Graph) sortBySpan(ids []NodeID) {
	sort.SliceStable(ids, func(i, j int) bool {
		a, b := g.Attrs(ids[i]), g.Attrs(ids[j])
		if a.Begin != b.Begin {
			return a.Begin < b.Begin
		}
		if a.End != b.End {
			return a.End < b.End
		}
		return a.ID < b.ID
	})
}

// orderEdges returns the edges sorted by the child's (begin, end, id),
// leaving the graph's own child list untouched.
func (g *Graph) orderEdges(edges []ChildEdge) []ChildEdge {
	out := append([]ChildEdge(nil), edges...)
	sort.SliceStable(out, func(i, j int) bool {
		a, b := g.Attrs(out[i].Child), g.Attrs(out[j].Child)
		if a.Begin != b.Begin {
			return a.Begin < b.Begin
		}
		if a.End != b.End {
			return a.End < b.End
		}
		return a.ID < b.ID
	})
	return out
}

// OrderedChildren returns a span-ordered copy of a parent's child edges,
// excluding the given child. Pass Top to exclude nothing.
func (g *Graph) OrderedChildren(p NodeID, exclude NodeID) []ChildEdge {
	var edges []ChildEdge
	for _, e := range g.adj[p] {
		if e.Child == exclude {
			continue
		}
		edges = append(edges, e)
	}
	return g.orderEdges(edges)
}

func (g *Graph) setAttrs(id NodeID, a Attrs) {
	if id >= 0 && int(id) < len(g.nodes) {
		g.nodes[id] = a
	}
}

func (g *Graph) addEdge(p NodeID, e ChildEdge) {
	g.adj[p] = append(g.adj[p], e)
}

// removeEdge drops the first edge matching (child, rel, kind) under p and
// reports whether one was found.
func (g *Graph) removeEdge(p NodeID, child NodeID, rel string, kind EdgeKind) bool {
	edges := g.adj[p]
	for i, e := range edges {
		if e.Child == child && e.Rel == rel && e.Kind == kind {
			g.adj[p] = append(edges[:i:i], edges[i+1:]...)
			return true
		}
	}
	return false
}

func (g *Graph) removeParent(p NodeID) {
	delete(g.adj, p)
}
