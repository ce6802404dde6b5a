package dag

import (
	"fmt"

	"github.com/konstantinosKokos/lassy-tlg-extraction/alpino"
)

// Resolved is the outcome of coindexation resolution: the node arena in
// document preorder plus, per node, the incoming edges the graph will carry.
// Duplicate coindexed nodes keep their arena slot but are never referenced
// again.
type Resolved struct {
	nodes    []Attrs
	incoming [][]ParentEdge
	live     []bool
	sentence string
}

// Resolve computes the coindex groups of a tree, selects each group's main
// node, and rewrites every reference to a duplicate as a Secondary edge onto
// that main node. Each non-root node keeps exactly one Primary incoming
// edge. A node is never attached to the same parent twice: when a redirect
// collides with an existing edge, the existing edge wins.
func Resolve(t *alpino.Tree) (*Resolved, error) {
	type visit struct {
		node   *alpino.Node
		parent *alpino.Node
	}
	var visits []visit
	handles := make(map[*alpino.Node]NodeID)
	t.Walk(func(n, parent *alpino.Node) {
		handles[n] = NodeID(len(visits))
		visits = append(visits, visit{node: n, parent: parent})
	})

	nodes := make([]Attrs, len(visits))
	for i, v := range visits {
		n := v.node
		nodes[i] = Attrs{
			ID:    n.ID,
			Word:  n.Word,
			Pos:   n.Pos,
			Cat:   n.Cat,
			Begin: n.Begin,
			End:   n.End,
			Index: n.Index,
		}
	}

	// Group coindexed nodes and pick each group's main node: the lowest
	// Alpino id among the members that carry content (cat or word).
	groups := make(map[string][]NodeID)
	var order []string
	for i, a := range nodes {
		if a.Index == "" {
			continue
		}
		if _, ok := groups[a.Index]; !ok {
			order = append(order, a.Index)
		}
		groups[a.Index] = append(groups[a.Index], NodeID(i))
	}

	main := make(map[string]NodeID, len(groups))
	duplicate := make([]bool, len(nodes))
	for _, index := range order {
		chosen := NodeID(-1)
		for _, m := range groups[index] {
			a := nodes[m]
			if a.Cat == "" && a.Word == "" {
				continue
			}
			if chosen < 0 || a.ID < nodes[chosen].ID {
				chosen = m
			}
		}
		if chosen < 0 {
			return nil, fmt.Errorf("coindex group %q has no content node: %w", index, ErrInvalidCoindexGroup)
		}
		main[index] = chosen
		for _, m := range groups[index] {
			if m != chosen {
				duplicate[m] = true
			}
		}
	}

	// Duplicates and everything beneath them drop out of the graph.
	live := make([]bool, len(nodes))
	for i, v := range visits {
		live[i] = !duplicate[i]
		if v.parent != nil && !live[handles[v.parent]] {
			live[i] = false
		}
	}

	incoming := make([][]ParentEdge, len(nodes))
	for i, v := range visits {
		if v.parent == nil || !live[i] {
			continue
		}
		p := handles[v.parent]
		incoming[i] = append(incoming[i], ParentEdge{Parent: p, Rel: v.node.Rel, Kind: Primary})
	}
	for i, v := range visits {
		if !duplicate[i] || v.parent == nil {
			continue
		}
		p := handles[v.parent]
		if !live[p] {
			continue
		}
		m := main[nodes[i].Index]
		if hasParent(incoming[m], p) {
			continue
		}
		incoming[m] = append(incoming[m], ParentEdge{Parent: p, Rel: v.node.Rel, Kind: Secondary})
	}

	return &Resolved{
		nodes:    nodes,
		incoming: incoming,
		live:     live,
		sentence: t.Sentence.Text,
	}, nil
}

func hasParent(in []ParentEdge, p NodeID) bool {
	for _, e := range in {
		if e.Parent == p {
			return true
		}
	}
	return false
}

// Group flips the resolved incoming edges into a parent to children
// adjacency map. Live nodes without a parent attach under Top with relation
// top; child lists come out in document preorder.
func (r *Resolved) Group() *Graph {
	g := &Graph{
		nodes:    append([]Attrs(nil), r.nodes...),
		adj:      make(map[NodeID][]ChildEdge),
		sentence: r.sentence,
	}
	for i := range r.nodes {
		if !r.live[i] {
			continue
		}
		n := NodeID(i)
		if len(r.incoming[i]) == 0 {
			g.addEdge(Top, ChildEdge{Child: n, Rel: "top", Kind: Primary})
			continue
		}
		for _, e := range r.incoming[i] {
			g.addEdge(e.Parent, ChildEdge{Child: n, Rel: e.Rel, Kind: e.Kind})
		}
	}
	return g
}
