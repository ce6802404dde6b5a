package dag

import "fmt"

// SplitOptions configures the graph split. Parents whose category is in
// RemoveCats are deleted together with every edge touching them, then edges
// whose relation is in RemoveRels are deleted, then parents left without
// children are removed until the graph reaches a fixed point.
type SplitOptions struct {
	RemoveCats []string `json:"removeCats"`
	RemoveRels []string `json:"removeRels"`
}

// DefaultSplitOptions returns the standard removal sets: discourse units
// and the non-dependency relations.
func DefaultSplitOptions() SplitOptions {
	return SplitOptions{
		RemoveCats: []string{"du"},
		RemoveRels: []string{"dp", "sat", "nucl", "tag", "--", "top"},
	}
}

// Split prunes the graph per opts, potentially leaving several disjoint
// derivations behind. Removing the top relation detaches the original root
// from the Top sentinel, so the surviving subgraphs surface through Roots.
func (g *Graph) Split(opts SplitOptions) {
	cats := make(map[string]bool, len(opts.RemoveCats))
	for _, c := range opts.RemoveCats {
		cats[c] = true
	}
	rels := make(map[string]bool, len(opts.RemoveRels))
	for _, r := range opts.RemoveRels {
		rels[r] = true
	}

	dead := make(map[NodeID]bool)
	for _, p := range g.Parents() {
		if cats[g.Attrs(p).Cat] {
			dead[p] = true
		}
	}
	for p := range dead {
		g.removeParent(p)
	}
	for _, p := range g.Parents() {
		kept := g.adj[p][:0]
		for _, e := range g.adj[p] {
			if dead[e.Child] || rels[e.Rel] {
				continue
			}
			kept = append(kept, e)
		}
		g.adj[p] = kept
	}

	// Parents stripped of all children cascade away, as do the edges that
	// pointed at them.
	for {
		gone := make(map[NodeID]bool)
		for _, p := range g.Parents() {
			if len(g.adj[p]) == 0 {
				gone[p] = true
			}
		}
		if len(gone) == 0 {
			return
		}
		for p := range gone {
			g.removeParent(p)
		}
		for _, p := range g.Parents() {
			kept := g.adj[p][:0]
			for _, e := range g.adj[p] {
				if gone[e.Child] {
					continue
				}
				kept = append(kept, e)
			}
			g.adj[p] = kept
		}
	}
}

// Roots returns the root keys of the split graph ordered by
// (begin, end, id). Every node reachable only as a child must be a leaf;
// a wordless non-key child yields ErrMalformedGraph.
func (g *Graph) Roots() ([]NodeID, error) {
	isChild := make(map[NodeID]bool)
	for _, p := range g.Parents() {
		for _, e := range g.adj[p] {
			isChild[e.Child] = true
		}
	}
	checked := make(map[NodeID]bool)
	for _, p := range g.Parents() {
		for _, e := range g.adj[p] {
			if checked[e.Child] {
				continue
			}
			checked[e.Child] = true
			if !g.IsParent(e.Child) && !g.Attrs(e.Child).IsLeaf() {
				return nil, fmt.Errorf("node %d is neither a parent nor a leaf: %w", g.Attrs(e.Child).ID, ErrMalformedGraph)
			}
		}
	}

	var roots []NodeID
	for _, p := range g.Parents() {
		if p == Top || isChild[p] {
			continue
		}
		roots = append(roots, p)
	}
	g.sortBySpan(roots)
	return roots, nil
}
