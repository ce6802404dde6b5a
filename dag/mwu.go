package dag

import (
	"fmt"
	"strings"
)

// CollapseMWU folds every multi-word-unit parent into a single leaf: the
// children's words joined in span order become the parent's word, the
// children's majority type key becomes the parent's category, and the
// children drop out of the graph. A second run over the same graph is a
// no-op.
func (g *Graph) CollapseMWU() error {
	var collapsed []NodeID
	for _, p := range g.Parents() {
		if g.Attrs(p).Cat != "mwu" {
			continue
		}
		var words []string
		for _, e := range g.orderEdges(g.Children(p)) {
			child := g.Attrs(e.Child)
			if child.Word == "" {
				return fmt.Errorf("mwu node %d has wordless child %d: %w", g.Attrs(p).ID, child.ID, ErrMalformedGraph)
			}
			words = append(words, child.Word)
		}
		key, err := g.majorityKey(p)
		if err != nil {
			return err
		}
		a := g.Attrs(p)
		a.Word = strings.Join(words, " ")
		a.Cat = key
		g.setAttrs(p, a)
		collapsed = append(collapsed, p)
	}
	for _, p := range collapsed {
		g.removeParent(p)
	}
	return nil
}
