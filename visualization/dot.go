// Package visualization renders parse trees and transformed graphs as
// Graphviz DOT text.
package visualization

import (
	"bytes"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/konstantinosKokos/lassy-tlg-extraction/alpino"
	"github.com/konstantinosKokos/lassy-tlg-extraction/dag"
)

// DefaultAttrs are the node attributes rendered when none are requested.
var DefaultAttrs = []string{"id", "word", "cat", "pos", "index"}

// TreeDOT renders the raw parse tree. Edge labels carry the dependency
// relation of the child node.
func TreeDOT(t *alpino.Tree, attrs []string) string {
	if len(attrs) == 0 {
		attrs = DefaultAttrs
	}

	var buf bytes.Buffer
	buf.WriteString("digraph tree {\n")
	writeProlog(&buf, t.Sentence.Text)

	t.Walk(func(n, parent *alpino.Node) {
		buf.WriteString(fmt.Sprintf("  n%d [label=%s];\n", n.ID, quote(nodeLabel(n, attrs))))
		if parent != nil {
			buf.WriteString(fmt.Sprintf("  n%d -> n%d [label=%s];\n", parent.ID, n.ID, quote(n.Rel)))
		}
	})

	buf.WriteString("}\n")
	return buf.String()
}

// GraphDOT renders the transformed graph. Primary edges are solid,
// secondary edges dashed.
func GraphDOT(g *dag.Graph, attrs []string) string {
	if len(attrs) == 0 {
		attrs = DefaultAttrs
	}

	var buf bytes.Buffer
	buf.WriteString("digraph dag {\n")
	writeProlog(&buf, g.Sentence())

	for _, id := range graphNodes(g) {
		if id == dag.Top {
			buf.WriteString("  top [label=\"top\"];\n")
			continue
		}
		buf.WriteString(fmt.Sprintf("  %s [label=%s];\n", nodeName(id), quote(attrsLabel(g.Attrs(id), attrs))))
	}

	for _, p := range g.Parents() {
		for _, e := range g.Children(p) {
			style := ""
			if e.Kind == dag.Secondary {
				style = ", style=dashed"
			}
			buf.WriteString(fmt.Sprintf("  %s -> %s [label=%s%s];\n",
				nodeName(p), nodeName(e.Child), quote(e.Rel), style))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// SaveDOT writes DOT text to a file.
func SaveDOT(dot, filename string) error {
	return os.WriteFile(filename, []byte(dot), 0644)
}

func writeProlog(buf *bytes.Buffer, sentence string) {
	buf.WriteString("  node [shape=box, fontname=\"Helvetica\"];\n")
	if sentence != "" {
		buf.WriteString(fmt.Sprintf("  title [shape=plaintext, label=%s];\n", quote(sentence)))
	}
}

func nodeName(id dag.NodeID) string {
	if id == dag.Top {
		return "top"
	}
	return fmt.Sprintf("n%d", id)
}

// graphNodes collects every node referenced by an edge, in handle order.
func graphNodes(g *dag.Graph) []dag.NodeID {
	seen := make(map[dag.NodeID]bool)
	for _, p := range g.Parents() {
		seen[p] = true
		for _, e := range g.Children(p) {
			seen[e.Child] = true
		}
	}

	ids := make([]dag.NodeID, 0, len(seen))
	for id := range seen {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func nodeLabel(n *alpino.Node, attrs []string) string {
	value := func(name string) string {
		switch name {
		case "id":
			return strconv.Itoa(n.ID)
		case "word":
			return n.Word
		case "cat":
			return n.Cat
		case "pos":
			return n.Pos
		case "index":
			return n.Index
		case "rel":
			return n.Rel
		case "begin":
			return strconv.Itoa(n.Begin)
		case "end":
			return strconv.Itoa(n.End)
		}
		return ""
	}
	return buildLabel(attrs, value, strconv.Itoa(n.ID))
}

func attrsLabel(a dag.Attrs, attrs []string) string {
	value := func(name string) string {
		switch name {
		case "id":
			return strconv.Itoa(a.ID)
		case "word":
			return a.Word
		case "cat":
			return a.Cat
		case "pos":
			return a.Pos
		case "index":
			return a.Index
		case "begin":
			return strconv.Itoa(a.Begin)
		case "end":
			return strconv.Itoa(a.End)
		}
		return ""
	}
	return buildLabel(attrs, value, strconv.Itoa(a.ID))
}

// buildLabel joins the non-empty requested attributes, one per line. The
// fallback keeps nodes with none of the attributes identifiable.
func buildLabel(attrs []string, value func(string) string, fallback string) string {
	var lines []string
	for _, name := range attrs {
		if v := value(name); v != "" {
			lines = append(lines, name+": "+v)
		}
	}
	if len(lines) == 0 {
		return fallback
	}
	return strings.Join(lines, "\n")
}

// quote renders a DOT double-quoted string.
func quote(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `"`, `\"`)
	s = strings.ReplaceAll(s, "\n", `\n`)
	return `"` + s + `"`
}
