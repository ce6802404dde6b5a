// Package alpino models Alpino dependency trees as stored in Lassy
// treebanks and parses them from their alpino_ds XML form.
package alpino

import (
	"encoding/xml"
	"errors"
	"fmt"
)

// ErrNoRoot flags an alpino_ds document without a root node element.
var ErrNoRoot = errors.New("alpino document has no root node")

// Node is a single vertex of an Alpino parse tree. A node is a leaf iff it
// carries a word. Nodes sharing a non-empty Index are coindexed duplicates
// of one lexical unit.
type Node struct {
	ID       int     `xml:"id,attr"`
	Rel      string  `xml:"rel,attr"`
	Cat      string  `xml:"cat,attr"`
	Pos      string  `xml:"pos,attr"`
	Word     string  `xml:"word,attr"`
	Begin    int     `xml:"begin,attr"`
	End      int     `xml:"end,attr"`
	Index    string  `xml:"index,attr"`
	Children []*Node `xml:"node"`
}

// Sentence holds the surface text of a tree.
type Sentence struct {
	ID   string `xml:"sentid,attr"`
	Text string `xml:",chardata"`
}

// Tree is one parsed alpino_ds document.
type Tree struct {
	XMLName  xml.Name `xml:"alpino_ds"`
	Version  string   `xml:"version,attr"`
	Root     *Node    `xml:"node"`
	Sentence Sentence `xml:"sentence"`
}

// Parse unmarshals a single alpino_ds document.
func Parse(data []byte) (*Tree, error) {
	var t Tree
	if err := xml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("unmarshal alpino_ds: %w", err)
	}
	if t.Root == nil {
		return nil, ErrNoRoot
	}
	return &t, nil
}

// IsLeaf reports whether the node carries a word.
func (n *Node) IsLeaf() bool {
	return n.Word != ""
}

// Clone returns a deep copy of the tree. Every sample is transformed on
// its own copy, never on a structure shared with another sample.
func (t *Tree) Clone() *Tree {
	c := *t
	c.Root = t.Root.clone()
	return &c
}

func (n *Node) clone() *Node {
	if n == nil {
		return nil
	}
	c := *n
	if n.Children != nil {
		c.Children = make([]*Node, len(n.Children))
		for i, ch := range n.Children {
			c.Children[i] = ch.clone()
		}
	}
	return &c
}

// Walk traverses the tree in document preorder, calling f with every node
// and its structural parent. The root's parent is nil.
func (t *Tree) Walk(f func(n, parent *Node)) {
	if t.Root == nil {
		return
	}
	walk(t.Root, nil, f)
}

func walk(n, parent *Node, f func(n, parent *Node)) {
	f(n, parent)
	for _, ch := range n.Children {
		walk(ch, n, f)
	}
}
