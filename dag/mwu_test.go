package dag

import (
	"errors"
	"reflect"
	"testing"
)

// Handles: 0 top, 1 smain, 2 mwu, 3 Den, 4 Haag, 5 wint.
const mwuDoc = `<alpino_ds version="1.3">
  <node begin="0" cat="top" end="3" id="0" rel="top">
    <node begin="0" cat="smain" end="3" id="1" rel="--">
      <node begin="0" cat="mwu" end="2" id="2" rel="su">
        <node begin="0" end="1" id="3" pos="name" rel="mwp" word="Den"/>
        <node begin="1" end="2" id="4" pos="name" rel="mwp" word="Haag"/>
      </node>
      <node begin="2" end="3" id="5" pos="verb" rel="hd" word="wint"/>
    </node>
  </node>
  <sentence>Den Haag wint</sentence>
</alpino_ds>`

func TestCollapseMWU(t *testing.T) {
	g := mustGraph(t, mwuDoc)
	if err := g.CollapseMWU(); err != nil {
		t.Fatalf("CollapseMWU() error: %v", err)
	}

	unit := g.Attrs(2)
	if unit.Word != "Den Haag" {
		t.Errorf("collapsed word = %q, want %q", unit.Word, "Den Haag")
	}
	if unit.Cat != "name" {
		t.Errorf("collapsed cat = %q, want name", unit.Cat)
	}
	if !unit.IsLeaf() {
		t.Error("collapsed unit should behave as a leaf")
	}
	if g.IsParent(2) {
		t.Error("collapsed unit should no longer be a parent")
	}

	// The edge from the clause to the unit survives untouched.
	smain := g.Children(1)
	if len(smain) != 2 || smain[0].Child != 2 || smain[0].Rel != "su" {
		t.Errorf("smain children = %v", smain)
	}
}

func TestCollapseMWUIdempotent(t *testing.T) {
	g := mustGraph(t, mwuDoc)
	if err := g.CollapseMWU(); err != nil {
		t.Fatalf("CollapseMWU() error: %v", err)
	}

	nodes := append([]Attrs(nil), g.nodes...)
	adj := make(map[NodeID][]ChildEdge, len(g.adj))
	for k, v := range g.adj {
		adj[k] = append([]ChildEdge(nil), v...)
	}

	if err := g.CollapseMWU(); err != nil {
		t.Fatalf("second CollapseMWU() error: %v", err)
	}
	if !reflect.DeepEqual(g.nodes, nodes) {
		t.Error("second pass mutated node attributes")
	}
	if !reflect.DeepEqual(g.adj, adj) {
		t.Error("second pass mutated adjacency")
	}
}

func TestCollapseMWUWordlessChild(t *testing.T) {
	const doc = `<alpino_ds version="1.3">
  <node begin="0" cat="top" end="2" id="0" rel="top">
    <node begin="0" cat="mwu" end="2" id="1" rel="--">
      <node begin="0" end="1" id="2" pos="name" rel="mwp" word="Den"/>
      <node begin="1" end="2" id="3" pos="name" rel="mwp"/>
    </node>
  </node>
  <sentence>Den</sentence>
</alpino_ds>`
	g := mustGraph(t, doc)
	if err := g.CollapseMWU(); !errors.Is(err, ErrMalformedGraph) {
		t.Errorf("CollapseMWU() error = %v, want ErrMalformedGraph", err)
	}
}
