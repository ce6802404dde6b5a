package dag

import (
	"errors"
	"testing"
)

// Handles: 0 top, 1 du, 2 first smain, 3 Jan, 4 loopt, 5 second smain,
// 6 Piet, 7 rent, 8 hard.
const discourseDoc = `<alpino_ds version="1.3">
  <node begin="0" cat="top" end="5" id="0" rel="top">
    <node begin="0" cat="du" end="5" id="1" rel="--">
      <node begin="0" cat="smain" end="2" id="2" rel="dp">
        <node begin="0" end="1" id="3" pos="name" rel="su" word="Jan"/>
        <node begin="1" end="2" id="4" pos="verb" rel="hd" word="loopt"/>
      </node>
      <node begin="2" cat="smain" end="5" id="5" rel="dp">
        <node begin="2" end="3" id="6" pos="name" rel="su" word="Piet"/>
        <node begin="3" end="4" id="7" pos="verb" rel="hd" word="rent"/>
        <node begin="4" end="5" id="8" pos="adv" rel="mod" word="hard"/>
      </node>
    </node>
  </node>
  <sentence>Jan loopt Piet rent hard</sentence>
</alpino_ds>`

func TestSplitSeparatesDiscourseUnits(t *testing.T) {
	g := mustGraph(t, discourseDoc)
	g.Split(DefaultSplitOptions())

	if g.IsParent(Top) {
		t.Error("Top should cascade away once its edges are removed")
	}
	if g.IsParent(0) || g.IsParent(1) {
		t.Error("discourse unit and the old root should be gone")
	}

	roots, err := g.Roots()
	if err != nil {
		t.Fatalf("Roots() error: %v", err)
	}
	if len(roots) != 2 || roots[0] != 2 || roots[1] != 5 {
		t.Errorf("Roots() = %v, want [2 5]", roots)
	}
}

func TestSplitCustomRelations(t *testing.T) {
	g := mustGraph(t, discourseDoc)
	opts := DefaultSplitOptions()
	opts.RemoveRels = append(opts.RemoveRels, "mod")
	g.Split(opts)

	second := g.Children(5)
	if len(second) != 2 {
		t.Fatalf("second clause has %d children, want 2", len(second))
	}
	for _, e := range second {
		if e.Rel == "mod" {
			t.Errorf("mod edge survived: %v", e)
		}
	}
}

func TestSplitKeepsSingleDerivation(t *testing.T) {
	g := mustGraph(t, simpleDoc)
	g.Split(DefaultSplitOptions())

	roots, err := g.Roots()
	if err != nil {
		t.Fatalf("Roots() error: %v", err)
	}
	if len(roots) != 1 || roots[0] != 1 {
		t.Errorf("Roots() = %v, want [1]", roots)
	}
	if len(g.Children(1)) != 2 {
		t.Errorf("clause children = %v", g.Children(1))
	}
}

func TestRootsLeafInvariant(t *testing.T) {
	// A childless wordless node is neither a parent nor a leaf.
	const doc = `<alpino_ds version="1.3">
  <node begin="0" cat="top" end="2" id="0" rel="top">
    <node begin="0" cat="smain" end="2" id="1" rel="--">
      <node begin="0" cat="np" end="1" id="2" rel="su"/>
      <node begin="1" end="2" id="3" pos="verb" rel="hd" word="loopt"/>
    </node>
  </node>
  <sentence>loopt</sentence>
</alpino_ds>`
	g := mustGraph(t, doc)
	g.Split(DefaultSplitOptions())

	if _, err := g.Roots(); !errors.Is(err, ErrMalformedGraph) {
		t.Errorf("Roots() error = %v, want ErrMalformedGraph", err)
	}
}
