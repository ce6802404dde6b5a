package lexicon

import (
	"testing"

	"github.com/konstantinosKokos/lassy-tlg-extraction/milltypes"
)

func TestEntriesOrder(t *testing.T) {
	np := milltypes.NewAtomic("NP")
	s := milltypes.NewAtomic("S")
	verb := milltypes.NewFunctor([]milltypes.Type{np}, s, []string{"su"}, false)

	l := New()
	l.Assign(Entry{Word: "loopt", ID: 3, Begin: 1, End: 2, Type: verb})
	l.Assign(Entry{Word: "Jan", ID: 2, Begin: 0, End: 1, Type: np})

	entries := l.Entries()
	if len(entries) != 2 {
		t.Fatalf("Entries() has %d items, want 2", len(entries))
	}
	if entries[0].Word != "Jan" || entries[1].Word != "loopt" {
		t.Errorf("order = %q, %q", entries[0].Word, entries[1].Word)
	}
	if got := entries[1].Type.String(); got != "NP<su> -> S" {
		t.Errorf("type = %q", got)
	}
}

func TestAssignReplaces(t *testing.T) {
	l := New()
	l.Assign(Entry{Word: "Jan", ID: 2, Type: milltypes.NewAtomic("NP")})
	l.Assign(Entry{Word: "Jan", ID: 2, Type: milltypes.Mark(milltypes.NewAtomic("NP"))})

	if l.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", l.Len())
	}
	typ, ok := l.Lookup(2)
	if !ok {
		t.Fatal("Lookup() missed an assigned node")
	}
	if typ.String() != "◊NP" {
		t.Errorf("type = %q, want the replacement", typ.String())
	}
}

func TestMapKeys(t *testing.T) {
	l := New()
	l.Assign(Entry{Word: "Jan", ID: 2, Type: milltypes.NewAtomic("NP")})
	l.Assign(Entry{Word: "jan", ID: 7, Type: milltypes.NewAtomic("NP")})

	m := l.Map()
	if len(m) != 2 {
		t.Fatalf("Map() has %d keys, want 2", len(m))
	}
	for _, key := range []string{"jan↔2", "jan↔7"} {
		if _, ok := m[key]; !ok {
			t.Errorf("Map() missing key %q", key)
		}
	}
}

func TestStripColors(t *testing.T) {
	np := milltypes.NewAtomic("NP")
	s := milltypes.NewAtomic("S")
	l := New()
	l.Assign(Entry{Word: "loopt", ID: 3, Type: milltypes.NewFunctor([]milltypes.Type{np}, s, []string{"su"}, false)})

	plain := l.StripColors()
	if got := plain.Entries()[0].Type.String(); got != "NP -> S" {
		t.Errorf("stripped type = %q", got)
	}
	// The original lexicon keeps its colors.
	if got := l.Entries()[0].Type.String(); got != "NP<su> -> S" {
		t.Errorf("original type = %q", got)
	}
}
