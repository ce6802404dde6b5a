// Package lexicon holds the word to type assignments produced by type
// extraction, one occurrence per lexical leaf.
package lexicon

import (
	"sort"
	"strconv"
	"strings"

	"github.com/konstantinosKokos/lassy-tlg-extraction/milltypes"
)

// Entry pairs one lexical occurrence with its assigned type. Word keeps the
// original surface form; Begin, End and ID locate the occurrence in its
// sentence.
type Entry struct {
	Word  string
	ID    int
	Begin int
	End   int
	Type  milltypes.Type
}

// Key returns the disambiguated lexicon key of the occurrence: the
// lowercased word joined to its node id, so repeated words in different
// positions stay distinct.
func (e Entry) Key() string {
	return strings.ToLower(e.Word) + "↔" + strconv.Itoa(e.ID)
}

// Lexicon maps the lexical occurrences of a derivation to types.
type Lexicon struct {
	entries map[int]Entry
}

// New returns an empty lexicon.
func New() *Lexicon {
	return &Lexicon{entries: make(map[int]Entry)}
}

// Assign stores the type of one occurrence, replacing any earlier
// assignment for the same node.
func (l *Lexicon) Assign(e Entry) {
	l.entries[e.ID] = e
}

// Lookup returns the type currently assigned to a node.
func (l *Lexicon) Lookup(id int) (milltypes.Type, bool) {
	e, ok := l.entries[id]
	if !ok {
		return nil, false
	}
	return e.Type, true
}

// Len returns the number of assigned occurrences.
func (l *Lexicon) Len() int {
	return len(l.entries)
}

// Entries returns the assignments ordered by (begin, end, id).
func (l *Lexicon) Entries() []Entry {
	out := make([]Entry, 0, len(l.entries))
	for _, e := range l.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
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

// Map returns the key to type mapping for unordered consumers.
func (l *Lexicon) Map() map[string]milltypes.Type {
	out := make(map[string]milltypes.Type, len(l.entries))
	for _, e := range l.entries {
		out[e.Key()] = e.Type
	}
	return out
}

// StripColors returns a copy of the lexicon with every dependency color
// removed from its types.
func (l *Lexicon) StripColors() *Lexicon {
	out := New()
	for id, e := range l.entries {
		e.Type = e.Type.StripColors()
		out.entries[id] = e
	}
	return out
}
