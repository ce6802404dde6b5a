package results

import "github.com/konstantinosKokos/lassy-tlg-extraction/lexicon"

// FromLexica flattens extracted lexica into serializable entries, one
// slice per derivation.
func FromLexica(lexica []*lexicon.Lexicon) [][]Entry {
	out := make([][]Entry, len(lexica))
	for i, lex := range lexica {
		entries := lex.Entries()
		out[i] = make([]Entry, len(entries))
		for j, e := range entries {
			out[i][j] = Entry{Word: e.Word, Type: e.Type.String()}
		}
	}
	return out
}

// Failures returns the names of samples that did not succeed, for use as
// a skip set on a later run.
func (e *Extraction) Failures() []string {
	var names []string
	for _, s := range e.Samples {
		if s.Status == StatusError {
			names = append(names, s.Name)
		}
	}
	return names
}
