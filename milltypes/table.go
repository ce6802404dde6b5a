package milltypes

import (
	"errors"
	"fmt"
)

// ErrUnknownCategory flags a category or POS tag outside the type table.
var ErrUnknownCategory = errors.New("unknown category or POS tag")

// DefaultTable returns the fixed mapping from Alpino phrasal categories and
// POS tags to atomic types. Nominal tags share NP and finite clause
// categories share S; everything else maps onto its own atom.
func DefaultTable() map[string]AtomicType {
	labels := map[string]string{
		"adj":         "ADJ",
		"adv":         "ADV",
		"advp":        "ADVP",
		"ahi":         "AHI",
		"ap":          "AP",
		"comp":        "COMP",
		"comparative": "COMPARATIVE",
		"conj":        "CONJ",
		"cp":          "CP",
		"det":         "DET",
		"detp":        "DETP",
		"du":          "DU",
		"fixed":       "FIXED",
		"inf":         "INF",
		"mwu":         "MWU",
		"name":        "NP",
		"noun":        "NP",
		"np":          "NP",
		"num":         "NP",
		"oti":         "OTI",
		"part":        "PART",
		"pp":          "PP",
		"ppart":       "PPART",
		"ppres":       "PPRES",
		"prefix":      "PREFIX",
		"prep":        "PREP",
		"pron":        "NP",
		"punct":       "PUNCT",
		"rel":         "REL",
		"smain":       "S",
		"ssub":        "S",
		"sv1":         "S",
		"svan":        "SVAN",
		"tag":         "TAG",
		"ti":          "TI",
		"top":         "TOP",
		"verb":        "VERB",
		"vg":          "VG",
		"whq":         "WHQ",
		"whrel":       "WHREL",
		"whsub":       "WHSUB",
	}
	table := make(map[string]AtomicType, len(labels))
	for key, label := range labels {
		table[key] = NewAtomic(label)
	}
	return table
}

// Lookup resolves a plain type key through the table.
func Lookup(table map[string]AtomicType, key string) (AtomicType, error) {
	if t, ok := table[key]; ok {
		return t, nil
	}
	return AtomicType{}, fmt.Errorf("%w: %q", ErrUnknownCategory, key)
}
