// Package milltypes implements the type algebra of the extraction
// pipeline: atomic categories, colored functor types, and the fixed
// mapping from Alpino categories and POS tags onto atomic types.
//
// Values are immutable. Every operation returns a new value, so types can
// be shared freely across lexica and goroutines.
package milltypes

import "strings"

// Type is a type-logical category: an atomic type or a colored functor.
type Type interface {
	// Equal reports structural equality, colors and modality included.
	Equal(other Type) bool
	// String renders the canonical form. It is deterministic and doubles
	// as the ordering key wherever types must be ranked.
	String() string
	// StripColors returns the type with every dependency color removed.
	StripColors() Type

	withModality(on bool) Type
}

// AtomicType is a bare category such as NP or S. Modality marks a gap
// (extraction) copy of the category.
type AtomicType struct {
	Label    string `json:"label"`
	Modality bool   `json:"modality,omitempty"`
}

// FunctorType maps a sequence of colored arguments onto a result type.
// Colors parallel Args one to one and carry the dependency label of each
// argument. Modality marks a functor built through a gap dependency.
type FunctorType struct {
	Args     []Type   `json:"args"`
	Result   Type     `json:"result"`
	Colors   []string `json:"colors"`
	Modality bool     `json:"modality,omitempty"`
}

// NewAtomic returns the atomic type with the given label.
func NewAtomic(label string) AtomicType {
	return AtomicType{Label: label}
}

// NewFunctor builds a functor type from parallel argument and color
// sequences. An empty argument list normalizes to the result itself, with
// the modality flag transferred onto it.
func NewFunctor(args []Type, result Type, colors []string, modality bool) Type {
	if len(args) == 0 {
		if modality {
			return result.withModality(true)
		}
		return result
	}
	return FunctorType{
		Args:     append([]Type(nil), args...),
		Result:   result,
		Colors:   append([]string(nil), colors...),
		Modality: modality,
	}
}

// Mark returns t with its top-level modality marker set.
func Mark(t Type) Type {
	return t.withModality(true)
}

// EqualModuloModality reports whether a and b are equal when the top-level
// modality marker is ignored. Nested modalities still count.
func EqualModuloModality(a, b Type) bool {
	return a.withModality(false).Equal(b.withModality(false))
}

// Equal reports structural equality with another type.
func (a AtomicType) Equal(other Type) bool {
	b, ok := other.(AtomicType)
	return ok && a == b
}

// String renders the label, prefixed with the modality marker when set.
func (a AtomicType) String() string {
	if a.Modality {
		return "◊" + a.Label
	}
	return a.Label
}

// StripColors is the identity on atomic types.
func (a AtomicType) StripColors() Type {
	return a
}

func (a AtomicType) withModality(on bool) Type {
	a.Modality = on
	return a
}

// Equal reports structural equality with another type.
func (f FunctorType) Equal(other Type) bool {
	g, ok := other.(FunctorType)
	if !ok || f.Modality != g.Modality {
		return false
	}
	if len(f.Args) != len(g.Args) || len(f.Colors) != len(g.Colors) {
		return false
	}
	for i := range f.Args {
		if !f.Args[i].Equal(g.Args[i]) {
			return false
		}
	}
	for i := range f.Colors {
		if f.Colors[i] != g.Colors[i] {
			return false
		}
	}
	return f.Result.Equal(g.Result)
}

// String renders the functor in curried arrow form, for example
// "NP<su> -> S". Functor arguments are parenthesized; a modality-marked
// functor is wrapped as "◊(...)".
func (f FunctorType) String() string {
	var b strings.Builder
	if f.Modality {
		b.WriteString("◊(")
	}
	for i, arg := range f.Args {
		b.WriteString(argString(arg))
		if i < len(f.Colors) && f.Colors[i] != "" {
			b.WriteString("<")
			b.WriteString(f.Colors[i])
			b.WriteString(">")
		}
		b.WriteString(" -> ")
	}
	b.WriteString(f.Result.String())
	if f.Modality {
		b.WriteString(")")
	}
	return b.String()
}

// StripColors removes colors from the functor and all nested types.
func (f FunctorType) StripColors() Type {
	args := make([]Type, len(f.Args))
	for i, a := range f.Args {
		args[i] = a.StripColors()
	}
	return FunctorType{
		Args:     args,
		Result:   f.Result.StripColors(),
		Modality: f.Modality,
	}
}

func (f FunctorType) withModality(on bool) Type {
	f.Modality = on
	return f
}

func argString(t Type) string {
	if _, ok := t.(FunctorType); ok {
		return "(" + t.String() + ")"
	}
	return t.String()
}
