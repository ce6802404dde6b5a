package dag

import "errors"

// Error types for the dag package. All of them are fatal to the tree being
// processed and recoverable at corpus level by recording the sample.
var (
	// ErrInvalidCoindexGroup is returned when a coindex group contains no
	// node carrying a category or a word.
	ErrInvalidCoindexGroup = errors.New("coindex group has no main node candidate")

	// ErrMalformedGraph is returned when the graph breaks a structural
	// invariant, such as a childless non-leaf or a wordless mwu part.
	ErrMalformedGraph = errors.New("malformed graph")
)
