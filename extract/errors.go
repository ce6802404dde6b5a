package extract

import "errors"

// Error types for the type assignment stage. All of them are fatal to the
// tree being processed and recoverable at corpus level by recording the
// sample.
var (
	// ErrHeadlessStructure is returned when a node has neither a head
	// relation nor a coordination fallback among its children.
	ErrHeadlessStructure = errors.New("no head child found")

	// ErrTypeConflict is returned when a leaf is assigned two incompatible
	// types across passes.
	ErrTypeConflict = errors.New("conflicting types for leaf")

	// ErrPrematureSecondaryAssignment is returned when a gap type is
	// computed before the primary occurrence it copies has been typed.
	ErrPrematureSecondaryAssignment = errors.New("secondary type assigned before primary")

	// ErrUnsupportedSecondaryTarget is returned when a secondary edge
	// points at an internal node.
	ErrUnsupportedSecondaryTarget = errors.New("secondary edge targets internal node")
)
