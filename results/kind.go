package results

import (
	"errors"

	"github.com/konstantinosKokos/lassy-tlg-extraction/alpino"
	"github.com/konstantinosKokos/lassy-tlg-extraction/dag"
	"github.com/konstantinosKokos/lassy-tlg-extraction/extract"
	"github.com/konstantinosKokos/lassy-tlg-extraction/milltypes"
)

// Kind maps pipeline errors onto stable snake_case kind strings, usable as
// ByError keys across runs and schema versions.
func Kind(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, dag.ErrInvalidCoindexGroup):
		return "invalid_coindex_group"
	case errors.Is(err, dag.ErrMalformedGraph):
		return "malformed_graph"
	case errors.Is(err, extract.ErrHeadlessStructure):
		return "headless_structure"
	case errors.Is(err, extract.ErrTypeConflict):
		return "type_conflict"
	case errors.Is(err, extract.ErrPrematureSecondaryAssignment):
		return "premature_secondary_assignment"
	case errors.Is(err, extract.ErrUnsupportedSecondaryTarget):
		return "unsupported_secondary_target"
	case errors.Is(err, milltypes.ErrUnknownCategory):
		return "unknown_category"
	case errors.Is(err, alpino.ErrNoRoot):
		return "no_root"
	default:
		return "other"
	}
}
