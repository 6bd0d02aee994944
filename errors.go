package blockview

import "github.com/pkg/errors"

// Errors returned by view constructors. Constructors wrap them with context; use
// errors.Is to test for them. Access-time contract violations (indices out of range,
// writes to default regions) are not reported as errors, they panic.
var (
	// ErrShape is returned for non-positive extents, block sizes which do not fit the
	// extents, or backing buffers too small for a shape.
	ErrShape = errors.New("invalid shape")

	// ErrRank is returned if sub-views of a composite differ in their number of dimensions.
	ErrRank = errors.New("rank mismatch")

	// ErrDimension is returned for a dimension index outside [0, rank).
	ErrDimension = errors.New("dimension out of range")

	// ErrNoChildren is returned if a composite view is constructed without sub-views.
	ErrNoChildren = errors.New("composite view needs at least one child")

	// ErrNoDefault is returned if a constructor is handed a nil default value cell.
	ErrNoDefault = errors.New("missing default value")

	// ErrGap is returned for gaps at invalid positions, with negative length or
	// declared out of order.
	ErrGap = errors.New("invalid gap")

	// ErrOffset is returned for nesting offsets which name an unknown child or do not
	// match the rank of the view.
	ErrOffset = errors.New("invalid nesting offset")

	// ErrNotUniform is returned if a uniform chain is built from children of differing
	// extents along the chain dimension.
	ErrNotUniform = errors.New("children are not uniform along the chain dimension")
)
