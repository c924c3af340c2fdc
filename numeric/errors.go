package numeric

import "errors"

var (
	// ErrEmptySlice is returned by TryMin/TryMax/Average when given no values.
	ErrEmptySlice = errors.New("numeric: empty slice")
	// ErrNonFinite is returned when a reduction encounters NaN or Inf.
	ErrNonFinite = errors.New("numeric: non-finite value")
	// ErrOutOfRange is returned by the bin-search functions when the query
	// value falls outside every edge in the supplied slice.
	ErrOutOfRange = errors.New("numeric: value out of range")
	// ErrTooFewEdges is returned when a bin search is given fewer than two
	// edges, which cannot describe any bin.
	ErrTooFewEdges = errors.New("numeric: need at least two edges")
	// ErrInvalidTolerance is returned by FindBinAverage for a tolerance
	// outside [0,1].
	ErrInvalidTolerance = errors.New("numeric: tolerance must be in [0,1]")
)
