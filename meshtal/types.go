package meshtal

import "github.com/repositony/ntools-go/mesh"

// ReaderOptions configures a Reader, following this module's
// options-struct-plus-default-constructor convention.
type ReaderOptions struct {
	// TargetID, if non-zero, restricts reading to a single tally id;
	// pass one returns as soon as that id's format is known.
	TargetID uint32
	// ProgressEvery, when positive, turns on progress reporting, which is
	// throttled to at most one report per second; the value itself does
	// not set a line interval. Zero disables progress reporting entirely.
	ProgressEvery int
}

// DefaultReaderOptions returns the zero-configuration default: read every
// tally, with progress reporting turned on.
func DefaultReaderOptions() ReaderOptions {
	return ReaderOptions{ProgressEvery: 100000}
}

// tallyInfo is pass one's discovery record for a single tally.
type tallyInfo struct {
	id       uint32
	geometry mesh.Geometry
	format   mesh.Format
}
