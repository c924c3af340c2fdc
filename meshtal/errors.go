package meshtal

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownFormat is returned when pass one cannot classify a
	// tally's textual layout from its header lines.
	ErrUnknownFormat = errors.New("meshtal: could not classify tally format")
	// ErrTallyNotFound is returned when a caller requests a specific
	// tally id that pass one never discovered.
	ErrTallyNotFound = errors.New("meshtal: requested tally id not found")
	// ErrVoxelCountMismatch is returned when a finished tally's voxel
	// count disagrees with its declared bin counts.
	ErrVoxelCountMismatch = errors.New("meshtal: voxel count does not match expected bin counts")
	// ErrMaterialArrayLength is returned when a CUV tally's
	// Number_of_material_cells_per_voxel array length disagrees with
	// iints*jints*kints.
	ErrMaterialArrayLength = errors.New("meshtal: material-cell-per-voxel array length mismatch")
	// ErrMalformedNumber is returned when a numeric field cannot be
	// parsed even after the broken-exponent repair pass.
	ErrMalformedNumber = errors.New("meshtal: malformed numeric field")
	// ErrMalformedLine is returned for a data/header line that does not
	// match any recognised shape for the tally's current format.
	ErrMalformedLine = errors.New("meshtal: malformed line")
)

// ReadError wraps a sentinel error with the tally id and line number it
// occurred at, aggregating lower-level parser failures the way the
// reader's public entry points surface them.
type ReadError struct {
	TallyID uint32
	Line    int
	Err     error
}

func (e *ReadError) Error() string {
	return fmt.Sprintf("meshtal: tally %d, line %d: %v", e.TallyID, e.Line, e.Err)
}

func (e *ReadError) Unwrap() error { return e.Err }

func wrapErr(tallyID uint32, line int, err error) error {
	if err == nil {
		return nil
	}
	return &ReadError{TallyID: tallyID, Line: line, Err: err}
}
