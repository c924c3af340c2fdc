package mesh

// Format records which of the six meshtal textual layouts a tally was
// written in, or None before the reader has classified it.
type Format uint8

const (
	// None is the zero-value sentinel before a tally's format is known.
	None Format = iota
	// COL is the plain column layout: energy, time, i, j, k, result, error.
	COL
	// CF is COL with an additional volume / result*volume pair per row.
	CF
	// CUV is the UKAEA Cell-under-Voxel patch: one or more material-cell
	// rows aggregate into each voxel.
	CUV
	// IJ is a 2D matrix projection with k held fixed per table.
	IJ
	// IK is a 2D matrix projection with j held fixed per table.
	IK
	// JK is a 2D matrix projection with i held fixed per table.
	JK
)

// String renders the format tag as it appears in diagnostic output.
func (f Format) String() string {
	switch f {
	case COL:
		return "COL"
	case CF:
		return "CF"
	case CUV:
		return "CUV"
	case IJ:
		return "IJ"
	case IK:
		return "IK"
	case JK:
		return "JK"
	default:
		return "NONE"
	}
}

// IsMatrix reports whether f is one of the three 2D matrix projections,
// which all share the matrix-parser state machine.
func (f Format) IsMatrix() bool {
	return f == IJ || f == IK || f == JK
}
