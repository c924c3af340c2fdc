package voxel

import "github.com/repositony/ntools-go/numeric"

// Group labels one energy or time bin: either the synthetic Total group
// or a concrete upper bin edge. Group is comparable; equality on a Value
// group is bit-exact, matching the Value semantics this type models.
type Group struct {
	total bool
	value float64
}

// Total is the synthetic group representing "all energies"/"all times".
var Total = Group{total: true}

// ValueGroup builds a concrete group at the given upper bin edge.
func ValueGroup(upperEdge float64) Group {
	return Group{value: upperEdge}
}

// IsTotal reports whether g is the synthetic Total group.
func (g Group) IsTotal() bool { return g.total }

// Value returns g's upper edge and true, or (0, false) if g is Total.
func (g Group) Value() (float64, bool) {
	if g.total {
		return 0, false
	}
	return g.value, true
}

// String renders "Total" or the edge in scientific notation.
func (g Group) String() string {
	if g.total {
		return "Total"
	}
	return numeric.Sci(g.value, 2, 2)
}
