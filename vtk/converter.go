package vtk

import (
	"sort"
	"strconv"

	"github.com/repositony/ntools-go/internal/ntlog"
	"github.com/repositony/ntools-go/mesh"
	"github.com/repositony/ntools-go/numeric"
)

// ByteOrder selects the endianness recorded in the emitted VTK header.
// ParaView ignores it, but Visit only reads big endian.
type ByteOrder uint8

const (
	BigEndian ByteOrder = iota
	LittleEndian
)

// Converter configures how a Mesh is turned into a Document. The zero
// value is usable: all energy/time groups, no error datasets, big endian,
// resolution 1.
type Converter struct {
	// EnergyGroups restricts output to these group indices. Empty means
	// every group.
	EnergyGroups []int
	// TimeGroups mirrors EnergyGroups for the time axis.
	TimeGroups []int
	// IncludeErrors adds a second dataset per group holding relative
	// uncertainty, roughly doubling file size.
	IncludeErrors bool
	// ByteOrder is recorded in the document header.
	ByteOrder ByteOrder
	// Resolution subdivides cylindrical theta bins this many times to
	// round off the polygon. Values below the geometric minimum for a
	// given bin count are silently raised; see resolutionFor.
	Resolution uint8
}

// NewConverter returns a Converter with every field at its default.
func NewConverter() *Converter {
	return &Converter{ByteOrder: BigEndian, Resolution: 1}
}

// ConverterBuilder supports the chained-setter construction style, kept
// alongside the plain struct for callers who prefer it.
type ConverterBuilder struct {
	c Converter
}

// Builder starts a new ConverterBuilder at the default configuration.
func Builder() *ConverterBuilder {
	return &ConverterBuilder{c: *NewConverter()}
}

func (b *ConverterBuilder) EnergyGroups(idx []int) *ConverterBuilder { b.c.EnergyGroups = idx; return b }
func (b *ConverterBuilder) TimeGroups(idx []int) *ConverterBuilder   { b.c.TimeGroups = idx; return b }
func (b *ConverterBuilder) IncludeErrors(v bool) *ConverterBuilder   { b.c.IncludeErrors = v; return b }
func (b *ConverterBuilder) Order(o ByteOrder) *ConverterBuilder      { b.c.ByteOrder = o; return b }

func (b *ConverterBuilder) Resolution(r uint8) *ConverterBuilder {
	if r > 1 {
		ntlog.Warnf("vtk: increasing cylindrical resolution may significantly increase memory usage")
	}
	b.c.Resolution = r
	return b
}

// Build returns the configured Converter.
func (b *ConverterBuilder) Build() *Converter {
	c := b.c
	return &c
}

// Convert dispatches to the rectangular or cylindrical builder based on
// the mesh's geometry.
func (c *Converter) Convert(m *mesh.Mesh) (*Document, error) {
	if len(m.Voxels) == 0 {
		return nil, ErrEmptyMesh
	}
	switch m.Geometry {
	case mesh.Rectangular:
		return c.rectangularDocument(m)
	case mesh.Cylindrical:
		return c.cylindricalDocument(m)
	default:
		return nil, ErrUnsupportedGeometry
	}
}

// collectEnergyGroupIdx falls back to every group when none are
// requested, and silently ignores out-of-range indices.
func (c *Converter) collectEnergyGroupIdx(m *mesh.Mesh) []int {
	return collectGroupIdx(c.EnergyGroups, m.Ebins())
}

func (c *Converter) collectTimeGroupIdx(m *mesh.Mesh) []int {
	return collectGroupIdx(c.TimeGroups, m.Tbins())
}

func collectGroupIdx(requested []int, nBins int) []int {
	if len(requested) == 0 {
		return sequence(nBins)
	}
	seen := map[int]bool{}
	var out []int
	for _, idx := range requested {
		if idx >= 0 && idx < nBins && !seen[idx] {
			seen[idx] = true
			out = append(out, idx)
		}
	}
	if len(out) == 0 {
		ntlog.Warnf("vtk: no valid group index provided, defaulting to all")
		return sequence(nBins)
	}
	sort.Ints(out)
	return out
}

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// groupName renders the human-readable dataset name used in rectilinear
// output, e.g. "Energy[0] 2.00e+01 MeV, Time[0] 1.00e+12 shakes".
func groupName(m *mesh.Mesh, eIdx, tIdx int) string {
	energyGroups := m.EnergyGroups()
	timeGroups := m.TimeGroups()

	name := ""
	if v, ok := energyGroups[eIdx].Value(); ok {
		name = "Energy[" + strconv.Itoa(eIdx) + "] " + numeric.Sci(v, 2, 2) + " MeV"
	} else {
		name = "Energy[" + strconv.Itoa(eIdx) + "] Total"
	}

	if v, ok := timeGroups[tIdx].Value(); ok {
		name += ", Time[" + strconv.Itoa(tIdx) + "] " + numeric.Sci(v, 2, 2) + " shakes"
	} else if m.Tbins() > 1 {
		name += ", Time[" + strconv.Itoa(tIdx) + "] Total"
	}
	return name
}

// groupNameVisit is a Visit-friendly name with no whitespace or brackets.
func groupNameVisit(m *mesh.Mesh, eIdx, tIdx int) string {
	name := "Energy-" + strconv.Itoa(eIdx)
	if m.Tbins() > 1 {
		name += "_Time-" + strconv.Itoa(tIdx)
	}
	return name
}
