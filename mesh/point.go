package mesh

import (
	"fmt"
	"math"

	"github.com/repositony/ntools-go/numeric"
	"github.com/repositony/ntools-go/voxel"
)

// PointKind distinguishes the three coordinate systems a Point may be
// expressed in. Supplemented from the richer of two inconsistent
// upstream point-lookup designs; see DESIGN.md's Open Question decisions.
type PointKind uint8

const (
	// IndexKind addresses a point directly by (i, j, k) bin index.
	IndexKind PointKind = iota
	// RectangularKind addresses a point by (x, y, z).
	RectangularKind
	// CylindricalKind addresses a point by (r, z, theta-in-revolutions).
	CylindricalKind
)

func (k PointKind) String() string {
	switch k {
	case IndexKind:
		return "Index"
	case RectangularKind:
		return "Rectangular"
	case CylindricalKind:
		return "Cylindrical"
	default:
		return "Unknown"
	}
}

// BoundaryTreatment controls which bin a point exactly on a bin edge
// resolves to.
type BoundaryTreatment struct {
	kind string // "lower", "upper", "average"
	tol  float64
}

// Lower resolves a boundary point to the lower-indexed bin.
var Lower = BoundaryTreatment{kind: "lower"}

// Upper resolves a boundary point to the upper-indexed bin.
var Upper = BoundaryTreatment{kind: "upper"}

// Average returns a treatment that, within tol of an interior edge,
// considers the point to belong to both bracketing bins; the default
// tolerance used by the originating tool is 0.001.
func Average(tol float64) BoundaryTreatment {
	return BoundaryTreatment{kind: "average", tol: tol}
}

// DefaultBoundaryTreatment matches the upstream default: Average(0.001).
var DefaultBoundaryTreatment = Average(0.001)

// Point is a mesh-independent spatial coordinate plus an energy/time
// group pair, used to locate the nearest voxel in a Mesh via FindVoxel.
type Point struct {
	E, T voxel.Group
	I, J, K float64
	Kind    PointKind
}

// NewPoint builds a Point directly from bin-index coordinates.
func NewPoint(e, t voxel.Group, i, j, k float64) Point {
	return Point{E: e, T: t, I: i, J: j, K: k, Kind: IndexKind}
}

// FromXYZ builds a rectangular-coordinate Point.
func FromXYZ(e, t voxel.Group, x, y, z float64) Point {
	return Point{E: e, T: t, I: x, J: y, K: z, Kind: RectangularKind}
}

// FromRZT builds a cylindrical-coordinate Point; theta is in revolutions.
func FromRZT(e, t voxel.Group, r, z, theta float64) Point {
	return Point{E: e, T: t, I: r, J: z, K: theta, Kind: CylindricalKind}
}

// FindVoxel locates the voxel nearest p within m, honouring treatment for
// points that sit exactly on a bin edge. It requires p.Kind to match
// m.Geometry unless p.Kind is IndexKind.
func (m *Mesh) FindVoxel(p Point, treatment BoundaryTreatment) (int, error) {
	idxs, err := m.FindVoxels(p, treatment)
	if err != nil {
		return 0, err
	}
	return idxs[0], nil
}

// FindVoxels mirrors FindVoxel but returns every candidate voxel index;
// under Average treatment near an interior edge this can be more than
// one.
func (m *Mesh) FindVoxels(p Point, treatment BoundaryTreatment) ([]int, error) {
	if p.Kind != IndexKind && geometryForKind(p.Kind) != m.Geometry {
		return nil, fmt.Errorf("mesh %d: %w", m.ID, ErrGeometryMismatch)
	}

	eIdx, err := m.FindEnergyGroupIndex(p.E)
	if err != nil {
		return nil, err
	}
	tIdx, err := m.FindTimeGroupIndex(p.T)
	if err != nil {
		return nil, err
	}

	var iCandidates, jCandidates, kCandidates []int
	switch p.Kind {
	case IndexKind:
		iCandidates, jCandidates, kCandidates = []int{int(p.I)}, []int{int(p.J)}, []int{int(p.K)}
	default:
		iCandidates, err = resolveAxis(m.IMesh, p.I, treatment)
		if err != nil {
			return nil, err
		}
		jCandidates, err = resolveAxis(m.JMesh, p.J, treatment)
		if err != nil {
			return nil, err
		}
		kCandidates, err = resolveAxis(m.KMesh, p.K, treatment)
		if err != nil {
			return nil, err
		}
	}

	var out []int
	for _, i := range iCandidates {
		for _, j := range jCandidates {
			for _, k := range kCandidates {
				idx, err := m.EtijkToVoxelIndex(eIdx, tIdx, i, j, k)
				if err != nil {
					return nil, err
				}
				out = append(out, idx)
			}
		}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("mesh %d: %w", m.ID, ErrPointOutOfBounds)
	}
	return out, nil
}

func geometryForKind(k PointKind) Geometry {
	if k == CylindricalKind {
		return Cylindrical
	}
	return Rectangular
}

func resolveAxis(edges []float64, value float64, treatment BoundaryTreatment) ([]int, error) {
	switch treatment.kind {
	case "lower":
		bin, err := numeric.FindBinInclusive(edges, value)
		if err != nil {
			return nil, fmt.Errorf("mesh: %w", ErrPointOutOfBounds)
		}
		return []int{bin}, nil
	case "upper":
		bin, err := numeric.FindBinExclusive(edges, value)
		if err != nil {
			return nil, fmt.Errorf("mesh: %w", ErrPointOutOfBounds)
		}
		return []int{bin}, nil
	default:
		bins, err := numeric.FindBinAverage(edges, value, treatment.tol)
		if err != nil {
			return nil, fmt.Errorf("mesh: %w", ErrPointOutOfBounds)
		}
		return bins, nil
	}
}

// RZTToXYZ converts cylindrical coordinates (r, z, theta-in-revolutions)
// about the given origin/axis/reference-vector triplet to rectangular
// (x, y, z). theta is normalised to [0,1) revolutions before conversion.
func RZTToXYZ(r, z, theta float64, origin, axs, vec [3]float64) [3]float64 {
	theta = normaliseRevolutions(theta)
	angle := theta * 2 * math.Pi
	refAngle := math.Atan2(vec[1], vec[0])
	angle += refAngle
	x := origin[0] + r*math.Cos(angle)
	y := origin[1] + r*math.Sin(angle)
	_ = axs // axis alignment is handled by the VTK emitter's rotation step
	return [3]float64{x, y, origin[2] + z}
}

// XYZToRZT is the inverse of RZTToXYZ.
func XYZToRZT(x, y, z float64, origin, vec [3]float64) (r, zOut, theta float64) {
	dx, dy := x-origin[0], y-origin[1]
	r = math.Hypot(dx, dy)
	refAngle := math.Atan2(vec[1], vec[0])
	angle := math.Atan2(dy, dx) - refAngle
	theta = normaliseRevolutions(angle / (2 * math.Pi))
	return r, z - origin[2], theta
}

func normaliseRevolutions(theta float64) float64 {
	theta = math.Mod(theta, 1.0)
	if theta < 0 {
		theta += 1.0
	}
	return theta
}
