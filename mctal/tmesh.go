package mctal

import "github.com/repositony/ntools-go/mesh"

// TmeshGeometry distinguishes the three superimposed-mesh coordinate
// systems MCNP's TMESH tally supports.
type TmeshGeometry uint8

const (
	TmeshRectangular TmeshGeometry = iota + 1
	TmeshCylindrical
	TmeshSpherical
)

// LongName returns "Rectangular", "Cylindrical", or "Spherical".
func (g TmeshGeometry) LongName() string {
	switch g {
	case TmeshCylindrical:
		return "Cylindrical"
	case TmeshSpherical:
		return "Spherical"
	default:
		return "Rectangular"
	}
}

// ShortName returns "Rec", "Cyl", or "Sph".
func (g TmeshGeometry) ShortName() string {
	switch g {
	case TmeshCylindrical:
		return "Cyl"
	case TmeshSpherical:
		return "Sph"
	default:
		return "Rec"
	}
}

// String returns the coordinate-system name, e.g. "XYZ", "RZT", "RPT".
func (g TmeshGeometry) String() string {
	switch g {
	case TmeshCylindrical:
		return "RZT"
	case TmeshSpherical:
		return "RPT"
	default:
		return "XYZ"
	}
}

// Tmesh is a superimposed "Mesh Tally Type A" (TMESH) result: the
// equivalent of a FMESH tally, but one that MCNP happens to also write
// into the MCTAL file. Supported TMESH types are track-averaged (1),
// source (2), energy-deposition (3), and DXTRAN (4) mesh tallies.
type Tmesh struct {
	ID        uint32
	Particles []mesh.Particle
	Geometry  TmeshGeometry

	NCora, NCorb, NCorc int
	Cora, Corb, Corc    []float64

	NVoxels         int
	NRegionBins     int
	NFlaggedBins    int
	NUserBins       int
	NSegmentBins    int
	NMultiplierBins int
	NCosineBins     int
	NEnergyBins     int
	NTimeBins       int

	Results []TallyResult
}

// NExpectedResults mirrors Tally.NExpectedResults for a Tmesh's bin axes.
func (t *Tmesh) NExpectedResults() int {
	counts := []int{
		t.NVoxels, t.NFlaggedBins, t.NUserBins, t.NSegmentBins,
		t.NMultiplierBins, t.NCosineBins, t.NEnergyBins, t.NTimeBins,
	}
	product := 1
	for _, c := range counts {
		if c > 0 {
			product *= c
		}
	}
	return product
}
