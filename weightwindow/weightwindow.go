package weightwindow

// WeightWindow is a full set of mesh-based global weight windows for a
// single mesh geometry and particle type, matching the WWINP/WWOUT/WWONE
// file layout blocks 1-3.
type WeightWindow struct {
	// Basic header info
	F      uint8  // file type, always 1
	Iv     uint8  // 1=no time bins, 2=yes
	Ni     uint8  // number of particle types
	Ne     int    // number of energy bins for this particle type
	Nt     int    // number of time bins for this particle type
	Nr     uint8  // words describing mesh: 10=rectangular, 16=cyl/sph
	Nwg    uint8  // mesh type: 1=rec, 2=cyl, 3=sph
	Probid string // problem description, truncated to 19 chars on write

	// Fine mesh point counts
	Nfx, Nfy, Nfz int

	// Coarse mesh point counts
	Ncx, Ncy, Ncz int

	// Origin: corner of (x,y,z) rectangular, bottom centre of (r,z,t)
	// cylindrical, or centre of (r,p,t) spherical
	X0, Y0, Z0 float64

	// Axs: vector from origin to (x1,y1,z1), defines the cylinder/polar axis
	X1, Y1, Z1 float64

	// Vec: vector from origin to (x2,y2,z2), defines the azimuthal reference
	X2, Y2, Z2 float64

	E []float64 // upper energy bin bounds
	T []float64 // upper time bin bounds, when Nt>1

	// Block 2: fine-mesh-ratio/coarse-coordinate/fine-mesh-count triples
	// for each coarse mesh interval along each axis.
	QPSx [][3]float64
	QPSy [][3]float64
	QPSz [][3]float64

	// Weights is the flattened weight array in cell-index order: energy
	// slowest, then time, then k, j, and i fastest, as CellIndexToEtijk
	// decodes it.
	Weights []float64

	// Particle retains the MCNP particle designator for multi-particle sets.
	Particle uint8
}

// New returns a WeightWindow at MCNP's documented defaults: rectangular
// geometry (Nwg=1, Nr=10), a single energy/time bin, +z axis, +x vec.
func New() *WeightWindow {
	return &WeightWindow{
		F:   1,
		Iv:  1,
		Ni:  1,
		Ne:  1,
		Nt:  1,
		Nr:  10,
		Nwg: 1,
		Z1:  1.0,
		X2:  1.0,
	}
}

// Scale multiplies every weight by factor.
func (w *WeightWindow) Scale(factor float64) {
	for i := range w.Weights {
		w.Weights[i] *= factor
	}
}

// NonAnaloguePercentage returns the percentage of weights that are
// non-zero, a rough sanity check that a conversion produced sensible
// importances (100% is not expected if any region has zero importance).
func (w *WeightWindow) NonAnaloguePercentage() float64 {
	if len(w.Weights) == 0 {
		return 0
	}
	nonZero := 0
	for _, v := range w.Weights {
		if v != 0 {
			nonZero++
		}
	}
	return 100.0 * float64(nonZero) / float64(len(w.Weights))
}

// CellIndexToEtijk decodes a cell index, MCNP's internal ordering
// ((((e*Nt+t)*Ncz+k)*Ncy+j)*Ncx+i), into its group/axis indices. This
// ordering differs from EtijkToVoxelIndex's packing, where k varies
// fastest.
func (w *WeightWindow) CellIndexToEtijk(idx int) (e, t, i, j, k int) {
	a := w.Nt * w.Ncz * w.Ncy * w.Ncx
	b := w.Ncz * w.Ncy * w.Ncx
	c := w.Ncx * w.Ncy
	d := w.Ncx

	e = idx / a
	t = (idx - e*a) / b
	k = (idx - e*a - t*b) / c
	j = (idx - e*a - t*b - k*c) / d
	i = idx - e*a - t*b - k*c - j*d
	return
}

// EtijkToVoxelIndex computes the packed voxel index for a 5-tuple of
// group/axis indices.
func (w *WeightWindow) EtijkToVoxelIndex(e, t, i, j, k int) int {
	idx := e * (w.Nt * w.Ncx * w.Ncy * w.Ncz)
	idx += t * (w.Ncx * w.Ncy * w.Ncz)
	idx += i * (w.Ncy * w.Ncz)
	idx += j * w.Ncz
	idx += k
	return idx
}

// CellIndexToVoxelIndex composes CellIndexToEtijk and EtijkToVoxelIndex,
// generally used when mapping weight windows onto a vtk plotting order.
func (w *WeightWindow) CellIndexToVoxelIndex(idx int) int {
	e, t, i, j, k := w.CellIndexToEtijk(idx)
	return w.EtijkToVoxelIndex(e, t, i, j, k)
}
