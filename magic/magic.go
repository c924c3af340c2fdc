package magic

import (
	"math"
	"sort"

	"github.com/repositony/ntools-go/internal/ntlog"
	"github.com/repositony/ntools-go/mesh"
	"github.com/repositony/ntools-go/voxel"
	"github.com/repositony/ntools-go/weightwindow"
)

// MeshToWW converts a flux mesh tally into a global weight window set
// using a single softening power and error cutoff applied to every
// energy/time group.
//
// Weights are calculated as (0.5 * result/peak)^power for every voxel
// whose relative error is at or below maxError; anything above is set to
// analogue (weight 0). When totalOnly is true, only the Total energy/time
// group is used.
func MeshToWW(m *mesh.Mesh, power, maxError float64, totalOnly bool) *weightwindow.WeightWindow {
	ww := initialiseFromMesh(m, totalOnly)
	ww.Weights = computeWeights(m, []float64{power}, []float64{maxError}, totalOnly)
	return ww
}

// MeshToWWAdvanced mirrors MeshToWW but allows a distinct power and error
// cutoff per energy/time group. powers and maxErrors are indexed in
// nested energy-then-time order; a single-element slice is broadcast to
// every group.
func MeshToWWAdvanced(m *mesh.Mesh, powers, maxErrors []float64) *weightwindow.WeightWindow {
	ww := initialiseFromMesh(m, false)
	ww.Weights = computeWeights(m, powers, maxErrors, false)
	return ww
}

// initialiseFromMesh sets up every weight window field except the
// weights themselves, inferred from the source mesh's geometry and bins.
func initialiseFromMesh(m *mesh.Mesh, totalOnly bool) *weightwindow.WeightWindow {
	ww := weightwindow.New()
	ww.Nr = 10
	if m.Geometry == mesh.Cylindrical {
		ww.Nr = 16
	}
	ww.Nwg = m.Geometry.WWGeometryCode()
	ww.Nfx, ww.Nfy, ww.Nfz = m.Iints(), m.Jints(), m.Kints()
	ww.Ncx, ww.Ncy, ww.Ncz = m.Iints(), m.Jints(), m.Kints()
	ww.X0, ww.Y0, ww.Z0 = m.Origin[0], m.Origin[1], m.Origin[2]
	ww.X1, ww.Y1, ww.Z1 = m.Axs[0], m.Axs[1], m.Axs[2]
	ww.X2, ww.Y2, ww.Z2 = m.Vec[0], m.Vec[1], m.Vec[2]
	ww.Particle = m.Particle.ID()

	if totalOnly {
		ww.E = []float64{m.EMesh[len(m.EMesh)-1]}
	} else {
		ww.E = append([]float64{}, m.EMesh[1:]...)
	}
	ww.Ne = len(ww.E)

	ww.QPSx = qpsTuples(m.IMesh)
	ww.QPSy = qpsTuples(m.JMesh)
	ww.QPSz = qpsTuples(m.KMesh)

	if m.Tbins() > 1 && !totalOnly {
		ww.Iv = 2
		ww.Nt = m.Tbins()
		ww.T = append([]float64{}, m.TMesh[1:]...)
	}

	return ww
}

// computeWeights processes every requested group, normalising each
// independently so per-group power/error parameters can be applied.
func computeWeights(m *mesh.Mesh, powers, maxErrors []float64, totalOnly bool) []float64 {
	energyIdx, timeIdx := relevantGroupsIdx(m, totalOnly)
	nGroups := len(energyIdx) * len(timeIdx)

	powerValues := collectPowerValues(powers, nGroups)
	errorValues := collectErrorValues(maxErrors, nGroups)

	var weights []float64
	g := 0
	for _, eIdx := range energyIdx {
		for _, tIdx := range timeIdx {
			voxels, err := m.SliceVoxelsByIdx(eIdx, tIdx)
			if err != nil {
				g++
				continue
			}
			weights = append(weights, weightsFromVoxels(m, voxels, powerValues[g], errorValues[g])...)
			g++
		}
	}
	return weights
}

// weightsFromVoxels computes one group's cell-ordered weight list,
// normalised to the group's own peak voxel.
func weightsFromVoxels(m *mesh.Mesh, voxels []voxel.Voxel, power, maxError float64) []float64 {
	fluxRef := voxels[0].Result
	for _, v := range voxels {
		if v.Result > fluxRef {
			fluxRef = v.Result
		}
	}
	if fluxRef == 0 {
		return make([]float64, len(voxels))
	}

	type cellWeight struct {
		cellIdx int
		weight  float64
	}
	weighted := make([]cellWeight, len(voxels))
	for i, v := range voxels {
		w := 0.0
		if v.Error <= maxError {
			w = constrainWeight(math.Pow(0.5*(v.Result/fluxRef), power))
		}
		cellIdx, _ := m.VoxelIndexToCellIndex(i)
		weighted[i] = cellWeight{cellIdx: cellIdx, weight: w}
	}
	sort.Slice(weighted, func(a, b int) bool { return weighted[a].cellIdx < weighted[b].cellIdx })

	out := make([]float64, len(weighted))
	for i, cw := range weighted {
		out[i] = cw.weight
	}
	return out
}

// collectPowerValues broadcasts a single power factor, uses a matching
// per-group list directly, or defaults to 0.7 with a warning if the
// lengths are inconsistent.
func collectPowerValues(powers []float64, nGroups int) []float64 {
	switch len(powers) {
	case 0:
		ntlog.Warnf("magic: no power factor provided, defaulting to 0.7")
		return repeat(0.7, nGroups)
	case 1:
		return repeat(powers[0], nGroups)
	default:
		if len(powers) == nGroups {
			return powers
		}
		ntlog.Warnf("magic: power factors != number of groups (expected %d, found %d), defaulting to 0.7", nGroups, len(powers))
		return repeat(0.7, nGroups)
	}
}

// collectErrorValues mirrors collectPowerValues, defaulting to 1.0 (no cutoff).
func collectErrorValues(errors []float64, nGroups int) []float64 {
	switch len(errors) {
	case 0:
		ntlog.Warnf("magic: no error tolerance provided, defaulting to 1.0")
		return repeat(1.0, nGroups)
	case 1:
		return repeat(errors[0], nGroups)
	default:
		if len(errors) == nGroups {
			return errors
		}
		ntlog.Warnf("magic: error tolerances != number of groups (expected %d, found %d), defaulting to 1.0", nGroups, len(errors))
		return repeat(1.0, nGroups)
	}
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// qpsTuples builds the coarse-mesh-bound triples WWINP block 2 expects:
// a fine-mesh ratio of 1, the coarse coordinate, and 1 fine mesh per
// coarse interval.
func qpsTuples(edges []float64) [][3]float64 {
	out := make([][3]float64, 0, len(edges)-1)
	for _, bound := range edges[1:] {
		out = append(out, [3]float64{1.0, bound, 1.0})
	}
	return out
}

// relevantGroupsIdx selects either just the Total group, or every valued
// group, for each axis.
func relevantGroupsIdx(m *mesh.Mesh, totalOnly bool) (energy, time []int) {
	ebins, tbins := m.Ebins(), m.Tbins()
	if totalOnly {
		return []int{ebins - 1}, []int{tbins - 1}
	}

	if ebins > 1 {
		energy = sequence(ebins - 1)
	} else {
		energy = []int{ebins - 1}
	}
	if tbins > 1 {
		time = sequence(tbins - 1)
	} else {
		time = []int{tbins - 1}
	}
	return energy, time
}

func sequence(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

// constrainWeight clamps values MCNP's weight window field cannot
// represent, a known pathology of CuV-derived meshes.
func constrainWeight(w float64) float64 {
	switch {
	case w < 1.0e-99:
		return 0.0
	case w >= 1.0e100:
		return 9.999e99
	default:
		return w
	}
}
