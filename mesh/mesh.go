package mesh

import (
	"fmt"

	"github.com/repositony/ntools-go/numeric"
	"github.com/repositony/ntools-go/voxel"
)

// Mesh is the canonical container every meshtal textual layout is reduced
// to. Voxels are always stored in the packed "voxel index" order
// ((((e*T+t)*I+i)*J+j)*K+k); callers needing MCNP's internal "cell index"
// order go through EtijkToCellIndex / VoxelIndexToCellIndex.
type Mesh struct {
	ID       uint32
	Geometry Geometry
	Particle Particle
	Format   Format

	IMesh, JMesh, KMesh []float64
	EMesh, TMesh        []float64

	Origin [3]float64
	Axs    [3]float64
	Vec    [3]float64

	Voxels []voxel.Voxel
}

// New returns an empty mesh with the given tally id and default axis
// vectors (Axs = +z, Vec = +x), matching the WWINP default convention.
func New(id uint32) *Mesh {
	return &Mesh{
		ID:  id,
		Axs: [3]float64{0, 0, 1},
		Vec: [3]float64{1, 0, 0},
	}
}

// Iints, Jints, Kints are the bin counts along each spatial axis.
func (m *Mesh) Iints() int { return maxInt(len(m.IMesh)-1, 0) }
func (m *Mesh) Jints() int { return maxInt(len(m.JMesh)-1, 0) }
func (m *Mesh) Kints() int { return maxInt(len(m.KMesh)-1, 0) }

// Eints and Tints are the raw number of parsed energy/time bin edges
// minus one, i.e. excluding any synthetic Total group.
func (m *Mesh) Eints() int {
	if len(m.EMesh) < 2 {
		return len(m.EMesh)
	}
	return len(m.EMesh) - 1
}
func (m *Mesh) Tints() int {
	if len(m.TMesh) < 2 {
		return len(m.TMesh)
	}
	return len(m.TMesh) - 1
}

// Ebins and Tbins are the number of distinct energy/time groups a voxel
// array actually carries, which is Eints/Tints plus one extra slot for
// a synthetic Total group whenever there is more than one real bin.
func (m *Mesh) Ebins() int { return bins(m.Eints()) }
func (m *Mesh) Tbins() int { return bins(m.Tints()) }

func bins(ints int) int {
	if ints <= 1 {
		if ints == 0 {
			return 1
		}
		return ints
	}
	return ints + 1
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// NVoxelsPerGroup returns iints*jints*kints.
func (m *Mesh) NVoxelsPerGroup() int {
	return m.Iints() * m.Jints() * m.Kints()
}

// NVoxelsExpected returns the total voxel count this mesh's bin counts
// imply: ebins*tbins*iints*jints*kints.
func (m *Mesh) NVoxelsExpected() int {
	return m.Ebins() * m.Tbins() * m.NVoxelsPerGroup()
}

// Validate checks the invariants every Mesh must satisfy once fully
// populated: voxel count matches bin counts, and every voxel's Index
// equals its position.
func (m *Mesh) Validate() error {
	if len(m.Voxels) != m.NVoxelsExpected() {
		return fmt.Errorf("mesh %d: %w (got %d, want %d)", m.ID, ErrVoxelCountMismatch, len(m.Voxels), m.NVoxelsExpected())
	}
	for i, v := range m.Voxels {
		if v.Index != i {
			return fmt.Errorf("mesh %d: voxel at position %d has index %d: %w", m.ID, i, v.Index, ErrIndexOutOfBounds)
		}
	}
	return nil
}

// EtijkToVoxelIndex computes the canonical packed index for the given
// 5-tuple of group/axis indices.
func (m *Mesh) EtijkToVoxelIndex(e, t, i, j, k int) (int, error) {
	I, J, K := m.Iints(), m.Jints(), m.Kints()
	T := m.Tbins()
	if e < 0 || e >= m.Ebins() || t < 0 || t >= T || i < 0 || i >= I || j < 0 || j >= J || k < 0 || k >= K {
		return 0, fmt.Errorf("mesh %d: %w", m.ID, ErrIndexOutOfBounds)
	}
	return ((((e*T+t)*I+i)*J + j) * K) + k, nil
}

// EtijkToCellIndex computes MCNP's internal cell-ordered index for the
// given 5-tuple, used by VTK rectilinear output and WWINP serialisation.
func (m *Mesh) EtijkToCellIndex(e, t, i, j, k int) (int, error) {
	I, J, K := m.Iints(), m.Jints(), m.Kints()
	T := m.Tbins()
	if e < 0 || e >= m.Ebins() || t < 0 || t >= T || i < 0 || i >= I || j < 0 || j >= J || k < 0 || k >= K {
		return 0, fmt.Errorf("mesh %d: %w", m.ID, ErrIndexOutOfBounds)
	}
	return ((((e*T+t)*K+k)*J + j) * I) + i, nil
}

// VoxelIndexToEtijk is the inverse of EtijkToVoxelIndex.
func (m *Mesh) VoxelIndexToEtijk(idx int) (e, t, i, j, k int, err error) {
	I, J, K := m.Iints(), m.Jints(), m.Kints()
	T := m.Tbins()
	if idx < 0 || idx >= m.NVoxelsExpected() {
		return 0, 0, 0, 0, 0, fmt.Errorf("mesh %d: %w", m.ID, ErrIndexOutOfBounds)
	}
	k = idx % K
	idx /= K
	j = idx % J
	idx /= J
	i = idx % I
	idx /= I
	t = idx % T
	idx /= T
	e = idx
	return e, t, i, j, k, nil
}

// VoxelIndexToCellIndex composes VoxelIndexToEtijk and EtijkToCellIndex.
func (m *Mesh) VoxelIndexToCellIndex(idx int) (int, error) {
	e, t, i, j, k, err := m.VoxelIndexToEtijk(idx)
	if err != nil {
		return 0, err
	}
	return m.EtijkToCellIndex(e, t, i, j, k)
}

// SliceVoxelsByIdx returns the O(1) subslice of Voxels belonging to group
// pair (eIdx, tIdx), relying on canonical packed ordering.
func (m *Mesh) SliceVoxelsByIdx(eIdx, tIdx int) ([]voxel.Voxel, error) {
	T := m.Tbins()
	n := m.NVoxelsPerGroup()
	if eIdx < 0 || eIdx >= m.Ebins() || tIdx < 0 || tIdx >= T {
		return nil, fmt.Errorf("mesh %d: %w", m.ID, ErrIndexOutOfBounds)
	}
	start := (eIdx*T + tIdx) * n
	return m.Voxels[start : start+n], nil
}

// EnergyGroups returns the list of Group values a caller should iterate
// when processing every energy group, respecting the Total-group rule.
func (m *Mesh) EnergyGroups() []voxel.Group {
	return groupsFor(m.EMesh, m.Eints())
}

// TimeGroups mirrors EnergyGroups for the time axis.
func (m *Mesh) TimeGroups() []voxel.Group {
	return groupsFor(m.TMesh, m.Tints())
}

func groupsFor(edges []float64, ints int) []voxel.Group {
	if ints <= 1 {
		return []voxel.Group{voxel.Total}
	}
	groups := make([]voxel.Group, 0, ints+1)
	for _, e := range edges[1:] {
		groups = append(groups, voxel.ValueGroup(e))
	}
	groups = append(groups, voxel.Total)
	return groups
}

// FindEnergyGroup returns Total if the mesh has a single energy bin,
// otherwise the Group at the upper edge of the bin containing e under
// inclusive bin-search rules.
func (m *Mesh) FindEnergyGroup(e float64) (voxel.Group, error) {
	return findGroup(m.EMesh, m.Eints(), e)
}

// FindTimeGroup mirrors FindEnergyGroup for the time axis.
func (m *Mesh) FindTimeGroup(t float64) (voxel.Group, error) {
	return findGroup(m.TMesh, m.Tints(), t)
}

func findGroup(edges []float64, ints int, value float64) (voxel.Group, error) {
	if ints <= 1 {
		return voxel.Total, nil
	}
	bin, err := numeric.FindBinInclusive(edges, value)
	if err != nil {
		return voxel.Group{}, err
	}
	return voxel.ValueGroup(edges[bin+1]), nil
}

// FindEnergyGroupIndex is the reverse of FindEnergyGroup: given a Group,
// it returns the index used by EtijkToVoxelIndex/EtijkToCellIndex.
func (m *Mesh) FindEnergyGroupIndex(g voxel.Group) (int, error) {
	return findGroupIndex(m.EMesh, m.Eints(), g)
}

// FindTimeGroupIndex mirrors FindEnergyGroupIndex for the time axis.
func (m *Mesh) FindTimeGroupIndex(g voxel.Group) (int, error) {
	return findGroupIndex(m.TMesh, m.Tints(), g)
}

func findGroupIndex(edges []float64, ints int, g voxel.Group) (int, error) {
	if ints <= 1 {
		return 0, nil
	}
	if g.IsTotal() {
		return ints, nil
	}
	value, _ := g.Value()
	for i, e := range edges[1:] {
		if e == value {
			return i, nil
		}
	}
	return 0, fmt.Errorf("mesh: %w", ErrIndexOutOfBounds)
}

// Scale multiplies every voxel's Result by factor; relative errors are
// unaffected.
func (m *Mesh) Scale(factor float64) {
	for i := range m.Voxels {
		m.Voxels[i].Result *= factor
	}
}

// Translate shifts the mesh's origin, and for rectangular meshes also
// shifts the i/j/k edge arrays, since those are absolute coordinates.
// Cylindrical edges are relative to Origin/Axs/Vec and are unaffected.
func (m *Mesh) Translate(dx, dy, dz float64) {
	m.Origin[0] += dx
	m.Origin[1] += dy
	m.Origin[2] += dz
	if m.Geometry == Rectangular {
		shift(m.IMesh, dx)
		shift(m.JMesh, dy)
		shift(m.KMesh, dz)
	}
}

func shift(edges []float64, d float64) {
	for i := range edges {
		edges[i] += d
	}
}

// Maximum, Minimum, and Average reduce over every voxel's Result.
func (m *Mesh) Maximum() (float64, error) { return reduceResults(m.Voxels, numeric.TryMax) }
func (m *Mesh) Minimum() (float64, error) { return reduceResults(m.Voxels, numeric.TryMin) }
func (m *Mesh) AverageResult() (float64, error) {
	return reduceResults(m.Voxels, numeric.Average)
}

// Clone returns a deep copy, safe for independent mutation of voxels or
// bin edges. Used by mesh-combination algorithms that need a working
// copy of a source mesh's geometry.
func (m *Mesh) Clone() *Mesh {
	clone := *m
	clone.IMesh = append([]float64{}, m.IMesh...)
	clone.JMesh = append([]float64{}, m.JMesh...)
	clone.KMesh = append([]float64{}, m.KMesh...)
	clone.EMesh = append([]float64{}, m.EMesh...)
	clone.TMesh = append([]float64{}, m.TMesh...)
	clone.Voxels = append([]voxel.Voxel{}, m.Voxels...)
	return &clone
}

func reduceResults(voxels []voxel.Voxel, f func([]float64) (float64, error)) (float64, error) {
	if len(voxels) == 0 {
		return 0, ErrEmptyMesh
	}
	results := make([]float64, len(voxels))
	for i, v := range voxels {
		results[i] = v.Result
	}
	return f(results)
}
