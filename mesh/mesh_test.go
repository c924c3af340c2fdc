package mesh_test

import (
	"testing"

	"github.com/repositony/ntools-go/mesh"
	"github.com/repositony/ntools-go/voxel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// buildScenario1 builds the COL rectangular 2x3x4 fixture from the
// end-to-end test scenarios: a single energy/time group, voxels 0..23
// with result=i, error=0.1.
func buildScenario1(t *testing.T) *mesh.Mesh {
	t.Helper()
	m := mesh.New(1)
	m.Geometry = mesh.Rectangular
	m.Format = mesh.COL
	m.IMesh = []float64{0, 1, 2}
	m.JMesh = []float64{0, 1, 2, 3}
	m.KMesh = []float64{0, 1, 2, 3, 4}
	m.EMesh = []float64{0, 1e36}
	m.TMesh = nil
	m.Voxels = make([]voxel.Voxel, 24)
	for i := range m.Voxels {
		v, err := voxel.New(i, float64(i), 0.1)
		require.NoError(t, err)
		m.Voxels[i] = v
	}
	return m
}

func TestMeshScenario1Reductions(t *testing.T) {
	m := buildScenario1(t)
	require.NoError(t, m.Validate())

	max, err := m.Maximum()
	require.NoError(t, err)
	assert.Equal(t, 23.0, max)

	min, err := m.Minimum()
	require.NoError(t, err)
	assert.Equal(t, 0.0, min)

	avg, err := m.AverageResult()
	require.NoError(t, err)
	assert.Equal(t, 11.5, avg)

	groups := m.EnergyGroups()
	require.Len(t, groups, 1)
	assert.True(t, groups[0].IsTotal())

	g, err := m.FindEnergyGroup(5.0)
	require.NoError(t, err)
	assert.True(t, g.IsTotal())
}

func TestEtijkVoxelIndexRoundTrip(t *testing.T) {
	m := buildScenario1(t)
	for e := 0; e < m.Ebins(); e++ {
		for tt := 0; tt < m.Tbins(); tt++ {
			for i := 0; i < m.Iints(); i++ {
				for j := 0; j < m.Jints(); j++ {
					for k := 0; k < m.Kints(); k++ {
						idx, err := m.EtijkToVoxelIndex(e, tt, i, j, k)
						require.NoError(t, err)
						e2, t2, i2, j2, k2, err := m.VoxelIndexToEtijk(idx)
						require.NoError(t, err)
						assert.Equal(t, [5]int{e, tt, i, j, k}, [5]int{e2, t2, i2, j2, k2})
					}
				}
			}
		}
	}
}

func TestCellIndexRoundTripAgainstVoxelIndex(t *testing.T) {
	m := buildScenario1(t)
	seen := map[int]int{}
	for idx := 0; idx < len(m.Voxels); idx++ {
		cellIdx, err := m.VoxelIndexToCellIndex(idx)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, cellIdx, 0)
		assert.Less(t, cellIdx, len(m.Voxels))

		e, tt, i, j, k, err := m.VoxelIndexToEtijk(idx)
		require.NoError(t, err)
		fromEtijk, err := m.EtijkToCellIndex(e, tt, i, j, k)
		require.NoError(t, err)
		assert.Equal(t, fromEtijk, cellIdx)

		prev, dup := seen[cellIdx]
		assert.False(t, dup, "cell index %d reached from voxels %d and %d", cellIdx, prev, idx)
		seen[cellIdx] = idx
	}
	assert.Len(t, seen, len(m.Voxels))
}

func TestParticleAnomalyReproduced(t *testing.T) {
	assert.Equal(t, mesh.XiBaryon, mesh.FromID(29))
	assert.Equal(t, mesh.XiBaryon, mesh.FromDesignator("29"))
	assert.Equal(t, mesh.XiBaryon, mesh.FromDesignator("w"))
	assert.Equal(t, mesh.XiBaryon, mesh.FromDesignator("xi_plus"))
}

func TestFromDesignatorUnknownFallsBack(t *testing.T) {
	assert.Equal(t, mesh.Unknown, mesh.FromDesignator("not-a-particle"))
}
