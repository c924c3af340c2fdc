package magic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repositony/ntools-go/magic"
	"github.com/repositony/ntools-go/mesh"
	"github.com/repositony/ntools-go/voxel"
)

func buildFluxMesh() *mesh.Mesh {
	m := mesh.New(104)
	m.Geometry = mesh.Rectangular
	m.IMesh = []float64{0, 1, 2}
	m.JMesh = []float64{0, 1}
	m.KMesh = []float64{0, 1}
	m.EMesh = []float64{0, 1e36}
	results := []float64{10, 20}
	for i, r := range results {
		v, _ := voxel.New(i, r, 0.05)
		m.Voxels = append(m.Voxels, v)
	}
	return m
}

func TestMeshToWWNormalisesToPeak(t *testing.T) {
	m := buildFluxMesh()
	ww := magic.MeshToWW(m, 1.0, 0.5, false)

	require.Len(t, ww.Weights, 2)
	// peak voxel (result=20) should normalise to weight 0.5^1 = 0.5
	assert.InDelta(t, 0.5, maxOf(ww.Weights), 1e-9)
	assert.Equal(t, m.Iints(), ww.Nfx)
	assert.Equal(t, uint8(1), ww.Nwg)
}

func TestMeshToWWErrorCutoffZeroesWeight(t *testing.T) {
	m := buildFluxMesh()
	ww := magic.MeshToWW(m, 1.0, 0.01, false) // voxel error 0.05 > cutoff 0.01
	for _, w := range ww.Weights {
		assert.Equal(t, 0.0, w)
	}
}

func TestMeshToWWAdvancedPerGroup(t *testing.T) {
	m := buildFluxMesh()
	ww := magic.MeshToWWAdvanced(m, []float64{1.0}, []float64{1.0})
	require.Len(t, ww.Weights, 2)
}

func maxOf(values []float64) float64 {
	m := values[0]
	for _, v := range values {
		if v > m {
			m = v
		}
	}
	return m
}

func TestExtrapolateDensityShapeMismatch(t *testing.T) {
	vd := buildFluxMesh()
	rd := buildFluxMesh()
	uc := mesh.New(1)
	_, err := magic.ExtrapolateDensity(vd, rd, uc, 1.0, 1.0)
	assert.ErrorIs(t, err, magic.ErrGroupCountMismatch)
}

func TestExtrapolateDensityCombinesMeshes(t *testing.T) {
	vd := buildFluxMesh()
	rd := buildFluxMesh()
	uc := buildFluxMesh()

	result, err := magic.ExtrapolateDensity(vd, rd, uc, 1.0, 1.0)
	require.NoError(t, err)
	require.Len(t, result.Voxels, 2)
}
