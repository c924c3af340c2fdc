package vtk_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repositony/ntools-go/mesh"
	"github.com/repositony/ntools-go/vtk"
	"github.com/repositony/ntools-go/voxel"
)

func buildRectangularMesh() *mesh.Mesh {
	m := mesh.New(14)
	m.Geometry = mesh.Rectangular
	m.IMesh = []float64{0, 1, 2}
	m.JMesh = []float64{0, 1, 2, 3}
	m.KMesh = []float64{0, 1, 2, 3, 4}
	m.EMesh = []float64{0, 1e36}
	for i := 0; i < 24; i++ {
		v, _ := voxel.New(i, float64(i), 0.1)
		m.Voxels = append(m.Voxels, v)
	}
	return m
}

func TestConvertRectangularProducesValidXML(t *testing.T) {
	m := buildRectangularMesh()
	c := vtk.NewConverter()

	doc, err := c.Convert(m)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, doc.WriteXML(&buf))

	out := buf.String()
	assert.Contains(t, out, "RectilinearGrid")
	assert.Contains(t, out, "Fmesh14 results")
	assert.Contains(t, out, "<CellData>")
}

func TestConvertWithErrorsDoublesDatasets(t *testing.T) {
	m := buildRectangularMesh()
	c := vtk.Builder().IncludeErrors(true).Build()

	doc, err := c.Convert(m)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, doc.WriteXML(&buf))
	assert.Contains(t, buf.String(), ", error")
}

func TestConvertEmptyMeshErrors(t *testing.T) {
	m := mesh.New(1)
	c := vtk.NewConverter()
	_, err := c.Convert(m)
	assert.ErrorIs(t, err, vtk.ErrEmptyMesh)
}

func TestConvertCylindricalBuildsUnstructuredGrid(t *testing.T) {
	m := mesh.New(24)
	m.Geometry = mesh.Cylindrical
	m.IMesh = []float64{0, 5, 10}
	m.JMesh = []float64{0, 10}
	m.KMesh = []float64{0, 0.5, 1.0}
	m.EMesh = []float64{0, 1e36}
	for i := 0; i < 4; i++ {
		v, _ := voxel.New(i, float64(i), 0.05)
		m.Voxels = append(m.Voxels, v)
	}

	c := vtk.NewConverter()
	doc, err := c.Convert(m)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, doc.WriteXML(&buf))
	assert.Contains(t, buf.String(), "UnstructuredGrid")
}
