package mesh_test

import (
	"fmt"

	"github.com/repositony/ntools-go/mesh"
	"github.com/repositony/ntools-go/voxel"
)

func ExampleMesh_EtijkToVoxelIndex() {
	m := mesh.New(14)
	m.Geometry = mesh.Rectangular
	m.IMesh = []float64{0, 1, 2}
	m.JMesh = []float64{0, 1, 2, 3}
	m.KMesh = []float64{0, 1, 2, 3, 4}
	m.EMesh = []float64{0, 1e36}
	m.Voxels = make([]voxel.Voxel, m.NVoxelsExpected())

	idx, _ := m.EtijkToVoxelIndex(0, 0, 1, 2, 3)
	fmt.Println(idx)
	// Output: 23
}
