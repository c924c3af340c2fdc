package vtk

import (
	"math"
	"sort"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/repositony/ntools-go/mesh"
)

// cylindrical cell types, matching the VTK legacy cell type enumeration.
const (
	vtkWedge uint8 = 13
	vtkVoxel uint8 = 11
)

// cylindricalDocument builds an UnstructuredGrid document since VTK has
// no native cylindrical cell family. Every r/theta/z voxel becomes an
// explicit hexahedron, except the innermost ring (r=0) which collapses to
// a wedge.
func (c *Converter) cylindricalDocument(m *mesh.Mesh) (*Document, error) {
	points, offsets, types := c.cellVerticies(m)

	connectivity := make([]uint64, 0, offsetTotal(offsets))
	var n uint64
	if len(offsets) > 0 {
		n = offsets[len(offsets)-1]
	}
	for i := uint64(0); i < n; i++ {
		connectivity = append(connectivity, i)
	}

	doc := &Document{
		kind:         UnstructuredGrid,
		title:        title(m),
		order:        c.ByteOrder,
		points:       points,
		connectivity: connectivity,
		offsets:      offsets,
		cellTypes:    types,
	}

	energyGroups := c.collectEnergyGroupIdx(m)
	timeGroups := c.collectTimeGroupIdx(m)
	cellOrder := c.cylinderCellOrder(m)
	resolution := c.resolutionFor(m.Kints())

	for _, eIdx := range energyGroups {
		for _, tIdx := range timeGroups {
			voxels, err := m.SliceVoxelsByIdx(eIdx, tIdx)
			if err != nil {
				return nil, err
			}

			results := make([]float64, len(cellOrder))
			errors := make([]float64, len(cellOrder))
			for pos, voxelIdx := range cellOrder {
				results[pos] = voxels[voxelIdx].Result
				errors[pos] = voxels[voxelIdx].Error
			}
			results = repeatValues(results, resolution)
			errors = repeatValues(errors, resolution)

			doc.cellData = append(doc.cellData, dataArray{name: groupNameVisit(m, eIdx, tIdx), values: results})
			if c.IncludeErrors {
				doc.cellData = append(doc.cellData, dataArray{name: groupNameVisit(m, eIdx, tIdx) + "_error", values: errors})
			}
		}
	}

	return doc, nil
}

func offsetTotal(offsets []uint64) int {
	if len(offsets) == 0 {
		return 0
	}
	return int(offsets[len(offsets)-1])
}

// cellVerticies walks the mesh layer by layer (along z/j), emitting a
// wedge ring for the innermost radius and voxel rings for every
// subsequent one.
func (c *Converter) cellVerticies(m *mesh.Mesh) ([]float64, []uint64, []uint8) {
	var points []float64
	var offsets []uint64
	var types []uint8

	rotation := initRotation(m.Axs)
	rotationVec := math.Atan2(m.Vec[1], m.Vec[0])

	for layer := 0; layer < m.Jints(); layer++ {
		c.wedgeSegments(m, layer, &points, &offsets, &types, rotation, rotationVec)

		for ring := 1; ring < m.Iints(); ring++ {
			c.voxelSegments(m, ring, layer, &points, &offsets, &types, rotation, rotationVec)
		}
	}

	return points, offsets, types
}

func (c *Converter) wedgeSegments(m *mesh.Mesh, zIdx int, points *[]float64, offsets *[]uint64, types *[]uint8, rotation *mgl64.Quat, rotationVec float64) {
	resolution := c.resolutionFor(m.Kints())
	step := 2.0 * math.Pi / float64(m.Kints()) / float64(resolution)
	r := m.IMesh[1]

	n := m.Kints() * int(resolution)
	for i := 0; i < n; i++ {
		t0 := step*float64(i) + rotationVec
		t1 := step*float64(i+1) + rotationVec

		x0, y0 := r*math.Cos(t0), r*math.Sin(t0)
		x1, y1 := r*math.Cos(t1), r*math.Sin(t1)

		for idx := zIdx; idx <= zIdx+1; idx++ {
			z := m.JMesh[idx]
			appendVertex(points, rotation, m.Origin, 0, 0, z)
			appendVertex(points, rotation, m.Origin, x0, y0, z)
			appendVertex(points, rotation, m.Origin, x1, y1, z)
		}

		updateOffsets(offsets, 6)
		*types = append(*types, vtkWedge)
	}
}

func (c *Converter) voxelSegments(m *mesh.Mesh, rIdx, zIdx int, points *[]float64, offsets *[]uint64, types *[]uint8, rotation *mgl64.Quat, rotationVec float64) {
	resolution := c.resolutionFor(m.Kints())
	step := 2.0 * math.Pi / float64(m.Kints()) / float64(resolution)
	r0, r1 := m.IMesh[rIdx], m.IMesh[rIdx+1]

	n := m.Kints() * int(resolution)
	for i := 0; i < n; i++ {
		t0 := step*float64(i) + rotationVec
		t1 := step*float64(i+1) + rotationVec

		x00, y00 := r0*math.Cos(t0), r0*math.Sin(t0)
		x01, y01 := r0*math.Cos(t1), r0*math.Sin(t1)
		x10, y10 := r1*math.Cos(t0), r1*math.Sin(t0)
		x11, y11 := r1*math.Cos(t1), r1*math.Sin(t1)

		for idx := zIdx; idx <= zIdx+1; idx++ {
			z := m.JMesh[idx]
			appendVertex(points, rotation, m.Origin, x00, y00, z)
			appendVertex(points, rotation, m.Origin, x01, y01, z)
			appendVertex(points, rotation, m.Origin, x10, y10, z)
			appendVertex(points, rotation, m.Origin, x11, y11, z)
		}

		updateOffsets(offsets, 8)
		*types = append(*types, vtkVoxel)
	}
}

func appendVertex(points *[]float64, rotation *mgl64.Quat, origin [3]float64, x, y, z float64) {
	v := mgl64.Vec3{x, y, z}
	if rotation != nil {
		v = rotation.Rotate(v)
	}
	*points = append(*points, v[0]+origin[0], v[1]+origin[1], v[2]+origin[2])
}

func updateOffsets(offsets *[]uint64, size uint64) {
	if len(*offsets) == 0 {
		*offsets = append(*offsets, size)
		return
	}
	*offsets = append(*offsets, size+(*offsets)[len(*offsets)-1])
}

// repeatValues expands one value per theta bin into one per subdivided
// segment, matching the resolution multiplier applied to the geometry.
func repeatValues(values []float64, resolution uint8) []float64 {
	out := make([]float64, 0, len(values)*int(resolution))
	for _, v := range values {
		for i := uint8(0); i < resolution; i++ {
			out = append(out, v)
		}
	}
	return out
}

// resolutionFor raises the configured subdivision for the special cases
// of one or two theta bins, where fewer than 3-4 edges would produce a
// degenerate polygon.
func (c *Converter) resolutionFor(nBins int) uint8 {
	switch nBins {
	case 1:
		return maxU8(c.Resolution, 3)
	case 2:
		return maxU8(c.Resolution, 2)
	default:
		return c.Resolution
	}
}

func maxU8(a, b uint8) uint8 {
	if a > b {
		return a
	}
	return b
}

// initRotation builds the rotation needed to map the mesh's local frame
// (assumed Z-aligned) onto the user-specified AXS direction, or nil if
// AXS is already +z.
func initRotation(axs [3]float64) *mgl64.Quat {
	if axs == [3]float64{0, 0, 1} {
		return nil
	}
	def := mgl64.Vec3{0, 0, 1}
	user := mgl64.Vec3{axs[0], axs[1], axs[2]}.Normalize()
	q := mgl64.QuatBetweenVectors(def, user)
	return &q
}

// cylinderCellOrder maps voxel-index order onto the layer/ring/segment
// traversal order cellVerticies emits cells in.
func (c *Converter) cylinderCellOrder(m *mesh.Mesh) []int {
	type keyed struct {
		idx int
		key int
	}
	n := m.NVoxelsPerGroup()
	entries := make([]keyed, n)
	for idx := 0; idx < n; idx++ {
		_, _, i, j, k, err := m.VoxelIndexToEtijk(idx)
		if err != nil {
			continue
		}
		key := k + i*m.Kints() + j*m.Iints()*m.Kints()
		entries[idx] = keyed{idx: idx, key: key}
	}
	sort.Slice(entries, func(a, b int) bool { return entries[a].key < entries[b].key })

	out := make([]int, n)
	for pos, e := range entries {
		out[pos] = e.idx
	}
	return out
}
