package vtk

import (
	"fmt"
	"sort"

	"github.com/repositony/ntools-go/mesh"
)

// rectangularDocument builds a RectilinearGrid document directly from
// the mesh's i/j/k edge arrays.
func (c *Converter) rectangularDocument(m *mesh.Mesh) (*Document, error) {
	doc := &Document{
		kind:    RectilinearGrid,
		title:   title(m),
		order:   c.ByteOrder,
		extent:  [3]int{m.Iints(), m.Jints(), m.Kints()},
		coordsX: m.IMesh,
		coordsY: m.JMesh,
		coordsZ: m.KMesh,
	}

	energyGroups := c.collectEnergyGroupIdx(m)
	timeGroups := c.collectTimeGroupIdx(m)

	for _, eIdx := range energyGroups {
		for _, tIdx := range timeGroups {
			voxels, err := m.SliceVoxelsByIdx(eIdx, tIdx)
			if err != nil {
				return nil, err
			}

			results := make([]float64, len(voxels))
			errors := make([]float64, len(voxels))
			for i, v := range voxels {
				results[i] = v.Result
				errors[i] = v.Error
			}

			doc.cellData = append(doc.cellData, dataArray{
				name:   groupName(m, eIdx, tIdx),
				values: sortByCellIndex(m, results),
			})
			if c.IncludeErrors {
				doc.cellData = append(doc.cellData, dataArray{
					name:   groupName(m, eIdx, tIdx) + ", error",
					values: sortByCellIndex(m, errors),
				})
			}
		}
	}

	return doc, nil
}

// sortByCellIndex reorders values, currently in packed voxel-index order,
// into MCNP's cell-index order expected by the rectilinear grid.
func sortByCellIndex(m *mesh.Mesh, values []float64) []float64 {
	type pair struct {
		cellIdx int
		value   float64
	}
	pairs := make([]pair, len(values))
	for i, v := range values {
		cellIdx, _ := m.VoxelIndexToCellIndex(i)
		pairs[i] = pair{cellIdx, v}
	}
	sort.Slice(pairs, func(a, b int) bool { return pairs[a].cellIdx < pairs[b].cellIdx })

	out := make([]float64, len(pairs))
	for i, p := range pairs {
		out[i] = p.value
	}
	return out
}

func title(m *mesh.Mesh) string {
	return fmt.Sprintf("Fmesh%d results", m.ID)
}
