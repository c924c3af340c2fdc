package posvol

import (
	"github.com/jedib0t/go-pretty/v6/table"
)

// Dimensions holds the six header values found in a posvol file's first
// data block: the sub-voxel sample resolution in each axis, and the
// number of mesh bounds (iints/jints/kints + 1) in each axis.
type Dimensions struct {
	ResX int32 `json:"res_x"`
	ResY int32 `json:"res_y"`
	ResZ int32 `json:"res_z"`
	NX   int32 `json:"n_x"`
	NY   int32 `json:"n_y"`
	NZ   int32 `json:"n_z"`
}

// NumberOfVoxels returns the voxel count implied by the mesh bounds.
func (d Dimensions) NumberOfVoxels() int {
	return int((d.NX - 1) * (d.NY - 1) * (d.NZ - 1))
}

// NumberOfSubvoxels returns the sample count taken inside every voxel.
func (d Dimensions) NumberOfSubvoxels() int {
	return int(d.ResX * d.ResY * d.ResZ)
}

// NumberOfCells returns the total cell count expected in the file: the
// product of the voxel count and the sub-voxel sample count.
func (d Dimensions) NumberOfCells() int {
	return d.NumberOfVoxels() * d.NumberOfSubvoxels()
}

// CellArrayByteLength returns the expected byte length of the cell data
// block, assuming 4-byte int32 values.
func (d Dimensions) CellArrayByteLength() int {
	return d.NumberOfCells() * 4
}

// Posvol is the dominant-cell data extracted from a CuV posvol binary.
type Posvol struct {
	Dimensions Dimensions `json:"dimensions"`
	// Cells lists the dominant cell number found in every sub-voxel
	// sample, in voxel-major order.
	Cells []int32 `json:"cells"`
}

// Subvoxels splits Cells into one slice per voxel, each of length
// Dimensions.NumberOfSubvoxels().
func (p *Posvol) Subvoxels() [][]int32 {
	n := p.Dimensions.NumberOfSubvoxels()
	if n == 0 {
		return nil
	}
	out := make([][]int32, 0, len(p.Cells)/n)
	for i := 0; i+n <= len(p.Cells); i += n {
		out = append(out, p.Cells[i:i+n])
	}
	return out
}

// NumberOfVoxels returns the voxel count expected in the file.
func (p *Posvol) NumberOfVoxels() int { return p.Dimensions.NumberOfVoxels() }

// NumberOfSubvoxels returns the sample count taken per voxel.
func (p *Posvol) NumberOfSubvoxels() int { return p.Dimensions.NumberOfSubvoxels() }

// NumberOfCells returns the total cell count held in Cells.
func (p *Posvol) NumberOfCells() int { return p.Dimensions.NumberOfCells() }

// Summary renders a human-readable table describing the posvol data.
func (p *Posvol) Summary() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRows([]table.Row{
		{"Voxels", p.NumberOfVoxels()},
		{"Subvoxels per voxel", p.NumberOfSubvoxels()},
		{"Total cells", p.NumberOfCells()},
		{"Mesh bounds (i, j, k)", [3]int32{p.Dimensions.NX, p.Dimensions.NY, p.Dimensions.NZ}},
		{"Sample resolution (i, j, k)", [3]int32{p.Dimensions.ResX, p.Dimensions.ResY, p.Dimensions.ResZ}},
	})
	return t.Render()
}
