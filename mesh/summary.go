package mesh

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
)

// Summary renders a human-readable table describing the mesh's shape,
// standing in for the Display implementation the originating tool
// printed to a terminal.
func (m *Mesh) Summary() string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Field", "Value"})
	t.AppendRows([]table.Row{
		{"ID", m.ID},
		{"Geometry", m.Geometry},
		{"Particle", m.Particle},
		{"Format", m.Format},
		{"Iints x Jints x Kints", cartesian(m.Iints(), m.Jints(), m.Kints())},
		{"Energy bins", m.Ebins()},
		{"Time bins", m.Tbins()},
		{"Voxels", len(m.Voxels)},
	})
	return t.Render()
}

func cartesian(i, j, k int) string {
	return strconv.Itoa(i) + " x " + strconv.Itoa(j) + " x " + strconv.Itoa(k)
}
