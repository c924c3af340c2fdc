package meshtal

import (
	"strings"

	"github.com/repositony/ntools-go/mesh"
	"github.com/repositony/ntools-go/voxel"
)

// matrixState parses the IJ/IK/JK 2D matrix projections. Each tally is a
// sequence of (energy, time, axis-bin) tables, each printed as a results
// grid immediately followed by an errors grid. Voxels are buffered by
// their (e,t,i,j,k) coordinate and only appended to the mesh once both
// grids have been consumed, after which finalize re-sorts them by index
// (matrix output is not written in canonical packed order). Keying by
// the full (e,t,i,j,k) tuple, not just (i,j,k), is what lets multiple
// energy/time groups accumulate independently instead of overwriting
// each other's entries.
type matrixState struct {
	format mesh.Format

	energyIdx int
	timeIdx   int
	tableIdx  int

	readingErrors bool
	rowInTable    int

	pending map[[5]int]*voxel.Voxel
}

func newMatrixState(format mesh.Format) *matrixState {
	return &matrixState{format: format, energyIdx: -1, timeIdx: -1, tableIdx: -1, pending: map[[5]int]*voxel.Voxel{}}
}

func (s *matrixState) consume(line string, m *mesh.Mesh) error {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return nil
	}

	switch {
	case strings.HasPrefix(trimmed, "origin at"):
		return parseOriginAxisVec(trimmed, m)
	case strings.HasSuffix(trimmed, "mesh tally."):
		m.Particle = mesh.FromDesignator(strings.TrimSuffix(strings.Fields(trimmed)[0], "."))
		return nil
	case strings.HasPrefix(trimmed, "Energy bin boundaries:"):
		edges := extractFloats(strings.TrimPrefix(trimmed, "Energy bin boundaries:"))
		m.EMesh = edges
		return nil
	case strings.HasPrefix(trimmed, "Time bin boundaries:"):
		edges := extractFloats(strings.TrimPrefix(trimmed, "Time bin boundaries:"))
		m.TMesh = edges
		return nil
	case isAxisDirectionLine(trimmed):
		return parseAxisDirectionLine(trimmed, m)
	case strings.HasPrefix(trimmed, "Energy Bin:"):
		s.energyIdx++
		s.timeIdx = -1
		s.tableIdx = -1
		return nil
	case strings.HasPrefix(trimmed, "Time Bin:"):
		s.timeIdx++
		s.tableIdx = -1
		return nil
	case isAxisBinHeading(trimmed):
		s.tableIdx++
		s.rowInTable = 0
		s.readingErrors = false
		return nil
	case strings.HasPrefix(trimmed, "Tally Results:"):
		s.readingErrors = false
		return nil
	case strings.HasPrefix(trimmed, "Relative Errors"):
		s.readingErrors = true
		s.rowInTable = 0
		return nil
	default:
		return s.consumeRow(trimmed, m)
	}
}

// consumeRow handles one row of a results or errors grid. Header rows
// (column-centre labels) are distinguished from data rows by count: a
// header holds one value per column, a data row holds the row centre
// plus one value per column. This works whether the errors grid is
// written in scientific or fixed notation.
func (s *matrixState) consumeRow(line string, m *mesh.Mesh) error {
	if s.tableIdx < 0 {
		return nil // header/preamble line this parser does not need
	}
	fields := extractFloats(line)
	if len(fields) <= s.columns(m) {
		return nil // column-centre header row
	}
	rowCentre := fields[0]
	values := fields[1:]
	_ = rowCentre

	e := effectiveIndex(s.energyIdx, m.Ebins())
	t := effectiveIndex(s.timeIdx, m.Tbins())

	for col, val := range values {
		i, j, k := s.coords(col, s.rowInTable)
		key := [5]int{e, t, i, j, k}
		pv, ok := s.pending[key]
		if !ok {
			pv = &voxel.Voxel{}
			s.pending[key] = pv
		}
		if s.readingErrors {
			pv.Error = val
		} else {
			pv.Result = val
		}
		if pv.Result != 0 || s.readingErrors {
			idx, err := m.EtijkToVoxelIndex(e, t, i, j, k)
			if err != nil {
				return err
			}
			pv.Index = idx
		}
	}
	s.rowInTable++
	return nil
}

func effectiveIndex(cursor, bins int) int {
	if cursor < 0 {
		return 0
	}
	if cursor >= bins {
		return bins - 1
	}
	return cursor
}

// coords maps a (column, row) position within the current table to
// (i, j, k) per the format-specific table in this package's docs.
func (s *matrixState) coords(col, row int) (i, j, k int) {
	switch s.format {
	case mesh.IJ:
		return col, row, s.tableIdx
	case mesh.IK:
		return col, s.tableIdx, row
	case mesh.JK:
		return s.tableIdx, col, row
	default:
		return col, row, s.tableIdx
	}
}

// columns returns the number of value columns in each grid row: the
// table's column axis is i for IJ/IK projections and j for JK.
func (s *matrixState) columns(m *mesh.Mesh) int {
	if s.format == mesh.JK {
		return m.Jints()
	}
	return m.Iints()
}

// finalize flushes every pending voxel into the mesh in map iteration
// (unspecified) order, then stable-sorts by Index to restore canonical packed order, since
// matrix projections are not written in that order.
func (s *matrixState) finalize(m *mesh.Mesh) {
	for _, v := range s.pending {
		m.Voxels = append(m.Voxels, *v)
	}
	sortVoxelsByIndex(m.Voxels)
	if m.Geometry == mesh.Rectangular && len(m.IMesh) > 0 && len(m.JMesh) > 0 && len(m.KMesh) > 0 {
		m.Origin = [3]float64{m.IMesh[0], m.JMesh[0], m.KMesh[0]}
	}
}

func sortVoxelsByIndex(voxels []voxel.Voxel) {
	for i := 1; i < len(voxels); i++ {
		j := i
		for j > 0 && voxels[j-1].Index > voxels[j].Index {
			voxels[j-1], voxels[j] = voxels[j], voxels[j-1]
			j--
		}
	}
}
