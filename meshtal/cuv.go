package meshtal

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/repositony/ntools-go/internal/ntlog"
	"github.com/repositony/ntools-go/mesh"
	"github.com/repositony/ntools-go/numeric"
	"github.com/repositony/ntools-go/voxel"
)

// cuvState parses the UKAEA Cell-under-Voxel patch's output: one or more
// consecutive material-cell rows aggregate, volume-weighted, into a
// single voxel.
type cuvState struct {
	voidRecordOn bool
	mcpvRaw      []int // raw header array, MCNP cell-index order

	haveCurrent      bool
	curI, curJ, curK int
	curE, curT       int
	accResult        float64
	accErrSq         float64
}

func newCUVState() *cuvState {
	return &cuvState{voidRecordOn: true}
}

func (s *cuvState) consume(line string, m *mesh.Mesh) error {
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
		m.EMesh = extractFloats(strings.TrimPrefix(trimmed, "Energy bin boundaries:"))
		return nil
	case strings.HasPrefix(trimmed, "Time bin boundaries:"):
		m.TMesh = extractFloats(strings.TrimPrefix(trimmed, "Time bin boundaries:"))
		return nil
	case isAxisDirectionLine(trimmed):
		return parseAxisDirectionLine(trimmed, m)
	case strings.HasPrefix(trimmed, "Void_Record"):
		s.voidRecordOn = strings.Contains(trimmed, "on")
		return nil
	case strings.HasPrefix(trimmed, "Number_of_material_cells_per_voxel"):
		for _, tok := range strings.Fields(trimmed) {
			if n, err := strconv.Atoi(tok); err == nil {
				s.mcpvRaw = append(s.mcpvRaw, n)
			}
		}
		return nil
	case isHeaderLine(trimmed):
		return nil
	default:
		return s.consumeDataRow(trimmed, m)
	}
}

func (s *cuvState) consumeDataRow(line string, m *mesh.Mesh) error {
	if !s.voidRecordOn && len(s.mcpvRaw) != m.NVoxelsPerGroup() {
		return fmt.Errorf("%w: got %d, want %d", ErrMaterialArrayLength, len(s.mcpvRaw), m.NVoxelsPerGroup())
	}
	fields, err := parseFloats(line)
	if err != nil {
		return err
	}
	// energy, time, cell, material, density, volume, i, j, k, result, error
	if len(fields) < 11 {
		return ErrMalformedLine
	}
	volumeRow := fields[5]
	i, j, k := int(fields[6]), int(fields[7]), int(fields[8])
	result := fields[9]
	relErr := fields[10]

	if result < 0 {
		ntlog.Warnf("cuv voxel (%d,%d,%d): negative result %g coerced to 0", i, j, k, result)
		result = 0
	}
	if relErr < 0 {
		ntlog.Warnf("cuv voxel (%d,%d,%d): negative error %g coerced to 0", i, j, k, relErr)
		relErr = 0
	}

	e := groupIndexForEdge(m.EMesh, fields[0])
	t := groupIndexForEdge(m.TMesh, fields[1])

	key := [5]int{e, t, i, j, k}
	newVoxel := !s.haveCurrent || key != [5]int{s.curE, s.curT, s.curI, s.curJ, s.curK}
	if newVoxel {
		s.closeCurrent(m)
		s.haveCurrent = true
		s.curI, s.curJ, s.curK = i, j, k
		s.curE, s.curT = e, t
		s.accResult, s.accErrSq = 0, 0
	}

	voxelVolume := voxelVolumeAt(m, i, j, k)
	w := 0.0
	if voxelVolume != 0 {
		w = volumeRow / voxelVolume
	}
	s.accResult += w * result
	s.accErrSq += (w * relErr) * (w * relErr)
	return nil
}

// groupIndexForEdge resolves a CuV row's raw energy or time column (the
// upper edge of its group, per the meshtal Group convention) to a group
// index into the mesh's bin arrays. With fewer than two edges there is
// only the implicit Total group, so every row belongs to index 0.
func groupIndexForEdge(edges []float64, value float64) int {
	if len(edges) < 2 {
		return 0
	}
	bin, err := numeric.FindBinInclusive(edges, value)
	if err != nil {
		return 0
	}
	return bin
}

// voxelVolumeAt computes the geometric voxel volume used to weight CuV
// material-cell contributions. The cylindrical formula reproduces a
// known error in the originating tool: dz*pi*dr^2/dtheta is not the true
// volume of an annular segment, but CuV output is calibrated against it,
// so it is kept verbatim rather than corrected.
func voxelVolumeAt(m *mesh.Mesh, i, j, k int) float64 {
	if m.Geometry == mesh.Cylindrical {
		dr := m.IMesh[i+1] - m.IMesh[i]
		dz := m.JMesh[j+1] - m.JMesh[j]
		dtheta := m.KMesh[k+1] - m.KMesh[k]
		if dtheta == 0 {
			return 0
		}
		return dz * math.Pi * dr * dr / dtheta
	}
	dx := m.IMesh[i+1] - m.IMesh[i]
	dy := m.JMesh[j+1] - m.JMesh[j]
	dz := m.KMesh[k+1] - m.KMesh[k]
	return dx * dy * dz
}

func (s *cuvState) closeCurrent(m *mesh.Mesh) {
	if !s.haveCurrent {
		return
	}
	idx, err := m.EtijkToVoxelIndex(s.curE, s.curT, s.curI, s.curJ, s.curK)
	if err != nil {
		return
	}
	v, _ := voxel.New(idx, s.accResult, math.Sqrt(s.accErrSq))
	s.appendWithVoidFill(m, v)
}

// appendWithVoidFill appends v to m.Voxels, first inserting zero-result
// filler voxels for any elided void cells when Void_Record=off, using
// the mcpv array (permuted from MCNP cell-index to voxel-index order)
// to detect gaps.
func (s *cuvState) appendWithVoidFill(m *mesh.Mesh, v voxel.Voxel) {
	if s.voidRecordOn || len(s.mcpvRaw) == 0 {
		m.Voxels = append(m.Voxels, v)
		return
	}
	permuted := s.permutedMCPV(m)
	for len(m.Voxels) < v.Index {
		fillIdx := len(m.Voxels)
		spatial := fillIdx % m.NVoxelsPerGroup()
		if spatial < len(permuted) && permuted[spatial] == 0 {
			filler, _ := voxel.New(fillIdx, 0, 0)
			m.Voxels = append(m.Voxels, filler)
		} else {
			// gap we cannot explain from mcpv; still advance to avoid
			// an infinite loop, matching the reader's lenient policy
			// for this warning-class condition.
			ntlog.Warnf("cuv: unexplained gap before voxel %d", v.Index)
			filler, _ := voxel.New(fillIdx, 0, 0)
			m.Voxels = append(m.Voxels, filler)
		}
	}
	m.Voxels = append(m.Voxels, v)
}

func (s *cuvState) permutedMCPV(m *mesh.Mesh) []int {
	n := m.NVoxelsPerGroup()
	out := make([]int, n)
	for spatialVoxelIdx := 0; spatialVoxelIdx < n; spatialVoxelIdx++ {
		_, _, i, j, k, err := m.VoxelIndexToEtijk(spatialVoxelIdx)
		if err != nil {
			continue
		}
		cellIdx, err := m.EtijkToCellIndex(0, 0, i, j, k)
		if err != nil || cellIdx >= len(s.mcpvRaw) {
			continue
		}
		out[spatialVoxelIdx] = s.mcpvRaw[cellIdx]
	}
	return out
}

func (s *cuvState) finalize(m *mesh.Mesh) {
	s.closeCurrent(m)
	s.haveCurrent = false
	// trailing void-fill: pad out to the expected total voxel count.
	if !s.voidRecordOn && len(s.mcpvRaw) > 0 {
		permuted := s.permutedMCPV(m)
		for len(m.Voxels) < m.NVoxelsExpected() {
			fillIdx := len(m.Voxels)
			spatial := fillIdx % m.NVoxelsPerGroup()
			_ = spatial
			filler, _ := voxel.New(fillIdx, 0, 0)
			m.Voxels = append(m.Voxels, filler)
		}
		_ = permuted
	}
	if m.Geometry == mesh.Rectangular && len(m.IMesh) > 0 && len(m.JMesh) > 0 && len(m.KMesh) > 0 {
		m.Origin = [3]float64{m.IMesh[0], m.JMesh[0], m.KMesh[0]}
	}
}
