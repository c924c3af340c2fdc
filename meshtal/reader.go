package meshtal

import (
	"bufio"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/repositony/ntools-go/internal/progress"
	"github.com/repositony/ntools-go/mesh"
)

// Reader streams a meshtal file through the two-pass pipeline described
// in this package's documentation.
type Reader struct {
	opts ReaderOptions
}

// NewReader builds a Reader with the given options.
func NewReader(opts ReaderOptions) *Reader {
	return &Reader{opts: opts}
}

// ReadMeshtal reads every tally in path using default options.
func ReadMeshtal(path string) ([]*mesh.Mesh, error) {
	return NewReader(DefaultReaderOptions()).Read(path)
}

// ReadMeshtalTarget reads a single tally id from path.
func ReadMeshtalTarget(path string, id uint32) (*mesh.Mesh, error) {
	opts := DefaultReaderOptions()
	opts.TargetID = id
	meshes, err := NewReader(opts).Read(path)
	if err != nil {
		return nil, err
	}
	for _, m := range meshes {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, fmt.Errorf("meshtal: tally %d: %w", id, ErrTallyNotFound)
}

// Read drives the full two-pass pipeline over the file at path.
func (r *Reader) Read(path string) ([]*mesh.Mesh, error) {
	infos, order, err := r.passOneDiscover(path)
	if err != nil {
		return nil, err
	}
	if r.opts.TargetID != 0 {
		if _, ok := infos[r.opts.TargetID]; !ok {
			return nil, fmt.Errorf("meshtal: %w: %d", ErrTallyNotFound, r.opts.TargetID)
		}
	}
	meshes, err := r.passTwoExtract(path, infos, order)
	if err != nil {
		return nil, err
	}
	sort.Slice(meshes, func(i, j int) bool {
		return indexOf(order, meshes[i].ID) < indexOf(order, meshes[j].ID)
	})
	for _, m := range meshes {
		if len(m.Voxels) != m.NVoxelsExpected() {
			return nil, fmt.Errorf("meshtal: tally %d: %w (got %d, want %d)", m.ID, ErrVoxelCountMismatch, len(m.Voxels), m.NVoxelsExpected())
		}
		if err := m.Validate(); err != nil {
			return nil, err
		}
	}
	return meshes, nil
}

func indexOf(order []uint32, id uint32) int {
	for i, v := range order {
		if v == id {
			return i
		}
	}
	return len(order)
}

// passOneDiscover scans the file once to determine each tally's geometry
// and textual format, stopping early if a single TargetID is requested
// and its format becomes known.
func (r *Reader) passOneDiscover(path string) (map[uint32]*tallyInfo, []uint32, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	defer f.Close()

	infos := map[uint32]*tallyInfo{}
	var order []uint32
	var current *tallyInfo

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		switch {
		case strings.Contains(line, "Mesh Tally Number"):
			id, perr := parseTallyID(line)
			if perr != nil {
				return nil, nil, perr
			}
			current = &tallyInfo{id: id}
			infos[id] = current
			order = append(order, id)
			continue
		}
		if current == nil {
			continue
		}
		classifyGeometry(line, current)
		classifyFormat(line, current)

		if r.opts.TargetID != 0 && current.id == r.opts.TargetID && current.format != mesh.None {
			break
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, nil, err
	}
	for id, info := range infos {
		if info.format == mesh.None {
			return nil, nil, fmt.Errorf("meshtal: tally %d: %w", id, ErrUnknownFormat)
		}
	}
	return infos, order, nil
}

func parseTallyID(line string) (uint32, error) {
	fields := strings.Fields(line)
	for i := len(fields) - 1; i >= 0; i-- {
		var id uint32
		if n, err := fmt.Sscanf(fields[i], "%d", &id); err == nil && n == 1 {
			return id, nil
		}
	}
	return 0, fmt.Errorf("meshtal: %w: could not find tally id in %q", ErrMalformedLine, line)
}

func classifyGeometry(line string, info *tallyInfo) {
	trimmed := strings.TrimSpace(line)
	switch {
	case strings.HasPrefix(trimmed, "X direction"), strings.Contains(line, "X Y Z"):
		if info.geometry == mesh.Geometry(0) {
			info.geometry = mesh.Rectangular
		}
	case strings.HasPrefix(trimmed, "R direction"), strings.Contains(line, "R Z T"):
		info.geometry = mesh.Cylindrical
	}
}

func classifyFormat(line string, info *tallyInfo) {
	if info.format != mesh.None {
		return
	}
	fields := strings.Fields(line)
	switch {
	case hasTokens(fields, "Cell") && hasTokens(fields, "Mat"):
		info.format = mesh.CUV
	case hasSequence(fields, "X", "Y", "Z") || hasSequence(fields, "R", "Z", "T"):
		if hasTokens(fields, "Volume") {
			info.format = mesh.CF
		} else {
			info.format = mesh.COL
		}
	case isAxisBinHeading(line):
		tag := fields[0]
		info.format = matrixFormatFor(tag, info.geometry)
	}
}

// hasTokens reports whether any field in fields contains needle as a
// case-sensitive substring, tolerating the variable column widths real
// meshtal headers use.
func hasTokens(fields []string, needle string) bool {
	for _, f := range fields {
		if strings.Contains(f, needle) {
			return true
		}
	}
	return false
}

// hasSequence reports whether fields contains tokens a, b, c consecutively
// (ignoring surrounding tokens), matching headers like "Energy X Y Z
// Result Rel Error" regardless of column spacing.
func hasSequence(fields []string, a, b, c string) bool {
	for i := 0; i+2 < len(fields); i++ {
		if fields[i] == a && fields[i+1] == b && fields[i+2] == c {
			return true
		}
	}
	return false
}

func isAxisBinHeading(line string) bool {
	trimmed := strings.TrimSpace(line)
	for _, tag := range []string{"X bin", "Y bin", "Z bin", "R bin", "T bin"} {
		if strings.HasPrefix(trimmed, tag) {
			return true
		}
	}
	return false
}

func matrixFormatFor(tag string, geom mesh.Geometry) mesh.Format {
	switch strings.ToUpper(tag) {
	case "X", "R":
		return mesh.JK
	case "Y":
		return mesh.IK
	case "Z":
		if geom == mesh.Cylindrical {
			return mesh.IK
		}
		return mesh.IJ
	case "T":
		return mesh.IJ
	default:
		return mesh.None
	}
}

// passTwoExtract streams the file a second time, dispatching each line
// to the sub-parser appropriate to the current tally's format.
func (r *Reader) passTwoExtract(path string, infos map[uint32]*tallyInfo, order []uint32) ([]*mesh.Mesh, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var results []*mesh.Mesh
	var current *mesh.Mesh
	var col *colState
	var matrix *matrixState
	var cuv *cuvState

	reportEvery := time.Duration(0)
	if r.opts.ProgressEvery > 0 {
		reportEvery = time.Second
	}
	prog := progress.New(path, reportEvery)

	flush := func() {
		if current == nil {
			return
		}
		if col != nil {
			col.finalize(current)
		}
		if matrix != nil {
			matrix.finalize(current)
		}
		if cuv != nil {
			cuv.finalize(current)
		}
		if r.opts.TargetID == 0 || current.ID == r.opts.TargetID {
			results = append(results, current)
		}
		current, col, matrix, cuv = nil, nil, nil, nil
	}

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		prog.Tick()
		line := scanner.Text()

		if strings.Contains(line, "Mesh Tally Number") {
			flush()
			id, perr := parseTallyID(line)
			if perr != nil {
				return nil, perr
			}
			info, ok := infos[id]
			if !ok {
				continue
			}
			if r.opts.TargetID != 0 && id != r.opts.TargetID {
				current = nil
				continue
			}
			current = mesh.New(id)
			current.Geometry = info.geometry
			current.Format = info.format
			switch {
			case info.format == mesh.CUV:
				cuv = newCUVState()
			case info.format.IsMatrix():
				matrix = newMatrixState(info.format)
			default:
				col = newColState(info.format)
			}
			continue
		}
		if current == nil {
			continue
		}

		var perr error
		switch {
		case col != nil:
			perr = col.consume(line, current)
		case matrix != nil:
			perr = matrix.consume(line, current)
		case cuv != nil:
			perr = cuv.consume(line, current)
		}
		if perr != nil {
			return nil, wrapErr(current.ID, lineNo, perr)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	flush()
	prog.Done()
	return results, nil
}
