package meshtal

import (
	"strconv"
	"strings"

	"github.com/repositony/ntools-go/mesh"
	"github.com/repositony/ntools-go/voxel"
)

// colState parses the COL and CF column layouts. Because MCNP always
// emits column data in canonical packed order, voxels are appended
// directly at the current slice length with no re-sorting required.
type colState struct {
	format mesh.Format
}

func newColState(format mesh.Format) *colState {
	return &colState{format: format}
}

func (s *colState) consume(line string, m *mesh.Mesh) error {
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
		edges, err := parseFloats(strings.TrimPrefix(trimmed, "Energy bin boundaries:"))
		if err != nil {
			return err
		}
		m.EMesh = edges
		return nil
	case strings.HasPrefix(trimmed, "Time bin boundaries:"):
		edges, err := parseFloats(strings.TrimPrefix(trimmed, "Time bin boundaries:"))
		if err != nil {
			return err
		}
		m.TMesh = edges
		return nil
	case isAxisDirectionLine(trimmed):
		return parseAxisDirectionLine(trimmed, m)
	case isHeaderLine(trimmed):
		return nil
	default:
		return s.consumeDataRow(trimmed, m)
	}
}

func isAxisDirectionLine(line string) bool {
	for _, prefix := range []string{"X direction:", "Y direction:", "Z direction:", "R direction:", "T direction:"} {
		if strings.HasPrefix(line, prefix) {
			return true
		}
	}
	return false
}

func parseAxisDirectionLine(line string, m *mesh.Mesh) error {
	parts := strings.SplitN(line, ":", 2)
	if len(parts) != 2 {
		return ErrMalformedLine
	}
	tag := strings.Fields(parts[0])[0]
	edges, err := parseFloats(parts[1])
	if err != nil {
		return err
	}
	switch strings.ToUpper(tag) {
	case "X", "R":
		m.IMesh = edges
	case "Y":
		m.JMesh = edges
	case "Z":
		if m.Geometry == mesh.Cylindrical {
			m.JMesh = edges
		} else {
			m.KMesh = edges
		}
	case "T":
		m.KMesh = edges
	}
	return nil
}

func isHeaderLine(line string) bool {
	return strings.Contains(line, "Energy") && strings.Contains(line, "Result")
}

// consumeDataRow reads a COL/CF data row. The leading columns vary
// (energy, an optional time column, then the coordinate triple) but
// result and relative error are always the two fields immediately
// preceding CF's trailing (volume, result*volume) pair, which this
// function parses and discards.
func (s *colState) consumeDataRow(line string, m *mesh.Mesh) error {
	fields, err := parseFloats(line)
	if err != nil {
		return err
	}
	minFields := 6
	resultOffset := 2 // result, relErr are the last two fields
	if s.format == mesh.CF {
		minFields = 8
		resultOffset = 4 // result, relErr precede volume, result*volume
	}
	if len(fields) < minFields {
		return ErrMalformedLine
	}
	result := fields[len(fields)-resultOffset]
	relErr := fields[len(fields)-resultOffset+1]
	v, verr := voxel.New(len(m.Voxels), result, relErr)
	if verr != nil {
		return verr
	}
	m.Voxels = append(m.Voxels, v)
	return nil
}

func (s *colState) finalize(m *mesh.Mesh) {
	if m.Geometry == mesh.Rectangular && len(m.IMesh) > 0 && len(m.JMesh) > 0 && len(m.KMesh) > 0 {
		m.Origin = [3]float64{m.IMesh[0], m.JMesh[0], m.KMesh[0]}
	}
}

// parseFloats splits a whitespace-separated numeric line, repairing the
// two known MCNP formatter pathologies: a missing exponent character
// ("8.15942-132" -> "8.15942e-132") and a run-on pair of scientific
// numbers sharing a sign boundary ("1.00E+00-2.00E+00").
func parseFloats(s string) ([]float64, error) {
	var out []float64
	for _, tok := range splitRunOnNumbers(strings.Fields(s)) {
		v, err := parseBrokenFloat(tok)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func parseBrokenFloat(tok string) (float64, error) {
	if v, err := strconv.ParseFloat(tok, 64); err == nil {
		return v, nil
	}
	repaired := repairMissingExponent(tok)
	if v, err := strconv.ParseFloat(repaired, 64); err == nil {
		return v, nil
	}
	return 0, ErrMalformedNumber
}

// repairMissingExponent inserts the missing 'e' in tokens like
// "8.15942-132" or "8.15942+132", where fortran's fixed-width formatter
// dropped the exponent marker.
func repairMissingExponent(tok string) string {
	for i := 1; i < len(tok); i++ {
		if tok[i] == '+' || tok[i] == '-' {
			mantissa := tok[:i]
			if strings.ContainsAny(mantissa, "eE") {
				continue
			}
			if !strings.Contains(mantissa, ".") {
				continue
			}
			return mantissa + "e" + tok[i:]
		}
	}
	return tok
}

// splitRunOnNumbers splits tokens where two scientific numbers have
// merged across a sign boundary, e.g. "1.00E+00-2.00E+00".
func splitRunOnNumbers(tokens []string) []string {
	var out []string
	for _, tok := range tokens {
		out = append(out, splitOneRunOn(tok)...)
	}
	return out
}

func splitOneRunOn(tok string) []string {
	lower := strings.ToLower(tok)
	idx := strings.IndexByte(lower, 'e')
	if idx < 0 || idx+1 >= len(tok) {
		return []string{tok}
	}
	// scan past the exponent for a second sign that starts a new number
	for i := idx + 2; i < len(tok); i++ {
		if tok[i] == '+' || tok[i] == '-' {
			return append([]string{tok[:i]}, splitOneRunOn(tok[i:])...)
		}
		if (tok[i] < '0' || tok[i] > '9') && tok[i] != '.' {
			break
		}
	}
	return []string{tok}
}
