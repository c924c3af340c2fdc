package meshtal

import (
	"strings"

	"github.com/repositony/ntools-go/mesh"
)

// parseOriginAxisVec parses the cylindrical geometry header line:
//
//	origin at <x> <y> <z> axis in <x> <y> <z> direction, VEC direction <x> <y> <z>
//
// by locating every numeric token in file order: the first three are the
// origin, the next three the axis, and the last three the reference
// vector (VEC is absent on some older files, in which case the default
// [1,0,0] from mesh.New is retained).
func parseOriginAxisVec(line string, m *mesh.Mesh) error {
	nums := extractFloats(line)
	if len(nums) < 6 {
		return ErrMalformedLine
	}
	m.Origin = [3]float64{nums[0], nums[1], nums[2]}
	m.Axs = [3]float64{nums[3], nums[4], nums[5]}
	if len(nums) >= 9 {
		m.Vec = [3]float64{nums[6], nums[7], nums[8]}
	}
	return nil
}

// extractFloats pulls every token parseable as a float out of a line
// that also contains non-numeric words (labels like "origin at", "axis
// in", "direction,"), preserving order.
func extractFloats(line string) []float64 {
	var out []float64
	for _, tok := range strings.Fields(line) {
		tok = strings.TrimSuffix(tok, ",")
		if v, err := parseBrokenFloat(tok); err == nil {
			out = append(out, v)
		}
	}
	return out
}
