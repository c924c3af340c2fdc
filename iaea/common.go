package iaea

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// RadType is a decay radiation type recognised by the IAEA API.
type RadType int

const (
	RadAlpha RadType = iota
	RadBetaPlus
	RadBetaMinus
	RadGamma
	RadElectron
	RadXray
)

// QuerySymbol returns the single/double-letter symbol the IAEA API
// expects for this radiation type, e.g. "bm" for RadBetaMinus.
func (r RadType) QuerySymbol() string {
	switch r {
	case RadAlpha:
		return "a"
	case RadBetaPlus:
		return "bp"
	case RadBetaMinus:
		return "bm"
	case RadGamma:
		return "g"
	case RadElectron:
		return "e"
	case RadXray:
		return "x"
	default:
		return ""
	}
}

// ParseRadType converts an IAEA query symbol back into a RadType.
func ParseRadType(s string) (RadType, error) {
	switch strings.ToLower(s) {
	case "a":
		return RadAlpha, nil
	case "bp":
		return RadBetaPlus, nil
	case "bm":
		return RadBetaMinus, nil
	case "g":
		return RadGamma, nil
	case "e":
		return RadElectron, nil
	case "x":
		return RadXray, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrCouldNotInferRadType, s)
	}
}

// IsomerState is a nuclide's ground or excited state, using ENSDF
// notation (m1, m2, m3...) for excited states.
type IsomerState struct {
	Excited bool
	Level   uint8
}

// String renders "" for ground state or "m<level>" for an excited state.
func (s IsomerState) String() string {
	if !s.Excited {
		return ""
	}
	return fmt.Sprintf("m%d", s.Level)
}

// Nuclide identifies an element, isotope, and isomer state. The
// isotope number is 0 for an element-only reference (e.g. "Co").
type Nuclide struct {
	Symbol  string
	Isotope uint16
	State   IsomerState
}

var nuclidePattern = regexp.MustCompile(`(?i)^([a-z]{1,2})-?(\d+)?(m)?(\d*)$`)

// ParseNuclide parses strings of the form <element>[-][isotope][m<state>],
// e.g. "Co", "Co60", "Co-60", "eu152m2", or the FISPACT-II style
// "eu152m" (bare trailing "m" with no level number, treated as m1).
func ParseNuclide(s string) (Nuclide, error) {
	m := nuclidePattern.FindStringSubmatch(strings.TrimSpace(s))
	if m == nil {
		return Nuclide{}, fmt.Errorf("%w: %q", ErrFailedParseNuclide, s)
	}

	n := Nuclide{Symbol: strings.ToLower(m[1])}
	if m[2] != "" {
		isotope, err := strconv.Atoi(m[2])
		if err != nil {
			return Nuclide{}, fmt.Errorf("%w: %q", ErrFailedParseNuclide, s)
		}
		n.Isotope = uint16(isotope)
	}
	if m[3] != "" {
		n.State.Excited = true
		n.State.Level = 1
		if m[4] != "" {
			level, err := strconv.Atoi(m[4])
			if err == nil {
				n.State.Level = uint8(level)
			}
		}
	}
	return n, nil
}

// Name formats "<element><isotope>", e.g. "Eu152", or just "Eu" for an
// element-only reference.
func (n Nuclide) Name() string {
	isotope := ""
	if n.Isotope != 0 {
		isotope = strconv.Itoa(int(n.Isotope))
	}
	return capitalise(n.Symbol) + isotope
}

// NameWithState formats Name plus the isomer suffix, e.g. "Eu152m1".
func (n Nuclide) NameWithState() string {
	return n.Name() + n.State.String()
}

// String renders NameWithState.
func (n Nuclide) String() string { return n.NameWithState() }

// QueryName formats the nuclide the way the IAEA API expects a query
// parameter: "<isotope><element>", with no state information. Fails for
// an element-only Nuclide.
func (n Nuclide) QueryName() (string, error) {
	if n.Isotope == 0 {
		return "", ErrInvalidNuclideQuery
	}
	return fmt.Sprintf("%d%s", n.Isotope, strings.ToLower(n.Symbol)), nil
}

func capitalise(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
