package numeric

import (
	"strconv"
	"strings"
)

// Sci formats value in the fixed-width scientific notation MCNP and WWINP
// both use: a mantissa with `precision` digits after the decimal point,
// followed by a signed exponent zero-padded to `expPad` digits, e.g.
// Sci(1.5, 5, 2) == "1.50000e+00" and Sci(-0.0, 5, 2) == "0.00000e+00".
//
// Grounded on the FloatExt::sci algorithm used throughout the weight
// window and wwgen components of the originating toolkit: format via the
// language's native exponential formatter, then split at 'e' and
// re-pad the exponent rather than hand-rolling mantissa math.
func Sci(value float64, precision, expPad int) string {
	if value == 0 {
		value = 0 // normalize -0.0
	}
	formatted := strconv.FormatFloat(value, 'e', precision, 64)
	mantissa, exp, found := strings.Cut(formatted, "e")
	if !found {
		return formatted
	}
	sign := "+"
	digits := exp
	switch {
	case strings.HasPrefix(exp, "-"):
		sign = "-"
		digits = exp[1:]
	case strings.HasPrefix(exp, "+"):
		digits = exp[1:]
	}
	for len(digits) < expPad {
		digits = "0" + digits
	}
	return mantissa + "e" + sign + digits
}
