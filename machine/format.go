package machine

import (
	"math"
	"strconv"
	"strings"
)

// FormatValue renders a numeric result for the display. NaN and infinities
// become DisplayError. Everything else is rounded to 12 decimal places and
// rendered as a plain decimal numeral with insignificant trailing zeros and
// any bare trailing point stripped; exponential notation is never introduced.
func FormatValue(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return DisplayError
	}

	out := strconv.FormatFloat(v, 'f', 12, 64)
	out = strings.TrimRight(out, "0")
	out = strings.TrimSuffix(out, ".")

	// Negative zero rounds to "-0"; the display shows plain zero.
	if out == "-0" {
		return DisplayZero
	}
	return out
}
