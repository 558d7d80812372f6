package machine

import (
	"math"

	"github.com/robbyt/go-keypadcalc/keys"
)

// evalFunction applies a unary function key to a value. The second return
// value is false for unknown keys, which callers treat as a no-op. Domain
// errors (log of a non-positive number, sqrt of a negative) are not trapped
// here: they produce NaN or an infinity and surface as "Error" at formatting.
func evalFunction(fn keys.Function, v float64) (float64, bool) {
	switch fn {
	case keys.FuncSin:
		return math.Sin(degToRad(v)), true
	case keys.FuncCos:
		return math.Cos(degToRad(v)), true
	case keys.FuncTan:
		return math.Tan(degToRad(v)), true
	case keys.FuncLog:
		return math.Log10(v), true
	case keys.FuncLn:
		return math.Log(v), true
	case keys.FuncSqrt:
		return math.Sqrt(v), true
	case keys.FuncPi:
		return math.Pi, true
	case keys.FuncE:
		return math.E, true
	case keys.FuncNegate:
		return -v, true
	case keys.FuncPercent:
		return v / 100, true
	case keys.FuncPowSelf:
		// value^value, see the keys.FuncPowSelf doc comment.
		return math.Pow(v, v), true
	default:
		return 0, false
	}
}

// degToRad converts degrees to radians for the trig keys.
func degToRad(deg float64) float64 {
	return deg * math.Pi / 180
}
