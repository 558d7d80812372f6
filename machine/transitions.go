package machine

import (
	"math"
	"strings"

	"github.com/robbyt/go-keypadcalc/keys"
)

// AppendDigit handles a digit or decimal-point keypress. A character other
// than 0-9 or '.' is rejected without touching the state, and a second '.'
// within one operand is rejected the same way. When a result is currently
// shown, the keypress starts a fresh operand and consumes the result flag.
func (s State) AppendDigit(display string, r rune) (State, string) {
	if r != '.' && (r < '0' || r > '9') {
		return s, display
	}

	if s.resultShown {
		s.input = ""
		s.resultShown = false
	}

	if r == '.' && strings.ContainsRune(s.input, '.') {
		return s, display
	}

	s.input += string(r)
	return s, s.input
}

// SetOperator handles a binary-operator keypress. With nothing to operate on
// it is a no-op. When an operation is already pending and a fresh right
// operand has been typed, that operation is resolved first (the same
// left-to-right resolve step equals uses), so chains like 2 + 3 * 4 evaluate
// as (2+3)*4. Pressing an operator with no new operand typed just swaps the
// pending operator. The display is left showing its current value.
func (s State) SetOperator(display string, op keys.Operator) (State, string) {
	if op == keys.OpNone {
		return s, display
	}
	if s.input == "" && !s.hasAcc {
		return s, display
	}

	if s.hasAcc && s.op != keys.OpNone && s.input != "" {
		s.acc = resolve(s.acc, s.op, parseOperand(s.input))
		s.input = ""
	}

	if s.input != "" {
		s.acc = parseOperand(s.input)
		s.hasAcc = true
		s.input = ""
	}

	s.op = op
	s.resultShown = false
	return s, display
}

// ComputeResult handles the equals keypress. Without a pending operator it is
// a no-op. An empty right operand parses to NaN and surfaces as "Error"
// through the formatting rule; either way the state advances as if a normal
// result was produced, so the machine never gets stuck.
func (s State) ComputeResult(display string) (State, string) {
	if s.op == keys.OpNone {
		return s, display
	}

	result := resolve(s.acc, s.op, parseOperand(s.input))

	s.acc = result
	s.hasAcc = true
	s.input = ""
	s.op = keys.OpNone
	s.resultShown = true
	return s, FormatValue(result)
}

// ApplyFunction handles a unary function keypress. The argument is the
// operand being typed when there is one, otherwise whatever the display
// currently shows. The formatted result becomes the new in-progress operand,
// so it can feed a still-pending binary operation. Unknown function keys are
// a no-op.
func (s State) ApplyFunction(display string, fn keys.Function) (State, string) {
	arg := s.input
	if arg == "" {
		arg = display
	}

	result, ok := evalFunction(fn, parseOperand(arg))
	if !ok {
		return s, display
	}

	out := FormatValue(result)
	s.input = out
	s.resultShown = true
	return s, out
}

// ClearAll handles the clear keypress: an unconditional reset to the initial
// state, showing "0".
func (s State) ClearAll() (State, string) {
	return NewState(), DisplayZero
}

// resolve applies a pending binary operation, left-to-right with no
// precedence. Division by exactly zero yields NaN rather than an infinity so
// it surfaces as "Error".
func resolve(a float64, op keys.Operator, b float64) float64 {
	switch op {
	case keys.OpAdd:
		return a + b
	case keys.OpSubtract:
		return a - b
	case keys.OpMultiply:
		return a * b
	case keys.OpDivide:
		if b == 0 {
			return math.NaN()
		}
		return a / b
	case keys.OpPower:
		return math.Pow(a, b)
	default:
		return math.NaN()
	}
}
