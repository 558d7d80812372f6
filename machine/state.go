// Package machine implements the calculator's input/evaluation state machine.
//
// The core is a value type, State, whose transition methods are pure: each
// takes the current state plus the currently shown display string and returns
// the next state plus the string that must now be shown. Evaluator wraps that
// core with session ownership, logging, and delivery to a display.Sink.
package machine

import (
	"math"
	"strconv"

	"github.com/robbyt/go-keypadcalc/keys"
)

// DisplayZero is the display content of a freshly initialized session.
const DisplayZero = "0"

// DisplayError is shown whenever a result is NaN or infinite.
const DisplayError = "Error"

// State is the complete session state of the calculator. The zero value is
// the initial state: nothing typed, no pending operation, no result shown.
//
// Transition methods use value receivers and return the successor state, so
// a State can be stored, replayed, and tested without any shared mutation.
type State struct {
	// input is the text of the operand currently being typed; empty means
	// nothing has been typed since the last action boundary.
	input string

	// acc is the left-hand operand of a pending operation, or the last
	// computed result. Valid only when hasAcc is true.
	acc    float64
	hasAcc bool

	// op is the pending binary operator; OpNone means none is pending.
	// op is never pending without acc being set.
	op keys.Operator

	// resultShown marks that the display holds a finalized result, so the
	// next digit starts a fresh operand.
	resultShown bool
}

// NewState returns the initial session state.
func NewState() State {
	return State{}
}

// Input returns the operand text currently being typed.
func (s State) Input() string {
	return s.input
}

// Accumulator returns the pending left operand (or last result) and whether
// one is present.
func (s State) Accumulator() (float64, bool) {
	return s.acc, s.hasAcc
}

// PendingOperator returns the pending binary operator, or keys.OpNone.
func (s State) PendingOperator() keys.Operator {
	return s.op
}

// ResultShown reports whether the display currently holds a finalized result.
func (s State) ResultShown() bool {
	return s.resultShown
}

// parseOperand converts operand text to a float64. Anything unparseable,
// including the empty string, becomes NaN so that invalid operands flow
// through the normal formatting path and surface as "Error".
func parseOperand(text string) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return math.NaN()
	}
	return v
}
