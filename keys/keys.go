// Package keys defines the closed vocabularies of the calculator keypad:
// action kinds, binary operators, and unary function keys. Raw strings from
// an action source are converted into these types exactly once, at the
// dispatch boundary, so unknown tags surface as explicit variants instead of
// falling through a default branch somewhere deeper.
package keys

// Kind identifies which family of keypad action fired.
type Kind string

const (
	// KindUnknown is the zero value, returned for any unrecognized tag.
	KindUnknown Kind = ""

	// KindDigit appends a digit or decimal point to the operand being typed.
	KindDigit Kind = "digit"

	// KindOperator selects a pending binary operator.
	KindOperator Kind = "operator"

	// KindFunction applies a unary function to the in-progress value.
	KindFunction Kind = "function"

	// KindClear resets the whole session.
	KindClear Kind = "clear"

	// KindEquals resolves the pending binary operation.
	KindEquals Kind = "equals"
)

// ParseKind maps a raw action-kind tag to its Kind. Unrecognized tags return
// KindUnknown, which the evaluator treats as a no-op.
func ParseKind(s string) Kind {
	switch Kind(s) {
	case KindDigit, KindOperator, KindFunction, KindClear, KindEquals:
		return Kind(s)
	default:
		return KindUnknown
	}
}

// Operator is a pending binary operation between two operands.
type Operator string

const (
	// OpNone means no operation is pending.
	OpNone Operator = ""

	OpAdd      Operator = "+"
	OpSubtract Operator = "-"
	OpMultiply Operator = "*"
	OpDivide   Operator = "/"
	OpPower    Operator = "^"
)

// ParseOperator maps a raw operator tag to its Operator. The second return
// value reports whether the tag named a known operator.
func ParseOperator(s string) (Operator, bool) {
	switch Operator(s) {
	case OpAdd, OpSubtract, OpMultiply, OpDivide, OpPower:
		return Operator(s), true
	default:
		return OpNone, false
	}
}

// Function is a unary function key on the keypad.
type Function string

const (
	// FuncUnknown is the zero value, returned for any unrecognized tag.
	FuncUnknown Function = ""

	// FuncSin, FuncCos and FuncTan interpret their argument as degrees.
	FuncSin Function = "sin"
	FuncCos Function = "cos"
	FuncTan Function = "tan"

	// FuncLog is the base-10 logarithm, FuncLn the natural logarithm.
	FuncLog Function = "log"
	FuncLn  Function = "ln"

	// FuncSqrt is the square root key.
	FuncSqrt Function = "√"

	// FuncPi and FuncE ignore the argument and return the constant.
	FuncPi Function = "π"
	FuncE  Function = "e"

	// FuncNegate flips the sign, FuncPercent divides by 100.
	FuncNegate  Function = "±"
	FuncPercent Function = "%"

	// FuncPowSelf raises the value to itself (value^value). The key shares
	// the binary power operator's symbol and its semantics look like a
	// copy-paste artifact, but the behavior is preserved bit-for-bit pending
	// product clarification.
	FuncPowSelf Function = "^"
)

// ParseFunction maps a raw function tag to its Function. The second return
// value reports whether the tag named a known function key.
func ParseFunction(s string) (Function, bool) {
	switch Function(s) {
	case FuncSin, FuncCos, FuncTan, FuncLog, FuncLn, FuncSqrt,
		FuncPi, FuncE, FuncNegate, FuncPercent, FuncPowSelf:
		return Function(s), true
	default:
		return FuncUnknown, false
	}
}

// Action is one discrete keypad event: a kind plus, for digit, operator and
// function kinds, the raw value string carried by the event. It is the sole
// input unit consumed by the evaluator.
type Action struct {
	Kind  Kind
	Value string
}

// Digit builds a digit-entry action for a single digit or point character.
func Digit(r rune) Action {
	return Action{Kind: KindDigit, Value: string(r)}
}

// Op builds an operator-selection action.
func Op(op Operator) Action {
	return Action{Kind: KindOperator, Value: string(op)}
}

// FunctionKey builds a unary-function action.
func FunctionKey(fn Function) Action {
	return Action{Kind: KindFunction, Value: string(fn)}
}

// Clear builds a clear-all action.
func Clear() Action {
	return Action{Kind: KindClear}
}

// Equals builds an equals action.
func Equals() Action {
	return Action{Kind: KindEquals}
}
