// Package engine defines the public contract of the calculator evaluator.
package engine

import (
	"context"

	"github.com/robbyt/go-keypadcalc/keys"
)

// Applier consumes raw keypad actions, one at a time. It is the surface an
// action source (widget, terminal, socket) drives: the source decides which
// action fires, the evaluator decides what it means.
type Applier interface {
	// Apply processes one action and returns the string that must now be
	// shown. Unknown action kinds and unparseable values are no-ops that
	// return the current display unchanged.
	Apply(ctx context.Context, act keys.Action) (string, error)
}

// Keypad is the typed per-key contract, one entry point per action kind.
// Every method returns the string that must now be shown.
type Keypad interface {
	// AppendDigit appends a digit or decimal point to the operand being
	// typed. A second '.' within one operand is rejected.
	AppendDigit(ctx context.Context, r rune) (string, error)

	// SetOperator selects a pending binary operator, resolving a prior
	// pending operation left-to-right when a fresh operand has been typed.
	SetOperator(ctx context.Context, op keys.Operator) (string, error)

	// ApplyFunction applies a unary function to the in-progress value.
	ApplyFunction(ctx context.Context, fn keys.Function) (string, error)

	// ComputeResult resolves the pending binary operation (equals).
	ComputeResult(ctx context.Context) (string, error)

	// ClearAll resets the session and shows "0".
	ClearAll(ctx context.Context) (string, error)
}

// Evaluator combines the raw-action and typed per-key surfaces with session
// lifecycle. Implementations push every display frame to their configured
// sink; actions must be delivered strictly sequentially.
type Evaluator interface {
	Applier
	Keypad

	// Init resets the session and shows "0". It must run once before any
	// action is processed.
	Init(ctx context.Context) error

	// Display returns the string currently shown.
	Display() string
}
