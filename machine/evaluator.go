package machine

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/robbyt/go-keypadcalc/display"
	"github.com/robbyt/go-keypadcalc/internal/helpers"
	"github.com/robbyt/go-keypadcalc/keys"
)

// Evaluator owns one calculator session: the State, the string currently
// shown, and the display.Sink every new frame is pushed to. Each handled
// action produces exactly one frame, even when its content is unchanged.
//
// Actions are strictly sequential by the action-surface contract, so the
// Evaluator carries no lock; callers must not invoke a second action handler
// while one is in progress.
type Evaluator struct {
	state   State
	display string

	sink display.Sink

	logHandler slog.Handler
	logger     *slog.Logger
}

// NewEvaluator creates an Evaluator bound to the given sink. A nil sink is a
// configuration error. Call Init before processing any action.
func NewEvaluator(handler slog.Handler, sink display.Sink) (*Evaluator, error) {
	if sink == nil {
		return nil, ErrNoSink
	}

	handler, logger := helpers.SetupLogger(handler, "machine", "Evaluator")

	return &Evaluator{
		state:      NewState(),
		display:    DisplayZero,
		sink:       sink,
		logHandler: handler,
		logger:     logger,
	}, nil
}

func (e *Evaluator) String() string {
	return "machine.Evaluator"
}

// Display returns the string currently shown.
func (e *Evaluator) Display() string {
	return e.display
}

// Init resets the session and shows "0". It must run once before the first
// action, and may run again to restart the session.
func (e *Evaluator) Init(ctx context.Context) error {
	e.state = NewState()
	e.display = DisplayZero
	return e.show(ctx)
}

// Apply dispatches one raw action to the matching handler. Unknown action
// kinds and missing or unparseable values are no-ops that leave the state
// and display untouched.
func (e *Evaluator) Apply(ctx context.Context, act keys.Action) (string, error) {
	logger := e.logger.WithGroup("Apply")

	switch act.Kind {
	case keys.KindDigit:
		r, size := utf8.DecodeRuneInString(act.Value)
		if size == 0 || size != len(act.Value) {
			logger.WarnContext(ctx, "digit action without a single character value", "value", act.Value)
			return e.display, nil
		}
		return e.AppendDigit(ctx, r)
	case keys.KindOperator:
		op, ok := keys.ParseOperator(act.Value)
		if !ok {
			logger.WarnContext(ctx, "unknown operator tag", "value", act.Value)
			return e.display, nil
		}
		return e.SetOperator(ctx, op)
	case keys.KindFunction:
		fn, ok := keys.ParseFunction(act.Value)
		if !ok {
			logger.WarnContext(ctx, "unknown function tag", "value", act.Value)
			return e.display, nil
		}
		return e.ApplyFunction(ctx, fn)
	case keys.KindClear:
		return e.ClearAll(ctx)
	case keys.KindEquals:
		return e.ComputeResult(ctx)
	default:
		logger.WarnContext(ctx, "unknown action kind", "kind", act.Kind)
		return e.display, nil
	}
}

// AppendDigit handles a digit or decimal-point keypress.
func (e *Evaluator) AppendDigit(ctx context.Context, r rune) (string, error) {
	e.state, e.display = e.state.AppendDigit(e.display, r)
	e.logger.DebugContext(ctx, "digit entered", "digit", string(r), "input", e.state.Input())
	return e.display, e.show(ctx)
}

// SetOperator handles a binary-operator keypress.
func (e *Evaluator) SetOperator(ctx context.Context, op keys.Operator) (string, error) {
	e.state, e.display = e.state.SetOperator(e.display, op)
	e.logger.DebugContext(ctx, "operator selected", "operator", op)
	return e.display, e.show(ctx)
}

// ApplyFunction handles a unary function keypress.
func (e *Evaluator) ApplyFunction(ctx context.Context, fn keys.Function) (string, error) {
	e.state, e.display = e.state.ApplyFunction(e.display, fn)
	e.logger.DebugContext(ctx, "function applied", "function", fn, "display", e.display)
	return e.display, e.show(ctx)
}

// ComputeResult handles the equals keypress.
func (e *Evaluator) ComputeResult(ctx context.Context) (string, error) {
	e.state, e.display = e.state.ComputeResult(e.display)
	e.logger.DebugContext(ctx, "result computed", "display", e.display)
	return e.display, e.show(ctx)
}

// ClearAll resets the session and shows "0".
func (e *Evaluator) ClearAll(ctx context.Context) (string, error) {
	e.state, e.display = e.state.ClearAll()
	e.logger.DebugContext(ctx, "session cleared")
	return e.display, e.show(ctx)
}

// show pushes the current display to the sink. The state has already
// advanced by the time this runs; a failure is the collaborator's to handle.
func (e *Evaluator) show(ctx context.Context) error {
	if err := e.sink.Show(ctx, e.display); err != nil {
		e.logger.ErrorContext(ctx, "failed to deliver display frame", "error", err)
		return fmt.Errorf("%w: %w", ErrShowFailed, err)
	}
	return nil
}
