package display

import (
	"context"
)

// FuncSink adapts a plain function into a Sink, for wiring the evaluator to
// whatever transport the bootstrap uses (stdout, a websocket, a widget).
type FuncSink func(ctx context.Context, text string) error

// Show implements Sink by calling the wrapped function.
func (f FuncSink) Show(ctx context.Context, text string) error {
	return f(ctx, text)
}
