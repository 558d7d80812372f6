// Package keypadcalc is an interactive arithmetic evaluator driven by
// discrete keypad actions: digit entry, binary operator selection, unary
// function application, clear, and equals. It owns the session state between
// actions and pushes a single formatted display string to a configured
// display.Sink after every handled action.
//
// The evaluator is deliberately small: operands accumulate character by
// character, a pending binary operation is carried across action boundaries
// and chained left-to-right (no operator precedence), unary functions apply
// to the in-progress value, and results feed back in as the next operand.
package keypadcalc

import (
	"context"
	"fmt"

	"github.com/robbyt/go-keypadcalc/display"
	"github.com/robbyt/go-keypadcalc/engine"
	"github.com/robbyt/go-keypadcalc/engine/options"
	"github.com/robbyt/go-keypadcalc/machine"
)

// NewEvaluator creates a calculator evaluator. A display sink is required;
// construction fails without one. The returned evaluator must be initialized
// with Init, which shows "0", before any action is processed.
func NewEvaluator(opts ...options.Option) (engine.Evaluator, error) {
	cfg := options.DefaultConfig()

	// Apply all options
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, fmt.Errorf("error applying option: %w", err)
		}
	}

	// Apply defaults option as final step to fill in any missing values
	if err := options.WithDefaults()(cfg); err != nil {
		return nil, fmt.Errorf("error applying defaults: %w", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return machine.NewEvaluator(cfg.GetHandler(), cfg.GetSink())
}

// FromFunc creates an evaluator whose display frames are delivered to the
// given function, and initializes it so the display starts at "0". This is
// the quickest way to wire the evaluator to a bootstrap surface.
func FromFunc(
	ctx context.Context,
	show func(ctx context.Context, text string) error,
	opts ...options.Option,
) (engine.Evaluator, error) {
	if show == nil {
		return nil, machine.ErrNoSink
	}

	opts = append([]options.Option{options.WithDisplay(display.FuncSink(show))}, opts...)
	eval, err := NewEvaluator(opts...)
	if err != nil {
		return nil, err
	}

	if err := eval.Init(ctx); err != nil {
		return nil, fmt.Errorf("error initializing evaluator: %w", err)
	}
	return eval, nil
}
