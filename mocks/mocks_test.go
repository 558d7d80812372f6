package mocks

import (
	"testing"

	"github.com/robbyt/go-keypadcalc/display"
	"github.com/robbyt/go-keypadcalc/engine"
)

// TestEvaluatorImplementsEvaluator verifies at compile time that our mock
// Evaluator implements the engine.Evaluator interface.
func TestEvaluatorImplementsEvaluator(t *testing.T) {
	// This is a compile-time check - if it doesn't compile, the test fails
	var _ engine.Evaluator = (*Evaluator)(nil)
}

// TestSinkImplementsSink verifies at compile time that our mock Sink
// implements the display.Sink interface.
func TestSinkImplementsSink(t *testing.T) {
	var _ display.Sink = (*Sink)(nil)
}
