package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/robbyt/go-keypadcalc/keys"
)

// Evaluator is a mock implementation of engine.Evaluator for testing purposes.
type Evaluator struct {
	mock.Mock
}

// Init is a mock implementation of the Init method.
func (m *Evaluator) Init(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Display is a mock implementation of the Display method.
func (m *Evaluator) Display() string {
	args := m.Called()
	return args.String(0)
}

// Apply is a mock implementation of the Apply method.
func (m *Evaluator) Apply(ctx context.Context, act keys.Action) (string, error) {
	args := m.Called(ctx, act)
	return args.String(0), args.Error(1)
}

// AppendDigit is a mock implementation of the AppendDigit method.
func (m *Evaluator) AppendDigit(ctx context.Context, r rune) (string, error) {
	args := m.Called(ctx, r)
	return args.String(0), args.Error(1)
}

// SetOperator is a mock implementation of the SetOperator method.
func (m *Evaluator) SetOperator(ctx context.Context, op keys.Operator) (string, error) {
	args := m.Called(ctx, op)
	return args.String(0), args.Error(1)
}

// ApplyFunction is a mock implementation of the ApplyFunction method.
func (m *Evaluator) ApplyFunction(ctx context.Context, fn keys.Function) (string, error) {
	args := m.Called(ctx, fn)
	return args.String(0), args.Error(1)
}

// ComputeResult is a mock implementation of the ComputeResult method.
func (m *Evaluator) ComputeResult(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

// ClearAll is a mock implementation of the ClearAll method.
func (m *Evaluator) ClearAll(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}
