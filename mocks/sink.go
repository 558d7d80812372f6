package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Sink is a mock implementation of display.Sink for testing purposes.
type Sink struct {
	mock.Mock
}

// Show is a mock implementation of the Show method.
func (m *Sink) Show(ctx context.Context, text string) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}
