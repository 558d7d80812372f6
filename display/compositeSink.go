package display

import (
	"context"
	"fmt"
)

// CompositeSink fans each frame out to multiple sinks in order, so a single
// evaluator can drive, say, a widget and a debug log at the same time.
type CompositeSink struct {
	// sinks is the ordered list of sinks to deliver to
	sinks []Sink
}

// NewCompositeSink creates a new CompositeSink with the given sinks.
// Frames are delivered in the order the sinks are provided.
func NewCompositeSink(sinks ...Sink) *CompositeSink {
	return &CompositeSink{
		sinks: sinks,
	}
}

// Show implements Sink.Show.
// Delivery stops at the first failing sink; the error identifies which one.
func (c *CompositeSink) Show(ctx context.Context, text string) error {
	for i, sink := range c.sinks {
		if sink == nil {
			continue
		}

		if err := sink.Show(ctx, text); err != nil {
			return fmt.Errorf("error from sink %d: %w", i, err)
		}
	}

	return nil
}
