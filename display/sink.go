// Package display defines the output collaborator of the evaluator: a Sink
// that accepts the single string the calculator wants shown. Sinks render the
// string exactly as given, with no additional interpretation.
package display

import (
	"context"
)

// Sink receives each display string produced by the evaluator. The evaluator
// pushes a frame after every handled action, including frames whose content
// is unchanged from the previous one.
type Sink interface {
	// Show renders the given text on the display surface.
	// An error means the frame could not be delivered; the evaluator's
	// internal state has already advanced by the time Show is called.
	Show(ctx context.Context, text string) error
}
