package display

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFuncSink(t *testing.T) {
	t.Parallel()

	t.Run("forwards text to the wrapped function", func(t *testing.T) {
		t.Parallel()
		var got string
		sink := FuncSink(func(_ context.Context, text string) error {
			got = text
			return nil
		})

		err := sink.Show(context.Background(), "42")
		assert.NoError(t, err)
		assert.Equal(t, "42", got)
	})

	t.Run("propagates the function's error", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("surface gone")
		sink := FuncSink(func(_ context.Context, _ string) error {
			return wantErr
		})

		err := sink.Show(context.Background(), "42")
		assert.ErrorIs(t, err, wantErr)
	})
}

func TestMemorySink(t *testing.T) {
	t.Parallel()

	t.Run("empty sink has no last frame", func(t *testing.T) {
		t.Parallel()
		sink := NewMemorySink()
		assert.Equal(t, "", sink.Last())
		assert.Empty(t, sink.Frames())
	})

	t.Run("records frames in order", func(t *testing.T) {
		t.Parallel()
		sink := NewMemorySink()
		ctx := context.Background()

		require.NoError(t, sink.Show(ctx, "0"))
		require.NoError(t, sink.Show(ctx, "1"))
		require.NoError(t, sink.Show(ctx, "12"))

		assert.Equal(t, []string{"0", "1", "12"}, sink.Frames())
		assert.Equal(t, "12", sink.Last())
	})

	t.Run("frames returns a copy", func(t *testing.T) {
		t.Parallel()
		sink := NewMemorySink()
		require.NoError(t, sink.Show(context.Background(), "0"))

		frames := sink.Frames()
		frames[0] = "mutated"
		assert.Equal(t, "0", sink.Last(), "mutating the copy should not affect the sink")
	})

	t.Run("reset discards frames", func(t *testing.T) {
		t.Parallel()
		sink := NewMemorySink()
		require.NoError(t, sink.Show(context.Background(), "0"))

		sink.Reset()
		assert.Empty(t, sink.Frames())
		assert.Equal(t, "", sink.Last())
	})
}

func TestCompositeSink(t *testing.T) {
	t.Parallel()

	t.Run("delivers to every sink in order", func(t *testing.T) {
		t.Parallel()
		first := NewMemorySink()
		second := NewMemorySink()
		composite := NewCompositeSink(first, second)

		err := composite.Show(context.Background(), "3.14")
		assert.NoError(t, err)
		assert.Equal(t, []string{"3.14"}, first.Frames())
		assert.Equal(t, []string{"3.14"}, second.Frames())
	})

	t.Run("skips nil sinks", func(t *testing.T) {
		t.Parallel()
		sink := NewMemorySink()
		composite := NewCompositeSink(nil, sink)

		err := composite.Show(context.Background(), "7")
		assert.NoError(t, err)
		assert.Equal(t, []string{"7"}, sink.Frames())
	})

	t.Run("wraps the failing sink's error with its index", func(t *testing.T) {
		t.Parallel()
		wantErr := errors.New("disconnected")
		failing := FuncSink(func(_ context.Context, _ string) error {
			return wantErr
		})
		after := NewMemorySink()
		composite := NewCompositeSink(NewMemorySink(), failing, after)

		err := composite.Show(context.Background(), "7")
		require.Error(t, err)
		assert.ErrorIs(t, err, wantErr)
		assert.Contains(t, err.Error(), "sink 1")
		assert.Empty(t, after.Frames(), "delivery should stop at the failing sink")
	})

	t.Run("empty composite accepts frames", func(t *testing.T) {
		t.Parallel()
		composite := NewCompositeSink()
		assert.NoError(t, composite.Show(context.Background(), "0"))
	})
}
