package options

import (
	"context"
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robbyt/go-keypadcalc/display"
)

func TestOptions(t *testing.T) {
	t.Parallel()

	handler := slog.NewTextHandler(os.Stderr, nil)
	sink := display.NewMemorySink()

	t.Run("WithLogHandler sets the handler", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		require.NoError(t, WithLogHandler(handler)(cfg))
		assert.Equal(t, handler, cfg.GetHandler())
	})

	t.Run("WithLogHandler ignores nil", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		cfg.SetHandler(handler)
		require.NoError(t, WithLogHandler(nil)(cfg))
		assert.Equal(t, handler, cfg.GetHandler(), "nil handler should not clear the config")
	})

	t.Run("WithSlog uses the logger's handler", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		require.NoError(t, WithSlog(slog.New(handler))(cfg))
		assert.Equal(t, handler, cfg.GetHandler())
	})

	t.Run("WithDisplay sets the sink", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		require.NoError(t, WithDisplay(sink)(cfg))
		assert.Equal(t, display.Sink(sink), cfg.GetSink())
	})

	t.Run("WithDisplay ignores nil", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		cfg.SetSink(sink)
		require.NoError(t, WithDisplay(nil)(cfg))
		assert.Equal(t, display.Sink(sink), cfg.GetSink(), "nil sink should not clear the config")
	})
}

func TestWithDefaults(t *testing.T) {
	t.Parallel()

	t.Run("fills a missing handler", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		require.NoError(t, WithDefaults()(cfg))
		assert.NotNil(t, cfg.GetHandler())
	})

	t.Run("keeps an existing handler", func(t *testing.T) {
		t.Parallel()
		handler := slog.NewTextHandler(os.Stderr, nil)
		cfg := DefaultConfig()
		cfg.SetHandler(handler)
		require.NoError(t, WithDefaults()(cfg))
		assert.Equal(t, slog.Handler(handler), cfg.GetHandler())
	})

	t.Run("does not invent a sink", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		require.NoError(t, WithDefaults()(cfg))
		assert.Nil(t, cfg.GetSink())
	})
}

func TestValidate(t *testing.T) {
	t.Parallel()

	t.Run("complete config passes", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		cfg.SetHandler(slog.NewTextHandler(os.Stderr, nil))
		cfg.SetSink(display.FuncSink(func(context.Context, string) error { return nil }))
		assert.NoError(t, cfg.Validate())
	})

	t.Run("missing sink fails", func(t *testing.T) {
		t.Parallel()
		cfg := DefaultConfig()
		cfg.SetHandler(slog.NewTextHandler(os.Stderr, nil))
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no display sink specified")
	})

	t.Run("empty config reports every problem", func(t *testing.T) {
		t.Parallel()
		err := DefaultConfig().Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "no logger specified")
		assert.Contains(t, err.Error(), "no display sink specified")
	})
}
