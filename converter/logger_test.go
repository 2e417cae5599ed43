package converter

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}

	// All methods are safe no-ops.
	l.Debug("debug", "k", "v")
	l.Info("info")
	l.Warn("warn")
	l.Error("error")
	assert.Equal(t, NopLogger{}, l.With("k", "v"))
}

func TestSlogAdapter(t *testing.T) {
	newBufferedLogger := func() (*SlogAdapter, *bytes.Buffer) {
		var buf bytes.Buffer
		handler := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})
		return NewSlogAdapter(slog.New(handler)), &buf
	}

	t.Run("levels pass through", func(t *testing.T) {
		adapter, buf := newBufferedLogger()

		adapter.Debug("debug msg", "id", "Pet")
		adapter.Info("info msg")
		adapter.Warn("warn msg")
		adapter.Error("error msg")

		out := buf.String()
		assert.Contains(t, out, "level=DEBUG")
		assert.Contains(t, out, `msg="debug msg"`)
		assert.Contains(t, out, "id=Pet")
		assert.Contains(t, out, "level=INFO")
		assert.Contains(t, out, "level=WARN")
		assert.Contains(t, out, "level=ERROR")
	})

	t.Run("With prepends attributes", func(t *testing.T) {
		adapter, buf := newBufferedLogger()

		child := adapter.With("component", "converter")
		child.Info("scoped")

		assert.Contains(t, buf.String(), "component=converter")
	})

	t.Run("nil logger falls back to slog.Default", func(t *testing.T) {
		adapter := NewSlogAdapter(nil)
		require.NotNil(t, adapter)
		adapter.Debug("discarded by default level")
	})
}
