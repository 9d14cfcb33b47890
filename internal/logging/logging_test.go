package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromContext_FallsBackToDefault(t *testing.T) {
	assert.Same(t, slog.Default(), FromContext(context.Background()))
}

func TestIntoContext_RoundTrip(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, "info").With("service", "bookstore")

	ctx := IntoContext(context.Background(), l)
	FromContext(ctx).Info("cart_loaded", "user_id", "42")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "cart_loaded", line["msg"])
	assert.Equal(t, "bookstore", line["service"])
	assert.Equal(t, "42", line["user_id"])
}

func TestNewWithWriter_Levels(t *testing.T) {
	tests := []struct {
		level     string
		infoShown bool
		warnShown bool
	}{
		{level: "", infoShown: true, warnShown: true},
		{level: "debug", infoShown: true, warnShown: true},
		{level: "WARN", infoShown: false, warnShown: true},
		{level: "error", infoShown: false, warnShown: false},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			l := NewWithWriter(&buf, tt.level)

			l.Info("info")
			assert.Equal(t, tt.infoShown, buf.Len() > 0)

			buf.Reset()
			l.Warn("warn")
			assert.Equal(t, tt.warnShown, buf.Len() > 0)
		})
	}
}
