package logger

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		entrada string
		want    slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"WARN", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{" error ", slog.LevelError},
		{"info", slog.LevelInfo},
		{"", slog.LevelInfo},
		{"verbose", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.entrada, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.entrada))
		})
	}
}

func TestRequestID_QuandoGravadoNoContexto_DeveSerRecuperado(t *testing.T) {
	ctx := ComRequestID(context.Background(), "req-123")

	assert.Equal(t, "req-123", RequestID(ctx))
	assert.Equal(t, "", RequestID(context.Background()))
	assert.NotSame(t, L(), DoContexto(ctx))
	assert.Same(t, L(), DoContexto(context.Background()))
}
