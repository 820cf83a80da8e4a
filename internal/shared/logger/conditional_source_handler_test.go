package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func logAt(log *slog.Logger, level slog.Level, msg string) {
	switch level {
	case slog.LevelDebug:
		log.Debug(msg)
	case slog.LevelInfo:
		log.Info(msg)
	case slog.LevelWarn:
		log.Warn(msg)
	case slog.LevelError:
		log.Error(msg)
	}
}

func TestConditionalSourceHandler(t *testing.T) {
	warnAndError := []slog.Level{slog.LevelWarn, slog.LevelError}

	tests := []struct {
		name             string
		level            slog.Level
		showSourceLevels []slog.Level
		wantSource       bool
	}{
		{"debug stays short", slog.LevelDebug, warnAndError, false},
		{"info stays short", slog.LevelInfo, warnAndError, false},
		{"warn carries source", slog.LevelWarn, warnAndError, true},
		{"error carries source", slog.LevelError, warnAndError, true},
		{"info when explicitly listed", slog.LevelInfo, []slog.Level{slog.LevelInfo}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			base := slog.NewTextHandler(&buf, &slog.HandlerOptions{AddSource: false})
			log := slog.New(NewConditionalSourceHandler(base, tt.showSourceLevels...))

			logAt(log, tt.level, "something happened")

			if tt.wantSource {
				assert.Contains(t, buf.String(), "source=")
			} else {
				assert.NotContains(t, buf.String(), "source=")
			}
		})
	}
}

func TestConditionalSourceHandlerWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, &slog.HandlerOptions{AddSource: false})
	log := slog.New(NewConditionalSourceHandler(base, slog.LevelError)).With("telegram_user_id", "111")

	log.Info("something happened")

	assert.NotContains(t, buf.String(), "source=")
	assert.Contains(t, buf.String(), "telegram_user_id=111")
}

func TestConditionalSourceHandlerWithGroup(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, &slog.HandlerOptions{AddSource: false})
	log := slog.New(NewConditionalSourceHandler(base, slog.LevelError)).WithGroup("request")

	log.Info("something happened", "path", "/api/v1/tickets")

	assert.NotContains(t, buf.String(), "source=")
	assert.Contains(t, buf.String(), "path")
}

func TestConditionalSourceHandlerEnabled(t *testing.T) {
	var buf bytes.Buffer
	base := slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})
	handler := NewConditionalSourceHandler(base, slog.LevelError)

	// Level gating is delegated to the wrapped handler.
	assert.True(t, handler.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, handler.Enabled(context.Background(), slog.LevelError))
	assert.False(t, handler.Enabled(context.Background(), slog.LevelDebug))
}
