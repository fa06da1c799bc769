package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/packager/internal/adapters/logger"
)

func TestPrettyHandler_Attrs(t *testing.T) {
	var buf bytes.Buffer
	h := logger.NewPrettyHandler(&buf, nil)

	log := slog.New(h.WithAttrs([]slog.Attr{slog.String("dir", "app")}))
	log.Info("installing", "script", "build")

	out := buf.String()
	assert.Contains(t, out, "installing")
	assert.Contains(t, out, "dir=app")
	assert.Contains(t, out, "script=build")
}

func TestPrettyHandler_Group(t *testing.T) {
	var buf bytes.Buffer
	h := logger.NewPrettyHandler(&buf, nil)

	slog.New(h.WithGroup("pnpm")).Info("listing", "depth", 2)

	assert.Contains(t, buf.String(), "pnpm.depth=2")
}

func TestPrettyHandler_Enabled(t *testing.T) {
	h := logger.NewPrettyHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelWarn))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}

func TestPrettyHandler_Icons(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(logger.NewPrettyHandler(&buf, nil))

	log.Warn("careful")
	log.Error("broken")

	out := buf.String()
	assert.Contains(t, out, "! careful")
	assert.Contains(t, out, "✗ broken")
}
