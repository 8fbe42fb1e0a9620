package logger_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/passforge/passforge-core/internal/logger"
	"github.com/stretchr/testify/assert"
)

func TestParseLogLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug": slog.LevelDebug,
		"DEBUG": slog.LevelDebug,
		"info":  slog.LevelInfo,
		"warn":  slog.LevelWarn,
		"error": slog.LevelError,
		"bogus": slog.LevelInfo,
		"":      slog.LevelInfo,
	}
	for input, want := range cases {
		assert.Equal(t, want, logger.ParseLogLevel(input), "input %q", input)
	}
}

func TestInitLogger(t *testing.T) {
	log := logger.InitLogger(slog.LevelWarn)
	assert.False(t, log.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, log.Enabled(context.Background(), slog.LevelError))
}
