package logger

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestWrapCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log := Wrap(zap.New(core)).With(zap.String("run_id", "r-1"))

	log.Info("seeded", zap.Int("orders", 3))
	log.Debug("query done")

	entries := logs.All()
	require.Len(t, entries, 2)
	require.Equal(t, "seeded", entries[0].Message)
	require.Equal(t, "r-1", entries[0].ContextMap()["run_id"])
	require.EqualValues(t, 3, entries[0].ContextMap()["orders"])
	require.Equal(t, zapcore.DebugLevel, entries[1].Level)
}

func TestNewZapLoggerUnknownLevelFallsBackToInfo(t *testing.T) {
	log := NewZapLogger(&ZapLoggerConfig{Encoding: "json", Level: "loud"})
	require.NotNil(t, log)

	zl, ok := log.(*zapLogger)
	require.True(t, ok)
	require.False(t, zl.l.Core().Enabled(zapcore.DebugLevel))
	require.True(t, zl.l.Core().Enabled(zapcore.InfoLevel))
}

func TestNewZapLoggerDevelopment(t *testing.T) {
	log := NewZapLogger(&ZapLoggerConfig{IsDevelopment: true, Encoding: "console", Level: "debug"})

	zl := log.(*zapLogger)
	require.True(t, zl.l.Core().Enabled(zapcore.DebugLevel))
}
