package log

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":   LevelDebug,
		"INFO":    LevelInfo,
		" warn ":  LevelWarn,
		"warning": LevelWarn,
		"error":   LevelError,
		"off":     LevelNone,
		"bogus":   LevelInfo,
	}
	for in, want := range cases {
		assert.Equal(t, want, ParseLevel(in), in)
	}
}

func TestLoggerLevel(t *testing.T) {
	l := NewDevelopment(LevelWarn)
	assert.Equal(t, LevelWarn, l.GetLevel())
	assert.False(t, l.checkLevel(LevelInfo))
	assert.True(t, l.checkLevel(LevelError))

	l.SetLevel(LevelDebug)
	assert.Equal(t, LevelDebug, l.GetLevel())
	assert.True(t, l.checkLevel(LevelInfo))
	assert.False(t, l.checkLevel(LevelNone))
}

func TestNopLogger(t *testing.T) {
	l := NewNop()
	require.NotNil(t, l)
	assert.False(t, l.checkLevel(LevelFatal))

	child := l.With(String("component", "registry"), Uint32("id", 7)).Named("test")
	child.Info("dropped", Error(errors.New("boom")))
}

func TestToZapFields(t *testing.T) {
	fields := toZapFields(
		Bool("b", true),
		Int("i", 1),
		Strings("s", []string{"a"}),
		Any("any", struct{}{}),
	)
	require.Len(t, fields, 4)
	assert.Equal(t, "b", fields[0].Key)
	assert.Equal(t, "any", fields[3].Key)
}

func TestDevelopmentLoggerReportsCallSite(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := &Logger{
		zapLogger: zap.New(core, developmentOptions()...),
		level:     zap.NewAtomicLevelAt(zapcore.DebugLevel),
	}

	l.Info("wrote generated code")
	l.Named("codegen").Warn("slow")

	entries := logs.All()
	require.Len(t, entries, 2)
	for _, e := range entries {
		require.True(t, e.Caller.Defined)
		assert.Equal(t, "logger_test.go", filepath.Base(e.Caller.File))
	}
}
