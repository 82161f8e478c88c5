package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"lexcase/internal/core/config"
)

func TestToWriterTrimsAndLevels(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	w := ToWriter(zap.New(core), zapcore.WarnLevel)

	n, err := w.Write([]byte("slow query\n"))
	require.NoError(t, err)
	assert.Equal(t, len("slow query\n"), n)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "slow query", entry.Message)
	assert.Equal(t, zapcore.WarnLevel, entry.Level)
}

func TestToStdLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ToStdLogger(zap.New(core), zapcore.ErrorLevel).Print("boom")

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "boom", logs.All()[0].Message)
}

func TestFromConfigLevel(t *testing.T) {
	l, cleanup := FromConfig(config.Log{Level: "warn"}, true)
	defer cleanup()
	assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, l.Core().Enabled(zapcore.WarnLevel))

	l2, cleanup2 := FromConfig(config.Log{Level: "nonsense"}, false)
	defer cleanup2()
	assert.True(t, l2.Core().Enabled(zapcore.InfoLevel))
}
