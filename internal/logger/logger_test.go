package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func withObservedLogs() *observer.ObservedLogs {
	core, logs := observer.New(zapcore.DebugLevel)
	sugar = zap.New(core).Sugar()
	return logs
}

func TestInit(t *testing.T) {
	Init()
	assert.NotNil(t, sugar)
}

func TestInfo(t *testing.T) {
	logs := withObservedLogs()

	Info("test message", "key1", "value1")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "test message", entries[0].Message)
	assert.Equal(t, "value1", entries[0].ContextMap()["key1"])
}

func TestInfof(t *testing.T) {
	logs := withObservedLogs()

	Infof("test %s", "message")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, "test message", entries[0].Message)
}

func TestError(t *testing.T) {
	logs := withObservedLogs()

	Error("test error", "error", assert.AnError)

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.ErrorLevel, entries[0].Level)
	assert.Equal(t, "test error", entries[0].Message)
}

func TestDebugf(t *testing.T) {
	logs := withObservedLogs()

	Debugf("test %s", "debug")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, "test debug", entries[0].Message)
}

func TestWarn(t *testing.T) {
	logs := withObservedLogs()

	Warn("test warning")

	entries := logs.All()
	require.Len(t, entries, 1)
	assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
}
