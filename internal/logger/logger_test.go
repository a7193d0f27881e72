package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesLevels(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "logs", "fap.log")
	require.NoError(t, Init(logPath))
	defer Close()

	Info("entered %s", "/tmp")
	Warn("cannot launch %s", "app")
	Error("cannot read %s", "dir")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	content := string(data)
	assert.Contains(t, content, "level=info")
	assert.Contains(t, content, "entered /tmp")
	assert.Contains(t, content, "level=warning")
	assert.Contains(t, content, "level=error")
}

func TestDisable(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "fap.log")
	require.NoError(t, Init(logPath))
	defer Close()

	Disable()
	Warn("hidden")
	Enable()
	Warn("shown")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(data), "hidden"))
	assert.Contains(t, string(data), "shown")
}

func TestInitRotatesLargeLog(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "fap.log")
	require.NoError(t, os.WriteFile(logPath, make([]byte, maxLogSize+1), 0644))

	require.NoError(t, Init(logPath))
	defer Close()

	_, err := os.Stat(logPath + ".old")
	assert.NoError(t, err)

	info, err := os.Stat(logPath)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(maxLogSize))
}

func TestNothingLoggedBeforeInit(t *testing.T) {
	Close()
	assert.NotPanics(t, func() { Error("dropped") })
}
