package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/fachebot/vid-summify/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_WritesFile(t *testing.T) {
	dir := t.TempDir()
	var console bytes.Buffer
	SetConsoleOutput(&console)
	defer SetConsoleOutput(os.Stderr)

	err := Setup(config.Log{
		Dir:        dir,
		File:       "test.log",
		Level:      "debug",
		MaxSize:    1,
		MaxBackups: 1,
		MaxAge:     1,
	})
	require.NoError(t, err)

	Debugf("[Test] 调试 %d", 1)
	Infof("[Test] 信息 %s", "ok")

	assert.Contains(t, console.String(), "调试 1")
	assert.Contains(t, console.String(), "信息 ok")

	data, err := os.ReadFile(filepath.Join(dir, "test.log"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "信息 ok")
}

func TestSetup_InvalidLevel(t *testing.T) {
	err := Setup(config.Log{Dir: t.TempDir(), File: "x.log", Level: "loud"})
	assert.Error(t, err)
}
