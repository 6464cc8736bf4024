package log

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedFormatter(format string) Formatter {
	f := NewFormatter(format)
	f.now = func() time.Time {
		return time.Date(2022, 5, 1, 12, 0, 0, 0, time.UTC)
	}
	return f
}

func TestFormat(t *testing.T) {
	out, err := fixedFormatter(DefaultFormat).Format("INFO", "hello")
	require.NoError(t, err)
	assert.Equal(t, "2022-05-01T12:00:00Z: [INFO] - hello\n", out)

	_, err = fixedFormatter("{level} only").Format("INFO", "hello")
	assert.Error(t, err)
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := NewWithSinks(WARN, NewConsole(&buf, fixedFormatter("{level} {message}")))
	logger.Info("dropped")
	logger.Warn("kept %d", 1)
	logger.Error("kept %d", 2)
	assert.Equal(t, "WARN kept 1\nERROR kept 2\n", buf.String())

	buf.Reset()
	logger.SetLevel(VERBOSE)
	logger.Verbose("now visible")
	assert.Equal(t, "VERBOSE now visible\n", buf.String())
}

func TestParseLevel(t *testing.T) {
	for i, name := range []string{"error", "WARN", "Info", "debug", "verbose"} {
		level, err := ParseLevel(name)
		require.NoError(t, err)
		assert.Equal(t, LogLevel(i), level)
	}
	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestFileSink(t *testing.T) {
	path := filepath.Join(t.TempDir(), "xwin.log")
	logger, err := LogConf{Level: "debug", Path: path, Format: "{level}: {message}"}.Logger(true)
	require.NoError(t, err)
	logger.Debug("keymap %s", "reloaded")
	logger.Verbose("hidden")
	logger.Close()

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "DEBUG: keymap reloaded\n", string(data))
}

func TestDefault(t *testing.T) {
	var buf bytes.Buffer
	prev := Default()
	defer SetDefault(prev)

	SetDefault(NewWithSinks(INFO, NewConsole(&buf, fixedFormatter("{message}"))))
	Info("via package")
	Debug("not shown")
	assert.True(t, strings.HasPrefix(buf.String(), "via package"))
	assert.NotContains(t, buf.String(), "not shown")
}

func TestLoggerTo(t *testing.T) {
	var buf bytes.Buffer
	logger, err := LogConf{Level: "warn", Format: "{level}: {message}"}.LoggerTo(&buf)
	require.NoError(t, err)
	logger.Info("dropped")
	logger.Warn("sent to writer")
	assert.Equal(t, "WARN: sent to writer\n", buf.String())

	_, err = LogConf{Level: "loud"}.LoggerTo(&buf)
	assert.Error(t, err)
}
