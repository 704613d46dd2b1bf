package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetup_DisabledByDefault(t *testing.T) {
	logger, f, err := Setup(false, t.TempDir(), "debug")
	require.NoError(t, err)
	assert.Nil(t, f)
	assert.Equal(t, zerolog.Disabled, logger.GetLevel())
}

func TestSetup_EnabledWritesFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")

	logger, f, err := Setup(true, dir, "debug")
	require.NoError(t, err)
	require.NotNil(t, f)
	defer f.Close()

	logger.Info().Str("piece", "1").Msg("locked")

	data, err := os.ReadFile(LogFilePath(dir))
	require.NoError(t, err)
	assert.Contains(t, string(data), `"message":"locked"`)
	assert.Contains(t, string(data), `"piece":"1"`)
}

func TestSetup_Rotation(t *testing.T) {
	dir := t.TempDir()
	path := LogFilePath(dir)
	require.NoError(t, os.WriteFile(path, make([]byte, MaxLogSize+1), 0644))

	_, f, err := Setup(true, dir, "info")
	require.NoError(t, err)
	defer f.Close()

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)

	rotated := false
	for _, e := range entries {
		if e.Name() != LogFileName && filepath.Ext(e.Name()) == ".log" {
			rotated = true
		}
	}
	assert.True(t, rotated, "expected a rotated log file")

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Less(t, info.Size(), int64(MaxLogSize))
}

func TestNewLevels(t *testing.T) {
	var buf bytes.Buffer

	logger := New(&buf, "warn")
	logger.Info().Msg("hidden")
	logger.Warn().Msg("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")

	assert.Equal(t, zerolog.InfoLevel, New(&buf, "bogus").GetLevel())
	assert.Equal(t, zerolog.InfoLevel, New(&buf, "").GetLevel())
}
