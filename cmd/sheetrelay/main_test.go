package main

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rusq/sheetrelay/cmd/sheetrelay/internal/golang/base"
)

func TestLookup(t *testing.T) {
	assert.Same(t, CmdVersion, lookup(base.Sheetrelay, "version"))
	assert.NotNil(t, lookup(base.Sheetrelay, "serve"))
	assert.Nil(t, lookup(base.Sheetrelay, "frobnicate"))
}

func TestLoadSecrets(t *testing.T) {
	const key = "SHEETRELAY_TEST_SECRET"
	t.Setenv(key, "")
	os.Unsetenv(key)
	filename := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(filename, []byte(key+"=xoxb-42\n"), 0o600))

	loadSecrets([]string{filepath.Join(t.TempDir(), "missing.env"), filename})
	assert.Equal(t, "xoxb-42", os.Getenv(key))
}

func Test_initTrace(t *testing.T) {
	t.Run("initialises trace file", func(t *testing.T) {
		testTraceFile := filepath.Join(t.TempDir(), "trace.out")
		stop := initTrace(testTraceFile)
		t.Cleanup(stop)
		assert.FileExists(t, testTraceFile)
	})
	t.Run("empty filename", func(t *testing.T) {
		stop := initTrace("")
		assert.NotNil(t, stop)
		stop()
	})
}

func Test_initLog(t *testing.T) {
	old := slog.Default()
	t.Cleanup(func() {
		slog.SetDefault(old)
		log.SetOutput(os.Stderr)
	})

	filename := filepath.Join(t.TempDir(), "sheetrelay.log")
	lg, err := initLog(filename, true, true)
	require.NoError(t, err)
	assert.True(t, lg.Enabled(t.Context(), slog.LevelDebug))
	lg.Info("hello")
	assert.FileExists(t, filename)

	_, err = initLog(filepath.Join(t.TempDir(), "no", "such", "dir", "x.log"), false, false)
	assert.Error(t, err)
}
