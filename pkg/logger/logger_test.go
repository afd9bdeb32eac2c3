package logger

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger_Levels(t *testing.T) {
	var buf bytes.Buffer
	log, err := NewWithWriter(&buf, "warn")
	require.NoError(t, err)

	log.Info("ReserveRoom: room=%s", "r-1")
	log.Warn("ReserveRoom: conflict type=%s", "buffer")
	log.Error("ReserveRoom: failed: %v", "boom")

	out := buf.String()
	assert.NotContains(t, out, "room=r-1")
	assert.Contains(t, out, "conflict type=buffer")
	assert.Contains(t, out, "failed: boom")
}

func TestNew_InvalidLevel(t *testing.T) {
	_, err := New("", "verbose")
	assert.Error(t, err)
}

func TestNew_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "app.log")

	log, err := New(path, "info")
	require.NoError(t, err)
	log.Info("CheckIn: reservation=%s", "res-1")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "CheckIn: reservation=res-1")
}
