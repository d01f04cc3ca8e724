package diag_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"creature-engine/internal/diag"
)

func TestLogRecordsEvents(t *testing.T) {
	log := diag.NewLog("")
	log.Emit(diag.Event{Level: diag.Info, Code: "model_loaded", Message: "loaded dragon.glb"})
	log.Emit(diag.Event{Level: diag.Warn, Code: "anchor_failed", Message: "no plane"})

	events := log.Events()
	require.Len(t, events, 2)
	assert.Equal(t, diag.Info, events[0].Level)
	assert.Equal(t, []string{"model_loaded", "anchor_failed"}, log.Codes())
}

func TestLogAppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "creatures.txt")
	log := diag.NewLog(path)
	log.Emit(diag.Event{Level: diag.Error, Code: "fallback_missing", Message: "no placeholder"})
	log.Emit(diag.Event{Level: diag.Info, Code: "unloaded", Message: "removed"})

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ERROR fallback_missing: no placeholder")
	assert.Contains(t, string(data), "INFO unloaded: removed")
}

func TestLevelString(t *testing.T) {
	assert.Equal(t, "INFO", diag.Info.String())
	assert.Equal(t, "WARN", diag.Warn.String())
	assert.Equal(t, "ERROR", diag.Error.String())
}
