package main

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/journey/internal/application/replay"
	"github.com/younwookim/journey/internal/domain/entity"
)

func TestReplayCommand(t *testing.T) {
	rec := replay.NewRecorder(42, 800, 600)
	for i := 0; i < 60; i++ {
		rec.RecordFrame(i, entity.InputIntent{Right: i > 30}, false)
	}
	path := filepath.Join(t.TempDir(), "run.json")
	require.NoError(t, rec.Save(path))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"replay", path, "--log-level", "error"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	require.NoError(t, rootCmd.Execute())

	assert.Contains(t, out.String(), "frames:    60")
	assert.Contains(t, out.String(), "scene:     Level1")
	assert.Contains(t, out.String(), "phase:     Running")
}

func TestReplayCommand_MissingFile(t *testing.T) {
	rootCmd.SetOut(&bytes.Buffer{})
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"replay", filepath.Join(t.TempDir(), "nope.json"), "--log-level", "error"})
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	assert.Error(t, rootCmd.Execute())
}

func TestNewLogger_RejectsUnknownLevel(t *testing.T) {
	old := flagLogLevel
	flagLogLevel = "loud"
	t.Cleanup(func() { flagLogLevel = old })

	_, err := newLogger()

	assert.ErrorContains(t, err, "invalid --log-level")
}
