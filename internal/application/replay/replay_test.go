package replay

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/journey/internal/application/state"
	"github.com/younwookim/journey/internal/domain/entity"
)

func TestFrameInput_CompactJSON(t *testing.T) {
	data, err := json.Marshal(FrameInput{F: 10, R: true})
	require.NoError(t, err)

	assert.JSONEq(t, `{"f":10,"r":true}`, string(data))
}

func TestReplayer_Next(t *testing.T) {
	data := ReplayData{
		Version: FormatVersion,
		Seed:    42,
		Frames: []FrameInput{
			{F: 0, L: true},
			{F: 1, R: true, J: true},
			{F: 2, A: true},
		},
	}

	replayer := NewReplayer(data)
	assert.Equal(t, 3, replayer.TotalFrames())
	assert.Equal(t, int64(42), replayer.Seed())

	intent, accept, ok := replayer.Next()
	require.True(t, ok)
	assert.Equal(t, entity.InputIntent{Left: true}, intent)
	assert.False(t, accept)

	intent, _, ok = replayer.Next()
	require.True(t, ok)
	assert.Equal(t, entity.InputIntent{Right: true, Jump: true}, intent)

	_, accept, ok = replayer.Next()
	require.True(t, ok)
	assert.True(t, accept)
	assert.Equal(t, 3, replayer.CurrentFrame())

	_, _, ok = replayer.Next()
	assert.False(t, ok, "exhausted")

	replayer.Reset()
	assert.Equal(t, 0, replayer.CurrentFrame())
}

func TestRecorder_SaveAndLoad(t *testing.T) {
	rec := NewRecorder(7, 800, 600)
	rec.RecordFrame(0, entity.InputIntent{Right: true}, false)
	rec.RecordFrame(1, entity.InputIntent{}, true)
	rec.Stop()
	rec.RecordFrame(2, entity.InputIntent{Left: true}, false)

	assert.False(t, rec.IsRecording())
	assert.Equal(t, 2, rec.FrameCount())

	path := filepath.Join(t.TempDir(), GenerateFilename())
	require.NoError(t, rec.Save(path))

	loaded, err := LoadReplay(path)
	require.NoError(t, err)
	assert.Equal(t, int64(7), loaded.Seed)
	assert.Equal(t, 800, loaded.Width)
	assert.Equal(t, rec.Data().Frames, loaded.Frames)
}

func TestRecorder_SaveEmpty(t *testing.T) {
	rec := NewRecorder(1, 800, 600)

	err := rec.Save(filepath.Join(t.TempDir(), "empty.json"))

	assert.ErrorIs(t, err, ErrEmpty)
}

func TestLoadReplay_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := LoadReplay(filepath.Join(dir, "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0o644))
	_, err = LoadReplay(bad)
	assert.ErrorContains(t, err, "failed to decode replay")

	old := filepath.Join(dir, "old.json")
	require.NoError(t, os.WriteFile(old, []byte(`{"version":"1.0","frames":[]}`), 0o644))
	_, err = LoadReplay(old)
	assert.ErrorContains(t, err, "unsupported replay version")
}

func TestRun_IdleStaysInFirstLevel(t *testing.T) {
	res := Run(CreateTestReplayData(120, entity.InputIntent{}), nil, nil)

	assert.Equal(t, 120, res.Frames)
	assert.Equal(t, state.SceneLevel1, res.Scene, "preload completes after 300ms")
	assert.Equal(t, state.LevelState{}, res.Level)
	assert.False(t, res.Ready)
}

func TestRun_Deterministic(t *testing.T) {
	data := CreateTestReplayData(240, entity.InputIntent{})
	for i := 30; i < 240; i++ {
		data.Frames[i].R = i%50 < 30
		data.Frames[i].J = i%40 == 0
	}

	a := Run(data, nil, nil)
	b := Run(data, nil, nil)

	assert.Equal(t, a, b)
	assert.NotEqual(t, entity.Vector2{}, a.Player)
}
