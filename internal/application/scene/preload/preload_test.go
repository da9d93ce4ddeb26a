package preload

import (
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"github.com/younwookim/journey/internal/application/scene"
	"github.com/younwookim/journey/internal/application/state"
	"github.com/younwookim/journey/internal/application/system"
	"github.com/younwookim/journey/internal/application/timeline"
	"github.com/younwookim/journey/internal/domain/entity"
	"github.com/younwookim/journey/internal/infrastructure/config"
)

func createTestEnv() scene.Env {
	return scene.Env{
		Timeline: timeline.New(),
		Camera:   system.NewCamera(800, 600),
		Viewport: scene.Viewport{W: 800, H: 600},
		Config:   config.MustDefault(),
		Logger:   log.New(io.Discard),
		Rand:     rand.New(rand.NewSource(1)),
	}
}

func TestPreload_CompletesAfterReadyDelay(t *testing.T) {
	env := createTestEnv()
	p := New(env)
	p.OnEnter()

	assert.Equal(t, state.ScenePreloading, p.Key())
	assert.False(t, p.Completed())

	env.Timeline.Advance(299 * time.Millisecond)
	p.OnStep(0.299, entity.InputIntent{})
	assert.False(t, p.Completed())

	env.Timeline.Advance(time.Millisecond)
	assert.True(t, p.Completed())
}

func TestPreload_ExitCancelsTimer(t *testing.T) {
	env := createTestEnv()
	p := New(env)
	p.OnEnter()

	p.OnExit()
	env.Timeline.Advance(time.Second)

	assert.False(t, p.Completed())
	assert.Equal(t, 0, env.Timeline.Pending())
}
