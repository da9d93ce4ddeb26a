package level

import (
	"io"
	"math/rand"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/journey/internal/application/narrative"
	"github.com/younwookim/journey/internal/application/scene"
	"github.com/younwookim/journey/internal/application/state"
	"github.com/younwookim/journey/internal/application/system"
	"github.com/younwookim/journey/internal/application/timeline"
	"github.com/younwookim/journey/internal/domain/entity"
	"github.com/younwookim/journey/internal/infrastructure/config"
)

const (
	testDT    = 1.0 / 60.0
	testFrame = time.Second / 60
)

func createTestEnv() scene.Env {
	return scene.Env{
		Timeline: timeline.New(),
		Camera:   system.NewCamera(800, 600),
		Viewport: scene.Viewport{W: 800, H: 600},
		Config:   config.MustDefault(),
		Logger:   log.New(io.Discard),
		Rand:     rand.New(rand.NewSource(7)),
	}
}

func createTestLevel(t *testing.T, key state.SceneKey) (*Level, scene.Env) {
	t.Helper()
	env := createTestEnv()
	l := New(key, env)
	l.OnEnter()
	require.NotNil(t, l.Player())
	return l, env
}

// step runs one frame in director order: scene first, then the timeline.
func step(l *Level, env scene.Env, intent entity.InputIntent) {
	l.OnStep(testDT, intent)
	env.Timeline.Advance(testFrame)
}

func teleport(l *Level, p entity.Vector2) {
	l.Player().Teleport(p)
}

func TestLevel_OnEnterBuildsWorld(t *testing.T) {
	l, env := createTestLevel(t, state.SceneLevel1)

	layout := l.Layout()
	assert.Equal(t, state.SceneLevel1, l.Key())
	assert.Len(t, layout.Obstacles, 7)
	assert.Len(t, layout.Hearts, 3)
	require.NotNil(t, layout.Goal)
	assert.False(t, layout.Goal.Active, "goal hidden until armed")
	assert.Equal(t, layout.Start, l.Player().Position)
	assert.Equal(t, state.LevelState{}, l.State())
	assert.Equal(t, layout.World, env.Camera.Bounds())
}

func TestLevel_OnEnterTwiceIsNoop(t *testing.T) {
	l, _ := createTestLevel(t, state.SceneLevel1)
	player := l.Player()

	l.OnEnter()

	assert.Same(t, player, l.Player())
}

func TestLevel_CollectRevealsMessageOnce(t *testing.T) {
	l, env := createTestLevel(t, state.SceneLevel1)
	heart := l.Layout().Hearts[1]

	teleport(l, heart.Position)
	step(l, env, entity.InputIntent{})

	assert.Equal(t, 1, l.State().CollectedCount)
	assert.True(t, heart.Consumed)
	msgs := l.Messages()
	require.Len(t, msgs, 1)
	assert.Equal(t, env.Config.Level1.Messages[0], msgs[0].Text, "messages follow collection order")

	// Staying on the consumed heart changes nothing.
	for i := 0; i < 10; i++ {
		teleport(l, heart.Position)
		step(l, env, entity.InputIntent{})
	}
	assert.Equal(t, 1, l.State().CollectedCount)
	assert.Len(t, l.Messages(), 1)
}

func TestLevel_ThresholdArmsGoal(t *testing.T) {
	l, env := createTestLevel(t, state.SceneLevel1)
	hearts := l.Layout().Hearts

	for i, h := range hearts {
		teleport(l, h.Position)
		step(l, env, entity.InputIntent{})

		armed := i == len(hearts)-1
		assert.Equal(t, armed, l.State().GoalArmed, "after heart %d", i)
	}

	assert.Equal(t, state.PhaseGoalArmed, l.State().Phase)
	assert.True(t, l.Layout().Goal.Active)
	assert.Len(t, l.Messages(), 3)
}

func TestLevel_GoalIgnoredUntilArmed(t *testing.T) {
	l, env := createTestLevel(t, state.SceneLevel1)

	teleport(l, l.Layout().Goal.Position)
	step(l, env, entity.InputIntent{})

	assert.Equal(t, state.PhaseRunning, l.State().Phase)
	assert.False(t, l.Layout().Goal.Consumed)
}

func collectAll(l *Level, env scene.Env) {
	for _, h := range l.Layout().Hearts {
		teleport(l, h.Position)
		step(l, env, entity.InputIntent{})
	}
}

func TestLevel_DistanceGoalFadesToLevel2(t *testing.T) {
	l, env := createTestLevel(t, state.SceneLevel1)
	collectAll(l, env)

	teleport(l, l.Layout().Goal.Position)
	step(l, env, entity.InputIntent{Right: true})
	require.Equal(t, state.PhaseTransitioning, l.State().Phase)

	// Input is sampled but no longer applied.
	for i := 0; i < 10; i++ {
		step(l, env, entity.InputIntent{Right: true, Jump: true})
		assert.Equal(t, 0.0, l.Player().Velocity.X)
	}
	assert.False(t, l.Completed())

	for i := 0; i < 50; i++ {
		step(l, env, entity.InputIntent{Right: true})
	}

	assert.True(t, l.Completed())
	assert.Equal(t, state.PhaseCompleted, l.State().Phase)
	assert.Equal(t, 1.0, env.Camera.FadeAlpha())
	target, ok := l.Target()
	assert.True(t, ok)
	assert.Equal(t, state.SceneLevel2, target)
}

func TestLevel_CompletedIsTerminal(t *testing.T) {
	l, env := createTestLevel(t, state.SceneLevel1)
	collectAll(l, env)
	teleport(l, l.Layout().Goal.Position)
	for i := 0; i < 70; i++ {
		step(l, env, entity.InputIntent{})
	}
	require.True(t, l.Completed())

	pos := l.Player().Position
	for i := 0; i < 30; i++ {
		step(l, env, entity.InputIntent{Left: true, Jump: true})
	}

	assert.Equal(t, pos, l.Player().Position, "no physics after completion")
	assert.Equal(t, state.PhaseCompleted, l.State().Phase)
}

func TestLevel_StaleTransitionAfterTeardown(t *testing.T) {
	l, env := createTestLevel(t, state.SceneLevel1)
	collectAll(l, env)
	teleport(l, l.Layout().Goal.Position)
	step(l, env, entity.InputIntent{})
	require.Equal(t, state.PhaseTransitioning, l.State().Phase)

	l.OnExit()
	env.Timeline.NextGeneration()
	env.Timeline.Advance(5 * time.Second)

	assert.False(t, l.Completed())
	assert.Nil(t, l.Player())
	assert.NotPanics(t, func() { l.OnStep(testDT, entity.InputIntent{Right: true}) })
}

func TestLevel_FallRecovery(t *testing.T) {
	l, env := createTestLevel(t, state.SceneLevel1)
	collectAll(l, env)
	before := l.State()

	teleport(l, entity.Vec(500, l.Layout().FloorOut+1))
	l.Player().Velocity = entity.Vec(0, 900)
	step(l, env, entity.InputIntent{})

	assert.Equal(t, l.Layout().Start, l.Player().Position)
	assert.Equal(t, entity.Vector2{}, l.Player().Velocity)
	assert.Equal(t, 1, l.Respawns())
	assert.Equal(t, before, l.State(), "recovery never touches progress")
}

func TestLevel_PlayerLandsOnFirstPlatform(t *testing.T) {
	l, env := createTestLevel(t, state.SceneLevel1)

	for i := 0; i < 60; i++ {
		step(l, env, entity.InputIntent{})
	}

	first := l.Layout().Obstacles[0].Rect()
	assert.True(t, l.Player().Grounded)
	assert.InDelta(t, first.Min().Y, l.Player().Rect().Max().Y, 1e-6)
}

func TestLevel_JourneyWalkthrough(t *testing.T) {
	l, env := createTestLevel(t, state.SceneLevel2)
	goal := l.Layout().Goal
	right := entity.InputIntent{Right: true}

	var sawIcon bool
	for i := 0; i < 900 && !l.Completed(); i++ {
		step(l, env, right)
		for _, m := range l.Messages() {
			if m.Kind == narrative.KindIcon {
				sawIcon = true
			}
		}
		off := env.Camera.Offset()
		require.GreaterOrEqual(t, off.X, 0.0)
		require.LessOrEqual(t, off.X+800, l.Layout().World.Max().X)
	}

	require.True(t, l.Completed())
	assert.Equal(t, 3, l.State().CollectedCount)
	assert.True(t, sawIcon, "heart icon spawned between the two")
	assert.False(t, l.Player().Movable)
	assert.InDelta(t, goal.Position.X-40, l.Player().Position.X, 1e-9)
	assert.InDelta(t, goal.Position.Y, l.Player().Position.Y, 1e-9)

	target, ok := l.Target()
	assert.True(t, ok)
	assert.Equal(t, state.SceneCelebration, target)
}

func TestLevel_JourneyScriptTiming(t *testing.T) {
	l, env := createTestLevel(t, state.SceneLevel2)
	collectAll(l, env)
	require.True(t, l.State().GoalArmed)

	teleport(l, l.Layout().Goal.Position.Sub(entity.Vec(20, 0)))
	start := env.Timeline.Now()
	step(l, env, entity.InputIntent{})
	require.Equal(t, state.PhaseTransitioning, l.State().Phase)

	env.Timeline.Advance(start + 2499*time.Millisecond - env.Timeline.Now())
	l.OnStep(testDT, entity.InputIntent{})
	assert.False(t, l.Completed(), "fade ends 2.5s after the goal")

	env.Timeline.Advance(time.Millisecond)
	assert.True(t, l.Completed())
}

func TestLevel_HintFades(t *testing.T) {
	l, env := createTestLevel(t, state.SceneLevel1)

	env.Timeline.Advance(3 * time.Second)
	assert.Equal(t, 1.0, l.hintAlpha)

	env.Timeline.Advance(500 * time.Millisecond)
	assert.InDelta(t, 0.5, l.hintAlpha, 1e-9)

	env.Timeline.Advance(time.Second)
	assert.Equal(t, 0.0, l.hintAlpha)
}

func TestLevel_OnExitReleasesWorld(t *testing.T) {
	l, env := createTestLevel(t, state.SceneLevel1)
	teleport(l, l.Layout().Hearts[0].Position)
	step(l, env, entity.InputIntent{})

	l.OnExit()

	assert.Nil(t, l.Player())
	assert.Empty(t, l.Layout().Hearts)
	assert.Nil(t, l.Layout().Goal)
	assert.Empty(t, l.Messages())
}
