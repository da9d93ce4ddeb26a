// Package level provides the platforming state used by both levels: a player
// body, static obstacles, collectible hearts and a goal that arms once
// enough hearts were collected.
package level

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/journey/internal/application/narrative"
	"github.com/younwookim/journey/internal/application/scene"
	"github.com/younwookim/journey/internal/application/state"
	"github.com/younwookim/journey/internal/application/system"
	"github.com/younwookim/journey/internal/application/timeline"
	"github.com/younwookim/journey/internal/application/transition"
	"github.com/younwookim/journey/internal/domain/entity"
	"github.com/younwookim/journey/internal/infrastructure/config"
)

// Level is one platforming state.
//
// Phases only move forward: Running → GoalArmed → Transitioning → Completed.
type Level struct {
	key    state.SceneKey
	cfg    config.LevelConfig
	env    scene.Env
	logger *log.Logger

	physics    *system.PhysicsSystem
	controller *system.Controller
	queue      *narrative.Queue
	sequencer  *transition.Sequencer

	layout Layout
	player *entity.Body

	state     state.LevelState
	elapsed   time.Duration
	hintAlpha float64
	respawns  int
	entered   bool
}

// New creates the level for key. The layout is built in OnEnter so the
// viewport is captured at entry.
func New(key state.SceneKey, env scene.Env) *Level {
	cfg := env.Config.Level1
	if key == state.SceneLevel2 {
		cfg = env.Config.Level2
	}
	return &Level{
		key:        key,
		cfg:        cfg,
		env:        env,
		logger:     env.Logger.With("scene", key),
		physics:    system.NewPhysicsSystem(env.Config.Physics),
		controller: system.NewController(cfg.Player.MoveSpeed, cfg.Player.JumpPower),
		queue:      narrative.NewQueue(cfg.Messages, env.Config.Narrative.Lifetime, env.Config.Narrative.Rise),
		hintAlpha:  1,
	}
}

// Key implements scene.Scene.
func (l *Level) Key() state.SceneKey {
	return l.key
}

// OnEnter builds the world, attaches the camera and schedules the hint fade.
// Entering twice is a no-op.
func (l *Level) OnEnter() {
	if l.entered {
		return
	}
	l.entered = true

	layout, err := BuildLayout(l.cfg, l.env.Viewport, l.env.Rand)
	if err != nil {
		// Validated configs never get here; fall back to the first variant.
		l.logger.Error("failed to build layout", "err", err)
		l.cfg.Layout = LayoutDistance
		layout, _ = BuildLayout(l.cfg, l.env.Viewport, l.env.Rand)
	}
	l.layout = layout

	p := l.cfg.Player
	l.player = entity.NewBody(layout.Start, entity.Vec(p.Width/2, p.Height/2), p.GravityScale)

	l.sequencer = transition.NewSequencer(&transition.Context{
		Timeline: l.env.Timeline,
		Fader:    l.env.Camera,
		Queue:    l.queue,
		Logger:   l.logger,
	})

	cam := l.env.Camera
	cam.Configure(layout.World, l.cfg.Camera.LerpX, l.cfg.Camera.LerpY,
		entity.Vec(l.cfg.Camera.DeadzoneX*l.env.Viewport.W, l.cfg.Camera.DeadzoneY*l.env.Viewport.H))
	cam.SnapTo(layout.Start)

	l.env.Timeline.After(l.cfg.HintDelay, func() {
		l.env.Timeline.Tween(l.cfg.HintFade, timeline.Linear, func(p float64) {
			l.hintAlpha = 1 - p
		}, nil)
	})

	l.logger.Info("level entered", "layout", layout.Name, "threshold", l.cfg.Threshold, "hearts", len(layout.Hearts))
}

// OnStep runs one simulation step: apply intent, step physics, recover from
// falls, evaluate triggers, follow with the camera.
func (l *Level) OnStep(dt float64, intent entity.InputIntent) {
	if l.player == nil || l.state.Completed {
		return
	}
	step := time.Duration(dt * float64(time.Second))
	l.elapsed += step
	l.queue.Update(step)

	if l.state.Phase < state.PhaseTransitioning {
		l.controller.Apply(l.player, intent)
	} else {
		// Input is still sampled by the director but never applied.
		l.player.Velocity.X = 0
	}

	l.physics.Step(l.player, l.layout.Obstacles, dt)

	if l.state.Phase < state.PhaseTransitioning {
		if l.physics.Recover(l.player, l.layout.FloorOut, l.layout.Start) {
			l.respawns++
			l.logger.Debug("player recovered", "respawns", l.respawns)
		}
		system.Overlaps(l.player, l.triggers(), l.onTrigger)
	}

	l.env.Camera.Follow(l.player.Position, dt)
}

func (l *Level) triggers() []*entity.Trigger {
	return append(l.layout.Hearts[:len(l.layout.Hearts):len(l.layout.Hearts)], l.layout.Goal)
}

func (l *Level) onTrigger(t *entity.Trigger) {
	switch t.Kind {
	case entity.TriggerCollectible:
		l.collect(t)
	case entity.TriggerGoal:
		l.reachGoal(t)
	}
}

// collect consumes a heart, reveals the next message and arms the goal at
// the threshold.
func (l *Level) collect(t *entity.Trigger) {
	if !t.Fire() {
		return
	}
	l.state.CollectedCount++
	vp := l.env.Viewport
	l.queue.Reveal(l.state.CollectedCount-1, entity.Vec(vp.W/2, vp.H*0.35))
	l.logger.Info("heart collected", "collected", l.state.CollectedCount)

	if l.state.CollectedCount >= l.cfg.Threshold && !l.state.GoalArmed {
		l.arm()
	}
}

func (l *Level) arm() {
	if !l.state.Phase.CanAdvanceTo(state.PhaseGoalArmed) {
		return
	}
	l.state.GoalArmed = true
	l.state.Phase = state.PhaseGoalArmed
	l.layout.Goal.Arm()
	l.logger.Info("goal armed")
}

// reachGoal starts the transition script. The goal fires at most once.
func (l *Level) reachGoal(t *entity.Trigger) {
	if !l.state.Phase.CanAdvanceTo(state.PhaseTransitioning) || !t.Fire() {
		return
	}
	l.state.Phase = state.PhaseTransitioning
	l.player.Velocity.X = 0
	l.logger.Info("goal reached", "generation", l.env.Timeline.Generation())

	l.sequencer.Run(l.script(), l.complete)
}

func (l *Level) complete() {
	if !l.state.Phase.CanAdvanceTo(state.PhaseCompleted) {
		return
	}
	l.state.Phase = state.PhaseCompleted
	l.state.Completed = true
	l.logger.Info("level completed")
}

// OnExit releases the world. Pending timeline work is dropped by the
// director advancing the generation.
func (l *Level) OnExit() {
	l.player = nil
	l.layout.Obstacles = nil
	l.layout.Hearts = nil
	l.layout.Goal = nil
	l.queue.Clear()
	l.logger.Debug("level exited", "collected", l.state.CollectedCount)
}

// Completed implements scene.Scene.
func (l *Level) Completed() bool {
	return l.state.Completed
}

// Target implements scene.Targeted.
func (l *Level) Target() (state.SceneKey, bool) {
	if l.sequencer == nil {
		return l.key, false
	}
	return l.sequencer.Target()
}

// State returns a snapshot of the level progress.
func (l *Level) State() state.LevelState {
	return l.state
}

// Player returns the player body, nil before entry and after exit.
func (l *Level) Player() *entity.Body {
	return l.player
}

// Layout returns the world built at entry.
func (l *Level) Layout() Layout {
	return l.layout
}

// Messages returns the live narrative messages.
func (l *Level) Messages() []narrative.Message {
	return l.queue.Messages()
}

// Respawns returns how many times the player was recovered from a fall.
func (l *Level) Respawns() int {
	return l.respawns
}
