// Package scene defines the capability interface every game state implements
// and the environment the director injects into it.
//
// Scenes never read input devices or global clocks themselves: the director
// hands them the merged intent and the elapsed time on every step, and the
// timeline, camera and logger through Env.
package scene

import (
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/journey/internal/application/state"
	"github.com/younwookim/journey/internal/application/system"
	"github.com/younwookim/journey/internal/application/timeline"
	"github.com/younwookim/journey/internal/domain/entity"
	"github.com/younwookim/journey/internal/infrastructure/config"
	"github.com/younwookim/journey/internal/infrastructure/render"
)

// Scene represents one game state (preloading, a level, the celebration).
//
// The director calls OnEnter once after construction, then OnStep and Draw
// every frame until Completed reports true, then OnExit.
type Scene interface {
	// Key identifies the state.
	Key() state.SceneKey

	// OnEnter builds the scene's world and schedules its timers.
	OnEnter()

	// OnStep advances the scene by dt seconds with this frame's merged intent.
	OnStep(dt float64, intent entity.InputIntent)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnExit releases bodies, triggers and anything else the scene owns.
	OnExit()

	// Completed reports whether the director should move on.
	Completed() bool
}

// Targeted is implemented by scenes that choose which scene follows them.
type Targeted interface {
	Target() (state.SceneKey, bool)
}

// Viewport is the logical screen size captured at scene entry.
type Viewport struct {
	W, H float64
}

// Center returns the middle of the viewport.
func (v Viewport) Center() entity.Vector2 {
	return entity.Vector2{X: v.W / 2, Y: v.H / 2}
}

// Env is everything a scene may use, injected by the director.
type Env struct {
	Timeline *timeline.Timeline
	Camera   *system.Camera
	Viewport Viewport
	Config   *config.GameConfig
	Logger   *log.Logger
	Rand     *rand.Rand
	Fonts    *render.Fonts

	// Ready is called by the celebration once it can accept a decision.
	Ready func()
}
