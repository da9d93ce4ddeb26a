// Package preload provides the loading state shown before the first level.
package preload

import (
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/journey/internal/application/scene"
	"github.com/younwookim/journey/internal/application/state"
	"github.com/younwookim/journey/internal/application/timeline"
	"github.com/younwookim/journey/internal/domain/entity"
	"github.com/younwookim/journey/internal/infrastructure/render"
)

// faceSizes are the text sizes the later scenes use; building them here
// keeps the first level from stalling on glyph setup.
var faceSizes = []float64{16, 20, 22, 24, 28}

// Preload completes from a one-shot readiness timer.
type Preload struct {
	env scene.Env

	ready   bool
	timer   timeline.Handle
	elapsed time.Duration
}

// New creates the preloading scene.
func New(env scene.Env) *Preload {
	return &Preload{env: env}
}

// Key implements scene.Scene.
func (p *Preload) Key() state.SceneKey {
	return state.ScenePreloading
}

// OnEnter implements scene.Scene.
func (p *Preload) OnEnter() {
	if p.env.Fonts != nil {
		for _, size := range faceSizes {
			p.env.Fonts.Face(size)
		}
	}
	delay := p.env.Config.Preload.ReadyDelay
	p.timer = p.env.Timeline.After(delay, func() {
		p.ready = true
		p.env.Logger.Debug("preload ready", "after", delay)
	})
}

// OnStep implements scene.Scene.
func (p *Preload) OnStep(dt float64, _ entity.InputIntent) {
	p.elapsed += time.Duration(dt * float64(time.Second))
}

// Draw implements scene.Scene.
func (p *Preload) Draw(screen *ebiten.Image) {
	render.Fill(screen, render.ColorNight)
	pulse := 0.6 + 0.4*math.Sin(p.elapsed.Seconds()*math.Pi*2)
	p.env.Fonts.Label(screen, "Loading...", p.env.Viewport.Center(), render.TextStyle{
		Size:  20,
		Color: render.ColorRose,
		Alpha: pulse,
	})
}

// OnExit implements scene.Scene.
func (p *Preload) OnExit() {
	p.env.Timeline.Cancel(p.timer)
}

// Completed implements scene.Scene.
func (p *Preload) Completed() bool {
	return p.ready
}
