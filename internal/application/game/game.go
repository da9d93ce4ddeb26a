// Package game provides the scene director: it owns the scene lifecycle, the
// shared timeline and camera, and relays the two external signals (ready and
// accepted).
package game

import (
	"io"
	"math/rand"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/journey/internal/application/scene"
	"github.com/younwookim/journey/internal/application/state"
	"github.com/younwookim/journey/internal/application/system"
	"github.com/younwookim/journey/internal/application/timeline"
	"github.com/younwookim/journey/internal/domain/entity"
	"github.com/younwookim/journey/internal/infrastructure/config"
	"github.com/younwookim/journey/internal/infrastructure/render"
)

// Factory builds the scene for key.
type Factory func(key state.SceneKey, env scene.Env) scene.Scene

// FrameFunc observes every simulated frame: the merged intent and whether an
// accept signal arrived since the previous frame.
type FrameFunc func(frame int, intent entity.InputIntent, accept bool)

// Options configures a Director. Zero values fall back to defaults.
type Options struct {
	Config  *config.GameConfig
	Logger  *log.Logger
	Keys    system.KeySource
	Seed    int64
	Factory Factory
	Fonts   *render.Fonts
	OnFrame FrameFunc
}

// acceptor is implemented by scenes that react to the accepted signal.
type acceptor interface {
	Accept() bool
}

// Director implements ebiten.Game and moves through
// Preloading → Level1 → Level2 → Celebration.
type Director struct {
	cfg     *config.GameConfig
	pending *config.GameConfig
	logger  *log.Logger
	factory Factory
	fonts   *render.Fonts
	onFrame FrameFunc

	unifier  *system.Unifier
	timeline *timeline.Timeline
	camera   *system.Camera
	rng      *rand.Rand

	current  scene.Scene
	viewport scene.Viewport
	dt       float64
	frame    int
	paused   bool

	acceptPending   atomic.Bool
	acceptRequested atomic.Bool
	ready           chan struct{}
	readyOnce       sync.Once
	isReady         bool
}

// New creates a director and enters the preloading scene immediately.
func New(opts Options) *Director {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.MustDefault()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	factory := opts.Factory
	if factory == nil {
		factory = DefaultFactory
	}

	d := &Director{
		cfg:      cfg,
		logger:   logger,
		factory:  factory,
		fonts:    opts.Fonts,
		onFrame:  opts.OnFrame,
		unifier:  system.NewUnifier(opts.Keys),
		timeline: timeline.New(),
		rng:      rand.New(rand.NewSource(opts.Seed)),
		ready:    make(chan struct{}),
	}
	d.applyDisplay()
	d.camera = system.NewCamera(d.viewport.W, d.viewport.H)
	d.enter(state.ScenePreloading)
	return d
}

func (d *Director) applyDisplay() {
	d.viewport = scene.Viewport{W: float64(d.cfg.Display.Width), H: float64(d.cfg.Display.Height)}
	tps := d.cfg.Display.TPS
	if tps <= 0 {
		tps = 60
	}
	d.dt = 1.0 / float64(tps)
}

// Update samples input and advances the simulation by one frame.
// Implements ebiten.Game interface.
func (d *Director) Update() error {
	if d.paused {
		return nil
	}
	d.Step(d.unifier.Sample())
	return nil
}

// Step runs one frame with the given intent: the scene first, then the
// timeline, then signal delivery and scene change.
func (d *Director) Step(intent entity.InputIntent) {
	if d.paused {
		return
	}
	accept := d.acceptRequested.Swap(false)
	if d.onFrame != nil {
		d.onFrame(d.frame, intent, accept)
	}
	d.frame++

	d.current.OnStep(d.dt, intent)
	d.timeline.Advance(time.Duration(d.dt * float64(time.Second)))
	d.deliverAccept()

	if d.current.Completed() {
		d.advance()
	}
}

// Draw renders the current scene and the fade overlay.
// Implements ebiten.Game interface.
func (d *Director) Draw(screen *ebiten.Image) {
	d.current.Draw(screen)
	render.Overlay(screen, d.camera.FadeAlpha())
}

// Layout returns the logical screen size of the current scene.
// Implements ebiten.Game interface.
func (d *Director) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(d.viewport.W), int(d.viewport.H)
}

// advance tears the current scene down and enters the next one. Everything
// the old scene scheduled is dropped with the timeline generation.
func (d *Director) advance() {
	from := d.current.Key()
	next, ok := from.Next()
	if t, isTargeted := d.current.(scene.Targeted); isTargeted {
		if key, set := t.Target(); set {
			next, ok = key, true
		}
	}
	if !ok || next == from {
		return
	}

	d.current.OnExit()
	gen := d.timeline.NextGeneration()
	d.logger.Info("scene transition", "from", from, "to", next, "generation", gen)

	if d.pending != nil {
		d.cfg = d.pending
		d.pending = nil
		d.applyDisplay()
		d.camera.Resize(d.viewport.W, d.viewport.H)
		d.logger.Info("config applied", "scene", next)
	}
	d.enter(next)
}

func (d *Director) enter(key state.SceneKey) {
	d.camera.Reset()
	d.camera.SetFade(1)

	env := scene.Env{
		Timeline: d.timeline,
		Camera:   d.camera,
		Viewport: d.viewport,
		Config:   d.cfg,
		Logger:   d.logger,
		Rand:     d.rng,
		Fonts:    d.fonts,
		Ready:    d.signalReady,
	}
	d.current = d.factory(key, env)
	d.current.OnEnter()
	d.camera.FadeIn(d.timeline, d.fadeIn(key), nil)
	d.logger.Debug("scene entered", "scene", key)
}

func (d *Director) fadeIn(key state.SceneKey) time.Duration {
	switch key {
	case state.ScenePreloading:
		return d.cfg.Preload.FadeIn
	case state.SceneLevel1:
		return d.cfg.Level1.FadeIn
	case state.SceneLevel2:
		return d.cfg.Level2.FadeIn
	default:
		return d.cfg.Celebration.FadeIn
	}
}

func (d *Director) signalReady() {
	d.readyOnce.Do(func() {
		d.isReady = true
		close(d.ready)
		d.logger.Info("ready signal sent")
	})
}

// deliverAccept hands a buffered accept to the celebration once it is ready.
func (d *Director) deliverAccept() {
	if !d.isReady || !d.acceptPending.Load() {
		return
	}
	a, ok := d.current.(acceptor)
	if !ok {
		return
	}
	d.acceptPending.Store(false)
	if a.Accept() {
		d.logger.Info("accept delivered")
	}
}

// Control forwards an external control event to the input unifier. Safe to
// call from any goroutine.
func (d *Director) Control(action entity.Action, pressed bool) {
	d.unifier.SetExternal(action, pressed)
}

// Release drops an external control. Pointer leave and cancel end here.
func (d *Director) Release(action entity.Action) {
	d.unifier.Release(action)
}

// ReleaseAll drops every external control.
func (d *Director) ReleaseAll() {
	d.unifier.ReleaseAll()
}

// Accept records the accepted signal. It is delivered right after the ready
// signal if it arrives early. Safe to call from any goroutine.
func (d *Director) Accept() {
	d.acceptPending.Store(true)
	d.acceptRequested.Store(true)
}

// Ready returns a channel closed once the celebration is ready for a
// decision.
func (d *Director) Ready() <-chan struct{} {
	return d.ready
}

// IsReady reports whether the ready signal fired.
func (d *Director) IsReady() bool {
	return d.isReady
}

// Pause freezes the simulation and every pending timer and tween.
func (d *Director) Pause() {
	if d.paused {
		return
	}
	d.paused = true
	d.timeline.SetPaused(true)
	d.logger.Debug("paused", "frame", d.frame)
}

// Resume undoes Pause.
func (d *Director) Resume() {
	if !d.paused {
		return
	}
	d.paused = false
	d.timeline.SetPaused(false)
	d.logger.Debug("resumed", "frame", d.frame)
}

// Paused reports whether the director is paused.
func (d *Director) Paused() bool {
	return d.paused
}

// Reload queues cfg to be used from the next scene entry on.
func (d *Director) Reload(cfg *config.GameConfig) {
	if cfg == nil {
		return
	}
	d.pending = cfg
	d.logger.Info("config reload queued", "scene", d.current.Key())
}

// Current returns the active scene.
func (d *Director) Current() scene.Scene {
	return d.current
}

// Key returns the active scene key.
func (d *Director) Key() state.SceneKey {
	return d.current.Key()
}

// Frame returns the number of simulated frames.
func (d *Director) Frame() int {
	return d.frame
}

// Timeline exposes the shared clock.
func (d *Director) Timeline() *timeline.Timeline {
	return d.timeline
}

// Camera exposes the shared camera.
func (d *Director) Camera() *system.Camera {
	return d.camera
}

// Config returns the configuration in use by the current scene.
func (d *Director) Config() *config.GameConfig {
	return d.cfg
}
