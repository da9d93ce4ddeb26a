// Package shell hosts the director in a window: it owns the on-screen
// touch buttons, the decision overlay, pausing on focus loss and live config
// reloads.
package shell

import (
	"io"
	"math/rand"
	"sync/atomic"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/journey/internal/application/game"
	"github.com/younwookim/journey/internal/application/scene"
	"github.com/younwookim/journey/internal/infrastructure/config"
	"github.com/younwookim/journey/internal/infrastructure/render"
)

// ErrQuit ends ebiten.RunGame without an error.
var ErrQuit = ebiten.Termination

// Options configures a Shell.
type Options struct {
	Director *game.Director
	Device   Device
	Fonts    *render.Fonts
	Logger   *log.Logger
	Seed     int64

	// SetTPS applies a changed tick rate to the window; ebiten.SetTPS by
	// default.
	SetTPS func(tps int)

	// Reloads and ReloadErrors are usually a config.Watcher's channels.
	Reloads      <-chan *config.GameConfig
	ReloadErrors <-chan error
}

// Shell implements ebiten.Game around a Director.
type Shell struct {
	director *game.Director
	device   Device
	fonts    *render.Fonts
	logger   *log.Logger

	reloads      <-chan *config.GameConfig
	reloadErrors <-chan error

	pad      Pad
	decision *Decision
	last     map[int]bool

	focusPaused bool
	padActive   bool
	setTPS      func(int)
	tps         int
	quit        atomic.Bool
}

// New creates a shell. A nil Device reads ebiten directly.
func New(opts Options) *Shell {
	dev := opts.Device
	if dev == nil {
		dev = &EbitenDevice{}
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	setTPS := opts.SetTPS
	if setTPS == nil {
		setTPS = ebiten.SetTPS
	}
	return &Shell{
		director:     opts.Director,
		device:       dev,
		fonts:        opts.Fonts,
		logger:       logger,
		reloads:      opts.Reloads,
		reloadErrors: opts.ReloadErrors,
		decision:     NewDecision(rand.New(rand.NewSource(opts.Seed))),
		last:         map[int]bool{},
		setTPS:       setTPS,
		tps:          tickRate(opts.Director.Config()),
	}
}

// tickRate mirrors the director's fallback for a missing tps.
func tickRate(cfg *config.GameConfig) int {
	if cfg.Display.TPS <= 0 {
		return 60
	}
	return cfg.Display.TPS
}

// Quit makes the next Update end the run. Safe to call from any goroutine.
func (s *Shell) Quit() {
	s.quit.Store(true)
}

func (s *Shell) viewport() scene.Viewport {
	w, h := s.director.Layout(0, 0)
	return scene.Viewport{W: float64(w), H: float64(h)}
}

// Update implements ebiten.Game.
func (s *Shell) Update() error {
	if s.quit.Load() {
		return ErrQuit
	}
	s.drainReloads()

	if !s.device.Focused() {
		if !s.focusPaused {
			s.focusPaused = true
			s.pad.Reset()
			s.director.ReleaseAll()
			s.director.Pause()
			s.logger.Debug("focus lost")
		}
		return nil
	}
	if s.focusPaused {
		s.focusPaused = false
		s.director.Resume()
		s.logger.Debug("focus regained")
	}

	vp := s.viewport()
	pointers := s.device.Pointers()
	pressed := s.justPressed(pointers)

	if s.director.IsReady() {
		if s.padActive {
			s.padActive = false
			s.pad.Reset()
			s.director.ReleaseAll()
		}
		if s.decision.Update(vp, pointers, pressed, s.device) {
			s.logger.Info("question accepted")
			s.director.Accept()
		}
	} else {
		s.padActive = true
		s.pad.Buttons = LayoutButtons(vp)
		s.pad.Update(pointers, s.director)
	}

	err := s.director.Update()
	s.syncTPS()
	return err
}

// syncTPS follows the tick rate of the config the director runs with. A
// reloaded tps only takes effect once the director applies it at a scene
// entry, together with its step size.
func (s *Shell) syncTPS() {
	tps := tickRate(s.director.Config())
	if tps == s.tps {
		return
	}
	s.tps = tps
	s.setTPS(tps)
	s.logger.Info("tick rate changed", "tps", tps)
}

// justPressed returns the pointers that were not down last frame.
func (s *Shell) justPressed(pointers []Pointer) []Pointer {
	var pressed []Pointer
	now := make(map[int]bool, len(pointers))
	for _, p := range pointers {
		now[p.ID] = true
		if !s.last[p.ID] {
			pressed = append(pressed, p)
		}
	}
	s.last = now
	return pressed
}

// drainReloads forwards every pending config to the director without
// blocking.
func (s *Shell) drainReloads() {
	for {
		select {
		case cfg, ok := <-s.reloads:
			if !ok {
				s.reloads = nil
				continue
			}
			s.director.Reload(cfg)
		case err, ok := <-s.reloadErrors:
			if !ok {
				s.reloadErrors = nil
				continue
			}
			s.logger.Warn("config reload failed", "error", err)
		default:
			return
		}
	}
}

// Draw implements ebiten.Game.
func (s *Shell) Draw(screen *ebiten.Image) {
	s.director.Draw(screen)
	vp := s.viewport()

	if s.director.IsReady() {
		s.decision.Draw(screen, vp, s.fonts)
	} else {
		s.pad.Draw(screen, s.fonts)
	}

	if s.focusPaused {
		render.Overlay(screen, 0.5)
		s.fonts.Label(screen, "Paused", vp.Center(), render.TextStyle{Size: 24, Color: render.ColorRose, Alpha: 1})
	}
}

// Layout implements ebiten.Game.
func (s *Shell) Layout(outsideWidth, outsideHeight int) (int, int) {
	return s.director.Layout(outsideWidth, outsideHeight)
}

// Paused reports whether the shell paused the director for lost focus.
func (s *Shell) Paused() bool {
	return s.focusPaused
}

// Decision exposes the overlay state.
func (s *Shell) Decision() *Decision {
	return s.decision
}

// Pad exposes the touch buttons.
func (s *Shell) Pad() *Pad {
	return &s.pad
}
