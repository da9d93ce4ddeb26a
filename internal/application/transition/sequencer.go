package transition

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/younwookim/journey/internal/application/state"
)

// Sequencer runs one Script. A sequencer can only be run once; build a new one
// for the next scene.
type Sequencer struct {
	ctx *Context

	started    bool
	done       bool
	pending    int
	onComplete func()
}

// NewSequencer creates a sequencer whose effects act through ctx.
func NewSequencer(ctx *Context) *Sequencer {
	if ctx.Logger == nil {
		ctx.Logger = log.New(io.Discard)
	}
	return &Sequencer{ctx: ctx}
}

// Run schedules every step of script on the timeline and calls onComplete
// once all effects reported done. It returns false and does nothing if the
// sequencer was already started.
func (s *Sequencer) Run(script Script, onComplete func()) bool {
	if s.started {
		s.ctx.Logger.Debug("transition already running, ignoring run")
		return false
	}
	s.started = true
	s.onComplete = onComplete

	var steps []Step
	for _, st := range script {
		if st.Effect != nil {
			steps = append(steps, st)
		}
	}
	s.pending = len(steps)
	s.ctx.Logger.Debug("transition started", "steps", s.pending, "duration", script.Duration())

	if s.pending == 0 {
		s.finish()
		return true
	}

	for i, st := range steps {
		s.ctx.Timeline.After(st.Delay, func() {
			s.ctx.Logger.Debug("transition step", "index", i, "at", s.ctx.Timeline.Now())
			st.Effect.Start(s.ctx, s.stepDone())
		})
	}
	return true
}

// stepDone returns a completion callback that only counts its first call.
func (s *Sequencer) stepDone() func() {
	called := false
	return func() {
		if called || s.done {
			return
		}
		called = true
		s.pending--
		if s.pending == 0 {
			s.finish()
		}
	}
}

func (s *Sequencer) finish() {
	s.done = true
	s.ctx.Logger.Debug("transition finished")
	if s.onComplete != nil {
		s.onComplete()
	}
}

// Running reports whether the script was started and has not finished.
func (s *Sequencer) Running() bool {
	return s.started && !s.done
}

// Done reports whether every effect finished.
func (s *Sequencer) Done() bool {
	return s.done
}

// Target returns the scene a Fade effect selected.
func (s *Sequencer) Target() (state.SceneKey, bool) {
	return s.ctx.target, s.ctx.hasTarget
}
