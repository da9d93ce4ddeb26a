// Package transition runs the scripted sequences that play when a level goal
// is reached: camera fades, tweened moves, spawned icons and delayed calls.
//
// Every delay is measured on the scene timeline, so a sequence pauses with the
// game and is dropped with the scene that started it.
package transition

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/younwookim/journey/internal/application/narrative"
	"github.com/younwookim/journey/internal/application/state"
	"github.com/younwookim/journey/internal/application/timeline"
)

// Fader darkens the screen. system.Camera implements it.
type Fader interface {
	FadeOut(tl *timeline.Timeline, d time.Duration, done func())
}

// Context is what effects may touch while they run.
type Context struct {
	Timeline *timeline.Timeline
	Fader    Fader
	Queue    *narrative.Queue
	Logger   *log.Logger

	target    state.SceneKey
	hasTarget bool
}

// SetTarget records the scene the sequence leads to.
func (c *Context) SetTarget(key state.SceneKey) {
	c.target = key
	c.hasTarget = true
}

// Effect is one scripted action. Start must call done exactly once when the
// effect has finished, possibly synchronously.
type Effect interface {
	Start(ctx *Context, done func())
}

// Step runs Effect Delay after the sequence starts.
type Step struct {
	Delay  time.Duration
	Effect Effect
}

// Script is an ordered list of steps.
type Script []Step

// Duration returns the latest step delay.
func (s Script) Duration() time.Duration {
	var d time.Duration
	for _, st := range s {
		d = max(d, st.Delay)
	}
	return d
}
