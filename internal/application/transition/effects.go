package transition

import (
	"time"

	"github.com/younwookim/journey/internal/application/narrative"
	"github.com/younwookim/journey/internal/application/state"
	"github.com/younwookim/journey/internal/application/timeline"
	"github.com/younwookim/journey/internal/domain/entity"
)

// Fade darkens the screen over Duration and selects Target as the next scene.
type Fade struct {
	Duration time.Duration
	Target   state.SceneKey
}

func (f Fade) Start(ctx *Context, done func()) {
	ctx.SetTarget(f.Target)
	if ctx.Fader == nil {
		ctx.Timeline.After(f.Duration, done)
		return
	}
	ctx.Fader.FadeOut(ctx.Timeline, f.Duration, done)
}

// MoveBody takes a body out of the simulation and tweens it to To.
type MoveBody struct {
	Body     *entity.Body
	To       entity.Vector2
	Duration time.Duration
	Ease     timeline.Ease
}

func (m MoveBody) Start(ctx *Context, done func()) {
	if m.Body == nil {
		done()
		return
	}
	b := m.Body
	b.Movable = false
	b.Velocity = entity.Vector2{}
	from := b.Position
	ctx.Timeline.Tween(m.Duration, m.Ease, func(p float64) {
		b.Position = from.Lerp(m.To, p)
	}, done)
}

// SpawnIcon pushes an icon into the narrative queue. When Anchor is set the
// position is computed at spawn time.
type SpawnIcon struct {
	Text     string
	At       entity.Vector2
	Anchor   func() entity.Vector2
	Lifetime time.Duration
}

func (s SpawnIcon) Start(ctx *Context, done func()) {
	at := s.At
	if s.Anchor != nil {
		at = s.Anchor()
	}
	if ctx.Queue != nil {
		ctx.Queue.Push(narrative.Message{
			Kind:     narrative.KindIcon,
			Text:     s.Text,
			Origin:   at,
			Lifetime: s.Lifetime,
		})
	}
	done()
}

// Call runs Fn.
type Call struct {
	Fn func()
}

func (c Call) Start(_ *Context, done func()) {
	if c.Fn != nil {
		c.Fn()
	}
	done()
}
