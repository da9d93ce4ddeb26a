package celebration

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/journey/internal/application/timeline"
	"github.com/younwookim/journey/internal/domain/entity"
	"github.com/younwookim/journey/internal/infrastructure/render"
)

type particleKind int

const (
	particleHeart particleKind = iota
	particleSpark
)

// particle is a heart drop or a firework spark. Position is a function of age
// so particles need no integration.
type particle struct {
	kind   particleKind
	origin entity.Vector2
	vel    entity.Vector2 // px/s for hearts, total displacement per second of life for sparks
	age    time.Duration
	life   time.Duration
	size   float64
	color  color.RGBA
}

func (p *particle) progress() float64 {
	if p.life <= 0 {
		return 1
	}
	return math.Min(1, float64(p.age)/float64(p.life))
}

// position returns where the particle is now. Hearts fall in a straight line,
// sparks ease out to origin + vel.
func (p *particle) position() entity.Vector2 {
	if p.kind == particleSpark {
		return p.origin.Add(p.vel.Scale(timeline.CubicOut(p.progress())))
	}
	return p.origin.Add(p.vel.Scale(p.age.Seconds()))
}

// scale shrinks the particle to zero over its life.
func (p *particle) scale() float64 {
	if p.kind == particleSpark {
		return 1 - timeline.CubicOut(p.progress())
	}
	return 1 - p.progress()
}

func (p *particle) alpha() float64 {
	return p.scale()
}

func (p *particle) draw(screen *ebiten.Image) {
	c := render.Fade(p.color, p.alpha())
	switch p.kind {
	case particleHeart:
		render.Heart(screen, p.position(), 16*p.size*p.scale()+1, c)
	default:
		render.Dot(screen, p.position(), p.size*p.scale(), c)
	}
}
