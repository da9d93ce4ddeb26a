package shell

import (
	"image/color"
	"math/rand"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/colornames"

	"github.com/younwookim/journey/internal/application/scene"
	"github.com/younwookim/journey/internal/domain/entity"
	"github.com/younwookim/journey/internal/infrastructure/render"
)

const (
	Question = "Will you stay till I die?"
	Answer   = "Forever with you"

	decisionFadeFrames = 20
	dodgeX             = 100.0
	dodgeY             = 60.0
)

var acceptKeys = []ebiten.Key{ebiten.KeyY, ebiten.KeyEnter}

// Decision is the question shown once the celebration is ready. YES (or Y,
// or Enter) accepts; NO slips away from any pointer that reaches it.
type Decision struct {
	rng      *rand.Rand
	frames   int
	accepted bool
	dodge    entity.Vector2
}

// NewDecision creates a hidden decision overlay.
func NewDecision(rng *rand.Rand) *Decision {
	return &Decision{rng: rng}
}

// YesRect returns the YES button area.
func (d *Decision) YesRect(vp scene.Viewport) entity.Rect {
	c := vp.Center()
	return entity.Rect{Center: entity.Vec(c.X-80, c.Y+30), Half: entity.Vec(60, 22)}
}

// NoRect returns the NO button area, including its current dodge offset.
func (d *Decision) NoRect(vp scene.Viewport) entity.Rect {
	c := vp.Center()
	return entity.Rect{Center: entity.Vec(c.X+80, c.Y+30).Add(d.dodge), Half: entity.Vec(60, 22)}
}

// Update handles one frame of input while the overlay is shown. It returns
// true exactly once, on the frame the question is accepted.
func (d *Decision) Update(vp scene.Viewport, pointers, pressed []Pointer, dev Device) bool {
	d.frames++
	if d.accepted {
		return false
	}

	no := d.NoRect(vp)
	for _, p := range pointers {
		if no.Contains(p.Pos) {
			d.dodge = entity.Vec((d.rng.Float64()*2-1)*dodgeX, (d.rng.Float64()*2-1)*dodgeY)
			break
		}
	}

	yes := false
	for _, k := range acceptKeys {
		if dev.KeyJustPressed(k) {
			yes = true
		}
	}
	yesRect := d.YesRect(vp)
	for _, p := range pressed {
		if yesRect.Contains(p.Pos) {
			yes = true
		}
	}
	if !yes {
		return false
	}
	d.accepted = true
	return true
}

// Accepted reports whether the question was answered.
func (d *Decision) Accepted() bool {
	return d.accepted
}

// Alpha is the overlay fade-in progress.
func (d *Decision) Alpha() float64 {
	if d.frames >= decisionFadeFrames {
		return 1
	}
	return float64(d.frames) / decisionFadeFrames
}

// Draw renders the backdrop and either the question or the answer.
func (d *Decision) Draw(dst *ebiten.Image, vp scene.Viewport, fonts *render.Fonts) {
	a := d.Alpha()
	render.Overlay(dst, 0.85*a)
	c := vp.Center()

	if d.accepted {
		render.Heart(dst, entity.Vec(c.X, c.Y-90), 32, render.Fade(render.ColorHeart, a))
		fonts.Label(dst, Answer, entity.Vec(c.X, c.Y-20), render.TextStyle{Size: 28, Color: render.ColorRose, Alpha: a})
		return
	}

	fonts.Label(dst, Question, entity.Vec(c.X, c.Y-50), render.TextStyle{Size: 28, Color: render.ColorRose, Alpha: a})
	d.drawButton(dst, fonts, d.YesRect(vp), "YES", colornames.Limegreen, a)
	d.drawButton(dst, fonts, d.NoRect(vp), "NO", colornames.Tomato, a)
}

func (d *Decision) drawButton(dst *ebiten.Image, fonts *render.Fonts, r entity.Rect, label string, c color.Color, alpha float64) {
	render.Rect(dst, r, entity.Vector2{}, render.Fade(c, 0.2*alpha))
	fonts.Label(dst, label, r.Center, render.TextStyle{Size: 20, Color: c, Alpha: alpha})
}
