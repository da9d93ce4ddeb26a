package shell

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/journey/internal/application/scene"
	"github.com/younwookim/journey/internal/domain/entity"
	"github.com/younwookim/journey/internal/infrastructure/render"
)

const (
	buttonMargin = 24.0
	buttonGap    = 12.0
	moveRadius   = 36.0
	jumpRadius   = 44.0
)

// Button is a round on-screen control asserting one action while a pointer
// is inside it.
type Button struct {
	Action entity.Action
	Label  string
	Center entity.Vector2
	Radius float64
	Fill   color.Color
}

// Contains reports whether p is inside the button.
func (b Button) Contains(p entity.Vector2) bool {
	return p.Sub(b.Center).Len() <= b.Radius
}

// LayoutButtons places left and right at the bottom left corner and jump at
// the bottom right corner of vp.
func LayoutButtons(vp scene.Viewport) []Button {
	y := vp.H - buttonMargin - moveRadius
	left := buttonMargin + moveRadius
	return []Button{
		{Action: entity.ActionLeft, Label: "<", Center: entity.Vec(left, y), Radius: moveRadius, Fill: color.RGBA{64, 64, 64, 64}},
		{Action: entity.ActionRight, Label: ">", Center: entity.Vec(left+2*moveRadius+buttonGap, y), Radius: moveRadius, Fill: color.RGBA{64, 64, 64, 64}},
		{
			Action: entity.ActionJump,
			Label:  "JUMP",
			Center: entity.Vec(vp.W-buttonMargin-jumpRadius, vp.H-buttonMargin-jumpRadius),
			Radius: jumpRadius,
			Fill:   color.RGBA{96, 40, 60, 102},
		},
	}
}

// Pad tracks which buttons are held and reports edges to a controller.
// A button is released as soon as no pointer is inside it, whether the
// pointer lifted, slid off or was cancelled.
type Pad struct {
	Buttons []Button
	held    [len(entity.Actions)]bool
}

// Controller receives the pad's edges.
type Controller interface {
	Control(action entity.Action, pressed bool)
	Release(action entity.Action)
}

// Update applies the current pointers.
func (p *Pad) Update(pointers []Pointer, c Controller) {
	var now [len(entity.Actions)]bool
	for _, b := range p.Buttons {
		for _, ptr := range pointers {
			if b.Contains(ptr.Pos) {
				now[b.Action] = true
				break
			}
		}
	}
	for _, a := range entity.Actions {
		switch {
		case now[a] && !p.held[a]:
			c.Control(a, true)
		case !now[a] && p.held[a]:
			c.Release(a)
		}
	}
	p.held = now
}

// Reset forgets held buttons without reporting anything.
func (p *Pad) Reset() {
	p.held = [len(entity.Actions)]bool{}
}

// Held reports whether the button for a is held.
func (p *Pad) Held(a entity.Action) bool {
	return a.Valid() && p.held[a]
}

// Draw renders the buttons, brighter while held.
func (p *Pad) Draw(dst *ebiten.Image, fonts *render.Fonts) {
	for _, b := range p.Buttons {
		fill := b.Fill
		if p.held[b.Action] {
			fill = render.Fade(color.White, 0.5)
		}
		render.Dot(dst, b.Center, b.Radius, fill)
		render.Ring(dst, b.Center, b.Radius, 2, render.Fade(color.White, 0.5))
		fonts.Label(dst, b.Label, b.Center, render.TextStyle{Size: 20, Color: color.White, Alpha: 1})
	}
}
