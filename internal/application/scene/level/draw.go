package level

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/journey/internal/application/narrative"
	"github.com/younwookim/journey/internal/domain/entity"
	"github.com/younwookim/journey/internal/infrastructure/render"
)

// Draw implements scene.Scene.
func (l *Level) Draw(screen *ebiten.Image) {
	bg := render.ColorNight
	if l.layout.Companion {
		bg = render.ColorDusk
	}
	render.Fill(screen, bg)
	if l.player == nil {
		return
	}

	off := l.env.Camera.Offset()
	fonts := l.env.Fonts

	for _, s := range l.layout.Stars {
		render.Star(screen, s.Pos.Sub(off), s.Radius, s.Alpha(l.elapsed, 0.2, 0.8))
	}

	for _, o := range l.layout.Obstacles {
		r := o.Rect()
		r.Center.Y += o.Float.Offset(l.elapsed)
		if l.layout.Companion {
			render.Rect(screen, r, off, render.ColorGround)
		} else {
			render.Platform(screen, r, off, render.ColorPlatform)
		}
	}

	for _, h := range l.layout.Hearts {
		if h.Consumed {
			continue
		}
		p := h.Position.Sub(off)
		p.Y += h.Float.Offset(l.elapsed)
		render.Heart(screen, p, h.Size.X*0.8, l.glow(render.ColorHeart))
	}

	l.drawGoal(screen, off)

	body := l.player.Rect()
	render.Character(screen, body, off, l.player.FacingLeft, render.ColorPlayer)
	fonts.Label(screen, l.cfg.Player.Name, l.player.Position.Sub(off).Add(entity.Vec(0, -50)), render.TextStyle{
		Size: 16, Color: render.ColorRose, Alpha: 1,
	})

	vp := l.env.Viewport
	if l.layout.Title {
		fonts.Label(screen, l.cfg.Name, entity.Vec(vp.W/2, 50), render.TextStyle{
			Size: 28, Color: render.ColorRose, Alpha: 0.9,
		})
	}
	fonts.Label(screen, l.cfg.Hint, entity.Vec(vp.W/2, l.layout.HintY), render.TextStyle{
		Size: min(24, vp.W*0.04), Color: render.ColorRose, Alpha: l.hintAlpha,
	})

	for _, m := range l.queue.Messages() {
		l.drawMessage(screen, m, off)
	}
}

func (l *Level) drawGoal(screen *ebiten.Image, off entity.Vector2) {
	g := l.layout.Goal
	if g == nil {
		return
	}
	p := g.Position.Sub(off)
	p.Y += g.Float.Offset(l.elapsed)

	if l.layout.Companion {
		r := g.Rect()
		r.Center = p.Add(off)
		render.Character(screen, r, off, true, render.ColorRose)
	} else if g.Active {
		render.Heart(screen, p, g.Size.X*0.8, l.glow(render.ColorPortal))
	}

	if l.state.GoalArmed && !g.Consumed {
		bob := entity.Oscillation{Amplitude: 10, Period: 1600 * time.Millisecond}.Offset(l.elapsed)
		l.env.Fonts.Label(screen, l.layout.GoalLabel, p.Add(entity.Vec(-20, -70+bob)), render.TextStyle{
			Size: 20, Color: render.ColorPortal, Alpha: 1,
		})
	}
}

// glow pulses a color between 70% and 100% opacity.
func (l *Level) glow(c color.Color) color.RGBA {
	s := Star{Period: 1600 * time.Millisecond}
	return render.Fade(c, s.Alpha(l.elapsed, 0.7, 1))
}

func (l *Level) drawMessage(screen *ebiten.Image, m narrative.Message, off entity.Vector2) {
	p := m.Position()
	if !m.ScreenSpace {
		p = p.Sub(off)
	}
	switch m.Kind {
	case narrative.KindIcon:
		render.Heart(screen, p, 14*m.Scale(), render.Fade(render.ColorHeart, m.Alpha()))
	default:
		l.env.Fonts.Label(screen, m.Text, p, render.TextStyle{
			Size:  min(22, l.env.Viewport.W*0.035),
			Color: render.ColorRose,
			Alpha: m.Alpha(),
			Box:   true,
			PadX:  20,
			PadY:  12,
		})
	}
}
