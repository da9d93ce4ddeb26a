// Package render draws the procedural placeholder art: bodies, platforms,
// hearts, stars and text. Nothing here holds game state.
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/colornames"

	"github.com/younwookim/journey/internal/domain/entity"
)

// Palette
var (
	ColorNight    = color.RGBA{26, 26, 46, 255}
	ColorDusk     = color.RGBA{26, 16, 37, 255}
	ColorPlatform = color.RGBA{94, 84, 142, 255}
	ColorGround   = color.RGBA{60, 52, 92, 255}
	ColorPlayer   = color.RGBA{120, 170, 240, 255}
	ColorRose     = color.RGBA{255, 194, 212, 255}
	ColorHeart    = colornames.Hotpink
	ColorPortal   = colornames.Cyan
	ColorStar     = colornames.White
	ColorShadow   = color.RGBA{0, 0, 0, 170}
)

// Fade scales a color by alpha in [0, 1]. Colors are alpha-premultiplied so
// every channel is scaled.
func Fade(c color.Color, alpha float64) color.RGBA {
	a := math.Max(0, math.Min(1, alpha))
	r, g, b, al := c.RGBA()
	return color.RGBA{
		R: uint8(float64(r>>8) * a),
		G: uint8(float64(g>>8) * a),
		B: uint8(float64(b>>8) * a),
		A: uint8(float64(al>>8) * a),
	}
}

// Fill paints the whole target.
func Fill(dst *ebiten.Image, c color.Color) {
	dst.Fill(c)
}

// Overlay covers the target with black at the given opacity.
func Overlay(dst *ebiten.Image, alpha float64) {
	if alpha <= 0 {
		return
	}
	b := dst.Bounds()
	vector.DrawFilledRect(dst, 0, 0, float32(b.Dx()), float32(b.Dy()), Fade(color.Black, alpha), false)
}

// Rect fills r shifted by -off (the camera offset).
func Rect(dst *ebiten.Image, r entity.Rect, off entity.Vector2, c color.Color) {
	lo := r.Min().Sub(off)
	vector.DrawFilledRect(dst, float32(lo.X), float32(lo.Y), float32(r.Width()), float32(r.Height()), c, false)
}

// Platform draws a floating platform with a lighter top edge.
func Platform(dst *ebiten.Image, r entity.Rect, off entity.Vector2, c color.Color) {
	Rect(dst, r, off, c)
	lo := r.Min().Sub(off)
	vector.StrokeLine(dst, float32(lo.X), float32(lo.Y+1), float32(lo.X+r.Width()), float32(lo.Y+1), 2, ColorRose, false)
}

// Character draws a rounded body with two eyes looking in its facing
// direction.
func Character(dst *ebiten.Image, r entity.Rect, off entity.Vector2, facingLeft bool, c color.Color) {
	lo := r.Min().Sub(off)
	w, h := float32(r.Width()), float32(r.Height())
	x, y := float32(lo.X), float32(lo.Y)
	rad := w / 2

	vector.DrawFilledCircle(dst, x+rad, y+rad, rad, c, true)
	vector.DrawFilledRect(dst, x, y+rad, w, h-rad, c, false)

	look := float32(2)
	if facingLeft {
		look = -2
	}
	eyeY := y + rad
	vector.DrawFilledCircle(dst, x+w*0.33+look, eyeY, 2.5, color.White, true)
	vector.DrawFilledCircle(dst, x+w*0.67+look, eyeY, 2.5, color.White, true)
}

// Heart draws a heart of the given half size centered on p.
func Heart(dst *ebiten.Image, p entity.Vector2, size float64, c color.Color) {
	x, y, s := float32(p.X), float32(p.Y), float32(size)
	lobe := s / 2
	vector.DrawFilledCircle(dst, x-lobe, y-lobe/2, lobe, c, true)
	vector.DrawFilledCircle(dst, x+lobe, y-lobe/2, lobe, c, true)

	// Lower point as a stack of shrinking slices.
	const slices = 8
	for i := range slices {
		t := float32(i) / slices
		half := s * (1 - t)
		top := y - lobe/2 + t*s*1.5
		vector.DrawFilledRect(dst, x-half, top, half*2, s*1.5/slices+0.5, c, false)
	}
}

// Star draws a twinkling point.
func Star(dst *ebiten.Image, p entity.Vector2, radius, alpha float64) {
	vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(radius), Fade(ColorStar, alpha), true)
}

// Dot draws a small particle.
func Dot(dst *ebiten.Image, p entity.Vector2, radius float64, c color.Color) {
	vector.DrawFilledCircle(dst, float32(p.X), float32(p.Y), float32(radius), c, true)
}

// Ring outlines a circle.
func Ring(dst *ebiten.Image, p entity.Vector2, radius, width float64, c color.Color) {
	vector.StrokeCircle(dst, float32(p.X), float32(p.Y), float32(radius), float32(width), c, true)
}
