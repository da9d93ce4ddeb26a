package render

import (
	"bytes"
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/younwookim/journey/internal/domain/entity"
)

// Fonts creates text faces from the embedded Go Regular font.
type Fonts struct {
	source *text.GoTextFaceSource
	faces  map[float64]*text.GoTextFace
}

// LoadFonts parses the embedded font.
func LoadFonts() (*Fonts, error) {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(goregular.TTF))
	if err != nil {
		return nil, fmt.Errorf("failed to load font: %w", err)
	}
	return &Fonts{source: src, faces: make(map[float64]*text.GoTextFace)}, nil
}

// Face returns a cached face of the given pixel size.
func (f *Fonts) Face(size float64) *text.GoTextFace {
	if face, ok := f.faces[size]; ok {
		return face
	}
	face := &text.GoTextFace{Source: f.source, Size: size}
	f.faces[size] = face
	return face
}

// TextStyle controls how Label draws.
type TextStyle struct {
	Size  float64
	Color color.Color
	Alpha float64
	Scale float64

	// Box draws a translucent backdrop with the given padding.
	Box     bool
	PadX    float64
	PadY    float64
	BoxFill color.Color
}

// Label draws s centered on p. A nil Fonts draws nothing.
func (f *Fonts) Label(dst *ebiten.Image, s string, p entity.Vector2, style TextStyle) {
	if f == nil || s == "" || style.Alpha <= 0 {
		return
	}
	face := f.Face(style.Size)
	scale := style.Scale
	if scale == 0 {
		scale = 1
	}

	if style.Box {
		w, h := text.Measure(s, face, style.Size*1.3)
		bw, bh := (w+style.PadX*2)*scale, (h+style.PadY*2)*scale
		fill := style.BoxFill
		if fill == nil {
			fill = ColorShadow
		}
		vector.DrawFilledRect(dst, float32(p.X-bw/2), float32(p.Y-bh/2), float32(bw), float32(bh), Fade(fill, style.Alpha), false)
	}

	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(p.X, p.Y)
	op.PrimaryAlign = text.AlignCenter
	op.SecondaryAlign = text.AlignCenter
	op.LineSpacing = style.Size * 1.3
	op.ColorScale.ScaleWithColor(style.Color)
	op.ColorScale.ScaleAlpha(float32(style.Alpha))
	text.Draw(dst, s, face, op)
}
