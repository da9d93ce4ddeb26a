package shell

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/journey/internal/domain/entity"
)

// mouseID is the pointer id reported for the left mouse button. Touch ids
// are never negative.
const mouseID = -1

// Pointer is one active touch or the held left mouse button, in screen
// coordinates.
type Pointer struct {
	ID  int
	Pos entity.Vector2
}

// Device reports the platform state the shell reacts to.
type Device interface {
	Focused() bool
	Pointers() []Pointer
	KeyJustPressed(key ebiten.Key) bool
}

// EbitenDevice reads focus, touches, mouse and keys through ebiten.
type EbitenDevice struct {
	touches []ebiten.TouchID
}

// Focused implements Device.
func (d *EbitenDevice) Focused() bool {
	return ebiten.IsFocused()
}

// Pointers implements Device.
func (d *EbitenDevice) Pointers() []Pointer {
	d.touches = ebiten.AppendTouchIDs(d.touches[:0])
	ps := make([]Pointer, 0, len(d.touches)+1)
	for _, id := range d.touches {
		x, y := ebiten.TouchPosition(id)
		ps = append(ps, Pointer{ID: int(id), Pos: entity.Vec(float64(x), float64(y))})
	}
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		ps = append(ps, Pointer{ID: mouseID, Pos: entity.Vec(float64(x), float64(y))})
	}
	return ps
}

// KeyJustPressed implements Device.
func (d *EbitenDevice) KeyJustPressed(key ebiten.Key) bool {
	return inpututil.IsKeyJustPressed(key)
}
