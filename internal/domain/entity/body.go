package entity

import (
	"math"
	"time"
)

// Body is a simulated axis-aligned rectangle.
// Position is the center of the rectangle; Size holds its half extents.
// Velocity is in pixels per second.
type Body struct {
	Position     Vector2
	Velocity     Vector2
	Size         Vector2
	GravityScale float64

	// Grounded is set by the physics step when the body was pushed out of an
	// obstacle upwards during that step. It is cleared at the start of every step.
	Grounded bool
	Movable  bool

	FacingLeft bool
}

// NewBody creates a movable body at pos.
func NewBody(pos, halfSize Vector2, gravityScale float64) *Body {
	return &Body{
		Position:     pos,
		Size:         halfSize,
		GravityScale: gravityScale,
		Movable:      true,
	}
}

// Rect returns the collision rectangle at the current position.
func (b *Body) Rect() Rect {
	return Rect{Center: b.Position, Half: b.Size}
}

// Teleport moves the body to pos and stops it.
func (b *Body) Teleport(pos Vector2) {
	b.Position = pos
	b.Velocity = Vector2{}
	b.Grounded = false
}

// Oscillation is a yoyo sine float animation layered on top of a resting
// position. It only affects rendering.
type Oscillation struct {
	Amplitude float64
	Period    time.Duration
	Phase     time.Duration
}

// Offset returns the vertical displacement at elapsed time. The value
// swings between 0 and -Amplitude, starting at rest.
func (o Oscillation) Offset(elapsed time.Duration) float64 {
	if o.Period <= 0 || o.Amplitude == 0 {
		return 0
	}
	t := float64(elapsed+o.Phase) / float64(o.Period)
	return -o.Amplitude * (1 - math.Cos(2*math.Pi*t)) / 2
}

// StaticObstacle is an immovable rectangle such as a ground strip or a
// floating platform.
type StaticObstacle struct {
	Position Vector2
	Size     Vector2
	Float    Oscillation
}

// NewObstacle creates an obstacle centered at pos.
func NewObstacle(pos, halfSize Vector2) *StaticObstacle {
	return &StaticObstacle{Position: pos, Size: halfSize}
}

// Rect returns the collision rectangle.
func (o *StaticObstacle) Rect() Rect {
	return Rect{Center: o.Position, Half: o.Size}
}
