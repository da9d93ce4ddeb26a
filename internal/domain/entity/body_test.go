package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewBody(t *testing.T) {
	b := NewBody(Vec(100, 50), Vec(12, 20), 1.5)

	assert.Equal(t, Vec(100, 50), b.Position)
	assert.Equal(t, Vec(12, 20), b.Size)
	assert.Equal(t, 1.5, b.GravityScale)
	assert.True(t, b.Movable)
	assert.False(t, b.Grounded)
}

func TestBody_Rect(t *testing.T) {
	b := NewBody(Vec(100, 50), Vec(12, 20), 1)
	r := b.Rect()

	assert.Equal(t, Vec(88, 30), r.Min())
	assert.Equal(t, Vec(112, 70), r.Max())
}

func TestBody_Teleport(t *testing.T) {
	b := NewBody(Vec(0, 0), Vec(5, 5), 1)
	b.Velocity = Vec(240, -480)
	b.Grounded = true

	b.Teleport(Vec(100, 200))

	assert.Equal(t, Vec(100, 200), b.Position)
	assert.Equal(t, Vector2{}, b.Velocity)
	assert.False(t, b.Grounded)
}

func TestOscillation_Offset(t *testing.T) {
	o := Oscillation{Amplitude: 10, Period: 2 * time.Second}

	assert.InDelta(t, 0.0, o.Offset(0), 1e-9, "starts at rest")
	assert.InDelta(t, -10.0, o.Offset(time.Second), 1e-9, "peak at half period")
	assert.InDelta(t, 0.0, o.Offset(2*time.Second), 1e-9, "back at rest after a period")

	t.Run("zero period is static", func(t *testing.T) {
		assert.Equal(t, 0.0, Oscillation{Amplitude: 5}.Offset(time.Second))
	})
}

func TestStaticObstacle_RectIgnoresFloat(t *testing.T) {
	o := NewObstacle(Vec(50, 50), Vec(40, 8))
	o.Float = Oscillation{Amplitude: 5, Period: time.Second}

	assert.Equal(t, Vec(50, 50), o.Rect().Center)
}
