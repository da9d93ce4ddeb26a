package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/journey/internal/domain/entity"
	"github.com/younwookim/journey/internal/infrastructure/config"
)

func TestController_Horizontal(t *testing.T) {
	c := NewController(240, -480)

	tests := []struct {
		name      string
		intent    entity.InputIntent
		wantVX    float64
		wantFaceL bool
	}{
		{"idle stops immediately", entity.InputIntent{}, 0, false},
		{"right", entity.InputIntent{Right: true}, 240, false},
		{"left", entity.InputIntent{Left: true}, -240, true},
		{"left wins over right", entity.InputIntent{Left: true, Right: true}, -240, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := createTestBody(0, 0)
			b.Velocity.X = 999

			c.Apply(b, tt.intent)

			assert.Equal(t, tt.wantVX, b.Velocity.X)
			assert.Equal(t, tt.wantFaceL, b.FacingLeft)
		})
	}
}

func TestController_JumpRequiresGrounded(t *testing.T) {
	c := NewController(240, -480)

	t.Run("airborne jump ignored", func(t *testing.T) {
		b := createTestBody(0, 0)
		b.Velocity.Y = 50

		assert.False(t, c.Apply(b, entity.InputIntent{Jump: true}))
		assert.Equal(t, 50.0, b.Velocity.Y)
	})

	t.Run("grounded jump applies impulse", func(t *testing.T) {
		b := createTestBody(0, 0)
		b.Grounded = true

		assert.True(t, c.Apply(b, entity.InputIntent{Jump: true}))
		assert.Equal(t, -480.0, b.Velocity.Y)
	})

	t.Run("immovable body", func(t *testing.T) {
		b := createTestBody(0, 0)
		b.Grounded = true
		b.Movable = false

		assert.False(t, c.Apply(b, entity.InputIntent{Jump: true, Right: true}))
		assert.Equal(t, entity.Vector2{}, b.Velocity)
	})
}

func TestController_HeldJumpFiresOncePerLanding(t *testing.T) {
	physicsSystem := NewPhysicsSystem(config.PhysicsConfig{Gravity: 600, MaxFallSpeed: 1200})
	c := NewController(240, -480)
	ground := createTestGround()
	b := createTestBody(100, 280)
	physicsSystem.Step(b, ground, testDT)

	jumps := 0
	left := false
	for i := 0; i < 30; i++ {
		if c.Apply(b, entity.InputIntent{Jump: true}) {
			jumps++
		}
		physicsSystem.Step(b, ground, testDT)
		if !b.Grounded {
			left = true
		}
	}

	assert.Equal(t, 1, jumps, "still airborne after half a second")
	assert.True(t, left)
	assert.Less(t, b.Position.Y, 280.0)
}
