package system

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/younwookim/journey/internal/domain/entity"
	"github.com/younwookim/journey/internal/infrastructure/config"
)

// TestVelocityStabilityWhenIdle tests that a player standing still on the
// ground stays still frame after frame.
func TestVelocityStabilityWhenIdle(t *testing.T) {
	physicsSystem := NewPhysicsSystem(config.PhysicsConfig{Gravity: 600, MaxFallSpeed: 1200})
	controller := NewController(240, -480)
	ground := createTestGround()

	player := entity.NewBody(entity.Vec(100, 280), entity.Vec(12, 20), 1.8)

	// Settle for one frame.
	physicsSystem.Step(player, ground, testDT)

	t.Run("VX should remain 0 when idle", func(t *testing.T) {
		vxValues := make([]float64, 0, 60)
		for i := 0; i < 60; i++ {
			controller.Apply(player, entity.InputIntent{})
			physicsSystem.Step(player, ground, testDT)
			vxValues = append(vxValues, player.Velocity.X)
		}

		for i, vx := range vxValues {
			assert.Equal(t, 0.0, vx, "VX should be 0 at frame %d", i)
		}
	})

	t.Run("VY should settle at 0 when grounded", func(t *testing.T) {
		for i := 0; i < 60; i++ {
			controller.Apply(player, entity.InputIntent{})
			physicsSystem.Step(player, ground, testDT)
			assert.Equal(t, 0.0, player.Velocity.Y, "VY at frame %d", i)
			assert.True(t, player.Grounded, "grounded at frame %d", i)
		}
	})

	t.Run("position should not drift", func(t *testing.T) {
		start := player.Position
		for i := 0; i < 120; i++ {
			controller.Apply(player, entity.InputIntent{})
			physicsSystem.Step(player, ground, testDT)
		}
		assert.InDelta(t, start.X, player.Position.X, 1e-6)
		assert.InDelta(t, start.Y, player.Position.Y, 1e-6)
	})
}

// TestVelocityStabilityWhenWalking checks that walking speed is constant on
// flat ground with no acceleration ramp.
func TestVelocityStabilityWhenWalking(t *testing.T) {
	physicsSystem := NewPhysicsSystem(config.PhysicsConfig{Gravity: 600, MaxFallSpeed: 1200})
	controller := NewController(240, -480)
	ground := createTestGround()
	player := entity.NewBody(entity.Vec(40, 280), entity.Vec(12, 20), 1.8)
	physicsSystem.Step(player, ground, testDT)

	for i := 0; i < 30; i++ {
		controller.Apply(player, entity.InputIntent{Right: true})
		physicsSystem.Step(player, ground, testDT)
		assert.Equal(t, 240.0, player.Velocity.X, "frame %d", i)
		assert.True(t, player.Grounded, "frame %d", i)
	}
	assert.InDelta(t, 40+30*240*testDT, player.Position.X, 1e-6)
}
