package system

import (
	"github.com/younwookim/journey/internal/domain/entity"
	"github.com/younwookim/journey/internal/infrastructure/config"
)

// PhysicsSystem integrates bodies and resolves them against static obstacles.
type PhysicsSystem struct {
	config config.PhysicsConfig
}

// NewPhysicsSystem creates a new physics system
func NewPhysicsSystem(cfg config.PhysicsConfig) *PhysicsSystem {
	return &PhysicsSystem{config: cfg}
}

// Step advances one movable body by dt seconds.
//
// Grounded is cleared first and only set again by a downward resolution in
// this step, so it never carries over from the previous frame.
func (s *PhysicsSystem) Step(body *entity.Body, obstacles []*entity.StaticObstacle, dt float64) {
	if body == nil || !body.Movable {
		return
	}
	body.Grounded = false

	s.applyGravity(body, dt)
	body.Position = body.Position.Add(body.Velocity.Scale(dt))

	for _, o := range obstacles {
		if o == nil {
			continue
		}
		s.resolve(body, o)
	}
}

// applyGravity applies gravity acceleration to the body
func (s *PhysicsSystem) applyGravity(body *entity.Body, dt float64) {
	body.Velocity.Y += body.GravityScale * s.config.Gravity * dt

	// Clamp to max fall speed
	if s.config.MaxFallSpeed > 0 && body.Velocity.Y > s.config.MaxFallSpeed {
		body.Velocity.Y = s.config.MaxFallSpeed
	}
}

// resolve pushes body out of o along the axis of least overlap and zeroes the
// velocity on that axis. Ties go to the vertical axis so bodies settle on
// ledges instead of sliding off them.
func (s *PhysicsSystem) resolve(body *entity.Body, o *entity.StaticObstacle) {
	br, or := body.Rect(), o.Rect()
	dx, dy := br.Overlap(or)
	if dx <= 0 || dy <= 0 {
		return
	}

	if dx < dy {
		if body.Position.X < o.Position.X {
			body.Position.X -= dx
		} else {
			body.Position.X += dx
		}
		body.Velocity.X = 0
		return
	}

	if body.Position.Y < o.Position.Y {
		// Landed on top
		body.Position.Y -= dy
		body.Grounded = true
	} else {
		// Hit from below
		body.Position.Y += dy
	}
	body.Velocity.Y = 0
}

// Recover respawns a body that fell below floorOut at start with zero
// velocity. It reports whether a respawn happened.
func (s *PhysicsSystem) Recover(body *entity.Body, floorOut float64, start entity.Vector2) bool {
	if body == nil || body.Position.Y <= floorOut {
		return false
	}
	body.Teleport(start)
	return true
}

// Overlaps calls fn for every live trigger whose rectangle intersects body.
// It does not consume triggers; the callback decides.
func Overlaps(body *entity.Body, triggers []*entity.Trigger, fn func(*entity.Trigger)) {
	if body == nil {
		return
	}
	r := body.Rect()
	for _, t := range triggers {
		if t == nil || !t.Live() {
			continue
		}
		if r.Intersects(t.Rect()) {
			fn(t)
		}
	}
}
