package system

import "github.com/younwookim/journey/internal/domain/entity"

// Controller applies an InputIntent to the player body.
type Controller struct {
	MoveSpeed float64
	JumpPower float64 // negative = up
}

// NewController creates a controller with the given speed and jump impulse.
func NewController(moveSpeed, jumpPower float64) *Controller {
	return &Controller{MoveSpeed: moveSpeed, JumpPower: jumpPower}
}

// Apply sets horizontal velocity directly from the intent (no acceleration)
// and starts a jump if the body was grounded by the previous step.
// It reports whether a jump started.
func (c *Controller) Apply(body *entity.Body, intent entity.InputIntent) bool {
	if body == nil || !body.Movable {
		return false
	}

	switch {
	case intent.Left:
		body.Velocity.X = -c.MoveSpeed
		body.FacingLeft = true
	case intent.Right:
		body.Velocity.X = c.MoveSpeed
		body.FacingLeft = false
	default:
		body.Velocity.X = 0
	}

	if intent.Jump && body.Grounded {
		body.Velocity.Y = c.JumpPower
		return true
	}
	return false
}
