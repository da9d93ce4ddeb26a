package config

import (
	"errors"
	"fmt"
)

// easeNames mirrors the names understood by timeline.ParseEase.
var easeNames = map[string]bool{
	"":            true,
	"linear":      true,
	"sine-in-out": true,
	"quad-out":    true,
	"cubic-out":   true,
}

// ErrInvalid marks configuration values that cannot drive the game.
var ErrInvalid = errors.New("invalid config")

// Validate reports every problem found, joined into one error.
func (c *GameConfig) Validate() error {
	var errs []error
	add := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}

	if c.Display.Width <= 0 || c.Display.Height <= 0 {
		add("display size must be positive, got %dx%d", c.Display.Width, c.Display.Height)
	}
	if c.Display.TPS <= 0 {
		add("display.tps must be positive, got %d", c.Display.TPS)
	}
	if c.Physics.Gravity <= 0 {
		add("physics.gravity must be positive, got %g", c.Physics.Gravity)
	}
	if c.Physics.MaxFallSpeed < 0 {
		add("physics.maxFallSpeed must not be negative, got %g", c.Physics.MaxFallSpeed)
	}
	if c.Narrative.Lifetime <= 0 {
		add("narrative.lifetime must be positive, got %s", c.Narrative.Lifetime)
	}

	c.Level1.validate("level1", add)
	c.Level2.validate("level2", add)

	if c.Celebration.Rain.Quantity < 0 || c.Celebration.Fireworks.Count < 0 {
		add("celebration counts must not be negative")
	}
	if c.Celebration.Rain.SpeedMin > c.Celebration.Rain.SpeedMax {
		add("celebration.rain speed range is inverted")
	}
	if c.Celebration.Fireworks.SpeedMin > c.Celebration.Fireworks.SpeedMax {
		add("celebration.fireworks speed range is inverted")
	}

	return errors.Join(errs...)
}

func (l *LevelConfig) validate(name string, add func(string, ...any)) {
	switch l.Layout {
	case "distance", "journey":
	default:
		add("%s.layout must be distance or journey, got %q", name, l.Layout)
	}
	if l.Threshold <= 0 {
		add("%s.threshold must be positive, got %d", name, l.Threshold)
	}
	if len(l.Messages) < l.Threshold {
		add("%s needs %d messages, got %d", name, l.Threshold, len(l.Messages))
	}
	if l.Player.Width <= 0 || l.Player.Height <= 0 {
		add("%s.player size must be positive", name)
	}
	if l.Player.MoveSpeed < 0 {
		add("%s.player.moveSpeed must not be negative", name)
	}
	if l.Player.JumpPower > 0 {
		add("%s.player.jumpPower must point up (negative), got %g", name, l.Player.JumpPower)
	}
	if l.Camera.LerpX < 0 || l.Camera.LerpX > 1 || l.Camera.LerpY < 0 || l.Camera.LerpY > 1 {
		add("%s.camera lerp must be within [0, 1]", name)
	}
	if !easeNames[l.Transition.ApproachEase] {
		add("%s.transition.approachEase: unknown easing %q", name, l.Transition.ApproachEase)
	}
}
