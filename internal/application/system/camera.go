package system

import (
	"math"
	"time"

	"github.com/younwookim/journey/internal/application/timeline"
	"github.com/younwookim/journey/internal/domain/entity"
)

// referenceFPS is the frame rate the lerp factors are tuned for.
const referenceFPS = 60.0

// Camera follows a target inside world bounds and owns the screen fade.
//
// The center moves only when the target leaves the dead-zone, a rectangle
// centered on the current camera center. Movement is exponentially smoothed
// per axis and the center is clamped so the view never leaves the world.
type Camera struct {
	center   entity.Vector2
	viewW    float64
	viewH    float64
	bounds   entity.Rect
	lerpX    float64
	lerpY    float64
	deadzone entity.Vector2 // full width/height

	fade     float64 // 0 = clear, 1 = black
	fadeTw   timeline.Handle
	fadeLine *timeline.Timeline
}

// NewCamera creates a camera for a viewW x viewH viewport.
// Until configured, the world is the viewport itself.
func NewCamera(viewW, viewH float64) *Camera {
	c := &Camera{lerpX: 1, lerpY: 1}
	c.Resize(viewW, viewH)
	c.bounds = entity.RectFromMinMax(0, 0, viewW, viewH)
	c.center = c.bounds.Center
	return c
}

// Resize changes the viewport size.
func (c *Camera) Resize(viewW, viewH float64) {
	c.viewW, c.viewH = viewW, viewH
}

// Configure sets world bounds, smoothing factors and the dead-zone size.
func (c *Camera) Configure(bounds entity.Rect, lerpX, lerpY float64, deadzone entity.Vector2) {
	c.bounds = bounds
	c.lerpX = clamp01(lerpX)
	c.lerpY = clamp01(lerpY)
	c.deadzone = deadzone
	c.center = c.clamp(c.center)
}

// Reset restores the viewport-sized world and clears the fade.
func (c *Camera) Reset() {
	c.bounds = entity.RectFromMinMax(0, 0, c.viewW, c.viewH)
	c.lerpX, c.lerpY = 1, 1
	c.deadzone = entity.Vector2{}
	c.center = c.bounds.Center
	c.fade = 0
	c.fadeTw = timeline.Handle{}
	c.fadeLine = nil
}

// Center returns the current camera center in world coordinates.
func (c *Camera) Center() entity.Vector2 {
	return c.center
}

// Bounds returns the world bounds.
func (c *Camera) Bounds() entity.Rect {
	return c.bounds
}

// Offset returns the world position of the top-left corner of the view.
func (c *Camera) Offset() entity.Vector2 {
	return entity.Vector2{X: c.center.X - c.viewW/2, Y: c.center.Y - c.viewH/2}
}

// SnapTo centers the camera on p without smoothing.
func (c *Camera) SnapTo(p entity.Vector2) {
	c.center = c.clamp(p)
}

// Follow moves the camera toward target for a step of dt seconds.
func (c *Camera) Follow(target entity.Vector2, dt float64) {
	desired := c.center
	desired.X = deadzoneAxis(c.center.X, target.X, c.deadzone.X/2)
	desired.Y = deadzoneAxis(c.center.Y, target.Y, c.deadzone.Y/2)

	c.center.X += (desired.X - c.center.X) * smoothing(c.lerpX, dt)
	c.center.Y += (desired.Y - c.center.Y) * smoothing(c.lerpY, dt)
	c.center = c.clamp(c.center)
}

// deadzoneAxis returns where the center must be on one axis so that target
// sits on the dead-zone edge, or center itself when target is inside.
func deadzoneAxis(center, target, half float64) float64 {
	switch {
	case target > center+half:
		return target - half
	case target < center-half:
		return target + half
	default:
		return center
	}
}

// smoothing converts a per-frame lerp factor into the factor for dt seconds.
func smoothing(lerp, dt float64) float64 {
	if lerp >= 1 || dt <= 0 {
		return lerp
	}
	return 1 - math.Pow(1-lerp, dt*referenceFPS)
}

func (c *Camera) clamp(p entity.Vector2) entity.Vector2 {
	lo, hi := c.bounds.Min(), c.bounds.Max()
	p.X = clampAxis(p.X, lo.X, hi.X, c.viewW)
	p.Y = clampAxis(p.Y, lo.Y, hi.Y, c.viewH)
	return p
}

// clampAxis keeps a view of size view inside [lo, hi]; a world smaller than
// the view is centered.
func clampAxis(v, lo, hi, view float64) float64 {
	if hi-lo <= view {
		return (lo + hi) / 2
	}
	return math.Max(lo+view/2, math.Min(hi-view/2, v))
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

// FadeAlpha returns the fade overlay opacity in [0, 1].
func (c *Camera) FadeAlpha() float64 {
	return c.fade
}

// SetFade sets the fade overlay opacity directly and stops a running fade.
func (c *Camera) SetFade(alpha float64) {
	c.stopFade()
	c.fade = clamp01(alpha)
}

// FadeOut tweens the overlay to black over d, then calls done.
func (c *Camera) FadeOut(tl *timeline.Timeline, d time.Duration, done func()) {
	c.fadeTo(tl, 1, d, done)
}

// FadeIn tweens the overlay to clear over d, then calls done.
func (c *Camera) FadeIn(tl *timeline.Timeline, d time.Duration, done func()) {
	c.fadeTo(tl, 0, d, done)
}

// Fading reports whether a fade tween is running.
func (c *Camera) Fading() bool {
	return c.fadeTw.Valid()
}

func (c *Camera) fadeTo(tl *timeline.Timeline, target float64, d time.Duration, done func()) {
	c.stopFade()
	from := c.fade
	c.fadeLine = tl
	c.fadeTw = tl.Tween(d, timeline.Linear, func(p float64) {
		c.fade = from + (target-from)*p
	}, func() {
		c.fadeTw = timeline.Handle{}
		c.fadeLine = nil
		if done != nil {
			done()
		}
	})
}

func (c *Camera) stopFade() {
	if c.fadeLine != nil {
		c.fadeLine.Cancel(c.fadeTw)
	}
	c.fadeTw = timeline.Handle{}
	c.fadeLine = nil
}
