package level

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/younwookim/journey/internal/application/scene"
	"github.com/younwookim/journey/internal/domain/entity"
	"github.com/younwookim/journey/internal/infrastructure/config"
)

// Layout names accepted in LevelConfig.Layout.
const (
	LayoutDistance = "distance"
	LayoutJourney  = "journey"
)

// Art sizes of the placeholder textures the layouts are measured in.
const (
	platformTexW = 64.0
	platformTexH = 16.0
	heartTex     = 32.0
	companionTex = 48.0
)

// Layout is the static world of one level, computed once at entry from the
// viewport.
type Layout struct {
	Name      string
	World     entity.Rect
	Start     entity.Vector2
	FloorOut  float64
	Obstacles []*entity.StaticObstacle
	Hearts    []*entity.Trigger
	Goal      *entity.Trigger

	// Companion draws the goal as a second character, always visible.
	// Otherwise the goal is a portal that appears once armed.
	Companion bool
	GoalLabel string
	Title     bool
	HintY     float64
	Stars     []Star
}

// Star is a background twinkle.
type Star struct {
	Pos    entity.Vector2
	Radius float64
	Period time.Duration
	Phase  time.Duration
}

// Alpha returns the twinkle opacity at elapsed, between lo and hi.
func (s Star) Alpha(elapsed time.Duration, lo, hi float64) float64 {
	if s.Period <= 0 {
		return hi
	}
	t := float64(elapsed+s.Phase) / float64(s.Period)
	return lo + (hi-lo)*(1+math.Cos(2*math.Pi*t))/2
}

// BuildLayout lays out the named variant for a viewport.
func BuildLayout(cfg config.LevelConfig, vp scene.Viewport, rng *rand.Rand) (Layout, error) {
	switch cfg.Layout {
	case LayoutDistance:
		return distanceLayout(cfg, vp, rng), nil
	case LayoutJourney:
		return journeyLayout(cfg, vp, rng), nil
	default:
		return Layout{}, fmt.Errorf("unknown layout %q", cfg.Layout)
	}
}

// distanceLayout is a path of floating platforms with hearts above the gaps
// and a hidden portal past the last platform.
func distanceLayout(cfg config.LevelConfig, vp scene.Viewport, rng *rand.Rand) Layout {
	const worldW = 1600.0
	platformY := vp.H * 0.55

	platforms := []entity.Vector2{
		{X: 80, Y: platformY},
		{X: 280, Y: platformY - 20},
		{X: 480, Y: platformY + 10},
		{X: 680, Y: platformY - 30},
		{X: 880, Y: platformY},
		{X: 1080, Y: platformY - 15},
		{X: 1280, Y: platformY + 5},
	}
	half := entity.Vec(platformTexW*2.5/2, platformTexH*1.2/2)

	l := Layout{
		Name:      LayoutDistance,
		World:     entity.RectFromMinMax(0, 0, worldW, vp.H),
		Start:     entity.Vec(100, platformY-60),
		FloorOut:  vp.H + cfg.FloorOut,
		GoalLabel: "Enter! →",
		HintY:     vp.H * 0.15,
	}
	for _, p := range platforms {
		o := entity.NewObstacle(p, half)
		o.Float = entity.Oscillation{
			Amplitude: 5,
			Period:    2 * (2000*time.Millisecond + time.Duration(rng.Int63n(int64(time.Second)))),
		}
		l.Obstacles = append(l.Obstacles, o)
	}

	heartHalf := entity.Vec(heartTex*1.2/2, heartTex*1.2/2)
	for _, p := range []entity.Vector2{
		{X: 300, Y: platformY - 80},
		{X: 700, Y: platformY - 90},
		{X: 1100, Y: platformY - 75},
	} {
		h := entity.NewCollectible(p, heartHalf)
		h.Float = entity.Oscillation{Amplitude: 15, Period: 2400 * time.Millisecond}
		l.Hearts = append(l.Hearts, h)
	}

	l.Goal = entity.NewGoal(entity.Vec(1400, platformY-50), entity.Vec(heartTex*2.5/2, heartTex*2.5/2))
	l.Goal.Payload = "portal"
	l.Stars = scatterStars(rng, 50, worldW, vp.H*0.4, 1, 3)
	return l
}

// journeyLayout is one long walkable strip with the companion at the far end.
func journeyLayout(cfg config.LevelConfig, vp scene.Viewport, rng *rand.Rand) Layout {
	worldW := vp.W * 2
	groundY := vp.H - 30
	groundHalfH := platformTexH * 2 / 2

	// The original ground was a row of tiles from x=-100 to 2.5 widths; one
	// strip covers the same span without seams.
	minX, maxX := -100-platformTexW, vp.W*2.5+platformTexW
	ground := entity.NewObstacle(
		entity.Vec((minX+maxX)/2, groundY),
		entity.Vec((maxX-minX)/2, groundHalfH),
	)

	companionX := math.Min(1600, worldW-companionTex)
	companionY := vp.H - 90

	l := Layout{
		Name:      LayoutJourney,
		World:     entity.RectFromMinMax(0, 0, worldW, vp.H),
		Start:     entity.Vec(50, vp.H-120),
		FloorOut:  vp.H + cfg.FloorOut,
		Obstacles: []*entity.StaticObstacle{ground},
		Companion: true,
		GoalLabel: "→",
		Title:     true,
		HintY:     100,
	}

	// Hearts sit low enough over the ground to be collected by walking.
	heartHalf := entity.Vec(heartTex*1.2/2, heartTex*1.2/2)
	heartY := groundY - groundHalfH - 50
	path := companionX - l.Start.X
	for _, f := range []float64{0.25, 0.5, 0.75} {
		h := entity.NewCollectible(entity.Vec(l.Start.X+path*f, heartY), heartHalf)
		h.Float = entity.Oscillation{Amplitude: 8, Period: 2400 * time.Millisecond}
		l.Hearts = append(l.Hearts, h)
	}

	l.Goal = entity.NewGoal(entity.Vec(companionX, companionY), entity.Vec(companionTex*1.3/2, companionTex*1.3/2))
	l.Goal.Payload = "companion"
	l.Goal.Float = entity.Oscillation{Amplitude: 8, Period: 2400 * time.Millisecond}
	l.Stars = scatterStars(rng, 50, worldW, vp.H*0.5, 1, 2)
	return l
}

func scatterStars(rng *rand.Rand, n int, w, h float64, minR, maxR int) []Star {
	stars := make([]Star, n)
	for i := range stars {
		period := 2 * (1500*time.Millisecond + time.Duration(rng.Int63n(int64(1500*time.Millisecond))))
		stars[i] = Star{
			Pos:    entity.Vec(rng.Float64()*w, rng.Float64()*h),
			Radius: float64(minR + rng.Intn(maxR-minR+1)),
			Period: period,
			Phase:  time.Duration(rng.Int63n(int64(period))),
		}
	}
	return stars
}
