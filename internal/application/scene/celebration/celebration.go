// Package celebration provides the final state: a starfield that signals
// readiness for a decision and plays heart rain and fireworks once the
// decision is accepted.
package celebration

import (
	"image/color"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/journey/internal/application/scene"
	"github.com/younwookim/journey/internal/application/state"
	"github.com/younwookim/journey/internal/application/timeline"
	"github.com/younwookim/journey/internal/domain/entity"
	"github.com/younwookim/journey/internal/infrastructure/config"
	"github.com/younwookim/journey/internal/infrastructure/render"
)

var sparkColors = []color.RGBA{
	{255, 107, 157, 255},
	{255, 143, 171, 255},
	{255, 194, 212, 255},
	{255, 255, 255, 255},
}

type star struct {
	pos    entity.Vector2
	radius float64
	period time.Duration
	phase  time.Duration
}

// Celebration is the terminal scene. It never completes.
type Celebration struct {
	env    scene.Env
	cfg    config.CelebrationConfig
	logger *log.Logger

	stars     []star
	particles []*particle
	elapsed   time.Duration

	ready    bool
	accepted bool
	timers   []timeline.Handle
	bursts   int
}

// New creates the celebration scene.
func New(env scene.Env) *Celebration {
	return &Celebration{
		env:    env,
		cfg:    env.Config.Celebration,
		logger: env.Logger.With("scene", state.SceneCelebration),
	}
}

// Key implements scene.Scene.
func (c *Celebration) Key() state.SceneKey {
	return state.SceneCelebration
}

// OnEnter scatters the stars and schedules the ready signal after the intro
// fade.
func (c *Celebration) OnEnter() {
	vp := c.env.Viewport
	rng := c.env.Rand
	c.stars = make([]star, c.cfg.Stars)
	for i := range c.stars {
		period := 2 * (time.Second + time.Duration(rng.Int63n(int64(2*time.Second))))
		c.stars[i] = star{
			pos:    entity.Vec(rng.Float64()*vp.W, rng.Float64()*vp.H),
			radius: float64(1 + rng.Intn(2)),
			period: period,
			phase:  time.Duration(rng.Int63n(int64(period))),
		}
	}

	c.env.Timeline.After(c.cfg.FadeIn+c.cfg.ReadyDelay, func() {
		c.ready = true
		c.logger.Info("ready for decision")
		if c.env.Ready != nil {
			c.env.Ready()
		}
	})
}

// Accept starts the heart rain and the fireworks. Only the first call has an
// effect; it returns whether this call started them.
func (c *Celebration) Accept() bool {
	if c.accepted {
		return false
	}
	c.accepted = true
	c.logger.Info("decision accepted")

	c.timers = append(c.timers, c.env.Timeline.Every(c.cfg.Rain.Interval, c.emitRain))
	c.emitRain()

	fw := c.cfg.Fireworks
	for i := 0; i < fw.Count; i++ {
		c.timers = append(c.timers, c.env.Timeline.After(time.Duration(i)*fw.Interval, c.burst))
	}
	return true
}

// emitRain spawns one batch of falling hearts above the top edge.
func (c *Celebration) emitRain() {
	r := c.cfg.Rain
	rng := c.env.Rand
	for i := 0; i < r.Quantity; i++ {
		angle := between(rng.Float64(), r.AngleMin, r.AngleMax) * math.Pi / 180
		speed := between(rng.Float64(), r.SpeedMin, r.SpeedMax)
		c.particles = append(c.particles, &particle{
			kind:   particleHeart,
			origin: entity.Vec(rng.Float64()*c.env.Viewport.W, -20),
			vel:    entity.Vec(math.Cos(angle)*speed, math.Sin(angle)*speed),
			life:   r.Lifespan,
			size:   0.4,
			color:  sparkColors[rng.Intn(3)],
		})
	}
}

// burst spawns one firework: particles spread evenly on a circle, each
// flying out to its own speed over the burst duration.
func (c *Celebration) burst() {
	fw := c.cfg.Fireworks
	rng := c.env.Rand
	vp := c.env.Viewport
	origin := entity.Vec(
		between(rng.Float64(), vp.W*0.2, vp.W*0.8),
		between(rng.Float64(), vp.H*0.2, vp.H*0.5),
	)
	for i := 0; i < fw.Particles; i++ {
		angle := float64(i) / float64(fw.Particles) * 2 * math.Pi
		speed := between(rng.Float64(), fw.SpeedMin, fw.SpeedMax)
		c.particles = append(c.particles, &particle{
			kind:   particleSpark,
			origin: origin,
			vel:    entity.Vec(math.Cos(angle)*speed, math.Sin(angle)*speed),
			life:   fw.Duration,
			size:   3,
			color:  sparkColors[rng.Intn(len(sparkColors))],
		})
	}
	c.bursts++
	c.logger.Debug("firework", "burst", c.bursts, "at", origin)
}

func between(t, lo, hi float64) float64 {
	return lo + (hi-lo)*t
}

// OnStep ages the particles.
func (c *Celebration) OnStep(dt float64, _ entity.InputIntent) {
	step := time.Duration(dt * float64(time.Second))
	c.elapsed += step

	kept := c.particles[:0]
	for _, p := range c.particles {
		p.age += step
		if p.age < p.life {
			kept = append(kept, p)
		}
	}
	clear(c.particles[len(kept):])
	c.particles = kept
}

// Draw implements scene.Scene.
func (c *Celebration) Draw(screen *ebiten.Image) {
	render.Fill(screen, color.RGBA{10, 10, 15, 255})
	for _, s := range c.stars {
		t := float64(c.elapsed+s.phase) / float64(s.period)
		alpha := 0.2 + 0.4*(1+math.Cos(2*math.Pi*t))/2
		render.Star(screen, s.pos, s.radius, alpha)
	}
	for _, p := range c.particles {
		p.draw(screen)
	}
}

// OnExit implements scene.Scene.
func (c *Celebration) OnExit() {
	for _, h := range c.timers {
		c.env.Timeline.Cancel(h)
	}
	c.timers = nil
	c.particles = nil
}

// Completed implements scene.Scene. The celebration is final.
func (c *Celebration) Completed() bool {
	return false
}

// Ready reports whether the ready signal fired.
func (c *Celebration) Ready() bool {
	return c.ready
}

// Accepted reports whether Accept was called.
func (c *Celebration) Accepted() bool {
	return c.accepted
}

// Particles returns the number of live particles.
func (c *Celebration) Particles() int {
	return len(c.particles)
}

// Bursts returns how many fireworks went off.
func (c *Celebration) Bursts() int {
	return c.bursts
}
