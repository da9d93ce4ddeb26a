// Package timeline provides the internal clock that drives every delayed
// callback and tween of the running scene.
//
// The clock only moves when Advance is called, so pausing the host (or the
// timeline itself) freezes all pending work. Each timer and tween remembers the
// generation it was scheduled under; NextGeneration discards everything that is
// pending and makes any callback captured earlier a no-op.
package timeline

import "time"

// Handle identifies a scheduled timer or tween. The zero Handle is invalid.
type Handle struct {
	id uint64
}

// Valid reports whether h refers to something that was scheduled.
func (h Handle) Valid() bool {
	return h.id != 0
}

type timer struct {
	id       uint64
	gen      uint64
	at       time.Duration
	interval time.Duration
	fn       func()
}

type tween struct {
	id       uint64
	gen      uint64
	start    time.Duration
	duration time.Duration
	ease     Ease
	update   func(progress float64)
	done     func()
	finished bool
}

// Timeline is a single-threaded scheduler driven by simulation time.
type Timeline struct {
	now    time.Duration
	gen    uint64
	seq    uint64
	paused bool

	timers []*timer
	tweens []*tween
}

// New creates an empty timeline at time zero, generation zero.
func New() *Timeline {
	return &Timeline{}
}

// Now returns the simulation time elapsed since the timeline was created.
func (t *Timeline) Now() time.Duration {
	return t.now
}

// Generation returns the current generation.
func (t *Timeline) Generation() uint64 {
	return t.gen
}

// NextGeneration drops every pending timer and tween and returns the new
// generation.
func (t *Timeline) NextGeneration() uint64 {
	t.gen++
	t.timers = nil
	t.tweens = nil
	return t.gen
}

// SetPaused stops or resumes the clock.
func (t *Timeline) SetPaused(paused bool) {
	t.paused = paused
}

// Paused reports whether the clock is stopped.
func (t *Timeline) Paused() bool {
	return t.paused
}

// Pending returns the number of scheduled timers and running tweens.
func (t *Timeline) Pending() int {
	return len(t.timers) + len(t.tweens)
}

// After schedules fn to run once, d after the current time.
func (t *Timeline) After(d time.Duration, fn func()) Handle {
	return t.schedule(d, 0, fn)
}

// Every schedules fn to run repeatedly every interval until cancelled or the
// generation changes. The first call happens one interval from now.
func (t *Timeline) Every(interval time.Duration, fn func()) Handle {
	if interval <= 0 {
		return t.schedule(0, 0, fn)
	}
	return t.schedule(interval, interval, fn)
}

func (t *Timeline) schedule(d, interval time.Duration, fn func()) Handle {
	if fn == nil {
		return Handle{}
	}
	if d < 0 {
		d = 0
	}
	t.seq++
	t.timers = append(t.timers, &timer{
		id:       t.seq,
		gen:      t.gen,
		at:       t.now + d,
		interval: interval,
		fn:       fn,
	})
	return Handle{id: t.seq}
}

// Tween calls update with the eased progress in [0, 1] on every Advance for
// duration d, then calls done once. A nil ease means Linear.
func (t *Timeline) Tween(d time.Duration, ease Ease, update func(progress float64), done func()) Handle {
	if ease == nil {
		ease = Linear
	}
	t.seq++
	t.tweens = append(t.tweens, &tween{
		id:       t.seq,
		gen:      t.gen,
		start:    t.now,
		duration: d,
		ease:     ease,
		update:   update,
		done:     done,
	})
	return Handle{id: t.seq}
}

// Cancel removes a pending timer or tween. It returns false if h is not
// pending anymore.
func (t *Timeline) Cancel(h Handle) bool {
	if !h.Valid() {
		return false
	}
	for i, tm := range t.timers {
		if tm.id == h.id {
			t.timers = append(t.timers[:i], t.timers[i+1:]...)
			return true
		}
	}
	for i, tw := range t.tweens {
		if tw.id == h.id {
			tw.finished = true
			t.tweens = append(t.tweens[:i], t.tweens[i+1:]...)
			return true
		}
	}
	return false
}

// Advance moves the clock forward by dt. Due timers run in order of their due
// time, with Now reporting that due time while they run; tweens are stepped
// afterwards. Nothing happens while paused.
func (t *Timeline) Advance(dt time.Duration) {
	if t.paused || dt < 0 {
		return
	}
	target := t.now + dt

	for {
		i := t.nextDue(target)
		if i < 0 {
			break
		}
		tm := t.timers[i]
		t.timers = append(t.timers[:i], t.timers[i+1:]...)
		if tm.at > t.now {
			t.now = tm.at
		}
		if tm.gen != t.gen {
			continue
		}
		if tm.interval > 0 {
			tm.at += tm.interval
			t.timers = append(t.timers, tm)
		}
		tm.fn()
	}
	t.now = target

	t.stepTweens()
}

// nextDue returns the index of the earliest timer due at or before target,
// or -1. Ties are broken by scheduling order.
func (t *Timeline) nextDue(target time.Duration) int {
	best := -1
	for i, tm := range t.timers {
		if tm.at > target {
			continue
		}
		if best < 0 || tm.at < t.timers[best].at ||
			(tm.at == t.timers[best].at && tm.id < t.timers[best].id) {
			best = i
		}
	}
	return best
}

func (t *Timeline) stepTweens() {
	if len(t.tweens) == 0 {
		return
	}
	active := append([]*tween(nil), t.tweens...)
	for _, tw := range active {
		if tw.finished || tw.gen != t.gen {
			continue
		}
		progress := 1.0
		if tw.duration > 0 {
			progress = float64(t.now-tw.start) / float64(tw.duration)
			if progress > 1 {
				progress = 1
			}
		}
		if tw.update != nil {
			tw.update(tw.ease(progress))
		}
		if progress < 1 || tw.gen != t.gen {
			continue
		}
		tw.finished = true
		t.removeTween(tw.id)
		if tw.done != nil {
			tw.done()
		}
	}
}

func (t *Timeline) removeTween(id uint64) {
	for i, tw := range t.tweens {
		if tw.id == id {
			t.tweens = append(t.tweens[:i], t.tweens[i+1:]...)
			return
		}
	}
}
