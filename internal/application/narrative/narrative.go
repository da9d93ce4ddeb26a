// Package narrative holds the short-lived story messages revealed while
// playing: text shown when a collectible is picked up and icons spawned by
// transition scripts.
package narrative

import (
	"math"
	"time"

	"github.com/younwookim/journey/internal/application/timeline"
	"github.com/younwookim/journey/internal/domain/entity"
)

// Kind distinguishes message text from decorative icons.
type Kind int

const (
	KindText Kind = iota
	KindIcon
)

// String returns the string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindText:
		return "Text"
	case KindIcon:
		return "Icon"
	default:
		return "Unknown"
	}
}

// iconPulse is the period of one grow-and-shrink cycle of an icon.
const iconPulse = 800 * time.Millisecond

// Message is a displayed narrative element.
type Message struct {
	Kind  Kind
	Text  string
	Index int // position in the level's message list, -1 for icons

	// Origin is where the message starts. Screen-space messages ignore the
	// camera.
	Origin      entity.Vector2
	ScreenSpace bool

	Age      time.Duration
	Lifetime time.Duration
	Rise     float64
}

// Progress returns how far the message is through its lifetime, in [0, 1].
func (m Message) Progress() float64 {
	if m.Lifetime <= 0 {
		return 1
	}
	return math.Min(1, float64(m.Age)/float64(m.Lifetime))
}

// Alpha returns the current opacity. Text fades out with a cubic ease-out,
// icons stay opaque until they expire.
func (m Message) Alpha() float64 {
	if m.Kind == KindIcon {
		return 1
	}
	return 1 - timeline.CubicOut(m.Progress())
}

// Position returns Origin displaced upward by the eased rise.
func (m Message) Position() entity.Vector2 {
	return entity.Vector2{X: m.Origin.X, Y: m.Origin.Y - m.Rise*timeline.CubicOut(m.Progress())}
}

// Scale returns the draw scale. Icons pulse between 1 and 1.3.
func (m Message) Scale() float64 {
	if m.Kind != KindIcon {
		return 1
	}
	phase := float64(m.Age%iconPulse) / float64(iconPulse)
	return 1 + 0.3*math.Sin(math.Pi*phase)
}

// Expired reports whether the message has outlived its lifetime.
func (m Message) Expired() bool {
	return m.Age >= m.Lifetime
}
