package narrative

import (
	"time"

	"github.com/younwookim/journey/internal/domain/entity"
)

// Queue spawns and ages narrative messages. Messages never interact with
// each other or with physics.
type Queue struct {
	texts    []string
	lifetime time.Duration
	rise     float64

	active []Message
}

// NewQueue creates a queue that reveals texts by index.
func NewQueue(texts []string, lifetime time.Duration, rise float64) *Queue {
	return &Queue{
		texts:    append([]string(nil), texts...),
		lifetime: lifetime,
		rise:     rise,
	}
}

// Reveal spawns exactly one screen-space message with texts[index] at the
// given screen position. An index outside the list is a no-op.
func (q *Queue) Reveal(index int, at entity.Vector2) bool {
	if index < 0 || index >= len(q.texts) {
		return false
	}
	q.active = append(q.active, Message{
		Kind:        KindText,
		Text:        q.texts[index],
		Index:       index,
		Origin:      at,
		ScreenSpace: true,
		Lifetime:    q.lifetime,
		Rise:        q.rise,
	})
	return true
}

// Push adds a message as-is.
func (q *Queue) Push(m Message) {
	if m.Kind == KindIcon {
		m.Index = -1
	}
	q.active = append(q.active, m)
}

// Update ages every message by dt and drops the expired ones.
func (q *Queue) Update(dt time.Duration) {
	if dt <= 0 {
		return
	}
	kept := q.active[:0]
	for _, m := range q.active {
		m.Age += dt
		if !m.Expired() {
			kept = append(kept, m)
		}
	}
	clear(q.active[len(kept):])
	q.active = kept
}

// Messages returns a snapshot of the live messages in spawn order.
func (q *Queue) Messages() []Message {
	return append([]Message(nil), q.active...)
}

// Len returns the number of live messages.
func (q *Queue) Len() int {
	return len(q.active)
}

// Count returns how many messages the queue can reveal.
func (q *Queue) Count() int {
	return len(q.texts)
}

// Clear drops every live message.
func (q *Queue) Clear() {
	q.active = nil
}
