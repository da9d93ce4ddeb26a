package system

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/journey/internal/domain/entity"
)

// KeySource reports live keyboard state.
type KeySource interface {
	IsKeyPressed(key ebiten.Key) bool
}

// EbitenKeys reads the keyboard through ebiten.
type EbitenKeys struct{}

// IsKeyPressed implements KeySource.
func (EbitenKeys) IsKeyPressed(key ebiten.Key) bool {
	return ebiten.IsKeyPressed(key)
}

// DefaultBindings maps every action to the keys that assert it.
var DefaultBindings = map[entity.Action][]ebiten.Key{
	entity.ActionLeft:  {ebiten.KeyArrowLeft},
	entity.ActionRight: {ebiten.KeyArrowRight},
	entity.ActionJump:  {ebiten.KeyArrowUp, ebiten.KeySpace},
}

// Unifier merges live keyboard state with latched external control events
// (touch buttons) into one InputIntent per frame.
//
// An action is asserted while at least one source asserts it; releasing one
// of two sources keeps it asserted.
type Unifier struct {
	keys     KeySource
	bindings map[entity.Action][]ebiten.Key

	mu       sync.Mutex
	external [len(entity.Actions)]bool
}

// NewUnifier creates a unifier reading keys. A nil source means no keyboard.
func NewUnifier(keys KeySource) *Unifier {
	return &Unifier{
		keys:     keys,
		bindings: DefaultBindings,
	}
}

// SetExternal latches the external state of action until overridden.
// It may be called at any time, from any goroutine. Unknown actions are ignored.
func (u *Unifier) SetExternal(action entity.Action, pressed bool) {
	if !action.Valid() {
		return
	}
	u.mu.Lock()
	u.external[action] = pressed
	u.mu.Unlock()
}

// Release drops the external state of action. Pointer up, pointer leave and
// pointer cancel all end here.
func (u *Unifier) Release(action entity.Action) {
	u.SetExternal(action, false)
}

// ReleaseAll drops every external action.
func (u *Unifier) ReleaseAll() {
	u.mu.Lock()
	u.external = [len(entity.Actions)]bool{}
	u.mu.Unlock()
}

// Sample returns the merged intent for this frame without changing any state.
func (u *Unifier) Sample() entity.InputIntent {
	u.mu.Lock()
	external := u.external
	u.mu.Unlock()

	var intent entity.InputIntent
	for _, a := range entity.Actions {
		intent = intent.With(a, external[a] || u.keyDown(a))
	}
	return intent
}

func (u *Unifier) keyDown(action entity.Action) bool {
	if u.keys == nil {
		return false
	}
	for _, k := range u.bindings[action] {
		if u.keys.IsKeyPressed(k) {
			return true
		}
	}
	return false
}
