package entity

import "fmt"

// Action is a player intent that can be asserted by any input source.
type Action int

const (
	ActionLeft Action = iota
	ActionRight
	ActionJump

	actionCount
)

// Actions lists every action in declaration order.
var Actions = [...]Action{ActionLeft, ActionRight, ActionJump}

// String returns the wire name of the action.
func (a Action) String() string {
	switch a {
	case ActionLeft:
		return "left"
	case ActionRight:
		return "right"
	case ActionJump:
		return "jump"
	default:
		return "unknown"
	}
}

// Valid reports whether a is a known action.
func (a Action) Valid() bool {
	return a >= 0 && a < actionCount
}

// ParseAction converts a wire name ("left", "right", "jump") into an Action.
func ParseAction(s string) (Action, error) {
	for _, a := range Actions {
		if a.String() == s {
			return a, nil
		}
	}
	return 0, fmt.Errorf("unknown action %q", s)
}

// InputIntent is the merged per-frame input state.
type InputIntent struct {
	Left  bool
	Right bool
	Jump  bool
}

// Has reports whether the intent asserts a.
func (i InputIntent) Has(a Action) bool {
	switch a {
	case ActionLeft:
		return i.Left
	case ActionRight:
		return i.Right
	case ActionJump:
		return i.Jump
	default:
		return false
	}
}

// With returns a copy of i with a set to on.
func (i InputIntent) With(a Action, on bool) InputIntent {
	switch a {
	case ActionLeft:
		i.Left = on
	case ActionRight:
		i.Right = on
	case ActionJump:
		i.Jump = on
	}
	return i
}
