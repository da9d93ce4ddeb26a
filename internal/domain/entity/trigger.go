package entity

// TriggerKind distinguishes collectibles from the level goal.
type TriggerKind int

const (
	TriggerCollectible TriggerKind = iota
	TriggerGoal
)

// String returns the string representation of the trigger kind
func (k TriggerKind) String() string {
	switch k {
	case TriggerCollectible:
		return "Collectible"
	case TriggerGoal:
		return "Goal"
	default:
		return "Unknown"
	}
}

// Trigger is a non-blocking overlap region that produces a one-time event.
type Trigger struct {
	Position Vector2
	Size     Vector2
	Kind     TriggerKind
	Payload  string

	// Active is false for a goal until it is armed.
	Active   bool
	Consumed bool

	Float Oscillation
}

// NewCollectible creates an active collectible trigger.
func NewCollectible(pos, halfSize Vector2) *Trigger {
	return &Trigger{Position: pos, Size: halfSize, Kind: TriggerCollectible, Active: true}
}

// NewGoal creates an inactive goal trigger.
func NewGoal(pos, halfSize Vector2) *Trigger {
	return &Trigger{Position: pos, Size: halfSize, Kind: TriggerGoal}
}

// Rect returns the overlap rectangle.
func (t *Trigger) Rect() Rect {
	return Rect{Center: t.Position, Half: t.Size}
}

// Live reports whether the trigger can still fire.
func (t *Trigger) Live() bool {
	return t.Active && !t.Consumed
}

// Arm activates the trigger. Arming a consumed trigger has no effect.
func (t *Trigger) Arm() {
	if t.Consumed {
		return
	}
	t.Active = true
}

// Fire consumes the trigger. It returns false if the trigger is inactive or
// was already consumed, in which case nothing changes.
func (t *Trigger) Fire() bool {
	if !t.Live() {
		return false
	}
	t.Consumed = true
	return true
}
