package state

// SceneKey identifies a top-level state of the scene director.
type SceneKey int

const (
	ScenePreloading SceneKey = iota
	SceneLevel1
	SceneLevel2
	SceneCelebration
)

// String returns the string representation of the scene key
func (k SceneKey) String() string {
	switch k {
	case ScenePreloading:
		return "Preloading"
	case SceneLevel1:
		return "Level1"
	case SceneLevel2:
		return "Level2"
	case SceneCelebration:
		return "Celebration"
	default:
		return "Unknown"
	}
}

// Next returns the state that follows k. The celebration is final and
// returns itself with ok=false.
func (k SceneKey) Next() (next SceneKey, ok bool) {
	if k < ScenePreloading || k >= SceneCelebration {
		return k, false
	}
	return k + 1, true
}

// IsLevel reports whether k is one of the platforming levels.
func (k SceneKey) IsLevel() bool {
	return k == SceneLevel1 || k == SceneLevel2
}

// LevelPhase is the state of a single level instance.
type LevelPhase int

const (
	PhaseRunning LevelPhase = iota
	PhaseGoalArmed
	PhaseTransitioning
	PhaseCompleted
)

// String returns the string representation of the level phase
func (p LevelPhase) String() string {
	switch p {
	case PhaseRunning:
		return "Running"
	case PhaseGoalArmed:
		return "GoalArmed"
	case PhaseTransitioning:
		return "Transitioning"
	case PhaseCompleted:
		return "Completed"
	default:
		return "Unknown"
	}
}

// CanAdvanceTo reports whether next directly follows p.
// Phases are never revisited or skipped.
func (p LevelPhase) CanAdvanceTo(next LevelPhase) bool {
	return p < PhaseCompleted && next == p+1
}

// LevelState is a snapshot of a level's progress.
type LevelState struct {
	CollectedCount int
	GoalArmed      bool
	Completed      bool
	Phase          LevelPhase
}
