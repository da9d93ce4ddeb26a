package game

import (
	"github.com/younwookim/journey/internal/application/scene"
	"github.com/younwookim/journey/internal/application/scene/celebration"
	"github.com/younwookim/journey/internal/application/scene/level"
	"github.com/younwookim/journey/internal/application/scene/preload"
	"github.com/younwookim/journey/internal/application/state"
)

// DefaultFactory builds the production scenes.
func DefaultFactory(key state.SceneKey, env scene.Env) scene.Scene {
	switch key {
	case state.ScenePreloading:
		return preload.New(env)
	case state.SceneLevel1, state.SceneLevel2:
		return level.New(key, env)
	default:
		return celebration.New(env)
	}
}
