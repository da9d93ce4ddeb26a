package replay

import (
	"github.com/charmbracelet/log"

	"github.com/younwookim/journey/internal/application/game"
	"github.com/younwookim/journey/internal/application/state"
	"github.com/younwookim/journey/internal/domain/entity"
	"github.com/younwookim/journey/internal/infrastructure/config"
)

// Result summarizes where a headless run ended.
type Result struct {
	Frames   int
	Scene    state.SceneKey
	Level    state.LevelState
	Player   entity.Vector2
	Ready    bool
	Accepted bool
}

// progress is implemented by level scenes.
type progress interface {
	State() state.LevelState
	Player() *entity.Body
}

// acceptance is implemented by the celebration.
type acceptance interface {
	Accepted() bool
}

// Run plays data through a fresh director without a window. The keyboard is
// not read; recorded intents are the only input.
func Run(data ReplayData, cfg *config.GameConfig, logger *log.Logger) Result {
	if cfg == nil {
		cfg = config.MustDefault()
	}
	if data.Width > 0 && data.Height > 0 {
		c := *cfg
		c.Display.Width, c.Display.Height = data.Width, data.Height
		cfg = &c
	}

	d := game.New(game.Options{Config: cfg, Logger: logger, Seed: data.Seed})
	r := NewReplayer(data)
	for {
		intent, accept, ok := r.Next()
		if !ok {
			break
		}
		if accept {
			d.Accept()
		}
		d.Step(intent)
	}

	res := Result{Frames: d.Frame(), Scene: d.Key(), Ready: d.IsReady()}
	if p, ok := d.Current().(progress); ok {
		res.Level = p.State()
		if b := p.Player(); b != nil {
			res.Player = b.Position
		}
	}
	if a, ok := d.Current().(acceptance); ok {
		res.Accepted = a.Accepted()
	}
	return res
}
