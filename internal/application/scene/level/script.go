package level

import (
	"github.com/younwookim/journey/internal/application/timeline"
	"github.com/younwookim/journey/internal/application/transition"
	"github.com/younwookim/journey/internal/domain/entity"
)

// script builds the goal sequence from the level's transition constants:
// an optional approach to the goal, an optional icon between player and goal,
// and the fade to the next scene.
func (l *Level) script() transition.Script {
	tc := l.cfg.Transition
	next, ok := l.key.Next()
	if !ok {
		next = l.key
	}
	goal := l.layout.Goal.Position

	var s transition.Script
	if tc.Approach > 0 {
		ease, err := timeline.ParseEase(tc.ApproachEase)
		if err != nil {
			ease = timeline.Linear
		}
		s = append(s, transition.Step{Effect: transition.MoveBody{
			Body:     l.player,
			To:       entity.Vec(goal.X-tc.ApproachGap, goal.Y),
			Duration: tc.Approach,
			Ease:     ease,
		}})
	}
	if tc.IconLifetime > 0 {
		player := l.player
		s = append(s, transition.Step{Delay: tc.IconDelay, Effect: transition.SpawnIcon{
			Text: "heart",
			Anchor: func() entity.Vector2 {
				return entity.Vec((player.Position.X+goal.X)/2, goal.Y-50)
			},
			Lifetime: tc.IconLifetime,
		}})
	}
	s = append(s, transition.Step{Delay: tc.FadeDelay, Effect: transition.Fade{
		Duration: tc.FadeOut,
		Target:   next,
	}})
	return s
}
