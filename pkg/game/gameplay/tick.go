package gameplay

import (
	log "github.com/sirupsen/logrus"

	"crazymaze/pkg/engine/world"
	"crazymaze/pkg/game/state"
)

// Tick advances the session by one frame. dir is the sampled movement input
// and is ignored unless hasDir is set. Once the session is won or lost
// nothing changes until NewMaze or Reset.
func (g *Game) Tick(dir world.Direction, hasDir bool) {
	s := g.Session
	if !s.Playing() {
		return
	}
	now := g.Now()

	if hasDir {
		g.Move(dir, now)
	}

	if s.Player.Position == s.Exit {
		g.finish(state.StatusWon, HintWin, now)
		return
	}

	if s.Enemy != nil {
		s.Enemy.Chase(s.Grid, s.Player.Position, now)
		if s.Enemy.Caught(s.Player.Position) {
			g.finish(state.StatusLost, HintLost, now)
			return
		}
	}

	g.RollEvents(now)
	g.ExpireEffect(now)
}

func (g *Game) finish(status state.Status, hint string, now int64) {
	s := g.Session
	if !s.Finish(status, now) {
		return
	}
	s.Post(hint, now, FinishHintMs)
	g.logger().WithFields(log.Fields{
		"status":  status.String(),
		"steps":   s.Player.Steps,
		"elapsed": s.ElapsedMillis(now),
	}).Info("session finished")
}
