package gameplay

import (
	log "github.com/sirupsen/logrus"

	"crazymaze/pkg/engine/world"
	"crazymaze/pkg/game/tiles"
)

// Move tries to step the player in dir at now. The move is refused while the
// cooldown runs or when the target is a wall or off the grid. Accepted moves
// resolve any special tile on the target. Returns whether the player moved.
func (g *Game) Move(dir world.Direction, now int64) bool {
	s := g.Session
	p := s.Player
	if !s.Playing() || !p.CanMove(now, g.cfg.MoveCooldownMs) {
		return false
	}

	target := p.Position.Step(p.Steer(dir))
	if !s.Grid.IsWalkable(target) {
		return false
	}

	landing := tiles.Resolve(s.Grid, g.rng, p.Position, target, g.cfg.PortalAttempts)
	p.MoveTo(landing.Position, now)

	if landing.HintKey != "" {
		s.Post(landing.HintKey, now, TileHintMs)
		g.logger().WithFields(log.Fields{
			"effect": landing.Effect.String(),
			"from":   target.String(),
			"to":     landing.Position.String(),
		}).Debug("tile triggered")
	}
	return true
}
