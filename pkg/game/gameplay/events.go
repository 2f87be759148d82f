package gameplay

import (
	log "github.com/sirupsen/logrus"

	"crazymaze/pkg/game/entities"
	"crazymaze/pkg/game/tiles"
)

// RollEvents runs the random event scheduler. Once the event cooldown has
// passed it records a roll and, with the configured chance, either applies a
// random status effect or shuffles the maze. Returns whether an event fired.
func (g *Game) RollEvents(now int64) bool {
	s := g.Session
	if !s.Playing() || now-s.LastEventAt <= g.cfg.EventCooldownMs {
		return false
	}
	s.LastEventAt = now

	if g.rng.Float64() >= g.cfg.EventChance {
		return false
	}

	effects := entities.StatusEffects()
	pick := g.rng.Intn(len(effects) + 1)
	if pick == len(effects) {
		g.shuffle(now)
		return true
	}

	kind := effects[pick]
	duration := g.cfg.EffectMinMs + g.rng.Int63n(g.cfg.EffectMaxMs-g.cfg.EffectMinMs+1)
	s.Player.Effect = entities.NewEffect(kind, now, duration)
	s.Post(effectHint(kind), now, EffectHintMs)
	g.logger().WithFields(log.Fields{
		"effect":   kind.String(),
		"duration": duration,
	}).Info("effect started")
	return true
}

// shuffle flips random interior cells. The exit can end up cut off.
func (g *Game) shuffle(now int64) {
	s := g.Session
	flipped := tiles.Shuffle(s.Grid, g.rng, g.cfg.ShuffleFlips, s.Player.Position, s.Exit)
	s.Post(HintShuffle, now, ShuffleHintMs)
	g.logger().WithField("flipped", flipped).Info("maze shuffled")
}

// ExpireEffect clears the player's effect once it has run out
func (g *Game) ExpireEffect(now int64) bool {
	s := g.Session
	if !s.Player.Effect.Expired(now) {
		return false
	}
	g.logger().WithField("effect", s.Player.Effect.Kind.String()).Debug("effect faded")
	s.Player.Effect = entities.EffectState{}
	s.Post(HintEffectFaded, now, EffectFadedHintMs)
	return true
}
