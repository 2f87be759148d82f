package state

import (
	"crazymaze/pkg/engine/world"
	"crazymaze/pkg/game/entities"
)

// Snapshot is a read-only copy of a session taken after a tick. Renderers
// may keep it as long as they like; nothing in it aliases live state.
type Snapshot struct {
	SessionID string
	Grid      *world.Grid

	Player       world.Position
	Effect       entities.EffectKind
	EffectLeftMs int64

	Enemy    world.Position
	HasEnemy bool

	Exit           world.Position
	ElapsedSeconds int64
	Steps          int

	HintKey     string
	HintUntil   int64
	HintVisible bool

	Status Status
	Won    bool
	Lost   bool
	Now    int64
}

// Snapshot copies the session at now
func (s *Session) Snapshot(now int64) Snapshot {
	snap := Snapshot{
		SessionID:      s.ID.String(),
		Grid:           s.Grid.Clone(),
		Player:         s.Player.Position,
		Effect:         s.Player.Effect.Kind,
		EffectLeftMs:   s.Player.Effect.Remaining(now),
		Exit:           s.Exit,
		ElapsedSeconds: s.ElapsedMillis(now) / 1000,
		Steps:          s.Player.Steps,
		HintKey:        s.Hint.Key,
		HintUntil:      s.Hint.Until,
		HintVisible:    s.Hint.Visible(now),
		Status:         s.Status,
		Won:            s.Status == StatusWon,
		Lost:           s.Status == StatusLost,
		Now:            now,
	}
	if s.Enemy != nil {
		snap.Enemy = s.Enemy.Position
		snap.HasEnemy = true
	}
	return snap
}
