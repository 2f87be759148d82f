// Package entities holds the movers on the maze: the player with its status
// effect, and the enemy that chases it.
package entities

import (
	"math"

	"crazymaze/pkg/engine/world"
)

// Never is the timestamp of a move that has not happened yet. It is far
// enough in the past that any cooldown check passes, without overflowing
// when subtracted from a real timestamp.
const Never int64 = math.MinInt64 / 2

// EffectKind is the status effect currently applied to the player
type EffectKind int

const (
	EffectNone EffectKind = iota
	EffectBig
	EffectSmall
	EffectSpeed
	EffectConfused
)

// StatusEffects returns the effects a random event can apply
func StatusEffects() []EffectKind {
	return []EffectKind{EffectBig, EffectSmall, EffectSpeed, EffectConfused}
}

// String returns the name of the effect
func (k EffectKind) String() string {
	switch k {
	case EffectBig:
		return "Big"
	case EffectSmall:
		return "Small"
	case EffectSpeed:
		return "Speed"
	case EffectConfused:
		return "Confused"
	default:
		return "None"
	}
}

// EffectState is the single active effect and when it runs out.
// The zero value means no effect.
type EffectState struct {
	Kind      EffectKind
	ExpiresAt int64
}

// NewEffect starts kind at now for duration milliseconds
func NewEffect(kind EffectKind, now, duration int64) EffectState {
	return EffectState{Kind: kind, ExpiresAt: now + duration}
}

// Active reports whether an effect is applied
func (e EffectState) Active() bool {
	return e.Kind != EffectNone
}

// Expired reports whether an active effect has run past its deadline
func (e EffectState) Expired(now int64) bool {
	return e.Active() && now > e.ExpiresAt
}

// Remaining returns how many milliseconds the effect has left, 0 when inactive
func (e EffectState) Remaining(now int64) int64 {
	if !e.Active() || now >= e.ExpiresAt {
		return 0
	}
	return e.ExpiresAt - now
}

// Player is the maze runner
type Player struct {
	Position   world.Position
	Steps      int
	Effect     EffectState
	LastMoveAt int64
}

// NewPlayer places a fresh player at start
func NewPlayer(start world.Position) *Player {
	return &Player{Position: start, LastMoveAt: Never}
}

// Cooldown returns the minimum time between moves, halved under Speed
func (p *Player) Cooldown(base int64) int64 {
	if p.Effect.Kind == EffectSpeed {
		return base / 2
	}
	return base
}

// CanMove reports whether the move cooldown has elapsed at now
func (p *Player) CanMove(now, base int64) bool {
	return now-p.LastMoveAt >= p.Cooldown(base)
}

// Steer returns the direction the player actually moves when asked to go dir.
// Confusion inverts the controls.
func (p *Player) Steer(dir world.Direction) world.Direction {
	if p.Effect.Kind == EffectConfused {
		return dir.Opposite()
	}
	return dir
}

// MoveTo commits an accepted move
func (p *Player) MoveTo(pos world.Position, now int64) {
	p.Position = pos
	p.Steps++
	p.LastMoveAt = now
}
