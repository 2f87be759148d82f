package entities

import (
	"math/rand"

	"crazymaze/pkg/engine/world"
)

// Enemy is the pursuer. It re-plans a shortest path every time it is allowed
// to move, so it always reacts to the current grid.
type Enemy struct {
	Position   world.Position
	Cooldown   int64
	LastMoveAt int64
}

// SpawnEnemy samples random interior cells and places the enemy on the plain
// Path cell farthest, by Manhattan distance, from from. Only a strictly
// greater distance replaces the current pick. When no sample lands on Path
// the enemy starts on the grid start cell.
func SpawnEnemy(grid *world.Grid, rng *rand.Rand, from world.Position, samples int, cooldown int64) *Enemy {
	best := grid.Start()
	bestDist := -1
	if grid.Rows() > 2 && grid.Cols() > 2 {
		for i := 0; i < samples; i++ {
			p := world.Pos(1+rng.Intn(grid.Rows()-2), 1+rng.Intn(grid.Cols()-2))
			if grid.Kind(p) != world.Path {
				continue
			}
			if d := p.Manhattan(from); d > bestDist {
				best, bestDist = p, d
			}
		}
	}
	return &Enemy{Position: best, Cooldown: cooldown, LastMoveAt: Never}
}

// CanMove reports whether the enemy cooldown has elapsed at now
func (e *Enemy) CanMove(now int64) bool {
	return now-e.LastMoveAt >= e.Cooldown
}

// Chase moves the enemy one step along a shortest path to target once its
// cooldown has elapsed. An unreachable target leaves the enemy in place.
// Returns whether the enemy moved.
func (e *Enemy) Chase(grid *world.Grid, target world.Position, now int64) bool {
	if !e.CanMove(now) {
		return false
	}
	next, ok := world.ShortestNextStep(grid, e.Position, target)
	if !ok {
		return false
	}
	e.Position = next
	e.LastMoveAt = now
	return true
}

// Caught reports whether the enemy shares a cell with p
func (e *Enemy) Caught(p world.Position) bool {
	return e.Position == p
}
