// Package tiles holds the special tile catalogue: placing portal, spring and
// slip tiles, resolving what happens when something lands on one, and the
// random maze shuffle.
package tiles

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"crazymaze/pkg/engine/world"
)

// Effect is what a tile does to whoever steps on it
type Effect int

const (
	EffectNone Effect = iota
	EffectTeleport
	EffectBounce
	EffectSlip
)

// Defaults used when the caller has no configuration of its own
const (
	DefaultScatterAttempts = 8
	DefaultPortalAttempts  = 100
	DefaultShuffleFlips    = 15

	minBounce = 2
	maxBounce = 4
)

// Hint keys posted when a tile fires. They double as gettext message IDs.
const (
	HintPortal = "HINT_PORTAL"
	HintSpring = "HINT_SPRING"
	HintSlip   = "HINT_SLIP"
)

// String returns the name of the effect
func (e Effect) String() string {
	switch e {
	case EffectTeleport:
		return "Teleport"
	case EffectBounce:
		return "Bounce"
	case EffectSlip:
		return "Slip"
	default:
		return "None"
	}
}

// EffectFor maps a tile kind to its effect
func EffectFor(kind world.TileKind) Effect {
	switch kind {
	case world.Portal:
		return EffectTeleport
	case world.Spring:
		return EffectBounce
	case world.Slip:
		return EffectSlip
	default:
		return EffectNone
	}
}

// Scatter tries attempts times to turn a random interior Path cell into a
// special tile. Excluded cells and anything that is not plain Path are
// skipped, so fewer than attempts tiles may be placed. The positions actually
// converted are returned.
func Scatter(grid *world.Grid, rng *rand.Rand, attempts int, exclude ...world.Position) mapset.Set[world.Position] {
	placed := mapset.New[world.Position]()
	skip := positionSet(exclude)
	kinds := world.SpecialTileKinds()

	for i := 0; i < attempts; i++ {
		p := randomInterior(grid, rng)
		if grid.Kind(p) != world.Path || skip.Has(p) {
			continue
		}
		grid.SetKind(p, kinds[rng.Intn(len(kinds))])
		placed.Put(p)
	}
	return placed
}

// Landing is the outcome of entering a cell
type Landing struct {
	Position  world.Position
	Effect    Effect
	Triggered bool   // a tile effect moved or redirected the mover
	HintKey   string // empty when nothing worth announcing happened
}

// Resolve applies the effect of the tile at entry for a mover arriving from
// from. The landing cell never chains into a second effect.
func Resolve(grid *world.Grid, rng *rand.Rand, from, entry world.Position, portalAttempts int) Landing {
	effect := EffectFor(grid.Kind(entry))
	switch effect {
	case EffectTeleport:
		return teleport(grid, rng, entry, portalAttempts)
	case EffectBounce:
		return bounce(grid, rng, from, entry)
	case EffectSlip:
		return Landing{Position: grid.Start(), Effect: EffectSlip, Triggered: true, HintKey: HintSlip}
	default:
		return Landing{Position: entry}
	}
}

// teleport samples interior cells until it finds a Path or Exit cell. When
// every attempt misses the mover stays on the portal.
func teleport(grid *world.Grid, rng *rand.Rand, entry world.Position, attempts int) Landing {
	for i := 0; i < attempts; i++ {
		p := randomInterior(grid, rng)
		if k := grid.Kind(p); k == world.Path || k == world.Exit {
			return Landing{Position: p, Effect: EffectTeleport, Triggered: true, HintKey: HintPortal}
		}
	}
	return Landing{Position: entry, Effect: EffectTeleport}
}

// bounce pushes the mover further along its direction of travel by up to a
// random distance, stopping at the first wall.
func bounce(grid *world.Grid, rng *rand.Rand, from, entry world.Position) Landing {
	landing := Landing{Position: entry, Effect: EffectBounce, Triggered: true, HintKey: HintSpring}
	dr, dc := entry.Row-from.Row, entry.Col-from.Col
	if dr == 0 && dc == 0 {
		return landing
	}

	dist := minBounce + rng.Intn(maxBounce-minBounce+1)
	for i := 1; i <= dist; i++ {
		next := entry.Add(dr*i, dc*i)
		if !grid.IsWalkable(next) {
			break
		}
		landing.Position = next
	}
	return landing
}

// Shuffle flips up to flips random cells between Wall and Path. Cells are
// drawn from rows [2, rows-3] and cols [2, cols-3]; excluded cells and other
// tile kinds are left alone. Connectivity is not preserved: the exit may be
// cut off. Returns the number of cells flipped.
func Shuffle(grid *world.Grid, rng *rand.Rand, flips int, exclude ...world.Position) int {
	rowSpan := grid.Rows() - 4
	colSpan := grid.Cols() - 4
	if rowSpan < 1 || colSpan < 1 {
		return 0
	}

	skip := positionSet(exclude)
	flipped := 0
	for i := 0; i < flips; i++ {
		p := world.Pos(2+rng.Intn(rowSpan), 2+rng.Intn(colSpan))
		if skip.Has(p) {
			continue
		}
		switch grid.Kind(p) {
		case world.Wall:
			grid.SetKind(p, world.Path)
			flipped++
		case world.Path:
			grid.SetKind(p, world.Wall)
			flipped++
		}
	}
	return flipped
}

// randomInterior returns a uniformly random cell off the perimeter
func randomInterior(grid *world.Grid, rng *rand.Rand) world.Position {
	return world.Pos(1+rng.Intn(grid.Rows()-2), 1+rng.Intn(grid.Cols()-2))
}

func positionSet(ps []world.Position) mapset.Set[world.Position] {
	s := mapset.New[world.Position]()
	for _, p := range ps {
		s.Put(p)
	}
	return s
}
