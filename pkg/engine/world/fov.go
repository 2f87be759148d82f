package world

import (
	"github.com/zyedidia/generic/mapset"
)

// FOVRadius is the default sight radius in cells used for fog of war.
const FOVRadius = 6

// CalculateFOV returns the cells visible from center within radius.
// Uses a Chebyshev square with Bresenham line-of-sight; walls block vision but
// are themselves visible when they are the first thing a line hits.
func CalculateFOV(grid *Grid, center Position, radius int) mapset.Set[Position] {
	visible := mapset.New[Position]()
	if grid == nil || !grid.InBounds(center) {
		return visible
	}
	visible.Put(center)

	for dr := -radius; dr <= radius; dr++ {
		for dc := -radius; dc <= radius; dc++ {
			if chebyshevDist(dr, dc) > radius {
				continue
			}

			target := center.Add(dr, dc)
			if !grid.InBounds(target) {
				continue
			}

			if hasLineOfSight(grid, center, target) {
				visible.Put(target)
			}
		}
	}

	return visible
}

// chebyshevDist returns Chebyshev (chessboard) distance for (dr, dc).
func chebyshevDist(dr, dc int) int {
	if abs(dr) > abs(dc) {
		return abs(dr)
	}
	return abs(dc)
}

// hasLineOfSight returns true if nothing but the target itself blocks the
// Bresenham line from a to b.
func hasLineOfSight(grid *Grid, a, b Position) bool {
	dr := b.Row - a.Row
	dc := b.Col - a.Col
	if dr == 0 && dc == 0 {
		return true
	}

	absDr, absDc := abs(dr), abs(dc)
	stepR, stepC := sign(dr), sign(dc)
	r, c := a.Row, a.Col

	if absDr >= absDc {
		err := 2*absDc - absDr
		for r != b.Row {
			r += stepR
			if err > 0 {
				c += stepC
				err -= 2 * absDr
			}
			err += 2 * absDc

			if r == b.Row && c == b.Col {
				return true
			}
			if !grid.IsWalkable(Position{Row: r, Col: c}) {
				return false
			}
		}
	} else {
		err := 2*absDr - absDc
		for c != b.Col {
			c += stepC
			if err > 0 {
				r += stepR
				err -= 2 * absDc
			}
			err += 2 * absDr

			if r == b.Row && c == b.Col {
				return true
			}
			if !grid.IsWalkable(Position{Row: r, Col: c}) {
				return false
			}
		}
	}

	return true
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	default:
		return 0
	}
}
