package world

import (
	"github.com/zyedidia/generic/mapset"
)

// Unreachable marks cells that BFS never reached in a distance table.
const Unreachable = -1

// bfsOrder is the neighbour visit order used by every breadth-first search.
// Farthest relies on it for its tie-break.
var bfsOrder = []Direction{South, North, East, West}

// Distances returns the BFS distance from start to every cell, travelling over
// walkable cells only. Cells that cannot be reached hold Unreachable.
// The start cell itself is always distance 0, even if it is a wall.
func Distances(grid *Grid, start Position) [][]int {
	dist := make([][]int, grid.Rows())
	for row := range dist {
		dist[row] = make([]int, grid.Cols())
		for col := range dist[row] {
			dist[row][col] = Unreachable
		}
	}
	if !grid.InBounds(start) {
		return dist
	}

	dist[start.Row][start.Col] = 0
	queue := []Position{start}
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range bfsOrder {
			n := current.Step(dir)
			if !grid.IsWalkable(n) || dist[n.Row][n.Col] != Unreachable {
				continue
			}
			dist[n.Row][n.Col] = dist[current.Row][current.Col] + 1
			queue = append(queue, n)
		}
	}
	return dist
}

// Farthest returns the reachable cell with the greatest BFS distance from start.
// The candidate is replaced only on a strictly greater distance, so among cells
// sharing the maximum the one discovered first is kept.
func Farthest(grid *Grid, start Position) Position {
	if !grid.InBounds(start) {
		return start
	}

	dist := make(map[Position]int)
	dist[start] = 0
	far := start
	queue := []Position{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range bfsOrder {
			n := current.Step(dir)
			if !grid.IsWalkable(n) {
				continue
			}
			if _, seen := dist[n]; seen {
				continue
			}
			dist[n] = dist[current] + 1
			queue = append(queue, n)
			if dist[n] > dist[far] {
				far = n
			}
		}
	}
	return far
}

// ReachableFrom collects every walkable cell reachable from start via N/E/S/W.
func ReachableFrom(grid *Grid, start Position) mapset.Set[Position] {
	reachable := mapset.New[Position]()
	if !grid.IsWalkable(start) {
		return reachable
	}

	queue := []Position{start}
	reachable.Put(start)
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range bfsOrder {
			n := current.Step(dir)
			if grid.IsWalkable(n) && !reachable.Has(n) {
				reachable.Put(n)
				queue = append(queue, n)
			}
		}
	}
	return reachable
}

// IsConnected reports whether every walkable cell is reachable from start
func IsConnected(grid *Grid, start Position) bool {
	walkable := 0
	grid.ForEachCell(func(_ Position, kind TileKind) {
		if kind.Walkable() {
			walkable++
		}
	})
	return ReachableFrom(grid, start).Size() == walkable
}

// ShortestNextStep returns the first step of a shortest walkable path from
// `from` to `to`. It returns false when the two positions coincide or when no
// path exists. The search is recomputed on every call so it always reflects
// the current grid.
func ShortestNextStep(grid *Grid, from, to Position) (Position, bool) {
	if from == to || !grid.InBounds(from) || !grid.IsWalkable(to) {
		return from, false
	}

	parent := map[Position]Position{from: from}
	queue := []Position{from}
	found := false

	for len(queue) > 0 && !found {
		current := queue[0]
		queue = queue[1:]

		for _, dir := range bfsOrder {
			n := current.Step(dir)
			if !grid.IsWalkable(n) {
				continue
			}
			if _, seen := parent[n]; seen {
				continue
			}
			parent[n] = current
			if n == to {
				found = true
				break
			}
			queue = append(queue, n)
		}
	}

	if !found {
		return from, false
	}

	// Walk back from the target until the cell whose parent is the origin.
	step := to
	for parent[step] != from {
		step = parent[step]
	}
	return step, true
}
