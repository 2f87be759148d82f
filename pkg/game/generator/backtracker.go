package generator

import (
	"math/rand"

	"github.com/zyedidia/generic/mapset"

	"crazymaze/pkg/engine/world"
)

// carveOrder is the order lattice neighbours are collected in before one is
// picked at random. Keeping it fixed makes seeded output reproducible.
var carveOrder = []world.Direction{world.North, world.South, world.West, world.East}

// Backtracker carves a perfect maze with a randomized depth-first search over
// the odd lattice, then braids it by knocking out extra walls.
type Backtracker struct {
	rng *rand.Rand
}

// NewBacktracker creates a backtracker that draws from rng
func NewBacktracker(rng *rand.Rand) *Backtracker {
	return &Backtracker{rng: rng}
}

// Name returns the name of this generator
func (g *Backtracker) Name() string {
	return "Recursive Backtracker"
}

// Generate creates a new maze. Dimensions are normalized to odd values of at
// least 3. Every walkable cell is reachable from the start cell.
func (g *Backtracker) Generate(rows, cols, extraPassages int) *world.Grid {
	rows = NormalizeDimension(rows)
	cols = NormalizeDimension(cols)
	grid := world.NewGrid(rows, cols)

	g.carve(grid)
	g.braid(grid, extraPassages)
	return grid
}

// carve runs the iterative backtracker from the start cell. Carved cells form
// a spanning tree over the lattice so the result is connected.
func (g *Backtracker) carve(grid *world.Grid) {
	start := world.StartPosition
	visited := mapset.New[world.Position]()
	visited.Put(start)
	grid.SetKind(start, world.Path)
	stack := []world.Position{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]

		var candidates []world.Direction
		for _, dir := range carveOrder {
			next := latticeStep(current, dir)
			if grid.InBounds(next) && !visited.Has(next) {
				candidates = append(candidates, dir)
			}
		}

		if len(candidates) == 0 {
			stack = stack[:len(stack)-1]
			continue
		}

		dir := candidates[g.rng.Intn(len(candidates))]
		next := latticeStep(current, dir)
		grid.SetKind(current.Step(dir), world.Path)
		grid.SetKind(next, world.Path)
		visited.Put(next)
		stack = append(stack, next)
	}
}

// braid opens extra passages next to random lattice cells. Only edges are
// added so connectivity is preserved, and the outer border is never touched.
func (g *Backtracker) braid(grid *world.Grid, extraPassages int) {
	rows, cols := grid.Rows(), grid.Cols()
	latticeRows := (rows - 1) / 2
	latticeCols := (cols - 1) / 2

	for i := 0; i < extraPassages; i++ {
		cell := world.Pos(1+2*g.rng.Intn(latticeRows), 1+2*g.rng.Intn(latticeCols))
		dir := world.AllDirections()[g.rng.Intn(4)]
		target := cell.Step(dir)
		if grid.IsPlayable(target) {
			grid.SetKind(target, world.Path)
		}
	}
}

func latticeStep(p world.Position, dir world.Direction) world.Position {
	dr, dc := dir.Delta()
	return p.Add(2*dr, 2*dc)
}
