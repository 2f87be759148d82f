package generator

import (
	"math/rand"
	"testing"

	"crazymaze/pkg/engine/world"
)

func newTestGenerator(seed int64) *Backtracker {
	return NewBacktracker(rand.New(rand.NewSource(seed)))
}

func TestNormalizeDimension(t *testing.T) {
	tests := []struct{ in, want int }{
		{30, 31},
		{31, 31},
		{4, 5},
		{2, 3},
		{0, 3},
		{-7, 3},
	}
	for _, tt := range tests {
		if got := NormalizeDimension(tt.in); got != tt.want {
			t.Errorf("NormalizeDimension(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestGenerate_Dimensions(t *testing.T) {
	g := newTestGenerator(1)

	grid := g.Generate(30, 40, 0)
	if grid.Rows() != 31 || grid.Cols() != 41 {
		t.Errorf("Generate(30, 40) size = %dx%d, want 31x41", grid.Rows(), grid.Cols())
	}

	grid = g.Generate(31, 41, 0)
	if grid.Rows() != 31 || grid.Cols() != 41 {
		t.Errorf("Generate(31, 41) size = %dx%d, want 31x41", grid.Rows(), grid.Cols())
	}
}

func TestGenerate_Connected(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		g := newTestGenerator(seed)
		grid := g.Generate(21, 31, 60)
		if !world.IsConnected(grid, world.StartPosition) {
			t.Fatalf("seed %d: not every walkable cell is reachable from the start", seed)
		}
		if grid.Kind(world.StartPosition) != world.Path {
			t.Fatalf("seed %d: start cell is %v, want Path", seed, grid.Kind(world.StartPosition))
		}
	}
}

func TestGenerate_PerfectMazeCarvesEveryLatticeCell(t *testing.T) {
	g := newTestGenerator(7)
	grid := g.Generate(11, 15, 0)

	lattice := 5 * 7
	// A spanning tree over n lattice cells has n-1 connecting cells
	want := lattice + lattice - 1
	if got := grid.Count(world.Path); got != want {
		t.Errorf("Path cells = %d, want %d", got, want)
	}
	for row := 1; row < grid.Rows(); row += 2 {
		for col := 1; col < grid.Cols(); col += 2 {
			if grid.Kind(world.Pos(row, col)) != world.Path {
				t.Errorf("lattice cell %d,%d not carved", row, col)
			}
		}
	}
}

func TestGenerate_BorderSealed(t *testing.T) {
	g := newTestGenerator(3)
	grid := g.Generate(15, 15, 500)

	grid.ForEachCell(func(p world.Position, kind world.TileKind) {
		if grid.IsOnPerimeter(p) && kind != world.Wall {
			t.Errorf("border cell %v is %v, want Wall", p, kind)
		}
	})
}

func TestGenerate_BraidingAddsCycles(t *testing.T) {
	perfect := newTestGenerator(5).Generate(31, 41, 0).Count(world.Path)
	braided := newTestGenerator(5).Generate(31, 41, 120)

	if got := braided.Count(world.Path); got <= perfect {
		t.Errorf("braided maze has %d path cells, want more than %d", got, perfect)
	}
	if !world.IsConnected(braided, world.StartPosition) {
		t.Error("braided maze lost connectivity")
	}
}

func TestGenerate_SmallSeededScenario(t *testing.T) {
	grid := newTestGenerator(42).Generate(5, 5, 0)
	if !world.IsConnected(grid, world.StartPosition) {
		t.Fatal("5x5 maze is not connected")
	}

	exit := world.Farthest(grid, world.StartPosition)
	dist := world.Distances(grid, world.StartPosition)
	best := dist[exit.Row][exit.Col]
	grid.ForEachCell(func(p world.Position, kind world.TileKind) {
		if kind.Walkable() && dist[p.Row][p.Col] > best {
			t.Errorf("cell %v at distance %d is farther than exit %v at %d", p, dist[p.Row][p.Col], exit, best)
		}
	})

	grid.SetExit(exit)
	if !world.IsConnected(grid, world.StartPosition) {
		t.Error("placing the exit broke connectivity")
	}
	if err := grid.Validate(); err != nil {
		t.Errorf("Validate() = %v", err)
	}
}

func TestGenerate_ReproducibleWithSeed(t *testing.T) {
	a := newTestGenerator(99).Generate(21, 21, 40).String()
	b := newTestGenerator(99).Generate(21, 21, 40).String()
	if a != b {
		t.Error("same seed produced different mazes")
	}
}
