// Package world provides generic 2D grid-based maze primitives.
// These are engine-level constructs shared by the generator, the tile effects
// and the pursuit logic.
package world

import (
	"errors"
	"fmt"
	"strings"
)

// StartPosition is the fixed start cell of every maze.
var StartPosition = Position{Row: 1, Col: 1}

// Grid errors returned by Validate
var (
	ErrInvalidDimensions = errors.New("grid has invalid dimensions")
	ErrNoExit            = errors.New("grid has no exit cell")
)

// Grid represents the maze as a rows x cols array of tile kinds
type Grid struct {
	cells [][]TileKind
	rows  int
	cols  int

	exit    Position
	hasExit bool
}

// NewGrid creates a new grid with the given dimensions, every cell a Wall.
// Dimensions should already be normalized by the caller.
func NewGrid(rows, cols int) *Grid {
	g := &Grid{}
	g.Build(rows, cols)
	return g
}

// Build initializes the grid with the given dimensions
func (g *Grid) Build(rows, cols int) {
	if rows <= 0 || cols <= 0 {
		panic("Grid dimensions must be positive")
	}

	g.rows = rows
	g.cols = cols
	g.hasExit = false
	g.exit = Position{}

	g.cells = make([][]TileKind, rows)
	for row := range g.cells {
		g.cells[row] = make([]TileKind, cols)
		for col := range g.cells[row] {
			g.cells[row][col] = Wall
		}
	}
}

// Rows returns the number of rows in the grid
func (g *Grid) Rows() int {
	return g.rows
}

// Cols returns the number of columns in the grid
func (g *Grid) Cols() int {
	return g.cols
}

// Start returns the start position
func (g *Grid) Start() Position {
	return StartPosition
}

// Exit returns the exit position and whether one has been placed
func (g *Grid) Exit() (Position, bool) {
	return g.exit, g.hasExit
}

// InBounds checks if a position is within grid bounds
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// IsPlayable checks if a position is within the playable area (not on the perimeter)
func (g *Grid) IsPlayable(p Position) bool {
	return p.Row >= 1 && p.Row < g.rows-1 && p.Col >= 1 && p.Col < g.cols-1
}

// IsOnPerimeter checks if a position is on the edge of the grid
func (g *Grid) IsOnPerimeter(p Position) bool {
	return g.InBounds(p) && !g.IsPlayable(p)
}

// Kind returns the tile kind at p. Out of bounds positions read as Wall.
func (g *Grid) Kind(p Position) TileKind {
	if !g.InBounds(p) {
		return Wall
	}
	return g.cells[p.Row][p.Col]
}

// IsWalkable reports whether p is in bounds and not a Wall
func (g *Grid) IsWalkable(p Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col].Walkable()
}

// SetKind sets the tile kind at p. Returns false if out of bounds.
// Writing Exit this way does not move the exit marker; use SetExit.
func (g *Grid) SetKind(p Position, kind TileKind) bool {
	if !g.InBounds(p) || !kind.IsValid() {
		return false
	}
	if g.hasExit && p == g.exit && kind != Exit {
		g.hasExit = false
	}
	g.cells[p.Row][p.Col] = kind
	return true
}

// SetExit marks p as the single exit cell. A previously placed exit reverts to Path.
// Returns false if out of bounds.
func (g *Grid) SetExit(p Position) bool {
	if !g.InBounds(p) {
		return false
	}
	if g.hasExit && g.exit != p {
		g.cells[g.exit.Row][g.exit.Col] = Path
	}
	g.cells[p.Row][p.Col] = Exit
	g.exit = p
	g.hasExit = true
	return true
}

// ForEachCell iterates over all cells in row-major order
func (g *Grid) ForEachCell(fn func(p Position, kind TileKind)) {
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			fn(Position{Row: row, Col: col}, g.cells[row][col])
		}
	}
}

// Count returns the number of cells holding the given kind
func (g *Grid) Count(kind TileKind) int {
	n := 0
	g.ForEachCell(func(_ Position, k TileKind) {
		if k == kind {
			n++
		}
	})
	return n
}

// Clone returns a deep copy of the grid
func (g *Grid) Clone() *Grid {
	c := &Grid{
		rows:    g.rows,
		cols:    g.cols,
		exit:    g.exit,
		hasExit: g.hasExit,
		cells:   make([][]TileKind, g.rows),
	}
	for row := range g.cells {
		c.cells[row] = make([]TileKind, g.cols)
		copy(c.cells[row], g.cells[row])
	}
	return c
}

// Validate checks the grid for common issues
func (g *Grid) Validate() error {
	if g.rows < 3 || g.cols < 3 {
		return ErrInvalidDimensions
	}

	if g.Kind(StartPosition) == Wall {
		return fmt.Errorf("start cell %v is a wall", StartPosition)
	}

	if !g.hasExit {
		return ErrNoExit
	}

	if exits := g.Count(Exit); exits != 1 {
		return fmt.Errorf("grid has %d exit cells, want 1", exits)
	}

	return nil
}

// String renders the grid as text, one row per line
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for row := 0; row < g.rows; row++ {
		for col := 0; col < g.cols; col++ {
			b.WriteRune(g.cells[row][col].Symbol())
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// ParseGrid builds a grid from the text produced by String.
// Lines must all have the same width.
func ParseGrid(s string) (*Grid, error) {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) == 0 || len(lines[0]) == 0 {
		return nil, ErrInvalidDimensions
	}

	g := NewGrid(len(lines), len(lines[0]))
	for row, line := range lines {
		if len(line) != g.cols {
			return nil, fmt.Errorf("row %d has width %d, want %d", row, len(line), g.cols)
		}
		for col, r := range line {
			kind, ok := kindForSymbol(r)
			if !ok {
				return nil, fmt.Errorf("unknown symbol %q at %d,%d", r, row, col)
			}
			p := Position{Row: row, Col: col}
			if kind == Exit {
				g.SetExit(p)
				continue
			}
			g.cells[row][col] = kind
		}
	}
	return g, nil
}

func kindForSymbol(r rune) (TileKind, bool) {
	for _, k := range AllTileKinds() {
		if k.Symbol() == r {
			return k, true
		}
	}
	return Wall, false
}
