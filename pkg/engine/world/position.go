package world

import "fmt"

// Position is a (row, col) coordinate on a grid.
type Position struct {
	Row int
	Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Add returns the position offset by the given deltas.
func (p Position) Add(rowDelta, colDelta int) Position {
	return Position{Row: p.Row + rowDelta, Col: p.Col + colDelta}
}

// Step returns the adjacent position in the given direction.
func (p Position) Step(dir Direction) Position {
	dr, dc := dir.Delta()
	return p.Add(dr, dc)
}

// Manhattan returns the Manhattan distance between two positions.
func (p Position) Manhattan(o Position) int {
	return abs(p.Row-o.Row) + abs(p.Col-o.Col)
}

// String returns "row,col".
func (p Position) String() string {
	return fmt.Sprintf("%d,%d", p.Row, p.Col)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
