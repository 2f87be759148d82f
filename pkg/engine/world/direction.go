package world

// Direction is one of the four grid moves. Diagonals do not exist in a maze.
type Direction int

const (
	North Direction = iota
	East
	South
	West
)

type directionInfo struct {
	name     string
	dRow     int
	dCol     int
	opposite Direction
}

var directions = [...]directionInfo{
	North: {"North", -1, 0, South},
	East:  {"East", 0, 1, West},
	South: {"South", 1, 0, North},
	West:  {"West", 0, -1, East},
}

// AllDirections returns all valid directions for iteration
func AllDirections() []Direction {
	return []Direction{North, East, South, West}
}

func (d Direction) String() string {
	if !d.IsValid() {
		return "Unknown"
	}
	return directions[d].name
}

// IsValid reports whether d is one of the four constants
func (d Direction) IsValid() bool {
	return d >= North && d <= West
}

// Opposite returns the reverse move. Confused players steer with it.
// Invalid directions come back unchanged.
func (d Direction) Opposite() Direction {
	if !d.IsValid() {
		return d
	}
	return directions[d].opposite
}

// Delta returns the row and column offsets of one step, or 0,0 when invalid
func (d Direction) Delta() (rowDelta, colDelta int) {
	if !d.IsValid() {
		return 0, 0
	}
	info := directions[d]
	return info.dRow, info.dCol
}
