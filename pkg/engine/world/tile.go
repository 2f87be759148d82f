package world

// TileKind is the closed set of cell kinds a grid can hold.
type TileKind int

// Tile kinds. Portal, Spring and Slip are walkable special tiles that fire an
// effect when the player lands on them.
const (
	Wall TileKind = iota
	Path
	Exit
	Portal
	Spring
	Slip
)

// AllTileKinds returns every tile kind for iteration
func AllTileKinds() []TileKind {
	return []TileKind{Wall, Path, Exit, Portal, Spring, Slip}
}

// SpecialTileKinds returns the kinds that can be scattered onto path cells
func SpecialTileKinds() []TileKind {
	return []TileKind{Portal, Spring, Slip}
}

// Walkable reports whether a player or enemy may stand on the tile.
func (k TileKind) Walkable() bool {
	return k != Wall && k.IsValid()
}

// IsSpecial reports whether the tile carries an on-entry effect.
func (k TileKind) IsSpecial() bool {
	return k == Portal || k == Spring || k == Slip
}

// IsValid returns true for the known tile kinds
func (k TileKind) IsValid() bool {
	return k >= Wall && k <= Slip
}

// String returns the name of the tile kind
func (k TileKind) String() string {
	switch k {
	case Wall:
		return "Wall"
	case Path:
		return "Path"
	case Exit:
		return "Exit"
	case Portal:
		return "Portal"
	case Spring:
		return "Spring"
	case Slip:
		return "Slip"
	default:
		return "Unknown"
	}
}

// Symbol returns the single-character symbol used in text dumps.
func (k TileKind) Symbol() rune {
	switch k {
	case Wall:
		return '#'
	case Path:
		return '.'
	case Exit:
		return 'E'
	case Portal:
		return 'O'
	case Spring:
		return 'S'
	case Slip:
		return 'B'
	default:
		return '?'
	}
}
