// Package ebiten provides an Ebiten-based 2D graphical renderer for Crazy Maze.
package ebiten

import "image/color"

// Color palette for the game
var (
	colorBackground    = color.RGBA{26, 26, 46, 255}    // Dark blue-gray
	colorMapBackground = color.RGBA{15, 15, 26, 255}    // Darker for map area
	colorWall          = color.RGBA{60, 60, 80, 255}    // Wall block
	colorWallEdge      = color.RGBA{90, 90, 115, 255}   // Wall outline
	colorFloor         = color.RGBA{160, 160, 180, 255} // Open path
	colorFog           = color.RGBA{20, 20, 34, 255}    // Cells outside sight
	colorPlayer        = color.RGBA{0, 255, 0, 255}     // Bright green
	colorPlayerSpeed   = color.RGBA{255, 165, 0, 255}   // Orange while sped up
	colorPlayerConfuse = color.RGBA{180, 90, 255, 255}  // Purple while confused
	colorEnemy         = color.RGBA{255, 80, 80, 255}   // Bright red
	colorExit          = color.RGBA{100, 255, 100, 255} // Bright green
	colorPortal        = color.RGBA{100, 220, 255, 255} // Cyan
	colorSpring        = color.RGBA{255, 220, 100, 255} // Yellow
	colorSlip          = color.RGBA{100, 150, 255, 255} // Blue
	colorSubtle        = color.RGBA{120, 130, 180, 255} // Soft blue-purple-gray
	colorText          = color.RGBA{200, 210, 245, 255} // Soft off-white with blue-purple tint
	colorHint          = color.RGBA{255, 220, 100, 255} // Yellow for hints
	colorSuccess       = color.RGBA{100, 255, 150, 255} // Green for the win banner
	colorDenied        = color.RGBA{255, 100, 100, 255} // Red for the loss banner
	colorOverlay       = color.RGBA{0, 0, 0, 160}       // Darkens the map behind the banner
)

// Tile size constraints
const (
	minTileSize     = 8
	maxTileSize     = 48
	defaultTileSize = 20
	baseFontSize    = 16.0
	mapMargin       = 20
)

// Player radius multipliers per effect
const (
	scaleNormal = 0.8
	scaleBig    = 1.5
	scaleSmall  = 0.6
)

// Seconds a sprite takes to slide one cell
const slideSeconds = 0.08
