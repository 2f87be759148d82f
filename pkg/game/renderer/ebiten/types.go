package ebiten

import (
	"sync"

	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"crazymaze/pkg/game/config"
	"crazymaze/pkg/game/gameplay"
	"crazymaze/pkg/game/state"
)

// EbitenRenderer is the Ebiten-based graphical renderer. It owns the game
// loop: Update drives the Runner and Draw reads the latest snapshot.
type EbitenRenderer struct {
	runner *gameplay.Runner
	cfg    config.Config

	// Window dimensions
	windowWidth  int
	windowHeight int

	// Tile size for rendering, refitted to the window every frame
	tileSize int

	// Font source for all text; nil falls back to the debug font
	fontSource *text.GoTextFaceSource

	// Cached font faces (recreated when tile size changes)
	cachedUIFontSize    float64
	cachedUIFace        *text.GoTextFace
	cachedBannerFace    *text.GoTextFace
	cachedBannerFontSiz float64

	// Optional sprites
	assets *AssetProvider

	// Latest snapshot
	snapshot      state.Snapshot
	hasSnapshot   bool
	snapshotMutex sync.RWMutex

	// Sliding sprites between cells
	playerSlide *slide
	enemySlide  *slide

	// Flag to track if we've logged window opening
	windowOpenedLogged bool
}
