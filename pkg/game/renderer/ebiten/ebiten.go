package ebiten

import (
	"github.com/hajimehoshi/ebiten/v2"
	log "github.com/sirupsen/logrus"

	"crazymaze/pkg/game/config"
	"crazymaze/pkg/game/gameplay"
	"crazymaze/pkg/game/renderer"
	"crazymaze/pkg/game/state"
)

// New creates a new Ebiten renderer driving runner
func New(runner *gameplay.Runner, cfg config.Config) *EbitenRenderer {
	return &EbitenRenderer{
		runner:       runner,
		cfg:          cfg,
		windowWidth:  1024,
		windowHeight: 768,
		tileSize:     defaultTileSize,
	}
}

// Init loads the font and sprites
func (e *EbitenRenderer) Init() error {
	src, err := loadFontSource()
	if err != nil {
		log.WithError(err).Warn("font failed to load, using debug font")
	} else {
		e.fontSource = src
	}
	e.assets = LoadAssets(e.cfg.AssetDir)
	return nil
}

// Render stores the snapshot drawn by the next Draw call
func (e *EbitenRenderer) Render(snap state.Snapshot) {
	e.snapshotMutex.Lock()
	defer e.snapshotMutex.Unlock()

	if !e.hasSnapshot || e.snapshot.SessionID != snap.SessionID {
		e.playerSlide = newSlide(snap.Player)
		e.enemySlide = newSlide(snap.Enemy)
	} else {
		e.playerSlide.moveTo(snap.Player)
		e.enemySlide.moveTo(snap.Enemy)
	}
	e.snapshot = snap
	e.hasSnapshot = true
}

// Close releases nothing; Ebiten tears the window down itself
func (e *EbitenRenderer) Close() {
	log.Debug("window closed")
}

// Layout returns the game's logical screen size (Ebiten interface)
func (e *EbitenRenderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		e.windowWidth, e.windowHeight = outsideWidth, outsideHeight
	}
	return e.windowWidth, e.windowHeight
}

// Run opens the window and blocks until it is closed or a quit intent arrives
func (e *EbitenRenderer) Run() error {
	if err := e.Init(); err != nil {
		return err
	}
	defer e.Close()

	ebiten.SetWindowSize(e.windowWidth, e.windowHeight)
	ebiten.SetWindowTitle(renderer.Translate("TITLE"))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(e.cfg.TickRate)

	e.Render(e.runner.Snapshot())
	return ebiten.RunGame(e)
}

var _ renderer.Renderer = (*EbitenRenderer)(nil)
