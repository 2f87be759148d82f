package ebiten

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/zyedidia/generic/mapset"

	"crazymaze/pkg/engine/world"
	"crazymaze/pkg/game/entities"
	"crazymaze/pkg/game/renderer"
	"crazymaze/pkg/game/state"
)

// mapLayout is where the current frame puts the grid on screen
type mapLayout struct {
	x, y int
	tile int
}

// cellOrigin returns the top-left pixel of a (possibly fractional) cell
func (l mapLayout) cellOrigin(row, col float64) (float32, float32) {
	return float32(float64(l.x) + col*float64(l.tile)), float32(float64(l.y) + row*float64(l.tile))
}

// cellCenter returns the centre pixel of a (possibly fractional) cell
func (l mapLayout) cellCenter(row, col float64) (float64, float64) {
	x, y := l.cellOrigin(row, col)
	half := float64(l.tile) / 2
	return float64(x) + half, float64(y) + half
}

// Draw renders the game to the screen (Ebiten interface)
func (e *EbitenRenderer) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	e.snapshotMutex.RLock()
	snap := e.snapshot
	valid := e.hasSnapshot && snap.Grid != nil
	var playerRow, playerCol, enemyRow, enemyCol float64
	if valid {
		playerRow, playerCol = e.playerSlide.at()
		enemyRow, enemyCol = e.enemySlide.at()
	}
	e.snapshotMutex.RUnlock()

	if !valid {
		return
	}

	screenWidth, screenHeight := screen.Bounds().Dx(), screen.Bounds().Dy()
	uiFontSize := int(e.getUIFontSize())
	headerHeight := uiFontSize*2 + 20
	footerHeight := uiFontSize*2 + 20

	e.tileSize = fitTileSize(screenWidth-mapMargin*2, screenHeight-headerHeight-footerHeight-mapMargin*2,
		snap.Grid.Rows(), snap.Grid.Cols())

	mapW := snap.Grid.Cols() * e.tileSize
	mapH := snap.Grid.Rows() * e.tileSize
	layout := mapLayout{
		x:    (screenWidth - mapW) / 2,
		y:    headerHeight + mapMargin,
		tile: e.tileSize,
	}

	vector.DrawFilledRect(screen, float32(layout.x-mapMargin/2), float32(layout.y-mapMargin/2),
		float32(mapW+mapMargin), float32(mapH+mapMargin), colorMapBackground, false)

	var visible mapset.Set[world.Position]
	fogged := e.cfg.Fog && !snap.Won
	if fogged {
		visible = world.CalculateFOV(snap.Grid, snap.Player, world.FOVRadius)
	}
	isVisible := func(p world.Position) bool {
		return !fogged || visible.Has(p)
	}

	e.drawMap(screen, snap, layout, isVisible)

	if snap.HasEnemy && isVisible(snap.Enemy) {
		e.drawEnemy(screen, layout, enemyRow, enemyCol)
	}
	e.drawPlayer(screen, layout, playerRow, playerCol, snap.Effect)

	e.drawHeader(screen, snap, screenWidth)
	e.drawFooter(screen, screenHeight, footerHeight)

	if snap.Won || snap.Lost {
		e.drawBanner(screen, snap, screenWidth, screenHeight)
	}
}

// fitTileSize returns the largest tile size that fits rows x cols into the
// available area, clamped to the supported range.
func fitTileSize(availW, availH, rows, cols int) int {
	if rows <= 0 || cols <= 0 {
		return defaultTileSize
	}
	size := availW / cols
	if h := availH / rows; h < size {
		size = h
	}
	if size < minTileSize {
		size = minTileSize
	}
	if size > maxTileSize {
		size = maxTileSize
	}
	return size
}

func (e *EbitenRenderer) drawMap(screen *ebiten.Image, snap state.Snapshot, layout mapLayout, isVisible func(world.Position) bool) {
	tile := float32(layout.tile)
	wallSprite := e.assets.Get(SpriteWall)
	goalSprite := e.assets.Get(SpriteGoal)

	snap.Grid.ForEachCell(func(p world.Position, kind world.TileKind) {
		x, y := layout.cellOrigin(float64(p.Row), float64(p.Col))
		if !isVisible(p) {
			vector.DrawFilledRect(screen, x, y, tile, tile, colorFog, false)
			return
		}

		cx, cy := layout.cellCenter(float64(p.Row), float64(p.Col))
		switch kind {
		case world.Wall:
			if wallSprite != nil {
				drawSprite(screen, wallSprite, cx, cy, float64(tile))
				return
			}
			vector.DrawFilledRect(screen, x, y, tile, tile, colorWall, false)
			vector.StrokeRect(screen, x+0.5, y+0.5, tile-1, tile-1, 1, colorWallEdge, false)
			return
		case world.Exit:
			vector.DrawFilledRect(screen, x, y, tile, tile, colorFloor, false)
			if goalSprite != nil {
				drawSprite(screen, goalSprite, cx, cy, float64(tile))
				return
			}
			margin := tile * 0.1
			vector.DrawFilledRect(screen, x+margin, y+margin, tile-margin*2, tile-margin*2, getPulsingExitColor(), false)
			return
		}

		vector.DrawFilledRect(screen, x, y, tile, tile, colorFloor, false)
		if c, ok := specialTileColor(kind); ok {
			vector.DrawFilledCircle(screen, float32(cx), float32(cy), tile*0.3, c, true)
		}
	})
}

func specialTileColor(kind world.TileKind) (color.Color, bool) {
	switch kind {
	case world.Portal:
		return colorPortal, true
	case world.Spring:
		return colorSpring, true
	case world.Slip:
		return colorSlip, true
	}
	return nil, false
}

// playerStyle returns the radius multiplier and colour for an effect
func playerStyle(effect entities.EffectKind) (float64, color.Color) {
	switch effect {
	case entities.EffectBig:
		return scaleBig, colorPlayer
	case entities.EffectSmall:
		return scaleSmall, colorPlayer
	case entities.EffectSpeed:
		return scaleNormal, colorPlayerSpeed
	case entities.EffectConfused:
		return scaleNormal, colorPlayerConfuse
	default:
		return scaleNormal, colorPlayer
	}
}

func (e *EbitenRenderer) drawPlayer(screen *ebiten.Image, layout mapLayout, row, col float64, effect entities.EffectKind) {
	scale, c := playerStyle(effect)
	cx, cy := layout.cellCenter(row, col)
	size := float64(layout.tile) * scale

	if sprite := e.assets.Get(SpritePlayer); sprite != nil {
		drawSprite(screen, sprite, cx, cy, size)
		return
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(size/2), c, true)
}

func (e *EbitenRenderer) drawEnemy(screen *ebiten.Image, layout mapLayout, row, col float64) {
	cx, cy := layout.cellCenter(row, col)
	size := float64(layout.tile) * scaleNormal

	if sprite := e.assets.Get(SpriteEnemy); sprite != nil {
		drawSprite(screen, sprite, cx, cy, size)
		return
	}
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(size/2), colorEnemy, true)
}

// drawHeader draws the title, timer, step counter and active effect
func (e *EbitenRenderer) drawHeader(screen *ebiten.Image, snap state.Snapshot, screenWidth int) {
	line := e.StyleText(renderer.Translate("TITLE"), renderer.StyleAction) + "   " + renderer.StatusLine(snap)
	if effect := renderer.EffectLine(snap); effect != "" {
		line += "   " + e.StyleText(effect, renderer.StyleHint)
	}
	e.drawColoredTextSegments(screen, line, mapMargin, 10)

	if hint := renderer.HintLine(snap); hint != "" {
		face := e.getUIFontFace()
		e.drawCenteredText(screen, hint, screenWidth/2, 10+int(face.Size)+6, colorHint, face)
	}
}

// drawFooter draws the key help
func (e *EbitenRenderer) drawFooter(screen *ebiten.Image, screenHeight, footerHeight int) {
	y := screenHeight - footerHeight + 10
	e.drawColoredTextSegments(screen, renderer.HelpLine(e), mapMargin, y)
}

// drawBanner darkens the map and shows the outcome
func (e *EbitenRenderer) drawBanner(screen *ebiten.Image, snap state.Snapshot, screenWidth, screenHeight int) {
	vector.DrawFilledRect(screen, 0, 0, float32(screenWidth), float32(screenHeight), colorOverlay, false)

	c := colorSuccess
	if snap.Lost {
		c = colorDenied
	}
	face := e.getBannerFontFace()
	e.drawCenteredText(screen, renderer.Banner(snap), screenWidth/2, screenHeight/2-int(face.Size), c, face)
}
