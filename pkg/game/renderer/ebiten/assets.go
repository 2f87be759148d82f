package ebiten

import (
	"errors"
	_ "image/png"
	"io/fs"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	log "github.com/sirupsen/logrus"
)

// Sprite names looked up in the asset directory as <name>.png
const (
	SpriteWall   = "wall"
	SpritePlayer = "player"
	SpriteEnemy  = "enemy"
	SpriteGoal   = "goal"
)

// AssetProvider holds the optional sprite images. Missing sprites are drawn
// as plain shapes instead.
type AssetProvider struct {
	images map[string]*ebiten.Image
}

// LoadAssets reads every known sprite from dir. A sprite that is missing or
// fails to decode is skipped.
func LoadAssets(dir string) *AssetProvider {
	a := &AssetProvider{images: make(map[string]*ebiten.Image)}
	for _, name := range []string{SpriteWall, SpritePlayer, SpriteEnemy, SpriteGoal} {
		path := filepath.Join(dir, name+".png")
		img, _, err := ebitenutil.NewImageFromFile(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				log.WithField("path", path).Debug("sprite not found, using shapes")
			} else {
				log.WithError(err).WithField("path", path).Warn("sprite failed to load")
			}
			continue
		}
		a.images[name] = img
	}
	return a
}

// Get returns the sprite for name, or nil
func (a *AssetProvider) Get(name string) *ebiten.Image {
	if a == nil {
		return nil
	}
	return a.images[name]
}

// drawSprite draws img scaled to a size x size square centred on cx, cy
func drawSprite(screen, img *ebiten.Image, cx, cy, size float64) {
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(size/float64(b.Dx()), size/float64(b.Dy()))
	op.GeoM.Translate(cx-size/2, cy-size/2)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}
