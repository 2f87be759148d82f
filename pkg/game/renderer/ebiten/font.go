package ebiten

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/examples/resources/fonts"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
)

// loadFontSource parses the bundled M+ font, which also covers CJK glyphs
func loadFontSource() (*text.GoTextFaceSource, error) {
	return text.NewGoTextFaceSource(bytes.NewReader(fonts.MPlus1pRegular_ttf))
}

// getUIFontSize returns the font size for UI text, scaled to the tile size
func (e *EbitenRenderer) getUIFontSize() float64 {
	size := baseFontSize * float64(e.tileSize) / float64(defaultTileSize)
	if size < 12 {
		size = 12
	}
	if size > 24 {
		size = 24
	}
	return size
}

// getUIFontFace returns a cached font face for UI text
func (e *EbitenRenderer) getUIFontFace() *text.GoTextFace {
	size := e.getUIFontSize()
	if e.cachedUIFace == nil || e.cachedUIFontSize != size {
		e.cachedUIFontSize = size
		e.cachedUIFace = &text.GoTextFace{
			Source: e.fontSource,
			Size:   size,
		}
	}
	return e.cachedUIFace
}

// getBannerFontFace returns a cached face twice the UI size for the outcome banner
func (e *EbitenRenderer) getBannerFontFace() *text.GoTextFace {
	size := e.getUIFontSize() * 2
	if e.cachedBannerFace == nil || e.cachedBannerFontSiz != size {
		e.cachedBannerFontSiz = size
		e.cachedBannerFace = &text.GoTextFace{
			Source: e.fontSource,
			Size:   size,
		}
	}
	return e.cachedBannerFace
}
