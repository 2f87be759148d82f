package ebiten

import (
	"image/color"
	"regexp"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"crazymaze/pkg/game/renderer"
)

// textSegment represents a segment of text with a specific color
type textSegment struct {
	text  string
	color color.Color
}

var markupRegex = regexp.MustCompile(`([A-Z][A-Z0-9_]*)\{([^}]*)\}`)

// StyleText wraps text in markup that parseMarkup turns back into colours
func (e *EbitenRenderer) StyleText(s string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleAction, renderer.StyleActionShort:
		return "ACTION{" + s + "}"
	case renderer.StyleSubtle:
		return "SUBTLE{" + s + "}"
	case renderer.StyleHint:
		return "HINT{" + s + "}"
	case renderer.StyleDenied:
		return "DENIED{" + s + "}"
	case renderer.StyleSuccess:
		return "SUCCESS{" + s + "}"
	default:
		return s
	}
}

// parseMarkup splits a marked-up string into coloured segments
func parseMarkup(msg string) []textSegment {
	var segments []textSegment
	lastIndex := 0

	for _, match := range markupRegex.FindAllStringSubmatchIndex(msg, -1) {
		if match[0] > lastIndex {
			segments = append(segments, textSegment{text: msg[lastIndex:match[0]], color: colorText})
		}

		function := msg[match[2]:match[3]]
		content := msg[match[4]:match[5]]

		var segColor color.Color
		switch function {
		case "ACTION":
			segColor = colorPlayer
		case "SUBTLE":
			segColor = colorSubtle
		case "HINT":
			segColor = colorHint
		case "DENIED":
			segColor = colorDenied
		case "SUCCESS":
			segColor = colorSuccess
		default:
			segColor = colorText
		}

		segments = append(segments, textSegment{text: content, color: segColor})
		lastIndex = match[1]
	}

	if lastIndex < len(msg) {
		segments = append(segments, textSegment{text: msg[lastIndex:], color: colorText})
	}
	if len(segments) == 0 {
		segments = append(segments, textSegment{text: msg, color: colorText})
	}
	return segments
}

// drawColoredText draws text with a single colour at x, y (top-left)
func (e *EbitenRenderer) drawColoredText(screen *ebiten.Image, str string, x, y int, col color.Color) {
	e.drawColoredTextWithFace(screen, str, x, y, col, e.getUIFontFace())
}

// drawColoredTextWithFace draws text with a specific colour and font face
func (e *EbitenRenderer) drawColoredTextWithFace(screen *ebiten.Image, str string, x, y int, col color.Color, face *text.GoTextFace) {
	if e.fontSource == nil {
		ebitenutil.DebugPrintAt(screen, str, x, y)
		return
	}

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(col)
	text.Draw(screen, str, face, op)
}

// drawColoredTextSegments draws marked-up text, one colour per segment
func (e *EbitenRenderer) drawColoredTextSegments(screen *ebiten.Image, msg string, x, y int) {
	face := e.getUIFontFace()
	currentX := float64(x)

	for _, seg := range parseMarkup(msg) {
		if seg.text == "" {
			continue
		}
		e.drawColoredTextWithFace(screen, seg.text, int(currentX), y, seg.color, face)
		currentX += e.getTextWidthWithFace(seg.text, face)
	}
}

// drawCenteredText draws text horizontally centred on cx
func (e *EbitenRenderer) drawCenteredText(screen *ebiten.Image, str string, cx, y int, col color.Color, face *text.GoTextFace) {
	w := e.getTextWidthWithFace(str, face)
	e.drawColoredTextWithFace(screen, str, cx-int(w/2), y, col, face)
}

// getTextWidthWithFace returns the width of a string in pixels using the given font face.
// The debug font is 6 pixels per glyph.
func (e *EbitenRenderer) getTextWidthWithFace(str string, face *text.GoTextFace) float64 {
	if e.fontSource == nil {
		return float64(len([]rune(str)) * 6)
	}
	w, _ := text.Measure(str, face, 0)
	return w
}
