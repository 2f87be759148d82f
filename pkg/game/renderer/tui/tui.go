// Package tui draws the maze in a terminal with ANSI colours.
package tui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/gookit/color"
	"github.com/zyedidia/generic/mapset"

	"crazymaze/pkg/engine/terminal"
	"crazymaze/pkg/engine/world"
	"crazymaze/pkg/game/entities"
	"crazymaze/pkg/game/renderer"
	"crazymaze/pkg/game/state"
)

// Icon constants for the maze
const (
	PlayerIcon      = "@"
	PlayerIconBig   = "█"
	PlayerIconSmall = "·"
	EnemyIcon       = "X"
	IconWall        = "▒"
	IconPath        = " "
	IconExit        = "▲"
	IconPortal      = "◎"
	IconSpring      = "◆"
	IconSlip        = "░"
	IconFog         = "╌"
)

// Lines drawn around the map: title, hint, blank, blank, banner, help.
const frameChrome = 6

// TUIRenderer is the terminal-based renderer implementation
type TUIRenderer struct {
	out     io.Writer
	fog     bool
	restore func()

	colorWall      color.Style
	colorPath      color.Style
	colorExit      color.Style
	colorPortal    color.Style
	colorSpring    color.Style
	colorSlip      color.Style
	colorPlayer    color.Style
	colorEnemy     color.Style
	colorAction    color.Style
	colorShort     color.Style
	colorDenied    color.Style
	colorSuccess   color.Style
	colorSubtle    color.Style
	colorHint      color.Style
	colorEffect    color.Style
	colorSpeed     color.Style
	colorConfused  color.Style
	colorFogCell   color.Style
	colorTitleText color.Style
}

// New creates a renderer writing to stdout
func New(fog bool) *TUIRenderer {
	t := &TUIRenderer{out: os.Stdout, fog: fog, restore: func() {}}
	t.initStyles()
	return t
}

func (t *TUIRenderer) initStyles() {
	t.colorWall = color.Style{color.FgGray}
	t.colorPath = color.Style{color.FgDefault}
	t.colorExit = color.Style{color.FgGreen, color.OpBold}
	t.colorPortal = color.Style{color.FgCyan, color.OpBold}
	t.colorSpring = color.Style{color.FgYellow, color.OpBold}
	t.colorSlip = color.Style{color.FgBlue}
	t.colorPlayer = color.Style{color.FgGreen, color.BgBlack, color.OpBold}
	t.colorEnemy = color.Style{color.FgRed, color.OpBold}
	t.colorAction = color.Style{color.FgMagenta}
	t.colorShort = color.Style{color.FgMagenta, color.OpBold}
	t.colorDenied = color.Style{color.FgRed, color.OpBold}
	t.colorSuccess = color.Style{color.FgGreen, color.OpBold}
	t.colorSubtle = color.Style{color.FgGray, color.OpBold}
	t.colorHint = color.Style{color.FgYellow}
	t.colorEffect = color.Style{color.FgCyan}
	t.colorSpeed = color.Style{color.FgYellow, color.BgBlack, color.OpBold}
	t.colorConfused = color.Style{color.FgMagenta, color.BgBlack, color.OpBold}
	t.colorFogCell = color.Style{color.FgDarkGray}
	t.colorTitleText = color.Style{color.FgBlue, color.OpBold}
}

// Init switches the terminal to raw mode and clears it
func (t *TUIRenderer) Init() error {
	if terminal.IsInteractive() {
		restore, err := terminal.MakeRaw()
		if err != nil {
			return err
		}
		t.restore = restore
	}
	terminal.HideCursor()
	terminal.ClearScreen()
	return nil
}

// Close restores the terminal
func (t *TUIRenderer) Close() {
	terminal.ShowCursor()
	t.restore()
	t.restore = func() {}
	fmt.Fprint(t.out, "\r\n")
}

// Render redraws the whole frame from the top-left corner
func (t *TUIRenderer) Render(snap state.Snapshot) {
	width, height := terminal.GetSize()
	lines := t.Frame(snap, width, height)

	terminal.Home()
	for _, line := range lines {
		// Raw mode needs an explicit carriage return; \033[K wipes leftovers.
		fmt.Fprint(t.out, line, "\033[K\r\n")
	}
	fmt.Fprint(t.out, "\033[J")
}

// StyleText applies a renderer text style
func (t *TUIRenderer) StyleText(text string, style renderer.TextStyle) string {
	switch style {
	case renderer.StyleHint:
		return t.colorHint.Sprint(text)
	case renderer.StyleAction:
		return t.colorAction.Sprint(text)
	case renderer.StyleActionShort:
		return t.colorShort.Sprint(text)
	case renderer.StyleDenied:
		return t.colorDenied.Sprint(text)
	case renderer.StyleSuccess:
		return t.colorSuccess.Sprint(text)
	case renderer.StyleSubtle:
		return t.colorSubtle.Sprint(text)
	case renderer.StyleEffect:
		return t.colorEffect.Sprint(text)
	default:
		return text
	}
}

// Frame builds the lines of one frame for a terminal of the given size
func (t *TUIRenderer) Frame(snap state.Snapshot, width, height int) []string {
	lines := make([]string, 0, height)

	title := t.colorTitleText.Sprint(renderer.Translate("TITLE"))
	status := title + "  " + renderer.StatusLine(snap)
	if effect := renderer.EffectLine(snap); effect != "" {
		status += "  " + t.StyleText(effect, renderer.StyleEffect)
	}
	lines = append(lines, status)
	lines = append(lines, t.StyleText(renderer.HintLine(snap), renderer.StyleHint))
	lines = append(lines, "")

	lines = append(lines, t.mapLines(snap, width, height-frameChrome)...)

	lines = append(lines, "")
	lines = append(lines, renderer.BannerLine(t, snap))
	lines = append(lines, renderer.HelpLine(t))
	return lines
}

func (t *TUIRenderer) mapLines(snap state.Snapshot, width, height int) []string {
	grid := snap.Grid
	if grid == nil {
		return nil
	}

	rowStart, rowCount := viewport(grid.Rows(), height, snap.Player.Row)
	colStart, colCount := viewport(grid.Cols(), width, snap.Player.Col)

	var visible mapset.Set[world.Position]
	fogged := t.fog && !snap.Won
	if fogged {
		visible = world.CalculateFOV(grid, snap.Player, world.FOVRadius)
	}

	lines := make([]string, 0, rowCount)
	for row := rowStart; row < rowStart+rowCount; row++ {
		var b strings.Builder
		for col := colStart; col < colStart+colCount; col++ {
			p := world.Position{Row: row, Col: col}
			if fogged && !visible.Has(p) {
				b.WriteString(t.colorFogCell.Sprint(IconFog))
				continue
			}
			b.WriteString(t.renderCell(snap, p))
		}
		lines = append(lines, b.String())
	}
	return lines
}

func (t *TUIRenderer) renderCell(snap state.Snapshot, p world.Position) string {
	if p == snap.Player {
		return t.renderPlayer(snap.Effect)
	}
	if snap.HasEnemy && p == snap.Enemy {
		return t.colorEnemy.Sprint(EnemyIcon)
	}

	switch snap.Grid.Kind(p) {
	case world.Wall:
		return t.colorWall.Sprint(IconWall)
	case world.Exit:
		return t.colorExit.Sprint(IconExit)
	case world.Portal:
		return t.colorPortal.Sprint(IconPortal)
	case world.Spring:
		return t.colorSpring.Sprint(IconSpring)
	case world.Slip:
		return t.colorSlip.Sprint(IconSlip)
	default:
		return t.colorPath.Sprint(IconPath)
	}
}

func (t *TUIRenderer) renderPlayer(effect entities.EffectKind) string {
	switch effect {
	case entities.EffectBig:
		return t.colorPlayer.Sprint(PlayerIconBig)
	case entities.EffectSmall:
		return t.colorPlayer.Sprint(PlayerIconSmall)
	case entities.EffectSpeed:
		return t.colorSpeed.Sprint(PlayerIcon)
	case entities.EffectConfused:
		return t.colorConfused.Sprint(PlayerIcon)
	default:
		return t.colorPlayer.Sprint(PlayerIcon)
	}
}

// viewport returns the first index and length of a window of at most avail
// cells out of total, centred on focus and clamped to the edges.
func viewport(total, avail, focus int) (start, count int) {
	if avail <= 0 {
		avail = 1
	}
	if total <= avail {
		return 0, total
	}
	start = focus - avail/2
	if start < 0 {
		start = 0
	}
	if start+avail > total {
		start = total - avail
	}
	return start, avail
}
