package tui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/gookit/color"

	"crazymaze/pkg/engine/world"
	"crazymaze/pkg/game/entities"
	"crazymaze/pkg/game/state"
)

const layout = "" +
	"#########\n" +
	"#...#..E#\n" +
	"#.#.#.#.#\n" +
	"#.O.S.B.#\n" +
	"#########"

func testSnapshot(t *testing.T) state.Snapshot {
	t.Helper()
	grid, err := world.ParseGrid(layout)
	if err != nil {
		t.Fatalf("ParseGrid: %v", err)
	}
	exit, _ := grid.Exit()
	return state.Snapshot{
		Grid:     grid,
		Player:   world.Position{Row: 1, Col: 1},
		Enemy:    world.Position{Row: 3, Col: 7},
		HasEnemy: true,
		Exit:     exit,
	}
}

func newTestRenderer(fog bool) *TUIRenderer {
	r := New(fog)
	r.out = &bytes.Buffer{}
	return r
}

func plainMap(lines []string) string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = color.ClearCode(l)
	}
	return strings.Join(out, "\n")
}

func TestMapLinesDrawsEveryTile(t *testing.T) {
	r := newTestRenderer(false)
	snap := testSnapshot(t)

	got := plainMap(r.mapLines(snap, 80, 24))
	want := "" +
		"▒▒▒▒▒▒▒▒▒\n" +
		"▒@  ▒  ▲▒\n" +
		"▒ ▒ ▒ ▒ ▒\n" +
		"▒ ◎ ◆ ░X▒\n" +
		"▒▒▒▒▒▒▒▒▒"
	if got != want {
		t.Errorf("map mismatch\n got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPlayerIconFollowsEffect(t *testing.T) {
	r := newTestRenderer(false)
	tests := []struct {
		effect entities.EffectKind
		want   string
	}{
		{entities.EffectNone, PlayerIcon},
		{entities.EffectBig, PlayerIconBig},
		{entities.EffectSmall, PlayerIconSmall},
		{entities.EffectSpeed, PlayerIcon},
		{entities.EffectConfused, PlayerIcon},
	}
	for _, tt := range tests {
		if got := color.ClearCode(r.renderPlayer(tt.effect)); got != tt.want {
			t.Errorf("renderPlayer(%v) = %q, want %q", tt.effect, got, tt.want)
		}
	}
}

func TestFogHidesDistantCells(t *testing.T) {
	grid := world.NewGrid(3, 21)
	for col := 1; col < 20; col++ {
		grid.SetKind(world.Position{Row: 1, Col: col}, world.Path)
	}
	grid.SetExit(world.Position{Row: 1, Col: 19})
	snap := state.Snapshot{Grid: grid, Player: world.Position{Row: 1, Col: 1}}

	r := newTestRenderer(true)
	row := []rune(plainMap(r.mapLines(snap, 80, 24)[1:2]))
	if string(row[19]) != IconFog {
		t.Errorf("exit beyond sight radius drawn as %q, want fog", string(row[19]))
	}

	snap.Won = true
	row = []rune(plainMap(r.mapLines(snap, 80, 24)[1:2]))
	if string(row[19]) != IconExit {
		t.Errorf("fog should lift once won, got %q", string(row[19]))
	}
}

func TestViewport(t *testing.T) {
	tests := []struct {
		total, avail, focus int
		start, count        int
	}{
		{10, 20, 5, 0, 10},
		{41, 11, 0, 0, 11},
		{41, 11, 20, 15, 11},
		{41, 11, 40, 30, 11},
		{5, 0, 2, 2, 1},
	}
	for _, tt := range tests {
		start, count := viewport(tt.total, tt.avail, tt.focus)
		if start != tt.start || count != tt.count {
			t.Errorf("viewport(%d,%d,%d) = %d,%d want %d,%d",
				tt.total, tt.avail, tt.focus, start, count, tt.start, tt.count)
		}
	}
}

func TestFrameShowsBannerAndHelp(t *testing.T) {
	r := newTestRenderer(false)
	snap := testSnapshot(t)
	snap.Lost = true
	snap.Status = state.StatusLost

	lines := r.Frame(snap, 80, 24)
	if got := color.ClearCode(lines[len(lines)-2]); got != "BANNER_LOST" {
		t.Errorf("banner line = %q, want BANNER_LOST", got)
	}
	help := color.ClearCode(lines[len(lines)-1])
	if !strings.Contains(help, "Quit") {
		t.Errorf("help line %q does not list Quit", help)
	}
}

func TestIconsAreDistinct(t *testing.T) {
	icons := map[string]string{
		"player":       PlayerIcon,
		"player big":   PlayerIconBig,
		"player small": PlayerIconSmall,
		"enemy":        EnemyIcon,
		"wall":         IconWall,
		"path":         IconPath,
		"exit":         IconExit,
		"portal":       IconPortal,
		"spring":       IconSpring,
		"slip":         IconSlip,
		"fog":          IconFog,
	}
	seen := make(map[string]string, len(icons))
	for name, icon := range icons {
		if other, ok := seen[icon]; ok {
			t.Errorf("%s and %s share the icon %q", name, other, icon)
		}
		seen[icon] = name
	}
}
