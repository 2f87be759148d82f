package devtools

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"time"

	"crazymaze/pkg/engine/world"
	"crazymaze/pkg/game/state"
)

// cellClass returns the CSS class used for a tile kind
func cellClass(kind world.TileKind) string {
	switch kind {
	case world.Wall:
		return "wall"
	case world.Exit:
		return "exit"
	case world.Portal:
		return "portal"
	case world.Spring:
		return "spring"
	case world.Slip:
		return "slip"
	default:
		return "floor"
	}
}

// RenderHTML renders the snapshot as a standalone coloured HTML page
func RenderHTML(snap state.Snapshot, title string) string {
	var b strings.Builder

	b.WriteString(`<!DOCTYPE html>
<html>
<head>
    <meta charset="UTF-8">
    <title>` + html.EscapeString(title) + `</title>
    <style>
        body {
            background-color: #141414;
            color: #eee;
            font-family: 'Courier New', monospace;
            padding: 20px;
        }
        .header { color: #ffff64; font-size: 18px; margin-bottom: 10px; }
        .map-row { white-space: pre; line-height: 1.0; font-size: 16px; }
        .player { color: #c81e1e; font-weight: bold; }
        .enemy { color: #ff00ff; font-weight: bold; }
        .wall { color: #555; }
        .floor { color: #ccc; }
        .exit { color: #1ec81e; font-weight: bold; }
        .portal { color: #9370db; }
        .spring { color: #ffa500; }
        .slip { color: #ffff00; }
    </style>
</head>
<body>
`)
	fmt.Fprintf(&b, `    <div class="header">%s &middot; %ds &middot; %d steps</div>`+"\n",
		html.EscapeString(snap.Status.String()), snap.ElapsedSeconds, snap.Steps)

	for row := 0; row < snap.Grid.Rows(); row++ {
		b.WriteString(`    <div class="map-row">`)
		for col := 0; col < snap.Grid.Cols(); col++ {
			p := world.Pos(row, col)
			class := cellClass(snap.Grid.Kind(p))
			switch {
			case p == snap.Player:
				class = "player"
			case snap.HasEnemy && p == snap.Enemy:
				class = "enemy"
			}
			fmt.Fprintf(&b, `<span class="%s">%c</span>`, class, overlaySymbol(snap, p))
		}
		b.WriteString("</div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

// SaveScreenshotHTML writes the snapshot as screenshot-<timestamp>.html
// inside dir and returns the path written.
func SaveScreenshotHTML(snap state.Snapshot, dir string) (string, error) {
	timestamp := time.Now().Format("20060102-150405")
	path := filepath.Join(dir, fmt.Sprintf("screenshot-%s.html", timestamp))
	if err := os.WriteFile(path, []byte(RenderHTML(snap, "Crazy Maze - Screenshot")), 0o644); err != nil {
		return "", fmt.Errorf("write screenshot: %w", err)
	}
	return path, nil
}
