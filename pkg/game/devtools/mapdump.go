// Package devtools provides developer tools for testing and debugging.
package devtools

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"crazymaze/pkg/engine/world"
	"crazymaze/pkg/game/state"
)

const mapDumpFilename = "map.txt"

// overlaySymbol returns the symbol drawn at p, with the movers on top of the tile.
func overlaySymbol(snap state.Snapshot, p world.Position) rune {
	switch {
	case p == snap.Player:
		return '@'
	case snap.HasEnemy && p == snap.Enemy:
		return 'X'
	default:
		return snap.Grid.Kind(p).Symbol()
	}
}

// writeMapGrid writes the grid with the player/enemy overlay.
func writeMapGrid(w io.Writer, snap state.Snapshot) {
	for row := 0; row < snap.Grid.Rows(); row++ {
		for col := 0; col < snap.Grid.Cols(); col++ {
			fmt.Fprintf(w, "%c", overlaySymbol(snap, world.Pos(row, col)))
		}
		fmt.Fprintln(w)
	}
}

// WriteSnapshot writes a full debug dump of snap: metadata, legend, the map
// with and without movers, special tiles and routing distances.
func WriteSnapshot(w io.Writer, snap state.Snapshot) error {
	if snap.Grid == nil {
		return fmt.Errorf("no grid")
	}
	bw := bufio.NewWriter(w)
	grid := snap.Grid
	dist := world.Distances(grid, snap.Player)

	// --- Metadata ---
	fmt.Fprintln(bw, "=== MAP DUMP DEBUG (maze layout, movers, routing) ===")
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Metadata ---")
	fmt.Fprintf(bw, "session: %s\n", snap.SessionID)
	fmt.Fprintf(bw, "status: %s\n", snap.Status)
	fmt.Fprintf(bw, "grid_rows: %d\n", grid.Rows())
	fmt.Fprintf(bw, "grid_cols: %d\n", grid.Cols())
	fmt.Fprintf(bw, "coordinate_system: row,col (0-based, row=vertical, col=horizontal)\n")
	fmt.Fprintf(bw, "start_cell: %s\n", grid.Start())
	fmt.Fprintf(bw, "exit_cell: %s\n", snap.Exit)
	fmt.Fprintf(bw, "player_cell: %s\n", snap.Player)
	if snap.HasEnemy {
		fmt.Fprintf(bw, "enemy_cell: %s\n", snap.Enemy)
	}
	fmt.Fprintf(bw, "steps: %d\n", snap.Steps)
	fmt.Fprintf(bw, "elapsed_seconds: %d\n", snap.ElapsedSeconds)
	fmt.Fprintf(bw, "effect: %s\n", snap.Effect)
	fmt.Fprintf(bw, "effect_left_ms: %d\n", snap.EffectLeftMs)
	fmt.Fprintf(bw, "hint: %q visible: %v\n", snap.HintKey, snap.HintVisible)
	fmt.Fprintln(bw, "")

	// --- Legend ---
	fmt.Fprintln(bw, "--- Legend (cell symbols) ---")
	fmt.Fprintln(bw, "# = wall  . = path  E = exit  O = portal  S = spring  B = banana slip  @ = player  X = enemy")
	fmt.Fprintln(bw, "")

	// --- Maps ---
	fmt.Fprintln(bw, "--- Map (with movers) ---")
	writeMapGrid(bw, snap)
	fmt.Fprintln(bw, "")
	fmt.Fprintln(bw, "--- Map (tiles only) ---")
	fmt.Fprint(bw, grid.String())
	fmt.Fprintln(bw, "")

	// --- Special tiles ---
	fmt.Fprintln(bw, "--- Special tiles ---")
	grid.ForEachCell(func(p world.Position, kind world.TileKind) {
		if kind.IsSpecial() {
			fmt.Fprintf(bw, "  row: %d col: %d kind: %s\n", p.Row, p.Col, kind)
		}
	})
	fmt.Fprintln(bw, "")

	// --- Routing ---
	fmt.Fprintln(bw, "--- Routing (BFS from player) ---")
	fmt.Fprintf(bw, "exit_distance: %s\n", formatDistance(dist, snap.Exit))
	if snap.HasEnemy {
		fmt.Fprintf(bw, "enemy_distance: %s\n", formatDistance(dist, snap.Enemy))
	}
	reachable := world.ReachableFrom(grid, snap.Player).Size()
	fmt.Fprintf(bw, "reachable_cells: %d\n", reachable)
	fmt.Fprintf(bw, "walkable_cells: %d\n", grid.Rows()*grid.Cols()-grid.Count(world.Wall))

	return bw.Flush()
}

func formatDistance(dist [][]int, p world.Position) string {
	if p.Row < 0 || p.Row >= len(dist) || p.Col < 0 || p.Col >= len(dist[p.Row]) {
		return "out_of_bounds"
	}
	if d := dist[p.Row][p.Col]; d != world.Unreachable {
		return fmt.Sprintf("%d", d)
	}
	return "unreachable"
}

// DumpSnapshotToFile writes the debug dump to map.txt inside dir and returns
// the absolute path written.
func DumpSnapshotToFile(snap state.Snapshot, dir string) (string, error) {
	absPath, err := filepath.Abs(filepath.Join(dir, mapDumpFilename))
	if err != nil {
		return "", fmt.Errorf("resolve dump path: %w", err)
	}

	f, err := os.Create(absPath)
	if err != nil {
		return "", fmt.Errorf("create map dump: %w", err)
	}
	defer f.Close()

	if err := WriteSnapshot(f, snap); err != nil {
		return "", fmt.Errorf("write map dump: %w", err)
	}
	return absPath, nil
}
