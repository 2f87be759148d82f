package gameplay

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"

	"crazymaze/pkg/engine/input"
	"crazymaze/pkg/engine/world"
	"crazymaze/pkg/game/devtools"
	"crazymaze/pkg/game/renderer"
	"crazymaze/pkg/game/state"
)

// Runner feeds intents into a Game and paces its ticks. It is the single
// writer of the session.
type Runner struct {
	game    *Game
	dumpDir string

	held    world.Direction
	hasHeld bool
	quit    bool
}

// NewRunner wraps game. Map dumps are written to dumpDir.
func NewRunner(game *Game, dumpDir string) *Runner {
	return &Runner{game: game, dumpDir: dumpDir}
}

// Game returns the wrapped game
func (r *Runner) Game() *Game {
	return r.game
}

// Quitting reports whether a quit intent has been applied
func (r *Runner) Quitting() bool {
	return r.quit
}

// Apply handles one intent. Moves are held until the next Step; everything
// else takes effect immediately.
func (r *Runner) Apply(intent input.Intent) {
	if dir, ok := intent.Direction(); ok {
		r.held, r.hasHeld = dir, true
		return
	}

	switch intent.Action {
	case input.ActionNewMaze:
		r.game.NewMaze()
	case input.ActionReset:
		r.game.Reset()
	case input.ActionDumpMap:
		r.dumpMap()
	case input.ActionQuit:
		r.quit = true
	}
}

// Step runs one tick with the held direction, then releases it
func (r *Runner) Step() {
	r.game.Tick(r.held, r.hasHeld)
	r.hasHeld = false
}

// Snapshot returns a copy of the session for renderers
func (r *Runner) Snapshot() state.Snapshot {
	return r.game.Snapshot()
}

func (r *Runner) dumpMap() {
	snap := r.Snapshot()
	path, err := devtools.DumpSnapshotToFile(snap, r.dumpDir)
	if err != nil {
		r.game.logger().WithError(err).Error("map dump failed")
		return
	}
	shot, err := devtools.SaveScreenshotHTML(snap, r.dumpDir)
	if err != nil {
		r.game.logger().WithError(err).Warn("screenshot failed")
	}
	r.game.logger().WithFields(log.Fields{"map": path, "screenshot": shot}).Info("map dumped")
}

// Run ticks at the configured rate, draining source between ticks and
// drawing every snapshot with rend. It returns when ctx is cancelled or a
// quit intent arrives. A closed source stops input but not the loop.
func (r *Runner) Run(ctx context.Context, source <-chan input.RawInput, rend renderer.Renderer) error {
	interval := time.Second / time.Duration(r.game.Config().TickRate)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	rend.Render(r.Snapshot())
	for {
		select {
		case <-ctx.Done():
			return nil
		case raw, ok := <-source:
			if !ok {
				source = nil
				continue
			}
			r.Apply(input.Resolve(raw))
			if r.quit {
				return nil
			}
		case <-ticker.C:
			r.Step()
			rend.Render(r.Snapshot())
		}
	}
}
