// Package gameplay drives a maze session: building mazes, moving the player,
// the chasing enemy, random events and the win/lose state machine.
package gameplay

import (
	"math/rand"

	log "github.com/sirupsen/logrus"
	"github.com/zyedidia/generic/mapset"

	"crazymaze/pkg/engine/clock"
	"crazymaze/pkg/engine/world"
	"crazymaze/pkg/game/config"
	"crazymaze/pkg/game/entities"
	"crazymaze/pkg/game/generator"
	"crazymaze/pkg/game/state"
	"crazymaze/pkg/game/tiles"
)

// Game owns the live session and everything needed to replace it
type Game struct {
	cfg   config.Config
	gen   generator.GridGenerator
	rng   *rand.Rand
	clock clock.Clock

	Session *state.Session
}

// Setup builds a complete maze: carve, place the exit on the cell farthest
// from the start, then scatter special tiles.
func Setup(gen generator.GridGenerator, rng *rand.Rand, cfg config.Config) (*world.Grid, world.Position, mapset.Set[world.Position]) {
	grid := gen.Generate(cfg.Rows, cfg.Cols, cfg.ExtraPassages)
	exit := world.Farthest(grid, grid.Start())
	grid.SetExit(exit)
	placed := tiles.Scatter(grid, rng, cfg.SpecialTiles, grid.Start(), exit)
	return grid, exit, placed
}

// NewGame builds the first session. A nil generator selects the default one.
func NewGame(cfg config.Config, gen generator.GridGenerator, rng *rand.Rand, clk clock.Clock) *Game {
	if gen == nil {
		gen = generator.NewDefault(rng)
	}
	g := &Game{cfg: cfg, gen: gen, rng: rng, clock: clk}
	g.buildMaze()
	g.logSession("session started")
	return g
}

// Config returns the configuration the game runs with
func (g *Game) Config() config.Config {
	return g.cfg
}

// Now reads the session clock
func (g *Game) Now() int64 {
	return g.clock.NowMillis()
}

// Snapshot copies the live session at the current time
func (g *Game) Snapshot() state.Snapshot {
	return g.Session.Snapshot(g.Now())
}

// NewMaze replaces the session with one on a freshly generated maze
func (g *Game) NewMaze() {
	g.buildMaze()
	g.Session.Post(HintNewMaze, g.Session.StartedAt, NewMazeHintMs)
	g.logSession("new maze")
}

// Reset starts a new run on the current maze. The grid keeps any changes
// made by maze shuffles.
func (g *Game) Reset() {
	old := g.Session
	now := g.Now()
	g.Session = state.NewSession(old.Grid, old.Exit, old.Tiles, now)
	g.spawnEnemy(now)
	g.Session.Post(HintRestart, now, RestartHintMs)
	g.logSession("reset")
}

func (g *Game) buildMaze() {
	grid, exit, placed := Setup(g.gen, g.rng, g.cfg)
	now := g.Now()
	g.Session = state.NewSession(grid, exit, placed, now)
	g.spawnEnemy(now)
}

// spawnEnemy places the pursuer far from the start. It waits one full
// cooldown before its first step.
func (g *Game) spawnEnemy(now int64) {
	if !g.cfg.Pursuit {
		return
	}
	s := g.Session
	s.Enemy = entities.SpawnEnemy(s.Grid, g.rng, s.Player.Position, g.cfg.SpawnSamples, g.cfg.EnemyCooldownMs)
	s.Enemy.LastMoveAt = now
}

// logger returns an entry tagged with the session ID
func (g *Game) logger() *log.Entry {
	return log.WithField("session", g.Session.ID.String())
}

func (g *Game) logSession(msg string) {
	s := g.Session
	fields := log.Fields{
		"generator": g.gen.Name(),
		"rows":      s.Grid.Rows(),
		"cols":      s.Grid.Cols(),
		"exit":      s.Exit.String(),
		"tiles":     s.Tiles.Size(),
	}
	if s.Enemy != nil {
		fields["enemy"] = s.Enemy.Position.String()
	}
	g.logger().WithFields(fields).Info(msg)
}
