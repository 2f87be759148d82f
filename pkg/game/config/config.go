// Package config holds the immutable settings of a maze session and loads
// them from defaults, an optional .env file and MAZE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// ErrInvalidConfig is wrapped by every error Validate returns
var ErrInvalidConfig = errors.New("invalid config")

// Renderer names accepted by the Renderer field
const (
	RendererTUI    = "tui"
	RendererEbiten = "ebiten"
)

// Config holds every tunable of the game. It is passed by value and never
// mutated once a session is running.
type Config struct {
	Rows          int // Requested maze rows, normalized to odd and at least 3
	Cols          int // Requested maze columns, normalized to odd and at least 3
	ExtraPassages int // Braiding iterations after carving
	SpecialTiles  int // Scatter attempts for portal/spring/slip tiles

	MoveCooldownMs  int64   // Minimum time between two player moves
	EnemyCooldownMs int64   // Minimum time between two enemy moves
	EventCooldownMs int64   // Minimum time between two random event rolls
	EventChance     float64 // Probability that a roll fires an event
	EffectMinMs     int64   // Shortest status effect duration
	EffectMaxMs     int64   // Longest status effect duration
	ShuffleFlips    int     // Cells flipped by a world mutation
	SpawnSamples    int     // Candidate cells sampled when spawning the enemy
	PortalAttempts  int     // Destination samples before a portal fizzles

	Pursuit bool  // Spawn a chasing enemy
	Seed    int64 // RNG seed, 0 picks one from the clock

	TickRate  int    // Simulation ticks per second
	Fog       bool   // Front ends hide cells outside the player's sight
	Renderer  string // "tui" or "ebiten"
	AssetDir  string // Directory searched for sprite images
	LocaleDir string // Root of the gettext catalogues
	Language  string // Catalogue language, e.g. en_GB
	LogLevel  string // logrus level name
	LogFile   string // Optional log destination, stderr when empty
}

// Default returns the stock configuration
func Default() Config {
	return Config{
		Rows:          31,
		Cols:          41,
		ExtraPassages: 120,
		SpecialTiles:  8,

		MoveCooldownMs:  150,
		EnemyCooldownMs: 300,
		EventCooldownMs: 8000,
		EventChance:     0.4,
		EffectMinMs:     5000,
		EffectMaxMs:     8000,
		ShuffleFlips:    15,
		SpawnSamples:    50,
		PortalAttempts:  100,

		Pursuit: true,

		TickRate:  60,
		Fog:       true,
		Renderer:  RendererEbiten,
		AssetDir:  "assets",
		LocaleDir: "locales",
		Language:  "en_GB",
		LogLevel:  "info",
	}
}

// Load is Read followed by Validate
func Load(files ...string) (Config, error) {
	c, err := Read(files...)
	if err != nil {
		return c, err
	}
	return c, c.Validate()
}

// Read starts from Default, reads the given .env files (".env" when none are
// named) and applies MAZE_* environment overrides. A missing .env file is not
// an error. Only parse errors are reported; callers layering further
// overrides validate the final result themselves.
func Read(files ...string) (Config, error) {
	if err := godotenv.Load(files...); err != nil {
		log.WithError(err).Debug(".env file not found or could not be loaded")
	}
	return parseEnv(os.LookupEnv)
}

// FromEnv applies overrides found through lookup on top of Default and
// validates the result
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	c, err := parseEnv(lookup)
	if err != nil {
		return c, err
	}
	return c, c.Validate()
}

func parseEnv(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	e := envReader{lookup: lookup}

	c.Rows = e.int("MAZE_ROWS", c.Rows)
	c.Cols = e.int("MAZE_COLS", c.Cols)
	c.ExtraPassages = e.int("MAZE_EXTRA_PASSAGES", c.ExtraPassages)
	c.SpecialTiles = e.int("MAZE_SPECIAL_TILES", c.SpecialTiles)
	c.MoveCooldownMs = e.int64("MAZE_MOVE_COOLDOWN_MS", c.MoveCooldownMs)
	c.EnemyCooldownMs = e.int64("MAZE_ENEMY_COOLDOWN_MS", c.EnemyCooldownMs)
	c.EventCooldownMs = e.int64("MAZE_EVENT_COOLDOWN_MS", c.EventCooldownMs)
	c.EventChance = e.float("MAZE_EVENT_CHANCE", c.EventChance)
	c.EffectMinMs = e.int64("MAZE_EFFECT_MIN_MS", c.EffectMinMs)
	c.EffectMaxMs = e.int64("MAZE_EFFECT_MAX_MS", c.EffectMaxMs)
	c.ShuffleFlips = e.int("MAZE_SHUFFLE_FLIPS", c.ShuffleFlips)
	c.SpawnSamples = e.int("MAZE_SPAWN_SAMPLES", c.SpawnSamples)
	c.PortalAttempts = e.int("MAZE_PORTAL_ATTEMPTS", c.PortalAttempts)
	c.Pursuit = e.bool("MAZE_PURSUIT", c.Pursuit)
	c.Seed = e.int64("MAZE_SEED", c.Seed)
	c.TickRate = e.int("MAZE_TICK_RATE", c.TickRate)
	c.Fog = e.bool("MAZE_FOG", c.Fog)
	c.Renderer = getEnvWithDefault(lookup, "MAZE_RENDERER", c.Renderer)
	c.AssetDir = getEnvWithDefault(lookup, "MAZE_ASSET_DIR", c.AssetDir)
	c.LocaleDir = getEnvWithDefault(lookup, "MAZE_LOCALE_DIR", c.LocaleDir)
	c.Language = getEnvWithDefault(lookup, "MAZE_LANGUAGE", c.Language)
	c.LogLevel = getEnvWithDefault(lookup, "MAZE_LOG_LEVEL", c.LogLevel)
	c.LogFile = getEnvWithDefault(lookup, "MAZE_LOG_FILE", c.LogFile)

	return c, e.err
}

// Validate reports the first field holding an unusable value
func (c Config) Validate() error {
	switch {
	case c.Rows < 1 || c.Cols < 1:
		return invalid("Rows/Cols", "must be positive, got %dx%d", c.Rows, c.Cols)
	case c.ExtraPassages < 0:
		return invalid("ExtraPassages", "must not be negative, got %d", c.ExtraPassages)
	case c.SpecialTiles < 0:
		return invalid("SpecialTiles", "must not be negative, got %d", c.SpecialTiles)
	case c.MoveCooldownMs < 0:
		return invalid("MoveCooldownMs", "must not be negative, got %d", c.MoveCooldownMs)
	case c.EnemyCooldownMs < 0:
		return invalid("EnemyCooldownMs", "must not be negative, got %d", c.EnemyCooldownMs)
	case c.EventCooldownMs < 0:
		return invalid("EventCooldownMs", "must not be negative, got %d", c.EventCooldownMs)
	case c.EventChance < 0 || c.EventChance > 1:
		return invalid("EventChance", "must be within [0,1], got %v", c.EventChance)
	case c.EffectMinMs <= 0 || c.EffectMaxMs < c.EffectMinMs:
		return invalid("EffectMinMs/EffectMaxMs", "need 0 < min <= max, got %d..%d", c.EffectMinMs, c.EffectMaxMs)
	case c.ShuffleFlips < 0:
		return invalid("ShuffleFlips", "must not be negative, got %d", c.ShuffleFlips)
	case c.SpawnSamples < 1:
		return invalid("SpawnSamples", "must be at least 1, got %d", c.SpawnSamples)
	case c.PortalAttempts < 1:
		return invalid("PortalAttempts", "must be at least 1, got %d", c.PortalAttempts)
	case c.TickRate < 1 || c.TickRate > 1000:
		return invalid("TickRate", "must be within [1,1000], got %d", c.TickRate)
	case c.Renderer != RendererTUI && c.Renderer != RendererEbiten:
		return invalid("Renderer", "must be %q or %q, got %q", RendererTUI, RendererEbiten, c.Renderer)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return invalid("LogLevel", "%v", err)
	}
	return nil
}

func invalid(field, format string, args ...any) error {
	return fmt.Errorf("%w: %s %s", ErrInvalidConfig, field, fmt.Sprintf(format, args...))
}

// envReader collects the first parse error so parseEnv can report it once
type envReader struct {
	lookup func(string) (string, bool)
	err    error
}

func (e *envReader) int(key string, def int) int {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		e.fail(key, err)
		return def
	}
	return n
}

func (e *envReader) int64(key string, def int64) int64 {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		e.fail(key, err)
		return def
	}
	return n
}

func (e *envReader) float(key string, def float64) float64 {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		e.fail(key, err)
		return def
	}
	return f
}

func (e *envReader) bool(key string, def bool) bool {
	v, ok := e.lookup(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		e.fail(key, err)
		return def
	}
	return b
}

func (e *envReader) fail(key string, err error) {
	if e.err == nil {
		e.err = fmt.Errorf("%w: environment variable %s: %v", ErrInvalidConfig, key, err)
	}
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(lookup func(string) (string, bool), key, defaultValue string) string {
	if value, exists := lookup(key); exists {
		return value
	}
	return defaultValue
}
