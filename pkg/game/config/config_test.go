package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func mapLookup(env map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefault_Validates(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("Default().Validate() = %v, want nil", err)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	c, err := FromEnv(mapLookup(map[string]string{
		"MAZE_ROWS":         "11",
		"MAZE_COLS":         "15",
		"MAZE_PURSUIT":      "false",
		"MAZE_EVENT_CHANCE": "0.9",
		"MAZE_RENDERER":     "tui",
		"MAZE_SEED":         "42",
		"MAZE_FOG":          "false",
	}))
	if err != nil {
		t.Fatalf("FromEnv returned error: %v", err)
	}

	if c.Rows != 11 || c.Cols != 15 {
		t.Errorf("dimensions = %dx%d, want 11x15", c.Rows, c.Cols)
	}
	if c.Pursuit {
		t.Error("Pursuit = true, want false")
	}
	if c.EventChance != 0.9 {
		t.Errorf("EventChance = %v, want 0.9", c.EventChance)
	}
	if c.Renderer != RendererTUI {
		t.Errorf("Renderer = %q, want %q", c.Renderer, RendererTUI)
	}
	if c.Fog {
		t.Error("Fog = true, want false")
	}
	if c.Seed != 42 {
		t.Errorf("Seed = %d, want 42", c.Seed)
	}
	if c.MoveCooldownMs != Default().MoveCooldownMs {
		t.Errorf("MoveCooldownMs = %d, want default %d", c.MoveCooldownMs, Default().MoveCooldownMs)
	}
}

func TestFromEnv_ParseError(t *testing.T) {
	_, err := FromEnv(mapLookup(map[string]string{"MAZE_ROWS": "many"}))
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("FromEnv error = %v, want ErrInvalidConfig", err)
	}
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero rows", func(c *Config) { c.Rows = 0 }},
		{"negative passages", func(c *Config) { c.ExtraPassages = -1 }},
		{"chance above one", func(c *Config) { c.EventChance = 1.5 }},
		{"effect range inverted", func(c *Config) { c.EffectMinMs, c.EffectMaxMs = 8000, 5000 }},
		{"no spawn samples", func(c *Config) { c.SpawnSamples = 0 }},
		{"zero tick rate", func(c *Config) { c.TickRate = 0 }},
		{"unknown renderer", func(c *Config) { c.Renderer = "opengl" }},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("Validate() = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestLoad_ReadsDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	if err := os.WriteFile(path, []byte("MAZE_SHUFFLE_FLIPS=3\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("MAZE_SHUFFLE_FLIPS", "")
	os.Unsetenv("MAZE_SHUFFLE_FLIPS")

	c, err := Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if c.ShuffleFlips != 3 {
		t.Errorf("ShuffleFlips = %d, want 3", c.ShuffleFlips)
	}
}

func TestRead_LeavesValidationToCaller(t *testing.T) {
	t.Setenv("MAZE_ROWS", "0")
	missing := filepath.Join(t.TempDir(), "missing.env")

	c, err := Read(missing)
	if err != nil {
		t.Fatalf("Read returned error: %v", err)
	}
	if c.Rows != 0 {
		t.Errorf("Rows = %d, want 0", c.Rows)
	}
	if _, err := Load(missing); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Load error = %v, want ErrInvalidConfig", err)
	}
}

func TestRead_ReportsParseErrors(t *testing.T) {
	t.Setenv("MAZE_TICK_RATE", "fast")
	if _, err := Read(filepath.Join(t.TempDir(), "missing.env")); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("Read error = %v, want ErrInvalidConfig", err)
	}
}
