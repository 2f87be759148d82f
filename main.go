package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"crazymaze/pkg/engine/clock"
	"crazymaze/pkg/engine/input"
	"crazymaze/pkg/engine/terminal"
	"crazymaze/pkg/game/config"
	"crazymaze/pkg/game/gameplay"
	"crazymaze/pkg/game/generator"
	"crazymaze/pkg/game/renderer"
	ebitenrenderer "crazymaze/pkg/game/renderer/ebiten"
	"crazymaze/pkg/game/renderer/tui"
)

// tuiLogFile receives log output in terminal mode when no file is configured.
const tuiLogFile = "crazymaze.log"

func main() {
	cfg, dumpDir, err := loadConfig(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	closeLog := initLogging(cfg)
	defer closeLog()

	if err := run(cfg, dumpDir); err != nil {
		log.WithError(err).Error("game exited with error")
		closeLog()
		os.Exit(1)
	}
}

// loadConfig layers defaults, the .env file, MAZE_* variables and finally
// the flags that were given explicitly.
func loadConfig(args []string) (config.Config, string, error) {
	flags := config.Default()
	fs := flag.NewFlagSet("crazymaze", flag.ExitOnError)
	envFile := fs.String("env", ".env", "load settings from this .env file")
	dumpDir := fs.String("dump-dir", ".", "directory for F9 map dumps")
	fs.IntVar(&flags.Rows, "rows", flags.Rows, "maze rows (rounded up to odd)")
	fs.IntVar(&flags.Cols, "cols", flags.Cols, "maze columns (rounded up to odd)")
	fs.BoolVar(&flags.Pursuit, "pursuit", flags.Pursuit, "spawn a chasing enemy")
	fs.BoolVar(&flags.Fog, "fog", flags.Fog, "hide cells outside the player's sight")
	fs.Int64Var(&flags.Seed, "seed", flags.Seed, "random seed, 0 picks one from the clock")
	fs.StringVar(&flags.Renderer, "renderer", flags.Renderer, "front end: tui or ebiten")
	fs.StringVar(&flags.Language, "lang", flags.Language, "message catalogue language")
	fs.StringVar(&flags.LogLevel, "log-level", flags.LogLevel, "log level")
	fs.StringVar(&flags.LogFile, "log-file", flags.LogFile, "write logs to this file")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, "", err
	}

	cfg, err := config.Read(*envFile)
	if err != nil {
		return cfg, "", err
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "rows":
			cfg.Rows = flags.Rows
		case "cols":
			cfg.Cols = flags.Cols
		case "pursuit":
			cfg.Pursuit = flags.Pursuit
		case "fog":
			cfg.Fog = flags.Fog
		case "seed":
			cfg.Seed = flags.Seed
		case "renderer":
			cfg.Renderer = flags.Renderer
		case "lang":
			cfg.Language = flags.Language
		case "log-level":
			cfg.LogLevel = flags.LogLevel
		case "log-file":
			cfg.LogFile = flags.LogFile
		}
	})
	return cfg, *dumpDir, cfg.Validate()
}

// initLogging configures logrus and returns a function closing the log file
func initLogging(cfg config.Config) func() {
	level, _ := log.ParseLevel(cfg.LogLevel)
	log.SetLevel(level)
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	path := cfg.LogFile
	if path == "" && cfg.Renderer == config.RendererTUI {
		path = tuiLogFile
	}
	if path == "" {
		return func() {}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		log.WithError(err).Warn("could not open log file, logging to stderr")
		return func() {}
	}
	log.SetOutput(f)
	return func() { _ = f.Close() }
}

func run(cfg config.Config, dumpDir string) error {
	renderer.ConfigureLocale(cfg.LocaleDir, cfg.Language)

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.WithFields(log.Fields{"seed": seed, "renderer": cfg.Renderer}).Info("starting")

	rng := rand.New(rand.NewSource(seed))
	game := gameplay.NewGame(cfg, generator.NewDefault(rng), rng, clock.NewMonotonic())
	runner := gameplay.NewRunner(game, dumpDir)

	if cfg.Renderer == config.RendererEbiten {
		return ebitenrenderer.New(runner, cfg).Run()
	}
	return runTerminal(runner, cfg)
}

func runTerminal(runner *gameplay.Runner, cfg config.Config) error {
	if !terminal.IsInteractive() {
		return fmt.Errorf("the %s renderer needs an interactive terminal", config.RendererTUI)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rend := tui.New(cfg.Fog)
	if err := rend.Init(); err != nil {
		return err
	}
	defer rend.Close()

	events := make(chan input.RawInput, 16)
	go input.ReadTerminal(ctx, os.Stdin, events)

	return runner.Run(ctx, events, rend)
}
