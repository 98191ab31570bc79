// papercraft runs a level in the terminal.
//
// Usage:
//
//	papercraft [-config papercraft.toml] [-level levels/level1.lua] [-profile cpu|mem]
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/TheBitDrifter/papercraft"
	"github.com/TheBitDrifter/papercraft/game"
	"github.com/TheBitDrifter/papercraft/internal/config"
	"github.com/TheBitDrifter/papercraft/level"
	"github.com/pkg/profile"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := flag.String("config", os.Getenv("PAPERCRAFT_CONFIG"), "Path to the TOML config (defaults when empty)")
	levelPath := flag.String("level", "", "Level file (.yaml or .lua), overrides the config")
	profileMode := flag.String("profile", "", "Write a cpu or mem profile to the working directory")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if *levelPath != "" {
		cfg.Game.Level = *levelPath
	}

	log, err := newLogger(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath("."), profile.NoShutdownHook).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", *profileMode)
	}

	papercraft.Config.SetLogger(log)
	papercraft.Config.SetPoolCapacity(cfg.Game.PoolCapacity)

	lvl, err := loadLevel(cfg.Game.Level)
	if err != nil {
		return err
	}

	g, err := game.New(game.Options{
		Level:          lvl,
		FrameDuration:  cfg.Game.FrameDuration(),
		MapWidth:       cfg.Game.MapWidth,
		MapHeight:      cfg.Game.MapHeight,
		DebugColliders: cfg.Game.DebugColliders,
		AssetCapacity:  cfg.Game.AssetCapacity,
		Logger:         log,
	})
	if err != nil {
		return fmt.Errorf("start game: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("game started", zap.String("level", cfg.Game.Level), zap.Int("fps", cfg.Game.FPS))
	if err := g.Run(ctx); err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

// loadLevel picks the loader from the file extension. An empty path returns nil so the
// game uses its built-in level.
func loadLevel(path string) (*level.Description, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case "":
		if path == "" {
			return nil, nil
		}
	case ".lua":
		return level.LoadLua(path)
	case ".yaml", ".yml":
		return level.LoadYAML(path)
	}
	return nil, fmt.Errorf("level %s: unsupported file type", path)
}

func newLogger(cfg config.LoggingConfig) (*zap.Logger, error) {
	var logLevel zapcore.Level
	if err := logLevel.UnmarshalText([]byte(cfg.Level)); err != nil {
		logLevel = zapcore.InfoLevel
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
		zapCfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
		zapCfg.EncoderConfig.EncodeTime = zapcore.TimeEncoderOfLayout("15:04:05")
		zapCfg.EncoderConfig.ConsoleSeparator = "  "
		zapCfg.DisableCaller = true
		zapCfg.DisableStacktrace = true
	}
	zapCfg.Level = zap.NewAtomicLevelAt(logLevel)
	if cfg.File != "" {
		zapCfg.OutputPaths = []string{cfg.File}
		zapCfg.ErrorOutputPaths = []string{cfg.File}
	}

	return zapCfg.Build()
}
