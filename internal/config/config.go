package config

import (
	"fmt"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

type Config struct {
	Game    GameConfig    `toml:"game"`
	Logging LoggingConfig `toml:"logging"`
}

type GameConfig struct {
	FPS            int    `toml:"fps"`
	MapWidth       int    `toml:"map_width"`  // used when the level does not set a size
	MapHeight      int    `toml:"map_height"` // used when the level does not set a size
	Level          string `toml:"level"`      // .yaml or .lua path; empty loads the built-in level
	DebugColliders bool   `toml:"debug_colliders"`
	AssetCapacity  int    `toml:"asset_capacity"`
	PoolCapacity   int    `toml:"pool_capacity"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // the terminal belongs to the game, so logs go to a file
}

// FrameDuration is the fixed time step derived from FPS.
func (g GameConfig) FrameDuration() time.Duration {
	if g.FPS <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(g.FPS)
}

// Load reads the TOML file at path over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if cfg.Game.FPS <= 0 {
		return nil, fmt.Errorf("config %s: fps must be positive, got %d", path, cfg.Game.FPS)
	}
	return cfg, nil
}

func Default() *Config {
	return &Config{
		Game: GameConfig{
			FPS:           60,
			MapWidth:      120,
			MapHeight:     40,
			AssetCapacity: 64,
			PoolCapacity:  100,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			File:   "papercraft.log",
		},
	}
}
