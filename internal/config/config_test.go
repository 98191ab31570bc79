package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "papercraft.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		check   func(*testing.T, *Config)
		wantErr string
	}{
		{
			name: "overrides keep other defaults",
			body: "[game]\nfps = 30\nlevel = \"levels/level1.lua\"\n\n[logging]\nformat = \"json\"\n",
			check: func(t *testing.T, c *Config) {
				if c.Game.FPS != 30 || c.Game.Level != "levels/level1.lua" || c.Logging.Format != "json" {
					t.Errorf("overrides not applied: %+v", c)
				}
				if c.Game.AssetCapacity != 64 || c.Logging.Level != "info" {
					t.Errorf("defaults lost: %+v", c)
				}
				if got := c.Game.FrameDuration(); got != time.Second/30 {
					t.Errorf("FrameDuration = %v", got)
				}
			},
		},
		{
			name:    "bad toml",
			body:    "[game\nfps = 30",
			wantErr: "parse config",
		},
		{
			name:    "zero fps",
			body:    "[game]\nfps = 0\n",
			wantErr: "fps must be positive",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeConfig(t, tt.body))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("err = %v, want containing %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			tt.check(t, cfg)
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatal(err)
	}
	if *cfg != *Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Errorf("Load of a missing file succeeded")
	}
	if got := (GameConfig{}).FrameDuration(); got != time.Second/60 {
		t.Errorf("zero FPS FrameDuration = %v", got)
	}
}
