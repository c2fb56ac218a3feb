package simulation

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/tochemey/goakt/v3/log"
)

func writeConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write %s: %v", path, err)
	}
	return path
}

func TestDefaultConfig_Validates(t *testing.T) {
	cfg := DefaultConfig()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}
	if cfg.TickInterval() != 20*time.Millisecond {
		t.Errorf("TickInterval = %v; want 20ms", cfg.TickInterval())
	}
	if cfg.TicksPerSecond() != 50 {
		t.Errorf("TicksPerSecond = %d; want 50", cfg.TicksPerSecond())
	}
	cfg.TickMillis = 3
	if cfg.TicksPerSecond() != 333 {
		t.Errorf("TicksPerSecond at 3ms = %d; want 333", cfg.TicksPerSecond())
	}
	cfg.TickMillis = 20
	if cfg.BeepDuration() != 25*time.Millisecond {
		t.Errorf("BeepDuration = %v; want 25ms", cfg.BeepDuration())
	}
	if got := cfg.BeepFrequency(ColorNone); got != 5000 {
		t.Errorf("BeepFrequency(none) = %v; want 5000", got)
	}
	if got := cfg.BeepFrequency(ColorRed); got != 1000 {
		t.Errorf("BeepFrequency(red) = %v; want 1000", got)
	}
}

func TestConfig_ValidateRejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"final radius below initial", func(c *Config) { c.InitialRadius = 0.6 }},
		{"no ripple growth", func(c *Config) { c.RadiusIncrement = 0 }},
		{"speed range inverted", func(c *Config) { c.MinSpeed = 0.05 }},
		{"delta range inverted", func(c *Config) { c.MinShipDelta = 0.001 }},
		{"negative multiplier", func(c *Config) { c.Cohesion = -1 }},
		{"missing beep frequency", func(c *Config) { c.BeepFrequencies = c.BeepFrequencies[:7] }},
		{"tiny window", func(c *Config) { c.WindowWidth = 10 }},
		{"unknown log level", func(c *Config) { c.LogLevel = "verbose" }},
		{"zero tick", func(c *Config) { c.TickMillis = 0 }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			if err := cfg.Validate(); err == nil {
				t.Errorf("Validate should fail")
			}
		})
	}
}

func TestLoadConfig_JSON(t *testing.T) {
	path := writeConfig(t, "ripples.json", `{
  "shipCount": 250,
  "separation": 2,
  "spatialIndex": false,
  "logLevel": "debug"
}`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.ShipCount != 250 || cfg.Separation != 2 || cfg.SpatialIndex || cfg.LogLevel != "debug" {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if cfg.FinalRadius != 0.5 || cfg.TickMillis != 20 {
		t.Errorf("defaults lost: finalRadius %v tickMillis %v", cfg.FinalRadius, cfg.TickMillis)
	}
}

func TestLoadConfig_TOML(t *testing.T) {
	path := writeConfig(t, "ripples.toml", `
shipCount = 120
cohesion = 1
beepFrequencies = [100.0, 200.0, 300.0, 400.0, 500.0, 600.0, 700.0, 800.0]
audio = false
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.ShipCount != 120 || cfg.Cohesion != 1 || cfg.Audio {
		t.Errorf("overrides not applied: %+v", cfg)
	}
	if got := cfg.BeepFrequency(ColorNone); got != 800 {
		t.Errorf("BeepFrequency(none) = %v; want 800", got)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantErr string
	}{
		{"unknown json key", "bad.json", `{"shipCounts": 3}`, "unknown field"},
		{"unknown toml key", "bad.toml", "shipCounts = 3\n", "unknown keys"},
		{"invalid json value", "bad.json", `{"finalRadius": -1}`, "config validation failed"},
		{"broken toml", "bad.toml", "shipCount = \n", "failed to decode config toml"},
		{"unsupported extension", "bad.yaml", "shipCount: 3\n", "unsupported config file extension"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.file, tt.content)
			_, err := LoadConfig(path)
			if err == nil {
				t.Fatalf("LoadConfig(%s) should fail", tt.file)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should contain %q", err, tt.wantErr)
			}
		})
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("LoadConfig of a missing file should fail")
	}
}

func TestLoadConfig_SampleFiles(t *testing.T) {
	for _, name := range []string{"ripples.json", "ripples.toml"} {
		t.Run(name, func(t *testing.T) {
			if _, err := LoadConfig(filepath.Join("..", "..", "config", name)); err != nil {
				t.Errorf("sample config %s is invalid: %v", name, err)
			}
		})
	}
}

func TestConfig_Level(t *testing.T) {
	tests := map[string]log.Level{
		"debug": log.DebugLevel,
		"info":  log.InfoLevel,
		"warn":  log.WarningLevel,
		"error": log.ErrorLevel,
		"":      log.InfoLevel,
	}
	for name, want := range tests {
		cfg := DefaultConfig()
		cfg.LogLevel = name
		if got := cfg.Level(); got != want {
			t.Errorf("Level(%q) = %v; want %v", name, got, want)
		}
	}
}
