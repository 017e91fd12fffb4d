// internal/config/config.go
package config

import (
	"fmt"
	"image/color"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

const (
	ScreenWidth  = 1600
	ScreenHeight = 837

	ToolbarY         = 675
	ToolbarButtonY   = 720
	ToolbarButtonH   = 80
	HUDTextY         = 695
	HealthTextOffY   = 20
	SelectionPulseHz = 5.0

	MaxPlayerNameLength = 11
	TopScoresShown      = 29
)

var (
	BackgroundColor = color.RGBA{34, 60, 30, 255}
	LaneColorA      = color.RGBA{58, 110, 48, 255}
	LaneColorB      = color.RGBA{66, 122, 54, 255}
	ToolbarColor    = color.RGBA{70, 45, 25, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	PlaceColor      = color.RGBA{120, 150, 255, 255}
	RemoveColor     = color.RGBA{255, 100, 100, 255}
	RemoveButton    = color.RGBA{180, 50, 50, 255}
	PlaceButton     = color.RGBA{50, 180, 50, 255}
	MenuButton      = color.RGBA{180, 100, 180, 255}
)

// Config holds the engine and session settings loaded from TOML.
type Config struct {
	Engine      EngineConfig      `toml:"engine"`
	Field       FieldConfig       `toml:"field"`
	Session     SessionConfig     `toml:"session"`
	Combat      CombatConfig      `toml:"combat"`
	Director    DirectorConfig    `toml:"director"`
	Leaderboard LeaderboardConfig `toml:"leaderboard"`
	Logging     LoggingConfig     `toml:"logging"`
	Assets      AssetsConfig      `toml:"assets"`
}

type EngineConfig struct {
	FrameRate int `toml:"frame_rate"`
}

// FieldConfig describes the lawn in world units and cells.
type FieldConfig struct {
	Width float64 `toml:"width"` // attackers enter at this x
	Rows  int     `toml:"rows"`
	Cols  int     `toml:"cols"`
}

type SessionConfig struct {
	StartingBananas int    `toml:"starting_bananas"`
	Seed            int64  `toml:"seed"` // 0 = time based
	UnitsFile       string `toml:"units_file"`
}

type CombatConfig struct {
	MaxBiteTargets int `toml:"max_bite_targets"` // defenders an attacker can chew per tick
}

// DirectorConfig tunes the spawn director. Chances are denominators: a spawn
// happens on a tick with probability 1/chance.
type DirectorConfig struct {
	GraceTicks    int     `toml:"grace_ticks"`
	SettleTicks   int     `toml:"settle_ticks"`
	WaveTicks     int     `toml:"wave_ticks"`
	InitialChance int     `toml:"initial_chance"`
	SettleFactor  float64 `toml:"settle_factor"`
	WaveFactor    float64 `toml:"wave_factor"`
	MinChance     int     `toml:"min_chance"`
}

type LeaderboardConfig struct {
	BaseURL string        `toml:"base_url"`
	Timeout time.Duration `toml:"timeout"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
}

type AssetsConfig struct {
	Dir string `toml:"dir"`
}

// DeltaTime is the fixed simulation step in seconds.
func (c *Config) DeltaTime() float64 {
	return 1.0 / float64(c.Engine.FrameRate)
}

// FrameDuration is the wall-clock budget of one tick.
func (c *Config) FrameDuration() time.Duration {
	return time.Second / time.Duration(c.Engine.FrameRate)
}

// Load reads a TOML file over the defaults. An empty path returns the defaults.
func Load(path string) (*Config, error) {
	cfg := Defaults()
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
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects settings the simulation cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Engine.FrameRate <= 0:
		return fmt.Errorf("engine.frame_rate must be positive, got %d", c.Engine.FrameRate)
	case c.Field.Rows <= 0 || c.Field.Cols <= 0:
		return fmt.Errorf("field must have rows and cols, got %dx%d", c.Field.Cols, c.Field.Rows)
	case c.Combat.MaxBiteTargets < 1:
		return fmt.Errorf("combat.max_bite_targets must be >= 1, got %d", c.Combat.MaxBiteTargets)
	case c.Director.MinChance < 1 || c.Director.InitialChance < c.Director.MinChance:
		return fmt.Errorf("director chances out of range: initial %d, min %d", c.Director.InitialChance, c.Director.MinChance)
	case c.Director.SettleFactor <= 0 || c.Director.SettleFactor > 1 || c.Director.WaveFactor <= 0 || c.Director.WaveFactor > 1:
		return fmt.Errorf("director factors must be in (0, 1]")
	case c.Director.SettleTicks >= c.Director.WaveTicks:
		return fmt.Errorf("director.settle_ticks (%d) must be below wave_ticks (%d)", c.Director.SettleTicks, c.Director.WaveTicks)
	}
	return nil
}

// Defaults returns the stock balance.
func Defaults() *Config {
	return &Config{
		Engine: EngineConfig{
			FrameRate: 60,
		},
		Field: FieldConfig{
			Width: ScreenWidth,
			Rows:  8,
			Cols:  ScreenWidth / 84,
		},
		Session: SessionConfig{
			StartingBananas: 50,
		},
		Combat: CombatConfig{
			MaxBiteTargets: 2,
		},
		Director: DirectorConfig{
			GraceTicks:    500,
			SettleTicks:   3600,
			WaveTicks:     5400,
			InitialChance: 500,
			SettleFactor:  0.5,
			WaveFactor:    0.9,
			MinChance:     20,
		},
		Leaderboard: LeaderboardConfig{
			BaseURL: "http://marco.jaros.ch/score",
			Timeout: 10 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		Assets: AssetsConfig{
			Dir: "res",
		},
	}
}
