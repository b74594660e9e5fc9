// Package config defines the on-disk configuration of walden and its
// loader.
package config

import (
	"fmt"
	"strings"

	"github.com/appengine-ltd/walden/internal/game"
)

// LogLevel is the minimum severity that is logged.
type LogLevel string

const (
	LogDebug LogLevel = "debug"
	LogInfo  LogLevel = "info"
	LogWarn  LogLevel = "warn"
	LogError LogLevel = "error"
)

// IsValid reports whether l is one of the known levels.
func (l LogLevel) IsValid() bool {
	switch l {
	case LogDebug, LogInfo, LogWarn, LogError:
		return true
	}
	return false
}

// LogFormat selects the logrus formatter.
type LogFormat string

const (
	FormatText LogFormat = "text"
	FormatJSON LogFormat = "json"
)

func (f LogFormat) IsValid() bool {
	return f == FormatText || f == FormatJSON
}

// Config is the root of the YAML document.
type Config struct {
	Log    LogConfig    `yaml:"log" json:"log"`
	Window WindowConfig `yaml:"window" json:"window"`
	World  WorldConfig  `yaml:"world" json:"world"`
	Loop   LoopConfig   `yaml:"loop" json:"loop"`
}

type LogConfig struct {
	Level  LogLevel  `yaml:"level" json:"level" jsonschema:"enum=debug,enum=info,enum=warn,enum=error,default=info"`
	Format LogFormat `yaml:"format" json:"format" jsonschema:"enum=text,enum=json,default=text"`

	// File receives log output instead of stderr. The terminal client
	// discards logs when it is empty.
	File string `yaml:"file" json:"file" jsonschema:"description=Append log output to this file"`
}

// WindowConfig sizes the view. Width and Height are the logical viewport
// in world units; Scale multiplies them into window pixels.
type WindowConfig struct {
	Title  string `yaml:"title" json:"title" jsonschema:"default=Walden"`
	Width  int    `yaml:"width" json:"width" jsonschema:"minimum=1,default=320"`
	Height int    `yaml:"height" json:"height" jsonschema:"minimum=1,default=240"`
	Scale  int    `yaml:"scale" json:"scale" jsonschema:"minimum=1,default=3"`
	FPS    int    `yaml:"fps" json:"fps" jsonschema:"minimum=1,default=60"`
}

// HalfViewport is the camera offset that centres the player.
func (w WindowConfig) HalfViewport() game.Vec2 {
	return game.Vec2{X: float32(w.Width) / 2, Y: float32(w.Height) / 2}
}

type Point struct {
	X float32 `yaml:"x" json:"x"`
	Y float32 `yaml:"y" json:"y"`
}

func (p Point) Vec() game.Vec2 {
	return game.Vec2{X: p.X, Y: p.Y}
}

// Obstacle places one entity of the named kind. Radius is only read for
// ponds.
type Obstacle struct {
	Kind   string  `yaml:"kind" json:"kind" jsonschema:"description=Entity kind such as pond or tree (case insensitive)"`
	X      float32 `yaml:"x" json:"x"`
	Y      float32 `yaml:"y" json:"y"`
	Radius float32 `yaml:"radius,omitempty" json:"radius,omitempty" jsonschema:"description=Pond radius in world units"`
}

type WorldConfig struct {
	Spawn     Point      `yaml:"spawn" json:"spawn"`
	Obstacles []Obstacle `yaml:"obstacles" json:"obstacles"`
}

// LoopConfig controls the frame clock. A zero FixedDelta means wall clock
// time; a zero MaxTicks means no limit.
type LoopConfig struct {
	FixedDelta float32 `yaml:"fixed_delta" json:"fixed_delta" jsonschema:"minimum=0,description=Seconds per tick; 0 uses the wall clock"`
	MaxTicks   int     `yaml:"max_ticks" json:"max_ticks" jsonschema:"minimum=0,description=Replay tick limit; 0 means none"`
	TerminalHz int     `yaml:"terminal_hz" json:"terminal_hz" jsonschema:"minimum=1,maximum=240,default=30"`
}

// Layout resolves the world section into a game layout.
func (c *Config) Layout() (game.Layout, error) {
	layout := game.Layout{Spawn: c.World.Spawn.Vec()}
	for i, o := range c.World.Obstacles {
		kind, err := game.KindByName(o.Kind, o.Radius)
		if err != nil {
			return game.Layout{}, fmt.Errorf("world.obstacles[%d]: %w", i, err)
		}
		layout.Obstacles = append(layout.Obstacles, game.Placement{
			Kind:     kind,
			Position: game.Vec2{X: o.X, Y: o.Y},
		})
	}
	return layout, nil
}

func normalize(cfg *Config) {
	cfg.Log.Level = LogLevel(strings.ToLower(strings.TrimSpace(string(cfg.Log.Level))))
	cfg.Log.Format = LogFormat(strings.ToLower(strings.TrimSpace(string(cfg.Log.Format))))
	if cfg.Log.Level == "" {
		cfg.Log.Level = LogInfo
	}
	if cfg.Log.Format == "" {
		cfg.Log.Format = FormatText
	}
	if cfg.Window.Title == "" {
		cfg.Window.Title = "Walden"
	}
	if cfg.Window.Width == 0 && cfg.Window.Height == 0 {
		cfg.Window.Width = int(game.DefaultViewport.X)
		cfg.Window.Height = int(game.DefaultViewport.Y)
	}
	if cfg.Window.Scale == 0 {
		cfg.Window.Scale = 1
	}
	if cfg.Window.FPS == 0 {
		cfg.Window.FPS = 60
	}
	if cfg.Loop.TerminalHz == 0 {
		cfg.Loop.TerminalHz = 30
	}
}
