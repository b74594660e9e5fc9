package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/appengine-ltd/walden/internal/game"
)

//go:embed default.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() *Config {
	cfg, err := decode(bytes.NewReader(defaultYAML), &Config{})
	if err != nil {
		panic(fmt.Sprintf("config: embedded default is invalid: %v", err))
	}
	return cfg
}

// Load reads the YAML file at path and returns a validated Config.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: open %q: %w", path, err)
	}
	defer f.Close()

	cfg, err := LoadFromReader(f)
	if err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return cfg, nil
}

// LoadFromReader decodes a YAML config from r on top of Default and
// validates the result. Keys missing from r keep their default value and
// a list replaces the default list. Unknown keys are rejected.
func LoadFromReader(r io.Reader) (*Config, error) {
	return decode(r, Default())
}

func decode(r io.Reader, cfg *Config) (*Config, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode yaml: %w", err)
	}
	normalize(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks cfg and returns every problem found joined together.
func Validate(cfg *Config) error {
	var errs []error

	if cfg.Log.Level != "" && !cfg.Log.Level.IsValid() {
		errs = append(errs, fmt.Errorf("log.level %q is invalid; valid values: debug, info, warn, error", cfg.Log.Level))
	}
	if cfg.Log.Format != "" && !cfg.Log.Format.IsValid() {
		errs = append(errs, fmt.Errorf("log.format %q is invalid; valid values: text, json", cfg.Log.Format))
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", cfg.Window.Width, cfg.Window.Height))
	}
	if cfg.Window.Scale < 1 {
		errs = append(errs, fmt.Errorf("window.scale %d must be at least 1", cfg.Window.Scale))
	}
	if cfg.Window.FPS < 1 {
		errs = append(errs, fmt.Errorf("window.fps %d must be at least 1", cfg.Window.FPS))
	}

	for i, o := range cfg.World.Obstacles {
		if _, err := game.KindByName(o.Kind, o.Radius); err != nil {
			errs = append(errs, fmt.Errorf("world.obstacles[%d]: %w", i, err))
		}
	}

	if cfg.Loop.FixedDelta < 0 {
		errs = append(errs, fmt.Errorf("loop.fixed_delta %.3f must not be negative", cfg.Loop.FixedDelta))
	}
	if cfg.Loop.MaxTicks < 0 {
		errs = append(errs, fmt.Errorf("loop.max_ticks %d must not be negative", cfg.Loop.MaxTicks))
	}
	if cfg.Loop.TerminalHz < 1 || cfg.Loop.TerminalHz > 240 {
		errs = append(errs, fmt.Errorf("loop.terminal_hz %d is out of range [1, 240]", cfg.Loop.TerminalHz))
	}

	return errors.Join(errs...)
}
