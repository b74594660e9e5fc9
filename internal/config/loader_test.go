package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/appengine-ltd/walden/internal/game"
)

func TestDefaultMatchesBuiltInLayout(t *testing.T) {
	cfg := Default()
	layout, err := cfg.Layout()
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	want := game.DefaultLayout()
	if layout.Spawn != want.Spawn {
		t.Fatalf("expected spawn %s, got %s", want.Spawn, layout.Spawn)
	}
	if len(layout.Obstacles) != len(want.Obstacles) {
		t.Fatalf("expected %d obstacles, got %d", len(want.Obstacles), len(layout.Obstacles))
	}
	for i := range want.Obstacles {
		if layout.Obstacles[i] != want.Obstacles[i] {
			t.Fatalf("obstacle %d: expected %+v, got %+v", i, want.Obstacles[i], layout.Obstacles[i])
		}
	}
	if cfg.Window.HalfViewport() != game.DefaultHalfViewport {
		t.Fatalf("expected half viewport %s, got %s", game.DefaultHalfViewport, cfg.Window.HalfViewport())
	}
}

func TestLoadFromReaderFillsDefaults(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader("world:\n  spawn: {x: 1, y: 2}\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Log.Level != LogInfo || cfg.Log.Format != FormatText {
		t.Fatalf("expected info/text defaults, got %s/%s", cfg.Log.Level, cfg.Log.Format)
	}
	if cfg.Window.Width != 320 || cfg.Window.Height != 240 || cfg.Window.FPS != 60 {
		t.Fatalf("unexpected window defaults %+v", cfg.Window)
	}
	if cfg.World.Spawn.Vec() != (game.Vec2{X: 1, Y: 2}) {
		t.Fatalf("unexpected spawn %+v", cfg.World.Spawn)
	}
}

func TestLoadFromReaderKeepsDefaultWorld(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader("log:\n  level: debug\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Log.Level != LogDebug {
		t.Fatalf("expected debug level, got %q", cfg.Log.Level)
	}
	layout, err := cfg.Layout()
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	want := game.DefaultLayout()
	if layout.Spawn != want.Spawn || len(layout.Obstacles) != len(want.Obstacles) {
		t.Fatalf("expected the default world, got spawn=%s obstacles=%d", layout.Spawn, len(layout.Obstacles))
	}
	if cfg.Window.Scale != Default().Window.Scale {
		t.Fatalf("expected default scale %d, got %d", Default().Window.Scale, cfg.Window.Scale)
	}
}

func TestLoadFromReaderReplacesObstacleList(t *testing.T) {
	cfg, err := LoadFromReader(strings.NewReader("world:\n  obstacles: []\n"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.World.Obstacles) != 0 {
		t.Fatalf("expected an explicit empty list to clear the ponds, got %+v", cfg.World.Obstacles)
	}
	if cfg.World.Spawn.Vec() != game.DefaultSpawn {
		t.Fatalf("expected default spawn, got %+v", cfg.World.Spawn)
	}
}

func TestLoadFromReaderEmptyDocument(t *testing.T) {
	if _, err := LoadFromReader(strings.NewReader("")); err != nil {
		t.Fatalf("expected an empty document to be valid, got %v", err)
	}
}

func TestLoadFromReaderRejectsUnknownKeys(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("window:\n  colour: red\n"))
	if err == nil || !strings.Contains(err.Error(), "colour") {
		t.Fatalf("expected unknown key error, got %v", err)
	}
}

func TestValidateCollectsAllErrors(t *testing.T) {
	doc := `
log:
  level: chatty
  format: xml
window:
  width: -1
  height: 240
world:
  obstacles:
    - {kind: dragon, x: 0, y: 0}
    - {kind: pond, x: 0, y: 0}
loop:
  fixed_delta: -0.5
`
	_, err := LoadFromReader(strings.NewReader(doc))
	if err == nil {
		t.Fatalf("expected validation errors")
	}
	for _, want := range []string{
		"log.level",
		"log.format",
		"window size",
		"world.obstacles[0]",
		"world.obstacles[1]",
		"loop.fixed_delta",
	} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("expected error to mention %q, got:\n%v", want, err)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "walden.yaml")
	doc := "log: {level: DEBUG}\nworld:\n  obstacles:\n    - {kind: Tree, x: 10, y: 20}\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Log.Level != LogDebug {
		t.Fatalf("expected level to be normalised to debug, got %q", cfg.Log.Level)
	}
	layout, err := cfg.Layout()
	if err != nil {
		t.Fatalf("layout: %v", err)
	}
	if len(layout.Obstacles) != 1 || layout.Obstacles[0].Kind != (game.Tree{}) {
		t.Fatalf("expected a single tree, got %+v", layout.Obstacles)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected an error for a missing file")
	}
}

func TestSchemaUsesYAMLNames(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSchema(&buf); err != nil {
		t.Fatalf("WriteSchema: %v", err)
	}
	out := buf.String()
	for _, want := range []string{`"fixed_delta"`, `"terminal_hz"`, `"obstacles"`, `"json"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %s in schema:\n%s", want, out)
		}
	}
	if strings.Contains(out, `"FixedDelta"`) {
		t.Fatalf("expected yaml field names, got Go names:\n%s", out)
	}
	if strings.Contains(out, `"required"`) {
		t.Fatalf("expected every key to be optional:\n%s", out)
	}
}
