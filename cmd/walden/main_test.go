package main

import (
	"bytes"
	"context"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "walden.yaml")
	doc := "log:\n  level: debug\n  file: " + filepath.Join(dir, "walden.log") + "\n" +
		"window:\n  width: 160\n  height: 120\n  scale: 2\n" +
		"world:\n  spawn: {x: 0, y: 0}\n  obstacles:\n    - {kind: pond, x: 0, y: -40, radius: 30}\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestRunPrintsVersion(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), []string{"-version"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.HasPrefix(out.String(), "Walden dev") {
		t.Fatalf("unexpected version line %q", out.String())
	}
}

func TestRunPrintsConfigSchema(t *testing.T) {
	var out bytes.Buffer
	if err := run(context.Background(), []string{"-config-schema"}, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), `"Walden config"`) {
		t.Fatalf("expected the schema title, got:\n%s", out.String())
	}
}

func TestRunReplaysScriptAndWritesSnapshot(t *testing.T) {
	dir := t.TempDir()
	shot := filepath.Join(dir, "final.png")
	prom := filepath.Join(dir, "walden.prom")
	args := []string{
		"-metrics", prom,
		"-config", writeConfig(t, dir),
		"-script", filepath.Join("testdata", "drink.txt"),
		"-snapshot", shot,
	}

	var out bytes.Buffer
	if err := run(context.Background(), args, &out); err != nil {
		t.Fatalf("run: %v\n%s", err, out.String())
	}
	if !strings.Contains(out.String(), "bottle(empty)") {
		t.Fatalf("expected the report to show the empty bottle:\n%s", out.String())
	}

	f, err := os.Open(shot)
	if err != nil {
		t.Fatalf("open snapshot: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if cfg.Width != 320 || cfg.Height != 240 {
		t.Fatalf("expected a 320x240 snapshot, got %dx%d", cfg.Width, cfg.Height)
	}

	promData, err := os.ReadFile(prom)
	if err != nil {
		t.Fatalf("read metrics: %v", err)
	}
	if !strings.Contains(string(promData), "walden_hand_swaps_total") {
		t.Fatalf("expected the swap counter in the metrics dump, got:\n%s", promData)
	}

	logData, err := os.ReadFile(filepath.Join(dir, "walden.log"))
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	if !strings.Contains(string(logData), "Drinking water") {
		t.Fatalf("expected the drink to be logged, got:\n%s", logData)
	}
}

func TestRunReportsFailedExpectations(t *testing.T) {
	dir := t.TempDir()
	script := filepath.Join(dir, "bad.txt")
	if err := os.WriteFile(script, []byte("wait 1\nexpect hand right\n"), 0o644); err != nil {
		t.Fatalf("write script: %v", err)
	}
	var out bytes.Buffer
	err := run(context.Background(), []string{"-config", writeConfig(t, dir), "-script", script}, &out)
	if err == nil || !strings.Contains(err.Error(), "hand") {
		t.Fatalf("expected a failed hand expectation, got %v", err)
	}
	if out.Len() == 0 {
		t.Fatalf("expected a report even when expectations fail")
	}
}

func TestRunRejectsBadInvocations(t *testing.T) {
	cases := map[string][]string{
		"snapshot without script": {"-snapshot", "x.png"},
		"missing config file":     {"-config", "does-not-exist.yaml", "-script", "x"},
		"unknown flag":            {"-fly"},
	}
	for name, args := range cases {
		t.Run(name, func(t *testing.T) {
			if err := run(context.Background(), args, &bytes.Buffer{}); err == nil {
				t.Fatalf("expected an error for %v", args)
			}
		})
	}
}
