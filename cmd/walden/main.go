package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"

	"github.com/appengine-ltd/walden/internal/config"
	"github.com/appengine-ltd/walden/internal/game"
	"github.com/appengine-ltd/walden/internal/logger"
	"github.com/appengine-ltd/walden/internal/observe"
	"github.com/appengine-ltd/walden/internal/parser"
	"github.com/appengine-ltd/walden/internal/replay"
	"github.com/appengine-ltd/walden/internal/scene"
	"github.com/appengine-ltd/walden/internal/snapshot"
	"github.com/appengine-ltd/walden/internal/ui"
)

// version, commit, date are injected at build time.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

type options struct {
	configPath   string
	scriptPath   string
	snapshotPath string
	metricsPath  string
	terminal     bool
	showVersion  bool
	printSchema  bool
	ticks        int
	delta        float64
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := run(ctx, os.Args[1:], os.Stdout)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	var opts options
	fs := flag.NewFlagSet("walden", flag.ContinueOnError)
	fs.StringVar(&opts.configPath, "config", "", "YAML config file (defaults to the built-in world)")
	fs.BoolVar(&opts.terminal, "terminal", false, "play in the terminal instead of a window")
	fs.StringVar(&opts.scriptPath, "script", "", "replay an input script headlessly and print the final state")
	fs.StringVar(&opts.snapshotPath, "snapshot", "", "write the final frame of a replay to this PNG file")
	fs.StringVar(&opts.metricsPath, "metrics", "", "write gameplay counters in Prometheus text format to this file on exit")
	fs.IntVar(&opts.ticks, "ticks", -1, "stop after this many ticks (0 means no limit)")
	fs.Float64Var(&opts.delta, "delta", -1, "fixed frame time in seconds (0 means wall clock)")
	fs.BoolVar(&opts.printSchema, "config-schema", false, "print the JSON Schema of the config file and exit")
	fs.BoolVar(&opts.showVersion, "version", false, "print version and exit")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil
		}
		return err
	}

	if opts.showVersion {
		fmt.Fprintf(stdout, "Walden %s (%s) %s\n", version, commit, date)
		return nil
	}
	if opts.printSchema {
		return config.WriteSchema(stdout)
	}
	if opts.snapshotPath != "" && opts.scriptPath == "" {
		return errors.New("-snapshot needs -script")
	}

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}
	interactiveTerminal := opts.scriptPath == "" && (opts.terminal || !windowSupported)
	log, closeLog, err := openLogger(cfg, interactiveTerminal)
	if err != nil {
		return err
	}
	defer closeLog()

	layout, err := cfg.Layout()
	if err != nil {
		return err
	}

	var recorder game.Recorder = observe.DefaultMetrics()
	if opts.metricsPath != "" {
		exporter, err := observe.NewExporter()
		if err != nil {
			return err
		}
		defer func() { _ = exporter.Shutdown(context.Background()) }()
		defer writeMetrics(opts.metricsPath, exporter, log)
		recorder = exporter.Metrics
	}

	if opts.scriptPath != "" {
		return replayScript(ctx, opts, cfg, layout, recorder, log, stdout)
	}

	world, err := game.NewWorld(layout, log)
	if err != nil {
		return err
	}
	session := game.NewSession(world, game.SessionConfig{
		HalfViewport: cfg.Window.HalfViewport(),
		Log:          log,
		Recorder:     recorder,
	})

	if interactiveTerminal {
		return ui.NewApp(ui.AppConfig{
			Version:    version,
			Session:    session,
			Hz:         cfg.Loop.TerminalHz,
			FixedDelta: cfg.Loop.FixedDelta,
			Log:        log,
		}).Run()
	}
	return runWindow(session, cfg, log)
}

func loadConfig(opts options) (*config.Config, error) {
	cfg := config.Default()
	if opts.configPath != "" {
		loaded, err := config.Load(opts.configPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}
	if opts.ticks >= 0 {
		cfg.Loop.MaxTicks = opts.ticks
	}
	if opts.delta >= 0 {
		cfg.Loop.FixedDelta = float32(opts.delta)
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// openLogger routes logs to the configured file. Without one, logs go to
// stderr unless the terminal client owns the screen.
func openLogger(cfg *config.Config, ownsTerminal bool) (*logrus.Logger, func(), error) {
	opts := logger.Options{Level: string(cfg.Log.Level), Format: string(cfg.Log.Format)}
	switch {
	case cfg.Log.File != "":
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		opts.Output = f
		return logger.Init(opts), func() { _ = f.Close() }, nil
	case ownsTerminal:
		return logger.Discard(), func() {}, nil
	default:
		return logger.Init(opts), func() {}, nil
	}
}

func replayScript(ctx context.Context, opts options, cfg *config.Config, layout game.Layout, recorder game.Recorder, log logrus.FieldLogger, stdout io.Writer) error {
	f, err := os.Open(opts.scriptPath)
	if err != nil {
		return fmt.Errorf("open script: %w", err)
	}
	script, err := parser.ParseScript(f)
	_ = f.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", opts.scriptPath, err)
	}

	res, playErr := replay.Play(ctx, script, replay.Options{
		Layout:       layout,
		HalfViewport: cfg.Window.HalfViewport(),
		Delta:        cfg.Loop.FixedDelta,
		MaxTicks:     cfg.Loop.MaxTicks,
		Log:          log,
		Recorder:     recorder,
	})
	if res == nil {
		return playErr
	}
	if err := res.Report(stdout); err != nil {
		return err
	}
	res.LogMetrics(log)

	if opts.snapshotPath != "" {
		frame := scene.Build(res.Session)
		if err := snapshot.SavePNG(opts.snapshotPath, frame, float64(cfg.Window.Scale)); err != nil {
			return errors.Join(playErr, err)
		}
		log.WithField("path", opts.snapshotPath).Info("snapshot written")
	}
	return playErr
}

func writeMetrics(path string, exporter *observe.Exporter, log logrus.FieldLogger) {
	f, err := os.Create(path)
	if err != nil {
		log.WithError(err).Error("failed to create metrics file")
		return
	}
	defer f.Close()
	if err := exporter.WriteText(f); err != nil {
		log.WithError(err).Error("failed to write metrics")
		return
	}
	log.WithField("path", path).Info("metrics written")
}
