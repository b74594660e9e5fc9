package replay

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/appengine-ltd/walden/internal/game"
	"github.com/appengine-ltd/walden/internal/observe"
	"github.com/appengine-ltd/walden/internal/parser"
)

type Options struct {
	Layout       game.Layout
	HalfViewport game.Vec2
	Delta        float32
	MaxTicks     int
	Log          logrus.FieldLogger

	// Recorder, when set, receives every record next to the replay's own
	// counters.
	Recorder game.Recorder
}

// Result is the state of a finished replay.
type Result struct {
	Session *game.Session
	Ticks   int
	Elapsed float32
	Metrics observe.Summary
}

// Play builds a world from opts, replays script against it and collects
// the gameplay counters through a private meter provider. The returned
// error joins failed expectations with any run error; Result is valid
// whenever the world could be built.
func Play(ctx context.Context, script parser.Script, opts Options) (*Result, error) {
	world, err := game.NewWorld(opts.Layout, opts.Log)
	if err != nil {
		return nil, fmt.Errorf("replay: build world: %w", err)
	}

	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = mp.Shutdown(context.Background()) }()
	metrics, err := observe.NewMetrics(mp)
	if err != nil {
		return nil, fmt.Errorf("replay: metrics: %w", err)
	}

	session := game.NewSession(world, game.SessionConfig{
		HalfViewport: opts.HalfViewport,
		Log:          opts.Log,
		Recorder:     observe.Tee(metrics, opts.Recorder),
	})
	runner := NewRunner(session, opts.Delta, opts.MaxTicks, opts.Log)
	runErr := runner.Run(ctx, script)

	res := &Result{Session: session, Ticks: runner.Ticks(), Elapsed: runner.Elapsed()}
	res.Metrics, err = observe.Collect(context.WithoutCancel(ctx), reader)
	if err != nil && runErr == nil {
		runErr = err
	}
	return res, runErr
}

// Report writes a human readable summary of the final state.
func (r *Result) Report(w io.Writer) error {
	world := r.Session.World
	p := world.Player()
	pos := world.PlayerPosition()

	lines := []string{
		fmt.Sprintf("ticks:     %d (%.2fs)", r.Ticks, r.Elapsed),
		fmt.Sprintf("position:  %s", pos),
		fmt.Sprintf("log speed: %s", p.LogSpeed),
		fmt.Sprintf("stats:     thirst %.3f  hunger %.3f  sleep %.3f", p.Thirst, p.Hunger, p.Sleep),
		fmt.Sprintf("selector:  %s", r.Session.Selector.State),
		fmt.Sprintf("camera:    %s", r.Session.Camera.Pos),
	}
	for _, d := range game.Directions {
		name := "-"
		if item, ok := p.Hands.Get(d); ok {
			name = item.String()
		}
		marker := " "
		if d == p.CurrentHand {
			marker = "*"
		}
		lines = append(lines, fmt.Sprintf("hand %-5s %s %s", d, marker, name))
	}
	for _, key := range r.Metrics.Keys() {
		lines = append(lines, fmt.Sprintf("metric %s = %d", key, r.Metrics[key]))
	}
	for _, line := range lines {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// LogMetrics writes the collected counters to log at info level.
func (r *Result) LogMetrics(log logrus.FieldLogger) {
	fields := logrus.Fields{}
	for _, key := range r.Metrics.Keys() {
		fields[key] = r.Metrics[key]
	}
	log.WithFields(fields).Info("replay metrics")
}
