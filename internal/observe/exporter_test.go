package observe

import (
	"bytes"
	"context"
	"strings"
	"testing"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"

	"github.com/appengine-ltd/walden/internal/game"
)

func TestExporterWritesPrometheusText(t *testing.T) {
	exp, err := NewExporter()
	if err != nil {
		t.Fatalf("NewExporter: %v", err)
	}
	t.Cleanup(func() { _ = exp.Shutdown(context.Background()) })

	exp.Metrics.RecordTick(1.0 / 60)
	exp.Metrics.RecordSwap(game.Up, game.Left)

	var buf bytes.Buffer
	if err := exp.WriteText(&buf); err != nil {
		t.Fatalf("WriteText: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"walden_ticks_total", "walden_hand_swaps_total", `to="left"`} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in exposition:\n%s", want, out)
		}
	}
}

func TestTeeFansOutAndSkipsNil(t *testing.T) {
	a, ra := newTestMetrics(t)
	b, rb := newTestMetrics(t)
	rec := Tee(a, nil, b)

	rec.RecordTick(0.01)
	rec.RecordTransition("idle", "deciding")
	rec.RecordAction("axe", game.OutcomeInert)
	rec.RecordSwap(game.Up, game.Down)

	for _, reader := range []*sdkmetric.ManualReader{ra, rb} {
		s := collect(t, reader)
		if s.Total(MetricTicks) != 1 || s.Total(MetricHandSwaps) != 1 || s.Total(MetricTransitions) != 1 || s.Total(MetricItemActions) != 1 {
			t.Fatalf("expected one of each record, got %v", s)
		}
	}
}
