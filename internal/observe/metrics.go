// Package observe records gameplay counters through the OpenTelemetry
// metrics API. Tests and the headless replay read them back with a
// ManualReader.
package observe

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"

	"github.com/appengine-ltd/walden/internal/game"
)

const meterName = "github.com/appengine-ltd/walden"

const (
	MetricTicks       = "walden.ticks"
	MetricTickDelta   = "walden.tick.delta"
	MetricItemActions = "walden.item.actions"
	MetricTransitions = "walden.selector.transitions"
	MetricHandSwaps   = "walden.hand.swaps"
)

// Metrics holds the instruments and implements game.Recorder.
type Metrics struct {
	Ticks metric.Int64Counter

	// TickDelta is the frame time fed to each tick, in seconds.
	TickDelta metric.Float64Histogram

	// ItemActions counts item uses. Attributes: item, outcome.
	ItemActions metric.Int64Counter

	// Transitions counts selector state changes. Attributes: from, to.
	Transitions metric.Int64Counter

	HandSwaps metric.Int64Counter
}

var deltaBuckets = []float64{
	0.001, 0.004, 0.008, 0.016, 0.033, 0.05, 0.1, 0.25, 1,
}

// NewMetrics creates every instrument on mp.
func NewMetrics(mp metric.MeterProvider) (*Metrics, error) {
	m := mp.Meter(meterName)
	var err error
	met := &Metrics{}

	if met.Ticks, err = m.Int64Counter(MetricTicks,
		metric.WithDescription("Simulation ticks run."),
	); err != nil {
		return nil, err
	}
	if met.TickDelta, err = m.Float64Histogram(MetricTickDelta,
		metric.WithDescription("Frame time handed to each tick."),
		metric.WithUnit("s"),
		metric.WithExplicitBucketBoundaries(deltaBuckets...),
	); err != nil {
		return nil, err
	}
	if met.ItemActions, err = m.Int64Counter(MetricItemActions,
		metric.WithDescription("Item actions by item and outcome."),
	); err != nil {
		return nil, err
	}
	if met.Transitions, err = m.Int64Counter(MetricTransitions,
		metric.WithDescription("Item selector transitions by source and target state."),
	); err != nil {
		return nil, err
	}
	if met.HandSwaps, err = m.Int64Counter(MetricHandSwaps,
		metric.WithDescription("Active hand changes."),
	); err != nil {
		return nil, err
	}
	return met, nil
}

var (
	defaultMetrics     *Metrics
	defaultMetricsOnce sync.Once
)

// DefaultMetrics returns a shared instance bound to otel.GetMeterProvider.
// With no SDK installed the instruments are no-ops.
func DefaultMetrics() *Metrics {
	defaultMetricsOnce.Do(func() {
		var err error
		defaultMetrics, err = NewMetrics(otel.GetMeterProvider())
		if err != nil {
			panic("observe: failed to create default metrics: " + err.Error())
		}
	})
	return defaultMetrics
}

var _ game.Recorder = (*Metrics)(nil)

func (m *Metrics) RecordTick(delta float32) {
	ctx := context.Background()
	m.Ticks.Add(ctx, 1)
	m.TickDelta.Record(ctx, float64(delta))
}

func (m *Metrics) RecordTransition(from, to string) {
	m.Transitions.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("from", from),
		attribute.String("to", to),
	))
}

func (m *Metrics) RecordAction(item string, outcome game.Outcome) {
	m.ItemActions.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("item", item),
		attribute.String("outcome", string(outcome)),
	))
}

func (m *Metrics) RecordSwap(from, to game.Direction) {
	m.HandSwaps.Add(context.Background(), 1, metric.WithAttributes(
		attribute.String("from", from.String()),
		attribute.String("to", to.String()),
	))
}
