package observe

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// CompletionKind labels how a subscription ended.
const (
	CompletionFinished  = "finished"
	CompletionFailed    = "failed"
	CompletionCancelled = "cancelled"
)

// Metrics records stream activity. All methods are safe for concurrent use
// and cheap enough to sit on the value path.
type Metrics struct {
	valuesTotal      metric.Int64Counter
	completionsTotal metric.Int64Counter
	activeSubs       metric.Int64UpDownCounter
}

// NewMetrics creates the stream instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	valuesTotal, err := meter.Int64Counter("stream.values.total",
		metric.WithDescription("Total number of values delivered downstream"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.values.total counter: %w", err)
	}

	completionsTotal, err := meter.Int64Counter("stream.completions.total",
		metric.WithDescription("Total number of terminal completions by kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.completions.total counter: %w", err)
	}

	activeSubs, err := meter.Int64UpDownCounter("stream.subscriptions.active",
		metric.WithDescription("Number of currently active subscriptions"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating stream.subscriptions.active gauge: %w", err)
	}

	return &Metrics{
		valuesTotal:      valuesTotal,
		completionsTotal: completionsTotal,
		activeSubs:       activeSubs,
	}, nil
}

// RecordSubscribe increments the active subscription count.
func (m *Metrics) RecordSubscribe(ctx context.Context, streamName string) {
	m.activeSubs.Add(ctx, 1, metric.WithAttributes(
		attribute.String("stream", streamName),
	))
}

// RecordValue counts one value delivered downstream.
func (m *Metrics) RecordValue(ctx context.Context, streamName string) {
	m.valuesTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("stream", streamName),
	))
}

// RecordCompletion decrements the active subscription count and counts the
// terminal by kind (finished, failed, or cancelled).
func (m *Metrics) RecordCompletion(ctx context.Context, streamName, kind string) {
	attrs := metric.WithAttributes(
		attribute.String("stream", streamName),
		attribute.String("kind", kind),
	)
	m.completionsTotal.Add(ctx, 1, attrs)
	m.activeSubs.Add(ctx, -1, metric.WithAttributes(
		attribute.String("stream", streamName),
	))
}
