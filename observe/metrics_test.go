package observe

import (
	"context"
	"testing"

	"go.opentelemetry.io/otel/attribute"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func collect(t *testing.T, reader *sdkmetric.ManualReader) metricdata.ResourceMetrics {
	t.Helper()
	var rm metricdata.ResourceMetrics
	if err := reader.Collect(context.Background(), &rm); err != nil {
		t.Fatalf("collecting metrics: %v", err)
	}
	return rm
}

func findSum(t *testing.T, rm metricdata.ResourceMetrics, name string) metricdata.Sum[int64] {
	t.Helper()
	for _, scope := range rm.ScopeMetrics {
		for _, m := range scope.Metrics {
			if m.Name == name {
				sum, ok := m.Data.(metricdata.Sum[int64])
				if !ok {
					t.Fatalf("%s: unexpected data type %T", name, m.Data)
				}
				return sum
			}
		}
	}
	t.Fatalf("instrument %s not found", name)
	return metricdata.Sum[int64]{}
}

func TestMetricsRecordLifecycle(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = mp.Shutdown(context.Background()) }()

	m, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("creating metrics: %v", err)
	}

	ctx := context.Background()
	m.RecordSubscribe(ctx, "events")
	m.RecordValue(ctx, "events")
	m.RecordValue(ctx, "events")
	m.RecordCompletion(ctx, "events", CompletionFinished)

	rm := collect(t, reader)

	values := findSum(t, rm, "stream.values.total")
	if len(values.DataPoints) != 1 || values.DataPoints[0].Value != 2 {
		t.Errorf("values.total: unexpected data points %+v", values.DataPoints)
	}

	completions := findSum(t, rm, "stream.completions.total")
	if len(completions.DataPoints) != 1 || completions.DataPoints[0].Value != 1 {
		t.Fatalf("completions.total: unexpected data points %+v", completions.DataPoints)
	}
	kind, ok := completions.DataPoints[0].Attributes.Value(attribute.Key("kind"))
	if !ok || kind.AsString() != CompletionFinished {
		t.Errorf("completion kind attribute = %v", kind)
	}

	active := findSum(t, rm, "stream.subscriptions.active")
	if len(active.DataPoints) != 1 || active.DataPoints[0].Value != 0 {
		t.Errorf("subscriptions.active: unexpected data points %+v", active.DataPoints)
	}
}

func TestMetricsSeparateStreams(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	mp := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	defer func() { _ = mp.Shutdown(context.Background()) }()

	m, err := NewMetrics(mp.Meter("test"))
	if err != nil {
		t.Fatalf("creating metrics: %v", err)
	}

	ctx := context.Background()
	m.RecordValue(ctx, "a")
	m.RecordValue(ctx, "a")
	m.RecordValue(ctx, "b")

	values := findSum(t, collect(t, reader), "stream.values.total")
	if len(values.DataPoints) != 2 {
		t.Fatalf("expected one data point per stream, got %+v", values.DataPoints)
	}
	byStream := map[string]int64{}
	for _, dp := range values.DataPoints {
		name, _ := dp.Attributes.Value(attribute.Key("stream"))
		byStream[name.AsString()] = dp.Value
	}
	if byStream["a"] != 2 || byStream["b"] != 1 {
		t.Errorf("unexpected per-stream counts: %v", byStream)
	}
}
