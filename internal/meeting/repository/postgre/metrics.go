package postgre

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
)

const meterName = "meetbot/meeting/repository/postgre"

// storeMetrics counts meeting store operations, their failures and their
// latency, labelled by operation ("create_meeting", "date_lock", ...).
type storeMetrics struct {
	ops      metric.Int64Counter
	failures metric.Int64Counter
	duration metric.Float64Histogram
}

// newStoreMetrics registers the instruments on meter. Instrument errors fall
// back to no-op instruments so a misconfigured provider never blocks the store.
func newStoreMetrics(meter metric.Meter) *storeMetrics {
	ops, err := meter.Int64Counter("meetbot.store.operations",
		metric.WithDescription("Meeting store operations."))
	if err != nil {
		ops = noop.Int64Counter{}
	}
	failures, err := meter.Int64Counter("meetbot.store.failures",
		metric.WithDescription("Meeting store operations that returned an error."))
	if err != nil {
		failures = noop.Int64Counter{}
	}
	duration, err := meter.Float64Histogram("meetbot.store.duration",
		metric.WithDescription("Meeting store operation latency."),
		metric.WithUnit("s"))
	if err != nil {
		duration = noop.Float64Histogram{}
	}
	return &storeMetrics{ops: ops, failures: failures, duration: duration}
}

// observe records one finished operation that started at start.
func (m *storeMetrics) observe(ctx context.Context, op string, start time.Time, err error) {
	attrs := metric.WithAttributes(
		attribute.String("db.system", "postgresql"),
		attribute.String("operation", op),
	)
	m.ops.Add(ctx, 1, attrs)
	m.duration.Record(ctx, time.Since(start).Seconds(), attrs)
	if err != nil {
		m.failures.Add(ctx, 1, attrs)
	}
}
