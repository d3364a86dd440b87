package postgre

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestStoreMetricsObserve(t *testing.T) {
	reader := sdkmetric.NewManualReader()
	provider := sdkmetric.NewMeterProvider(sdkmetric.WithReader(reader))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	m := newStoreMetrics(provider.Meter(meterName))
	ctx := context.Background()
	m.observe(ctx, "create_meeting", time.Now(), nil)
	m.observe(ctx, "create_meeting", time.Now(), errors.New("boom"))
	m.observe(ctx, "date_lock", time.Now(), nil)

	var rm metricdata.ResourceMetrics
	require.NoError(t, reader.Collect(ctx, &rm))

	sums := map[string]int64{}
	var histograms int
	for _, sm := range rm.ScopeMetrics {
		for _, md := range sm.Metrics {
			switch data := md.Data.(type) {
			case metricdata.Sum[int64]:
				for _, dp := range data.DataPoints {
					sums[md.Name] += dp.Value
				}
			case metricdata.Histogram[float64]:
				for _, dp := range data.DataPoints {
					histograms += int(dp.Count)
				}
			}
		}
	}

	assert.Equal(t, int64(3), sums["meetbot.store.operations"])
	assert.Equal(t, int64(1), sums["meetbot.store.failures"])
	assert.Equal(t, 3, histograms)
}
