package metrics_test

import (
	"context"
	"referral/pkg/metrics"
	"sort"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
)

func TestDefaultBucketsSorted(t *testing.T) {
	require.True(t, sort.Float64sAreSorted(metrics.DefaultBuckets))
	require.NotEmpty(t, metrics.DefaultBuckets)
}

func TestMeterProvider_ExportsIntoRegistry(t *testing.T) {
	reg := prometheus.NewRegistry()
	mp, err := metrics.NewMeterProvider(reg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = mp.Shutdown(context.Background()) })

	counter, err := mp.Meter("test").Int64Counter("widgets")
	require.NoError(t, err)
	counter.Add(context.Background(), 3)

	families, err := reg.Gather()
	require.NoError(t, err)

	var found bool
	for _, f := range families {
		if strings.HasPrefix(f.GetName(), "widgets") && f.GetMetric()[0].GetCounter() != nil {
			found = true
			require.InDelta(t, 3, f.GetMetric()[0].GetCounter().GetValue(), 0.0001)
		}
	}
	require.True(t, found, "expected widgets counter to be exported")
}

func TestNewRegistry_HasRuntimeCollectors(t *testing.T) {
	families, err := metrics.NewRegistry().Gather()
	require.NoError(t, err)
	require.NotEmpty(t, families)
}
