package observability_test

import (
	"errors"
	"testing"

	"github.com/aretw0/dumpable/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetrics_ObserveDump(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	m := observability.NewMetrics(reg)

	m.ObserveDump(3, nil)
	m.ObserveDump(2, errors.New("sink closed"))
	m.ObserveDump(0, nil)

	n, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Equal(t, 4, n, "two call outcomes, values and failures")

	assert.Equal(t, 5.0, counterValue(t, reg, "dumpable_values_total"))
	assert.Equal(t, 1.0, counterValue(t, reg, "dumpable_sink_failures_total"))
}

func TestMetrics_Nil(t *testing.T) {
	var m *observability.Metrics
	assert.NotPanics(t, func() { m.ObserveDump(1, errors.New("x")) })
}

func TestMetrics_Unregistered(t *testing.T) {
	m := observability.NewMetrics(nil)
	assert.NotPanics(t, func() { m.ObserveDump(1, nil) })
}

func counterValue(t *testing.T, reg prometheus.Gatherer, name string) float64 {
	t.Helper()
	families, err := reg.Gather()
	require.NoError(t, err)
	for _, f := range families {
		if f.GetName() == name {
			require.Len(t, f.GetMetric(), 1)
			return f.GetMetric()[0].GetCounter().GetValue()
		}
	}
	t.Fatalf("metric %s not gathered", name)
	return 0
}
