package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts dump calls, the values they carry and the sink failures they hit.
type Metrics struct {
	calls    *prometheus.CounterVec
	values   prometheus.Counter
	failures prometheus.Counter
}

// NewMetrics creates the counters and registers them with reg.
// A nil reg leaves them unregistered.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		calls: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "dumpable_dump_calls_total",
				Help: "Total number of dump calls",
			},
			[]string{"outcome"},
		),
		values: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dumpable_values_total",
			Help: "Total number of values handed to sinks",
		}),
		failures: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dumpable_sink_failures_total",
			Help: "Total number of sink failures",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.calls, m.values, m.failures)
	}
	return m
}

// ObserveDump records one dump call of n values and whether its sink failed.
func (m *Metrics) ObserveDump(n int, err error) {
	if m == nil {
		return
	}
	m.values.Add(float64(n))
	if err != nil {
		m.calls.WithLabelValues("error").Inc()
		m.failures.Inc()
		return
	}
	m.calls.WithLabelValues("ok").Inc()
}
