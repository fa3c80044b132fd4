package server

import (
	"github.com/enetx/automaton"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts finished runs and individual steps.
type Metrics struct {
	Runs  *prometheus.CounterVec
	Steps *prometheus.CounterVec
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Runs: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automaton_runs_total",
				Help: "Total number of finished runs by automaton kind and final status",
			},
			[]string{"kind", "status"},
		),
		Steps: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "automaton_steps_total",
				Help: "Total number of debugger steps by automaton kind",
			},
			[]string{"kind"},
		),
	}

	reg.MustRegister(m.Runs, m.Steps)

	return m
}

func (m *Metrics) finished(kind automaton.Kind, status automaton.RunStatus) {
	m.Runs.WithLabelValues(string(kind), string(status)).Inc()
}

func (m *Metrics) stepped(kind automaton.Kind) {
	m.Steps.WithLabelValues(string(kind)).Inc()
}
