// Package metrics counts bill operations for the lifetime of the process.
package metrics

import (
	"sort"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "bills"

// Metrics owns a private registry so tests and multiple runs never collide
// with the global default registerer.
type Metrics struct {
	registry   *prometheus.Registry
	operations *prometheus.CounterVec
	stored     prometheus.Gauge
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "operations_total",
			Help:      "Store operations by operation and outcome.",
		}, []string{"operation", "outcome"}),
		stored: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "stored",
			Help:      "Number of bills currently held by the store.",
		}),
	}
	m.registry.MustRegister(m.operations, m.stored)
	return m
}

// ObserveOperation increments the counter for op and outcome.
func (m *Metrics) ObserveOperation(op, outcome string) {
	m.operations.WithLabelValues(op, outcome).Inc()
}

func (m *Metrics) SetStored(n int) {
	m.stored.Set(float64(n))
}

func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// OperationCount is one operation/outcome pair and how often it happened.
type OperationCount struct {
	Operation string
	Outcome   string
	Count     float64
}

// Snapshot gathers the operation counters, sorted by operation then outcome.
func (m *Metrics) Snapshot() ([]OperationCount, error) {
	families, err := m.registry.Gather()
	if err != nil {
		return nil, err
	}

	var out []OperationCount
	for _, mf := range families {
		if mf.GetName() != namespace+"_operations_total" {
			continue
		}
		for _, metric := range mf.GetMetric() {
			oc := OperationCount{Count: metric.GetCounter().GetValue()}
			for _, lp := range metric.GetLabel() {
				switch lp.GetName() {
				case "operation":
					oc.Operation = lp.GetValue()
				case "outcome":
					oc.Outcome = lp.GetValue()
				}
			}
			out = append(out, oc)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Operation != out[j].Operation {
			return out[i].Operation < out[j].Operation
		}
		return out[i].Outcome < out[j].Outcome
	})
	return out, nil
}
