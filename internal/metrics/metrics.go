// Package metrics exposes allocation counters in the Prometheus format.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/shopspring/decimal"
)

const namespace = "ascend"

const (
	ScopeGoal      = "goal"
	ScopeGroupGoal = "group_goal"
)

// Metrics is safe to use as a nil pointer; every recorder is then a no-op.
type Metrics struct {
	registry        *prometheus.Registry
	allocations     *prometheus.CounterVec
	allocatedAmount *prometheus.CounterVec
	completions     *prometheus.CounterVec
	duplicates      prometheus.Counter
	batchItems      *prometheus.CounterVec
}

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		allocations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocations_total",
			Help:      "Ledger entries written, by kind.",
		}, []string{"kind"}),
		allocatedAmount: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "allocated_amount_total",
			Help:      "Money credited to goals, by kind.",
		}, []string{"kind"}),
		completions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "goal_completions_total",
			Help:      "Goals that reached their target.",
		}, []string{"scope"}),
		duplicates: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "duplicate_allocations_total",
			Help:      "Round-ups rejected because the source transaction was already allocated.",
		}),
		batchItems: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_items_total",
			Help:      "Batch round-up items, by outcome.",
		}, []string{"outcome"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.allocations,
		m.allocatedAmount,
		m.completions,
		m.duplicates,
		m.batchItems,
	)
	return m
}

func (m *Metrics) Allocation(kind string, amount decimal.Decimal) {
	if m == nil {
		return
	}
	m.allocations.WithLabelValues(kind).Inc()
	m.allocatedAmount.WithLabelValues(kind).Add(amount.InexactFloat64())
}

func (m *Metrics) Completion(scope string) {
	if m == nil {
		return
	}
	m.completions.WithLabelValues(scope).Inc()
}

func (m *Metrics) Duplicate() {
	if m == nil {
		return
	}
	m.duplicates.Inc()
}

func (m *Metrics) BatchItem(outcome string) {
	if m == nil {
		return
	}
	m.batchItems.WithLabelValues(outcome).Inc()
}

func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
