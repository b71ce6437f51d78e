package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/clarksmr/groupeng/types"
)

// PrometheusCollector implements types.MetricsCollector backed by Prometheus.
//
// Collectors are registered lazily on first use so constructing the collector
// never panics on duplicate registration in tests.
type PrometheusCollector struct {
	reg       prometheus.Registerer
	namespace string
	once      sync.Once

	runDuration     *prometheus.HistogramVec
	phaseTransition *prometheus.HistogramVec
	groupCount      prometheus.Gauge
	phantomCount    prometheus.Gauge

	enforcementDuration *prometheus.HistogramVec
	swaps               *prometheus.CounterVec
	ruleFailures        *prometheus.GaugeVec
	reconcilePasses     *prometheus.CounterVec
}

// Compile-time assertion that PrometheusCollector implements MetricsCollector.
var _ types.MetricsCollector = (*PrometheusCollector)(nil)

// NewPrometheus creates a new Prometheus-backed metrics collector.
//
// Parameters:
//   - reg: Prometheus registerer interface (uses prometheus.DefaultRegisterer if nil)
//   - namespace: Prometheus metrics namespace (defaults to "groupeng" if empty)
//
// Returns:
//   - *PrometheusCollector: A MetricsCollector implementation using Prometheus
func NewPrometheus(reg prometheus.Registerer, namespace string) *PrometheusCollector {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	if namespace == "" {
		namespace = "groupeng"
	}

	return &PrometheusCollector{reg: reg, namespace: namespace}
}

func (p *PrometheusCollector) ensureRegistered() {
	p.once.Do(func() {
		p.runDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "run_duration_seconds",
			Help:      "Wall-clock duration of grouping runs by outcome.",
			Buckets:   []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
		}, []string{"outcome"})

		p.phaseTransition = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "phase_duration_seconds",
			Help:      "Time spent in each engine phase before transitioning.",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1},
		}, []string{"from", "to"})

		p.groupCount = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "groups",
			Help:      "Number of groups produced by the latest run.",
		})

		p.phantomCount = prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "engine",
			Name:      "phantoms",
			Help:      "Number of phantoms injected by the latest run.",
		})

		p.enforcementDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: p.namespace,
			Subsystem: "rule",
			Name:      "enforcement_duration_seconds",
			Help:      "Duration of rule enforcement passes by rule.",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 1},
		}, []string{"rule"})

		p.swaps = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "rule",
			Name:      "swaps_total",
			Help:      "Total membership swaps performed, by rule.",
		}, []string{"rule"})

		p.ruleFailures = prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: p.namespace,
			Subsystem: "rule",
			Name:      "failing_groups",
			Help:      "Groups failing each rule after the latest run.",
		}, []string{"rule"})

		p.reconcilePasses = prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: p.namespace,
			Subsystem: "rule",
			Name:      "reconcile_passes_total",
			Help:      "Re-enforcement passes of earlier rules, by rule.",
		}, []string{"rule"})

		p.reg.MustRegister(
			p.runDuration,
			p.phaseTransition,
			p.groupCount,
			p.phantomCount,
			p.enforcementDuration,
			p.swaps,
			p.ruleFailures,
			p.reconcilePasses,
		)
	})
}

// EngineMetrics implementation

// RecordRunDuration records a completed run with its outcome.
func (p *PrometheusCollector) RecordRunDuration(seconds float64, succeeded bool) {
	p.ensureRegistered()
	outcome := "success"
	if !succeeded {
		outcome = "failure"
	}
	p.runDuration.WithLabelValues(outcome).Observe(seconds)
}

// RecordPhaseTransition records time spent in the from phase.
func (p *PrometheusCollector) RecordPhaseTransition(from, to types.Phase, seconds float64) {
	p.ensureRegistered()
	p.phaseTransition.WithLabelValues(from.String(), to.String()).Observe(seconds)
}

// RecordGroupCount sets the group count gauge.
func (p *PrometheusCollector) RecordGroupCount(count int) {
	p.ensureRegistered()
	p.groupCount.Set(float64(count))
}

// RecordPhantomCount sets the phantom count gauge.
func (p *PrometheusCollector) RecordPhantomCount(count int) {
	p.ensureRegistered()
	p.phantomCount.Set(float64(count))
}

// RuleMetrics implementation

// RecordEnforcement records one enforcement pass duration.
func (p *PrometheusCollector) RecordEnforcement(rule string, seconds float64) {
	p.ensureRegistered()
	p.enforcementDuration.WithLabelValues(rule).Observe(seconds)
}

// RecordSwaps adds to the swap counter for a rule.
func (p *PrometheusCollector) RecordSwaps(rule string, count int) {
	p.ensureRegistered()
	p.swaps.WithLabelValues(rule).Add(float64(count))
}

// RecordRuleFailures sets the failing-group gauge for a rule.
func (p *PrometheusCollector) RecordRuleFailures(rule string, count int) {
	p.ensureRegistered()
	p.ruleFailures.WithLabelValues(rule).Set(float64(count))
}

// RecordReconcilePass increments the reconciliation counter for a rule.
func (p *PrometheusCollector) RecordReconcilePass(rule string) {
	p.ensureRegistered()
	p.reconcilePasses.WithLabelValues(rule).Inc()
}
