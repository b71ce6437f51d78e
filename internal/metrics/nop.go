// Package metrics provides MetricsCollector implementations for the groupeng
// library.
package metrics

import "github.com/clarksmr/groupeng/types"

// NopMetrics implements a no-op metrics collector.
//
// All metrics are discarded. Useful for testing or when external
// metrics collection is used.
type NopMetrics struct{}

// Compile-time assertion that NopMetrics implements MetricsCollector.
var _ types.MetricsCollector = (*NopMetrics)(nil)

// NewNop creates a new no-op metrics collector.
//
// Returns:
//   - *NopMetrics: A new no-op metrics collector instance
//
// Example:
//
//	collector := metrics.NewNop()
//	eng, _ := groupeng.New(cfg, course, rules, groupeng.WithMetrics(collector))
func NewNop() *NopMetrics {
	return &NopMetrics{}
}

// EngineMetrics implementation

// RecordRunDuration discards the run duration metric.
func (n *NopMetrics) RecordRunDuration(_ /* seconds */ float64, _ /* succeeded */ bool) {
	// No-op
}

// RecordPhaseTransition discards the phase transition metric.
func (n *NopMetrics) RecordPhaseTransition(_ /* from */, _ /* to */ types.Phase, _ /* seconds */ float64) {
	// No-op
}

// RecordGroupCount discards the group count metric.
func (n *NopMetrics) RecordGroupCount(_ /* count */ int) {
	// No-op
}

// RecordPhantomCount discards the phantom count metric.
func (n *NopMetrics) RecordPhantomCount(_ /* count */ int) {
	// No-op
}

// RuleMetrics implementation

// RecordEnforcement discards the enforcement duration metric.
func (n *NopMetrics) RecordEnforcement(_ /* rule */ string, _ /* seconds */ float64) {
	// No-op
}

// RecordSwaps discards the swap counter metric.
func (n *NopMetrics) RecordSwaps(_ /* rule */ string, _ /* count */ int) {
	// No-op
}

// RecordRuleFailures discards the rule failure gauge metric.
func (n *NopMetrics) RecordRuleFailures(_ /* rule */ string, _ /* count */ int) {
	// No-op
}

// RecordReconcilePass discards the reconciliation counter metric.
func (n *NopMetrics) RecordReconcilePass(_ /* rule */ string) {
	// No-op
}
