package types

// MetricsCollector defines methods for recording operational metrics.
//
// Implementations should be non-blocking and handle failures gracefully.
// The engine is single-threaded, but collectors may be shared across runs
// and must be safe for concurrent use.
//
// This interface composes smaller, domain-focused interfaces so callers can
// implement only the slices they care about and embed a no-op for the rest.
type MetricsCollector interface {
	EngineMetrics
	RuleMetrics
}

// EngineMetrics defines metrics for run-level engine operations.
type EngineMetrics interface {
	// RecordRunDuration records a completed run.
	//
	// Parameters:
	//   - seconds: Wall-clock run duration
	//   - succeeded: Whether the mandatory rule ended fully satisfied
	RecordRunDuration(seconds float64, succeeded bool)

	// RecordPhaseTransition records an engine phase transition.
	//
	// Parameters:
	//   - from, to: The phases involved
	//   - seconds: Time spent in the from phase
	RecordPhaseTransition(from, to Phase, seconds float64)

	// RecordGroupCount sets the group count produced by the current run.
	RecordGroupCount(count int)

	// RecordPhantomCount sets the number of phantoms injected by the
	// initial partitioner for the current run.
	RecordPhantomCount(count int)
}

// RuleMetrics defines metrics for per-rule enforcement operations.
type RuleMetrics interface {
	// RecordEnforcement records one enforcement pass of a rule.
	//
	// Parameters:
	//   - rule: The rule's display name
	//   - seconds: Time taken by the pass
	RecordEnforcement(rule string, seconds float64)

	// RecordSwaps records the membership swaps performed by one enforcement
	// pass of a rule.
	RecordSwaps(rule string, count int)

	// RecordRuleFailures sets the final failing-group count for a rule.
	RecordRuleFailures(rule string, count int)

	// RecordReconcilePass records a bounded re-enforcement pass of an
	// earlier rule whose satisfaction degraded.
	RecordReconcilePass(rule string)
}
