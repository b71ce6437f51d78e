package types

import "github.com/google/uuid"

// Result is the outcome of a grouping run.
//
// Groups and Students are returned with phantoms already stripped. Rules
// includes the mandatory phantom-distribution rule injected at the highest
// priority, so callers can recompute per-rule failure counts for reporting.
type Result struct {
	// RunID uniquely identifies the run in logs and reports.
	RunID uuid.UUID

	// Groups is the final group list, sorted by group number.
	Groups []*Group

	// Students is the final roster with up-to-date group membership.
	Students []*Student

	// Rules is the enforced rule list in priority order, the injected
	// phantom-distribution rule first.
	Rules []Rule

	// Failures holds, per rule in Rules order, the count of groups that do
	// not satisfy the rule after enforcement. Computed before phantom
	// stripping.
	Failures []int

	// Succeeded is true iff the mandatory phantom-distribution rule ended
	// with zero failing groups. Lower-priority failures are reported, not
	// fatal.
	Succeeded bool

	// PhantomCount is the number of phantoms the initial partitioner
	// injected, zero when the roster divides evenly.
	PhantomCount int
}
