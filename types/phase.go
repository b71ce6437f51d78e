package types

// Phase describes the engine's progress through a grouping run.
//
// A run moves through the phases in order:
//
//	Init → Seeding → Enforcing → Reconciling → Stripping → Done
//
// Reconciling is entered only when enforcing a rule degraded an earlier
// rule's satisfaction. Failed is reached from any phase on configuration
// errors or when the mandatory phantom-distribution rule cannot be met.
type Phase int32

const (
	// PhaseInit is the state before Run is called.
	PhaseInit Phase = iota

	// PhaseSeeding covers initial partitioning and phantom injection.
	PhaseSeeding

	// PhaseEnforcing covers the in-order rule enforcement pass.
	PhaseEnforcing

	// PhaseReconciling covers bounded re-enforcement of degraded earlier rules.
	PhaseReconciling

	// PhaseStripping covers phantom removal from groups and roster.
	PhaseStripping

	// PhaseDone is the terminal state of a completed run.
	PhaseDone

	// PhaseFailed is the terminal state of an aborted or ungroupable run.
	PhaseFailed
)

// String returns the phase's display name.
func (p Phase) String() string {
	switch p {
	case PhaseInit:
		return "Init"
	case PhaseSeeding:
		return "Seeding"
	case PhaseEnforcing:
		return "Enforcing"
	case PhaseReconciling:
		return "Reconciling"
	case PhaseStripping:
		return "Stripping"
	case PhaseDone:
		return "Done"
	case PhaseFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}
