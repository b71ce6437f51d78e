package types

import "context"

// Hooks defines optional callbacks for engine lifecycle events.
//
// All hooks are optional. Unlike the engine's phase subscription channels,
// hooks are invoked synchronously from the single enforcement goroutine, so
// they observe a consistent partition state. Hook errors are logged and never
// fail the run.
//
// Best practices for hook implementation:
//   - Complete quickly; the run blocks while a hook executes
//   - Respect context cancellation
//   - Treat the partition and groups as read-only
type Hooks struct {
	// OnPhaseChanged is called after every engine phase transition.
	OnPhaseChanged func(ctx context.Context, from, to Phase) error

	// OnRuleEnforced is called after a rule's enforcement step, with the
	// rule's failing-group count at that point.
	OnRuleEnforced func(ctx context.Context, rule Rule, failures int) error

	// OnError is called when a recoverable error occurs during a run.
	OnError func(ctx context.Context, err error) error
}
