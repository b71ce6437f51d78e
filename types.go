package groupeng

import "github.com/clarksmr/groupeng/types"

// Re-export types from the internal types package.
//
// This file provides a stable public API for the library's core types and
// interfaces. It uses type aliases to re-export definitions from the `types`
// subpackage, which contains the actual implementations.
//
// This pattern solves the "import cycle" problem by allowing subpackages
// (rule, partition, deck, report) to depend on `types` without depending on
// the root `groupeng` package, while still providing a convenient
// `groupeng.Course`, `groupeng.Rule`, etc. for users.
type (
	Student      = types.Student
	Group        = types.Group
	Course       = types.Course
	Partition    = types.Partition
	Result       = types.Result
	Phase        = types.Phase
	UnevenPolicy = types.UnevenPolicy
	Kind         = types.Kind
)

// Re-export interfaces from the internal types package for convenience.
type (
	Rule             = types.Rule
	StrengthRule     = types.StrengthRule
	MetricsCollector = types.MetricsCollector
	Logger           = types.Logger
	Hooks            = types.Hooks
)

// Re-export Phase constants from the internal types package.
const (
	PhaseInit        = types.PhaseInit
	PhaseSeeding     = types.PhaseSeeding
	PhaseEnforcing   = types.PhaseEnforcing
	PhaseReconciling = types.PhaseReconciling
	PhaseStripping   = types.PhaseStripping
	PhaseDone        = types.PhaseDone
	PhaseFailed      = types.PhaseFailed
)

// Re-export uneven-size policies and the phantom identifier marker.
const (
	UnevenLow     = types.UnevenLow
	UnevenHigh    = types.UnevenHigh
	PhantomMarker = types.PhantomMarker
)
