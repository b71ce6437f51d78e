package groupeng

import "github.com/clarksmr/groupeng/types"

// Sentinel errors returned by the Engine, re-exported from the types
// subpackage so callers can use errors.Is against the root package.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = types.ErrInvalidConfig

	// ErrCourseRequired is returned when the course is nil.
	ErrCourseRequired = types.ErrCourseRequired

	// ErrAlreadyRun is returned when Run is called twice on the same engine.
	ErrAlreadyRun = types.ErrAlreadyRun

	// ErrUnevenGroups is returned when the mandatory phantom-distribution
	// rule still has failing groups after full enforcement. The result is
	// returned alongside for diagnostics but must not be treated as a valid
	// grouping.
	ErrUnevenGroups = types.ErrUnevenGroups

	// ErrContextCanceled is returned when a run is canceled between rule
	// applications.
	ErrContextCanceled = types.ErrContextCanceled
)
