package types

import "errors"

// Sentinel errors for the groupeng library.
//
// These errors provide type-safe error checking using errors.Is() and
// errors.As(). Components wrap them with context using
// fmt.Errorf("...: %w", err).
//
// Error Naming Convention:
//   - Use descriptive names with Err prefix
//   - Group by component (engine, partitioner, data model)
//   - Use consistent messages across similar error types

// Engine errors - Public API errors returned by the Engine.
var (
	// ErrInvalidConfig is returned when the configuration is invalid.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrCourseRequired is returned when the course is nil.
	ErrCourseRequired = errors.New("course is required")

	// ErrAlreadyRun is returned when Run is called twice on the same engine.
	ErrAlreadyRun = errors.New("engine already run")

	// ErrUnevenGroups is returned when the mandatory phantom-distribution
	// rule still has failing groups after full enforcement. The partition is
	// returned alongside for diagnostics but must not be treated as valid
	// output.
	ErrUnevenGroups = errors.New("ungroupable: uneven groups after enforcement")

	// ErrContextCanceled is returned when a run is canceled between rule
	// applications.
	ErrContextCanceled = errors.New("run canceled by context")
)

// Partitioner errors - Configuration errors raised before any group exists.
var (
	// ErrGroupSizeInvalid is returned when the target group size is not a
	// positive integer.
	ErrGroupSizeInvalid = errors.New("group size must be positive")

	// ErrGroupSizeTooLarge is returned when the target group size exceeds
	// the roster size.
	ErrGroupSizeTooLarge = errors.New("group size larger than roster")
)

// Data model errors - Shared errors for roster and partition state.
var (
	// ErrEmptyRoster is returned when a course is created with no students.
	ErrEmptyRoster = errors.New("empty roster")

	// ErrInvalidPolicy is returned for an unknown uneven-size policy.
	ErrInvalidPolicy = errors.New("invalid uneven-size policy")

	// ErrMissingIdentifier is returned when a student record lacks a value
	// for the identifier attribute.
	ErrMissingIdentifier = errors.New("missing identifier attribute")

	// ErrDuplicateIdentifier is returned when two real students share an
	// identifier value.
	ErrDuplicateIdentifier = errors.New("duplicate student identifier")

	// ErrDuplicateGroupNumber is returned when two groups share a number.
	ErrDuplicateGroupNumber = errors.New("duplicate group number")

	// ErrStudentNotFound is returned when a swap references a student that
	// is not part of the partition.
	ErrStudentNotFound = errors.New("student not found in partition")
)
