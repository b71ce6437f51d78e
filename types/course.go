package types

import "fmt"

// UnevenPolicy selects how rosters that do not divide evenly into groups are
// handled by the initial partitioner.
type UnevenPolicy string

const (
	// UnevenLow creates more groups and pads the shortfall with phantoms, so
	// some groups end up one student short after phantom stripping. This is
	// the default policy.
	UnevenLow UnevenPolicy = "low"

	// UnevenHigh creates fewer groups with a capacity one above the target
	// size, so some groups end up one student over.
	UnevenHigh UnevenPolicy = "high"
)

// Valid reports whether the policy is one of the supported values.
// The empty string is valid and means UnevenLow.
func (p UnevenPolicy) Valid() bool {
	switch p {
	case UnevenLow, UnevenHigh, "":
		return true
	default:
		return false
	}
}

// Course owns the full student roster, the target group size, and the
// uneven-size policy for a single grouping run.
//
// Course is the single source of truth for roster-wide statistics used by
// balance rules to compute their global targets. During a run the roster
// temporarily contains the phantoms injected by the initial partitioner;
// statistics skip records without a parsable value, so phantoms never affect
// them.
type Course struct {
	// Students is the live roster. It is mutated only by phantom injection
	// and stripping; individual records are never replaced.
	Students []*Student

	// GroupSize is the target number of students per group.
	GroupSize int

	// Uneven selects how a roster that is not a multiple of GroupSize is
	// split. Empty means UnevenLow.
	Uneven UnevenPolicy

	identifier string
}

// NewCourse creates a course from an already-loaded roster.
//
// The identifier attribute name is taken from the first student; all records
// in a roster share the same headers and identifier.
//
// Parameters:
//   - students: Non-empty roster of real students
//   - groupSize: Target group size (validated by the initial partitioner)
//   - uneven: Uneven-size policy, empty for the default
//
// Returns:
//   - *Course: The course
//   - error: ErrEmptyRoster or ErrInvalidPolicy
func NewCourse(students []*Student, groupSize int, uneven UnevenPolicy) (*Course, error) {
	if len(students) == 0 {
		return nil, ErrEmptyRoster
	}
	if !uneven.Valid() {
		return nil, fmt.Errorf("uneven-size policy %q: %w", uneven, ErrInvalidPolicy)
	}
	if uneven == "" {
		uneven = UnevenLow
	}

	return &Course{
		Students:   students,
		GroupSize:  groupSize,
		Uneven:     uneven,
		identifier: students[0].Identifier(),
	}, nil
}

// Identifier returns the name of the roster's identifier attribute.
func (c *Course) Identifier() string {
	return c.identifier
}

// Layout returns the group count and uniform per-group capacity implied by
// the roster size, the target group size and the uneven-size policy.
//
// UnevenLow splits into ceil(n/size) groups of exactly size, padding the
// shortfall with phantoms, so some groups run short after stripping.
// UnevenHigh splits into floor(n/size) groups with capacity ceil(n/groups),
// so some groups run one over the target size. Only real students count
// toward n.
func (c *Course) Layout() (groupCount, capacity int) {
	n := len(c.Roster())
	size := c.GroupSize

	if c.Uneven == UnevenHigh {
		groupCount = n / size
		if groupCount < 1 {
			groupCount = 1
		}
		capacity = (n + groupCount - 1) / groupCount

		return groupCount, capacity
	}

	groupCount = (n + size - 1) / size
	capacity = size

	return groupCount, capacity
}

// Roster returns the real (non-phantom) students.
func (c *Course) Roster() []*Student {
	roster := make([]*Student, 0, len(c.Students))
	for _, s := range c.Students {
		if !s.IsPhantom() {
			roster = append(roster, s)
		}
	}

	return roster
}

// AddPhantoms appends phantom records to the roster for the duration of a
// run. Called by the initial partitioner.
func (c *Course) AddPhantoms(phantoms []*Student) {
	c.Students = append(c.Students, phantoms...)
}

// StripPhantoms removes all phantom records from the roster. Called by the
// engine after rule enforcement concludes.
func (c *Course) StripPhantoms() {
	kept := c.Students[:0]
	for _, s := range c.Students {
		if !s.IsPhantom() {
			kept = append(kept, s)
		}
	}
	c.Students = kept
}

// Mean returns the roster-wide mean of the strength value.
//
// Records for which the extractor reports no value (phantoms, missing or
// non-numeric attributes) are skipped.
func (c *Course) Mean(strength StrengthFunc) (float64, int) {
	return Mean(c.Students, strength)
}

// StdDev returns the roster-wide population standard deviation of the
// strength value, skipping records without one.
func (c *Course) StdDev(strength StrengthFunc) (float64, int) {
	return StdDev(c.Students, strength)
}
