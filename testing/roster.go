package testing

import (
	"fmt"
	"testing"

	"github.com/clarksmr/groupeng/types"
)

// RosterOption configures the roster builder.
type RosterOption func(*rosterOptions)

type rosterOptions struct {
	size       int
	attributes map[string][]string
	order      []string
}

// WithAttribute adds a named attribute column. The roster size is the length
// of the longest column; shorter columns cycle their values.
func WithAttribute(name string, values ...string) RosterOption {
	return func(o *rosterOptions) {
		if _, seen := o.attributes[name]; !seen {
			o.order = append(o.order, name)
		}
		o.attributes[name] = values
		if len(values) > o.size {
			o.size = len(values)
		}
	}
}

// WithSize forces the roster size regardless of column lengths.
func WithSize(n int) RosterOption {
	return func(o *rosterOptions) {
		o.size = n
	}
}

// NewRoster builds a deterministic roster of real students. Identifiers are
// "s00", "s01", ... under an "ID" column; attribute columns cycle when
// shorter than the roster.
//
// Parameters:
//   - t: Test handle
//   - opts: Attribute columns and size overrides
//
// Returns:
//   - []*types.Student: The roster in identifier order
func NewRoster(t *testing.T, opts ...RosterOption) []*types.Student {
	t.Helper()

	o := &rosterOptions{attributes: make(map[string][]string)}
	for _, opt := range opts {
		opt(o)
	}
	if o.size == 0 {
		o.size = 1
	}

	headers := append([]string{"ID"}, o.order...)
	students := make([]*types.Student, o.size)
	for i := 0; i < o.size; i++ {
		attrs := map[string]string{"ID": fmt.Sprintf("s%02d", i)}
		for _, name := range o.order {
			values := o.attributes[name]
			attrs[name] = values[i%len(values)]
		}

		s, err := types.NewStudent(attrs, headers, "ID")
		if err != nil {
			t.Fatalf("build roster student %d: %v", i, err)
		}
		students[i] = s
	}

	return students
}

// NewCourse builds a roster and wraps it in a course with the default
// uneven-size policy.
//
// Parameters:
//   - t: Test handle
//   - groupSize: Target group size
//   - opts: Roster options
//
// Returns:
//   - *types.Course: The course
func NewCourse(t *testing.T, groupSize int, opts ...RosterOption) *types.Course {
	t.Helper()

	course, err := types.NewCourse(NewRoster(t, opts...), groupSize, types.UnevenLow)
	if err != nil {
		t.Fatalf("build course: %v", err)
	}

	return course
}
