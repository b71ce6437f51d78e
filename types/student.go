package types

import (
	"fmt"
	"strconv"
	"strings"
)

// PhantomMarker is the reserved identifier value carried by phantom students.
//
// Phantoms are placeholder records injected by the initial partitioner to pad
// every group to its full capacity when the roster does not divide evenly.
// They carry no attribute data beyond the marker and are stripped from all
// final output.
const PhantomMarker = "phantom"

// Student is an attribute-keyed roster record.
//
// Attributes map attribute names to raw string values as loaded from the
// classlist. One attribute is designated the unique identifier. A Student
// keeps a back-reference to its current group number; group membership itself
// is owned exclusively by Partition, which keeps the back-reference consistent
// on every move.
type Student struct {
	attrs       map[string]string
	headers     []string
	identifier  string
	groupNumber int
	phantom     bool
	ordinal     int
}

// NewStudent creates a student record from raw attribute values.
//
// Parameters:
//   - attrs: Attribute name to value mapping (copied)
//   - headers: Attribute ordering for serialization (copied)
//   - identifier: Name of the attribute that uniquely identifies the student
//
// Returns:
//   - *Student: The new record
//   - error: ErrMissingIdentifier if the identifier attribute is empty or absent
func NewStudent(attrs map[string]string, headers []string, identifier string) (*Student, error) {
	id, ok := attrs[identifier]
	if !ok || strings.TrimSpace(id) == "" {
		return nil, fmt.Errorf("attribute %q: %w", identifier, ErrMissingIdentifier)
	}

	s := &Student{
		attrs:      make(map[string]string, len(attrs)),
		headers:    make([]string, len(headers)),
		identifier: identifier,
	}
	for k, v := range attrs {
		s.attrs[k] = v
	}
	copy(s.headers, headers)

	return s, nil
}

// NewPhantom creates a phantom placeholder student.
//
// The phantom's identifier attribute is set to PhantomMarker and it carries
// no other attribute data. The ordinal makes the record distinguishable in
// logs; all phantoms report the marker as their identifier value.
//
// Parameters:
//   - identifier: Name of the course's identifier attribute
//   - ordinal: 1-based phantom sequence number within the run
//
// Returns:
//   - *Student: The phantom record
func NewPhantom(identifier string, ordinal int) *Student {
	return &Student{
		attrs:      map[string]string{identifier: PhantomMarker},
		headers:    []string{identifier},
		identifier: identifier,
		phantom:    true,
		ordinal:    ordinal,
	}
}

// ID returns the student's identifier value.
//
// Every phantom reports PhantomMarker; use Key for a value that is unique
// across phantoms as well.
func (s *Student) ID() string {
	return s.attrs[s.identifier]
}

// Key returns a value unique across all students in a run, including
// phantoms. For real students this equals ID.
func (s *Student) Key() string {
	if s.phantom {
		return fmt.Sprintf("%s-%d", PhantomMarker, s.ordinal)
	}

	return s.ID()
}

// Identifier returns the name of the identifier attribute.
func (s *Student) Identifier() string {
	return s.identifier
}

// Value looks up an attribute by name.
//
// Returns:
//   - string: The raw attribute value
//   - bool: false if the attribute is absent
func (s *Student) Value(name string) (string, bool) {
	v, ok := s.attrs[name]

	return v, ok
}

// Float looks up an attribute by name and parses it as a float.
//
// Returns:
//   - float64: The parsed value
//   - bool: false if the attribute is absent or not numeric
func (s *Student) Float(name string) (float64, bool) {
	v, ok := s.attrs[name]
	if !ok {
		return 0, false
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
	if err != nil {
		return 0, false
	}

	return f, true
}

// Headers returns the attribute ordering used for serialization.
func (s *Student) Headers() []string {
	return s.headers
}

// Record returns the student's attribute values in header order.
func (s *Student) Record() []string {
	rec := make([]string, len(s.headers))
	for i, h := range s.headers {
		rec[i] = s.attrs[h]
	}

	return rec
}

// GroupNumber returns the number of the group the student currently belongs
// to, or 0 if the student has not been dealt into a group yet.
func (s *Student) GroupNumber() int {
	return s.groupNumber
}

// IsPhantom reports whether the student is a phantom placeholder.
func (s *Student) IsPhantom() bool {
	return s.phantom
}

// String returns the student's identifier value for logging.
func (s *Student) String() string {
	return s.Key()
}
