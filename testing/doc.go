// Package testing provides test utilities for the groupeng library.
//
// This package offers helpers for setting up test fixtures, following Go's
// convention of providing testing utilities in a dedicated package (similar
// to net/http/httptest).
//
// Key utilities:
//   - NewTestLogger: types.Logger that writes through testing.T
//   - NewRoster: deterministic roster builder for attribute tables
//   - NewCourse: roster builder plus course construction in one call
//
// Example usage:
//
//	import (
//	    "testing"
//	    grouptest "github.com/clarksmr/groupeng/testing"
//	)
//
//	func TestMyComponent(t *testing.T) {
//	    course := grouptest.NewCourse(t, 4, grouptest.WithAttribute("GPA", "3.0", "2.5", "4.0"))
//	    // run the engine against course
//	}
package testing
