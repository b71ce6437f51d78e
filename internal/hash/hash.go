// Package hash provides deterministic hashing for student ordering.
//
// The initial partitioner and rule enforcement need a total order over
// students that is stable across runs but not biased by roster input order.
// Hashing each student's key with a run seed gives exactly that: the same
// seed reproduces the same grouping, a different seed reshuffles ties.
package hash

import (
	"sort"

	"github.com/zeebo/xxh3"

	"github.com/clarksmr/groupeng/types"
)

// Key hashes a student key with the given seed.
//
// Parameters:
//   - key: Unique student key (phantoms included)
//   - seed: Run seed (0 is a valid, fixed seed)
//
// Returns:
//   - uint64: Position of the student in the hashed order
func Key(key string, seed uint64) uint64 {
	return xxh3.HashStringSeed(key, seed)
}

// SortStudents orders students by their hashed key.
//
// The order is deterministic for a given seed and roster, independent of the
// input slice order. Sorting is done in place.
func SortStudents(students []*types.Student, seed uint64) {
	sort.SliceStable(students, func(i, j int) bool {
		return Key(students[i].Key(), seed) < Key(students[j].Key(), seed)
	})
}
