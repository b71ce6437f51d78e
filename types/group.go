package types

// Group is an ordered collection of students with a stable group number.
//
// Member order exists only for reproducible output and carries no semantic
// meaning. Membership is mutated exclusively through Partition.Swap and the
// phantom-stripping phase; callers must treat the slice returned by Students
// as read-only.
type Group struct {
	number   int
	students []*Student
}

// NewGroup creates an empty group with the given number.
//
// Group numbers are assigned sequentially from 1 by the initial partitioner
// and never change afterwards.
func NewGroup(number int) *Group {
	return &Group{number: number}
}

// Number returns the group's stable, positive group number.
func (g *Group) Number() int {
	return g.number
}

// Students returns the group's member list.
//
// The returned slice is the live membership list; callers must not mutate it.
func (g *Group) Students() []*Student {
	return g.students
}

// Size returns the current member count, phantoms included.
func (g *Group) Size() int {
	return len(g.students)
}

// Count returns the number of members matching the predicate.
func (g *Group) Count(pred func(*Student) bool) int {
	n := 0
	for _, s := range g.students {
		if pred(s) {
			n++
		}
	}

	return n
}

// Contains reports whether the student is a member of the group.
//
// Membership is pointer identity; two records with the same identifier are
// distinct students.
func (g *Group) Contains(s *Student) bool {
	for _, m := range g.students {
		if m == s {
			return true
		}
	}

	return false
}

// Add appends a student and updates its back-reference.
//
// Add is intended for the initial dealing phase only; once a Partition owns
// the groups, all membership changes go through Partition.Swap.
func (g *Group) Add(s *Student) {
	g.students = append(g.students, s)
	s.groupNumber = g.number
}

// replace substitutes member old with incoming in place, preserving order.
// It reports whether old was found.
func (g *Group) replace(old, incoming *Student) bool {
	for i, m := range g.students {
		if m == old {
			g.students[i] = incoming
			incoming.groupNumber = g.number

			return true
		}
	}

	return false
}

// stripPhantoms removes phantom members, preserving the order of the rest.
// It returns the number of phantoms removed.
func (g *Group) stripPhantoms() int {
	kept := g.students[:0]
	removed := 0
	for _, s := range g.students {
		if s.IsPhantom() {
			removed++

			continue
		}
		kept = append(kept, s)
	}
	g.students = kept

	return removed
}
