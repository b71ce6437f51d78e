package types

import (
	"fmt"
	"sort"
)

// Partition is the explicit partition-state object owning group membership
// for a run.
//
// It holds the ordered group list plus an identifier index for O(1) group
// lookup. All membership changes go through Swap, which updates both groups,
// both student back-references and the index atomically: there is no state in
// which a student belongs to zero or two groups.
//
// A Partition is exclusively owned by the rule engine for the duration of a
// run and is not safe for concurrent mutation.
type Partition struct {
	groups   []*Group
	byNumber map[int]*Group
	byID     map[string]*Group
	swaps    int
}

// NewPartition assembles a partition from freshly dealt groups.
//
// Parameters:
//   - groups: Groups produced by the initial partitioner, numbered from 1
//
// Returns:
//   - *Partition: The partition state
//   - error: ErrDuplicateIdentifier if two real students share an identifier,
//     or ErrDuplicateGroupNumber on colliding group numbers
func NewPartition(groups []*Group) (*Partition, error) {
	p := &Partition{
		groups:   groups,
		byNumber: make(map[int]*Group, len(groups)),
		byID:     make(map[string]*Group),
	}
	for _, g := range groups {
		if _, exists := p.byNumber[g.Number()]; exists {
			return nil, fmt.Errorf("group %d: %w", g.Number(), ErrDuplicateGroupNumber)
		}
		p.byNumber[g.Number()] = g
		for _, s := range g.Students() {
			if s.IsPhantom() {
				continue
			}
			if _, exists := p.byID[s.ID()]; exists {
				return nil, fmt.Errorf("student %q: %w", s.ID(), ErrDuplicateIdentifier)
			}
			p.byID[s.ID()] = g
		}
	}

	return p, nil
}

// Groups returns the partition's group list.
//
// The slice is live and sorted by group number after SortByNumber; callers
// must not mutate it.
func (p *Partition) Groups() []*Group {
	return p.groups
}

// GroupOf returns the group a real student currently belongs to.
//
// Parameters:
//   - id: The student's identifier value
//
// Returns:
//   - *Group: The containing group
//   - bool: false if the identifier is unknown
func (p *Partition) GroupOf(id string) (*Group, bool) {
	g, ok := p.byID[id]

	return g, ok
}

// Swap exchanges two students between their groups.
//
// Both member lists, both back-references and the identifier index are
// updated together. Swapping two members of the same group is a no-op.
//
// Parameters:
//   - a, b: Students currently belonging to groups of this partition
//
// Returns:
//   - error: ErrStudentNotFound if either student is not in the partition
func (p *Partition) Swap(a, b *Student) error {
	ga, err := p.groupFor(a)
	if err != nil {
		return err
	}
	gb, err := p.groupFor(b)
	if err != nil {
		return err
	}
	if ga == gb {
		return nil
	}

	// replace preserves member order so output stays reproducible
	if !ga.replace(a, b) {
		return fmt.Errorf("student %q not in group %d: %w", a.Key(), ga.Number(), ErrStudentNotFound)
	}
	if !gb.replace(b, a) {
		// restore the first half before reporting
		ga.replace(b, a)

		return fmt.Errorf("student %q not in group %d: %w", b.Key(), gb.Number(), ErrStudentNotFound)
	}

	if !a.IsPhantom() {
		p.byID[a.ID()] = gb
	}
	if !b.IsPhantom() {
		p.byID[b.ID()] = ga
	}
	p.swaps++

	return nil
}

// Swaps returns the number of swaps performed so far. The engine diffs this
// counter around enforcement passes to attribute swaps to rules.
func (p *Partition) Swaps() int {
	return p.swaps
}

// groupFor resolves the group a student belongs to via its back-reference.
func (p *Partition) groupFor(s *Student) (*Group, error) {
	g, ok := p.byNumber[s.GroupNumber()]
	if !ok || !g.Contains(s) {
		return nil, fmt.Errorf("student %q: %w", s.Key(), ErrStudentNotFound)
	}

	return g, nil
}

// StripPhantoms removes all phantom members from every group.
//
// Returns:
//   - int: Total number of phantoms removed
func (p *Partition) StripPhantoms() int {
	removed := 0
	for _, g := range p.groups {
		removed += g.stripPhantoms()
	}

	return removed
}

// SortByNumber orders the group list by group number for stable output.
func (p *Partition) SortByNumber() {
	sort.Slice(p.groups, func(i, j int) bool {
		return p.groups[i].Number() < p.groups[j].Number()
	})
}

// Size returns the total student count across all groups, phantoms included.
func (p *Partition) Size() int {
	n := 0
	for _, g := range p.groups {
		n += g.Size()
	}

	return n
}
