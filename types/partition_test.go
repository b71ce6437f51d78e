package types

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestStudent(t *testing.T, id string, extra map[string]string) *Student {
	t.Helper()

	attrs := map[string]string{"ID": id}
	headers := []string{"ID"}
	for k, v := range extra {
		attrs[k] = v
		headers = append(headers, k)
	}
	s, err := NewStudent(attrs, headers, "ID")
	require.NoError(t, err)

	return s
}

func dealGroups(t *testing.T, members ...[]*Student) []*Group {
	t.Helper()

	groups := make([]*Group, len(members))
	for i, ms := range members {
		g := NewGroup(i + 1)
		for _, s := range ms {
			g.Add(s)
		}
		groups[i] = g
	}

	return groups
}

func TestPartition_Swap(t *testing.T) {
	t.Run("exchanges students and updates back-references", func(t *testing.T) {
		a := newTestStudent(t, "alice", nil)
		b := newTestStudent(t, "bob", nil)
		c := newTestStudent(t, "carol", nil)
		d := newTestStudent(t, "dave", nil)

		groups := dealGroups(t, []*Student{a, b}, []*Student{c, d})
		p, err := NewPartition(groups)
		require.NoError(t, err)

		require.NoError(t, p.Swap(a, c))

		require.Equal(t, 2, a.GroupNumber())
		require.Equal(t, 1, c.GroupNumber())
		require.True(t, groups[0].Contains(c))
		require.True(t, groups[1].Contains(a))
		require.False(t, groups[0].Contains(a))
		require.False(t, groups[1].Contains(c))

		// index follows the move
		ga, ok := p.GroupOf("alice")
		require.True(t, ok)
		require.Equal(t, 2, ga.Number())
		gc, ok := p.GroupOf("carol")
		require.True(t, ok)
		require.Equal(t, 1, gc.Number())
	})

	t.Run("preserves group sizes", func(t *testing.T) {
		a := newTestStudent(t, "a", nil)
		b := newTestStudent(t, "b", nil)
		c := newTestStudent(t, "c", nil)

		groups := dealGroups(t, []*Student{a, b}, []*Student{c})
		p, err := NewPartition(groups)
		require.NoError(t, err)

		require.NoError(t, p.Swap(b, c))
		require.Equal(t, 2, groups[0].Size())
		require.Equal(t, 1, groups[1].Size())
	})

	t.Run("same group is a no-op", func(t *testing.T) {
		a := newTestStudent(t, "a", nil)
		b := newTestStudent(t, "b", nil)

		groups := dealGroups(t, []*Student{a, b})
		p, err := NewPartition(groups)
		require.NoError(t, err)

		require.NoError(t, p.Swap(a, b))
		require.Equal(t, 1, a.GroupNumber())
		require.Equal(t, 1, b.GroupNumber())
	})

	t.Run("unknown student is rejected", func(t *testing.T) {
		a := newTestStudent(t, "a", nil)
		stray := newTestStudent(t, "stray", nil)

		groups := dealGroups(t, []*Student{a})
		p, err := NewPartition(groups)
		require.NoError(t, err)

		err = p.Swap(a, stray)
		require.ErrorIs(t, err, ErrStudentNotFound)
	})
}

func TestPartition_New(t *testing.T) {
	t.Run("rejects duplicate identifiers", func(t *testing.T) {
		a1 := newTestStudent(t, "a", nil)
		a2 := newTestStudent(t, "a", nil)

		groups := dealGroups(t, []*Student{a1}, []*Student{a2})
		_, err := NewPartition(groups)
		require.ErrorIs(t, err, ErrDuplicateIdentifier)
	})

	t.Run("allows multiple phantoms", func(t *testing.T) {
		a := newTestStudent(t, "a", nil)
		p1 := NewPhantom("ID", 1)
		p2 := NewPhantom("ID", 2)

		groups := dealGroups(t, []*Student{a, p1}, []*Student{p2})
		_, err := NewPartition(groups)
		require.NoError(t, err)
	})

	t.Run("rejects duplicate group numbers", func(t *testing.T) {
		a := newTestStudent(t, "a", nil)
		b := newTestStudent(t, "b", nil)

		g1 := NewGroup(1)
		g1.Add(a)
		g2 := NewGroup(1)
		g2.Add(b)

		_, err := NewPartition([]*Group{g1, g2})
		require.ErrorIs(t, err, ErrDuplicateGroupNumber)
	})
}

func TestPartition_StripPhantoms(t *testing.T) {
	a := newTestStudent(t, "a", nil)
	b := newTestStudent(t, "b", nil)
	ph1 := NewPhantom("ID", 1)
	ph2 := NewPhantom("ID", 2)

	groups := dealGroups(t, []*Student{a, ph1}, []*Student{b, ph2})
	p, err := NewPartition(groups)
	require.NoError(t, err)

	removed := p.StripPhantoms()
	require.Equal(t, 2, removed)
	require.Equal(t, 1, groups[0].Size())
	require.Equal(t, 1, groups[1].Size())
	for _, g := range p.Groups() {
		for _, s := range g.Students() {
			require.False(t, s.IsPhantom())
		}
	}
}

func TestPartition_SortByNumber(t *testing.T) {
	students := make([]*Student, 3)
	for i := range students {
		students[i] = newTestStudent(t, fmt.Sprintf("s%d", i), nil)
	}
	g3 := NewGroup(3)
	g3.Add(students[0])
	g1 := NewGroup(1)
	g1.Add(students[1])
	g2 := NewGroup(2)
	g2.Add(students[2])

	p, err := NewPartition([]*Group{g3, g1, g2})
	require.NoError(t, err)

	p.SortByNumber()
	numbers := make([]int, 0, 3)
	for _, g := range p.Groups() {
		numbers = append(numbers, g.Number())
	}
	require.Equal(t, []int{1, 2, 3}, numbers)
}
