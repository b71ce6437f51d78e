package partition

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clarksmr/groupeng/types"
)

func makeRoster(t *testing.T, n int) []*types.Student {
	t.Helper()

	students := make([]*types.Student, n)
	for i := range students {
		attrs := map[string]string{
			"ID":  fmt.Sprintf("s%02d", i),
			"GPA": fmt.Sprintf("%.2f", 2.0+float64(i%5)*0.5),
		}
		s, err := types.NewStudent(attrs, []string{"ID", "GPA"}, "ID")
		require.NoError(t, err)
		students[i] = s
	}

	return students
}

func makeCourse(t *testing.T, n, size int, policy types.UnevenPolicy) *types.Course {
	t.Helper()

	course, err := types.NewCourse(makeRoster(t, n), size, policy)
	require.NoError(t, err)

	return course
}

type gpaBalance struct{}

func (gpaBalance) Kind() types.Kind        { return types.KindBalance }
func (gpaBalance) Attribute() string       { return "GPA" }
func (gpaBalance) Check(*types.Group) bool { return true }
func (gpaBalance) Enforce(*types.Partition, *types.Course) bool {
	return true
}
func (gpaBalance) String() string { return "Balance: GPA" }
func (gpaBalance) Strength(s *types.Student) (float64, bool) {
	return s.Float("GPA")
}

func TestInitial(t *testing.T) {
	t.Run("23 students into groups of 5", func(t *testing.T) {
		course := makeCourse(t, 23, 5, types.UnevenLow)

		p, phantoms, err := Initial(course, nil)
		require.NoError(t, err)
		require.Len(t, p.Groups(), 5)
		require.Equal(t, 2, phantoms)

		// every group filled to exactly group size, phantoms included
		for _, g := range p.Groups() {
			require.Equal(t, 5, g.Size())
		}

		// phantoms land in distinct groups
		withPhantom := 0
		for _, g := range p.Groups() {
			n := g.Count((*types.Student).IsPhantom)
			require.LessOrEqual(t, n, 1)
			withPhantom += n
		}
		require.Equal(t, 2, withPhantom)

		// the course roster temporarily carries the phantoms
		require.Len(t, course.Students, 25)
		require.Len(t, course.Roster(), 23)
	})

	t.Run("phantom count matches the shortfall", func(t *testing.T) {
		for _, tc := range []struct{ n, size, phantoms int }{
			{20, 5, 0},
			{21, 5, 4},
			{23, 5, 2},
			{9, 4, 3},
		} {
			course := makeCourse(t, tc.n, tc.size, types.UnevenLow)
			_, phantoms, err := Initial(course, nil)
			require.NoError(t, err)
			require.Equal(t, tc.phantoms, phantoms, "n=%d size=%d", tc.n, tc.size)
		}
	})

	t.Run("every student dealt exactly once", func(t *testing.T) {
		course := makeCourse(t, 17, 4, types.UnevenLow)

		p, _, err := Initial(course, nil)
		require.NoError(t, err)

		seen := make(map[string]int)
		for _, g := range p.Groups() {
			for _, s := range g.Students() {
				seen[s.Key()]++
			}
		}
		for key, count := range seen {
			require.Equal(t, 1, count, "student %s dealt %d times", key, count)
		}
		require.Len(t, seen, 20) // 17 students + 3 phantoms
	})

	t.Run("uneven high produces fewer, fuller groups", func(t *testing.T) {
		course := makeCourse(t, 23, 5, types.UnevenHigh)

		p, phantoms, err := Initial(course, nil)
		require.NoError(t, err)
		require.Len(t, p.Groups(), 4)
		require.Equal(t, 1, phantoms) // 4 groups of 6 = 24 slots

		for _, g := range p.Groups() {
			require.Equal(t, 6, g.Size())
		}
	})

	t.Run("balance seeding spreads strengths", func(t *testing.T) {
		course := makeCourse(t, 20, 5, types.UnevenLow)
		target, _ := course.Mean(gpaBalance{}.Strength)

		p, _, err := Initial(course, []types.StrengthRule{gpaBalance{}}, WithSeed(7))
		require.NoError(t, err)

		// serpentine dealing keeps every group mean close to the course mean
		std, _ := course.StdDev(gpaBalance{}.Strength)
		for _, g := range p.Groups() {
			mean, n := types.Mean(g.Students(), gpaBalance{}.Strength)
			require.Positive(t, n)
			require.InDelta(t, target, mean, std)
		}
	})

	t.Run("deterministic for a fixed seed", func(t *testing.T) {
		snapshot := func() []string {
			course := makeCourse(t, 23, 5, types.UnevenLow)
			p, _, err := Initial(course, []types.StrengthRule{gpaBalance{}}, WithSeed(99))
			require.NoError(t, err)

			var ids []string
			for _, g := range p.Groups() {
				for _, s := range g.Students() {
					ids = append(ids, fmt.Sprintf("%d:%s", g.Number(), s.Key()))
				}
			}

			return ids
		}

		require.Equal(t, snapshot(), snapshot())
	})

	t.Run("group size must be positive", func(t *testing.T) {
		course := makeCourse(t, 10, 5, types.UnevenLow)
		course.GroupSize = 0

		_, _, err := Initial(course, nil)
		require.ErrorIs(t, err, types.ErrGroupSizeInvalid)
	})

	t.Run("group size larger than roster fails before any group exists", func(t *testing.T) {
		course := makeCourse(t, 3, 5, types.UnevenLow)

		_, _, err := Initial(course, nil)
		require.ErrorIs(t, err, types.ErrGroupSizeTooLarge)
		require.Len(t, course.Students, 3, "roster must not gain phantoms on error")
	})
}
