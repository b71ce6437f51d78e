package rule

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clarksmr/groupeng/types"
)

func student(t *testing.T, id string, attrs map[string]string) *types.Student {
	t.Helper()

	all := map[string]string{"ID": id}
	headers := []string{"ID"}
	for k, v := range attrs {
		all[k] = v
		headers = append(headers, k)
	}
	s, err := types.NewStudent(all, headers, "ID")
	require.NoError(t, err)

	return s
}

// gpaCourse builds a course whose roster carries the given GPA values.
func gpaCourse(t *testing.T, gpas []float64, groupSize int) *types.Course {
	t.Helper()

	students := make([]*types.Student, len(gpas))
	for i, gpa := range gpas {
		students[i] = student(t, fmt.Sprintf("s%02d", i), map[string]string{
			"GPA": fmt.Sprintf("%.2f", gpa),
		})
	}
	course, err := types.NewCourse(students, groupSize, types.UnevenLow)
	require.NoError(t, err)

	return course
}

// groupedPartition deals the course roster into consecutive blocks, the worst
// possible seed for a balance rule.
func groupedPartition(t *testing.T, course *types.Course) *types.Partition {
	t.Helper()

	size := course.GroupSize
	var groups []*types.Group
	for i, s := range course.Students {
		if i%size == 0 {
			groups = append(groups, types.NewGroup(i/size+1))
		}
		groups[len(groups)-1].Add(s)
	}
	p, err := types.NewPartition(groups)
	require.NoError(t, err)

	return p
}

func groupMeans(groups []*types.Group, strength types.StrengthFunc) []float64 {
	means := make([]float64, 0, len(groups))
	for _, g := range groups {
		mean, n := types.Mean(g.Students(), strength)
		if n > 0 {
			means = append(means, mean)
		}
	}

	return means
}

func TestBalance_Check(t *testing.T) {
	course := gpaCourse(t, []float64{2.0, 2.0, 4.0, 4.0}, 2)
	b := NewBalance("GPA", course)

	t.Run("group at the roster mean passes", func(t *testing.T) {
		g := types.NewGroup(1)
		g.Add(course.Students[0]) // 2.0
		g.Add(course.Students[2]) // 4.0
		require.True(t, b.Check(g))
	})

	t.Run("group far from the roster mean fails", func(t *testing.T) {
		tight := NewBalance("GPA", course, WithTolerance(0.5))
		g := types.NewGroup(2)
		g.Add(course.Students[0]) // 2.0
		g.Add(course.Students[1]) // 2.0
		require.False(t, tight.Check(g))
	})

	t.Run("check is idempotent", func(t *testing.T) {
		g := types.NewGroup(3)
		g.Add(course.Students[0])
		first := b.Check(g)
		for i := 0; i < 5; i++ {
			require.Equal(t, first, b.Check(g))
		}
	})

	t.Run("all-phantom group trivially passes", func(t *testing.T) {
		g := types.NewGroup(4)
		g.Add(types.NewPhantom("ID", 1))
		require.True(t, b.Check(g))
	})
}

func TestBalance_Enforce(t *testing.T) {
	t.Run("reduces the spread of group means", func(t *testing.T) {
		// contiguous blocks: group 1 all 2.0s, group 2 all 3.0s, group 3 all 4.0s
		course := gpaCourse(t, []float64{2, 2, 2, 3, 3, 3, 4, 4, 4}, 3)
		p := groupedPartition(t, course)
		b := NewBalance("GPA", course, WithTolerance(0.35))

		before := types.StdDevFloat64(groupMeans(p.Groups(), b.Strength))
		satisfied := b.Enforce(p, course)
		after := types.StdDevFloat64(groupMeans(p.Groups(), b.Strength))

		require.True(t, satisfied)
		require.LessOrEqual(t, after, before)
		require.Zero(t, types.Failures(b, p.Groups()))
	})

	t.Run("keeps group sizes fixed", func(t *testing.T) {
		course := gpaCourse(t, []float64{1, 1, 1, 5, 5, 5}, 3)
		p := groupedPartition(t, course)
		b := NewBalance("GPA", course, WithTolerance(0.5))

		b.Enforce(p, course)
		for _, g := range p.Groups() {
			require.Equal(t, 3, g.Size())
		}
	})

	t.Run("terminates under an unreachable tolerance", func(t *testing.T) {
		course := gpaCourse(t, []float64{1, 1, 1, 5, 5, 5}, 3)
		p := groupedPartition(t, course)
		b := NewBalance("GPA", course, WithTolerance(1e-12), WithBalanceIterations(10))

		satisfied := b.Enforce(p, course)
		require.False(t, satisfied)
	})

	t.Run("already balanced partition is untouched", func(t *testing.T) {
		course := gpaCourse(t, []float64{2, 4, 2, 4}, 2)
		// deal alternating so both groups average 3.0
		g1 := types.NewGroup(1)
		g1.Add(course.Students[0])
		g1.Add(course.Students[1])
		g2 := types.NewGroup(2)
		g2.Add(course.Students[2])
		g2.Add(course.Students[3])
		p, err := types.NewPartition([]*types.Group{g1, g2})
		require.NoError(t, err)

		b := NewBalance("GPA", course)
		require.True(t, b.Enforce(p, course))
		require.Zero(t, p.Swaps())
	})
}

func TestBalance_Options(t *testing.T) {
	course := gpaCourse(t, []float64{2, 3, 4}, 3)

	b := NewBalance("GPA", course)
	require.InDelta(t, 3.0, b.Target(), 1e-9)
	require.InDelta(t, 0.8164965809, b.Tolerance(), 1e-6)

	half := NewBalance("GPA", course, WithToleranceFactor(0.5))
	require.InDelta(t, b.Tolerance()/2, half.Tolerance(), 1e-9)

	abs := NewBalance("GPA", course, WithTolerance(0.1))
	require.InDelta(t, 0.1, abs.Tolerance(), 1e-9)
}
