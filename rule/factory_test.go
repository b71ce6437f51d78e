package rule

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clarksmr/groupeng/types"
)

func specCourse(t *testing.T) *types.Course {
	t.Helper()

	rows := []map[string]string{
		{"Gender": "F", "GPA": "3.5", "Major": "CS"},
		{"Gender": "M", "GPA": "2.5", "Major": "EE"},
		{"Gender": "F", "GPA": "3.0", "Major": "CS"},
		{"Gender": "M", "GPA": "4.0", "Major": "ME"},
	}
	students := make([]*types.Student, len(rows))
	for i, row := range rows {
		students[i] = student(t, fmt.Sprintf("s%d", i), row)
	}
	course, err := types.NewCourse(students, 2, types.UnevenLow)
	require.NoError(t, err)

	return course
}

func TestNew(t *testing.T) {
	course := specCourse(t)

	t.Run("balance spec yields one rule", func(t *testing.T) {
		rules, err := New(Spec{Kind: "balance", Attribute: "GPA"}, course)
		require.NoError(t, err)
		require.Len(t, rules, 1)
		require.Equal(t, types.KindBalance, rules[0].Kind())
		require.Equal(t, "GPA", rules[0].Attribute())
	})

	t.Run("balance spec forwards tolerance options", func(t *testing.T) {
		rules, err := New(Spec{Kind: "balance", Attribute: "GPA", Tolerance: 0.2}, course)
		require.NoError(t, err)
		b, ok := rules[0].(*Balance)
		require.True(t, ok)
		require.InDelta(t, 0.2, b.Tolerance(), 1e-9)
	})

	t.Run("distribute spec expands over distinct values", func(t *testing.T) {
		rules, err := New(Spec{Kind: "distribute", Attribute: "Major"}, course)
		require.NoError(t, err)
		require.Len(t, rules, 3)

		// distinct values sorted: CS, EE, ME
		values := make([]string, len(rules))
		for i, r := range rules {
			d, ok := r.(*Distribute)
			require.True(t, ok)
			values[i] = d.Value()
		}
		require.Equal(t, []string{"CS", "EE", "ME"}, values)
	})

	t.Run("distribute spec honors explicit values and max", func(t *testing.T) {
		rules, err := New(Spec{
			Kind:      "Distribute",
			Attribute: "Gender",
			Values:    []string{"F"},
			Max:       2,
		}, course)
		require.NoError(t, err)
		require.Len(t, rules, 1)
		d := rules[0].(*Distribute)
		require.Equal(t, "F", d.Value())
		require.Equal(t, 2, d.Max())
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := New(Spec{Kind: "cluster", Attribute: "GPA"}, course)
		require.ErrorIs(t, err, ErrUnknownKind)
	})

	t.Run("missing attribute", func(t *testing.T) {
		_, err := New(Spec{Kind: "balance"}, course)
		require.ErrorIs(t, err, ErrAttributeRequired)
	})

	t.Run("attribute absent from roster", func(t *testing.T) {
		_, err := New(Spec{Kind: "balance", Attribute: "Height"}, course)
		require.ErrorIs(t, err, ErrUnknownAttribute)
	})
}
