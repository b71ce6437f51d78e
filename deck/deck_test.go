package deck

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clarksmr/groupeng/types"
)

const sampleDeck = `
classlist: class.csv
studentIdentifier: ID
groupSize: 4
unevenSize: high
seed: 9
enforcement:
  maxIterations: 50
rules:
  - kind: balance
    attribute: GPA
  - kind: distribute
    attribute: Gender
    values: [F]
    max: 2
`

func TestParse(t *testing.T) {
	t.Run("full deck", func(t *testing.T) {
		d, err := Parse([]byte(sampleDeck))
		require.NoError(t, err)

		require.Equal(t, "class.csv", d.Classlist)
		require.Equal(t, "ID", d.StudentIdentifier)
		require.Equal(t, 4, d.GroupSize)
		require.Equal(t, types.UnevenHigh, d.UnevenSize)
		require.Equal(t, uint64(9), d.Seed)
		require.Len(t, d.Rules, 2)
		require.Equal(t, "balance", d.Rules[0].Kind)
		require.Equal(t, []string{"F"}, d.Rules[1].Values)
		require.Equal(t, 2, d.Rules[1].Max)
	})

	t.Run("minimal deck defaults uneven policy", func(t *testing.T) {
		d, err := Parse([]byte("classlist: c.csv\ngroupSize: 3\n"))
		require.NoError(t, err)
		require.Empty(t, d.UnevenSize)
		require.True(t, d.UnevenSize.Valid())
	})

	t.Run("missing classlist", func(t *testing.T) {
		_, err := Parse([]byte("groupSize: 3\n"))
		require.ErrorIs(t, err, ErrInvalidDeck)
		require.ErrorIs(t, err, ErrClasslistRequired)
	})

	t.Run("missing group size", func(t *testing.T) {
		_, err := Parse([]byte("classlist: c.csv\n"))
		require.ErrorIs(t, err, ErrGroupSizeRequired)
	})

	t.Run("bad uneven policy", func(t *testing.T) {
		_, err := Parse([]byte("classlist: c.csv\ngroupSize: 3\nunevenSize: sideways\n"))
		require.ErrorIs(t, err, types.ErrInvalidPolicy)
	})

	t.Run("unknown field is a typo", func(t *testing.T) {
		_, err := Parse([]byte("classlist: c.csv\ngroupsize: 3\n"))
		require.ErrorIs(t, err, ErrInvalidDeck)
	})
}

func TestDeck_EngineConfig(t *testing.T) {
	d, err := Parse([]byte(sampleDeck))
	require.NoError(t, err)

	cfg := d.EngineConfig()
	require.Equal(t, uint64(9), cfg.Seed)
	require.Equal(t, 50, cfg.Enforcement.MaxIterations)
	// unset values fall back to engine defaults
	require.Positive(t, cfg.Enforcement.MaxReconcilePasses)
	require.Positive(t, cfg.Enforcement.BalanceToleranceFactor)
}

func TestDeck_CourseAndRules(t *testing.T) {
	dir := t.TempDir()
	classlist := filepath.Join(dir, "class.csv")
	require.NoError(t, os.WriteFile(classlist, []byte(
		"ID, GPA, Gender\n"+
			"a, 3.0, F\n"+
			"b, 2.0, M\n"+
			"c, 4.0, F\n"+
			"d, 3.5, M\n"+
			"e, 2.5, M\n",
	), 0o644))

	deckPath := filepath.Join(dir, "job.yaml")
	require.NoError(t, os.WriteFile(deckPath, []byte(sampleDeck), 0o644))

	d, err := Load(deckPath)
	require.NoError(t, err)

	course, err := d.Course(dir)
	require.NoError(t, err)
	require.Len(t, course.Students, 5)
	require.Equal(t, "ID", course.Identifier())

	rules, err := d.BuildRules(course)
	require.NoError(t, err)
	require.Len(t, rules, 2)
	require.Equal(t, types.KindBalance, rules[0].Kind())
	require.Equal(t, types.KindDistribute, rules[1].Kind())
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}
