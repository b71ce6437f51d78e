package partition

import (
	"fmt"
	"sort"

	"github.com/clarksmr/groupeng/internal/hash"
	"github.com/clarksmr/groupeng/types"
)

// Option configures the initial partitioner.
type Option func(*options)

type options struct {
	seed uint64
}

// WithSeed sets the hash seed used to break ties when ordering students.
//
// The same seed reproduces the same partition for a given roster; different
// seeds reshuffle students whose strengths tie.
//
// Parameters:
//   - seed: Hash seed value (0 is a valid, fixed seed)
//
// Returns:
//   - Option: Functional option for Initial
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
	}
}

// Initial builds the first feasible partition of the course roster.
//
// The algorithm:
//  1. Determine the group count and per-group capacity from the course's
//     uneven-size policy.
//  2. Inject phantoms (count = groupCount*capacity - rosterSize) into the
//     course so every group can be filled to exactly its capacity.
//  3. Order students by the first balance rule's strength (descending, ties
//     and missing values in hashed order) and deal them serpentine across
//     the groups.
//  4. Place phantoms one at a time into the groups with the most free slots.
//
// Group numbers are assigned sequentially starting at 1.
//
// Parameters:
//   - course: The course to partition; its roster gains the injected phantoms
//   - balanceRules: Balance rules in priority order, used as a seeding hint
//   - opts: Optional configuration (WithSeed)
//
// Returns:
//   - *types.Partition: Partition with every group filled to capacity
//   - int: Number of phantoms injected
//   - error: ErrGroupSizeInvalid or ErrGroupSizeTooLarge, raised before any
//     group is created or the course mutated
func Initial(course *types.Course, balanceRules []types.StrengthRule, opts ...Option) (*types.Partition, int, error) {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	roster := course.Roster()
	n := len(roster)
	size := course.GroupSize

	if size <= 0 {
		return nil, 0, fmt.Errorf("group size %d: %w", size, types.ErrGroupSizeInvalid)
	}
	if size > n {
		return nil, 0, fmt.Errorf("group size %d exceeds roster of %d: %w", size, n, types.ErrGroupSizeTooLarge)
	}

	groupCount, capacity := course.Layout()

	phantomCount := groupCount*capacity - n
	phantoms := make([]*types.Student, phantomCount)
	for i := range phantoms {
		phantoms[i] = types.NewPhantom(course.Identifier(), i+1)
	}
	course.AddPhantoms(phantoms)

	ordered := make([]*types.Student, n)
	copy(ordered, roster)
	orderBySeedHint(ordered, balanceRules, o.seed)

	groups := make([]*types.Group, groupCount)
	for i := range groups {
		groups[i] = types.NewGroup(i + 1)
	}
	dealSerpentine(groups, ordered)
	dealPhantoms(groups, phantoms, capacity)

	p, err := types.NewPartition(groups)
	if err != nil {
		return nil, 0, err
	}

	return p, phantomCount, nil
}

// orderBySeedHint sorts students for dealing: by the first balance rule's
// strength descending, students without a value last, all ties in hashed
// order. Without balance rules the whole roster is dealt in hashed order.
func orderBySeedHint(students []*types.Student, balanceRules []types.StrengthRule, seed uint64) {
	hash.SortStudents(students, seed)

	if len(balanceRules) == 0 {
		return
	}
	strength := balanceRules[0].Strength

	sort.SliceStable(students, func(i, j int) bool {
		vi, oki := strength(students[i])
		vj, okj := strength(students[j])
		switch {
		case oki && okj:
			return vi > vj
		case oki:
			return true
		default:
			return false
		}
	})
}

// dealSerpentine deals students across the groups in a snake order
// (1..k, k..1, ...) so each group receives a spread of strength values
// rather than a contiguous block.
func dealSerpentine(groups []*types.Group, students []*types.Student) {
	k := len(groups)
	for i, s := range students {
		round := i / k
		pos := i % k
		if round%2 == 1 {
			pos = k - 1 - pos
		}
		groups[pos].Add(s)
	}
}

// dealPhantoms fills remaining capacity with phantoms, always topping up the
// emptiest group first so phantoms spread one-per-group whenever possible.
func dealPhantoms(groups []*types.Group, phantoms []*types.Student, capacity int) {
	for _, ph := range phantoms {
		var target *types.Group
		for _, g := range groups {
			if g.Size() >= capacity {
				continue
			}
			if target == nil || g.Size() < target.Size() {
				target = g
			}
		}
		if target == nil {
			// all groups at capacity; should not happen given the layout math
			target = groups[0]
		}
		target.Add(ph)
	}
}
