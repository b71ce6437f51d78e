package rule

import (
	"fmt"

	"github.com/clarksmr/groupeng/types"
)

// Distribute caps how many members with a given categorical attribute value a
// single group may hold, spreading the value across groups.
type Distribute struct {
	attribute     string
	value         string
	max           int
	maxIterations int
}

var _ types.Rule = (*Distribute)(nil)

// DistributeOption configures a Distribute rule.
type DistributeOption func(*Distribute)

// NewDistribute creates a distribute rule for one categorical value.
//
// The default per-group maximum is ceil(matching / groupCount): the smallest
// cap that a perfectly even spread can satisfy. The engine's mandatory
// phantom rule uses an explicit maximum of one.
//
// Parameters:
//   - attribute: Categorical student attribute
//   - course: Course providing the roster and group layout
//   - value: The attribute value to spread
//   - opts: Optional configuration (WithMax, WithDistributeIterations)
//
// Returns:
//   - *Distribute: Initialized distribute rule
//
// Example:
//
//	r := rule.NewDistribute("gender", course, "F")
func NewDistribute(attribute string, course *types.Course, value string, opts ...DistributeOption) *Distribute {
	d := &Distribute{
		attribute:     attribute,
		value:         value,
		maxIterations: DefaultMaxIterations,
	}

	matching := 0
	for _, s := range course.Students {
		if d.matches(s) {
			matching++
		}
	}
	groupCount, _ := course.Layout()
	d.max = (matching + groupCount - 1) / groupCount
	if d.max < 1 {
		d.max = 1
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// WithMax sets the per-group maximum explicitly.
func WithMax(maximum int) DistributeOption {
	return func(d *Distribute) {
		if maximum > 0 {
			d.max = maximum
		}
	}
}

// WithDistributeIterations caps the swaps attempted by one enforcement pass.
func WithDistributeIterations(n int) DistributeOption {
	return func(d *Distribute) {
		if n > 0 {
			d.maxIterations = n
		}
	}
}

// Kind returns KindDistribute.
func (d *Distribute) Kind() types.Kind {
	return types.KindDistribute
}

// Attribute returns the distributed attribute's name.
func (d *Distribute) Attribute() string {
	return d.attribute
}

// Value returns the attribute value the rule spreads.
func (d *Distribute) Value() string {
	return d.value
}

// Max returns the per-group maximum.
func (d *Distribute) Max() int {
	return d.max
}

// Check reports whether the group holds at most the configured maximum of
// matching members.
func (d *Distribute) Check(g *types.Group) bool {
	return g.Count(d.matches) <= d.max
}

// Enforce moves excess matching members out of over-quota groups by swapping
// them with non-matching members of the group holding the fewest matches.
// Partners that are phantoms are chosen only when no real partner exists, so
// spreading a category does not concentrate phantoms as a side effect. The
// loop stops when no group is over quota, no receiving group has spare quota,
// or the iteration cap is reached.
//
// Returns:
//   - bool: Whether every group satisfies the rule afterwards
func (d *Distribute) Enforce(p *types.Partition, _ *types.Course) bool {
	for iter := 0; iter < d.maxIterations; iter++ {
		over := d.mostOverQuota(p.Groups())
		if over == nil {
			return true
		}

		excess := d.pickMatching(over)
		partner := d.pickPartner(p.Groups(), over)
		if excess == nil || partner == nil {
			break // no receiving group with spare quota; stalled
		}
		if err := p.Swap(excess, partner); err != nil {
			break
		}
	}

	return types.Failures(d, p.Groups()) == 0
}

// String returns a short description for reports.
func (d *Distribute) String() string {
	return fmt.Sprintf("Distribute: %s=%s (max %d)", d.attribute, d.value, d.max)
}

func (d *Distribute) matches(s *types.Student) bool {
	v, ok := s.Value(d.attribute)

	return ok && v == d.value
}

// mostOverQuota returns the group holding the most matches above the maximum,
// or nil when every group is within quota.
func (d *Distribute) mostOverQuota(groups []*types.Group) *types.Group {
	var over *types.Group
	worst := d.max
	for _, g := range groups {
		if n := g.Count(d.matches); n > worst {
			over = g
			worst = n
		}
	}

	return over
}

// pickMatching returns one matching member of the group.
func (d *Distribute) pickMatching(g *types.Group) *types.Student {
	for _, s := range g.Students() {
		if d.matches(s) {
			return s
		}
	}

	return nil
}

// pickPartner returns a non-matching member of the group with the fewest
// matches and spare quota, preferring real students over phantoms.
func (d *Distribute) pickPartner(groups []*types.Group, over *types.Group) *types.Student {
	var under *types.Group
	fewest := 0
	for _, g := range groups {
		if g == over {
			continue
		}
		n := g.Count(d.matches)
		if n >= d.max {
			continue
		}
		if under == nil || n < fewest {
			under = g
			fewest = n
		}
	}
	if under == nil {
		return nil
	}

	var phantom *types.Student
	for _, s := range under.Students() {
		if d.matches(s) {
			continue
		}
		if s.IsPhantom() {
			if phantom == nil {
				phantom = s
			}

			continue
		}

		return s
	}

	return phantom
}
