package rule

import (
	"fmt"

	"github.com/clarksmr/groupeng/types"
)

// Numeric comparisons against the tolerance allow this much slack so exact
// boundary means do not flip between satisfied and failing.
const epsilon = 1e-9

// DefaultMaxIterations caps the swap loop of a single enforcement pass.
const DefaultMaxIterations = 100

// DefaultToleranceFactor scales the roster standard deviation into the
// default balance tolerance band.
const DefaultToleranceFactor = 1.0

// Balance keeps a numeric attribute's per-group mean within a tolerance band
// around the roster-wide mean.
type Balance struct {
	attribute     string
	target        float64
	std           float64
	tolerance     float64
	maxIterations int
}

var _ types.StrengthRule = (*Balance)(nil)

// BalanceOption configures a Balance rule.
type BalanceOption func(*Balance)

// NewBalance creates a balance rule for a numeric attribute.
//
// The roster-wide mean becomes the per-group target; the tolerance defaults
// to the roster standard deviation scaled by DefaultToleranceFactor. Both are
// computed once at construction, before phantoms exist, and phantoms never
// contribute to statistics.
//
// Parameters:
//   - attribute: Numeric student attribute to balance
//   - course: Course providing the roster-wide statistics
//   - opts: Optional configuration (WithTolerance, WithToleranceFactor,
//     WithBalanceIterations)
//
// Returns:
//   - *Balance: Initialized balance rule
//
// Example:
//
//	r := rule.NewBalance("gpa", course, rule.WithToleranceFactor(0.5))
func NewBalance(attribute string, course *types.Course, opts ...BalanceOption) *Balance {
	b := &Balance{
		attribute:     attribute,
		maxIterations: DefaultMaxIterations,
	}
	b.target, _ = course.Mean(b.Strength)
	b.std, _ = course.StdDev(b.Strength)
	b.tolerance = b.std * DefaultToleranceFactor

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// WithTolerance sets an absolute tolerance around the roster mean, replacing
// the standard-deviation-derived default.
func WithTolerance(tolerance float64) BalanceOption {
	return func(b *Balance) {
		b.tolerance = tolerance
	}
}

// WithToleranceFactor derives the tolerance from the roster standard
// deviation with a custom scale.
func WithToleranceFactor(factor float64) BalanceOption {
	return func(b *Balance) {
		if factor > 0 {
			b.tolerance = b.std * factor
		}
	}
}

// WithBalanceIterations caps the swaps attempted by one enforcement pass.
func WithBalanceIterations(n int) BalanceOption {
	return func(b *Balance) {
		if n > 0 {
			b.maxIterations = n
		}
	}
}

// Kind returns KindBalance.
func (b *Balance) Kind() types.Kind {
	return types.KindBalance
}

// Attribute returns the balanced attribute's name.
func (b *Balance) Attribute() string {
	return b.attribute
}

// Target returns the roster-wide mean the rule drives group means toward.
func (b *Balance) Target() float64 {
	return b.target
}

// Tolerance returns the acceptance band around the target.
func (b *Balance) Tolerance() float64 {
	return b.tolerance
}

// Strength returns the student's numeric value for the balanced attribute;
// false for phantoms and non-numeric or missing values.
func (b *Balance) Strength(s *types.Student) (float64, bool) {
	return s.Float(b.attribute)
}

// Check reports whether the group's mean strength is within tolerance of the
// roster mean. Groups with no valid members (all phantoms) trivially satisfy
// the rule.
func (b *Balance) Check(g *types.Group) bool {
	mean, n := types.Mean(g.Students(), b.Strength)
	if n == 0 {
		return true
	}

	return deviation(mean, b.target) <= b.tolerance+epsilon
}

// Enforce repeatedly swaps students between the group furthest outside the
// tolerance band and a partner group, choosing the swap that most reduces the
// pair's combined deviation from the target. Swaps that would push a
// currently satisfied partner outside the band are skipped, and phantoms are
// never moved. The loop stops when every group is satisfied, no improving
// swap exists, or the iteration cap is reached.
//
// Returns:
//   - bool: Whether every group satisfies the rule afterwards
func (b *Balance) Enforce(p *types.Partition, _ *types.Course) bool {
	for iter := 0; iter < b.maxIterations; iter++ {
		worst := b.worstFailingGroup(p.Groups())
		if worst == nil {
			return true
		}

		a, partner := b.bestSwap(p.Groups(), worst)
		if a == nil {
			break // no improving swap; stalled
		}
		if err := p.Swap(a, partner); err != nil {
			break
		}
	}

	return types.Failures(b, p.Groups()) == 0
}

// String returns a short description for reports.
func (b *Balance) String() string {
	return fmt.Sprintf("Balance: %s", b.attribute)
}

// worstFailingGroup returns the failing group whose mean deviates most from
// the target, or nil when all groups are satisfied.
func (b *Balance) worstFailingGroup(groups []*types.Group) *types.Group {
	var worst *types.Group
	worstDev := 0.0
	for _, g := range groups {
		if b.Check(g) {
			continue
		}
		mean, _ := types.Mean(g.Students(), b.Strength)
		if dev := deviation(mean, b.target); worst == nil || dev > worstDev {
			worst = g
			worstDev = dev
		}
	}

	return worst
}

// bestSwap searches for the student pair whose exchange most reduces the
// combined deviation of the worst group and a partner group.
func (b *Balance) bestSwap(groups []*types.Group, worst *types.Group) (a, partner *types.Student) {
	wSum, wCount := strengthSum(worst, b.Strength)
	if wCount == 0 {
		return nil, nil
	}
	wDev := deviation(wSum/float64(wCount), b.target)

	bestGain := epsilon
	for _, g := range groups {
		if g == worst {
			continue
		}
		gSum, gCount := strengthSum(g, b.Strength)
		if gCount == 0 {
			continue
		}
		gDev := deviation(gSum/float64(gCount), b.target)
		gSatisfied := gDev <= b.tolerance+epsilon

		for _, sa := range worst.Students() {
			va, ok := b.Strength(sa)
			if !ok {
				continue
			}
			for _, sb := range g.Students() {
				vb, ok := b.Strength(sb)
				if !ok {
					continue
				}

				newWDev := deviation((wSum-va+vb)/float64(wCount), b.target)
				newGDev := deviation((gSum-vb+va)/float64(gCount), b.target)

				// never push a satisfied partner out of the band
				if gSatisfied && newGDev > b.tolerance+epsilon {
					continue
				}

				gain := (wDev + gDev) - (newWDev + newGDev)
				if gain > bestGain {
					bestGain = gain
					a, partner = sa, sb
				}
			}
		}
	}

	return a, partner
}

// GroupMean returns the group's mean strength and whether the group has any
// members contributing one. Used by reporting.
func (b *Balance) GroupMean(g *types.Group) (float64, bool) {
	mean, n := types.Mean(g.Students(), b.Strength)

	return mean, n > 0
}

func deviation(mean, target float64) float64 {
	d := mean - target
	if d < 0 {
		return -d
	}

	return d
}

func strengthSum(g *types.Group, strength types.StrengthFunc) (sum float64, count int) {
	for _, s := range g.Students() {
		if v, ok := strength(s); ok {
			sum += v
			count++
		}
	}

	return sum, count
}
