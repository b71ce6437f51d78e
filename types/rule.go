package types

// Kind identifies a rule variant.
//
// The built-in kinds form a closed set; custom rule implementations report
// KindCustom and participate in enforcement like any other rule.
type Kind int

const (
	// KindBalance constrains a numeric attribute's per-group mean to track
	// the roster-wide mean.
	KindBalance Kind = iota + 1

	// KindDistribute constrains how many members with a given categorical
	// attribute value a single group may hold.
	KindDistribute

	// KindCustom marks rule implementations provided outside this module.
	KindCustom
)

// String returns the kind's display name.
func (k Kind) String() string {
	switch k {
	case KindBalance:
		return "Balance"
	case KindDistribute:
		return "Distribute"
	case KindCustom:
		return "Custom"
	default:
		return "Unknown"
	}
}

// Rule is a single grouping constraint.
//
// Rules have no identity beyond their position in the ordered rule list
// passed to the engine; that position is their priority. The engine enforces
// rule i only after rules 0..i-1 and re-checks earlier rules after each
// enforcement step.
//
// Check must be a pure predicate: calling it repeatedly without intervening
// enforcement returns the same result. Enforce mutates group membership
// exclusively through Partition.Swap, keeping group sizes fixed, and must
// terminate within a bounded number of swaps.
type Rule interface {
	// Kind returns the rule variant.
	Kind() Kind

	// Attribute returns the name of the student attribute the rule targets.
	Attribute() string

	// Check reports whether the group satisfies the rule.
	Check(g *Group) bool

	// Enforce drives the partition toward satisfying the rule and reports
	// whether every group satisfies it afterwards.
	Enforce(p *Partition, c *Course) bool

	// String returns a short human-readable description for reports.
	String() string
}

// StrengthRule is implemented by rules that extract a numeric strength from
// students, such as balance rules. Reporting uses it to compute per-group
// means.
type StrengthRule interface {
	Rule

	// Strength returns the student's value for the rule's attribute; false
	// when the student has none (phantoms, missing or non-numeric values).
	Strength(s *Student) (float64, bool)
}

// Failures counts the groups that do not satisfy the rule.
func Failures(r Rule, groups []*Group) int {
	n := 0
	for _, g := range groups {
		if !r.Check(g) {
			n++
		}
	}

	return n
}
