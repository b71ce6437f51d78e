package rule

import (
	"fmt"
	"sort"
	"strings"

	"github.com/clarksmr/groupeng/types"
)

// Spec is a parsed rule descriptor, typically decoded from an input deck.
//
// Kind selects the rule variant ("balance" or "distribute", case
// insensitive). For distribute rules, Values lists the attribute values to
// spread; when empty, every distinct value of the attribute found in the
// roster gets its own rule.
type Spec struct {
	// Kind is the rule variant name.
	Kind string `yaml:"kind"`

	// Attribute is the student attribute the rule targets.
	Attribute string `yaml:"attribute"`

	// Values are the attribute values a distribute rule spreads. Empty
	// means all distinct roster values.
	Values []string `yaml:"values,omitempty"`

	// Max overrides the per-group maximum of a distribute rule.
	Max int `yaml:"max,omitempty"`

	// Tolerance overrides a balance rule's absolute tolerance band.
	Tolerance float64 `yaml:"tolerance,omitempty"`

	// ToleranceFactor scales the roster standard deviation into a balance
	// rule's tolerance band. Ignored when Tolerance is set.
	ToleranceFactor float64 `yaml:"toleranceFactor,omitempty"`

	// MaxIterations caps the rule's enforcement swap loop.
	MaxIterations int `yaml:"maxIterations,omitempty"`
}

// New resolves a rule descriptor against a course into live rules.
//
// A balance spec yields exactly one rule. A distribute spec yields one rule
// per value, in Values order or sorted order of the roster's distinct values;
// the expanded rules are adjacent in priority.
//
// Parameters:
//   - spec: Parsed rule descriptor
//   - course: Course the rules are bound to
//
// Returns:
//   - []types.Rule: The resolved rules in priority order
//   - error: ErrUnknownKind, ErrAttributeRequired or ErrUnknownAttribute
func New(spec Spec, course *types.Course) ([]types.Rule, error) {
	if strings.TrimSpace(spec.Attribute) == "" {
		return nil, fmt.Errorf("%s rule: %w", spec.Kind, ErrAttributeRequired)
	}
	if !attributeKnown(course, spec.Attribute) {
		return nil, fmt.Errorf("attribute %q: %w", spec.Attribute, ErrUnknownAttribute)
	}

	switch strings.ToLower(strings.TrimSpace(spec.Kind)) {
	case "balance":
		return []types.Rule{newBalanceFromSpec(spec, course)}, nil
	case "distribute":
		return newDistributesFromSpec(spec, course), nil
	default:
		return nil, fmt.Errorf("kind %q: %w", spec.Kind, ErrUnknownKind)
	}
}

func newBalanceFromSpec(spec Spec, course *types.Course) *Balance {
	opts := make([]BalanceOption, 0, 2)
	if spec.Tolerance > 0 {
		opts = append(opts, WithTolerance(spec.Tolerance))
	} else if spec.ToleranceFactor > 0 {
		opts = append(opts, WithToleranceFactor(spec.ToleranceFactor))
	}
	if spec.MaxIterations > 0 {
		opts = append(opts, WithBalanceIterations(spec.MaxIterations))
	}

	return NewBalance(spec.Attribute, course, opts...)
}

func newDistributesFromSpec(spec Spec, course *types.Course) []types.Rule {
	values := spec.Values
	if len(values) == 0 {
		values = distinctValues(course, spec.Attribute)
	}

	rules := make([]types.Rule, 0, len(values))
	for _, v := range values {
		opts := make([]DistributeOption, 0, 2)
		if spec.Max > 0 {
			opts = append(opts, WithMax(spec.Max))
		}
		if spec.MaxIterations > 0 {
			opts = append(opts, WithDistributeIterations(spec.MaxIterations))
		}
		rules = append(rules, NewDistribute(spec.Attribute, course, v, opts...))
	}

	return rules
}

func attributeKnown(course *types.Course, attribute string) bool {
	for _, s := range course.Students {
		if _, ok := s.Value(attribute); ok {
			return true
		}
	}

	return false
}

func distinctValues(course *types.Course, attribute string) []string {
	seen := make(map[string]struct{})
	for _, s := range course.Students {
		if s.IsPhantom() {
			continue
		}
		v, ok := s.Value(attribute)
		if !ok || strings.TrimSpace(v) == "" {
			continue
		}
		seen[v] = struct{}{}
	}

	values := make([]string, 0, len(seen))
	for v := range seen {
		values = append(values, v)
	}
	sort.Strings(values)

	return values
}
