package deck

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/clarksmr/groupeng"
	"github.com/clarksmr/groupeng/rule"
	"github.com/clarksmr/groupeng/types"
)

// Deck is a parsed YAML input deck describing one grouping job.
//
// Example deck:
//
//	classlist: class.csv
//	studentIdentifier: Student ID
//	groupSize: 4
//	unevenSize: low
//	rules:
//	  - kind: balance
//	    attribute: GPA
//	  - kind: distribute
//	    attribute: Gender
//	    values: [F]
type Deck struct {
	// Classlist is the path of the CSV classlist, relative to the deck file.
	Classlist string `yaml:"classlist"`

	// StudentIdentifier names the classlist column that uniquely identifies
	// a student. Empty means the first column.
	StudentIdentifier string `yaml:"studentIdentifier,omitempty"`

	// GroupSize is the target number of students per group.
	GroupSize int `yaml:"groupSize"`

	// UnevenSize selects how rosters that do not divide evenly are split:
	// "low" (default) or "high".
	UnevenSize types.UnevenPolicy `yaml:"unevenSize,omitempty"`

	// Seed drives the deterministic shuffle of the initial deal.
	Seed uint64 `yaml:"seed,omitempty"`

	// Enforcement overrides the engine's enforcement bounds.
	Enforcement groupeng.EnforcementConfig `yaml:"enforcement,omitempty"`

	// Rules is the rule list in descending priority order.
	Rules []rule.Spec `yaml:"rules"`
}

// Load reads and parses an input deck file.
//
// Parameters:
//   - path: Deck file path
//
// Returns:
//   - *Deck: The parsed deck
//   - error: Read, parse or validation error
func Load(path string) (*Deck, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read deck %s: %w", path, err)
	}

	d, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("deck %s: %w", path, err)
	}

	return d, nil
}

// Parse decodes and validates YAML deck content.
//
// Unknown fields are rejected so typos in deck files surface as errors
// instead of silently ignored settings.
//
// Parameters:
//   - data: Raw YAML content
//
// Returns:
//   - *Deck: The parsed deck
//   - error: Decode error or ErrInvalidDeck with the failing field
func Parse(data []byte) (*Deck, error) {
	var d Deck
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&d); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDeck, err)
	}

	if err := d.validate(); err != nil {
		return nil, err
	}

	return &d, nil
}

func (d *Deck) validate() error {
	if d.Classlist == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDeck, ErrClasslistRequired)
	}
	if d.GroupSize <= 0 {
		return fmt.Errorf("%w: %w (got %d)", ErrInvalidDeck, ErrGroupSizeRequired, d.GroupSize)
	}
	if !d.UnevenSize.Valid() {
		return fmt.Errorf("%w: unevenSize %q: %w", ErrInvalidDeck, d.UnevenSize, types.ErrInvalidPolicy)
	}

	return nil
}

// EngineConfig builds the engine configuration the deck describes.
//
// Missing enforcement values fall back to the engine defaults.
//
// Returns:
//   - groupeng.Config: Configuration ready for groupeng.New
func (d *Deck) EngineConfig() groupeng.Config {
	cfg := groupeng.Config{
		Seed:        d.Seed,
		Enforcement: d.Enforcement,
	}
	groupeng.SetDefaults(&cfg)

	return cfg
}

// Course loads the deck's classlist and builds the course.
//
// Parameters:
//   - dir: Directory deck-relative paths are resolved against
//
// Returns:
//   - *types.Course: Course with the loaded roster
//   - error: Classlist loading or course construction error
func (d *Deck) Course(dir string) (*types.Course, error) {
	path := d.Classlist
	if dir != "" && !filepath.IsAbs(path) {
		path = filepath.Join(dir, path)
	}

	students, err := LoadClasslist(path, d.StudentIdentifier)
	if err != nil {
		return nil, err
	}

	return types.NewCourse(students, d.GroupSize, d.UnevenSize)
}

// BuildRules resolves the deck's rule descriptors against a course.
//
// Balance specs without an explicit tolerance inherit the deck's
// BalanceToleranceFactor, and every spec without an iteration cap inherits
// the deck's MaxIterations.
//
// Parameters:
//   - course: Course the rules are bound to
//
// Returns:
//   - []types.Rule: Resolved rules in priority order
//   - error: Rule construction error naming the failing descriptor
func (d *Deck) BuildRules(course *types.Course) ([]types.Rule, error) {
	cfg := d.EngineConfig()

	rules := make([]types.Rule, 0, len(d.Rules))
	for i, spec := range d.Rules {
		if spec.Tolerance == 0 && spec.ToleranceFactor == 0 {
			spec.ToleranceFactor = cfg.Enforcement.BalanceToleranceFactor
		}
		if spec.MaxIterations == 0 {
			spec.MaxIterations = cfg.Enforcement.MaxIterations
		}

		built, err := rule.New(spec, course)
		if err != nil {
			return nil, fmt.Errorf("rule %d: %w", i+1, err)
		}
		rules = append(rules, built...)
	}

	return rules, nil
}
