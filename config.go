package groupeng

import (
	"fmt"

	"github.com/clarksmr/groupeng/rule"
)

// EnforcementConfig controls the bounded heuristic enforcement loops.
type EnforcementConfig struct {
	// MaxIterations caps the swap loop of a single rule enforcement pass.
	// Also applied to the mandatory phantom-distribution rule the engine
	// injects ahead of user rules.
	MaxIterations int `yaml:"maxIterations"`

	// MaxReconcilePasses caps how many times the engine re-enforces earlier
	// rules whose satisfaction degraded while later rules were enforced.
	// Zero disables reconciliation entirely.
	MaxReconcilePasses int `yaml:"maxReconcilePasses"`

	// BalanceToleranceFactor scales the roster standard deviation into the
	// default tolerance band of balance rules built from deck files.
	BalanceToleranceFactor float64 `yaml:"balanceToleranceFactor"`
}

// Config is the configuration for the Engine.
type Config struct {
	// Seed drives the deterministic shuffle of the initial deal. Two runs
	// with the same roster, rules and seed produce identical groups.
	Seed uint64 `yaml:"seed"`

	// Enforcement controls rule enforcement and reconciliation bounds.
	Enforcement EnforcementConfig `yaml:"enforcement"`
}

// DefaultConfig returns a Config with sensible defaults.
//
// Returns:
//   - Config: Configuration with default values
func DefaultConfig() Config {
	return Config{
		Seed: 0,
		Enforcement: EnforcementConfig{
			MaxIterations:          rule.DefaultMaxIterations,
			MaxReconcilePasses:     3,
			BalanceToleranceFactor: rule.DefaultToleranceFactor,
		},
	}
}

// SetDefaults fills in missing configuration values with defaults.
//
// Parameters:
//   - cfg: Config to apply defaults to (modified in place)
func SetDefaults(cfg *Config) {
	defaults := DefaultConfig()

	if cfg.Enforcement.MaxIterations == 0 {
		cfg.Enforcement.MaxIterations = defaults.Enforcement.MaxIterations
	}
	if cfg.Enforcement.MaxReconcilePasses == 0 {
		cfg.Enforcement.MaxReconcilePasses = defaults.Enforcement.MaxReconcilePasses
	}
	if cfg.Enforcement.BalanceToleranceFactor == 0 {
		cfg.Enforcement.BalanceToleranceFactor = defaults.Enforcement.BalanceToleranceFactor
	}
	// Note: Seed of 0 is a valid seed, so we don't apply a default
}

// Validate checks configuration constraints and returns an error for invalid
// values.
//
// Hard Validation Rules:
//   - MaxIterations > 0 (enforcement must be bounded and able to progress)
//   - MaxReconcilePasses >= 0 (0 disables reconciliation)
//   - BalanceToleranceFactor > 0 (a zero band rejects every group)
//
// Returns:
//   - error: Validation error with clear explanation, nil if valid
func (cfg *Config) Validate() error {
	if cfg.Enforcement.MaxIterations <= 0 {
		return fmt.Errorf(
			"MaxIterations must be > 0, got %d",
			cfg.Enforcement.MaxIterations,
		)
	}

	if cfg.Enforcement.MaxReconcilePasses < 0 {
		return fmt.Errorf(
			"MaxReconcilePasses must be >= 0, got %d",
			cfg.Enforcement.MaxReconcilePasses,
		)
	}

	if cfg.Enforcement.BalanceToleranceFactor <= 0 {
		return fmt.Errorf(
			"BalanceToleranceFactor must be > 0, got %v",
			cfg.Enforcement.BalanceToleranceFactor,
		)
	}

	return nil
}

// TestConfig returns a configuration optimized for fast test execution.
//
// Enforcement bounds are tightened so pathological fixtures terminate
// quickly. Use DefaultConfig() for real grouping runs.
//
// Returns:
//   - Config: Configuration with tight bounds for tests
//
// Example:
//
//	cfg := groupeng.TestConfig()
//	eng, err := groupeng.New(&cfg, course, rules)
func TestConfig() Config {
	cfg := DefaultConfig()

	cfg.Enforcement.MaxIterations = 20
	cfg.Enforcement.MaxReconcilePasses = 1

	return cfg
}
