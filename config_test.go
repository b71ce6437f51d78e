package groupeng

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/clarksmr/groupeng/rule"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, rule.DefaultMaxIterations, cfg.Enforcement.MaxIterations)
	require.Equal(t, 3, cfg.Enforcement.MaxReconcilePasses)
	require.InDelta(t, rule.DefaultToleranceFactor, cfg.Enforcement.BalanceToleranceFactor, 1e-9)
	require.NoError(t, cfg.Validate())
}

func TestSetDefaults(t *testing.T) {
	t.Run("fills zero values", func(t *testing.T) {
		cfg := Config{}
		SetDefaults(&cfg)

		defaults := DefaultConfig()
		require.Equal(t, defaults.Enforcement, cfg.Enforcement)
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		cfg := Config{
			Seed: 42,
			Enforcement: EnforcementConfig{
				MaxIterations:          7,
				MaxReconcilePasses:     1,
				BalanceToleranceFactor: 0.5,
			},
		}
		SetDefaults(&cfg)

		require.Equal(t, uint64(42), cfg.Seed)
		require.Equal(t, 7, cfg.Enforcement.MaxIterations)
		require.Equal(t, 1, cfg.Enforcement.MaxReconcilePasses)
		require.InDelta(t, 0.5, cfg.Enforcement.BalanceToleranceFactor, 1e-9)
	})
}

func TestConfig_Validate(t *testing.T) {
	t.Run("rejects non-positive iterations", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Enforcement.MaxIterations = -1
		require.Error(t, cfg.Validate())
	})

	t.Run("rejects negative reconcile passes", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Enforcement.MaxReconcilePasses = -1
		require.Error(t, cfg.Validate())
	})

	t.Run("rejects non-positive tolerance factor", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Enforcement.BalanceToleranceFactor = 0
		require.Error(t, cfg.Validate())
	})

	t.Run("zero reconcile passes is valid", func(t *testing.T) {
		cfg := DefaultConfig()
		cfg.Enforcement.MaxReconcilePasses = 0
		// Validate accepts 0; SetDefaults treats it as unset, so set after
		require.NoError(t, cfg.Validate())
	})
}

func TestTestConfig(t *testing.T) {
	cfg := TestConfig()

	require.NoError(t, cfg.Validate())
	require.Less(t, cfg.Enforcement.MaxIterations, DefaultConfig().Enforcement.MaxIterations)
}
