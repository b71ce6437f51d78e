package hooks

import (
	"context"

	"github.com/clarksmr/groupeng/types"
)

// NopHooks implements Hooks with no-op callbacks.
//
// This is the default implementation used when no custom hooks are provided,
// eliminating the need for nil checks throughout the codebase.
type NopHooks struct{}

// Compile-time assertions that NopHooks implements hook callbacks.
var (
	_ func(context.Context, types.Phase, types.Phase) error = (*NopHooks)(nil).OnPhaseChanged
	_ func(context.Context, types.Rule, int) error          = (*NopHooks)(nil).OnRuleEnforced
	_ func(context.Context, error) error                    = (*NopHooks)(nil).OnError
)

// NewNop creates a new no-op hooks implementation.
//
// Returns:
//   - types.Hooks: Hooks with no-op implementations
func NewNop() types.Hooks {
	h := &NopHooks{}
	return types.Hooks{
		OnPhaseChanged: h.OnPhaseChanged,
		OnRuleEnforced: h.OnRuleEnforced,
		OnError:        h.OnError,
	}
}

// OnPhaseChanged is a no-op implementation.
func (h *NopHooks) OnPhaseChanged(ctx context.Context, from, to types.Phase) error {
	return nil
}

// OnRuleEnforced is a no-op implementation.
func (h *NopHooks) OnRuleEnforced(ctx context.Context, rule types.Rule, failures int) error {
	return nil
}

// OnError is a no-op implementation.
func (h *NopHooks) OnError(ctx context.Context, err error) error {
	return nil
}
