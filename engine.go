package groupeng

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/clarksmr/groupeng/internal/hooks"
	"github.com/clarksmr/groupeng/internal/logger"
	"github.com/clarksmr/groupeng/internal/metrics"
	"github.com/clarksmr/groupeng/partition"
	"github.com/clarksmr/groupeng/rule"
	"github.com/clarksmr/groupeng/types"
)

// Engine runs a single grouping job: it deals a course roster into groups,
// pads uneven rosters with phantoms, and enforces the rule list in strict
// priority order.
//
// Engine is the main entry point of the groupeng library. It handles:
//   - Deterministic initial dealing, serpentine when a balance rule leads
//   - Phantom injection so every group starts at full capacity
//   - In-order rule enforcement with bounded heuristic swaps
//   - Bounded reconciliation of earlier rules degraded by later ones
//   - Phantom stripping and result assembly
//
// An Engine is single-use: Run may be called exactly once. Phase progress can
// be observed concurrently via Subscribe or synchronously via Hooks.
//
// Lifecycle:
//   - Create with New()
//   - Optionally call Subscribe() for phase notifications
//   - Call Run() to produce a Result
type Engine struct {
	cfg    Config
	course *Course
	rules  []Rule

	// Optional dependencies
	hooks   *Hooks
	metrics MetricsCollector
	logger  Logger

	// State management
	phase      atomic.Int32 // Phase
	phaseStart time.Time
	ran        atomic.Bool

	// Fan-out to subscribers
	subscribers      *xsync.Map[uint64, *phaseSubscriber]
	nextSubscriberID atomic.Uint64
}

// New creates a new Engine for one grouping run.
//
// The rule slice is the user's rule list in descending priority order. The
// engine injects the mandatory phantom-distribution rule ahead of it, so an
// uneven roster never concentrates its shortfall in a single group.
//
// Returns a concrete *Engine struct following the "accept interfaces, return
// structs" principle.
//
// Parameters:
//   - cfg: Runtime configuration (missing values are defaulted)
//   - course: Course holding the roster, group size and uneven-size policy
//   - rules: Rule list in priority order, highest first (may be empty)
//   - opts: Optional configuration (hooks, metrics, logger)
//
// Returns:
//   - *Engine: Initialized engine instance
//   - error: ErrInvalidConfig, ErrCourseRequired, or a validation error
//
// Example:
//
//	cfg := groupeng.DefaultConfig()
//	eng, err := groupeng.New(&cfg, course, rules)
func New(cfg *Config, course *Course, rules []Rule, opts ...Option) (*Engine, error) {
	if cfg == nil {
		return nil, ErrInvalidConfig
	}
	if course == nil {
		return nil, ErrCourseRequired
	}

	// Fill in missing configuration values with defaults
	SetDefaults(cfg)

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	// Apply options
	options := &engineOptions{}
	for _, opt := range opts {
		opt(options)
	}

	// Provide safe defaults for optional dependencies to avoid nil checks everywhere
	metricsCollector := options.metrics
	if metricsCollector == nil {
		metricsCollector = metrics.NewNop()
	}

	loggerInstance := options.logger
	if loggerInstance == nil {
		loggerInstance = logger.NewNop()
	}

	hooksInstance := options.hooks
	if hooksInstance == nil {
		nopHooks := hooks.NewNop()
		hooksInstance = &nopHooks
	}

	e := &Engine{
		cfg:         *cfg,
		course:      course,
		rules:       rules,
		hooks:       hooksInstance,
		metrics:     metricsCollector,
		logger:      loggerInstance,
		subscribers: xsync.NewMap[uint64, *phaseSubscriber](),
	}
	e.phase.Store(int32(PhaseInit))

	return e, nil
}

// Phase returns the engine's current phase.
//
// This method is thread-safe and can be called concurrently with Run.
//
// Returns:
//   - Phase: Current phase (Init through Done or Failed)
func (e *Engine) Phase() Phase {
	return Phase(e.phase.Load())
}

// Subscribe returns a channel that receives phase change notifications.
//
// The returned channel is buffered (size 8) so a full run's transitions can
// be queued without blocking the engine. The subscriber receives the current
// phase immediately upon subscription, and the channel is closed when the run
// reaches a terminal phase.
//
// Returns:
//   - <-chan Phase: Channel that receives phase updates
//   - func(): Unsubscribe function to clean up resources
//
// Example:
//
//	ch, unsubscribe := eng.Subscribe()
//	defer unsubscribe()
//	for phase := range ch {
//	    fmt.Printf("phase: %s\n", phase)
//	}
func (e *Engine) Subscribe() (<-chan Phase, func()) {
	id := e.nextSubscriberID.Add(1)

	// Buffer size of 8 holds every transition of a full run, including a
	// Reconciling detour, without dropping phases when the subscriber is slow
	sub := &phaseSubscriber{ch: make(chan types.Phase, 8)}
	e.subscribers.Store(id, sub)

	// Immediately send the current phase
	sub.trySend(e.Phase())

	unsubscribe := func() {
		e.removeSubscriber(id)
	}

	return sub.ch, unsubscribe
}

// Run executes the grouping job.
//
// Run moves through the engine phases in order, enforcing each rule with
// bounded heuristic swaps and then reconciling earlier rules that later
// enforcement degraded. Only the mandatory phantom-distribution rule can fail
// the run; when it does, the assembled Result is still returned alongside
// ErrUnevenGroups for diagnostics. Lower-priority rule failures are reported
// in Result.Failures and do not produce an error.
//
// The context is checked between rule applications; cancellation aborts the
// run with ErrContextCanceled.
//
// Parameters:
//   - ctx: Context for cancellation
//
// Returns:
//   - *Result: Final groups, roster and per-rule failure counts
//   - error: ErrAlreadyRun, ErrContextCanceled, ErrUnevenGroups, or a
//     seeding error from the initial partitioner
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	if !e.ran.CompareAndSwap(false, true) {
		return nil, ErrAlreadyRun
	}
	start := time.Now()
	e.phaseStart = start
	defer e.closeSubscribers()

	// Phase 1: Seed the partition and inject phantoms
	e.emitPhase(ctx, PhaseSeeding)
	part, phantomCount, err := partition.Initial(
		e.course,
		balanceRules(e.rules),
		partition.WithSeed(e.cfg.Seed),
	)
	if err != nil {
		return nil, e.fail(ctx, start, fmt.Errorf("initial partition: %w", err))
	}

	e.metrics.RecordGroupCount(len(part.Groups()))
	e.metrics.RecordPhantomCount(phantomCount)
	e.logger.Info("partition seeded",
		"groups", len(part.Groups()),
		"phantoms", phantomCount,
		"seed", e.cfg.Seed,
	)

	// The mandatory phantom-distribution rule always leads the rule list:
	// with zero phantoms it passes trivially, with phantoms it prevents any
	// group from absorbing more than one slot of the roster shortfall.
	mandatory := rule.NewDistribute(
		e.course.Identifier(), e.course, PhantomMarker,
		rule.WithMax(1),
		rule.WithDistributeIterations(e.cfg.Enforcement.MaxIterations),
	)
	ordered := make([]Rule, 0, len(e.rules)+1)
	ordered = append(ordered, mandatory)
	ordered = append(ordered, e.rules...)

	// Phase 2: Enforce every rule in priority order
	e.emitPhase(ctx, PhaseEnforcing)
	for _, r := range ordered {
		if ctx.Err() != nil {
			return nil, e.fail(ctx, start, fmt.Errorf("%w: %w", ErrContextCanceled, ctx.Err()))
		}
		e.enforce(ctx, part, r)
	}

	// Phase 3: Reconcile earlier rules that later enforcement degraded
	e.emitPhase(ctx, PhaseReconciling)
	for pass := 0; pass < e.cfg.Enforcement.MaxReconcilePasses; pass++ {
		if ctx.Err() != nil {
			return nil, e.fail(ctx, start, fmt.Errorf("%w: %w", ErrContextCanceled, ctx.Err()))
		}
		if !e.reconcile(ctx, part, ordered) {
			break
		}
	}

	// The mandatory rule gets the last word: if reconciliation of a
	// lower-priority rule concentrated phantoms again, spread them back out
	// even at the cost of degrading that rule.
	if types.Failures(mandatory, part.Groups()) > 0 {
		e.enforce(ctx, part, mandatory)
	}

	// Final per-rule failure counts, measured before phantom stripping so the
	// mandatory rule still sees the phantoms it constrains.
	failures := make([]int, len(ordered))
	for i, r := range ordered {
		failures[i] = types.Failures(r, part.Groups())
		e.metrics.RecordRuleFailures(r.String(), failures[i])
	}
	succeeded := failures[0] == 0

	// Phase 4: Strip phantoms from groups and roster
	e.emitPhase(ctx, PhaseStripping)
	stripped := part.StripPhantoms()
	e.course.StripPhantoms()
	part.SortByNumber()
	e.logger.Debug("phantoms stripped", "count", stripped)

	result := &Result{
		RunID:        uuid.New(),
		Groups:       part.Groups(),
		Students:     e.course.Students,
		Rules:        ordered,
		Failures:     failures,
		Succeeded:    succeeded,
		PhantomCount: phantomCount,
	}

	if !succeeded {
		e.metrics.RecordRunDuration(time.Since(start).Seconds(), false)
		e.emitPhase(ctx, PhaseFailed)
		e.logger.Error("run failed: phantom distribution unsatisfied",
			"runId", result.RunID,
			"failingGroups", failures[0],
		)

		return result, fmt.Errorf("%d groups over phantom quota: %w", failures[0], ErrUnevenGroups)
	}

	e.metrics.RecordRunDuration(time.Since(start).Seconds(), true)
	e.emitPhase(ctx, PhaseDone)
	e.logger.Info("run complete",
		"runId", result.RunID,
		"groups", len(result.Groups),
		"swaps", part.Swaps(),
	)

	return result, nil
}

// enforce runs one enforcement pass of a rule and records its metrics.
func (e *Engine) enforce(ctx context.Context, part *Partition, r Rule) {
	enforceStart := time.Now()
	swapsBefore := part.Swaps()

	satisfied := r.Enforce(part, e.course)

	e.metrics.RecordEnforcement(r.String(), time.Since(enforceStart).Seconds())
	e.metrics.RecordSwaps(r.String(), part.Swaps()-swapsBefore)

	failing := types.Failures(r, part.Groups())
	if !satisfied {
		e.logger.Warn("rule not fully satisfied", "rule", r.String(), "failingGroups", failing)
	}

	if e.hooks.OnRuleEnforced != nil {
		if err := e.hooks.OnRuleEnforced(ctx, r, failing); err != nil {
			e.logger.Warn("OnRuleEnforced hook failed", "rule", r.String(), "error", err)
		}
	}
}

// reconcile re-enforces, in priority order, every rule that currently has
// failing groups. Reports whether any rule needed re-enforcement.
func (e *Engine) reconcile(ctx context.Context, part *Partition, ordered []Rule) bool {
	degraded := false
	for _, r := range ordered {
		if types.Failures(r, part.Groups()) == 0 {
			continue
		}
		degraded = true
		e.metrics.RecordReconcilePass(r.String())
		e.logger.Debug("reconciling degraded rule", "rule", r.String())
		e.enforce(ctx, part, r)
	}

	return degraded
}

// fail records a fatal run error, transitions to Failed and returns the error.
func (e *Engine) fail(ctx context.Context, start time.Time, err error) error {
	e.metrics.RecordRunDuration(time.Since(start).Seconds(), false)
	e.logger.Error("run aborted", "error", err)

	if e.hooks.OnError != nil {
		if hookErr := e.hooks.OnError(ctx, err); hookErr != nil {
			e.logger.Warn("OnError hook failed", "error", hookErr)
		}
	}
	e.emitPhase(ctx, PhaseFailed)

	return err
}

// emitPhase transitions to a new phase and notifies hooks and subscribers.
func (e *Engine) emitPhase(ctx context.Context, phase Phase) {
	old := e.Phase()
	if old == phase {
		return // No change, no notification needed
	}

	e.phase.Store(int32(phase))
	e.metrics.RecordPhaseTransition(old, phase, time.Since(e.phaseStart).Seconds())
	e.phaseStart = time.Now()
	e.logger.Debug("phase transition", "from", old, "to", phase)

	if e.hooks.OnPhaseChanged != nil {
		if err := e.hooks.OnPhaseChanged(ctx, old, phase); err != nil {
			e.logger.Warn("OnPhaseChanged hook failed", "from", old, "to", phase, "error", err)
		}
	}

	e.subscribers.Range(func(_ uint64, sub *phaseSubscriber) bool {
		sub.trySend(phase)
		return true
	})
}

// removeSubscriber removes a subscriber and closes its channel.
func (e *Engine) removeSubscriber(id uint64) {
	if sub, ok := e.subscribers.LoadAndDelete(id); ok {
		sub.close()
	}
}

// closeSubscribers closes every remaining subscriber channel after the run
// reaches a terminal phase, so range loops over subscription channels end.
func (e *Engine) closeSubscribers() {
	e.subscribers.Range(func(id uint64, _ *phaseSubscriber) bool {
		e.removeSubscriber(id)
		return true
	})
}

// balanceRules extracts the balance rules, in priority order, for seeding the
// initial deal.
func balanceRules(rules []Rule) []types.StrengthRule {
	out := make([]types.StrengthRule, 0, len(rules))
	for _, r := range rules {
		if sr, ok := r.(types.StrengthRule); ok && r.Kind() == types.KindBalance {
			out = append(out, sr)
		}
	}

	return out
}
