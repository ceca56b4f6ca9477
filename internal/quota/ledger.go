package quota

import (
	"context"
	"fmt"
	"math"
	"time"

	"codeberg.org/tubespark/server/internal/plans"
)

// enforces plan limits per user and resource kind. It holds no counters
// itself; every read and increment goes to the Store.
type Ledger struct {
	store    Store
	resolver PlanResolver
	observer Observer
	now      func() time.Time
}

type Option func(*Ledger)

// overrides the clock used to pick the current cycle
func WithClock(now func() time.Time) Option {
	return func(l *Ledger) {
		l.now = now
	}
}

// reports consume outcomes to o
func WithObserver(o Observer) Option {
	return func(l *Ledger) {
		l.observer = o
	}
}

func NewLedger(store Store, resolver PlanResolver, opts ...Option) *Ledger {
	l := &Ledger{
		store:    store,
		resolver: resolver,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// returns the cycle the ledger is currently counting in
func (l *Ledger) CurrentCycle() Cycle {
	return CycleAt(l.now())
}

// returns the user's plan
func (l *Ledger) Plan(ctx context.Context, userID string) (plans.Plan, error) {
	tier, err := l.resolver.PlanTier(ctx, userID)
	if err != nil {
		return plans.Plan{}, fmt.Errorf("failed to resolve plan tier: %w", err)
	}

	return plans.Lookup(tier), nil
}

// reports current usage for kind without mutating anything
func (l *Ledger) CheckLimit(ctx context.Context, userID string, kind plans.ResourceKind) (*Limit, error) {
	if _, ok := plans.ParseKind(string(kind)); !ok {
		return nil, ErrUnknownKind
	}

	plan, err := l.Plan(ctx, userID)
	if err != nil {
		return nil, err
	}

	return l.check(ctx, userID, plan, kind, l.CurrentCycle())
}

// atomically spends amount units of kind, refusing without mutation when the
// plan ceiling would be crossed
func (l *Ledger) Consume(ctx context.Context, userID string, kind plans.ResourceKind, amount int) (*Consumption, error) {
	if _, ok := plans.ParseKind(string(kind)); !ok {
		return nil, ErrUnknownKind
	}

	if amount < 1 {
		return nil, ErrInvalidAmount
	}

	plan, err := l.Plan(ctx, userID)
	if err != nil {
		l.observe(kind, OutcomeError)
		return nil, err
	}

	limit := plan.Limit(kind)

	used, ok, err := l.store.IncrementWithCeiling(ctx, userID, kind, l.CurrentCycle(), amount, limit)
	if err != nil {
		l.observe(kind, OutcomeError)
		return nil, fmt.Errorf("failed to consume %s quota: %w", kind, err)
	}

	if ok {
		l.observe(kind, OutcomeConsumed)
	} else {
		l.observe(kind, OutcomeRefused)
	}

	return &Consumption{
		Kind:  kind,
		OK:    ok,
		Used:  used,
		Limit: limit,
	}, nil
}

// returns CheckLimit for every kind
func (l *Ledger) Summary(ctx context.Context, userID string) (map[plans.ResourceKind]Limit, error) {
	plan, err := l.Plan(ctx, userID)
	if err != nil {
		return nil, err
	}

	cycle := l.CurrentCycle()
	summary := make(map[plans.ResourceKind]Limit, len(plans.Kinds))

	for _, kind := range plans.Kinds {
		limit, err := l.check(ctx, userID, plan, kind, cycle)
		if err != nil {
			return nil, err
		}

		summary[kind] = *limit
	}

	return summary, nil
}

func (l *Ledger) check(ctx context.Context, userID string, plan plans.Plan, kind plans.ResourceKind, cycle Cycle) (*Limit, error) {
	used, err := l.store.Used(ctx, userID, kind, cycle)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s usage: %w", kind, err)
	}

	return buildLimit(plan, kind, used, cycle), nil
}

func (l *Ledger) observe(kind plans.ResourceKind, outcome string) {
	if l.observer != nil {
		l.observer.ObserveConsume(kind, outcome)
	}
}

func buildLimit(plan plans.Plan, kind plans.ResourceKind, used int, cycle Cycle) *Limit {
	limit := plan.Limit(kind)

	result := &Limit{
		Kind:       kind,
		PlanType:   plan.Tier,
		Used:       used,
		Limit:      limit,
		CycleStart: cycle.Start,
		ResetsAt:   cycle.End,
	}

	if limit == plans.Unlimited {
		result.Unlimited = true
		result.Remaining = plans.Unlimited
		result.Status = StatusUnlimited
		return result
	}

	result.Remaining = max(limit-used, 0)
	result.Exceeded = used >= limit
	result.Percent = usagePercent(used, limit)
	result.Status = usageStatus(result.Percent)

	return result
}

func usagePercent(used, limit int) float64 {
	if limit <= 0 {
		return 100
	}

	percent := math.Min(float64(used)/float64(limit)*100, 100)

	return math.Round(percent*100) / 100
}

func usageStatus(percent float64) string {
	switch {
	case percent >= 90:
		return StatusCritical
	case percent >= 75:
		return StatusWarning
	default:
		return StatusSafe
	}
}
