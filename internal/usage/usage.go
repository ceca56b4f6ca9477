package usage

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"codeberg.org/tubespark/server/internal/plans"
	"codeberg.org/tubespark/server/internal/quota"
	"codeberg.org/tubespark/server/tubespark/ideas"
)

// read side of the quota ledger
type Ledger interface {
	Plan(ctx context.Context, userID string) (plans.Plan, error)
	Summary(ctx context.Context, userID string) (map[plans.ResourceKind]quota.Limit, error)
	CurrentCycle() quota.Cycle
}

// read side of the idea store
type IdeaStats interface {
	Stats(ctx context.Context, userID string, cycleStart time.Time) (*ideas.Stats, error)
}

// dashboard-facing usage snapshot
type Summary struct {
	PlanType   plans.Tier                         `json:"planType"`
	PerKind    map[plans.ResourceKind]quota.Limit `json:"perKind"`
	Stats      ideas.Stats                        `json:"stats"`
	CycleStart time.Time                          `json:"cycleStart"`
	ResetsAt   time.Time                          `json:"resetsAt"`
}

// aggregates ledger and idea store state. Never mutates either.
type Reporter struct {
	ledger Ledger
	ideas  IdeaStats
}

func NewReporter(ledger Ledger, ideaStats IdeaStats) *Reporter {
	return &Reporter{
		ledger: ledger,
		ideas:  ideaStats,
	}
}

func (r *Reporter) Summary(ctx context.Context, userID string) (*Summary, error) {
	cycle := r.ledger.CurrentCycle()

	var (
		plan    plans.Plan
		perKind map[plans.ResourceKind]quota.Limit
		stats   *ideas.Stats
	)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		plan, err = r.ledger.Plan(gctx, userID)
		return err
	})

	g.Go(func() error {
		var err error
		perKind, err = r.ledger.Summary(gctx, userID)
		return err
	})

	g.Go(func() error {
		var err error
		stats, err = r.ideas.Stats(gctx, userID, cycle.Start)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Summary{
		PlanType:   plan.Tier,
		PerKind:    perKind,
		Stats:      *stats,
		CycleStart: cycle.Start,
		ResetsAt:   cycle.End,
	}, nil
}

// the idea store counts plus the idea quota, for the dashboard header
func (r *Reporter) DashboardStats(ctx context.Context, userID string) (*DashboardStats, error) {
	summary, err := r.Summary(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &DashboardStats{
		Stats:    summary.Stats,
		PlanType: summary.PlanType,
		Ideas:    summary.PerKind[plans.KindIdea],
	}, nil
}

type DashboardStats struct {
	ideas.Stats
	PlanType plans.Tier  `json:"planType"`
	Ideas    quota.Limit `json:"ideaUsage"`
}
