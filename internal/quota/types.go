package quota

import (
	"context"
	"errors"
	"fmt"
	"time"

	"codeberg.org/tubespark/server/internal/plans"
)

var (
	ErrUnknownKind   = errors.New("unknown resource kind")
	ErrInvalidAmount = errors.New("consume amount must be at least 1")
)

// persists per (user, kind, cycle) counters and owns their concurrency control.
// IncrementWithCeiling must be a single atomic step: two callers racing for the
// last unit below ceiling must never both succeed. A negative ceiling means unlimited.
type Store interface {
	Used(ctx context.Context, userID string, kind plans.ResourceKind, cycle Cycle) (int, error)
	IncrementWithCeiling(ctx context.Context, userID string, kind plans.ResourceKind, cycle Cycle, amount, ceiling int) (used int, ok bool, err error)
}

// supplies a user's plan tier from the billing collaborator
type PlanResolver interface {
	PlanTier(ctx context.Context, userID string) (string, error)
}

// receives consume outcomes (metrics)
type Observer interface {
	ObserveConsume(kind plans.ResourceKind, outcome string)
}

// consume outcomes reported to the Observer
const (
	OutcomeConsumed = "consumed"
	OutcomeRefused  = "refused"
	OutcomeError    = "error"
)

// usage status labels
const (
	StatusUnlimited = "unlimited"
	StatusSafe      = "safe"
	StatusWarning   = "warning"
	StatusCritical  = "critical"
)

// read-only snapshot of one kind's quota
type Limit struct {
	Kind       plans.ResourceKind `json:"kind"`
	PlanType   plans.Tier         `json:"planType"`
	Used       int                `json:"used"`
	Limit      int                `json:"limit"`     // -1 for unlimited
	Remaining  int                `json:"remaining"` // -1 for unlimited
	Exceeded   bool               `json:"exceeded"`
	Unlimited  bool               `json:"unlimited"`
	Percent    float64            `json:"percent"`
	Status     string             `json:"status"`
	CycleStart time.Time          `json:"cycleStart"`
	ResetsAt   time.Time          `json:"resetsAt"`
}

// result of a consume attempt
type Consumption struct {
	Kind  plans.ResourceKind `json:"kind"`
	OK    bool               `json:"ok"`
	Used  int                `json:"used"`
	Limit int                `json:"limit"`
}

// returned by callers that turn a refused consume into a failure
type ExceededError struct {
	Kind  plans.ResourceKind
	Used  int
	Limit int
}

func (e *ExceededError) Error() string {
	return fmt.Sprintf("%s quota exceeded: %d of %d used", e.Kind, e.Used, e.Limit)
}
