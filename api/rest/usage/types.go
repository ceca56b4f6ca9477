package usage

import (
	"context"

	"codeberg.org/tubespark/server/internal/plans"
	"codeberg.org/tubespark/server/internal/quota"
	"codeberg.org/tubespark/server/internal/usage"
)

type LimitChecker interface {
	CheckLimit(ctx context.Context, userID string, kind plans.ResourceKind) (*quota.Limit, error)
}

type SummaryReporter interface {
	Summary(ctx context.Context, userID string) (*usage.Summary, error)
}

type CheckResponse struct {
	Success bool         `json:"success"`
	Usage   *quota.Limit `json:"usage"`
}

type SummaryResponse struct {
	Success bool           `json:"success"`
	Usage   *usage.Summary `json:"usage"`
}
