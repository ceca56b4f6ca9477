package dashboard

import (
	"context"

	"codeberg.org/tubespark/server/internal/usage"
)

type StatsReporter interface {
	DashboardStats(ctx context.Context, userID string) (*usage.DashboardStats, error)
}

type StatsResponse struct {
	Success bool                  `json:"success"`
	Stats   *usage.DashboardStats `json:"stats"`
}
