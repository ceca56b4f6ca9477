package subscriptions

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"codeberg.org/tubespark/server/internal/plans"
)

// resolves plan tiers from the subscriptions table the billing provider
// keeps in sync. Users without an active subscription are on the free tier.
type Repository struct {
	db *pgxpool.Pool
}

func NewRepository(db *pgxpool.Pool) *Repository {
	return &Repository{db: db}
}

func (r *Repository) PlanTier(ctx context.Context, userID string) (string, error) {
	var planType *string

	err := r.db.QueryRow(ctx, queryActivePlan, userID).Scan(&planType)
	if errors.Is(err, pgx.ErrNoRows) {
		return string(plans.TierFree), nil
	}

	if err != nil {
		return "", fmt.Errorf("failed to query subscription: %w", err)
	}

	if planType == nil || *planType == "" {
		return string(plans.TierFree), nil
	}

	return *planType, nil
}

// resolves every user to one tier, or to a per-user override
type StaticResolver struct {
	Tier      string
	Overrides map[string]string
}

func (s StaticResolver) PlanTier(_ context.Context, userID string) (string, error) {
	if tier, ok := s.Overrides[userID]; ok {
		return tier, nil
	}

	if s.Tier == "" {
		return string(plans.TierFree), nil
	}

	return s.Tier, nil
}
