package generation

import (
	"context"
	"time"

	"codeberg.org/tubespark/server/internal/plans"
	"codeberg.org/tubespark/server/internal/quota"
)

const (
	DefaultTimeout = 45 * time.Second
	DefaultCount   = 3
)

// input for one generation batch
type Request struct {
	Niche        string `json:"niche" validate:"required,max=100"`
	ChannelType  string `json:"channelType" validate:"required,oneof=educational entertainment gaming lifestyle tech business other"`
	AudienceAge  string `json:"audienceAge" validate:"required,oneof=13-17 18-24 25-34 35-44 45-54 55+"`
	ContentStyle string `json:"contentStyle" validate:"required,max=100"`
	Keywords     string `json:"keywords,omitempty" validate:"max=500"`
	Language     string `json:"language,omitempty" validate:"omitempty,oneof=pt en es fr"`
	Count        int    `json:"count,omitempty" validate:"omitempty,min=1,max=10"`
}

// external generator: request in, untyped candidates out
type Capability interface {
	Generate(ctx context.Context, req Request) ([]map[string]any, error)
}

// the part of the quota ledger the orchestrator needs
type Ledger interface {
	Consume(ctx context.Context, userID string, kind plans.ResourceKind, amount int) (*quota.Consumption, error)
}

// receives generation outcomes (metrics)
type Observer interface {
	ObserveGeneration(outcome string, elapsed time.Duration)
}

// generation outcomes reported to the Observer
const (
	OutcomeSuccess = "success"
	OutcomeRefused = "quota_exceeded"
	OutcomeInvalid = "invalid_request"
	OutcomeFailed  = "failed"
)
