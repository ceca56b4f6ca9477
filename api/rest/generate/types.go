package generate

import (
	"context"
	"time"

	"codeberg.org/tubespark/server/internal/generation"
	"codeberg.org/tubespark/server/internal/quota"
	"codeberg.org/tubespark/server/tubespark/ideas"
)

// runs one usage-gated generation batch
type Generator interface {
	Generate(ctx context.Context, userID string, req generation.Request) ([]ideas.Idea, *quota.Consumption, error)
}

// Response is the body of a successful generation
type Response struct {
	Success     bool         `json:"success"`
	Ideas       []ideas.Idea `json:"ideas"`
	GeneratedAt time.Time    `json:"generatedAt"`
	Usage       UsageInfo    `json:"usage"`
}

// quota state after the batch was charged
type UsageInfo struct {
	Used  int `json:"used"`
	Limit int `json:"limit"`
}
