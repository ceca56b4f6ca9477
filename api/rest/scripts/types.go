package scripts

import (
	"context"

	"codeberg.org/tubespark/server/internal/quota"
	"codeberg.org/tubespark/server/internal/scripts"
)

// writes one usage-gated script for a saved idea
type Generator interface {
	Generate(ctx context.Context, userID, ideaID string, scriptType scripts.Type, opts scripts.Options) (*scripts.Script, *quota.Consumption, error)
}

// GenerateRequest is the body of POST /scripts/generate
type GenerateRequest struct {
	IdeaID     string `json:"ideaId" binding:"required"`
	ScriptType string `json:"scriptType" binding:"required,oneof=basic premium"`
	scripts.Options
}

// Response is the body of a successful script generation
type Response struct {
	Success bool            `json:"success"`
	Script  *scripts.Script `json:"script"`
	Usage   UsageInfo       `json:"usage"`
}

type UsageInfo struct {
	Used  int `json:"used"`
	Limit int `json:"limit"`
}
