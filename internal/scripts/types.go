package scripts

import (
	"context"
	"time"

	"codeberg.org/tubespark/server/internal/plans"
	"codeberg.org/tubespark/server/internal/quota"
	"codeberg.org/tubespark/server/tubespark/ideas"
)

// script depth; each type spends its own quota kind
type Type string

const (
	TypeBasic   Type = "basic"
	TypePremium Type = "premium"
)

// the quota kind charged for one script of type t
func (t Type) Kind() (plans.ResourceKind, bool) {
	switch t {
	case TypeBasic:
		return plans.KindScriptBasic, true
	case TypePremium:
		return plans.KindScriptPremium, true
	default:
		return "", false
	}
}

// optional tuning of a script
type Options struct {
	Tone     string `json:"tone,omitempty" binding:"omitempty,oneof=professional casual energetic"`
	Duration string `json:"duration,omitempty" binding:"omitempty,oneof=short medium long"`
}

// a generated script. Content is the generator's JSON object as returned.
type Script struct {
	IdeaID      string         `json:"ideaId"`
	UserID      string         `json:"userId"`
	ScriptType  Type           `json:"scriptType"`
	Content     map[string]any `json:"content"`
	GeneratedAt time.Time      `json:"generatedAt"`
}

// owner-scoped idea lookup
type IdeaSource interface {
	Get(ctx context.Context, userID, ideaID string) (*ideas.Idea, error)
}

type Ledger interface {
	Consume(ctx context.Context, userID string, kind plans.ResourceKind, amount int) (*quota.Consumption, error)
}
