package ideas

import (
	"context"

	"codeberg.org/tubespark/server/tubespark/ideas"
)

// the idea store operations the handlers need
type IdeaStore interface {
	ListForUser(ctx context.Context, userID string) ([]ideas.Idea, error)
	Create(ctx context.Context, userID string, raw ideas.Raw) (*ideas.Idea, error)
	Get(ctx context.Context, userID, ideaID string) (*ideas.Idea, error)
	Update(ctx context.Context, userID, ideaID string, req ideas.UpdateRequest) (*ideas.Idea, error)
	Delete(ctx context.Context, userID, ideaID string) error
}

// body of POST /ideas/save. The idea is accepted in any shape the
// generator produces; unknown or malformed fields fall back to defaults.
type SaveRequest struct {
	Idea map[string]any `json:"idea" binding:"required"`
}

type IdeaResponse struct {
	Success bool        `json:"success"`
	Idea    *ideas.Idea `json:"idea"`
}

type ListResponse struct {
	Success bool         `json:"success"`
	Ideas   []ideas.Idea `json:"ideas"`
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
