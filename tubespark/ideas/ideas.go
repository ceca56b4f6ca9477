package ideas

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrIdeaNotFound = errors.New("idea not found")
)

// owner-scoped access to canonical ideas. Everything read back from the
// repository passes through Normalize.
type Store struct {
	repo Repository
}

func NewStore(repo Repository) *Store {
	return &Store{repo: repo}
}

// returns the user's ideas, newest first
func (s *Store) ListForUser(ctx context.Context, userID string) ([]Idea, error) {
	rows, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}

	result := make([]Idea, 0, len(rows))
	for _, row := range rows {
		result = append(result, Normalize(row))
	}

	return result, nil
}

// normalizes raw and persists it for userID. Quota is the caller's concern.
func (s *Store) Create(ctx context.Context, userID string, raw Raw) (*Idea, error) {
	idea := Normalize(raw)
	idea.ID = ""
	idea.UserID = userID
	idea.CreatedAt = time.Time{}

	row, err := s.repo.Insert(ctx, userID, ToStored(idea))
	if err != nil {
		return nil, fmt.Errorf("failed to save idea: %w", err)
	}

	created := Normalize(*row)
	return &created, nil
}

func (s *Store) Get(ctx context.Context, userID, ideaID string) (*Idea, error) {
	if !validID(ideaID) {
		return nil, ErrIdeaNotFound
	}

	row, err := s.repo.Get(ctx, userID, ideaID)
	if err != nil {
		return nil, wrapRepoError("get", err)
	}

	idea := Normalize(*row)
	return &idea, nil
}

func (s *Store) Update(ctx context.Context, userID, ideaID string, req UpdateRequest) (*Idea, error) {
	if !validID(ideaID) {
		return nil, ErrIdeaNotFound
	}

	patch := Patch{
		Title:           req.Title,
		Description:     req.Description,
		Category:        req.Niche,
		Tags:            req.Tags,
		ScriptOutline:   req.Notes,
		BestPostingTime: req.ScheduledAt,
	}

	if req.Status != nil {
		patch.Status = ptr(StoredStatus(Status(*req.Status)))
	}

	row, err := s.repo.Update(ctx, userID, ideaID, patch)
	if err != nil {
		return nil, wrapRepoError("update", err)
	}

	idea := Normalize(*row)
	return &idea, nil
}

// deletes an idea owned by userID. Missing, foreign and malformed ids are all
// ErrIdeaNotFound.
func (s *Store) Delete(ctx context.Context, userID, ideaID string) error {
	if !validID(ideaID) {
		return ErrIdeaNotFound
	}

	if err := s.repo.Delete(ctx, userID, ideaID); err != nil {
		return wrapRepoError("delete", err)
	}

	return nil
}

// counts the user's ideas; IdeasThisMonth counts those created at or after
// cycleStart
func (s *Store) Stats(ctx context.Context, userID string, cycleStart time.Time) (*Stats, error) {
	stats, err := s.repo.Stats(ctx, userID, cycleStart)
	if err != nil {
		return nil, fmt.Errorf("failed to compute idea stats: %w", err)
	}

	return stats, nil
}

func validID(id string) bool {
	return uuid.Validate(id) == nil
}

func wrapRepoError(op string, err error) error {
	if errors.Is(err, ErrIdeaNotFound) {
		return ErrIdeaNotFound
	}

	return fmt.Errorf("failed to %s idea: %w", op, err)
}
