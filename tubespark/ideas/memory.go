package ideas

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
)

// implements Repository in process memory
type MemoryRepository struct {
	mu   sync.RWMutex
	rows map[string]Stored
	seqs map[string]uint64 // insertion order, breaks created_at ties
	next uint64
	now  func() time.Time
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		rows: make(map[string]Stored),
		seqs: make(map[string]uint64),
		now:  time.Now,
	}
}

func (r *MemoryRepository) Insert(_ context.Context, userID string, row Stored) (*Stored, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	now := r.now().UTC()

	row.ID = uuid.NewString()
	row.UserID = userID
	if row.CreatedAt.IsZero() {
		row.CreatedAt = now
	}
	row.UpdatedAt = now

	if row.Tags == nil {
		row.Tags = []string{}
	}

	if row.Hooks == nil {
		row.Hooks = []string{}
	}

	if row.Status == nil {
		row.Status = ptr("draft")
	}

	r.rows[row.ID] = row
	r.next++
	r.seqs[row.ID] = r.next

	return &row, nil
}

func (r *MemoryRepository) ListByUser(_ context.Context, userID string) ([]Stored, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []Stored
	for _, row := range r.rows {
		if row.UserID == userID {
			result = append(result, row)
		}
	}

	slices.SortFunc(result, func(a, b Stored) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return int(r.seqs[b.ID]) - int(r.seqs[a.ID])
	})

	return result, nil
}

func (r *MemoryRepository) Get(_ context.Context, userID, ideaID string) (*Stored, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[ideaID]
	if !ok || row.UserID != userID {
		return nil, ErrIdeaNotFound
	}

	return &row, nil
}

func (r *MemoryRepository) Update(_ context.Context, userID, ideaID string, patch Patch) (*Stored, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[ideaID]
	if !ok || row.UserID != userID {
		return nil, ErrIdeaNotFound
	}

	if patch.Title != nil {
		row.Title = patch.Title
	}
	if patch.Description != nil {
		row.Description = patch.Description
	}
	if patch.Category != nil {
		row.Category = patch.Category
	}
	if patch.Tags != nil {
		row.Tags = patch.Tags
	}
	if patch.Status != nil {
		row.Status = patch.Status
	}
	if patch.ScriptOutline != nil {
		row.ScriptOutline = patch.ScriptOutline
	}
	if patch.BestPostingTime != nil {
		row.BestPostingTime = patch.BestPostingTime
	}

	row.UpdatedAt = r.now().UTC()
	r.rows[ideaID] = row

	return &row, nil
}

func (r *MemoryRepository) Delete(_ context.Context, userID, ideaID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[ideaID]
	if !ok || row.UserID != userID {
		return ErrIdeaNotFound
	}

	delete(r.rows, ideaID)
	delete(r.seqs, ideaID)
	return nil
}

func (r *MemoryRepository) Stats(_ context.Context, userID string, since time.Time) (*Stats, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var stats Stats
	for _, row := range r.rows {
		if row.UserID != userID {
			continue
		}

		stats.TotalIdeas++

		if !row.CreatedAt.Before(since) {
			stats.IdeasThisMonth++
		}

		switch deref(row.Status) {
		case "draft":
			stats.DraftIdeas++
		case "planned":
			stats.PlannedIdeas++
		case "published":
			stats.PublishedIdeas++
		}
	}

	return &stats, nil
}
