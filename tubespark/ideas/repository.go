package ideas

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// implements Repository on the video_ideas table
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// creates the required tables if they don't exist
func (r *PostgresRepository) Initialize(ctx context.Context) error {
	_, err := r.db.Exec(ctx, queryCreateTable)
	return err
}

func (r *PostgresRepository) Insert(ctx context.Context, userID string, row Stored) (*Stored, error) {
	tags := row.Tags
	if tags == nil {
		tags = []string{}
	}

	hooks := row.Hooks
	if hooks == nil {
		hooks = []string{}
	}

	return scanIdea(r.db.QueryRow(
		ctx,
		queryCreate,
		userID,
		deref(row.Title),
		row.Description,
		row.Category,
		tags,
		hooks,
		row.EstimatedViews,
		row.DifficultyScore,
		row.TrendScore,
		row.ThumbnailIdeas,
		row.TargetAudience,
		row.EstimatedDuration,
		row.Status,
		row.ScriptOutline,
		row.BestPostingTime,
	))
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]Stored, error) {
	rows, err := r.db.Query(ctx, queryList, userID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()
	var result []Stored

	for rows.Next() {
		row, err := scanIdea(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *row)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, userID, ideaID string) (*Stored, error) {
	row, err := scanIdea(r.db.QueryRow(ctx, queryGet, ideaID, userID))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrIdeaNotFound
	}

	return row, err
}

func (r *PostgresRepository) Update(ctx context.Context, userID, ideaID string, patch Patch) (*Stored, error) {
	row, err := scanIdea(r.db.QueryRow(
		ctx,
		queryUpdate,
		patch.Title,
		patch.Description,
		patch.Category,
		patch.Tags,
		patch.Status,
		patch.ScriptOutline,
		patch.BestPostingTime,
		ideaID,
		userID,
	))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrIdeaNotFound
	}

	return row, err
}

func (r *PostgresRepository) Delete(ctx context.Context, userID, ideaID string) error {
	result, err := r.db.Exec(ctx, queryDelete, ideaID, userID)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return ErrIdeaNotFound
	}

	return nil
}

func (r *PostgresRepository) Stats(ctx context.Context, userID string, since time.Time) (*Stats, error) {
	var stats Stats

	err := r.db.QueryRow(ctx, queryStats, userID, since).Scan(
		&stats.TotalIdeas,
		&stats.IdeasThisMonth,
		&stats.DraftIdeas,
		&stats.PlannedIdeas,
		&stats.PublishedIdeas,
	)
	if err != nil {
		return nil, err
	}

	return &stats, nil
}

func scanIdea(row pgx.Row) (*Stored, error) {
	var s Stored

	err := row.Scan(
		&s.ID,
		&s.UserID,
		&s.Title,
		&s.Description,
		&s.Category,
		&s.Tags,
		&s.Hooks,
		&s.EstimatedViews,
		&s.DifficultyScore,
		&s.TrendScore,
		&s.ThumbnailIdeas,
		&s.TargetAudience,
		&s.EstimatedDuration,
		&s.Status,
		&s.ScriptOutline,
		&s.BestPostingTime,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &s, nil
}
