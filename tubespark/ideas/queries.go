package ideas

const (
	ideaColumns = `id::text, user_id, title, description, category, tags, hooks, estimated_views, difficulty_score,
		trend_score, thumbnail_ideas, target_audience, estimated_duration, status, script_outline, best_posting_time,
		created_at, updated_at`

	queryCreateTable = `
		CREATE TABLE IF NOT EXISTS video_ideas (
			id UUID PRIMARY KEY DEFAULT gen_random_uuid(),
			user_id TEXT NOT NULL,
			title TEXT NOT NULL,
			description TEXT,
			category TEXT,
			tags TEXT[] NOT NULL DEFAULT '{}',
			hooks TEXT[] NOT NULL DEFAULT '{}',
			estimated_views INTEGER,
			difficulty_score INTEGER,
			trend_score INTEGER,
			thumbnail_ideas TEXT[],
			target_audience TEXT,
			estimated_duration TEXT,
			status TEXT NOT NULL DEFAULT 'draft',
			script_outline TEXT,
			best_posting_time TIMESTAMP WITH TIME ZONE,
			created_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
			updated_at TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
		);
		CREATE INDEX IF NOT EXISTS idx_video_ideas_user_created ON video_ideas(user_id, created_at DESC);
	`

	queryCreate = `
		INSERT INTO video_ideas (
			user_id, title, description, category, tags, hooks, estimated_views, difficulty_score, trend_score,
			thumbnail_ideas, target_audience, estimated_duration, status, script_outline, best_posting_time
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + ideaColumns

	queryList = `
		SELECT ` + ideaColumns + `
		FROM video_ideas
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	queryGet = `
		SELECT ` + ideaColumns + `
		FROM video_ideas
		WHERE id = $1 AND user_id = $2
	`

	queryUpdate = `
		UPDATE video_ideas
		SET title = COALESCE($1, title),
		    description = COALESCE($2, description),
		    category = COALESCE($3, category),
		    tags = COALESCE($4::text[], tags),
		    status = COALESCE($5, status),
		    script_outline = COALESCE($6, script_outline),
		    best_posting_time = COALESCE($7, best_posting_time),
		    updated_at = NOW()
		WHERE id = $8 AND user_id = $9
		RETURNING ` + ideaColumns

	queryDelete = `
		DELETE FROM video_ideas
		WHERE id = $1 AND user_id = $2
	`

	queryStats = `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE created_at >= $2),
			COUNT(*) FILTER (WHERE status = 'draft'),
			COUNT(*) FILTER (WHERE status = 'planned'),
			COUNT(*) FILTER (WHERE status = 'published')
		FROM video_ideas
		WHERE user_id = $1
	`
)
