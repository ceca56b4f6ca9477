package ideas

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDifficultyFor_Boundaries(t *testing.T) {
	tests := []struct {
		score int
		want  Difficulty
	}{
		{0, DifficultyEasy},
		{25, DifficultyEasy},
		{26, DifficultyMedium},
		{50, DifficultyMedium},
		{51, DifficultyHard},
		{100, DifficultyHard},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, DifficultyFor(tt.score), "score %d", tt.score)
	}
}

func TestNormalize_StoredDifficultyBoundaries(t *testing.T) {
	for score, want := range map[int]Difficulty{25: DifficultyEasy, 26: DifficultyMedium, 50: DifficultyMedium, 51: DifficultyHard} {
		idea := Normalize(Stored{Title: ptr("x"), DifficultyScore: ptr(score)})
		assert.Equal(t, want, idea.Difficulty, "score %d", score)
		assert.Equal(t, score, idea.DifficultyScore)
	}
}

func TestNormalize_EmptyStoredRowGetsDefaults(t *testing.T) {
	idea := Normalize(Stored{ID: "abc", UserID: "user-1"})

	assert.Equal(t, DefaultTitle, idea.Title)
	assert.Equal(t, "", idea.Description)
	assert.Equal(t, 50, idea.TrendScore)
	assert.Equal(t, Views(10000), idea.EstimatedViews)
	assert.Equal(t, 50, idea.DifficultyScore)
	assert.Equal(t, DifficultyMedium, idea.Difficulty)
	assert.Equal(t, []string{}, idea.Tags)
	assert.Equal(t, []string{}, idea.Hooks)
	assert.Equal(t, "5-10 min", idea.Duration)
	assert.Equal(t, "Thumbnail needed", idea.ThumbnailIdea)
	assert.Equal(t, "General", idea.Niche)
	assert.Equal(t, "other", idea.ChannelType)
	assert.Equal(t, StatusSaved, idea.Status)
	assert.Nil(t, idea.ScheduledAt)
}

func TestNormalize_StoredStatusTranslation(t *testing.T) {
	tests := map[string]Status{
		"draft":     StatusSaved,
		"saved":     StatusSaved,
		"planned":   StatusPlanned,
		"published": StatusPublished,
		"archived":  StatusSaved,
	}

	for code, want := range tests {
		idea := Normalize(Stored{Status: ptr(code)})
		assert.Equal(t, want, idea.Status, "code %s", code)
	}
}

func TestNormalize_StoredPicksFirstThumbnail(t *testing.T) {
	idea := Normalize(Stored{ThumbnailIdeas: []string{"", "  ", "red arrow on face", "second"}})

	assert.Equal(t, "red arrow on face", idea.ThumbnailIdea)
}

func TestNormalize_GeneratedCandidate(t *testing.T) {
	idea := Normalize(Generated{
		Niche:       "cooking",
		ChannelType: "lifestyle",
		Fields: map[string]any{
			"title":          "  10 meals under $5  ",
			"description":    "budget cooking",
			"trendScore":     float64(142),
			"estimatedViews": "50K-100K",
			"difficulty":     "Fácil",
			"tags":           []any{"budget", " ", "meals"},
			"hooks":          "you won't believe #3, cheap eats",
			"duration":       "8-12 min",
			"thumbnailIdea":  "plate with price tag",
		},
	})

	assert.Equal(t, "10 meals under $5", idea.Title)
	assert.Equal(t, 100, idea.TrendScore)
	assert.Equal(t, Views(50000), idea.EstimatedViews)
	assert.Equal(t, DifficultyEasy, idea.Difficulty)
	assert.Equal(t, 25, idea.DifficultyScore)
	assert.Equal(t, []string{"budget", "meals"}, idea.Tags)
	assert.Equal(t, []string{"you won't believe #3", "cheap eats"}, idea.Hooks)
	assert.Equal(t, "cooking", idea.Niche)
	assert.Equal(t, "lifestyle", idea.ChannelType)
	assert.Equal(t, StatusSaved, idea.Status)
}

func TestNormalize_GeneratedNumericStrings(t *testing.T) {
	idea := Normalize(Generated{Fields: map[string]any{
		"title":          "x",
		"trendScore":     "87",
		"difficulty":     "40",
		"estimatedViews": "1.5M",
	}})

	assert.Equal(t, 87, idea.TrendScore)
	assert.Equal(t, 40, idea.DifficultyScore)
	assert.Equal(t, DifficultyMedium, idea.Difficulty)
	assert.Equal(t, Views(1500000), idea.EstimatedViews)
}

func TestNormalize_GeneratedScoreWinsOverBucket(t *testing.T) {
	idea := Normalize(Generated{Fields: map[string]any{
		"difficulty":      "Hard",
		"difficultyScore": 10,
	}})

	assert.Equal(t, 10, idea.DifficultyScore)
	assert.Equal(t, DifficultyEasy, idea.Difficulty)
}

func TestNormalize_GeneratedFieldsOverrideRequestContext(t *testing.T) {
	idea := Normalize(Generated{
		Niche:  "request niche",
		Fields: map[string]any{"niche": "field niche"},
	})

	assert.Equal(t, "field niche", idea.Niche)
	assert.Equal(t, "other", idea.ChannelType)
}

func TestNormalize_UnparseableValuesFallBack(t *testing.T) {
	idea := Normalize(Generated{Fields: map[string]any{
		"trendScore":     "hot",
		"estimatedViews": "lots",
		"difficulty":     map[string]any{"level": 3},
		"tags":           42,
		"scheduledAt":    "next tuesday",
	}})

	assert.Equal(t, 50, idea.TrendScore)
	assert.Equal(t, Views(10000), idea.EstimatedViews)
	assert.Equal(t, DifficultyMedium, idea.Difficulty)
	assert.Equal(t, []string{}, idea.Tags)
	assert.Nil(t, idea.ScheduledAt)
}

func TestNormalize_ListValuedStringFieldsTakeFirstItem(t *testing.T) {
	idea := Normalize(Generated{Fields: map[string]any{
		"thumbnailIdea": []any{"close-up face", "big arrow"},
		"duration":      []any{"", "8-12 min"},
		"notes":         []string{"film at dusk"},
	}})

	assert.Equal(t, "close-up face", idea.ThumbnailIdea)
	assert.Equal(t, "8-12 min", idea.Duration)
	assert.Equal(t, "film at dusk", idea.Notes)
}

func TestNormalize_MapValuedStringFieldsAreIgnored(t *testing.T) {
	idea := Normalize(Generated{Fields: map[string]any{
		"niche": map[string]any{"name": "cooking"},
		"title": map[string]any{"text": "x"},
	}})

	assert.Equal(t, "General", idea.Niche)
	assert.Equal(t, DefaultTitle, idea.Title)

	idea = Normalize(Generated{
		Niche:  "baking",
		Fields: map[string]any{"niche": map[string]any{"name": "cooking"}},
	})

	assert.Equal(t, "baking", idea.Niche)
}

func TestNormalize_NilFieldsMap(t *testing.T) {
	idea := Normalize(Generated{})

	assert.Equal(t, DefaultTitle, idea.Title)
	assert.Equal(t, StatusSaved, idea.Status)
}

func TestNormalize_GeneratedAndStoredAgree(t *testing.T) {
	scheduled := time.Date(2026, time.November, 3, 18, 0, 0, 0, time.UTC)

	generated := Normalize(Generated{
		Niche:       "tech",
		ChannelType: "tech",
		Fields: map[string]any{
			"title":          "Build a home lab",
			"description":    "cheap servers",
			"trendScore":     72,
			"estimatedViews": "25000+",
			"difficulty":     "Hard",
			"tags":           []any{"homelab", "linux"},
			"duration":       "10-15 min",
			"thumbnailIdea":  "rack of mini pcs",
			"status":         "planned",
			"notes":          "intro, build, tour",
			"scheduledAt":    scheduled.Format(time.RFC3339),
		},
	})

	stored := Normalize(Stored{
		ID:                "0b7c6a5e-1111-4d3f-9c7a-2a0d7e5f8c11",
		UserID:            "user-1",
		Title:             ptr("Build a home lab"),
		Description:       ptr("cheap servers"),
		Category:          ptr("tech"),
		Tags:              []string{"homelab", "linux"},
		EstimatedViews:    ptr(25000),
		DifficultyScore:   ptr(75),
		TrendScore:        ptr(72),
		ThumbnailIdeas:    []string{"rack of mini pcs"},
		TargetAudience:    ptr("tech"),
		EstimatedDuration: ptr("10-15 min"),
		Status:            ptr("planned"),
		ScriptOutline:     ptr("intro, build, tour"),
		BestPostingTime:   &scheduled,
		CreatedAt:         time.Now(),
	})

	stored.ID, stored.UserID, stored.CreatedAt = "", "", time.Time{}

	assert.Equal(t, generated, stored)
}

func TestToStored_RoundTrip(t *testing.T) {
	original := Normalize(Generated{Fields: map[string]any{
		"title":      "Round trip",
		"difficulty": "Easy",
		"tags":       []any{"a"},
		"status":     "saved",
	}})

	row := ToStored(original)

	assert.Equal(t, "draft", *row.Status)
	assert.Equal(t, 25, *row.DifficultyScore)
	assert.Nil(t, row.ThumbnailIdeas)

	assert.Equal(t, original, Normalize(row))
}

func TestStoredStatus(t *testing.T) {
	assert.Equal(t, "draft", StoredStatus(StatusSaved))
	assert.Equal(t, "draft", StoredStatus("draft"))
	assert.Equal(t, "planned", StoredStatus(StatusPlanned))
	assert.Equal(t, "published", StoredStatus(StatusPublished))
	assert.Equal(t, "draft", StoredStatus("bogus"))
}

func TestViews_JSON(t *testing.T) {
	data, err := json.Marshal(Views(10000))
	require.NoError(t, err)
	assert.JSONEq(t, `"10000+"`, string(data))

	var v Views
	require.NoError(t, json.Unmarshal([]byte(`"50K-100K"`), &v))
	assert.Equal(t, Views(50000), v)

	require.NoError(t, json.Unmarshal([]byte(`1200`), &v))
	assert.Equal(t, Views(1200), v)

	assert.Error(t, json.Unmarshal([]byte(`"many"`), &v))
}

func TestIdea_JSONHasNoNullDefaults(t *testing.T) {
	data, err := json.Marshal(Normalize(Generated{Fields: map[string]any{"title": "only title"}}))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))

	for _, key := range []string{"title", "description", "trendScore", "estimatedViews", "difficulty", "tags", "hooks", "duration", "thumbnailIdea", "niche", "channelType", "status", "notes"} {
		value, ok := decoded[key]
		assert.True(t, ok, "missing %s", key)
		assert.NotNil(t, value, "null %s", key)
	}

	assert.Equal(t, "10000+", decoded["estimatedViews"])
}
