package ideas

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const (
	DefaultTitle         = "Untitled idea"
	DefaultTrendScore    = 50
	DefaultViews         = 10000
	DefaultDifficulty    = 50
	DefaultDuration      = "5-10 min"
	DefaultThumbnailIdea = "Thumbnail needed"
	DefaultNiche         = "General"
	DefaultChannelType   = "other"
)

// stored status code -> surfaced status
var statusFromStored = map[string]Status{
	"draft":     StatusSaved,
	"saved":     StatusSaved,
	"planned":   StatusPlanned,
	"published": StatusPublished,
}

// surfaced status -> stored status code
var statusToStored = map[Status]string{
	StatusSaved:     "draft",
	StatusPlanned:   "planned",
	StatusPublished: "published",
}

// bucket words the generator may answer with, mapped to representative scores
var bucketScores = map[string]int{
	"easy":    25,
	"fácil":   25,
	"facil":   25,
	"medium":  50,
	"médio":   50,
	"medio":   50,
	"hard":    75,
	"difícil": 75,
	"dificil": 75,
}

var viewsPattern = regexp.MustCompile(`(?i)^\s*([\d.,]+)\s*([km]?)`)

// maps any raw idea into the canonical Idea, applying defaults for missing
// fields. Never fails.
func Normalize(raw Raw) Idea {
	switch r := raw.(type) {
	case Generated:
		return normalizeGenerated(r)
	case *Generated:
		return normalizeGenerated(*r)
	case Stored:
		return normalizeStored(r)
	case *Stored:
		return normalizeStored(*r)
	default:
		return withDefaults(Idea{})
	}
}

// maps a canonical idea to its row form for persistence
func ToStored(idea Idea) Stored {
	idea = withDefaults(idea)

	var thumbnails []string
	if idea.ThumbnailIdea != DefaultThumbnailIdea {
		thumbnails = []string{idea.ThumbnailIdea}
	}

	return Stored{
		ID:                idea.ID,
		UserID:            idea.UserID,
		Title:             ptr(idea.Title),
		Description:       ptr(idea.Description),
		Category:          ptr(idea.Niche),
		Tags:              idea.Tags,
		Hooks:             idea.Hooks,
		EstimatedViews:    ptr(int(idea.EstimatedViews)),
		DifficultyScore:   ptr(idea.DifficultyScore),
		TrendScore:        ptr(idea.TrendScore),
		ThumbnailIdeas:    thumbnails,
		TargetAudience:    ptr(idea.ChannelType),
		EstimatedDuration: ptr(idea.Duration),
		Status:            ptr(StoredStatus(idea.Status)),
		ScriptOutline:     ptr(idea.Notes),
		BestPostingTime:   idea.ScheduledAt,
		CreatedAt:         idea.CreatedAt,
	}
}

// translates a stored status code into the surfaced status. Unknown codes
// surface as saved.
func SurfaceStatus(code string) Status {
	if status, ok := statusFromStored[strings.ToLower(strings.TrimSpace(code))]; ok {
		return status
	}

	return StatusSaved
}

// translates a surfaced (or stored) status into the stored code
func StoredStatus(status Status) string {
	return statusToStored[SurfaceStatus(string(status))]
}

// buckets a 0-100 difficulty score
func DifficultyFor(score int) Difficulty {
	switch {
	case score <= 25:
		return DifficultyEasy
	case score <= 50:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

func normalizeStored(s Stored) Idea {
	idea := Idea{
		ID:          s.ID,
		UserID:      s.UserID,
		Title:       deref(s.Title),
		Description: deref(s.Description),
		Tags:        nonEmpty(s.Tags),
		Hooks:       nonEmpty(s.Hooks),
		Duration:    deref(s.EstimatedDuration),
		Niche:       deref(s.Category),
		ChannelType: deref(s.TargetAudience),
		Status:      SurfaceStatus(deref(s.Status)),
		Notes:       deref(s.ScriptOutline),
		CreatedAt:   s.CreatedAt,
		ScheduledAt: s.BestPostingTime,
	}

	idea.TrendScore = DefaultTrendScore
	if s.TrendScore != nil {
		idea.TrendScore = clampScore(*s.TrendScore)
	}

	if s.EstimatedViews != nil {
		idea.EstimatedViews = Views(*s.EstimatedViews)
	}

	idea.DifficultyScore = DefaultDifficulty
	if s.DifficultyScore != nil {
		idea.DifficultyScore = clampScore(*s.DifficultyScore)
	}

	idea.ThumbnailIdea = firstNonEmpty(s.ThumbnailIdeas)

	return withDefaults(idea)
}

func normalizeGenerated(g Generated) Idea {
	f := g.Fields

	idea := Idea{
		ID:          stringField(f, "id"),
		UserID:      stringField(f, "userId"),
		Title:       stringField(f, "title"),
		Description: stringField(f, "description"),
		Tags:        listField(f, "tags"),
		Hooks:       listField(f, "hooks"),
		Duration:    stringField(f, "duration", "estimatedDuration"),
		Niche:       stringField(f, "niche", "category"),
		ChannelType: stringField(f, "channelType"),
		Status:      SurfaceStatus(stringField(f, "status")),
		Notes:       stringField(f, "notes"),
		ScheduledAt: timeField(f, "scheduledAt", "scheduledDate"),
	}

	if idea.Niche == "" {
		idea.Niche = strings.TrimSpace(g.Niche)
	}

	if idea.ChannelType == "" {
		idea.ChannelType = strings.TrimSpace(g.ChannelType)
	}

	idea.TrendScore = DefaultTrendScore
	if n, ok := intValue(f["trendScore"]); ok {
		idea.TrendScore = clampScore(n)
	}

	if n, ok := parseViews(f["estimatedViews"]); ok {
		idea.EstimatedViews = Views(n)
	}

	idea.DifficultyScore = difficultyScore(f)

	idea.ThumbnailIdea = stringField(f, "thumbnailIdea")
	if idea.ThumbnailIdea == "" {
		idea.ThumbnailIdea = firstNonEmpty(listField(f, "thumbnailIdeas"))
	}

	if t, ok := f["createdAt"].(string); ok {
		if created, err := time.Parse(time.RFC3339, t); err == nil {
			idea.CreatedAt = created
		}
	}

	return withDefaults(idea)
}

// an explicit numeric score wins over a bucket word
func difficultyScore(f map[string]any) int {
	if n, ok := intValue(f["difficultyScore"]); ok {
		return clampScore(n)
	}

	switch v := f["difficulty"].(type) {
	case string:
		if score, ok := bucketScores[strings.ToLower(strings.TrimSpace(v))]; ok {
			return score
		}

		if n, ok := intValue(v); ok {
			return clampScore(n)
		}
	default:
		if n, ok := intValue(v); ok {
			return clampScore(n)
		}
	}

	return DefaultDifficulty
}

func withDefaults(idea Idea) Idea {
	idea.Title = strings.TrimSpace(idea.Title)
	if idea.Title == "" {
		idea.Title = DefaultTitle
	}

	if idea.EstimatedViews <= 0 {
		idea.EstimatedViews = DefaultViews
	}

	idea.TrendScore = clampScore(idea.TrendScore)
	idea.DifficultyScore = clampScore(idea.DifficultyScore)
	idea.Difficulty = DifficultyFor(idea.DifficultyScore)

	if idea.Tags == nil {
		idea.Tags = []string{}
	}

	if idea.Hooks == nil {
		idea.Hooks = []string{}
	}

	if strings.TrimSpace(idea.Duration) == "" {
		idea.Duration = DefaultDuration
	}

	if strings.TrimSpace(idea.ThumbnailIdea) == "" {
		idea.ThumbnailIdea = DefaultThumbnailIdea
	}

	if strings.TrimSpace(idea.Niche) == "" {
		idea.Niche = DefaultNiche
	}

	if strings.TrimSpace(idea.ChannelType) == "" {
		idea.ChannelType = DefaultChannelType
	}

	if idea.Status == "" {
		idea.Status = StatusSaved
	}

	return idea
}

func clampScore(n int) int {
	return max(0, min(100, n))
}

// parses a views estimate: a number, "10000+", "50K-100K" or "1.5M" (lower
// bound is kept)
func parseViews(v any) (int, bool) {
	switch val := v.(type) {
	case nil:
		return 0, false
	case string:
		m := viewsPattern.FindStringSubmatch(val)
		if m == nil {
			return 0, false
		}

		num, err := strconv.ParseFloat(strings.ReplaceAll(m[1], ",", ""), 64)
		if err != nil {
			return 0, false
		}

		switch strings.ToLower(m[2]) {
		case "k":
			num *= 1_000
		case "m":
			num *= 1_000_000
		}

		return int(math.Round(num)), num > 0
	default:
		n, ok := intValue(val)
		return n, ok && n > 0
	}
}

func intValue(v any) (int, bool) {
	switch val := v.(type) {
	case int:
		return val, true
	case int32:
		return int(val), true
	case int64:
		return int(val), true
	case float32:
		return int(math.Round(float64(val))), true
	case float64:
		return int(math.Round(val)), true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
		if err != nil {
			return 0, false
		}
		return int(math.Round(f)), true
	default:
		return 0, false
	}
}

// first non-empty string among keys
func stringField(f map[string]any, keys ...string) string {
	for _, key := range keys {
		switch v := f[key].(type) {
		case string:
			if s := strings.TrimSpace(v); s != "" {
				return s
			}
		case []string, []any:
			if s := firstNonEmpty(listField(f, key)); s != "" {
				return s
			}
		case nil, map[string]any:
		default:
			if s := strings.TrimSpace(fmt.Sprint(v)); s != "" {
				return s
			}
		}
	}

	return ""
}

// accepts a list or a comma separated string
func listField(f map[string]any, key string) []string {
	var out []string

	switch v := f[key].(type) {
	case []string:
		for _, s := range v {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				if s = strings.TrimSpace(s); s != "" {
					out = append(out, s)
				}
			}
		}
	case string:
		for _, s := range strings.Split(v, ",") {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}

	return out
}

func timeField(f map[string]any, keys ...string) *time.Time {
	for _, key := range keys {
		switch v := f[key].(type) {
		case time.Time:
			return &v
		case *time.Time:
			if v != nil {
				return v
			}
		case string:
			if t, err := time.Parse(time.RFC3339, strings.TrimSpace(v)); err == nil {
				return &t
			}
		}
	}

	return nil
}

func firstNonEmpty(list []string) string {
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			return s
		}
	}

	return ""
}

func nonEmpty(list []string) []string {
	out := make([]string, 0, len(list))
	for _, s := range list {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}

	return out
}

func ptr[T any](v T) *T {
	return &v
}

func deref(s *string) string {
	if s == nil {
		return ""
	}

	return strings.TrimSpace(*s)
}
