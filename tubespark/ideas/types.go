package ideas

import (
	"context"
	"encoding/json"
	"fmt"
	"time"
)

type Status string

const (
	StatusSaved     Status = "saved"
	StatusPlanned   Status = "planned"
	StatusPublished Status = "published"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// lower bound of expected views, rendered as "N+" in JSON
type Views int

func (v Views) String() string {
	return fmt.Sprintf("%d+", int(v))
}

func (v Views) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

func (v *Views) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	n, ok := parseViews(raw)
	if !ok {
		return fmt.Errorf("invalid estimated views: %s", string(data))
	}

	*v = Views(n)
	return nil
}

// canonical idea returned to callers. Every defaultable field is populated.
type Idea struct {
	ID              string     `json:"id,omitempty"`
	UserID          string     `json:"userId,omitempty"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	TrendScore      int        `json:"trendScore"`
	EstimatedViews  Views      `json:"estimatedViews"`
	DifficultyScore int        `json:"difficultyScore"`
	Difficulty      Difficulty `json:"difficulty"`
	Tags            []string   `json:"tags"`
	Hooks           []string   `json:"hooks"`
	Duration        string     `json:"duration"`
	ThumbnailIdea   string     `json:"thumbnailIdea"`
	Niche           string     `json:"niche"`
	ChannelType     string     `json:"channelType"`
	Status          Status     `json:"status"`
	Notes           string     `json:"notes"`
	CreatedAt       time.Time  `json:"createdAt,omitzero"`
	ScheduledAt     *time.Time `json:"scheduledAt,omitempty"`
}

// raw idea representation accepted by Normalize. Implemented only by
// Generated and Stored.
type Raw interface {
	isRaw()
}

// untyped candidate from the generator or a client payload. Niche and
// ChannelType are request context used when the fields omit them.
type Generated struct {
	Fields      map[string]any
	Niche       string
	ChannelType string
}

// a video_ideas row. Nullable columns are pointers.
type Stored struct {
	ID                string
	UserID            string
	Title             *string
	Description       *string
	Category          *string
	Tags              []string
	Hooks             []string
	EstimatedViews    *int
	DifficultyScore   *int
	TrendScore        *int
	ThumbnailIdeas    []string
	TargetAudience    *string
	EstimatedDuration *string
	Status            *string
	ScriptOutline     *string
	BestPostingTime   *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

func (Generated) isRaw() {}
func (Stored) isRaw()    {}

// partial update, nil fields are left unchanged
type UpdateRequest struct {
	Title       *string    `json:"title,omitempty" binding:"omitempty,min=1,max=300"`
	Description *string    `json:"description,omitempty" binding:"omitempty,max=5000"`
	Niche       *string    `json:"niche,omitempty" binding:"omitempty,max=100"`
	Tags        []string   `json:"tags,omitempty" binding:"max=30,dive,max=60"`
	Status      *string    `json:"status,omitempty" binding:"omitempty,oneof=draft saved planned published"`
	Notes       *string    `json:"notes,omitempty" binding:"omitempty,max=10000"`
	ScheduledAt *time.Time `json:"scheduledAt,omitempty"`
}

// column-level form of UpdateRequest after status translation
type Patch struct {
	Title           *string
	Description     *string
	Category        *string
	Tags            []string
	Status          *string
	ScriptOutline   *string
	BestPostingTime *time.Time
}

type Stats struct {
	TotalIdeas     int `json:"totalIdeas"`
	IdeasThisMonth int `json:"ideasThisMonth"`
	DraftIdeas     int `json:"draftIdeas"`
	PlannedIdeas   int `json:"plannedIdeas"`
	PublishedIdeas int `json:"publishedIdeas"`
}

// owner-scoped persistence of idea rows. Get, Update and Delete return
// ErrIdeaNotFound when no row with that id belongs to userID.
type Repository interface {
	Insert(ctx context.Context, userID string, row Stored) (*Stored, error)
	ListByUser(ctx context.Context, userID string) ([]Stored, error)
	Get(ctx context.Context, userID, ideaID string) (*Stored, error)
	Update(ctx context.Context, userID, ideaID string, patch Patch) (*Stored, error)
	Delete(ctx context.Context, userID, ideaID string) error
	Stats(ctx context.Context, userID string, since time.Time) (*Stats, error)
}
