package scripts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"

	"codeberg.org/tubespark/server/internal/generation"
	"codeberg.org/tubespark/server/internal/llm"
	"codeberg.org/tubespark/server/internal/quota"
)

var (
	ErrInvalidType = errors.New("invalid script type")

	jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)
)

// writes scripts for saved ideas. Each script spends one unit of the
// kind matching its type; failed generations are not refunded.
type Generator struct {
	ideas     IdeaSource
	ledger    Ledger
	text      llm.TextGenerator
	maxTokens int
	timeout   time.Duration
	now       func() time.Time
}

type Option func(*Generator)

func WithTimeout(d time.Duration) Option {
	return func(g *Generator) {
		if d > 0 {
			g.timeout = d
		}
	}
}

func WithMaxTokens(n int) Option {
	return func(g *Generator) {
		g.maxTokens = n
	}
}

func NewGenerator(source IdeaSource, ledger Ledger, text llm.TextGenerator, opts ...Option) *Generator {
	g := &Generator{
		ideas:   source,
		ledger:  ledger,
		text:    text,
		timeout: generation.DefaultTimeout,
		now:     time.Now,
	}

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// generates one script for an idea owned by userID. A missing or foreign
// idea is ideas.ErrIdeaNotFound and spends nothing.
func (g *Generator) Generate(ctx context.Context, userID, ideaID string, scriptType Type, opts Options) (*Script, *quota.Consumption, error) {
	kind, ok := scriptType.Kind()
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrInvalidType, scriptType)
	}

	idea, err := g.ideas.Get(ctx, userID, ideaID)
	if err != nil {
		return nil, nil, err
	}

	consumption, err := g.ledger.Consume(ctx, userID, kind, 1)
	if err != nil {
		return nil, nil, err
	}

	if !consumption.OK {
		return nil, consumption, &quota.ExceededError{
			Kind:  kind,
			Used:  consumption.Used,
			Limit: consumption.Limit,
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, g.timeout)
	defer cancel()

	resp, err := g.text.GenerateText(callCtx, llm.TextGenerationRequest{
		SystemPrompt: systemPrompt,
		Messages: []llm.Message{
			{Role: "user", Content: buildPrompt(*idea, scriptType, opts)},
		},
		MaxTokens: g.maxTokens,
	})

	var content map[string]any
	if err == nil {
		content, err = parseContent(resp.Text)
	}

	if err != nil {
		return nil, consumption, &generation.FailedError{
			Reason: generation.FailureReason(callCtx, err),
			Err:    err,
		}
	}

	return &Script{
		IdeaID:      idea.ID,
		UserID:      userID,
		ScriptType:  scriptType,
		Content:     content,
		GeneratedAt: g.now().UTC(),
	}, consumption, nil
}

func parseContent(text string) (map[string]any, error) {
	match := jsonObjectPattern.FindString(text)
	if match == "" {
		return nil, fmt.Errorf("%w: no JSON object found", generation.ErrMalformedResponse)
	}

	var content map[string]any
	if err := json.Unmarshal([]byte(match), &content); err != nil {
		return nil, fmt.Errorf("%w: %v", generation.ErrMalformedResponse, err)
	}

	if len(content) == 0 {
		return nil, fmt.Errorf("%w: empty script", generation.ErrMalformedResponse)
	}

	return content, nil
}
