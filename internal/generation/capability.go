package generation

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"

	"codeberg.org/tubespark/server/internal/llm"
)

var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// Capability backed by a text generator
type LLMCapability struct {
	generator llm.TextGenerator
	maxTokens int
}

func NewLLMCapability(generator llm.TextGenerator, maxTokens int) *LLMCapability {
	return &LLMCapability{
		generator: generator,
		maxTokens: maxTokens,
	}
}

func (c *LLMCapability) Generate(ctx context.Context, req Request) ([]map[string]any, error) {
	resp, err := c.generator.GenerateText(ctx, llm.TextGenerationRequest{
		SystemPrompt: systemPrompt,
		Messages: []llm.Message{
			{Role: "user", Content: buildPrompt(req)},
		},
		MaxTokens: c.maxTokens,
	})
	if err != nil {
		return nil, err
	}

	return parseCandidates(resp.Text)
}

// extracts the JSON array from a completion and keeps its object entries
func parseCandidates(text string) ([]map[string]any, error) {
	match := jsonArrayPattern.FindString(text)
	if match == "" {
		return nil, fmt.Errorf("%w: no JSON array found", ErrMalformedResponse)
	}

	var items []any
	if err := json.Unmarshal([]byte(match), &items); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	candidates := make([]map[string]any, 0, len(items))
	for _, item := range items {
		if fields, ok := item.(map[string]any); ok {
			candidates = append(candidates, fields)
		}
	}

	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w: no idea objects", ErrMalformedResponse)
	}

	return candidates, nil
}
