package scripts

import (
	"fmt"
	"strings"

	"codeberg.org/tubespark/server/tubespark/ideas"
)

const systemPrompt = "You are an expert YouTube scriptwriter who maximizes retention and engagement. " +
	"Always answer with valid, well structured JSON."

var durationMinutes = map[string]string{
	"short":  "3-5 min",
	"medium": "6-8 min",
	"long":   "8-12 min",
}

func buildPrompt(idea ideas.Idea, scriptType Type, opts Options) string {
	tone := opts.Tone
	if tone == "" {
		tone = "casual"
	}

	duration := durationMinutes[opts.Duration]
	if duration == "" {
		duration = durationMinutes["medium"]
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("Write a %s YouTube video script for the idea below.\n\n", scriptType))
	builder.WriteString(fmt.Sprintf("Title: %s\n", idea.Title))
	builder.WriteString(fmt.Sprintf("Description: %s\n", idea.Description))
	builder.WriteString(fmt.Sprintf("Niche: %s\n", idea.Niche))
	builder.WriteString(fmt.Sprintf("Channel type: %s\n", idea.ChannelType))
	if len(idea.Hooks) > 0 {
		builder.WriteString(fmt.Sprintf("Hooks: %s\n", strings.Join(idea.Hooks, "; ")))
	}
	builder.WriteString(fmt.Sprintf("Tone: %s\n", tone))
	builder.WriteString(fmt.Sprintf("Target duration: %s\n\n", duration))

	if scriptType == TypePremium {
		builder.WriteString(`Answer with a JSON object exactly in this shape:
{
  "hook": "first 8 seconds, word for word",
  "introduction": "context and promise",
  "sections": [{"title": "section title", "content": "full narration", "timing": "0:30-2:00", "visuals": "b-roll and on-screen text"}],
  "retentionTactics": ["pattern interrupt at 2:00"],
  "callToAction": "closing call to action",
  "titleVariations": ["alternative title"],
  "thumbnailIdea": "thumbnail concept"
}`)
	} else {
		builder.WriteString(`Answer with a JSON object exactly in this shape:
{
  "hook": "opening hook",
  "introduction": "short introduction",
  "mainPoints": ["point 1", "point 2", "point 3"],
  "callToAction": "closing call to action"
}`)
	}

	return builder.String()
}
