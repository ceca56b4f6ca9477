package generation

import (
	"fmt"
	"strings"
)

const systemPrompt = "You are an expert YouTube content strategist specializing in viral video ideas. " +
	"Generate creative, engaging and trend-aware video concepts."

var languageInstructions = map[string]string{
	"pt": "Write every idea in Brazilian Portuguese.",
	"en": "Write every idea in English.",
	"es": "Write every idea in Spanish.",
	"fr": "Write every idea in French.",
}

// assembles the user prompt for one batch
func buildPrompt(req Request) string {
	count := req.Count
	if count == 0 {
		count = DefaultCount
	}

	language := languageInstructions[req.Language]
	if language == "" {
		language = languageInstructions["pt"]
	}

	keywords := req.Keywords
	if keywords == "" {
		keywords = "N/A"
	}

	var builder strings.Builder

	builder.WriteString(fmt.Sprintf("Generate %d viral YouTube video ideas. %s\n\n", count, language))
	builder.WriteString(fmt.Sprintf("Channel niche: %s\n", req.Niche))
	builder.WriteString(fmt.Sprintf("Channel type: %s\n", req.ChannelType))
	builder.WriteString(fmt.Sprintf("Audience age: %s\n", req.AudienceAge))
	builder.WriteString(fmt.Sprintf("Content style: %s\n", req.ContentStyle))
	builder.WriteString(fmt.Sprintf("Keywords: %s\n\n", keywords))

	builder.WriteString(`Answer with a JSON array, one object per idea, exactly in this shape:
[
  {
    "title": "attention-grabbing title",
    "description": "detailed concept (100-150 words)",
    "trendScore": 85,
    "estimatedViews": "50K-100K",
    "difficulty": "Easy|Medium|Hard",
    "tags": ["tag1", "tag2", "tag3"],
    "hooks": ["opening hook"],
    "duration": "8-12 min",
    "thumbnailIdea": "thumbnail concept"
  }
]

Focus on ethical, attractive titles, concepts that drive engagement, current trends in the niche, SEO and
production feasibility.

Return ONLY the JSON array, no markdown or explanations.`)

	return builder.String()
}
