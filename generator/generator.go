package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"autotube/config"
	"autotube/types"
)

// Sentinel errors surfaced at the API boundary.
var (
	ErrMissingTopic = errors.New("topic is required")
	ErrNoProvider   = errors.New("no completion provider configured")
)

// Source tags how a result was produced: parsed from the model response,
// or built from the deterministic fallback template.
type Source string

const (
	SourceModel    Source = "model"
	SourceFallback Source = "fallback"
)

// Content is the metadata shape the model is asked to emit as JSON.
type Content struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Hashtags    []string `json:"hashtags"`
	Script      []string `json:"script"`
	Keywords    []string `json:"keywords"`
}

// Result is a tagged generation outcome. Fallback results are still
// successes; the tag makes the recovery path explicit to callers.
type Result struct {
	Video  types.VideoRecord
	Source Source
}

// Generator turns a topic string into a draft video record using a
// completion provider.
type Generator struct {
	provider Provider
	now      func() time.Time
}

// New creates a generator backed by the given provider.
func New(provider Provider) *Generator {
	return &Generator{provider: provider, now: time.Now}
}

const promptTemplate = `Create a YouTube video concept for the topic: "%s".

Provide:
1. An engaging title (60 chars max)
2. A detailed description (200-300 words) with key points
3. 15-20 relevant hashtags
4. A video script outline (5-7 main points)
5. SEO keywords

Format as JSON with keys: title, description, hashtags (array), script (array), keywords (array)`

// Generate drafts metadata for the topic and wraps it into a video record.
// A provider transport error is returned as-is; an unparseable model
// response degrades to the fallback template instead of failing.
func (g *Generator) Generate(ctx context.Context, topic string) (Result, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return Result{}, ErrMissingTopic
	}
	if g.provider == nil {
		return Result{}, ErrNoProvider
	}

	raw, err := g.provider.Complete(ctx, fmt.Sprintf(promptTemplate, topic))
	if err != nil {
		return Result{}, fmt.Errorf("content generation failed: %w", err)
	}

	source := SourceModel
	content, err := parseContent(raw)
	if err != nil {
		content = fallbackContent(topic)
		source = SourceFallback
	}

	now := g.now()
	title := content.Title
	if title == "" {
		title = topic + " - Video"
	}

	video := types.VideoRecord{
		ID:            types.NewVideoID(now),
		Title:         title,
		Description:   content.Description,
		Hashtags:      content.Hashtags,
		Script:        content.Script,
		Keywords:      content.Keywords,
		Status:        types.StatusDraft,
		ScheduledTime: now.Add(config.DefaultScheduleLead),
		CreatedAt:     now,
		Source:        string(source),
	}
	return Result{Video: video, Source: source}, nil
}

// parseContent extracts the first brace-delimited substring from the raw
// model text and decodes it strictly as JSON.
func parseContent(raw string) (Content, error) {
	blob, err := extractJSON(raw)
	if err != nil {
		return Content{}, err
	}

	var content Content
	if err := json.Unmarshal([]byte(blob), &content); err != nil {
		return Content{}, fmt.Errorf("model response is not valid JSON: %w", err)
	}
	return content, nil
}

// extractJSON returns the substring from the first '{' to the last '}'.
func extractJSON(raw string) (string, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end < start {
		return "", errors.New("no JSON object found in response")
	}
	return raw[start : end+1], nil
}

// fallbackContent builds the deterministic topic-derived template used when
// the model response cannot be parsed. Availability over fidelity.
func fallbackContent(topic string) Content {
	return Content{
		Title:       topic + " - Complete Guide",
		Description: fmt.Sprintf("Comprehensive guide about %s. Learn everything you need to know!", topic),
		Hashtags:    []string{"#" + strings.Join(strings.Fields(topic), ""), "#YouTube", "#Tutorial", "#Guide"},
		Script:      []string{"Introduction", "Main Content", "Tips & Tricks", "Conclusion"},
		Keywords:    []string{topic, "tutorial", "guide", "howto"},
	}
}
