// Package topics suggests video topics to the dashboard by pulling recent
// headlines from RSS/Atom feeds.
package topics

import (
	"fmt"
	"time"

	"github.com/mmcdole/gofeed"
)

// Suggestion is a candidate video topic sourced from a feed item.
type Suggestion struct {
	Title       string    `json:"title"`
	URL         string    `json:"url"`
	Summary     string    `json:"summary,omitempty"`
	PublishedAt time.Time `json:"published_at,omitempty"`
}

// Fetch retrieves and parses a feed, returning up to maxCount suggestions.
func Fetch(feedURL string, maxCount int) ([]*Suggestion, error) {
	parser := gofeed.NewParser()
	feed, err := parser.ParseURL(feedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch feed: %w", err)
	}

	count := min(len(feed.Items), maxCount)
	suggestions := make([]*Suggestion, 0, count)

	for i := 0; i < count; i++ {
		item := feed.Items[i]

		var publishedAt time.Time
		if item.PublishedParsed != nil {
			publishedAt = *item.PublishedParsed
		} else if item.UpdatedParsed != nil {
			publishedAt = *item.UpdatedParsed
		}

		summary := item.Description
		if summary == "" {
			summary = item.Content
		}

		suggestions = append(suggestions, &Suggestion{
			Title:       item.Title,
			URL:         item.Link,
			Summary:     summary,
			PublishedAt: publishedAt,
		})
	}

	return suggestions, nil
}
