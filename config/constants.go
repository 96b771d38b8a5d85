package config

import "time"

// Content generation constants
const (
	// AnthropicModel is the completion model used for metadata drafting
	AnthropicModel = "claude-3-5-sonnet-20241022"

	// CohereModel is the chat model used when Cohere is the configured provider
	CohereModel = "command-r-08-2024"

	// MaxCompletionTokens is the token budget for a single draft
	MaxCompletionTokens = 2048
)

// Scheduling constants
const (
	// DefaultSchedule is the cron expression a fresh configuration starts with
	DefaultSchedule = "0 10 * * *"

	// DefaultScheduleLead is how far ahead a freshly generated video is slotted
	DefaultScheduleLead = 24 * time.Hour

	// MinRunInterval gates the should-run heuristic between automation runs
	MinRunInterval = 23 * time.Hour
)

// YouTube constants
const (
	// WatchURLFormat is the public watch URL pattern for published videos
	WatchURLFormat = "https://youtube.com/watch?v=%d"
)

// YouTubeScopes are the OAuth scopes requested from the consent screen
var YouTubeScopes = []string{
	"https://www.googleapis.com/auth/youtube.upload",
	"https://www.googleapis.com/auth/youtube",
	"https://www.googleapis.com/auth/youtube.force-ssl",
}

// Topic suggestion constants
const (
	DefaultFeedPreset = "tr"
	DefaultTopicCount = 10
)

// FeedPresets maps friendly names to RSS feed URLs for topic suggestions
var FeedPresets = map[string]string{
	"cna": "https://www.channelnewsasia.com/api/v1/rss-outbound-feed?_format=xml",
	"st":  "https://www.straitstimes.com/news/singapore/rss.xml",
	"hn":  "https://hnrss.org/newest",
	"tr":  "https://www.technologyreview.com/feed/",
}

// ResolveFeedURL resolves a feed identifier to a URL.
// Preset names map to their URL; anything else is taken as a direct URL.
func ResolveFeedURL(feedInput string) string {
	if url, exists := FeedPresets[feedInput]; exists {
		return url
	}
	return feedInput
}
