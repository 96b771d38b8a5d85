package types

import (
	"strconv"
	"time"

	"golang.org/x/oauth2"
)

// VideoStatus is the lifecycle state of a video record
type VideoStatus string

const (
	StatusDraft     VideoStatus = "draft"
	StatusScheduled VideoStatus = "scheduled"
	StatusPublished VideoStatus = "published"
)

// VideoRecord holds the generated metadata for a single video concept.
// Records are append-only: once stored they are never mutated or removed.
type VideoRecord struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Hashtags      []string    `json:"hashtags"`
	Script        []string    `json:"script"`
	Keywords      []string    `json:"keywords"`
	Status        VideoStatus `json:"status"`
	ScheduledTime time.Time   `json:"scheduledTime"`
	CreatedAt     time.Time   `json:"createdAt"`
	URL           string      `json:"url,omitempty"`
	Source        string      `json:"source,omitempty"`
}

// Configuration is the singleton automation configuration.
// YouTubeAuth is an opaque token bag from the OAuth exchange; it is held
// only if the dashboard chooses to push it into the config.
type Configuration struct {
	Topic       string        `json:"topic"`
	Schedule    string        `json:"schedule"`
	Enabled     bool          `json:"enabled"`
	YouTubeAuth *oauth2.Token `json:"youtubeAuth"`
}

// ConfigUpdate is a partial configuration payload. Nil fields are left
// untouched by the merge; present fields replace the current value.
type ConfigUpdate struct {
	Topic       *string       `json:"topic"`
	Schedule    *string       `json:"schedule"`
	Enabled     *bool         `json:"enabled"`
	YouTubeAuth *oauth2.Token `json:"youtubeAuth"`
}

// Apply merges the update into the configuration, shallow field by field.
func (u ConfigUpdate) Apply(c Configuration) Configuration {
	if u.Topic != nil {
		c.Topic = *u.Topic
	}
	if u.Schedule != nil {
		c.Schedule = *u.Schedule
	}
	if u.Enabled != nil {
		c.Enabled = *u.Enabled
	}
	if u.YouTubeAuth != nil {
		c.YouTubeAuth = u.YouTubeAuth
	}
	return c
}

// NewVideoID derives a record ID from the wall clock, millisecond
// resolution. Two records generated in the same millisecond collide;
// the system accepts that for its single-instance, low-traffic shape.
func NewVideoID(now time.Time) string {
	return strconv.FormatInt(now.UnixMilli(), 10)
}
