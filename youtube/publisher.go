package youtube

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/oauth2"
	"google.golang.org/api/option"
	youtubeapi "google.golang.org/api/youtube/v3"

	"autotube/config"
)

// ErrAuthRequired is returned when publishing without a token bag.
var ErrAuthRequired = errors.New("youtube authentication required")

// Publisher simulates publishing a video to YouTube. It builds the
// authenticated API client exactly as a real upload would, but stops short
// of calling Videos.Insert: there is no rendered video file to upload, so
// the success URL is fabricated from the wall clock. The stored record's
// status is deliberately left untouched.
type Publisher struct {
	auth *Auth
	now  func() time.Time
}

// NewPublisher creates a publisher bound to the OAuth config.
func NewPublisher(auth *Auth) *Publisher {
	return &Publisher{auth: auth, now: time.Now}
}

// Publish validates the token bag, constructs the YouTube service client
// and returns the simulated watch URL.
func (p *Publisher) Publish(ctx context.Context, videoID string, token *oauth2.Token) (string, error) {
	if token == nil {
		return "", ErrAuthRequired
	}

	client := p.auth.Client(ctx, token)
	if _, err := youtubeapi.NewService(ctx, option.WithHTTPClient(client)); err != nil {
		return "", fmt.Errorf("unable to create YouTube service: %w", err)
	}

	// A real implementation would render the video file and call
	// Videos.Insert with snippet and status parts here.
	return fmt.Sprintf(config.WatchURLFormat, p.now().UnixMilli()), nil
}
