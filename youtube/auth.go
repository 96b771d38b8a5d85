package youtube

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"autotube/config"
)

const defaultRedirectURI = "http://localhost:8080/api/auth/youtube/callback"

// Auth wraps the OAuth2 authorization-code flow against Google's consent
// screen. Exchanged tokens are returned to the caller; nothing is
// persisted here.
type Auth struct {
	config *oauth2.Config
}

// NewAuth builds the OAuth2 config for the YouTube scopes.
func NewAuth(clientID, clientSecret, redirectURI string) *Auth {
	if redirectURI == "" {
		redirectURI = defaultRedirectURI
	}
	return &Auth{
		config: &oauth2.Config{
			ClientID:     clientID,
			ClientSecret: clientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       config.YouTubeScopes,
			RedirectURL:  redirectURI,
		},
	}
}

// NewAuthFromEnv reads YOUTUBE_CLIENT_ID, YOUTUBE_CLIENT_SECRET and
// YOUTUBE_REDIRECT_URI.
func NewAuthFromEnv() *Auth {
	return NewAuth(
		os.Getenv("YOUTUBE_CLIENT_ID"),
		os.Getenv("YOUTUBE_CLIENT_SECRET"),
		os.Getenv("YOUTUBE_REDIRECT_URI"),
	)
}

// Configured reports whether client credentials are present.
func (a *Auth) Configured() bool {
	return a.config.ClientID != "" && a.config.ClientSecret != ""
}

// AuthURL builds the consent-screen URL with offline access and a forced
// consent prompt, so a refresh token is always issued.
func (a *Auth) AuthURL() (string, error) {
	if !a.Configured() {
		return "", fmt.Errorf("youtube client credentials are not configured")
	}
	return a.config.AuthCodeURL("state-token",
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	), nil
}

// Exchange trades an authorization code for a token bag.
func (a *Auth) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := a.config.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to exchange code: %w", err)
	}
	return token, nil
}

// Client returns an HTTP client authenticated with the given token bag.
// Expired tokens refresh transparently through the config's token source.
func (a *Auth) Client(ctx context.Context, token *oauth2.Token) *http.Client {
	return a.config.Client(ctx, token)
}
