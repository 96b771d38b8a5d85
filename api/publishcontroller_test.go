package api

import (
	"net/http"
	"regexp"
	"testing"
)

func TestPublishRequiresTokens(t *testing.T) {
	r, _ := newTestServer(&fakeProvider{})

	w := doJSON(t, r, http.MethodPost, "/api/publish", map[string]any{"videoId": "123"})
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d; want 401 (%s)", w.Code, w.Body.String())
	}

	var resp map[string]any
	decodeBody(t, w, &resp)
	if resp["error"] != "YouTube authentication required" {
		t.Errorf("error = %v", resp["error"])
	}
	if resp["message"] != "Please authenticate with YouTube first" {
		t.Errorf("message = %v", resp["message"])
	}
}

func TestPublishReturnsWatchURL(t *testing.T) {
	r, _ := newTestServer(&fakeProvider{})

	w := doJSON(t, r, http.MethodPost, "/api/publish", map[string]any{
		"videoId": "123",
		"tokens":  map[string]any{"access_token": "ya29.test", "token_type": "Bearer"},
	})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (%s)", w.Code, w.Body.String())
	}

	var resp struct {
		Message string `json:"message"`
		URL     string `json:"url"`
	}
	decodeBody(t, w, &resp)
	if resp.Message != "Video published successfully!" {
		t.Errorf("message = %q", resp.Message)
	}

	pattern := regexp.MustCompile(`^https://youtube\.com/watch\?v=\d+$`)
	if !pattern.MatchString(resp.URL) {
		t.Fatalf("url = %q; want %s", resp.URL, pattern)
	}
}
