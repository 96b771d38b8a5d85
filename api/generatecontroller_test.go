package api

import (
	"errors"
	"net/http"
	"testing"

	"autotube/types"
)

const stubResponse = `{
  "title": "Mastering Chess Openings in 60 Seconds",
  "description": "Three openings every beginner should know.",
  "hashtags": ["#Chess", "#Shorts"],
  "script": ["Hook", "Openings", "CTA"],
  "keywords": ["chess", "openings"]
}`

func TestGenerateRequiresTopic(t *testing.T) {
	for _, body := range []map[string]any{{}, {"topic": ""}, {"topic": "   "}} {
		provider := &fakeProvider{response: stubResponse}
		r, st := newTestServer(provider)

		w := doJSON(t, r, http.MethodPost, "/api/generate", body)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("status = %d; want 400 (%s)", w.Code, w.Body.String())
		}

		var resp map[string]any
		decodeBody(t, w, &resp)
		if resp["error"] != "Topic is required" {
			t.Errorf("error = %v", resp["error"])
		}
		if videos := listVideos(t, st); len(videos) != 0 {
			t.Errorf("video stored despite missing topic")
		}
	}
}

func TestGenerateStoresRecord(t *testing.T) {
	r, st := newTestServer(&fakeProvider{response: stubResponse})

	w := doJSON(t, r, http.MethodPost, "/api/generate", map[string]any{"topic": "Chess"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (%s)", w.Code, w.Body.String())
	}

	var resp struct {
		Message string            `json:"message"`
		Video   types.VideoRecord `json:"video"`
	}
	decodeBody(t, w, &resp)
	if resp.Message != "Video content generated successfully!" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Video.Title != "Mastering Chess Openings in 60 Seconds" {
		t.Errorf("Title = %q", resp.Video.Title)
	}
	if resp.Video.Status != types.StatusDraft {
		t.Errorf("Status = %q; want draft", resp.Video.Status)
	}

	// The record must be visible on a subsequent list.
	videos := listVideos(t, st)
	if len(videos) != 1 || videos[0].Title != resp.Video.Title {
		t.Fatalf("unexpected stored videos: %+v", videos)
	}
}

func TestGenerateFallsBackOnBadModelOutput(t *testing.T) {
	r, st := newTestServer(&fakeProvider{response: "I cannot help with that."})

	w := doJSON(t, r, http.MethodPost, "/api/generate", map[string]any{"topic": "Chess"})
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200 (%s)", w.Code, w.Body.String())
	}

	videos := listVideos(t, st)
	if len(videos) != 1 {
		t.Fatalf("len(videos) = %d; want 1", len(videos))
	}
	if videos[0].Title != "Chess - Complete Guide" {
		t.Errorf("fallback Title = %q", videos[0].Title)
	}
	if videos[0].Source != "fallback" {
		t.Errorf("Source = %q; want fallback", videos[0].Source)
	}
}

func TestGenerateSurfacesProviderFailure(t *testing.T) {
	r, st := newTestServer(&fakeProvider{err: errors.New("api unreachable")})

	w := doJSON(t, r, http.MethodPost, "/api/generate", map[string]any{"topic": "Chess"})
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d; want 500 (%s)", w.Code, w.Body.String())
	}

	var resp map[string]any
	decodeBody(t, w, &resp)
	if resp["error"] != "Failed to generate video" {
		t.Errorf("error = %v", resp["error"])
	}
	if videos := listVideos(t, st); len(videos) != 0 {
		t.Errorf("video stored despite provider failure")
	}
}
