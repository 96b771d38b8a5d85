package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"

	"autotube/generator"
	"autotube/store"
	"autotube/types"
	"autotube/youtube"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

// fakeProvider returns a canned model response or error.
type fakeProvider struct {
	response string
	err      error
	calls    int
}

func (f *fakeProvider) Complete(ctx context.Context, prompt string) (string, error) {
	f.calls++
	return f.response, f.err
}

func (f *fakeProvider) ModelName() string { return "fake-model" }

const testCronSecret = "test-secret"

// newTestServer wires a router around an in-memory store and the given
// provider. Kafka and S3 side effects stay disabled (nil).
func newTestServer(provider generator.Provider) (*gin.Engine, store.Store) {
	st := store.NewMemoryStore()
	s := NewServer(ServerConfig{
		Store:      st,
		Generator:  generator.New(provider),
		Auth:       youtube.NewAuth("client-id", "client-secret", ""),
		CronSecret: testCronSecret,
	})
	return NewRouter(s), st
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), out); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

func listVideos(t *testing.T, st store.Store) []types.VideoRecord {
	t.Helper()
	videos, err := st.Videos(context.Background())
	if err != nil {
		t.Fatalf("Videos error: %v", err)
	}
	return videos
}

func TestHealthEndpoint(t *testing.T) {
	r, _ := newTestServer(&fakeProvider{})

	w := doJSON(t, r, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}

	var body map[string]string
	decodeBody(t, w, &body)
	if body["status"] != "healthy" {
		t.Fatalf("status field = %q; want healthy", body["status"])
	}
}

func TestDashboardServed(t *testing.T) {
	r, _ := newTestServer(&fakeProvider{})

	w := doJSON(t, r, http.MethodGet, "/", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d; want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "text/html; charset=utf-8" {
		t.Fatalf("Content-Type = %q; want text/html", ct)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("AutoTube")) {
		t.Fatalf("dashboard HTML missing expected content")
	}
}
