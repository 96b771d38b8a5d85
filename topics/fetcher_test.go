package topics

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Test Feed</title>
    <item>
      <title>First headline</title>
      <link>https://example.com/1</link>
      <description>Summary one</description>
      <pubDate>Thu, 28 Aug 2026 10:00:00 GMT</pubDate>
    </item>
    <item>
      <title>Second headline</title>
      <link>https://example.com/2</link>
      <description>Summary two</description>
    </item>
    <item>
      <title>Third headline</title>
      <link>https://example.com/3</link>
    </item>
  </channel>
</rss>`

func TestFetchReturnsSuggestions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	suggestions, err := Fetch(srv.URL, 10)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if len(suggestions) != 3 {
		t.Fatalf("len(suggestions) = %d; want 3", len(suggestions))
	}

	first := suggestions[0]
	if first.Title != "First headline" {
		t.Errorf("Title = %q", first.Title)
	}
	if first.URL != "https://example.com/1" {
		t.Errorf("URL = %q", first.URL)
	}
	if first.Summary != "Summary one" {
		t.Errorf("Summary = %q", first.Summary)
	}
	if first.PublishedAt.IsZero() {
		t.Errorf("PublishedAt is zero for dated item")
	}
}

func TestFetchHonorsMaxCount(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleRSS))
	}))
	defer srv.Close()

	suggestions, err := Fetch(srv.URL, 2)
	if err != nil {
		t.Fatalf("Fetch error: %v", err)
	}
	if len(suggestions) != 2 {
		t.Fatalf("len(suggestions) = %d; want 2", len(suggestions))
	}
}

func TestFetchBadFeed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("not a feed"))
	}))
	defer srv.Close()

	if _, err := Fetch(srv.URL, 5); err == nil {
		t.Fatal("Fetch succeeded on a non-feed body")
	}
}
