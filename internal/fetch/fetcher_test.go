package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

const testFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Testfeed</title>
    <item>
      <title>Marine enterte Tanker im Mittelmeer</title>
      <link>http://example.com/artikel1</link>
      <guid>artikel-1</guid>
      <pubDate>Mon, 01 Jan 2024 12:00:00 GMT</pubDate>
    </item>
    <item>
      <title>EU kündigt neue Zölle gegen China an</title>
      <link>http://example.com/artikel2</link>
      <pubDate>Mon, 01 Jan 2024 11:00:00 GMT</pubDate>
    </item>
  </channel>
</rss>`

func TestFetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/rss+xml")
		w.Write([]byte(testFeed))
	}))
	defer server.Close()

	f := NewFetcher(5 * time.Second)
	headlines, err := f.Fetch(context.Background(), Source{Name: "Testfeed", URL: server.URL})
	if err != nil {
		t.Fatalf("Fetch failed: %v", err)
	}

	if len(headlines) != 2 {
		t.Fatalf("expected 2 headlines, got %d", len(headlines))
	}
	if headlines[0].Title != "Marine enterte Tanker im Mittelmeer" {
		t.Errorf("unexpected title: %q", headlines[0].Title)
	}
	if headlines[0].SourceName != "Testfeed" {
		t.Errorf("unexpected source name: %q", headlines[0].SourceName)
	}
	if headlines[0].ID == "" || headlines[0].ID == headlines[1].ID {
		t.Errorf("IDs not distinct: %q vs %q", headlines[0].ID, headlines[1].ID)
	}
}

func TestFetchHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	f := NewFetcher(5 * time.Second)
	if _, err := f.Fetch(context.Background(), Source{Name: "Bad", URL: server.URL}); err == nil {
		t.Error("expected error for HTTP 500")
	}
}

func TestFetchCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	f := NewFetcher(5 * time.Second)
	if _, err := f.Fetch(ctx, Source{Name: "X", URL: "http://example.com/feed"}); err == nil {
		t.Error("expected error for cancelled context")
	}
}

func TestTitlesKeepsPositions(t *testing.T) {
	headlines := []Headline{
		{Title: "Erste Meldung"},
		{Title: ""},
		{Title: "Dritte Meldung"},
	}

	titles := Titles(headlines)
	if len(titles) != 3 {
		t.Fatalf("expected 3 titles, got %d", len(titles))
	}
	if titles[1] != "" {
		t.Errorf("empty title not preserved: %q", titles[1])
	}
	if titles[2] != "Dritte Meldung" {
		t.Errorf("position shifted: %q", titles[2])
	}
}
