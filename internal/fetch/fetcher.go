// Package fetch retrieves headlines from RSS/Atom news feeds and hands them
// to the prompt pipeline as plain titles.
package fetch

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// Source is a configured feed source.
type Source struct {
	Name string // Display name
	URL  string // Feed URL
}

// Headline is one fetched feed entry. Only Title feeds the pipeline; the
// rest is kept for the archive and the review UI.
type Headline struct {
	ID         string
	SourceName string
	Title      string
	URL        string
	Published  time.Time
	Fetched    time.Time
}

// Fetcher retrieves headlines from feed sources.
type Fetcher struct {
	client *http.Client
}

// NewFetcher creates a Fetcher with the given HTTP timeout.
func NewFetcher(timeout time.Duration) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: timeout},
	}
}

// Fetch retrieves the current headlines of one source, newest first as the
// feed delivers them. Respects context cancellation.
func (f *Fetcher) Fetch(ctx context.Context, src Source) ([]Headline, error) {
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, src.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "newspanel/0.1 (+https://github.com/goelo/newspanel)")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch feed %s: %w", src.URL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch feed %s: HTTP %d", src.URL, resp.StatusCode)
	}

	feed, err := gofeed.NewParser().Parse(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parse feed %s: %w", src.URL, err)
	}

	now := time.Now()
	headlines := make([]Headline, 0, len(feed.Items))
	for _, entry := range feed.Items {
		published := now
		if entry.PublishedParsed != nil {
			published = *entry.PublishedParsed
		} else if entry.UpdatedParsed != nil {
			published = *entry.UpdatedParsed
		}

		headlines = append(headlines, Headline{
			ID:         entryID(entry),
			SourceName: src.Name,
			Title:      entry.Title,
			URL:        entry.Link,
			Published:  published,
			Fetched:    now,
		})
	}
	return headlines, nil
}

// Titles extracts just the title strings, in feed order, for the pipeline.
// Entries without a title become empty strings rather than being dropped, so
// positions stay stable.
func Titles(headlines []Headline) []string {
	titles := make([]string, len(headlines))
	for i, h := range headlines {
		titles[i] = h.Title
	}
	return titles
}

// entryID derives a stable ID from the GUID, or the link when the feed has
// no GUIDs.
func entryID(entry *gofeed.Item) string {
	key := entry.GUID
	if key == "" {
		key = entry.Link
	}
	sum := sha256.Sum256([]byte(key))
	return hex.EncodeToString(sum[:])[:16]
}
