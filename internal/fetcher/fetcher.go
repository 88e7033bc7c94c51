// Package fetcher downloads and parses web feeds for bulk link import.
package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/mmcdole/gofeed"
)

// HTTPClient is the interface for performing HTTP requests.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Link is a capture candidate extracted from a feed item.
type Link struct {
	URL   string
	Title string
	Note  string
}

// Fetcher downloads and parses RSS/Atom feeds.
type Fetcher struct {
	client  HTTPClient
	timeout time.Duration
}

// New creates a Fetcher with the given HTTP client.
func New(client HTTPClient) *Fetcher {
	return &Fetcher{
		client:  client,
		timeout: 30 * time.Second,
	}
}

// Fetch downloads and parses a feed from the given URL.
func (f *Fetcher) Fetch(ctx context.Context, url string) (*gofeed.Feed, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "QuickSaveBot/1.0")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http get: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 5*1024*1024))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	parser := gofeed.NewParser()
	feed, err := parser.ParseString(string(body))
	if err != nil {
		return nil, fmt.Errorf("parse feed: %w", err)
	}
	return feed, nil
}

// Links extracts capture candidates from feed items, skipping items
// without a link. At most limit candidates are returned; a limit of 0
// or less means no cap.
func Links(feed *gofeed.Feed, limit int) []Link {
	var links []Link
	for _, item := range feed.Items {
		if item.Link == "" {
			continue
		}
		note := item.Description
		if runes := []rune(note); len(runes) > 300 {
			note = string(runes[:300]) + "..."
		}
		links = append(links, Link{
			URL:   item.Link,
			Title: item.Title,
			Note:  note,
		})
		if limit > 0 && len(links) >= limit {
			break
		}
	}
	return links
}
