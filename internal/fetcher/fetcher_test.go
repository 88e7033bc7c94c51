package fetcher

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/mmcdole/gofeed"
)

type mockTransport struct {
	body       string
	statusCode int
	err        error
}

func (m *mockTransport) Do(_ *http.Request) (*http.Response, error) {
	if m.err != nil {
		return nil, m.err
	}
	return &http.Response{
		StatusCode: m.statusCode,
		Body:       io.NopCloser(bytes.NewBufferString(m.body)),
	}, nil
}

func loadFixture(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test-only fixture loading
	if err != nil {
		t.Fatalf("read fixture %s: %v", path, err)
	}
	return string(data)
}

func TestFetch(t *testing.T) {
	xml := loadFixture(t, "../../testdata/sample.xml")

	tests := []struct {
		name      string
		transport *mockTransport
		wantTitle string
		wantItems int
		wantErr   bool
	}{
		{
			name:      "successful fetch",
			transport: &mockTransport{body: xml, statusCode: 200},
			wantTitle: "Reading List",
			wantItems: 5,
		},
		{
			name:      "http error status",
			transport: &mockTransport{body: "not found", statusCode: 404},
			wantErr:   true,
		},
		{
			name:      "transport failure",
			transport: &mockTransport{err: errors.New("connection refused")},
			wantErr:   true,
		},
		{
			name:      "invalid feed body",
			transport: &mockTransport{body: "<html>not a feed</html>", statusCode: 200},
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := New(tt.transport)
			feed, err := f.Fetch(context.Background(), "https://example.com/rss")
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if feed.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", feed.Title, tt.wantTitle)
			}
			if len(feed.Items) != tt.wantItems {
				t.Errorf("items = %d, want %d", len(feed.Items), tt.wantItems)
			}
		})
	}
}

func TestLinks(t *testing.T) {
	xml := loadFixture(t, "../../testdata/sample.xml")
	parser := gofeed.NewParser()
	feed, err := parser.ParseString(xml)
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}

	t.Run("all linked items", func(t *testing.T) {
		got := Links(feed, 0)
		want := []Link{
			{URL: "https://arxiv.org/abs/2407.00001", Title: "Scaling Laws Revisited", Note: "A fresh look at compute-optimal training."},
			{URL: "https://github.com/simonw/sqlite-utils", Title: "sqlite-utils 4.0", Note: "CLI tool and Python library for SQLite."},
			{URL: "https://www.youtube.com/watch?v=abc123", Title: "Conference Keynote", Note: "Opening keynote recording."},
			{URL: "https://blog.example.net/weekly-notes-12", Title: "Weekly Notes", Note: "Assorted notes from the week."},
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("Links mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("limit caps the result", func(t *testing.T) {
		got := Links(feed, 2)
		if len(got) != 2 {
			t.Fatalf("expected 2 links, got %d", len(got))
		}
	})

	t.Run("multibyte descriptions are cut on rune boundaries", func(t *testing.T) {
		long := strings.Repeat("ы", 400)
		f := &gofeed.Feed{Items: []*gofeed.Item{
			{Link: "https://example.com", Title: "Cyrillic", Description: long},
		}}
		got := Links(f, 0)
		if len(got) != 1 {
			t.Fatalf("expected 1 link, got %d", len(got))
		}
		if want := strings.Repeat("ы", 300) + "..."; got[0].Note != want {
			t.Errorf("note not truncated to 300 runes")
		}
		if !utf8.ValidString(got[0].Note) {
			t.Error("truncated note is invalid UTF-8")
		}
	})

	t.Run("long descriptions are truncated", func(t *testing.T) {
		long := strings.Repeat("x", 400)
		f := &gofeed.Feed{Items: []*gofeed.Item{
			{Link: "https://example.com", Title: "Long", Description: long},
		}}
		got := Links(f, 0)
		if len(got) != 1 {
			t.Fatalf("expected 1 link, got %d", len(got))
		}
		if want := strings.Repeat("x", 300) + "..."; got[0].Note != want {
			t.Errorf("note not truncated to 300 chars, len=%d", len(got[0].Note))
		}
	})
}
