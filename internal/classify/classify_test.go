package classify

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"quicksave/internal/model"
)

func TestDetect(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		want   Result
		wantOK bool
	}{
		{
			name:   "empty input gives no classification",
			url:    "",
			wantOK: false,
		},
		{
			name:   "whitespace only gives no classification",
			url:    "   ",
			wantOK: false,
		},
		{
			name:   "arxiv is a paper",
			url:    "https://arxiv.org/abs/2401.12345",
			want:   Result{Type: model.TypePaper, Label: "📄 Research Paper"},
			wantOK: true,
		},
		{
			name:   "openreview is a paper",
			url:    "https://openreview.net/forum?id=abc",
			want:   Result{Type: model.TypePaper, Label: "📄 Research Paper"},
			wantOK: true,
		},
		{
			name:   "github repo",
			url:    "https://github.com/golang/go",
			want:   Result{Type: model.TypeGithub, Label: "💻 GitHub Repo"},
			wantOK: true,
		},
		{
			name:   "gist resolves to github",
			url:    "https://gist.github.com/user/abcdef",
			want:   Result{Type: model.TypeGithub, Label: "💻 GitHub Repo"},
			wantOK: true,
		},
		{
			name:   "matching is case insensitive",
			url:    "HTTPS://GitHub.COM/Golang/Go",
			want:   Result{Type: model.TypeGithub, Label: "💻 GitHub Repo"},
			wantOK: true,
		},
		{
			name:   "x.com is a tweet",
			url:    "https://x.com/someone/status/123",
			want:   Result{Type: model.TypeTweet, Label: "🐦 Tweet / X Post"},
			wantOK: true,
		},
		{
			name:   "youtube short link is a video",
			url:    "https://youtu.be/dQw4w9WgXcQ",
			want:   Result{Type: model.TypeVideo, Label: "🎥 Video"},
			wantOK: true,
		},
		{
			name:   "hacker news is an article",
			url:    "https://news.ycombinator.com/item?id=1",
			want:   Result{Type: model.TypeArticle, Label: "📰 Article"},
			wantOK: true,
		},
		{
			name:   "unknown site falls back to link",
			url:    "https://notaknownsite.example/page",
			want:   Result{Type: model.TypeOther, Label: "🔖 Link"},
			wantOK: true,
		},
		{
			name:   "non-url text still classifies",
			url:    "just some text mentioning github.com somewhere",
			want:   Result{Type: model.TypeGithub, Label: "💻 GitHub Repo"},
			wantOK: true,
		},
		{
			// Contains both a github pattern and a tweet pattern; the
			// earlier github rule wins.
			name:   "rule order resolves multi-rule matches",
			url:    "https://github.com/user/twitter.com-scraper",
			want:   Result{Type: model.TypeGithub, Label: "💻 GitHub Repo"},
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := Detect(tt.url)
			if ok != tt.wantOK {
				t.Fatalf("Detect() ok = %v, want %v", ok, tt.wantOK)
			}
			if !tt.wantOK {
				return
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Detect() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDetectDeterministic(t *testing.T) {
	urls := []string{
		"",
		"https://arxiv.org/abs/1234",
		"https://example.com/page",
		"https://gist.github.com/x",
	}
	for _, u := range urls {
		first, okFirst := Detect(u)
		second, okSecond := Detect(u)
		if okFirst != okSecond {
			t.Errorf("Detect(%q) ok differs between calls", u)
		}
		if diff := cmp.Diff(first, second); diff != "" {
			t.Errorf("Detect(%q) result differs between calls (-first +second):\n%s", u, diff)
		}
	}
}

func TestLabelFor(t *testing.T) {
	tests := []struct {
		typ  model.Type
		want string
	}{
		{model.TypePaper, "📄 Research Paper"},
		{model.TypeGithub, "💻 GitHub Repo"},
		{model.TypeTweet, "🐦 Tweet / X Post"},
		{model.TypeVideo, "🎥 Video"},
		{model.TypeArticle, "📰 Article"},
		{model.TypeOther, "🔖 Link"},
	}
	for _, tt := range tests {
		if got := LabelFor(tt.typ); got != tt.want {
			t.Errorf("LabelFor(%s) = %q, want %q", tt.typ, got, tt.want)
		}
	}
}
