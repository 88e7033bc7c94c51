// Package classify implements the rule-based URL type detector.
package classify

import (
	"strings"

	"quicksave/internal/model"
)

// Rule maps a set of URL substring patterns to a content type.
type Rule struct {
	Type     model.Type
	Label    string
	Patterns []string
}

// Result is the outcome of classifying a URL.
type Result struct {
	Type  model.Type
	Label string
}

// fallback is returned when a non-empty URL matches no rule.
var fallback = Result{Type: model.TypeOther, Label: "🔖 Link"}

// rules are evaluated in order; the first rule with any matching
// pattern wins. Order is part of the contract: a gist URL contains
// both "gist.github" and "github.com", and always classifies as
// github because that rule is tested before any later one could.
var rules = []Rule{
	{
		Type:  model.TypePaper,
		Label: "📄 Research Paper",
		Patterns: []string{
			"arxiv.org", "doi.org", "scholar.google", "semanticscholar",
			"pubmed", "researchgate", "ieee.org", "acm.org", "springer.com",
			"nature.com", "science.org", "biorxiv.org", "medrxiv.org",
			"ssrn.com", "openreview.net",
		},
	},
	{
		Type:     model.TypeGithub,
		Label:    "💻 GitHub Repo",
		Patterns: []string{"github.com", "gitlab.com", "bitbucket.org", "gist.github"},
	},
	{
		Type:     model.TypeTweet,
		Label:    "🐦 Tweet / X Post",
		Patterns: []string{"twitter.com", "x.com", "t.co"},
	},
	{
		Type:     model.TypeVideo,
		Label:    "🎥 Video",
		Patterns: []string{"youtube.com", "youtu.be", "vimeo.com", "twitch.tv", "tiktok.com"},
	},
	{
		Type:  model.TypeArticle,
		Label: "📰 Article",
		Patterns: []string{
			"medium.com", "substack.com", "dev.to", "hackernews",
			"news.ycombinator", "techcrunch", "theverge", "wired.com",
			"arstechnica",
		},
	},
}

// Detect classifies a raw URL string by case-insensitive substring
// matching against the ordered rule table. A blank input yields
// ok == false (no classification); any other input yields a result,
// falling back to the generic link type when no rule matches.
// Detect is pure: the same input always produces the same result.
func Detect(rawURL string) (Result, bool) {
	if strings.TrimSpace(rawURL) == "" {
		return Result{}, false
	}
	lower := strings.ToLower(rawURL)
	for _, r := range rules {
		for _, p := range r.Patterns {
			if strings.Contains(lower, p) {
				return Result{Type: r.Type, Label: r.Label}, true
			}
		}
	}
	return fallback, true
}

// LabelFor returns the display label for a content type.
func LabelFor(t model.Type) string {
	for _, r := range rules {
		if r.Type == t {
			return r.Label
		}
	}
	return fallback.Label
}
