package bot

import (
	"fmt"
	"strings"

	"quicksave/internal/classify"
	"quicksave/internal/model"
)

// maxListItems caps how many saves a single list reply shows.
const maxListItems = 20

// FormatSave formats a single save for display.
func FormatSave(s model.Save) string {
	var b strings.Builder
	fmt.Fprintf(&b, "#%d %s\n", s.ID, classify.LabelFor(s.Type))
	if s.Title != "" {
		b.WriteString(s.Title)
		b.WriteString("\n")
	}
	b.WriteString(s.URL)
	b.WriteString("\n")
	if s.Note != "" {
		b.WriteString(s.Note)
		b.WriteString("\n")
	}
	if len(s.Tags) > 0 {
		fmt.Fprintf(&b, "Tags: %s\n", strings.Join(s.Tags, ", "))
	}
	fmt.Fprintf(&b, "Saved: %s", s.CreatedAt.Format("2006-01-02 15:04 UTC"))
	return b.String()
}

// FormatSaveList formats a list of saves, newest first, capped at
// maxListItems with a trailing count of what was omitted.
func FormatSaveList(saves []model.Save) string {
	if len(saves) == 0 {
		return "Nothing saved yet. Send a link to capture it."
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%d save(s):\n", len(saves))
	for i, s := range saves {
		if i == maxListItems {
			fmt.Fprintf(&b, "\n...and %d more. Use /find or /type to narrow down.", len(saves)-maxListItems)
			break
		}
		title := s.Title
		if title == "" {
			title = truncate(s.URL, 60)
		}
		fmt.Fprintf(&b, "\n#%d %s %s\n   %s\n", s.ID, classify.LabelFor(s.Type), title, truncate(s.URL, 80))
	}
	return b.String()
}

// FormatStats formats the per-type aggregate.
func FormatStats(st model.Stats) string {
	if st.Total == 0 {
		return "Nothing saved yet. Send a link to capture it."
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Total saves: %d\n", st.Total)
	rows := []struct {
		label string
		count int
	}{
		{classify.LabelFor(model.TypePaper), st.Paper},
		{classify.LabelFor(model.TypeGithub), st.Github},
		{classify.LabelFor(model.TypeTweet), st.Tweet},
		{classify.LabelFor(model.TypeVideo), st.Video},
		{classify.LabelFor(model.TypeArticle), st.Article},
		{classify.LabelFor(model.TypeOther), st.Other},
	}
	for _, row := range rows {
		if row.count == 0 {
			continue
		}
		fmt.Fprintf(&b, "\n%s: %d", row.label, row.count)
	}
	return b.String()
}

// truncate cuts s to at most n runes, never splitting a multibyte
// character, and marks the cut with an ellipsis.
func truncate(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n]) + "..."
}
