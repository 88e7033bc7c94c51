package bot

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// SaveArgs holds the parsed arguments of a capture message.
type SaveArgs struct {
	URL   string
	Title string
	Note  string
	Tags  []string
}

// ParseSaveArgs parses a capture message of the form
// "<url> [#tag ...] [| title [| note]]". The URL is the first http(s)
// token in the first segment, wherever it sits, so forwarded text like
// "check this out https://..." captures the link rather than the word
// before it; without an http(s) token the first field is taken as the
// URL (schemeless references are stored as given). The remaining
// tokens become the title unless they start with '#', which marks
// them as tags. An explicit title segment wins over inline words.
func ParseSaveArgs(args string) (SaveArgs, error) {
	segments := strings.SplitN(args, "|", 3)

	fields := strings.Fields(segments[0])
	if len(fields) == 0 {
		return SaveArgs{}, fmt.Errorf("usage: <url> [#tag ...] [| title [| note]]")
	}

	urlIdx := 0
	for i, tok := range fields {
		if strings.HasPrefix(tok, "http://") || strings.HasPrefix(tok, "https://") {
			urlIdx = i
			break
		}
	}

	parsed := SaveArgs{URL: fields[urlIdx]}
	var inlineTitle []string
	for i, tok := range fields {
		if i == urlIdx {
			continue
		}
		if strings.HasPrefix(tok, "#") && len(tok) > 1 {
			parsed.Tags = append(parsed.Tags, strings.TrimPrefix(tok, "#"))
			continue
		}
		inlineTitle = append(inlineTitle, tok)
	}
	parsed.Title = strings.Join(inlineTitle, " ")

	if len(segments) > 1 {
		if title := strings.TrimSpace(segments[1]); title != "" {
			parsed.Title = title
		}
	}
	if len(segments) > 2 {
		parsed.Note = strings.TrimSpace(segments[2])
	}
	return parsed, nil
}

// ParseIDArg extracts a numeric ID from a command argument string.
func ParseIDArg(args string) (int64, error) {
	s := strings.TrimSpace(args)
	if s == "" {
		return 0, fmt.Errorf("save ID is required")
	}
	id, err := strconv.ParseInt(strings.Fields(s)[0], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid save ID %q", s)
	}
	return id, nil
}

// FirstURL returns the first http(s) token in text, or "".
func FirstURL(text string) string {
	for _, tok := range strings.Fields(text) {
		if strings.HasPrefix(tok, "http://") || strings.HasPrefix(tok, "https://") {
			return tok
		}
	}
	return ""
}

// ExtractTitle derives a readable title from a URL: the hostname
// without a "www." prefix plus up to 60 characters of path. Inputs
// that do not parse fall back to their first 60 characters.
func ExtractTitle(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return firstRunes(rawURL, 60)
	}
	title := strings.TrimPrefix(u.Hostname(), "www.")
	if u.Path != "" && u.Path != "/" {
		title += firstRunes(u.Path, 60)
	}
	return title
}

// firstRunes returns at most n runes of s, never splitting a
// multibyte character.
func firstRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
