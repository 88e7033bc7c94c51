// Package model defines the domain types used across the application.
package model

import (
	"strings"
	"time"
)

// Type classifies the content behind a saved URL.
type Type string

// The fixed set of content types.
const (
	TypePaper   Type = "paper"
	TypeGithub  Type = "github"
	TypeTweet   Type = "tweet"
	TypeVideo   Type = "video"
	TypeArticle Type = "article"
	TypeOther   Type = "other"
)

// KnownType reports whether t is one of the fixed content types.
func KnownType(t Type) bool {
	switch t {
	case TypePaper, TypeGithub, TypeTweet, TypeVideo, TypeArticle, TypeOther:
		return true
	}
	return false
}

// NormalizeType maps an arbitrary type string onto the fixed set,
// collapsing anything unrecognized (or empty) to TypeOther.
func NormalizeType(s string) Type {
	t := Type(strings.ToLower(strings.TrimSpace(s)))
	if KnownType(t) {
		return t
	}
	return TypeOther
}

// Save represents a single captured URL with its metadata.
type Save struct {
	ID        int64
	URL       string
	Title     string
	Note      string
	Tags      []string
	Type      Type
	CreatedAt time.Time
}

// Matches reports whether query appears as a substring of the save's
// URL, title, note, or any of its tags. The query must already be
// lowercased and trimmed by the caller.
func (s Save) Matches(query string) bool {
	if strings.Contains(strings.ToLower(s.URL), query) ||
		strings.Contains(strings.ToLower(s.Title), query) ||
		strings.Contains(strings.ToLower(s.Note), query) {
		return true
	}
	for _, tag := range s.Tags {
		if strings.Contains(strings.ToLower(tag), query) {
			return true
		}
	}
	return false
}

// HasTag reports whether tag is an exact member of the save's tag set.
func (s Save) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// Stats aggregates the collection by content type.
type Stats struct {
	Total   int
	Paper   int
	Github  int
	Tweet   int
	Article int
	Video   int
	Other   int
}
