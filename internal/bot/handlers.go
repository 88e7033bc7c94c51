package bot

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"quicksave/internal/classify"
	"quicksave/internal/fetcher"
	"quicksave/internal/model"
	"quicksave/internal/storage"
)

// importLimit caps how many feed items a single /import captures.
const importLimit = 25

func (b *Bot) handleStart(chatID int64) {
	b.reply(chatID, `Welcome to QuickSave!

Send me any link and I'll classify and save it.

Quick start:
1. Send a URL (optionally "<url> #tag | title | note")
2. /list — browse your saves
3. /find <text> — search them

Use /help for the full command reference.`)
}

func (b *Bot) handleHelp(chatID int64) {
	b.reply(chatID, `Capturing:
<url> [#tag ...] [| title [| note]] — save a link (plain message works too)
/save <url> [#tag ...] [| title [| note]] — same thing
/import <feed-url> — save every link from an RSS/Atom feed

Browsing:
/list — all saves, newest first
/find <text> — search url, title, note, and tags
/type <label> — filter by type or tag (paper, github, tweet, video, article, other, all)
/info <id> — full details of one save
/stats — counts per type

Managing:
/delete <id> — delete a save (asks for confirmation)`)
}

func (b *Bot) handleSave(ctx context.Context, chatID int64, args string) {
	parsed, err := ParseSaveArgs(args)
	if err != nil {
		b.reply(chatID, err.Error())
		return
	}

	detected, ok := classify.Detect(parsed.URL)
	if !ok {
		b.reply(chatID, "Usage: /save <url> [#tag ...] [| title [| note]]")
		return
	}

	title := parsed.Title
	if title == "" {
		title = ExtractTitle(parsed.URL)
	}
	tags := parsed.Tags
	if len(tags) == 0 {
		tags = []string{string(detected.Type)}
	}

	save := &model.Save{
		URL:   parsed.URL,
		Title: title,
		Note:  parsed.Note,
		Tags:  tags,
		Type:  detected.Type,
	}
	if err := b.store.CreateSave(ctx, save); err != nil {
		if errors.Is(err, storage.ErrEmptyURL) {
			b.reply(chatID, "Usage: /save <url> [#tag ...] [| title [| note]]")
			return
		}
		b.reply(chatID, fmt.Sprintf("Failed to save: %v", err))
		return
	}

	b.reply(chatID, fmt.Sprintf("Saved!\n%s", FormatSave(*save)))
}

func (b *Bot) handleList(ctx context.Context, chatID int64) {
	saves, err := b.store.ListSaves(ctx)
	if err != nil {
		b.reply(chatID, fmt.Sprintf("Error: %v", err))
		return
	}
	b.reply(chatID, FormatSaveList(saves))
}

func (b *Bot) handleFind(ctx context.Context, chatID int64, args string) {
	query := strings.TrimSpace(args)
	if query == "" {
		b.reply(chatID, "Usage: /find <text>")
		return
	}

	saves, err := b.store.SearchSaves(ctx, query)
	if err != nil {
		b.reply(chatID, fmt.Sprintf("Error: %v", err))
		return
	}
	if len(saves) == 0 {
		b.reply(chatID, fmt.Sprintf("No saves matching %q.", query))
		return
	}
	b.reply(chatID, FormatSaveList(saves))
}

func (b *Bot) handleType(ctx context.Context, chatID int64, args string) {
	filter := strings.ToLower(strings.TrimSpace(args))
	if filter == "" {
		b.reply(chatID, "Usage: /type <paper|github|tweet|video|article|other|all> (tags work too)")
		return
	}

	saves, err := b.store.ListByType(ctx, filter)
	if err != nil {
		b.reply(chatID, fmt.Sprintf("Error: %v", err))
		return
	}
	if len(saves) == 0 {
		b.reply(chatID, fmt.Sprintf("No saves with type or tag %q.", filter))
		return
	}
	b.reply(chatID, FormatSaveList(saves))
}

func (b *Bot) handleInfo(ctx context.Context, chatID int64, args string) {
	id, err := ParseIDArg(args)
	if err != nil {
		b.reply(chatID, "Usage: /info <id>")
		return
	}

	save, err := b.store.GetSave(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			b.reply(chatID, fmt.Sprintf("Save #%d not found.", id))
			return
		}
		b.reply(chatID, fmt.Sprintf("Error: %v", err))
		return
	}
	b.reply(chatID, FormatSave(*save))
}

func (b *Bot) handleDelete(ctx context.Context, chatID int64, args string) {
	id, err := ParseIDArg(args)
	if err != nil {
		b.reply(chatID, "Usage: /delete <id>")
		return
	}

	save, err := b.store.GetSave(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			b.reply(chatID, fmt.Sprintf("Save #%d not found.", id))
			return
		}
		b.reply(chatID, fmt.Sprintf("Error: %v", err))
		return
	}

	b.sendDeleteConfirmation(chatID, save)
}

func (b *Bot) handleStats(ctx context.Context, chatID int64) {
	stats, err := b.store.GetStats(ctx)
	if err != nil {
		b.reply(chatID, fmt.Sprintf("Error: %v", err))
		return
	}
	b.reply(chatID, FormatStats(stats))
}

func (b *Bot) handleImport(ctx context.Context, chatID int64, args string) {
	feedURL := strings.TrimSpace(args)
	if feedURL == "" {
		b.reply(chatID, "Usage: /import <feed-url>")
		return
	}

	feed, err := b.fetcher.Fetch(ctx, feedURL)
	if err != nil {
		b.reply(chatID, fmt.Sprintf("Failed to fetch feed: %v", err))
		return
	}

	links := fetcher.Links(feed, importLimit)
	if len(links) == 0 {
		b.reply(chatID, "The feed has no links to import.")
		return
	}

	var saved int
	for _, link := range links {
		detected, ok := classify.Detect(link.URL)
		if !ok {
			continue
		}
		save := &model.Save{
			URL:   link.URL,
			Title: link.Title,
			Note:  link.Note,
			Tags:  []string{string(detected.Type)},
			Type:  detected.Type,
		}
		if err := b.store.CreateSave(ctx, save); err != nil {
			b.log.Error("import save", "url", link.URL, "error", err)
			continue
		}
		saved++
	}

	b.reply(chatID, fmt.Sprintf("Imported %d of %d link(s) from %q.", saved, len(links), feed.Title))
}
