package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"quicksave/internal/model"
)

func (b *Bot) sendDeleteConfirmation(chatID int64, save *model.Save) {
	title := save.Title
	if title == "" {
		title = truncate(save.URL, 60)
	}
	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("Delete #%d %q? This cannot be undone.", save.ID, title))
	msg.ReplyMarkup = tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Yes, delete", fmt.Sprintf("delete:%d", save.ID)),
			tgbotapi.NewInlineKeyboardButtonData("Cancel", "noop:0"),
		),
	)
	if _, err := b.api.Send(msg); err != nil {
		b.log.Error("send delete confirmation", "error", err)
	}
}

func (b *Bot) handleCallback(ctx context.Context, cb *tgbotapi.CallbackQuery) {
	data := cb.Data
	chatID := cb.Message.Chat.ID

	callback := tgbotapi.NewCallback(cb.ID, "")
	if _, err := b.api.Send(callback); err != nil {
		b.log.Error("send callback ack", "error", err)
	}

	parts := strings.SplitN(data, ":", 2)
	if len(parts) != 2 {
		return
	}

	action := parts[0]
	id, err := strconv.ParseInt(parts[1], 10, 64)
	if err != nil {
		return
	}

	b.log.Info("callback",
		"action", action,
		"id", id,
		"chat_id", chatID,
		"user_id", cb.From.ID,
		"username", cb.From.UserName,
	)

	switch action {
	case "delete":
		// DeleteSave is idempotent, so a stale button is harmless.
		if err := b.store.DeleteSave(ctx, id); err != nil {
			b.reply(chatID, fmt.Sprintf("Error deleting save: %v", err))
			return
		}
		b.reply(chatID, fmt.Sprintf("Save #%d deleted.", id))
	case "noop":
		b.reply(chatID, "Cancelled.")
	}
}
