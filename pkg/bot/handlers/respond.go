package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Kind tags the two interaction shapes the front-end delivers.
type Kind int

const (
	DirectMessage Kind = iota
	CallbackInteraction
)

// Conversation is the uniform respond capability handed to business
// logic: a direct message answers with a new message, a callback edits
// the message its keyboard lives on.
type Conversation struct {
	Kind      Kind
	ChatID    int64
	UserID    int64
	MessageID int
}

// FromUpdate classifies an update explicitly before any business logic
// runs. It returns false for updates that carry neither a usable
// message nor a usable callback.
func FromUpdate(update *models.Update) (Conversation, bool) {
	if update == nil {
		return Conversation{}, false
	}
	if update.Message != nil && update.Message.From != nil && update.Message.Chat.ID != 0 {
		return Conversation{
			Kind:      DirectMessage,
			ChatID:    update.Message.Chat.ID,
			UserID:    update.Message.From.ID,
			MessageID: update.Message.ID,
		}, true
	}
	if update.CallbackQuery != nil &&
		update.CallbackQuery.Message.Type == models.MaybeInaccessibleMessageTypeMessage &&
		update.CallbackQuery.Message.Message != nil {
		msg := update.CallbackQuery.Message.Message
		return Conversation{
			Kind:      CallbackInteraction,
			ChatID:    msg.Chat.ID,
			UserID:    update.CallbackQuery.From.ID,
			MessageID: msg.ID,
		}, true
	}
	return Conversation{}, false
}

// Respond sends text back on the conversation: a new message for
// DirectMessage, an in-place edit for CallbackInteraction.
func (c Conversation) Respond(ctx context.Context, b *bot.Bot, text string, markup models.ReplyMarkup) error {
	if c.Kind == CallbackInteraction {
		_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:      c.ChatID,
			MessageID:   c.MessageID,
			Text:        text,
			ReplyMarkup: toInlineMarkup(markup),
		})
		return err
	}
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      c.ChatID,
		Text:        text,
		ReplyMarkup: markup,
	})
	return err
}

func toInlineMarkup(markup models.ReplyMarkup) models.ReplyMarkup {
	if inline, ok := markup.(*models.InlineKeyboardMarkup); ok {
		return inline
	}
	return nil
}
