package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/aidosk/tg-prayer-reminder/pkg/db"
	"github.com/aidosk/tg-prayer-reminder/pkg/logger"
)

func HandleNotifications(ctx context.Context, b *bot.Bot, update *models.Update) {
	conv, ok := FromUpdate(update)
	if !ok || conv.Kind != DirectMessage {
		logger.Error("invalid update in HandleNotifications")
		return
	}

	state, err := db.ToggleNotifications(conv.UserID)
	if err != nil {
		logger.Error("failed to toggle notifications", "user_id", conv.UserID, "error", err)
		if err := conv.Respond(ctx, b, "Please set your city first:\n/setcity Almaty", nil); err != nil {
			logger.Error("failed to send notifications error reply", "user_id", conv.UserID, "error", err)
		}
		return
	}

	text := "Notifications are now disabled."
	if state {
		text = "Notifications are now enabled."
	}
	if err := conv.Respond(ctx, b, text, nil); err != nil {
		logger.Error("failed to send notifications reply", "user_id", conv.UserID, "error", err)
	}
}
