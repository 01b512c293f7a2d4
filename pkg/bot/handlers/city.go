package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/aidosk/tg-prayer-reminder/pkg/db"
	"github.com/aidosk/tg-prayer-reminder/pkg/logger"
)

func HandleSetCity(ctx context.Context, b *bot.Bot, update *models.Update) {
	conv, ok := FromUpdate(update)
	if !ok || conv.Kind != DirectMessage {
		logger.Error("invalid update in HandleSetCity")
		return
	}

	city := strings.TrimSpace(strings.TrimPrefix(update.Message.Text, "/setcity"))
	if city == "" {
		if err := conv.Respond(ctx, b, "Please provide a city:\n/setcity Almaty", nil); err != nil {
			logger.Error("failed to send setcity usage", "user_id", conv.UserID, "error", err)
		}
		return
	}

	country := DefaultCountry

	if err := db.EnsureUser(conv.UserID, "", ""); err != nil {
		logger.Error("failed to ensure user before city update", "user_id", conv.UserID, "error", err)
	}
	if err := db.UpdateUserCity(conv.UserID, city, country); err != nil {
		logger.Error("failed to update city", "user_id", conv.UserID, "error", err)
		if err := conv.Respond(ctx, b, "Failed to save your city. Please try again.", nil); err != nil {
			logger.Error("failed to send city error reply", "user_id", conv.UserID, "error", err)
		}
		return
	}

	text := fmt.Sprintf("Your city is set to %s. Use /prayer to see today's prayer times.", city)
	if err := conv.Respond(ctx, b, text, nil); err != nil {
		logger.Error("failed to send city confirmation", "user_id", conv.UserID, "error", err)
	}

	// Reschedule reminders for the new city. A failed timings fetch
	// keeps the previous schedule in place.
	if Reminders == nil {
		return
	}
	if err := Reminders.Reschedule(ctx, conv.UserID, city, country); err != nil {
		logger.Warn("failed to reschedule reminders after city change", "user_id", conv.UserID, "error", err)
		if err := conv.Respond(ctx, b, "Could not refresh your reminders right now; the previous schedule is still active.", nil); err != nil {
			logger.Error("failed to send reschedule warning", "user_id", conv.UserID, "error", err)
		}
	}
}
