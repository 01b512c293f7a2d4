package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/aidosk/tg-prayer-reminder/pkg/db"
	"github.com/aidosk/tg-prayer-reminder/pkg/logger"
)

const welcomeText = "Assalamu alaikum! I can help you keep track of your daily prayers.\n\n" +
	"/setcity <city> - set your city\n" +
	"/prayer - today's prayer times\n" +
	"/markprayer <name> - mark a prayer as completed\n" +
	"/stats - your completion statistics\n" +
	"/notifications - toggle prayer reminders\n" +
	"/mosques - mosques near you\n\n" +
	"Or use the keyboard below."

func HandleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	conv, ok := FromUpdate(update)
	if !ok || conv.Kind != DirectMessage {
		logger.Error("invalid update in HandleStart")
		return
	}

	var username, firstName string
	if update.Message.From != nil {
		username = update.Message.From.Username
		firstName = update.Message.From.FirstName
	}
	if err := db.EnsureUser(conv.UserID, username, firstName); err != nil {
		logger.Error("failed to ensure user", "user_id", conv.UserID, "error", err)
		if err := conv.Respond(ctx, b, "Failed to set you up. Please try again later.", nil); err != nil {
			logger.Error("failed to send start error reply", "user_id", conv.UserID, "error", err)
		}
		return
	}

	if count, err := db.UserCount(); err == nil {
		logger.Info("user started the bot", "user_id", conv.UserID, "total_users", count)
	}

	if err := conv.Respond(ctx, b, welcomeText, mainKeyboard()); err != nil {
		logger.Error("failed to send welcome message", "user_id", conv.UserID, "error", err)
	}
}

func mainKeyboard() *models.ReplyKeyboardMarkup {
	return &models.ReplyKeyboardMarkup{
		ResizeKeyboard: true,
		Keyboard: [][]models.KeyboardButton{
			{{Text: btnPrayerTimes}, {Text: btnAyah}},
			{{Text: btnDuas}, {Text: btnCalendar}},
			{{Text: btnStats}, {Text: btnMosques}},
			{{Text: btnSettings}},
		},
	}
}
