package handlers

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/aidosk/tg-prayer-reminder/pkg/logger"
)

// Reply-keyboard labels routed by the default handler.
const (
	btnPrayerTimes = "Prayer times"
	btnAyah        = "Ayah of the day"
	btnDuas        = "Duas"
	btnCalendar    = "Islamic calendar"
	btnStats       = "Statistics"
	btnMosques     = "Find a mosque"
	btnSettings    = "Settings"
)

const settingsText = "Settings:\n\n" +
	"/setcity - change your city\n" +
	"/notifications - toggle prayer reminders\n" +
	"/stats - prayer statistics\n" +
	"/markprayer - mark a completed prayer"

const fallbackText = "Use the keyboard below or /start to see what I can do."

func DefaultHandler(ctx context.Context, b *bot.Bot, update *models.Update) {
	conv, ok := FromUpdate(update)
	if !ok || conv.Kind != DirectMessage {
		logger.Debug("ignoring unsupported update in DefaultHandler")
		return
	}

	switch update.Message.Text {
	case btnPrayerTimes:
		HandlePrayerTimes(ctx, b, update)
	case btnAyah:
		HandleAyah(ctx, b, update)
	case btnDuas:
		HandleDuas(ctx, b, update)
	case btnCalendar:
		HandleCalendar(ctx, b, update)
	case btnStats:
		HandleStats(ctx, b, update)
	case btnMosques:
		HandleMosques(ctx, b, update)
	case btnSettings:
		if err := conv.Respond(ctx, b, settingsText, nil); err != nil {
			logger.Error("failed to send settings text", "user_id", conv.UserID, "error", err)
		}
	default:
		if err := conv.Respond(ctx, b, fallbackText, nil); err != nil {
			logger.Error("failed to send fallback text", "user_id", conv.UserID, "error", err)
		}
	}
}
