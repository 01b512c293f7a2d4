package handlers

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/aidosk/tg-prayer-reminder/pkg/db"
	"github.com/aidosk/tg-prayer-reminder/pkg/logger"
	"github.com/aidosk/tg-prayer-reminder/pkg/prayer"
)

func HandlePrayerTimes(ctx context.Context, b *bot.Bot, update *models.Update) {
	conv, ok := FromUpdate(update)
	if !ok || conv.Kind != DirectMessage {
		logger.Error("invalid update in HandlePrayerTimes")
		return
	}

	user, err := db.GetUser(conv.UserID)
	if err != nil || user.City == "" {
		if err := conv.Respond(ctx, b, "Please set your city first:\n/setcity Almaty", nil); err != nil {
			logger.Error("failed to send city prompt", "user_id", conv.UserID, "error", err)
		}
		return
	}

	if err := db.TouchLastActive(conv.UserID); err != nil {
		logger.Error("failed to touch last active", "user_id", conv.UserID, "error", err)
	}

	timings, err := Prayer.Timings(ctx, user.City, user.Country)
	if err != nil {
		logger.Error("failed to fetch prayer times", "user_id", conv.UserID, "city", user.City, "error", err)
		if err := conv.Respond(ctx, b, "Could not fetch prayer times. Please check your city name and try again.", nil); err != nil {
			logger.Error("failed to send timings error reply", "user_id", conv.UserID, "error", err)
		}
		return
	}

	if err := conv.Respond(ctx, b, FormatTimings(user.City, timings, now()), nil); err != nil {
		logger.Error("failed to send prayer times", "user_id", conv.UserID, "error", err)
	}
}

// FormatTimings renders the six daily timings plus a next-prayer line.
func FormatTimings(city string, timings prayer.Timings, at time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Prayer times for %s:\n\n", city)
	for _, name := range prayer.All {
		fmt.Fprintf(&sb, "%s: %s\n", name, timings[name])
	}

	if next, ok := prayer.Next(timings, at); ok {
		if next.Tomorrow {
			fmt.Fprintf(&sb, "\nNext prayer: %s at %s tomorrow", next.Name, next.At.Format("15:04"))
		} else {
			fmt.Fprintf(&sb, "\nNext prayer: %s at %s", next.Name, next.At.Format("15:04"))
		}
	}
	return sb.String()
}
