package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/aidosk/tg-prayer-reminder/pkg/db"
	"github.com/aidosk/tg-prayer-reminder/pkg/logger"
	"github.com/aidosk/tg-prayer-reminder/pkg/prayer"
)

func HandleMarkPrayer(ctx context.Context, b *bot.Bot, update *models.Update) {
	conv, ok := FromUpdate(update)
	if !ok || conv.Kind != DirectMessage {
		logger.Error("invalid update in HandleMarkPrayer")
		return
	}

	arg := strings.TrimSpace(strings.TrimPrefix(update.Message.Text, "/markprayer"))
	if arg == "" {
		usage := "Please name the prayer:\n/markprayer Fajr\n/markprayer Dhuhr\n/markprayer Asr\n/markprayer Maghrib\n/markprayer Isha"
		if err := conv.Respond(ctx, b, usage, nil); err != nil {
			logger.Error("failed to send markprayer usage", "user_id", conv.UserID, "error", err)
		}
		return
	}

	name, ok := prayer.ParseName(arg)
	if !ok {
		names := make([]string, 0, len(prayer.Actionable))
		for _, p := range prayer.Actionable {
			names = append(names, string(p))
		}
		text := fmt.Sprintf("Unknown prayer %q. Valid names: %s", arg, strings.Join(names, ", "))
		if err := conv.Respond(ctx, b, text, nil); err != nil {
			logger.Error("failed to send markprayer validation reply", "user_id", conv.UserID, "error", err)
		}
		return
	}

	if err := db.TouchLastActive(conv.UserID); err != nil {
		logger.Error("failed to touch last active", "user_id", conv.UserID, "error", err)
	}

	today := now()
	if err := db.MarkPrayerCompleted(conv.UserID, string(name), today); err != nil {
		logger.Error("failed to mark prayer", "user_id", conv.UserID, "prayer", name, "error", err)
		if err := conv.Respond(ctx, b, "Failed to record the prayer. Please try again.", nil); err != nil {
			logger.Error("failed to send markprayer error reply", "user_id", conv.UserID, "error", err)
		}
		return
	}

	streak, err := db.CalculateStreak(conv.UserID, today)
	if err != nil {
		logger.Error("failed to compute streak", "user_id", conv.UserID, "error", err)
	}

	if err := conv.Respond(ctx, b, formatMarkReply(name, streak), nil); err != nil {
		logger.Error("failed to send markprayer reply", "user_id", conv.UserID, "error", err)
	}
}

func formatMarkReply(name prayer.Name, streak int) string {
	text := fmt.Sprintf("%s marked as completed!", name)
	if streak > 0 {
		text += fmt.Sprintf("\nYour streak: %d days in a row.", streak)
	}
	switch streak {
	case 7:
		text += "\nA whole week, well done!"
	case 30:
		text += "\nMashallah, a full month!"
	case 100:
		text += "\nIncredible, one hundred days in a row!"
	}
	return text
}
