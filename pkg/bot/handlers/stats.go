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

const (
	statsWindowDays = 30
	chartDays       = 7
)

func HandleStats(ctx context.Context, b *bot.Bot, update *models.Update) {
	conv, ok := FromUpdate(update)
	if !ok || conv.Kind != DirectMessage {
		logger.Error("invalid update in HandleStats")
		return
	}

	if err := db.TouchLastActive(conv.UserID); err != nil {
		logger.Error("failed to touch last active", "user_id", conv.UserID, "error", err)
	}

	today := now()
	summary, err := db.SummarizeStats(conv.UserID, statsWindowDays, today)
	if err != nil {
		logger.Error("failed to summarize stats", "user_id", conv.UserID, "error", err)
		if err := conv.Respond(ctx, b, "Failed to load your statistics. Please try again.", nil); err != nil {
			logger.Error("failed to send stats error reply", "user_id", conv.UserID, "error", err)
		}
		return
	}

	if summary.Total == 0 {
		text := "You have no prayer statistics yet.\n\nMark a completed prayer with /markprayer, for example:\n/markprayer Fajr"
		if err := conv.Respond(ctx, b, text, nil); err != nil {
			logger.Error("failed to send empty stats reply", "user_id", conv.UserID, "error", err)
		}
		return
	}

	streak, err := db.CalculateStreak(conv.UserID, today)
	if err != nil {
		logger.Error("failed to compute streak", "user_id", conv.UserID, "error", err)
	}

	chart, err := db.LastDaysChart(conv.UserID, chartDays, today)
	if err != nil {
		logger.Error("failed to build stats chart", "user_id", conv.UserID, "error", err)
	}

	if err := conv.Respond(ctx, b, FormatStats(summary, streak, chart), nil); err != nil {
		logger.Error("failed to send stats reply", "user_id", conv.UserID, "error", err)
	}
}

// FormatStats renders the statistics message: window summary, streak,
// per-prayer breakdown in canonical order, and a bar chart of the last
// days.
func FormatStats(summary db.StatsSummary, streak int, chart []db.DayCount) string {
	var sb strings.Builder
	sb.WriteString("PRAYER STATISTICS\n\n")
	fmt.Fprintf(&sb, "Period: last %d days\n\n", statsWindowDays)
	fmt.Fprintf(&sb, "Completed: %d of %d\n", summary.Completed, summary.Total)
	fmt.Fprintf(&sb, "Percentage: %.1f%%\n", summary.Percentage)
	fmt.Fprintf(&sb, "Streak: %d days in a row\n\n", streak)

	sb.WriteString("By prayer:\n")
	for _, name := range prayer.Actionable {
		if count := summary.PerPrayer[string(name)]; count > 0 {
			fmt.Fprintf(&sb, "  %s: %d\n", name, count)
		}
	}

	if len(chart) > 0 {
		fmt.Fprintf(&sb, "\nLast %d days:\n", len(chart))
		for _, day := range chart {
			completed := day.Completed
			if completed > len(prayer.Actionable) {
				completed = len(prayer.Actionable)
			}
			bars := strings.Repeat("█", completed) + strings.Repeat("░", len(prayer.Actionable)-completed)
			fmt.Fprintf(&sb, "%s %s %d/%d\n", day.Date.Format("02.01"), bars, day.Completed, len(prayer.Actionable))
		}
	}
	return sb.String()
}
