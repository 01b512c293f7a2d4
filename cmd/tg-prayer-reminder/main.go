package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/go-telegram/bot"
	"github.com/joho/godotenv"

	"github.com/aidosk/tg-prayer-reminder/pkg/bot/handlers"
	"github.com/aidosk/tg-prayer-reminder/pkg/bot/reminders"
	"github.com/aidosk/tg-prayer-reminder/pkg/config"
	"github.com/aidosk/tg-prayer-reminder/pkg/db"
	"github.com/aidosk/tg-prayer-reminder/pkg/logger"
	"github.com/aidosk/tg-prayer-reminder/pkg/places"
	"github.com/aidosk/tg-prayer-reminder/pkg/prayer"
)

type botSender struct {
	b *bot.Bot
}

func (s botSender) SendMessage(ctx context.Context, chatID int64, text string) error {
	_, err := s.b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	return err
}

func main() {
	// Missing .env is fine; the config file and environment still apply.
	_ = godotenv.Load()

	if err := config.LoadConfig("config.json"); err != nil {
		logger.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	if err := logger.Configure(logger.Options{
		Level: config.AppConfig.Logging.Level,
		File:  config.AppConfig.Logging.File,
	}); err != nil {
		logger.Error("failed to configure logger", "error", err)
	}

	if err := db.InitDB(config.AppConfig.Database); err != nil {
		logger.Error("failed to initialize database", "error", err)
		os.Exit(1)
	}

	location, err := time.LoadLocation(config.AppConfig.Timezone)
	if err != nil {
		logger.Error("failed to load timezone", "timezone", config.AppConfig.Timezone, "error", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	opts := []bot.Option{
		bot.WithDefaultHandler(handlers.DefaultHandler),
	}
	b, err := bot.New(config.AppConfig.Telegram.Token, opts...)
	if err != nil {
		logger.Error("failed to create bot", "error", err)
		os.Exit(1)
	}

	timings := prayer.NewClient(config.AppConfig.Prayer.BaseURL, config.AppConfig.Prayer.Method)
	mosques := places.NewClient(config.AppConfig.Places.OverpassURL)

	scheduler, err := reminders.NewScheduler(location, timings, botSender{b: b})
	if err != nil {
		logger.Error("failed to create reminder scheduler", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := scheduler.Shutdown(); err != nil {
			logger.Error("failed to shut down scheduler", "error", err)
		}
	}()

	handlers.Setup(timings, mosques, scheduler, location, config.AppConfig.Prayer.DefaultCountry)

	b.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypeExact, handlers.HandleStart)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/setcity", bot.MatchTypePrefix, handlers.HandleSetCity)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/prayer", bot.MatchTypeExact, handlers.HandlePrayerTimes)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/notifications", bot.MatchTypeExact, handlers.HandleNotifications)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/markprayer", bot.MatchTypePrefix, handlers.HandleMarkPrayer)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/stats", bot.MatchTypeExact, handlers.HandleStats)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/mosques", bot.MatchTypeExact, handlers.HandleMosques)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/duas", bot.MatchTypeExact, handlers.HandleDuas)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/ayah", bot.MatchTypeExact, handlers.HandleAyah)
	b.RegisterHandler(bot.HandlerTypeMessageText, "/calendar", bot.MatchTypeExact, handlers.HandleCalendar)
	b.RegisterHandler(bot.HandlerTypeCallbackQueryData, "d:", bot.MatchTypePrefix, handlers.HandleDuaCallback)

	scheduler.Start()

	logger.Info("Starting bot...")
	b.Start(ctx)
}
