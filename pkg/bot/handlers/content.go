package handlers

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/aidosk/tg-prayer-reminder/pkg/content"
	"github.com/aidosk/tg-prayer-reminder/pkg/logger"
	"github.com/aidosk/tg-prayer-reminder/pkg/ui"
)

func HandleAyah(ctx context.Context, b *bot.Bot, update *models.Update) {
	conv, ok := FromUpdate(update)
	if !ok {
		logger.Error("invalid update in HandleAyah")
		return
	}

	ayah := content.AyahOfTheDay(now())
	text := fmt.Sprintf("Ayah of the day:\n\n\"%s\"\n\n(%s)", ayah.Text, ayah.Source)
	if err := conv.Respond(ctx, b, text, nil); err != nil {
		logger.Error("failed to send ayah", "user_id", conv.UserID, "error", err)
	}
}

func HandleCalendar(ctx context.Context, b *bot.Bot, update *models.Update) {
	conv, ok := FromUpdate(update)
	if !ok {
		logger.Error("invalid update in HandleCalendar")
		return
	}

	if err := conv.Respond(ctx, b, content.CalendarSummary(), nil); err != nil {
		logger.Error("failed to send calendar", "user_id", conv.UserID, "error", err)
	}
}

// HandleDuas shows the dua category menu.
func HandleDuas(ctx context.Context, b *bot.Bot, update *models.Update) {
	conv, ok := FromUpdate(update)
	if !ok {
		logger.Error("invalid update in HandleDuas")
		return
	}

	keyboard, err := duaMenuKeyboard()
	if err != nil {
		logger.Error("failed to build dua menu keyboard", "error", err)
		return
	}
	if err := conv.Respond(ctx, b, "Pick a dua category:", keyboard); err != nil {
		logger.Error("failed to send dua menu", "user_id", conv.UserID, "error", err)
	}
}

// HandleDuaCallback navigates the dua menu: back to the category list
// or through the duas of one category.
func HandleDuaCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	conv, ok := FromUpdate(update)
	if !ok || conv.Kind != CallbackInteraction {
		logger.Error("invalid update in HandleDuaCallback")
		return
	}

	// Telegram requires an answer even when navigation fails.
	defer func() {
		if _, err := b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: update.CallbackQuery.ID,
		}); err != nil {
			logger.Error("failed to answer callback query", "user_id", conv.UserID, "error", err)
		}
	}()

	action, err := ui.ParseCallbackData(update.CallbackQuery.Data)
	if err != nil {
		logger.Error("failed to parse dua callback", "data", update.CallbackQuery.Data, "error", err)
		return
	}

	switch action.Screen {
	case ui.ScreenMenu:
		keyboard, err := duaMenuKeyboard()
		if err != nil {
			logger.Error("failed to build dua menu keyboard", "error", err)
			return
		}
		if err := conv.Respond(ctx, b, "Pick a dua category:", keyboard); err != nil {
			logger.Error("failed to show dua menu", "user_id", conv.UserID, "error", err)
		}
	case ui.ScreenCategory:
		showDua(ctx, b, conv, action.Category, action.Index)
	}
}

func showDua(ctx context.Context, b *bot.Bot, conv Conversation, categoryKey string, index int) {
	category, ok := content.CategoryByKey(categoryKey)
	if !ok {
		logger.Error("unknown dua category", "category", categoryKey)
		return
	}
	if index >= len(category.Duas) {
		index = 0
	}

	keyboard, err := duaNavigationKeyboard(category, index)
	if err != nil {
		logger.Error("failed to build dua navigation keyboard", "error", err)
		return
	}
	if err := conv.Respond(ctx, b, content.FormatDua(category.Duas[index]), keyboard); err != nil {
		logger.Error("failed to show dua", "user_id", conv.UserID, "error", err)
	}
}

func duaMenuKeyboard() (*models.InlineKeyboardMarkup, error) {
	var rows [][]models.InlineKeyboardButton
	var row []models.InlineKeyboardButton
	for _, category := range content.Categories() {
		data, err := ui.BuildCategoryCallback(category.Key, 0)
		if err != nil {
			return nil, err
		}
		row = append(row, models.InlineKeyboardButton{Text: category.Title, CallbackData: data})
		if len(row) == 2 {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}, nil
}

func duaNavigationKeyboard(category content.Category, index int) (*models.InlineKeyboardMarkup, error) {
	var rows [][]models.InlineKeyboardButton
	if len(category.Duas) > 1 {
		next := (index + 1) % len(category.Duas)
		data, err := ui.BuildCategoryCallback(category.Key, next)
		if err != nil {
			return nil, err
		}
		rows = append(rows, []models.InlineKeyboardButton{{Text: "Next", CallbackData: data}})
	}
	menuData, err := ui.BuildMenuCallback()
	if err != nil {
		return nil, err
	}
	rows = append(rows, []models.InlineKeyboardButton{{Text: "Back to categories", CallbackData: menuData}})
	return &models.InlineKeyboardMarkup{InlineKeyboard: rows}, nil
}
