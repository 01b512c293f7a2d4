package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/aidosk/tg-prayer-reminder/pkg/db"
	"github.com/aidosk/tg-prayer-reminder/pkg/logger"
	"github.com/aidosk/tg-prayer-reminder/pkg/places"
)

const maxMosquesShown = 10

func HandleMosques(ctx context.Context, b *bot.Bot, update *models.Update) {
	conv, ok := FromUpdate(update)
	if !ok || conv.Kind != DirectMessage {
		logger.Error("invalid update in HandleMosques")
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

	found, err := Mosques.FindMosques(ctx, user.City)
	if err != nil {
		logger.Error("failed to search mosques", "user_id", conv.UserID, "city", user.City, "error", err)
		if err := conv.Respond(ctx, b, "Mosque search is unavailable right now. Please try again later.", nil); err != nil {
			logger.Error("failed to send mosques error reply", "user_id", conv.UserID, "error", err)
		}
		return
	}
	if len(found) == 0 {
		text := fmt.Sprintf("No mosques found in %s. Try a larger nearby city.", user.City)
		if err := conv.Respond(ctx, b, text, nil); err != nil {
			logger.Error("failed to send empty mosques reply", "user_id", conv.UserID, "error", err)
		}
		return
	}

	if err := conv.Respond(ctx, b, FormatMosques(user.City, found), nil); err != nil {
		logger.Error("failed to send mosques reply", "user_id", conv.UserID, "error", err)
	}
}

// FormatMosques renders up to maxMosquesShown entries with map links
// when coordinates are known.
func FormatMosques(city string, found []places.Place) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Mosques in %s:\n\n", city)

	shown := found
	if len(shown) > maxMosquesShown {
		shown = shown[:maxMosquesShown]
	}
	for i, place := range shown {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, place.Name)
		if place.Address != "" {
			fmt.Fprintf(&sb, "   %s\n", place.Address)
		}
		if place.HasCoords() {
			fmt.Fprintf(&sb, "   https://www.google.com/maps?q=%f,%f\n", place.Lat, place.Lon)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("Jumu'ah prayer is usually held after Dhuhr; confirm the exact time with the mosque.")
	return sb.String()
}
