package handlers

import (
	"context"
	"time"

	"github.com/aidosk/tg-prayer-reminder/pkg/places"
	"github.com/aidosk/tg-prayer-reminder/pkg/prayer"
)

// TimingsProvider supplies fresh daily timings for a city.
type TimingsProvider interface {
	Timings(ctx context.Context, city, country string) (prayer.Timings, error)
}

// MosqueFinder looks up mosques in a named city area.
type MosqueFinder interface {
	FindMosques(ctx context.Context, city string) ([]places.Place, error)
}

// ReminderScheduler replaces a user's recurring prayer reminders.
type ReminderScheduler interface {
	Reschedule(ctx context.Context, userID int64, city, country string) error
}

// Package-level collaborators, wired once from main.
var (
	Prayer         TimingsProvider
	Mosques        MosqueFinder
	Reminders      ReminderScheduler
	Location       = time.UTC
	DefaultCountry = "Kazakhstan"
)

// now is a hook for tests.
var now = func() time.Time { return time.Now().In(Location) }

// Setup wires the handlers' collaborators.
func Setup(p TimingsProvider, m MosqueFinder, r ReminderScheduler, loc *time.Location, defaultCountry string) {
	Prayer = p
	Mosques = m
	Reminders = r
	if loc != nil {
		Location = loc
	}
	if defaultCountry != "" {
		DefaultCountry = defaultCountry
	}
}
