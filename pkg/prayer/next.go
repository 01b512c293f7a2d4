package prayer

import (
	"time"

	"github.com/aidosk/tg-prayer-reminder/pkg/logger"
)

// NextPrayer is the soonest upcoming obligatory prayer relative to a
// reference time.
type NextPrayer struct {
	Name Name
	At   time.Time
	// Tomorrow is set when every prayer for the reference day has
	// already passed and the result rolled over to the next day.
	Tomorrow bool
}

// Next resolves the soonest prayer strictly after now. A prayer whose
// clock time equals now exactly is treated as already passed. Malformed
// entries are skipped; if none parse, ok is false.
func Next(timings Timings, now time.Time) (NextPrayer, bool) {
	var (
		best  NextPrayer
		found bool
	)

	for _, name := range Actionable {
		hour, minute, err := ParseClock(timings[name])
		if err != nil {
			logger.Warn("skipping malformed prayer time", "prayer", name, "value", timings[name])
			continue
		}

		candidate := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
		if !candidate.After(now) {
			candidate = candidate.AddDate(0, 0, 1)
		}

		// Strict comparison keeps the canonical order as tie-break.
		if !found || candidate.Before(best.At) {
			best = NextPrayer{
				Name:     name,
				At:       candidate,
				Tomorrow: candidate.Day() != now.Day() || candidate.Month() != now.Month() || candidate.Year() != now.Year(),
			}
			found = true
		}
	}

	return best, found
}
