package prayer

import (
	"fmt"
	"strconv"
	"strings"
)

// Name identifies one of the daily timings returned by the API.
type Name string

const (
	Fajr    Name = "Fajr"
	Sunrise Name = "Sunrise"
	Dhuhr   Name = "Dhuhr"
	Asr     Name = "Asr"
	Maghrib Name = "Maghrib"
	Isha    Name = "Isha"
)

// Actionable lists the five obligatory prayers in canonical order.
// Sunrise is informational only and never scheduled or marked.
var Actionable = []Name{Fajr, Dhuhr, Asr, Maghrib, Isha}

// All lists every timing shown to the user, in display order.
var All = []Name{Fajr, Sunrise, Dhuhr, Asr, Maghrib, Isha}

// Timings maps timing names to "HH:MM" strings in the user's local time.
type Timings map[Name]string

// IsActionable reports whether name is one of the five obligatory prayers.
func IsActionable(name Name) bool {
	for _, p := range Actionable {
		if p == name {
			return true
		}
	}
	return false
}

// ParseName matches free-text input against the actionable prayers,
// case-insensitively.
func ParseName(input string) (Name, bool) {
	trimmed := strings.TrimSpace(input)
	for _, p := range Actionable {
		if strings.EqualFold(trimmed, string(p)) {
			return p, true
		}
	}
	return "", false
}

// ParseClock parses a "HH:MM" 24-hour time string.
func ParseClock(value string) (hour, minute int, err error) {
	parts := strings.SplitN(strings.TrimSpace(value), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("malformed time %q", value)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed hour in %q", value)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("malformed minute in %q", value)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time %q out of range", value)
	}
	return hour, minute, nil
}
