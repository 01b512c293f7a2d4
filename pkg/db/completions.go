package db

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm/clause"
)

// StreakCap bounds the backward day walk when computing streaks.
const StreakCap = 100

// DateOf truncates a timestamp to its calendar date.
func DateOf(t time.Time) datatypes.Date {
	return datatypes.Date(time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC))
}

// MarkPrayerCompleted upserts a completion record for (user, prayer, day).
// Marking twice on the same day just refreshes the completion timestamp.
func MarkPrayerCompleted(userID int64, prayerName string, day time.Time) error {
	now := time.Now().UTC()
	record := PrayerCompletion{
		UserID:      userID,
		PrayerName:  prayerName,
		PrayerDate:  DateOf(day),
		Completed:   true,
		CompletedAt: &now,
	}
	return DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{
			{Name: "user_id"},
			{Name: "prayer_name"},
			{Name: "prayer_date"},
		},
		DoUpdates: clause.Assignments(map[string]any{
			"completed":    true,
			"completed_at": now,
		}),
	}).Create(&record).Error
}

// PrayerStats returns the user's completion rows for the trailing
// window of days ending today, newest first.
func PrayerStats(userID int64, days int, today time.Time) ([]PrayerCompletion, error) {
	cutoff := DateOf(today.AddDate(0, 0, -(days - 1)))
	var rows []PrayerCompletion
	err := DB.Where("user_id = ? AND prayer_date >= ?", userID, cutoff).
		Order("prayer_date DESC").
		Find(&rows).Error
	return rows, err
}

// StatsSummary aggregates a trailing N-day window.
type StatsSummary struct {
	Total      int
	Completed  int
	Percentage float64
	PerPrayer  map[string]int
}

func SummarizeStats(userID int64, days int, today time.Time) (StatsSummary, error) {
	rows, err := PrayerStats(userID, days, today)
	if err != nil {
		return StatsSummary{}, err
	}

	summary := StatsSummary{PerPrayer: make(map[string]int)}
	for _, row := range rows {
		summary.Total++
		if row.Completed {
			summary.Completed++
			summary.PerPrayer[row.PrayerName]++
		}
	}
	if summary.Total > 0 {
		summary.Percentage = float64(summary.Completed) / float64(summary.Total) * 100
	}
	return summary, nil
}

// CalculateStreak counts consecutive days with at least one completed
// prayer, walking backward from today. A day with no completion stops
// the walk, so an empty today yields 0 even after an unbroken run
// ending yesterday. The walk is capped at StreakCap days.
func CalculateStreak(userID int64, today time.Time) (int, error) {
	cutoff := DateOf(today.AddDate(0, 0, -StreakCap))
	var rows []PrayerCompletion
	if err := DB.Where("user_id = ? AND completed = ? AND prayer_date >= ?", userID, true, cutoff).
		Find(&rows).Error; err != nil {
		return 0, err
	}

	completedDays := make(map[string]bool, len(rows))
	for _, row := range rows {
		completedDays[time.Time(row.PrayerDate).Format("2006-01-02")] = true
	}

	streak := 0
	day := today
	for streak < StreakCap {
		if !completedDays[time.Time(DateOf(day)).Format("2006-01-02")] {
			break
		}
		streak++
		day = day.AddDate(0, 0, -1)
	}
	return streak, nil
}

// DayCount is one row of the recent-days completion chart.
type DayCount struct {
	Date      time.Time
	Completed int
}

// LastDaysChart returns completed-prayer counts for the last n days,
// oldest first.
func LastDaysChart(userID int64, n int, today time.Time) ([]DayCount, error) {
	rows, err := PrayerStats(userID, n, today)
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int)
	for _, row := range rows {
		if row.Completed {
			counts[time.Time(row.PrayerDate).Format("2006-01-02")]++
		}
	}

	chart := make([]DayCount, 0, n)
	for i := n - 1; i >= 0; i-- {
		day := time.Time(DateOf(today.AddDate(0, 0, -i)))
		chart = append(chart, DayCount{
			Date:      day,
			Completed: counts[day.Format("2006-01-02")],
		})
	}
	return chart, nil
}
