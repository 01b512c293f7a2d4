package db

import (
	"testing"
	"time"
)

var statsNow = time.Date(2025, time.June, 15, 12, 0, 0, 0, time.UTC)

func TestMarkPrayerCompletedIsIdempotent(t *testing.T) {
	setupDB(t)

	if err := MarkPrayerCompleted(1, "Fajr", statsNow); err != nil {
		t.Fatalf("first mark failed: %v", err)
	}
	if err := MarkPrayerCompleted(1, "Fajr", statsNow); err != nil {
		t.Fatalf("second mark failed: %v", err)
	}

	var count int64
	if err := DB.Model(&PrayerCompletion{}).Where("user_id = ?", 1).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one row after double mark, got %d", count)
	}

	var row PrayerCompletion
	if err := DB.Where("user_id = ?", 1).First(&row).Error; err != nil {
		t.Fatalf("failed to load row: %v", err)
	}
	if !row.Completed {
		t.Fatal("expected the row to be completed")
	}
	if row.CompletedAt == nil {
		t.Fatal("expected a completion timestamp")
	}

	streak, err := CalculateStreak(1, statsNow)
	if err != nil {
		t.Fatalf("CalculateStreak failed: %v", err)
	}
	if streak != 1 {
		t.Fatalf("expected streak 1 after double mark, got %d", streak)
	}
}

func TestMarkPrayerCompletedSeparateDaysAndPrayers(t *testing.T) {
	setupDB(t)

	if err := MarkPrayerCompleted(1, "Fajr", statsNow); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	if err := MarkPrayerCompleted(1, "Dhuhr", statsNow); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	if err := MarkPrayerCompleted(1, "Fajr", statsNow.AddDate(0, 0, -1)); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	var count int64
	if err := DB.Model(&PrayerCompletion{}).Where("user_id = ?", 1).Count(&count).Error; err != nil {
		t.Fatalf("count failed: %v", err)
	}
	if count != 3 {
		t.Fatalf("expected three distinct rows, got %d", count)
	}
}

func TestCalculateStreakFiveConsecutiveDays(t *testing.T) {
	setupDB(t)

	for i := 0; i < 5; i++ {
		if err := MarkPrayerCompleted(1, "Fajr", statsNow.AddDate(0, 0, -i)); err != nil {
			t.Fatalf("mark failed: %v", err)
		}
	}

	streak, err := CalculateStreak(1, statsNow)
	if err != nil {
		t.Fatalf("CalculateStreak failed: %v", err)
	}
	if streak != 5 {
		t.Fatalf("expected streak 5, got %d", streak)
	}
}

func TestCalculateStreakAnchorsAtToday(t *testing.T) {
	setupDB(t)

	// Unbroken run ending yesterday, nothing today.
	for i := 1; i <= 4; i++ {
		if err := MarkPrayerCompleted(1, "Isha", statsNow.AddDate(0, 0, -i)); err != nil {
			t.Fatalf("mark failed: %v", err)
		}
	}

	streak, err := CalculateStreak(1, statsNow)
	if err != nil {
		t.Fatalf("CalculateStreak failed: %v", err)
	}
	if streak != 0 {
		t.Fatalf("expected streak 0 with an empty today, got %d", streak)
	}
}

func TestCalculateStreakStopsAtGap(t *testing.T) {
	setupDB(t)

	if err := MarkPrayerCompleted(1, "Fajr", statsNow); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	if err := MarkPrayerCompleted(1, "Fajr", statsNow.AddDate(0, 0, -1)); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	// Gap at day -2, then more completions behind it.
	if err := MarkPrayerCompleted(1, "Fajr", statsNow.AddDate(0, 0, -3)); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	streak, err := CalculateStreak(1, statsNow)
	if err != nil {
		t.Fatalf("CalculateStreak failed: %v", err)
	}
	if streak != 2 {
		t.Fatalf("expected streak 2, got %d", streak)
	}
}

func TestCalculateStreakIsCapped(t *testing.T) {
	setupDB(t)

	for i := 0; i <= StreakCap+5; i++ {
		if err := MarkPrayerCompleted(1, "Fajr", statsNow.AddDate(0, 0, -i)); err != nil {
			t.Fatalf("mark failed: %v", err)
		}
	}

	streak, err := CalculateStreak(1, statsNow)
	if err != nil {
		t.Fatalf("CalculateStreak failed: %v", err)
	}
	if streak != StreakCap {
		t.Fatalf("expected streak capped at %d, got %d", StreakCap, streak)
	}
}

func TestSummarizeStatsPercentage(t *testing.T) {
	setupDB(t)

	// 25 completed rows via the upsert path.
	day := 0
	prayers := []string{"Fajr", "Dhuhr", "Asr", "Maghrib", "Isha"}
	inserted := 0
	for inserted < 25 {
		name := prayers[inserted%len(prayers)]
		if inserted%len(prayers) == 0 && inserted > 0 {
			day++
		}
		if err := MarkPrayerCompleted(1, name, statsNow.AddDate(0, 0, -day)); err != nil {
			t.Fatalf("mark failed: %v", err)
		}
		inserted++
	}

	// 15 pending rows bring the window total to 40.
	for i := 0; i < 15; i++ {
		record := PrayerCompletion{
			UserID:     1,
			PrayerName: prayers[i%len(prayers)],
			PrayerDate: DateOf(statsNow.AddDate(0, 0, -(10 + i/len(prayers)))),
			Completed:  false,
		}
		if err := DB.Create(&record).Error; err != nil {
			t.Fatalf("failed to seed pending row: %v", err)
		}
	}

	summary, err := SummarizeStats(1, 30, statsNow)
	if err != nil {
		t.Fatalf("SummarizeStats failed: %v", err)
	}
	if summary.Total != 40 {
		t.Fatalf("expected 40 total rows, got %d", summary.Total)
	}
	if summary.Completed != 25 {
		t.Fatalf("expected 25 completed rows, got %d", summary.Completed)
	}
	if summary.Percentage != 62.5 {
		t.Fatalf("expected exactly 62.5%%, got %v", summary.Percentage)
	}
	if summary.PerPrayer["Fajr"] == 0 {
		t.Fatal("expected a per-prayer breakdown")
	}
}

func TestSummarizeStatsEmptyWindow(t *testing.T) {
	setupDB(t)

	summary, err := SummarizeStats(1, 30, statsNow)
	if err != nil {
		t.Fatalf("SummarizeStats failed: %v", err)
	}
	if summary.Total != 0 || summary.Completed != 0 || summary.Percentage != 0 {
		t.Fatalf("expected zeroed summary, got %+v", summary)
	}
}

func TestSummarizeStatsExcludesRowsOutsideWindow(t *testing.T) {
	setupDB(t)

	if err := MarkPrayerCompleted(1, "Fajr", statsNow); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	if err := MarkPrayerCompleted(1, "Fajr", statsNow.AddDate(0, 0, -40)); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	summary, err := SummarizeStats(1, 30, statsNow)
	if err != nil {
		t.Fatalf("SummarizeStats failed: %v", err)
	}
	if summary.Total != 1 {
		t.Fatalf("expected one row inside the window, got %d", summary.Total)
	}
}

func TestLastDaysChart(t *testing.T) {
	setupDB(t)

	if err := MarkPrayerCompleted(1, "Fajr", statsNow); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	if err := MarkPrayerCompleted(1, "Dhuhr", statsNow); err != nil {
		t.Fatalf("mark failed: %v", err)
	}
	if err := MarkPrayerCompleted(1, "Isha", statsNow.AddDate(0, 0, -2)); err != nil {
		t.Fatalf("mark failed: %v", err)
	}

	chart, err := LastDaysChart(1, 7, statsNow)
	if err != nil {
		t.Fatalf("LastDaysChart failed: %v", err)
	}
	if len(chart) != 7 {
		t.Fatalf("expected 7 chart rows, got %d", len(chart))
	}
	if chart[6].Completed != 2 {
		t.Fatalf("expected 2 completions today, got %d", chart[6].Completed)
	}
	if chart[4].Completed != 1 {
		t.Fatalf("expected 1 completion two days ago, got %d", chart[4].Completed)
	}
	if chart[5].Completed != 0 {
		t.Fatalf("expected 0 completions yesterday, got %d", chart[5].Completed)
	}
	if !chart[0].Date.Before(chart[6].Date) {
		t.Fatal("expected chart ordered oldest first")
	}
}
