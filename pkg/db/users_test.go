package db

import (
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupDB(t *testing.T) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open("file::memory:?cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	if err := gdb.AutoMigrate(&User{}, &PrayerCompletion{}); err != nil {
		t.Fatalf("failed to migrate schema: %v", err)
	}
	DB = gdb

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to access underlying DB: %v", err)
	}
	t.Cleanup(func() {
		if err := sqlDB.Close(); err != nil {
			t.Fatalf("failed to close database: %v", err)
		}
		DB = nil
	})
}

func TestEnsureUserIsIdempotent(t *testing.T) {
	setupDB(t)

	if err := EnsureUser(42, "aisha", "Aisha"); err != nil {
		t.Fatalf("first EnsureUser failed: %v", err)
	}
	if err := UpdateUserCity(42, "Almaty", "Kazakhstan"); err != nil {
		t.Fatalf("UpdateUserCity failed: %v", err)
	}

	// Second contact must not reset the saved city.
	if err := EnsureUser(42, "aisha", "Aisha"); err != nil {
		t.Fatalf("second EnsureUser failed: %v", err)
	}

	user, err := GetUser(42)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if user.City != "Almaty" {
		t.Fatalf("expected city to survive re-insert, got %q", user.City)
	}
	if !user.NotificationsEnabled {
		t.Fatal("expected notifications enabled by default")
	}

	count, err := UserCount()
	if err != nil {
		t.Fatalf("UserCount failed: %v", err)
	}
	if count != 1 {
		t.Fatalf("expected exactly one user row, got %d", count)
	}
}

func TestGetUserNotFound(t *testing.T) {
	setupDB(t)

	if _, err := GetUser(999); err == nil {
		t.Fatal("expected an error for an unknown user")
	}
}

func TestToggleNotifications(t *testing.T) {
	setupDB(t)

	if err := EnsureUser(7, "", "Omar"); err != nil {
		t.Fatalf("EnsureUser failed: %v", err)
	}

	state, err := ToggleNotifications(7)
	if err != nil {
		t.Fatalf("ToggleNotifications failed: %v", err)
	}
	if state {
		t.Fatal("expected notifications disabled after first toggle")
	}

	state, err = ToggleNotifications(7)
	if err != nil {
		t.Fatalf("second ToggleNotifications failed: %v", err)
	}
	if !state {
		t.Fatal("expected notifications re-enabled after second toggle")
	}

	if _, err := ToggleNotifications(999); err == nil {
		t.Fatal("expected an error toggling an unknown user")
	}
}

func TestTouchLastActive(t *testing.T) {
	setupDB(t)

	if err := EnsureUser(5, "", "Ali"); err != nil {
		t.Fatalf("EnsureUser failed: %v", err)
	}
	before, err := GetUser(5)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if err := TouchLastActive(5); err != nil {
		t.Fatalf("TouchLastActive failed: %v", err)
	}
	after, err := GetUser(5)
	if err != nil {
		t.Fatalf("GetUser failed: %v", err)
	}
	if after.LastActive.Before(before.LastActive) {
		t.Fatal("expected last_active to move forward")
	}
}
