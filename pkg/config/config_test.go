package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.json")
	if err := os.WriteFile(configPath, []byte(content), 0o600); err != nil {
		t.Fatalf("failed to write config fixture: %v", err)
	}
	return configPath
}

func TestLoadConfigSuccess(t *testing.T) {
	original := AppConfig
	t.Cleanup(func() {
		AppConfig = original
	})

	configPath := writeConfig(t, `{
		"database": {
			"backend": "postgres",
			"host": "localhost",
			"user": "test-user",
			"password": "test-pass",
			"dbname": "testdb",
			"port": 5433,
			"sslmode": "disable"
		},
		"telegram": {
			"token": "test-token"
		},
		"timezone": "Asia/Aqtobe"
	}`)

	if err := LoadConfig(configPath); err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}

	if AppConfig.Database.Host != "localhost" {
		t.Errorf("expected host to be localhost, got %q", AppConfig.Database.Host)
	}
	if AppConfig.Database.Port != 5433 {
		t.Errorf("expected port to be 5433, got %d", AppConfig.Database.Port)
	}
	if AppConfig.Telegram.Token != "test-token" {
		t.Errorf("expected token to be test-token, got %q", AppConfig.Telegram.Token)
	}
	if AppConfig.Timezone != "Asia/Aqtobe" {
		t.Errorf("expected timezone to be Asia/Aqtobe, got %q", AppConfig.Timezone)
	}
	if AppConfig.Prayer.BaseURL != DefaultPrayerAPIURL {
		t.Errorf("expected default prayer API URL, got %q", AppConfig.Prayer.BaseURL)
	}
	if AppConfig.Prayer.Method != DefaultCalculationMethod {
		t.Errorf("expected default calculation method, got %d", AppConfig.Prayer.Method)
	}
}

func TestLoadConfigDefaultsToSQLite(t *testing.T) {
	original := AppConfig
	t.Cleanup(func() {
		AppConfig = original
	})

	configPath := writeConfig(t, `{
		"telegram": {"token": "test-token"}
	}`)

	if err := LoadConfig(configPath); err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if AppConfig.Database.Backend != "sqlite" {
		t.Errorf("expected sqlite backend, got %q", AppConfig.Database.Backend)
	}
	if AppConfig.Database.Path == "" {
		t.Error("expected a default sqlite path")
	}
	if AppConfig.Timezone != DefaultTimezone {
		t.Errorf("expected default timezone, got %q", AppConfig.Timezone)
	}
}

func TestLoadConfigTokenFromEnv(t *testing.T) {
	original := AppConfig
	t.Cleanup(func() {
		AppConfig = original
	})
	t.Setenv("BOT_TOKEN", "env-token")

	configPath := writeConfig(t, `{"telegram": {"token": ""}}`)

	if err := LoadConfig(configPath); err != nil {
		t.Fatalf("LoadConfig returned error: %v", err)
	}
	if AppConfig.Telegram.Token != "env-token" {
		t.Errorf("expected token from environment, got %q", AppConfig.Telegram.Token)
	}
}

func TestLoadConfigMissingToken(t *testing.T) {
	original := AppConfig
	t.Cleanup(func() {
		AppConfig = original
	})

	configPath := writeConfig(t, `{"telegram": {"token": ""}}`)

	if err := LoadConfig(configPath); err == nil {
		t.Fatal("expected an error when the telegram token is missing")
	}
}

func TestLoadConfigInvalidBackend(t *testing.T) {
	original := AppConfig
	t.Cleanup(func() {
		AppConfig = original
	})

	configPath := writeConfig(t, `{
		"database": {"backend": "mysql"},
		"telegram": {"token": "test-token"}
	}`)

	if err := LoadConfig(configPath); err == nil {
		t.Fatal("expected an error for an unsupported backend")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	original := AppConfig
	t.Cleanup(func() {
		AppConfig = original
	})

	if err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Fatal("expected an error when loading a missing config file")
	}
}
