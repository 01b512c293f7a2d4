package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/aidosk/tg-prayer-reminder/pkg/logger"
)

const (
	DefaultTimezone     = "Asia/Almaty"
	DefaultCountry      = "Kazakhstan"
	DefaultPrayerAPIURL = "http://api.aladhan.com"
	DefaultOverpassURL  = "https://overpass-api.de/api/interpreter"
	// ISNA calculation method on the Aladhan API.
	DefaultCalculationMethod = 2
)

type Config struct {
	Database DatabaseConfig `json:"database"`
	Telegram TelegramConfig `json:"telegram"`
	Prayer   PrayerConfig   `json:"prayer"`
	Places   PlacesConfig   `json:"places"`
	Logging  LoggingConfig  `json:"logging"`
	Timezone string         `json:"timezone"`
}

type DatabaseConfig struct {
	// Backend is "sqlite" or "postgres". The choice is made once at
	// startup; nothing branches on it afterwards.
	Backend  string `json:"backend"`
	Path     string `json:"path"` // sqlite file path
	Host     string `json:"host"`
	User     string `json:"user"`
	Password string `json:"password"`
	DBName   string `json:"dbname"`
	Port     int    `json:"port"`
	SSLMode  string `json:"sslmode"`
}

type TelegramConfig struct {
	Token string `json:"token"`
}

type PrayerConfig struct {
	BaseURL        string `json:"base_url"`
	Method         int    `json:"method"`
	DefaultCountry string `json:"default_country"`
}

type PlacesConfig struct {
	OverpassURL string `json:"overpass_url"`
}

type LoggingConfig struct {
	Level     string `json:"level"`
	File      string `json:"file"`
	GormLevel string `json:"gorm_level"`
}

var AppConfig Config

func LoadConfig(filename string) error {
	file, err := os.Open(filename)
	if err != nil {
		logger.Error("failed to open config file", "error", err)
		return err
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&AppConfig); err != nil {
		logger.Error("failed to decode config file", "error", err)
		return err
	}

	applyDefaults(&AppConfig)
	applyEnvOverrides(&AppConfig)
	return validate(&AppConfig)
}

func applyDefaults(cfg *Config) {
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}
	if cfg.Prayer.BaseURL == "" {
		cfg.Prayer.BaseURL = DefaultPrayerAPIURL
	}
	if cfg.Prayer.Method == 0 {
		cfg.Prayer.Method = DefaultCalculationMethod
	}
	if cfg.Prayer.DefaultCountry == "" {
		cfg.Prayer.DefaultCountry = DefaultCountry
	}
	if cfg.Places.OverpassURL == "" {
		cfg.Places.OverpassURL = DefaultOverpassURL
	}
	if cfg.Database.Backend == "" {
		if cfg.Database.Host != "" {
			cfg.Database.Backend = "postgres"
		} else {
			cfg.Database.Backend = "sqlite"
		}
	}
	if cfg.Database.Backend == "sqlite" && cfg.Database.Path == "" {
		cfg.Database.Path = "prayer_bot.db"
	}
}

// applyEnvOverrides lets deployment environments inject secrets without
// editing the config file. BOT_TOKEN matches what hosting platforms set.
func applyEnvOverrides(cfg *Config) {
	if token := strings.TrimSpace(os.Getenv("BOT_TOKEN")); token != "" {
		cfg.Telegram.Token = token
	}
	if dsn := strings.TrimSpace(os.Getenv("DATABASE_URL")); dsn != "" {
		cfg.Database.Backend = "postgres"
		cfg.Database.Host = dsn
	}
}

func validate(cfg *Config) error {
	switch cfg.Database.Backend {
	case "sqlite", "postgres":
	default:
		return fmt.Errorf("unsupported database backend %q", cfg.Database.Backend)
	}
	if cfg.Telegram.Token == "" {
		return fmt.Errorf("telegram token is not set")
	}
	return nil
}
