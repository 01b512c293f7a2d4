// pkg/db/repository.go
package db

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aidosk/tg-prayer-reminder/pkg/config"
	"github.com/aidosk/tg-prayer-reminder/pkg/logger"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// Export DB variable
var DB *gorm.DB

// InitDB opens the configured backend and migrates the schema. The
// backend is chosen exactly once here; no query branches on it later.
func InitDB(cfg config.DatabaseConfig) error {
	gormLogger, gormErr := newGormLogger(config.AppConfig.Logging.GormLevel)
	if gormErr != nil {
		logger.Error("invalid gorm log level", "value", config.AppConfig.Logging.GormLevel, "error", gormErr)
	}

	dialector, err := openDialector(cfg)
	if err != nil {
		return err
	}

	DB, err = gorm.Open(dialector, &gorm.Config{Logger: gormLogger})
	if err != nil {
		logger.Error("failed to connect to database", "backend", cfg.Backend, "error", err)
		return err
	}
	if err := DB.AutoMigrate(&User{}, &PrayerCompletion{}); err != nil {
		logger.Error("failed to auto-migrate database", "error", err)
		return err
	}
	logger.Info("database ready", "backend", cfg.Backend)
	return nil
}

func openDialector(cfg config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Backend {
	case "sqlite":
		return sqlite.Open(cfg.Path), nil
	case "postgres":
		// Hosting platforms hand over a single postgres:// URL.
		if strings.Contains(cfg.Host, "://") {
			return postgres.Open(cfg.Host), nil
		}
		dsn := "host=" + cfg.Host +
			" user=" + cfg.User +
			" password=" + cfg.Password +
			" dbname=" + cfg.DBName +
			" port=" + strconv.Itoa(cfg.Port) +
			" sslmode=" + cfg.SSLMode
		return postgres.Open(dsn), nil
	default:
		return nil, fmt.Errorf("unsupported database backend %q", cfg.Backend)
	}
}
