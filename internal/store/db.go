package store

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/rishav-del/ai-career-path-simulator/internal/config"
	"github.com/rishav-del/ai-career-path-simulator/internal/logging"
	"github.com/rishav-del/ai-career-path-simulator/pkg/models"
)

// Open connects to the configured database and returns a ready Store.
// Postgres connections are retried a few times to ride out container
// startup ordering; sqlite opens immediately.
func Open(cfg *config.Config) (Store, error) {
	log := logging.GetGlobalLogger()

	gormCfg := &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)}

	var db *gorm.DB
	var err error

	switch cfg.Database.Driver {
	case "postgres":
		dsn := normalizeDSN(cfg.Database.DSN)
		if dsn == "" {
			return nil, fmt.Errorf("database DSN is empty - set DATABASE_DSN")
		}
		for i := 0; i < 10; i++ {
			db, err = gorm.Open(postgres.Open(dsn), gormCfg)
			if err == nil {
				break
			}
			log.Warn("Retrying database connection", map[string]interface{}{"error": err.Error()})
			time.Sleep(2 * time.Second)
		}
		if err != nil {
			return nil, fmt.Errorf("failed to connect database after retries: %w", err)
		}
	case "sqlite":
		dsn := cfg.Database.DSN
		if dsn == "" {
			dsn = "simulations.db"
		}
		db, err = gorm.Open(sqlite.Open(dsn), gormCfg)
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite database: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported database driver: %s", cfg.Database.Driver)
	}

	if pingErr := db.Exec("SELECT 1").Error; pingErr != nil {
		return nil, fmt.Errorf("db ping failed: %w", pingErr)
	}

	if cfg.Database.AutoMigrate {
		if migErr := db.AutoMigrate(&models.Simulation{}); migErr != nil {
			return nil, fmt.Errorf("automigrate simulations: %w", migErr)
		}
	}

	log.Info("Database connection established", map[string]interface{}{
		"driver": cfg.Database.Driver,
	})

	return NewWithDB(db), nil
}

// normalizeDSN accepts either a URL style DSN (postgres://...) or a
// key=value list, trims stray quotes and whitespace, and defaults sslmode
// to disable for key=value form when missing.
func normalizeDSN(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "\"'")
	if s == "" {
		return s
	}

	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return s
	}

	fields := strings.Fields(s)
	cleaned := strings.Join(fields, " ")
	if !strings.Contains(strings.ToLower(cleaned), "sslmode=") {
		cleaned += " sslmode=disable"
	}
	return cleaned
}
