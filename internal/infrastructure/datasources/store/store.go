package store

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"havenly.backend/internal/config"
	"havenly.backend/internal/infrastructure/models"
)

// Open connects to the configured database. The default is a shared
// in-memory sqlite store so the service runs with zero setup; postgres
// is used when DB_DRIVER=postgres.
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	switch cfg.Driver {
	case "", "sqlite":
		dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", cfg.DBName)
		db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
		if err != nil {
			return nil, fmt.Errorf("failed to open sqlite store: %w", err)
		}
		return db, nil
	case "postgres":
		db, err := gorm.Open(postgres.New(postgres.Config{
			DSN:                  cfg.URL(),
			PreferSimpleProtocol: true,
		}), &gorm.Config{
			PrepareStmt: false,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to connect to postgres: %w", err)
		}
		return db, nil
	default:
		return nil, fmt.Errorf("unknown database driver %q", cfg.Driver)
	}
}

// Migrate creates or updates the schema for all models.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Property{},
		&models.WatchlistItem{},
		&models.VerificationRequest{},
		&models.Booking{},
		&models.ChatThread{},
		&models.ChatMessage{},
		&models.SiteConfig{},
	)
}
