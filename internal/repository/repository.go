// internal/repository/repository.go
package repository

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/dangerclosesec/cscm/internal/model"
	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Open connects to the history database. DSNs starting with "sqlite:" or
// "file:" open an embedded SQLite database, anything else goes to Postgres.
func Open(dsn string, debug bool) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	}
	if debug {
		gormConfig.Logger = logger.Default.LogMode(logger.Info)
	}

	var dialector gorm.Dialector
	switch {
	case strings.HasPrefix(dsn, "sqlite:"):
		dialector = sqlite.Open(strings.TrimPrefix(dsn, "sqlite:"))
	case strings.HasPrefix(dsn, "file:"):
		dialector = sqlite.Open(dsn)
	default:
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return db, nil
}

// Migrate creates or updates the history tables
func Migrate(ctx context.Context, db *gorm.DB) error {
	slog.Debug("Migrating history schema")
	if err := db.WithContext(ctx).AutoMigrate(&model.Compilation{}); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	return nil
}
