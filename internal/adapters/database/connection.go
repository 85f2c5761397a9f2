// Package database stores conversation transcripts with GORM.
package database

import (
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
	"weatheragent.app/internal/config"
	"weatheragent.app/pkg/errors"
)

// Open connects to the configured transcript database
func Open(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.Type {
	case config.DatabaseTypeSQLite:
		dialector = sqlite.Open(cfg.SQLitePath)
	case config.DatabaseTypePostgres:
		dialector = postgres.Open(cfg.GetDSN())
	default:
		return nil, errors.NewConfigurationError(fmt.Sprintf("unsupported database type: %s", cfg.Type), nil)
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		return nil, errors.NewDatabaseError(fmt.Sprintf("failed to connect to %s database", cfg.Type), err)
	}
	return db, nil
}

// Migrate creates or updates the transcript tables
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&ConversationModel{}); err != nil {
		return errors.NewDatabaseError("failed to migrate conversations table", err)
	}
	return nil
}
