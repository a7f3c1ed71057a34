package db

import (
	"fmt"                             // Error wrapping
	"payroll_tracker/internal/config" // Custom import path (Config)
	"payroll_tracker/internal/domain" // Importing domain models
	"strings"                         // DSN manipulation

	"github.com/sirupsen/logrus" // Logrus for structured logging

	"gorm.io/driver/mysql"  // MySQL driver for GORM
	"gorm.io/driver/sqlite" // SQLite driver for GORM
	"gorm.io/gorm"          // GORM ORM library
	"gorm.io/gorm/logger"   // GORM logger
)

// Open connects to the database selected by cfg.DBDriver
func Open(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		TranslateError: true,                                // Surface gorm.ErrDuplicatedKey for unique violations
		Logger:         logger.Default.LogMode(logger.Warn), // Only slow queries and errors
	}
	if cfg.IsProd {
		gormCfg.Logger = logger.Default.LogMode(logger.Error) // Errors only in production
	}
	switch cfg.DBDriver {
	case config.DriverMySQL:
		return gorm.Open(mysql.Open(cfg.MySQLDSN()), gormCfg)
	case config.DriverSQLite:
		return OpenSQLite(cfg.SQLitePath, gormCfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.DBDriver)
	}
}

// OpenSQLite opens an SQLite database with foreign keys enforced on every connection
func OpenSQLite(path string, gormCfg *gorm.Config) (*gorm.DB, error) {
	sep := "?" // Query separator for the DSN
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return gorm.Open(sqlite.Open(path+sep+"_foreign_keys=on"), gormCfg)
}

// Migrate creates tables, missing foreign keys, constraints, columns and indexes
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&domain.User{}, &domain.Employee{}, &domain.Absence{}); err != nil {
		return fmt.Errorf("migration failed: %w", err)
	}
	logrus.Info("Migration completed.") // Log successful migration
	return nil
}
