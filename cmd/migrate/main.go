package main

import (
	"context"                             // Context for the setup operation
	"errors"                              // Error inspection
	"payroll_tracker/internal/account"    // First-run administrator setup
	"payroll_tracker/internal/config"     // Custom import path (Config)
	"payroll_tracker/internal/db"         // Custom import path (Database)
	"payroll_tracker/internal/domain"     // Domain errors
	"payroll_tracker/internal/repository" // Record store

	"github.com/sirupsen/logrus" // Logrus for structured logging
)

// Main entry point for migration and first-run setup
func main() {
	cfg := config.LoadConfig() // Load configuration
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	gdb, err := db.Open(cfg) // Connect to the configured database
	if err != nil {
		logrus.Fatalf("failed to connect database: %v", err) // Log fatal error if connection fails
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.Fatal(err) // Log fatal error if migration fails
	}

	// Seed the administrator only when the operator supplied credentials
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		logrus.Info("ADMIN_USERNAME/ADMIN_PASSWORD not set, use POST /setup to create the administrator")
		return
	}
	users := repository.NewGormUserRepository(gdb)
	user, err := account.Setup(context.Background(), users, cfg.AdminUsername, cfg.AdminPassword)
	switch {
	case errors.Is(err, domain.ErrAlreadyInitialized):
		logrus.Info("Administrator already exists, skipping setup") // Idempotent re-run
	case err != nil:
		logrus.Fatalf("administrator setup failed: %v", err)
	default:
		logrus.WithField("username", user.Username).Info("Administrator created")
	}
}
