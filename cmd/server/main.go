package main

import (
	"context"                             // context package is needed for Redis operations
	"payroll_tracker/internal/api"        // Custom package for API handlers
	"payroll_tracker/internal/config"     // Custom package for configuration
	"payroll_tracker/internal/db"         // Custom package for database access
	"payroll_tracker/internal/report"     // Custom package for report aggregation
	"payroll_tracker/internal/repository" // Custom package for the record store
	"payroll_tracker/internal/utils"      // Custom package for token utilities
	"time"                                // Server clock

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logrus for structured logging
)

// Main function to set up and run the server
func main() {
	cfg := config.LoadConfig() // Load configuration

	// Setup logger
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	if cfg.IsProd {
		logrus.SetFormatter(&logrus.JSONFormatter{}) // Machine readable logs in production
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logrus.SetLevel(level)
	} else {
		logrus.Warnf("unknown LOG_LEVEL %q, using info", cfg.LogLevel)
	}

	if err := cfg.Validate(); err != nil {
		logrus.Fatalf("invalid configuration: %v", err) // Fatal error if configuration is incomplete
	}

	// Connect to the database selected by DB_DRIVER
	gdb, err := db.Open(cfg)
	if err != nil {
		logrus.Fatalf("failed to connect to DB: %v", err) // Fatal error if DB connection fails
	}

	// Setup Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr, // Redis server address
		Password: cfg.RedisPass, // Redis password
		DB:       cfg.RedisDB,   // Redis database number
	})

	// Test Redis connection
	_, err = redisClient.Ping(context.Background()).Result()
	if err != nil {
		logrus.Fatalf("failed to connect to Redis: %v", err)
	}

	// Set Mode to Release if in production
	if cfg.IsProd {
		gin.SetMode(gin.ReleaseMode)
	}

	// Setup Gin
	r := gin.Default() // Gin router instance

	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		logrus.Fatalf("failed to set trusted proxies: %v", err)
	}

	// Wire the record store, the aggregator and the routes
	employees := repository.NewGormEmployeeRepository(gdb) // Employee store
	absences := repository.NewGormAbsenceRepository(gdb)   // Absence store
	api.RegisterRoutes(r, api.Deps{
		Users:     repository.NewGormUserRepository(gdb),  // Operator accounts
		Employees: employees,                              // Employee store
		Absences:  absences,                               // Absence store
		Reports:   report.NewService(employees, absences), // Report aggregator
		Denylist:  utils.NewTokenDenylist(redisClient),    // Logout denylist
		JWTSecret: cfg.JWTSecret,                          // JWT secret key
		JWTTTL:    cfg.JWTTTL,                             // JWT lifetime
		Now:       time.Now,                               // Server clock
	})

	logrus.Info("Server running on " + cfg.AppPort) // Log server start
	if err := r.Run(":" + cfg.AppPort); err != nil {
		logrus.Fatalf("server stopped: %v", err) // Start the server on port cfg.AppPort
	}
}
