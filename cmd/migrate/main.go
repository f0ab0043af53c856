package main

import (
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/packtrack/backend/internal/infrastructure/config"
	"github.com/packtrack/backend/internal/infrastructure/logger"
	"github.com/packtrack/backend/internal/infrastructure/persistence"
)

func main() {
	var (
		logLevel string
		drop     bool
	)
	flag.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flag.BoolVar(&drop, "drop", false, "Drop all tracked tables before migrating")
	flag.Parse()

	log, err := logger.New(&logger.Config{
		Level:  logLevel,
		Format: "console",
		Output: "stdout",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync(log)
	}()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration", zap.Error(err))
	}

	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(logLevel))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if drop {
		log.Warn("Dropping tracked tables")
		if err := db.DropTables(); err != nil {
			log.Fatal("Failed to drop tables", zap.Error(err))
		}
	}

	log.Info("Running migrations", zap.String("driver", cfg.Database.Driver))

	if err := db.Migrate(); err != nil {
		log.Fatal("Migration failed", zap.Error(err))
	}

	log.Info("Migrations applied successfully")
}
