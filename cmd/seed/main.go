package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/packtrack/backend/internal/domain/belonging"
	"github.com/packtrack/backend/internal/infrastructure/config"
	"github.com/packtrack/backend/internal/infrastructure/logger"
	"github.com/packtrack/backend/internal/infrastructure/persistence"
)

type seedItem struct {
	name     string
	category string
	tags     belonging.Tags
	status   belonging.Status
}

var sampleBelongings = []seedItem{
	{"Laptop", "electronics", belonging.Tags{"essential", "work", "fragile"}, belonging.StatusUnpacked},
	{"Winter Jacket", "clothes", nil, belonging.StatusPacked},
	{"Passport", "documents", belonging.Tags{"essential"}, belonging.StatusUnpacked},
	{"Phone Charger", "electronics", belonging.Tags{"essential"}, belonging.StatusPacked},
	{"Textbooks", "books", nil, belonging.StatusUnpacked},
	{"Bedsheets", "bedding", nil, belonging.StatusPacked},
}

func main() {
	var force bool
	flag.BoolVar(&force, "force", false, "Seed even when belongings already exist")
	flag.Parse()

	log, err := logger.New(logger.DefaultConfig())
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

	db, err := persistence.NewDatabase(&cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()

	if err := db.Migrate(); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}

	ctx := context.Background()
	repo := persistence.NewGormBelongingRepository(db.DB)

	existing, err := repo.FindAll(ctx, belonging.Filter{})
	if err != nil {
		log.Fatal("Failed to check existing belongings", zap.Error(err))
	}
	if len(existing) > 0 && !force {
		log.Info("Belongings already present, skipping seed", zap.Int("count", len(existing)))
		return
	}

	items := make([]*belonging.Belonging, 0, len(sampleBelongings))
	for _, s := range sampleBelongings {
		b, err := belonging.NewBelonging(s.name, s.category, s.tags, s.status)
		if err != nil {
			log.Fatal("Invalid seed item", zap.String("name", s.name), zap.Error(err))
		}
		items = append(items, b)
	}

	if err := repo.SaveBatch(ctx, items); err != nil {
		log.Fatal("Failed to seed belongings", zap.Error(err))
	}

	log.Info("Seed data inserted", zap.Int("count", len(items)))
}
