package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	_ "github.com/lib/pq"

	"github.com/pressroom/pressroom/internal/adapter/persistence"
	"github.com/pressroom/pressroom/internal/config"
	"github.com/pressroom/pressroom/internal/service/logger"
	"github.com/pressroom/pressroom/internal/usecase"
)

// Seeds the default categories. Run once at deployment; the bootstrap is
// idempotent and does nothing when the registry already has entries.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	structuredLogger := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "pressroom-seed",
	})

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	categoryRepo := persistence.NewPostgresCategoryRepository(db)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, structuredLogger)

	seeded, err := categoryUseCase.Bootstrap(ctx)
	if err != nil {
		log.Fatalf("Bootstrap failed: %v", err)
	}

	log.Printf("Bootstrap complete, %d categories seeded", seeded)
}
