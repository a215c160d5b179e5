package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	"github.com/pressroom/pressroom/internal/adapter/blob"
	"github.com/pressroom/pressroom/internal/adapter/cache"
	httpadapter "github.com/pressroom/pressroom/internal/adapter/http"
	"github.com/pressroom/pressroom/internal/adapter/http/middleware"
	"github.com/pressroom/pressroom/internal/adapter/persistence"
	"github.com/pressroom/pressroom/internal/config"
	"github.com/pressroom/pressroom/internal/ports"
	"github.com/pressroom/pressroom/internal/service/jwt"
	"github.com/pressroom/pressroom/internal/service/logger"
	"github.com/pressroom/pressroom/internal/service/password"
	"github.com/pressroom/pressroom/internal/usecase"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	structuredLogger := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: "pressroom",
	})
	structuredLogger.Info(ctx, "application starting", map[string]interface{}{
		"env": cfg.Environment,
	})

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}
	structuredLogger.Info(ctx, "database connection established", nil)

	// Feed cache is optional: when Redis is down or disabled the reading
	// surface hits the database directly.
	var feedCache ports.FeedCache
	if cfg.FeedCacheEnabled {
		redisCache, err := cache.NewRedisFeedCache(cfg.RedisURL, structuredLogger)
		if err != nil {
			structuredLogger.Warn(ctx, "feed cache unavailable, serving uncached", map[string]interface{}{
				"error": err.Error(),
			})
		} else {
			defer redisCache.Close()
			feedCache = redisCache
		}
	}

	tokenService, err := jwt.NewJWTService(cfg.JWTSecret, cfg.AccessTokenTTL)
	if err != nil {
		log.Fatalf("Failed to initialize token service: %v", err)
	}
	passwordService := password.NewBcryptService(cfg.BcryptCost)
	blobStore := blob.NewHTTPUploader(cfg.UploadURL, cfg.UploadPreset)

	articleRepo := persistence.NewPostgresArticleRepository(db)
	categoryRepo := persistence.NewPostgresCategoryRepository(db)
	profileRepo := persistence.NewPostgresProfileRepository(db)

	sessionUseCase := usecase.NewSessionUseCase(profileRepo, structuredLogger)
	authUseCase := usecase.NewAuthUseCase(profileRepo, passwordService, tokenService)
	articleUseCase := usecase.NewArticleUseCase(articleRepo, categoryRepo, blobStore)
	workflowUseCase := usecase.NewWorkflowUseCase(articleRepo, feedCache, structuredLogger)
	readerUseCase := usecase.NewReaderUseCase(articleRepo, feedCache, structuredLogger)
	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, structuredLogger)

	authMiddleware := middleware.NewAuthMiddleware(tokenService, sessionUseCase)

	server := httpadapter.NewServer(
		httpadapter.ServerConfig{
			Port:         cfg.ServerPort,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
		},
		structuredLogger,
		httpadapter.NewAuthHandler(authUseCase),
		httpadapter.NewArticleHandler(articleUseCase, workflowUseCase, readerUseCase, authMiddleware),
		httpadapter.NewCategoryHandler(categoryUseCase, authMiddleware),
		httpadapter.NewFeedHandler(readerUseCase),
	)

	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		structuredLogger.Error(shutdownCtx, "graceful shutdown failed", err, nil)
	}
	structuredLogger.Info(ctx, "application stopped", nil)
}
