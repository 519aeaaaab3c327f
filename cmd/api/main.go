package main

// @title Places Microservice API
// @version 1.0.0
// @description Сервис превращает свободный текст в список реальных мест. Пайплайн: классификация намерения в категорию из закрытого набора (удалённый классификатор с локальным fallback), затем поиск мест через Overpass API с деградацией до статических примеров.

// @contact.name API Support
// @contact.email support@places-microservice.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/places-microservice/docs"
	"github.com/places-microservice/internal/config"
	httpDelivery "github.com/places-microservice/internal/delivery/http"
	"github.com/places-microservice/internal/delivery/http/handler"
	"github.com/places-microservice/internal/domain/repository"
	"github.com/places-microservice/internal/infrastructure/gemini"
	"github.com/places-microservice/internal/infrastructure/huggingface"
	"github.com/places-microservice/internal/infrastructure/overpass"
	"github.com/places-microservice/internal/pkg/logger"
	"github.com/places-microservice/internal/repository/cache"
	"github.com/places-microservice/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Places Microservice")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
		zap.String("classifier_provider", cfg.Classifier.Provider),
	)

	// 3. Remote classifier (по выбранному провайдеру)
	var remoteClassifier repository.IntentClassifier
	switch cfg.Classifier.Provider {
	case "huggingface":
		remoteClassifier = huggingface.NewClient(&cfg.Classifier, log)
	case "gemini":
		remoteClassifier, err = gemini.NewClient(context.Background(), &cfg.Classifier, log)
		if err != nil {
			log.Fatal("Failed to initialize Gemini classifier", zap.Error(err))
		}
	case "local":
		// Только локальная классификация, без удалённых вызовов
		remoteClassifier = nil
	default:
		log.Fatal("Unknown classifier provider",
			zap.String("provider", cfg.Classifier.Provider))
	}

	localClassifier := usecase.NewLocalClassifier(log)

	// 4. Overpass client
	overpassRepo := overpass.NewClient(&cfg.Overpass, log)

	// 5. Optional Redis cache
	var cacheRepo repository.CacheRepository
	if cfg.CacheEnabled() {
		redisConn, err := cache.NewRedis(&cfg.Redis, log)
		if err != nil {
			log.Fatal("Failed to connect to Redis", zap.Error(err))
		}
		defer func() {
			if err := redisConn.Close(); err != nil {
				log.Error("Failed to close Redis connection", zap.Error(err))
			}
		}()

		cacheRepo = cache.NewCacheRepository(redisConn)
		log.Info("Search response cache enabled",
			zap.Duration("ttl", cfg.Cache.SearchTTL))
	}

	log.Info("Repositories initialized")

	// 6. Initialize Use Cases
	interpretUC := usecase.NewInterpretUseCase(
		remoteClassifier,
		localClassifier,
		log,
		time.Duration(cfg.Classifier.RequestTimeout)*time.Second,
	)

	placesUC := usecase.NewPlacesUseCase(
		overpassRepo,
		cacheRepo,
		log,
		cfg.Cache.SearchTTL,
		cfg.Overpass.ResultLimit,
	)

	log.Info("Use cases initialized")

	// 7. Initialize HTTP Handlers
	interpretHandler := handler.NewInterpretHandler(interpretUC, log)
	placesHandler := handler.NewPlacesHandler(placesUC, log)
	searchHandler := handler.NewSearchHandler(interpretUC, placesUC, log)

	// 8. Initialize HTTP Server
	server := httpDelivery.NewServer(
		cfg,
		log,
		interpretHandler,
		placesHandler,
		searchHandler,
	)

	// 9. Start server in goroutine
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	log.Info("Server started successfully",
		zap.String("address", cfg.GetServerAddr()),
		zap.String("env", cfg.Server.Env),
	)

	// 10. Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Error("Server shutdown error", zap.Error(err))
	}

	log.Info("Server stopped successfully")
}
