package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"hexforge/cryptohub/internal/config"
	"hexforge/cryptohub/internal/handler"
	"hexforge/cryptohub/internal/metrics"
	"hexforge/cryptohub/internal/repository"
	"hexforge/cryptohub/internal/service"
	cryptopkg "hexforge/cryptohub/pkg/crypto"
)

const version = "0.1.0"

func main() {
	// 1. Load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// 2. Initialize logger
	logger, err := newLogger(cfg.Log)
	if err != nil {
		log.Fatalf("failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// 3. Initialize key-value store (memory or Redis)
	var store repository.KVStore
	switch cfg.Store.Backend {
	case "redis":
		store = repository.NewRedisKVStore(config.NewRedisClient(cfg.Redis))
		logger.Info("using Redis key-value store")
	case "memory":
		store = repository.NewMemoryKVStore()
		logger.Info("using in-memory key-value store")
	default:
		logger.Fatal("unknown store backend", zap.String("backend", cfg.Store.Backend))
	}

	// 4. Initialize crypto service
	cryptoService := service.NewCryptoService(cryptopkg.New())

	// 5. Initialize metrics
	m := metrics.New()

	// 6. Initialize handlers
	healthHandler := handler.NewHealthHandler(version)
	cryptoHandler := handler.NewCryptoHandler(cryptoService, m, logger)
	dataHandler := handler.NewDataHandler(store, logger)

	// 7. Setup router
	router := handler.SetupRouter(cfg, logger, m, healthHandler, cryptoHandler, dataHandler)

	// 8. Create HTTP server
	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	// 9. Start server with graceful shutdown
	go func() {
		logger.Info("server starting", zap.String("addr", addr), zap.String("version", version))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// 10. Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.GracefulShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}
	logger.Info("server exited gracefully")
}

func newLogger(cfg config.LogConfig) (*zap.Logger, error) {
	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q: %w", cfg.Level, err)
	}

	var zapCfg zap.Config
	if cfg.Format == "json" {
		zapCfg = zap.NewProductionConfig()
	} else {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)
	return zapCfg.Build()
}
