package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	commentrouter "github.com/anurag2169/RiseStream-backend/internal/api/comment/router"
	dashboardrouter "github.com/anurag2169/RiseStream-backend/internal/api/dashboard/router"
	likerouter "github.com/anurag2169/RiseStream-backend/internal/api/like/router"
	"github.com/anurag2169/RiseStream-backend/internal/api/middleware"
	playlistrouter "github.com/anurag2169/RiseStream-backend/internal/api/playlist/router"
	apirouter "github.com/anurag2169/RiseStream-backend/internal/api/router"
	searchrouter "github.com/anurag2169/RiseStream-backend/internal/api/search/router"
	subscriptionrouter "github.com/anurag2169/RiseStream-backend/internal/api/subscription/router"
	videorouter "github.com/anurag2169/RiseStream-backend/internal/api/video/router"
	"github.com/anurag2169/RiseStream-backend/internal/cache"
	"github.com/anurag2169/RiseStream-backend/internal/database"
	"github.com/anurag2169/RiseStream-backend/internal/global"
	"github.com/anurag2169/RiseStream-backend/internal/logger"
	"github.com/anurag2169/RiseStream-backend/internal/media"
	"github.com/anurag2169/RiseStream-backend/internal/worker"

	"github.com/gofiber/fiber/v3"
)

func initLogger() {
	if err := logger.Init(nil); err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	logger.GetAppLogger().Info("Logger system initialized successfully")
}

// initCacheStorage connects the Redis storage when REDIS_ADDR is set.
// A nil storage keeps the response cache in memory.
func initCacheStorage(ctx context.Context) (fiber.Storage, func()) {
	cfg := global.MongoDB_ServerConfig
	if cfg.RedisAddr == "" || cfg.CacheExpirationSec <= 0 {
		return nil, func() {}
	}

	log := logger.GetAppLogger()
	storage, err := cache.NewStorage(ctx, cache.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
		Prefix:   "risestream:",
	})
	if err != nil {
		log.WithError(err).Warn("Redis unavailable, response cache stays in memory")
		return nil, func() {}
	}
	log.WithField("addr", cfg.RedisAddr).Info("Response cache backed by Redis")
	return storage, func() {
		if err := storage.Close(); err != nil {
			log.WithError(err).Warn("Failed to close Redis storage")
		}
	}
}

func run() error {
	if err := InitGlobal(); err != nil {
		return err
	}
	cfg := global.MongoDB_ServerConfig
	if err := InitCollections(global.MongoDB_Session, cfg); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	uploader, err := media.NewUploader(ctx, cfg)
	if err != nil {
		return fmt.Errorf("init media uploader: %w", err)
	}

	sweeper := worker.NewUploadCleanupWorker(cfg.UploadTmpDir,
		time.Duration(cfg.UploadSweepSec)*time.Second, time.Duration(cfg.UploadMaxAgeSec)*time.Second)
	go sweeper.Start(ctx)

	storage, closeStorage := initCacheStorage(ctx)
	defer closeStorage()

	app := InitFiberApp(cfg)
	deps := apirouter.Dependencies{
		Auth:     middleware.AuthMiddleware(middleware.NewJWTVerifier(cfg.AccessTokenSecret)),
		Cache:    NewResponseCache(cfg, storage),
		Uploader: uploader,
		DB:       global.MongoDB_Session,
	}
	err = apirouter.SetupRoutes(app, deps,
		apirouter.RegisterSystem,
		videorouter.Register,
		commentrouter.Register,
		likerouter.Register,
		subscriptionrouter.Register,
		playlistrouter.Register,
		dashboardrouter.Register,
		searchrouter.Register,
	)
	if err != nil {
		return fmt.Errorf("setup routes: %w", err)
	}

	log := logger.GetAppLogger()
	errCh := make(chan error, 1)
	go func() {
		log.WithField("address", cfg.Address).Info("Starting server with HTTP")
		errCh <- app.Listen(cfg.Address, fiber.ListenConfig{DisableStartupMessage: true})
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.WithError(err).Error("Server shutdown failed")
	}
	return database.CloseInstance(shutdownCtx, global.MongoDB_Session)
}

func main() {
	initLogger()
	defer logger.Close()

	if err := run(); err != nil {
		logger.GetAppLogger().WithError(err).Error("Server stopped")
		logger.Close()
		os.Exit(1)
	}
}
