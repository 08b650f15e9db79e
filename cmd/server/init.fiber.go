package main

import (
	"fmt"
	"time"

	"github.com/anurag2169/RiseStream-backend/config"
	basehdl "github.com/anurag2169/RiseStream-backend/internal/api/base/handler"
	"github.com/anurag2169/RiseStream-backend/internal/api/middleware"
	"github.com/anurag2169/RiseStream-backend/internal/common"
	"github.com/anurag2169/RiseStream-backend/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/limiter"
	"github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"
)

const healthPath = "/api/v1/healthcheck"

// cachedPaths are the list endpoints served through the response cache.
var cachedPaths = []string{"/api/v1/videos", "/api/v1/search"}

// InitFiberApp builds the app with the global middleware stack. Routes are
// mounted separately by SetupRoutes.
func InitFiberApp(cfg *config.Configuration) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:       cfg.AppName,
		ServerHeader:  cfg.AppName,
		StrictRouting: false, // group roots are registered as "/"
		CaseSensitive: true,
		UnescapePath:  true,

		BodyLimit:       cfg.BodyLimitMB * 1024 * 1024,
		ReadBufferSize:  8192,
		WriteBufferSize: 4096,

		ReadTimeout:  5 * time.Minute, // multipart video uploads
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  120 * time.Second,

		ErrorHandler: basehdl.ErrorHandler,
	})

	app.Use(requestid.New(requestid.Config{
		Header:    "X-Request-ID",
		Generator: uuid.NewString,
	}))

	// CORS first so preflight requests never reach auth
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.AllowedOrigins(),
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"Authorization",
			"X-Request-ID",
			"X-Requested-With",
		},
		AllowCredentials: cfg.CORS_AllowCredentials,
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID", "X-Cache"},
		MaxAge:           24 * 60 * 60,
	}))

	app.Use(func(c fiber.Ctx) error {
		c.Set("X-Content-Type-Options", "nosniff")
		c.Set("X-Frame-Options", "DENY")
		c.Set("X-XSS-Protection", "1; mode=block")
		c.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		return c.Next()
	})

	log := logger.GetAppLogger()
	if cfg.RateLimit_Enabled && cfg.RateLimit_Max > 0 {
		app.Use(limiter.New(limiter.Config{
			Max:        cfg.RateLimit_Max,
			Expiration: time.Duration(cfg.RateLimit_Window) * time.Second,
			KeyGenerator: func(c fiber.Ctx) string {
				return c.IP()
			},
			LimitReached: func(c fiber.Ctx) error {
				return middleware.HandleErrorResponse(c,
					common.NewError(common.ErrCodeRateLimit, common.MsgTooManyRequests, common.StatusTooManyRequests, nil))
			},
			Next: func(c fiber.Ctx) bool {
				return c.Path() == healthPath || c.Method() == fiber.MethodOptions
			},
		}))
		log.Infof("Rate limiting enabled: %d requests per %d seconds", cfg.RateLimit_Max, cfg.RateLimit_Window)
	} else {
		log.Info("Rate limiting disabled")
	}

	app.Use(recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c fiber.Ctx, e interface{}) {
			logger.WithRequest(c).WithField("panic", fmt.Sprintf("%v", e)).Error("Panic recovered")
		},
	}))

	return app
}

// NewResponseCache returns the cache middleware for cachedPaths, or nil when
// CACHE_EXPIRATION_SEC is 0.
func NewResponseCache(cfg *config.Configuration, storage fiber.Storage) fiber.Handler {
	if cfg.CacheExpirationSec <= 0 {
		return nil
	}
	return middleware.ResponseCache(storage, time.Duration(cfg.CacheExpirationSec)*time.Second, cachedPaths...)
}
