package middleware

import (
	"time"

	"github.com/anurag2169/RiseStream-backend/internal/logger"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cache"
)

// CacheKey scopes cached responses to the actor and the full URL.
func CacheKey(c fiber.Ctx) string {
	userID, _ := c.Locals(logger.UserIDLocal).(string)
	return "rs:" + userID + ":" + c.OriginalURL()
}

// ResponseCache caches GET responses for the listed paths only.
// A nil storage keeps entries in memory.
func ResponseCache(storage fiber.Storage, expiration time.Duration, paths ...string) fiber.Handler {
	allowed := make(map[string]bool, len(paths))
	for _, p := range paths {
		allowed[p] = true
	}

	cfg := cache.Config{
		Expiration:   expiration,
		CacheHeader:  "X-Cache",
		KeyGenerator: CacheKey,
		Next: func(c fiber.Ctx) bool {
			return !allowed[c.Path()]
		},
	}
	if storage != nil {
		cfg.Storage = storage
	}
	return cache.New(cfg)
}
