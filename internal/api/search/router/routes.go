package router

import (
	"fmt"

	apirouter "github.com/anurag2169/RiseStream-backend/internal/api/router"
	searchhdl "github.com/anurag2169/RiseStream-backend/internal/api/search/handler"
	searchsvc "github.com/anurag2169/RiseStream-backend/internal/api/search/service"

	"github.com/gofiber/fiber/v3"
)

// Register mounts /search on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	svc, err := searchsvc.NewSearchService()
	if err != nil {
		return fmt.Errorf("create search service: %w", err)
	}
	h := searchhdl.NewSearchHandler(svc)
	r.Protected(v1, "/search").Get("/", h.Search)
	return nil
}
