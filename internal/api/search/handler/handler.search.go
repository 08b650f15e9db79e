package searchhdl

import (
	"context"

	basehdl "github.com/anurag2169/RiseStream-backend/internal/api/base/handler"
	searchsvc "github.com/anurag2169/RiseStream-backend/internal/api/search/service"

	"github.com/gofiber/fiber/v3"
)

type SearchService interface {
	Search(ctx context.Context, query string) (searchsvc.Results, error)
}

type SearchHandler struct {
	*basehdl.BaseHandler
	svc SearchService
}

func NewSearchHandler(svc SearchService) *SearchHandler {
	return &SearchHandler{BaseHandler: basehdl.NewBaseHandler(), svc: svc}
}

// Search handles GET /search?query=.
func (h *SearchHandler) Search(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ctx, cancel := h.RequestContext(c)
		defer cancel()
		results, err := h.svc.Search(ctx, c.Query("query"))
		return h.HandleResponse(c, results, "Search successful", err)
	})
}
