package dashboardhdl

import (
	"context"

	basehdl "github.com/anurag2169/RiseStream-backend/internal/api/base/handler"
	dashboardmodels "github.com/anurag2169/RiseStream-backend/internal/api/dashboard/models"
	"github.com/anurag2169/RiseStream-backend/internal/common"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type DashboardService interface {
	ChannelStats(ctx context.Context, owner primitive.ObjectID) (dashboardmodels.ChannelStats, error)
}

type DashboardHandler struct {
	*basehdl.BaseHandler
	svc DashboardService
}

func NewDashboardHandler(svc DashboardService) *DashboardHandler {
	return &DashboardHandler{BaseHandler: basehdl.NewBaseHandler(), svc: svc}
}

// Stats handles GET /dashboard/stats for the current user's channel.
func (h *DashboardHandler) Stats(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		owner, err := h.CurrentUserID(c)
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		ctx, cancel := h.RequestContext(c)
		defer cancel()
		stats, err := h.svc.ChannelStats(ctx, owner)
		return h.HandleResponse(c, stats, "Channel stats fetched successfully", err)
	})
}

// Videos handles GET /dashboard/videos.
func (h *DashboardHandler) Videos(c fiber.Ctx) error {
	return h.HandleResponse(c, nil, "", common.ErrNotImplemented)
}
