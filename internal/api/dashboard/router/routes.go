package router

import (
	"fmt"

	dashboardhdl "github.com/anurag2169/RiseStream-backend/internal/api/dashboard/handler"
	dashboardsvc "github.com/anurag2169/RiseStream-backend/internal/api/dashboard/service"
	apirouter "github.com/anurag2169/RiseStream-backend/internal/api/router"

	"github.com/gofiber/fiber/v3"
)

// Register mounts /dashboard on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	svc, err := dashboardsvc.NewDashboardService()
	if err != nil {
		return fmt.Errorf("create dashboard service: %w", err)
	}
	Mount(r.Protected(v1, "/dashboard"), dashboardhdl.NewDashboardHandler(svc))
	return nil
}

func Mount(dashboard fiber.Router, h *dashboardhdl.DashboardHandler) {
	dashboard.Get("/stats", h.Stats)
	dashboard.Get("/videos", h.Videos)
}
