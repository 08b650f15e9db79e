package router

import (
	basehdl "github.com/anurag2169/RiseStream-backend/internal/api/base/handler"

	"github.com/gofiber/fiber/v3"
)

// RegisterSystem mounts the public health check at /healthcheck.
func RegisterSystem(v1 fiber.Router, r *Router) error {
	var db basehdl.Pinger
	if client := r.DB(); client != nil {
		db = client
	}
	Handle(v1, fiber.MethodGet, "/healthcheck", basehdl.NewSystemHandler(db).HandleHealth)
	return nil
}
