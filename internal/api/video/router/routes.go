// Package router registers the /videos routes.
package router

import (
	"fmt"

	apirouter "github.com/anurag2169/RiseStream-backend/internal/api/router"
	videohdl "github.com/anurag2169/RiseStream-backend/internal/api/video/handler"
	videosvc "github.com/anurag2169/RiseStream-backend/internal/api/video/service"

	"github.com/gofiber/fiber/v3"
)

// Register mounts the video catalog on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	svc, err := videosvc.NewVideoService(r.Uploader())
	if err != nil {
		return fmt.Errorf("create video service: %w", err)
	}
	Mount(r.Protected(v1, "/videos"), videohdl.NewVideoHandler(svc))
	return nil
}

// Mount attaches the handler's routes to an already protected group.
func Mount(videos fiber.Router, h *videohdl.VideoHandler) {
	videos.Get("/", h.ListPublished)
	videos.Post("/", h.Publish)
	videos.Get("/user/:userId", h.ListByOwner)
	videos.Patch("/toggle/publish/:videoId", h.TogglePublish)
	videos.Get("/:videoId", h.GetByID)
	videos.Patch("/:videoId", h.Update)
	videos.Delete("/:videoId", h.Delete)
}
