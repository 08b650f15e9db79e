package router

import (
	"fmt"

	playlisthdl "github.com/anurag2169/RiseStream-backend/internal/api/playlist/handler"
	playlistsvc "github.com/anurag2169/RiseStream-backend/internal/api/playlist/service"
	apirouter "github.com/anurag2169/RiseStream-backend/internal/api/router"

	"github.com/gofiber/fiber/v3"
)

// Register mounts /playlist on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	svc, err := playlistsvc.NewPlaylistService()
	if err != nil {
		return fmt.Errorf("create playlist service: %w", err)
	}
	Mount(r.Protected(v1, "/playlist"), playlisthdl.NewPlaylistHandler(svc))
	return nil
}

func Mount(playlists fiber.Router, h *playlisthdl.PlaylistHandler) {
	playlists.Post("/", h.Create)
	playlists.Get("/user/:userId", h.ListByOwner)
	playlists.Patch("/add/:videoId/:playlistId", h.AddVideo)
	playlists.Patch("/remove/:videoId/:playlistId", h.RemoveVideo)
	playlists.Get("/:playlistId", h.GetByID)
	playlists.Patch("/:playlistId", h.Update)
	playlists.Delete("/:playlistId", h.Delete)
}
