package router

import (
	"fmt"

	likehdl "github.com/anurag2169/RiseStream-backend/internal/api/like/handler"
	likesvc "github.com/anurag2169/RiseStream-backend/internal/api/like/service"
	apirouter "github.com/anurag2169/RiseStream-backend/internal/api/router"

	"github.com/gofiber/fiber/v3"
)

// Register mounts /likes on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	svc, err := likesvc.NewLikeService()
	if err != nil {
		return fmt.Errorf("create like service: %w", err)
	}
	Mount(r.Protected(v1, "/likes"), likehdl.NewLikeHandler(svc))
	return nil
}

func Mount(likes fiber.Router, h *likehdl.LikeHandler) {
	likes.Post("/toggle/v/:videoId", h.ToggleVideoLike)
	likes.Post("/toggle/c/:commentId", h.ToggleCommentLike)
	likes.Post("/toggle/t/:tweetId", h.ToggleTweetLike)
	likes.Get("/videos", h.ListLikedVideos)
}
