package router

import (
	"fmt"

	commenthdl "github.com/anurag2169/RiseStream-backend/internal/api/comment/handler"
	commentsvc "github.com/anurag2169/RiseStream-backend/internal/api/comment/service"
	apirouter "github.com/anurag2169/RiseStream-backend/internal/api/router"
	videosvc "github.com/anurag2169/RiseStream-backend/internal/api/video/service"

	"github.com/gofiber/fiber/v3"
)

// Register mounts /comments on v1.
func Register(v1 fiber.Router, r *apirouter.Router) error {
	videos, err := videosvc.NewVideoService(r.Uploader())
	if err != nil {
		return fmt.Errorf("create video service: %w", err)
	}
	svc, err := commentsvc.NewCommentService(videos)
	if err != nil {
		return fmt.Errorf("create comment service: %w", err)
	}
	Mount(r.Protected(v1, "/comments"), commenthdl.NewCommentHandler(svc))
	return nil
}

func Mount(comments fiber.Router, h *commenthdl.CommentHandler) {
	comments.Get("/:videoId", h.List)
	comments.Post("/:videoId", h.Add)
	comments.Patch("/c/:commentId", h.Update)
	comments.Delete("/c/:commentId", h.Delete)
}
