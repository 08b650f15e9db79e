package likehdl

import (
	"context"

	basehdl "github.com/anurag2169/RiseStream-backend/internal/api/base/handler"
	videomodels "github.com/anurag2169/RiseStream-backend/internal/api/video/models"
	"github.com/anurag2169/RiseStream-backend/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type LikeService interface {
	ToggleVideoLike(ctx context.Context, video, user primitive.ObjectID) (bool, error)
	ToggleCommentLike(ctx context.Context, comment, user primitive.ObjectID) (bool, error)
	ToggleTweetLike(ctx context.Context, tweet, user primitive.ObjectID) (bool, error)
	ListLikedVideos(ctx context.Context, user primitive.ObjectID) ([]videomodels.Video, error)
}

type LikeHandler struct {
	*basehdl.BaseHandler
	svc LikeService
}

func NewLikeHandler(svc LikeService) *LikeHandler {
	return &LikeHandler{BaseHandler: basehdl.NewBaseHandler(), svc: svc}
}

type toggleFunc func(ctx context.Context, target, user primitive.ObjectID) (bool, error)

// toggle runs fn on the id in param. Adding answers 201, removing 200.
func (h *LikeHandler) toggle(c fiber.Ctx, param, field, subject string, fn toggleFunc) error {
	return h.SafeHandler(c, func() error {
		user, err := h.CurrentUserID(c)
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		target, err := utility.ParseObjectID(c.Params(param), field)
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}

		ctx, cancel := h.RequestContext(c)
		defer cancel()
		liked, err := fn(ctx, target, user)
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		data := fiber.Map{"liked": liked}
		if liked {
			return h.HandleCreated(c, data, "Like Added Successfully"+subject, nil)
		}
		return h.HandleResponse(c, data, "Like Removed Successfully"+subject, nil)
	})
}

// ToggleVideoLike handles POST /likes/toggle/v/:videoId.
func (h *LikeHandler) ToggleVideoLike(c fiber.Ctx) error {
	return h.toggle(c, "videoId", "video id", "", h.svc.ToggleVideoLike)
}

// ToggleCommentLike handles POST /likes/toggle/c/:commentId.
func (h *LikeHandler) ToggleCommentLike(c fiber.Ctx) error {
	return h.toggle(c, "commentId", "comment id", " on comment", h.svc.ToggleCommentLike)
}

// ToggleTweetLike handles POST /likes/toggle/t/:tweetId.
func (h *LikeHandler) ToggleTweetLike(c fiber.Ctx) error {
	return h.toggle(c, "tweetId", "tweet id", " on tweet", h.svc.ToggleTweetLike)
}

// ListLikedVideos handles GET /likes/videos.
func (h *LikeHandler) ListLikedVideos(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		user, err := h.CurrentUserID(c)
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		ctx, cancel := h.RequestContext(c)
		defer cancel()
		videos, err := h.svc.ListLikedVideos(ctx, user)
		return h.HandleResponse(c, videos, "Liked videos fetched successfully", err)
	})
}
