package commenthdl

import (
	"context"

	basehdl "github.com/anurag2169/RiseStream-backend/internal/api/base/handler"
	basemodels "github.com/anurag2169/RiseStream-backend/internal/api/base/models"
	commentdto "github.com/anurag2169/RiseStream-backend/internal/api/comment/dto"
	commentmodels "github.com/anurag2169/RiseStream-backend/internal/api/comment/models"
	"github.com/anurag2169/RiseStream-backend/internal/logger"
	"github.com/anurag2169/RiseStream-backend/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CommentService interface {
	ListForVideo(ctx context.Context, video primitive.ObjectID, p basemodels.Pagination) ([]commentmodels.CommentView, error)
	Add(ctx context.Context, video, owner primitive.ObjectID, content string) (commentmodels.Comment, error)
	Update(ctx context.Context, id, requester primitive.ObjectID, content string) (commentmodels.Comment, error)
	Delete(ctx context.Context, id, requester primitive.ObjectID) error
}

type CommentHandler struct {
	*basehdl.BaseHandler
	svc CommentService
}

func NewCommentHandler(svc CommentService) *CommentHandler {
	return &CommentHandler{BaseHandler: basehdl.NewBaseHandler(), svc: svc}
}

// List handles GET /comments/:videoId.
func (h *CommentHandler) List(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		video, err := utility.ParseObjectID(c.Params("videoId"), "video id")
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		ctx, cancel := h.RequestContext(c)
		defer cancel()
		comments, err := h.svc.ListForVideo(ctx, video, h.ParsePagination(c))
		return h.HandleResponse(c, comments, "Comments fetched successfully", err)
	})
}

// Add handles POST /comments/:videoId.
func (h *CommentHandler) Add(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		owner, err := h.CurrentUserID(c)
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		video, err := utility.ParseObjectID(c.Params("videoId"), "video id")
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		var input commentdto.CommentInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleResponse(c, nil, "", err)
		}

		ctx, cancel := h.RequestContext(c)
		defer cancel()
		comment, err := h.svc.Add(ctx, video, owner, input.Content)
		if err == nil {
			logger.LogAction(c, "comment.add", "comment", comment.ID.Hex(), map[string]interface{}{"video": video.Hex()})
		}
		return h.HandleCreated(c, comment, "Comment Added Successfully", err)
	})
}

// Update handles PATCH /comments/c/:commentId.
func (h *CommentHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		requester, err := h.CurrentUserID(c)
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		id, err := utility.ParseObjectID(c.Params("commentId"), "comment id")
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		var input commentdto.CommentInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleResponse(c, nil, "", err)
		}

		ctx, cancel := h.RequestContext(c)
		defer cancel()
		comment, err := h.svc.Update(ctx, id, requester, input.Content)
		if err == nil {
			logger.LogAction(c, "comment.update", "comment", id.Hex(), nil)
		}
		return h.HandleResponse(c, comment, "Comment Updated Successfully", err)
	})
}

// Delete handles DELETE /comments/c/:commentId.
func (h *CommentHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		requester, err := h.CurrentUserID(c)
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		id, err := utility.ParseObjectID(c.Params("commentId"), "comment id")
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}

		ctx, cancel := h.RequestContext(c)
		defer cancel()
		if err := h.svc.Delete(ctx, id, requester); err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		logger.LogAction(c, "comment.delete", "comment", id.Hex(), nil)
		return h.HandleResponse(c, fiber.Map{}, "Comment deleted Successfully", nil)
	})
}
