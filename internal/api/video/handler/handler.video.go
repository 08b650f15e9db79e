package videohdl

import (
	"context"

	basehdl "github.com/anurag2169/RiseStream-backend/internal/api/base/handler"
	basemodels "github.com/anurag2169/RiseStream-backend/internal/api/base/models"
	videodto "github.com/anurag2169/RiseStream-backend/internal/api/video/dto"
	videomodels "github.com/anurag2169/RiseStream-backend/internal/api/video/models"
	"github.com/anurag2169/RiseStream-backend/internal/logger"
	"github.com/anurag2169/RiseStream-backend/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// VideoService is implemented by videosvc.VideoService.
type VideoService interface {
	ListPublished(ctx context.Context, p basemodels.Pagination) ([]videomodels.VideoView, error)
	ListByOwner(ctx context.Context, owner primitive.ObjectID, p basemodels.Pagination) ([]videomodels.VideoView, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (videomodels.VideoView, error)
	Publish(ctx context.Context, owner primitive.ObjectID, input videodto.PublishVideoInput) (videomodels.Video, error)
	Update(ctx context.Context, id primitive.ObjectID, input videodto.UpdateVideoInput) (videomodels.Video, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	TogglePublish(ctx context.Context, id primitive.ObjectID) (videomodels.Video, error)
}

// VideoHandler serves /videos.
type VideoHandler struct {
	*basehdl.BaseHandler
	svc VideoService
}

func NewVideoHandler(svc VideoService) *VideoHandler {
	return &VideoHandler{BaseHandler: basehdl.NewBaseHandler(), svc: svc}
}

// ListPublished handles GET /videos.
func (h *VideoHandler) ListPublished(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ctx, cancel := h.RequestContext(c)
		defer cancel()
		videos, err := h.svc.ListPublished(ctx, h.ParsePagination(c))
		return h.HandleResponse(c, videos, "All Videos Get successfully", err)
	})
}

// ListByOwner handles GET /videos/user/:userId.
func (h *VideoHandler) ListByOwner(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		owner, err := utility.ParseObjectID(c.Params("userId"), "user id")
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		ctx, cancel := h.RequestContext(c)
		defer cancel()
		videos, err := h.svc.ListByOwner(ctx, owner, h.ParsePagination(c))
		return h.HandleResponse(c, videos, "All Videos Get successfully", err)
	})
}

// GetByID handles GET /videos/:videoId.
func (h *VideoHandler) GetByID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := utility.ParseObjectID(c.Params("videoId"), "video id")
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		ctx, cancel := h.RequestContext(c)
		defer cancel()
		video, err := h.svc.GetByID(ctx, id)
		return h.HandleResponse(c, video, "video get successfully", err)
	})
}

// Publish handles the multipart POST /videos.
func (h *VideoHandler) Publish(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		owner, err := h.CurrentUserID(c)
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}

		videoPath, err := h.SaveUpload(c, "videoFile")
		defer basehdl.RemoveUpload(c, videoPath)
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		thumbnailPath, err := h.SaveUpload(c, "thumbnail")
		defer basehdl.RemoveUpload(c, thumbnailPath)
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}

		input := videodto.PublishVideoInput{
			Title:         c.FormValue("title"),
			Description:   c.FormValue("description"),
			VideoPath:     videoPath,
			ThumbnailPath: thumbnailPath,
		}
		if err := h.ValidateInput(&input); err != nil {
			return h.HandleResponse(c, nil, "", err)
		}

		video, err := h.svc.Publish(c.Context(), owner, input)
		if err == nil {
			logger.LogAction(c, "video.publish", "video", video.ID.Hex(), map[string]interface{}{"title": video.Title})
		}
		return h.HandleCreated(c, video, "Video Published successfully", err)
	})
}

// Update handles the multipart PATCH /videos/:videoId.
func (h *VideoHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := utility.ParseObjectID(c.Params("videoId"), "video id")
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}

		thumbnailPath, err := h.SaveUpload(c, "thumbnail")
		defer basehdl.RemoveUpload(c, thumbnailPath)
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}

		input := videodto.UpdateVideoInput{
			Title:         c.FormValue("title"),
			Description:   c.FormValue("description"),
			ThumbnailPath: thumbnailPath,
		}
		if err := h.ValidateInput(&input); err != nil {
			return h.HandleResponse(c, nil, "", err)
		}

		video, err := h.svc.Update(c.Context(), id, input)
		if err == nil {
			logger.LogAction(c, "video.update", "video", id.Hex(), nil)
		}
		return h.HandleResponse(c, video, "Video Updated successfully", err)
	})
}

// Delete handles DELETE /videos/:videoId.
func (h *VideoHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := utility.ParseObjectID(c.Params("videoId"), "video id")
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		ctx, cancel := h.RequestContext(c)
		defer cancel()
		if err := h.svc.Delete(ctx, id); err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		logger.LogAction(c, "video.delete", "video", id.Hex(), nil)
		return h.HandleResponse(c, fiber.Map{}, "Video deleted Successfully", nil)
	})
}

// TogglePublish handles PATCH /videos/toggle/publish/:videoId.
func (h *VideoHandler) TogglePublish(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := utility.ParseObjectID(c.Params("videoId"), "video id")
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		ctx, cancel := h.RequestContext(c)
		defer cancel()
		video, err := h.svc.TogglePublish(ctx, id)
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		logger.LogAction(c, "video.toggle_publish", "video", id.Hex(), map[string]interface{}{"isPublished": video.IsPublished})
		return h.HandleResponse(c, fiber.Map{"isPublished": video.IsPublished}, "Publish status toggled successfully", nil)
	})
}
