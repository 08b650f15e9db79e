package playlisthdl

import (
	"context"

	basehdl "github.com/anurag2169/RiseStream-backend/internal/api/base/handler"
	playlistdto "github.com/anurag2169/RiseStream-backend/internal/api/playlist/dto"
	playlistmodels "github.com/anurag2169/RiseStream-backend/internal/api/playlist/models"
	"github.com/anurag2169/RiseStream-backend/internal/logger"
	"github.com/anurag2169/RiseStream-backend/internal/utility"

	"github.com/gofiber/fiber/v3"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PlaylistService interface {
	Create(ctx context.Context, owner primitive.ObjectID, input playlistdto.PlaylistInput) (playlistmodels.Playlist, error)
	Update(ctx context.Context, id primitive.ObjectID, input playlistdto.PlaylistInput) (playlistmodels.Playlist, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
	ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]playlistmodels.PlaylistSummary, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (playlistmodels.PlaylistDetail, error)
	AddVideo(ctx context.Context, id, video primitive.ObjectID) (playlistmodels.Playlist, error)
	RemoveVideo(ctx context.Context, id, video primitive.ObjectID) (playlistmodels.Playlist, error)
}

type PlaylistHandler struct {
	*basehdl.BaseHandler
	svc PlaylistService
}

func NewPlaylistHandler(svc PlaylistService) *PlaylistHandler {
	return &PlaylistHandler{BaseHandler: basehdl.NewBaseHandler(), svc: svc}
}

func playlistID(c fiber.Ctx) (primitive.ObjectID, error) {
	return utility.ParseObjectID(c.Params("playlistId"), "playlist id")
}

// membership parses /:videoId/:playlistId.
func membership(c fiber.Ctx) (playlist, video primitive.ObjectID, err error) {
	if video, err = utility.ParseObjectID(c.Params("videoId"), "video id"); err != nil {
		return
	}
	playlist, err = playlistID(c)
	return
}

// Create handles POST /playlist.
func (h *PlaylistHandler) Create(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		owner, err := h.CurrentUserID(c)
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		var input playlistdto.PlaylistInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		ctx, cancel := h.RequestContext(c)
		defer cancel()
		playlist, err := h.svc.Create(ctx, owner, input)
		if err == nil {
			logger.LogAction(c, "playlist.create", "playlist", playlist.ID.Hex(), map[string]interface{}{"name": playlist.Name})
		}
		return h.HandleCreated(c, playlist, "Playlist created successfully", err)
	})
}

// ListByOwner handles GET /playlist/user/:userId.
func (h *PlaylistHandler) ListByOwner(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		owner, err := utility.ParseObjectID(c.Params("userId"), "user id")
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		ctx, cancel := h.RequestContext(c)
		defer cancel()
		playlists, err := h.svc.ListByOwner(ctx, owner)
		return h.HandleResponse(c, playlists, "Get user playlists successfully", err)
	})
}

// GetByID handles GET /playlist/:playlistId.
func (h *PlaylistHandler) GetByID(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := playlistID(c)
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		ctx, cancel := h.RequestContext(c)
		defer cancel()
		playlist, err := h.svc.GetByID(ctx, id)
		return h.HandleResponse(c, playlist, "Get Playlist Successfully", err)
	})
}

// Update handles PATCH /playlist/:playlistId.
func (h *PlaylistHandler) Update(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := playlistID(c)
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		var input playlistdto.PlaylistInput
		if err := h.ParseRequestBody(c, &input); err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		ctx, cancel := h.RequestContext(c)
		defer cancel()
		playlist, err := h.svc.Update(ctx, id, input)
		if err == nil {
			logger.LogAction(c, "playlist.update", "playlist", id.Hex(), nil)
		}
		return h.HandleResponse(c, playlist, "Playlist details updated successfully", err)
	})
}

// Delete handles DELETE /playlist/:playlistId.
func (h *PlaylistHandler) Delete(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, err := playlistID(c)
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		ctx, cancel := h.RequestContext(c)
		defer cancel()
		if err := h.svc.Delete(ctx, id); err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		logger.LogAction(c, "playlist.delete", "playlist", id.Hex(), nil)
		return h.HandleResponse(c, fiber.Map{}, "playlist is successfully removed", nil)
	})
}

// AddVideo handles PATCH /playlist/add/:videoId/:playlistId.
func (h *PlaylistHandler) AddVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, video, err := membership(c)
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		ctx, cancel := h.RequestContext(c)
		defer cancel()
		playlist, err := h.svc.AddVideo(ctx, id, video)
		if err == nil {
			logger.LogAction(c, "playlist.add_video", "playlist", id.Hex(), map[string]interface{}{"video": video.Hex()})
		}
		return h.HandleResponse(c, playlist, "Video is added successfully in the playlist", err)
	})
}

// RemoveVideo handles PATCH /playlist/remove/:videoId/:playlistId.
func (h *PlaylistHandler) RemoveVideo(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		id, video, err := membership(c)
		if err != nil {
			return h.HandleResponse(c, nil, "", err)
		}
		ctx, cancel := h.RequestContext(c)
		defer cancel()
		playlist, err := h.svc.RemoveVideo(ctx, id, video)
		if err == nil {
			logger.LogAction(c, "playlist.remove_video", "playlist", id.Hex(), map[string]interface{}{"video": video.Hex()})
		}
		return h.HandleResponse(c, playlist, "Video is removed successfully from the playlist", err)
	})
}
