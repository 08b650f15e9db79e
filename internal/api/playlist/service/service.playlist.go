package playlistsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	basesvc "github.com/anurag2169/RiseStream-backend/internal/api/base/service"
	playlistdto "github.com/anurag2169/RiseStream-backend/internal/api/playlist/dto"
	playlistmodels "github.com/anurag2169/RiseStream-backend/internal/api/playlist/models"
	videomodels "github.com/anurag2169/RiseStream-backend/internal/api/video/models"
	"github.com/anurag2169/RiseStream-backend/internal/common"
	"github.com/anurag2169/RiseStream-backend/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrPlaylistNotFound = common.NewNotFoundError("Playlist not found")
	ErrAlreadyMember    = common.NewConflictError("Video is already in the playlist")
	ErrNotMember        = common.NewNotFoundError("Video not found in the playlist")
)

// PlaylistService manages playlists and their membership.
type PlaylistService struct {
	store PlaylistStore
}

func NewPlaylistService() (*PlaylistService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Playlists)
	if !exist {
		return nil, fmt.Errorf("failed to get playlists collection: %w", common.ErrNotFound)
	}
	store := &mongoPlaylistStore{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[playlistmodels.Playlist](collection)}
	return NewPlaylistServiceWithStore(store), nil
}

func NewPlaylistServiceWithStore(store PlaylistStore) *PlaylistService {
	return &PlaylistService{store: store}
}

func (s *PlaylistService) Create(ctx context.Context, owner primitive.ObjectID, input playlistdto.PlaylistInput) (playlistmodels.Playlist, error) {
	name, description, err := clean(input)
	if err != nil {
		return playlistmodels.Playlist{}, err
	}
	return s.store.InsertOne(ctx, playlistmodels.Playlist{
		Name:        name,
		Description: description,
		Videos:      []primitive.ObjectID{},
		Owner:       owner,
	})
}

func (s *PlaylistService) Update(ctx context.Context, id primitive.ObjectID, input playlistdto.PlaylistInput) (playlistmodels.Playlist, error) {
	name, description, err := clean(input)
	if err != nil {
		return playlistmodels.Playlist{}, err
	}
	playlist, err := s.store.UpdateById(ctx, id, basesvc.UpdateData{Set: map[string]interface{}{
		"name":        name,
		"description": description,
	}})
	return playlist, notFound(err)
}

func (s *PlaylistService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return notFound(s.store.DeleteById(ctx, id))
}

// ListByOwner returns the owner's playlists with member videos in playlist order.
func (s *PlaylistService) ListByOwner(ctx context.Context, owner primitive.ObjectID) ([]playlistmodels.PlaylistSummary, error) {
	playlists, err := s.store.AggregateSummaries(ctx, ownerPlaylistsPipeline(owner))
	if err != nil {
		return nil, err
	}
	for i := range playlists {
		playlists[i].Videos = orderByMembers(playlists[i].Members, playlists[i].Videos,
			func(v videomodels.Video) primitive.ObjectID { return v.ID })
	}
	return playlists, nil
}

// GetByID returns a playlist whose videos each carry their owner profile.
func (s *PlaylistService) GetByID(ctx context.Context, id primitive.ObjectID) (playlistmodels.PlaylistDetail, error) {
	playlists, err := s.store.AggregateDetails(ctx, playlistDetailPipeline(id))
	if err != nil {
		return playlistmodels.PlaylistDetail{}, err
	}
	if len(playlists) == 0 {
		return playlistmodels.PlaylistDetail{}, ErrPlaylistNotFound
	}
	playlist := playlists[0]
	playlist.Videos = orderByMembers(playlist.Members, playlist.Videos,
		func(v videomodels.VideoView) primitive.ObjectID { return v.ID })
	return playlist, nil
}

// AddVideo appends video to the playlist. The membership test is part of
// the update filter, so two concurrent adds cannot both succeed.
func (s *PlaylistService) AddVideo(ctx context.Context, id, video primitive.ObjectID) (playlistmodels.Playlist, error) {
	playlist, err := s.store.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "videos": bson.M{"$ne": video}},
		basesvc.UpdateData{Push: map[string]interface{}{"videos": video}},
	)
	if errors.Is(err, common.ErrNotFound) {
		return playlist, s.explainMiss(ctx, id, ErrAlreadyMember)
	}
	return playlist, err
}

// RemoveVideo drops video from the playlist.
func (s *PlaylistService) RemoveVideo(ctx context.Context, id, video primitive.ObjectID) (playlistmodels.Playlist, error) {
	playlist, err := s.store.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "videos": video},
		basesvc.UpdateData{Pull: map[string]interface{}{"videos": video}},
	)
	if errors.Is(err, common.ErrNotFound) {
		return playlist, s.explainMiss(ctx, id, ErrNotMember)
	}
	return playlist, err
}

// explainMiss returns ErrPlaylistNotFound when the playlist is gone and
// otherwise the membership error.
func (s *PlaylistService) explainMiss(ctx context.Context, id primitive.ObjectID, membership error) error {
	exists, err := s.store.DocumentExists(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if !exists {
		return ErrPlaylistNotFound
	}
	return membership
}

func clean(input playlistdto.PlaylistInput) (string, string, error) {
	name := strings.TrimSpace(input.Name)
	description := strings.TrimSpace(input.Description)
	if name == "" {
		return "", "", common.NewValidationError("Please give a playlist name", nil)
	}
	if description == "" {
		return "", "", common.NewValidationError("Please give a proper description", nil)
	}
	return name, description, nil
}

func notFound(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return ErrPlaylistNotFound
	}
	return err
}
