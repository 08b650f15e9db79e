package playlistsvc

import (
	"context"

	basesvc "github.com/anurag2169/RiseStream-backend/internal/api/base/service"
	playlistmodels "github.com/anurag2169/RiseStream-backend/internal/api/playlist/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type PlaylistStore interface {
	InsertOne(ctx context.Context, data playlistmodels.Playlist) (playlistmodels.Playlist, error)
	FindOneAndUpdate(ctx context.Context, filter interface{}, update basesvc.UpdateData) (playlistmodels.Playlist, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, update basesvc.UpdateData) (playlistmodels.Playlist, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error
	DocumentExists(ctx context.Context, filter interface{}) (bool, error)
	AggregateSummaries(ctx context.Context, pipeline mongo.Pipeline) ([]playlistmodels.PlaylistSummary, error)
	AggregateDetails(ctx context.Context, pipeline mongo.Pipeline) ([]playlistmodels.PlaylistDetail, error)
}

type mongoPlaylistStore struct {
	*basesvc.BaseServiceMongoImpl[playlistmodels.Playlist]
}

func (s *mongoPlaylistStore) AggregateSummaries(ctx context.Context, pipeline mongo.Pipeline) ([]playlistmodels.PlaylistSummary, error) {
	out := []playlistmodels.PlaylistSummary{}
	if err := s.Aggregate(ctx, pipeline, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *mongoPlaylistStore) AggregateDetails(ctx context.Context, pipeline mongo.Pipeline) ([]playlistmodels.PlaylistDetail, error) {
	out := []playlistmodels.PlaylistDetail{}
	if err := s.Aggregate(ctx, pipeline, &out); err != nil {
		return nil, err
	}
	return out, nil
}
