package videosvc

import (
	"context"

	basesvc "github.com/anurag2169/RiseStream-backend/internal/api/base/service"
	videomodels "github.com/anurag2169/RiseStream-backend/internal/api/video/models"
	"github.com/anurag2169/RiseStream-backend/internal/common"
	"github.com/anurag2169/RiseStream-backend/internal/utility"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// VideoStore is the persistence the video service needs.
type VideoStore interface {
	InsertOne(ctx context.Context, data videomodels.Video) (videomodels.Video, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (videomodels.Video, error)
	UpdateById(ctx context.Context, id primitive.ObjectID, update basesvc.UpdateData) (videomodels.Video, error)
	DeleteById(ctx context.Context, id primitive.ObjectID) error
	AggregateViews(ctx context.Context, pipeline mongo.Pipeline) ([]videomodels.VideoView, error)
	TogglePublished(ctx context.Context, id primitive.ObjectID) (videomodels.Video, error)
}

type mongoVideoStore struct {
	*basesvc.BaseServiceMongoImpl[videomodels.Video]
}

func (s *mongoVideoStore) AggregateViews(ctx context.Context, pipeline mongo.Pipeline) ([]videomodels.VideoView, error) {
	views := []videomodels.VideoView{}
	if err := s.Aggregate(ctx, pipeline, &views); err != nil {
		return nil, err
	}
	return views, nil
}

// TogglePublished flips isPublished in a single update pipeline.
func (s *mongoVideoStore) TogglePublished(ctx context.Context, id primitive.ObjectID) (videomodels.Video, error) {
	var video videomodels.Video
	update := mongo.Pipeline{{{Key: "$set", Value: bson.D{
		{Key: "isPublished", Value: bson.D{{Key: "$not", Value: bson.A{"$isPublished"}}}},
		{Key: "updatedAt", Value: utility.Now()},
	}}}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := s.Collection().FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&video)
	if err != nil {
		return video, common.ConvertMongoError(err)
	}
	return video, nil
}
