package commentsvc

import (
	"context"

	basesvc "github.com/anurag2169/RiseStream-backend/internal/api/base/service"
	commentmodels "github.com/anurag2169/RiseStream-backend/internal/api/comment/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// CommentStore is the persistence the comment service needs.
type CommentStore interface {
	InsertOne(ctx context.Context, data commentmodels.Comment) (commentmodels.Comment, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (commentmodels.Comment, error)
	FindOneAndUpdate(ctx context.Context, filter interface{}, update basesvc.UpdateData) (commentmodels.Comment, error)
	DeleteOne(ctx context.Context, filter interface{}) (int64, error)
	AggregateViews(ctx context.Context, pipeline mongo.Pipeline) ([]commentmodels.CommentView, error)
}

type mongoCommentStore struct {
	*basesvc.BaseServiceMongoImpl[commentmodels.Comment]
}

func (s *mongoCommentStore) AggregateViews(ctx context.Context, pipeline mongo.Pipeline) ([]commentmodels.CommentView, error) {
	views := []commentmodels.CommentView{}
	if err := s.Aggregate(ctx, pipeline, &views); err != nil {
		return nil, err
	}
	return views, nil
}
