package commentsvc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	basemodels "github.com/anurag2169/RiseStream-backend/internal/api/base/models"
	basesvc "github.com/anurag2169/RiseStream-backend/internal/api/base/service"
	commentmodels "github.com/anurag2169/RiseStream-backend/internal/api/comment/models"
	usermodels "github.com/anurag2169/RiseStream-backend/internal/api/user/models"
	"github.com/anurag2169/RiseStream-backend/internal/common"
	"github.com/anurag2169/RiseStream-backend/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

var (
	ErrCommentNotFound = common.NewNotFoundError("comment not found")
	ErrVideoNotFound   = common.NewNotFoundError("Video not found")
	ErrNotOwner        = common.NewPermissionError("You are not the owner of this comment")
)

// VideoChecker tells whether a video exists. videosvc.VideoService implements it.
type VideoChecker interface {
	Exists(ctx context.Context, id primitive.ObjectID) (bool, error)
}

// CommentService manages comments on videos.
type CommentService struct {
	store  CommentStore
	videos VideoChecker
}

func NewCommentService(videos VideoChecker) (*CommentService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Comments)
	if !exist {
		return nil, fmt.Errorf("failed to get comments collection: %w", common.ErrNotFound)
	}
	store := &mongoCommentStore{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[commentmodels.Comment](collection)}
	return NewCommentServiceWithStore(store, videos), nil
}

func NewCommentServiceWithStore(store CommentStore, videos VideoChecker) *CommentService {
	return &CommentService{store: store, videos: videos}
}

func videoCommentsPipeline(video primitive.ObjectID, p basemodels.Pagination) mongo.Pipeline {
	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "video", Value: video}}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$skip", Value: p.Skip()}},
		{{Key: "$limit", Value: p.Limit}},
	}
	projection := bson.D{
		{Key: "_id", Value: 1},
		{Key: "fullName", Value: 1},
		{Key: "username", Value: 1},
		{Key: "avatar", Value: 1},
	}
	return append(pipeline, usermodels.LookupProfile("owner", projection)...)
}

func (s *CommentService) requireVideo(ctx context.Context, video primitive.ObjectID) error {
	ok, err := s.videos.Exists(ctx, video)
	if err != nil {
		return err
	}
	if !ok {
		return ErrVideoNotFound
	}
	return nil
}

// ListForVideo returns a page of comments on video, newest first.
func (s *CommentService) ListForVideo(ctx context.Context, video primitive.ObjectID, p basemodels.Pagination) ([]commentmodels.CommentView, error) {
	if err := s.requireVideo(ctx, video); err != nil {
		return nil, err
	}
	return s.store.AggregateViews(ctx, videoCommentsPipeline(video, p))
}

// Add stores a comment by owner on video.
func (s *CommentService) Add(ctx context.Context, video, owner primitive.ObjectID, content string) (commentmodels.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return commentmodels.Comment{}, common.NewValidationError("Please add a comment", nil)
	}
	if err := s.requireVideo(ctx, video); err != nil {
		return commentmodels.Comment{}, err
	}
	return s.store.InsertOne(ctx, commentmodels.Comment{Content: content, Video: video, Owner: owner})
}

// Update replaces the content of a comment owned by requester.
func (s *CommentService) Update(ctx context.Context, id, requester primitive.ObjectID, content string) (commentmodels.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return commentmodels.Comment{}, common.NewValidationError("Please add a new comment", nil)
	}

	updated, err := s.store.FindOneAndUpdate(ctx,
		bson.M{"_id": id, "owner": requester},
		basesvc.UpdateData{Set: map[string]interface{}{"content": content}},
	)
	if errors.Is(err, common.ErrNotFound) {
		return commentmodels.Comment{}, s.missOrForbidden(ctx, id)
	}
	return updated, err
}

// Delete removes a comment owned by requester.
func (s *CommentService) Delete(ctx context.Context, id, requester primitive.ObjectID) error {
	deleted, err := s.store.DeleteOne(ctx, bson.M{"_id": id, "owner": requester})
	if err != nil {
		return err
	}
	if deleted == 0 {
		return s.missOrForbidden(ctx, id)
	}
	return nil
}

// missOrForbidden explains why an owner-scoped write matched nothing.
func (s *CommentService) missOrForbidden(ctx context.Context, id primitive.ObjectID) error {
	_, err := s.store.FindOneById(ctx, id)
	switch {
	case errors.Is(err, common.ErrNotFound):
		return ErrCommentNotFound
	case err != nil:
		return err
	default:
		return ErrNotOwner
	}
}
