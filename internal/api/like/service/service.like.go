package likesvc

import (
	"context"
	"fmt"

	basesvc "github.com/anurag2169/RiseStream-backend/internal/api/base/service"
	likemodels "github.com/anurag2169/RiseStream-backend/internal/api/like/models"
	videomodels "github.com/anurag2169/RiseStream-backend/internal/api/video/models"
	"github.com/anurag2169/RiseStream-backend/internal/common"
	"github.com/anurag2169/RiseStream-backend/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// LikeStore is the persistence the like service needs.
type LikeStore interface {
	Toggle(ctx context.Context, filter bson.M, data likemodels.Like) (bool, error)
	Aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error
}

// LikeService toggles likes and lists liked videos.
type LikeService struct {
	store LikeStore
}

func NewLikeService() (*LikeService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Likes)
	if !exist {
		return nil, fmt.Errorf("failed to get likes collection: %w", common.ErrNotFound)
	}
	return NewLikeServiceWithStore(basesvc.NewBaseServiceMongo[likemodels.Like](collection)), nil
}

func NewLikeServiceWithStore(store LikeStore) *LikeService {
	return &LikeService{store: store}
}

// toggle removes the user's like on target or adds it. It reports whether
// the like exists afterwards.
func (s *LikeService) toggle(ctx context.Context, target likemodels.Target, id, user primitive.ObjectID) (bool, error) {
	filter := bson.M{string(target): id, "likedBy": user}
	return s.store.Toggle(ctx, filter, likemodels.NewLike(target, id, user))
}

func (s *LikeService) ToggleVideoLike(ctx context.Context, video, user primitive.ObjectID) (bool, error) {
	return s.toggle(ctx, likemodels.TargetVideo, video, user)
}

func (s *LikeService) ToggleCommentLike(ctx context.Context, comment, user primitive.ObjectID) (bool, error) {
	return s.toggle(ctx, likemodels.TargetComment, comment, user)
}

// ToggleTweetLike is not served: tweets have no store yet.
func (s *LikeService) ToggleTweetLike(context.Context, primitive.ObjectID, primitive.ObjectID) (bool, error) {
	return false, common.ErrNotImplemented
}

func likedVideosPipeline(user primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{
			{Key: "likedBy", Value: user},
			{Key: "video", Value: bson.D{{Key: "$exists", Value: true}, {Key: "$ne", Value: nil}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: global.MongoDB_ColNames.Videos},
			{Key: "localField", Value: "video"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "video"},
		}}},
		{{Key: "$unwind", Value: "$video"}},
		{{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$video"}}}},
	}
}

// ListLikedVideos returns the videos user liked, most recent like first.
func (s *LikeService) ListLikedVideos(ctx context.Context, user primitive.ObjectID) ([]videomodels.Video, error) {
	videos := []videomodels.Video{}
	if err := s.store.Aggregate(ctx, likedVideosPipeline(user), &videos); err != nil {
		return nil, err
	}
	return videos, nil
}
