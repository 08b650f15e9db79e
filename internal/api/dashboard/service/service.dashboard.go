package dashboardsvc

import (
	"context"
	"fmt"

	basesvc "github.com/anurag2169/RiseStream-backend/internal/api/base/service"
	dashboardmodels "github.com/anurag2169/RiseStream-backend/internal/api/dashboard/models"
	likemodels "github.com/anurag2169/RiseStream-backend/internal/api/like/models"
	submodels "github.com/anurag2169/RiseStream-backend/internal/api/subscription/models"
	videomodels "github.com/anurag2169/RiseStream-backend/internal/api/video/models"
	"github.com/anurag2169/RiseStream-backend/internal/common"
	"github.com/anurag2169/RiseStream-backend/internal/global"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type AggregateStore interface {
	Aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error
}

type CountStore interface {
	CountDocuments(ctx context.Context, filter interface{}) (int64, error)
}

// DashboardService computes channel statistics across the videos, likes
// and subscriptions collections.
type DashboardService struct {
	videos        AggregateStore
	likes         CountStore
	subscriptions CountStore
}

func NewDashboardService() (*DashboardService, error) {
	names := []string{global.MongoDB_ColNames.Videos, global.MongoDB_ColNames.Likes, global.MongoDB_ColNames.Subscriptions}
	cols := make([]*mongo.Collection, 0, len(names))
	for _, name := range names {
		col, exist := global.RegistryCollections.Get(name)
		if !exist {
			return nil, fmt.Errorf("failed to get %s collection: %w", name, common.ErrNotFound)
		}
		cols = append(cols, col)
	}
	return NewDashboardServiceWithStores(
		basesvc.NewBaseServiceMongo[videomodels.Video](cols[0]),
		basesvc.NewBaseServiceMongo[likemodels.Like](cols[1]),
		basesvc.NewBaseServiceMongo[submodels.Subscription](cols[2]),
	), nil
}

func NewDashboardServiceWithStores(videos AggregateStore, likes, subscriptions CountStore) *DashboardService {
	return &DashboardService{videos: videos, likes: likes, subscriptions: subscriptions}
}

type videoTotals struct {
	TotalVideos int64                `bson:"totalVideos"`
	TotalViews  int64                `bson:"totalViews"`
	VideoIDs    []primitive.ObjectID `bson:"videoIds"`
}

func videoTotalsPipeline(owner primitive.ObjectID) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.D{{Key: "owner", Value: owner}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "totalVideos", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "totalViews", Value: bson.D{{Key: "$sum", Value: "$views"}}},
			{Key: "videoIds", Value: bson.D{{Key: "$push", Value: "$_id"}}},
		}}},
	}
}

// ChannelStats returns the totals for the channel owned by owner.
func (s *DashboardService) ChannelStats(ctx context.Context, owner primitive.ObjectID) (dashboardmodels.ChannelStats, error) {
	var stats dashboardmodels.ChannelStats

	rows := []videoTotals{}
	if err := s.videos.Aggregate(ctx, videoTotalsPipeline(owner), &rows); err != nil {
		return stats, err
	}
	if len(rows) > 0 {
		stats.TotalVideos = rows[0].TotalVideos
		stats.TotalViews = rows[0].TotalViews
		if len(rows[0].VideoIDs) > 0 {
			likes, err := s.likes.CountDocuments(ctx, bson.M{"video": bson.M{"$in": rows[0].VideoIDs}})
			if err != nil {
				return stats, err
			}
			stats.TotalLikes = likes
		}
	}

	subscribers, err := s.subscriptions.CountDocuments(ctx, bson.M{"channel": owner})
	if err != nil {
		return stats, err
	}
	stats.TotalSubscribers = subscribers
	return stats, nil
}
