package dashboardsvc

import (
	"context"
	"errors"
	"testing"

	"github.com/anurag2169/RiseStream-backend/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type videoRow struct {
	id    primitive.ObjectID
	owner primitive.ObjectID
	views int64
}

// memoryVideos evaluates the totals pipeline over in-memory rows.
type memoryVideos struct {
	rows []videoRow
	err  error
}

func (m *memoryVideos) Aggregate(_ context.Context, p mongo.Pipeline, out interface{}) error {
	if m.err != nil {
		return m.err
	}
	owner := p[0][0].Value.(bson.D)[0].Value.(primitive.ObjectID)
	var t videoTotals
	for _, r := range m.rows {
		if r.owner == owner {
			t.TotalVideos++
			t.TotalViews += r.views
			t.VideoIDs = append(t.VideoIDs, r.id)
		}
	}
	if t.TotalVideos > 0 {
		*out.(*[]videoTotals) = []videoTotals{t}
	}
	return nil
}

type countFunc func(filter bson.M) (int64, error)

func (f countFunc) CountDocuments(_ context.Context, filter interface{}) (int64, error) {
	return f(filter.(bson.M))
}

func TestChannelStats(t *testing.T) {
	owner, other := primitive.NewObjectID(), primitive.NewObjectID()
	v1, v2 := primitive.NewObjectID(), primitive.NewObjectID()
	videos := &memoryVideos{rows: []videoRow{{v1, owner, 10}, {v2, owner, 5}, {primitive.NewObjectID(), other, 99}}}

	var likedIDs []primitive.ObjectID
	likes := countFunc(func(filter bson.M) (int64, error) {
		likedIDs = filter["video"].(bson.M)["$in"].([]primitive.ObjectID)
		return 4, nil
	})
	subs := countFunc(func(filter bson.M) (int64, error) {
		assert.Equal(t, owner, filter["channel"])
		return 3, nil
	})

	stats, err := NewDashboardServiceWithStores(videos, likes, subs).ChannelStats(context.Background(), owner)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalVideos)
	assert.Equal(t, int64(15), stats.TotalViews)
	assert.Equal(t, int64(4), stats.TotalLikes)
	assert.Equal(t, int64(3), stats.TotalSubscribers)
	assert.ElementsMatch(t, []primitive.ObjectID{v1, v2}, likedIDs)
}

func TestChannelStatsWithoutVideos(t *testing.T) {
	likes := countFunc(func(bson.M) (int64, error) {
		t.Fatal("likes should not be counted for an empty channel")
		return 0, nil
	})
	subs := countFunc(func(bson.M) (int64, error) { return 0, nil })

	stats, err := NewDashboardServiceWithStores(&memoryVideos{}, likes, subs).ChannelStats(context.Background(), primitive.NewObjectID())
	require.NoError(t, err)
	assert.Zero(t, stats)
}

func TestChannelStatsPropagatesErrors(t *testing.T) {
	subs := countFunc(func(bson.M) (int64, error) { return 0, nil })
	_, err := NewDashboardServiceWithStores(&memoryVideos{err: common.ErrMongoTimeout}, subs, subs).
		ChannelStats(context.Background(), primitive.NewObjectID())
	assert.True(t, errors.Is(err, common.ErrMongoTimeout))

	failing := countFunc(func(bson.M) (int64, error) { return 0, common.ErrMongoQuery })
	_, err = NewDashboardServiceWithStores(&memoryVideos{}, subs, failing).
		ChannelStats(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, common.ErrMongoQuery)
}

func TestVideoTotalsPipeline(t *testing.T) {
	owner := primitive.NewObjectID()
	p := videoTotalsPipeline(owner)
	require.Len(t, p, 2)
	assert.Equal(t, "$group", p[1][0].Key)
	group := p[1][0].Value.(bson.D).Map()
	assert.Nil(t, group["_id"])
	assert.Equal(t, bson.D{{Key: "$sum", Value: "$views"}}, group["totalViews"])
}
