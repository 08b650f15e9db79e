package likesvc

import (
	"context"
	"sync"
	"testing"

	likemodels "github.com/anurag2169/RiseStream-backend/internal/api/like/models"
	videomodels "github.com/anurag2169/RiseStream-backend/internal/api/video/models"
	"github.com/anurag2169/RiseStream-backend/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

// memoryLikeStore keeps rows keyed like the unique indexes.
type memoryLikeStore struct {
	mu     sync.Mutex
	rows   map[string]likemodels.Like
	order  []string
	videos map[primitive.ObjectID]videomodels.Video
}

func newMemoryLikeStore() *memoryLikeStore {
	return &memoryLikeStore{rows: map[string]likemodels.Like{}, videos: map[primitive.ObjectID]videomodels.Video{}}
}

func key(filter bson.M) string {
	for _, target := range []string{"video", "comment", "tweet"} {
		if id, ok := filter[target]; ok {
			return target + ":" + id.(primitive.ObjectID).Hex() + ":" + filter["likedBy"].(primitive.ObjectID).Hex()
		}
	}
	return ""
}

func (m *memoryLikeStore) Toggle(_ context.Context, filter bson.M, data likemodels.Like) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	k := key(filter)
	if _, ok := m.rows[k]; ok {
		delete(m.rows, k)
		return false, nil
	}
	m.rows[k] = data
	m.order = append(m.order, k)
	return true, nil
}

func (m *memoryLikeStore) Aggregate(_ context.Context, p mongo.Pipeline, out interface{}) error {
	match := p[0][0].Value.(bson.D).Map()
	user := match["likedBy"].(primitive.ObjectID)
	videos := out.(*[]videomodels.Video)
	for i := len(m.order) - 1; i >= 0; i-- {
		row, ok := m.rows[m.order[i]]
		if !ok || row.Video == nil || row.LikedBy != user {
			continue
		}
		if v, ok := m.videos[*row.Video]; ok {
			*videos = append(*videos, v)
		}
	}
	return nil
}

func TestToggleVideoLikeRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := newMemoryLikeStore()
	svc := NewLikeServiceWithStore(store)
	user := primitive.NewObjectID()
	video := videomodels.Video{ID: primitive.NewObjectID(), Title: "clip"}
	store.videos[video.ID] = video

	liked, err := svc.ToggleVideoLike(ctx, video.ID, user)
	require.NoError(t, err)
	assert.True(t, liked)

	videos, err := svc.ListLikedVideos(ctx, user)
	require.NoError(t, err)
	require.Len(t, videos, 1)
	assert.Equal(t, video.ID, videos[0].ID)

	liked, err = svc.ToggleVideoLike(ctx, video.ID, user)
	require.NoError(t, err)
	assert.False(t, liked)

	videos, err = svc.ListLikedVideos(ctx, user)
	require.NoError(t, err)
	assert.NotNil(t, videos)
	assert.Empty(t, videos)
}

func TestCommentAndVideoLikesAreIndependent(t *testing.T) {
	ctx := context.Background()
	svc := NewLikeServiceWithStore(newMemoryLikeStore())
	user, id := primitive.NewObjectID(), primitive.NewObjectID()

	liked, err := svc.ToggleVideoLike(ctx, id, user)
	require.NoError(t, err)
	assert.True(t, liked)
	liked, err = svc.ToggleCommentLike(ctx, id, user)
	require.NoError(t, err)
	assert.True(t, liked)
}

func TestToggleTweetLikeNotImplemented(t *testing.T) {
	_, err := NewLikeServiceWithStore(newMemoryLikeStore()).ToggleTweetLike(context.Background(), primitive.NewObjectID(), primitive.NewObjectID())
	assert.ErrorIs(t, err, common.ErrNotImplemented)
	assert.Equal(t, common.StatusNotImplemented, common.AsError(err).StatusCode)
}

func TestLikedVideosPipeline(t *testing.T) {
	user := primitive.NewObjectID()
	p := likedVideosPipeline(user)
	assert.Equal(t, "$match", p[0][0].Key)
	assert.Equal(t, bson.E{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}, p[1][0])
	assert.Equal(t, "$lookup", p[2][0].Key)
	assert.Equal(t, bson.E{Key: "$replaceRoot", Value: bson.D{{Key: "newRoot", Value: "$video"}}}, p[4][0])
}
