package videosvc

import (
	"context"
	"errors"
	"testing"

	basemodels "github.com/anurag2169/RiseStream-backend/internal/api/base/models"
	basesvc "github.com/anurag2169/RiseStream-backend/internal/api/base/service"
	videodto "github.com/anurag2169/RiseStream-backend/internal/api/video/dto"
	videomodels "github.com/anurag2169/RiseStream-backend/internal/api/video/models"
	"github.com/anurag2169/RiseStream-backend/internal/common"
	"github.com/anurag2169/RiseStream-backend/internal/media"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type memoryVideoStore struct {
	videos    map[primitive.ObjectID]videomodels.Video
	views     []videomodels.VideoView
	pipelines []mongo.Pipeline
}

func newMemoryVideoStore() *memoryVideoStore {
	return &memoryVideoStore{videos: map[primitive.ObjectID]videomodels.Video{}}
}

func (m *memoryVideoStore) InsertOne(_ context.Context, v videomodels.Video) (videomodels.Video, error) {
	v.ID = primitive.NewObjectID()
	m.videos[v.ID] = v
	return v, nil
}

func (m *memoryVideoStore) FindOneById(_ context.Context, id primitive.ObjectID) (videomodels.Video, error) {
	v, ok := m.videos[id]
	if !ok {
		return v, common.ErrNotFound
	}
	return v, nil
}

func (m *memoryVideoStore) UpdateById(_ context.Context, id primitive.ObjectID, u basesvc.UpdateData) (videomodels.Video, error) {
	v, ok := m.videos[id]
	if !ok {
		return v, common.ErrNotFound
	}
	v.Title = u.Set["title"].(string)
	v.Description = u.Set["description"].(string)
	v.Thumbnail = u.Set["thumbnail"].(string)
	m.videos[id] = v
	return v, nil
}

func (m *memoryVideoStore) DeleteById(_ context.Context, id primitive.ObjectID) error {
	if _, ok := m.videos[id]; !ok {
		return common.ErrNotFound
	}
	delete(m.videos, id)
	return nil
}

func (m *memoryVideoStore) AggregateViews(_ context.Context, p mongo.Pipeline) ([]videomodels.VideoView, error) {
	m.pipelines = append(m.pipelines, p)
	return m.views, nil
}

func (m *memoryVideoStore) TogglePublished(_ context.Context, id primitive.ObjectID) (videomodels.Video, error) {
	v, ok := m.videos[id]
	if !ok {
		return v, common.ErrNotFound
	}
	v.IsPublished = !v.IsPublished
	m.videos[id] = v
	return v, nil
}

type stubUploader struct {
	calls []string
	fail  media.Kind
}

func (u *stubUploader) Upload(_ context.Context, path string, kind media.Kind) (*media.Asset, error) {
	u.calls = append(u.calls, path)
	if kind == u.fail {
		return nil, errors.New("upload refused")
	}
	asset := &media.Asset{URL: "https://cdn.test/" + path}
	if kind == media.KindVideo {
		asset.Duration = 12.5
	}
	return asset, nil
}

func TestPublish(t *testing.T) {
	store := newMemoryVideoStore()
	uploader := &stubUploader{}
	svc := NewVideoServiceWithStore(store, uploader)
	owner := primitive.NewObjectID()

	video, err := svc.Publish(context.Background(), owner, videodto.PublishVideoInput{
		Title:         " First ",
		VideoPath:     "v.mp4",
		ThumbnailPath: "t.png",
	})
	require.NoError(t, err)
	assert.Equal(t, "First", video.Title)
	assert.True(t, video.IsPublished)
	assert.Zero(t, video.Views)
	assert.Equal(t, 12.5, video.Duration)
	assert.Equal(t, owner, video.Owner)
	assert.Equal(t, "https://cdn.test/v.mp4", video.VideoFile)
	assert.Equal(t, "https://cdn.test/t.png", video.Thumbnail)
}

func TestPublishValidatesBeforeUpload(t *testing.T) {
	cases := []struct {
		name  string
		input videodto.PublishVideoInput
	}{
		{"no text", videodto.PublishVideoInput{VideoPath: "v", ThumbnailPath: "t"}},
		{"no video", videodto.PublishVideoInput{Title: "a", ThumbnailPath: "t"}},
		{"no thumbnail", videodto.PublishVideoInput{Description: "a", VideoPath: "v"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := newMemoryVideoStore()
			uploader := &stubUploader{}
			_, err := NewVideoServiceWithStore(store, uploader).Publish(context.Background(), primitive.NewObjectID(), tc.input)
			require.Error(t, err)
			assert.Equal(t, common.StatusBadRequest, common.AsError(err).StatusCode)
			assert.Empty(t, uploader.calls)
			assert.Empty(t, store.videos)
		})
	}
}

func TestPublishUploadFailure(t *testing.T) {
	store := newMemoryVideoStore()
	svc := NewVideoServiceWithStore(store, &stubUploader{fail: media.KindImage})
	_, err := svc.Publish(context.Background(), primitive.NewObjectID(), videodto.PublishVideoInput{
		Title: "a", VideoPath: "v", ThumbnailPath: "t",
	})
	require.Error(t, err)
	assert.Equal(t, common.StatusBadGateway, common.AsError(err).StatusCode)
	assert.Empty(t, store.videos)
}

func TestGetByIDNotFound(t *testing.T) {
	svc := NewVideoServiceWithStore(newMemoryVideoStore(), &stubUploader{})
	_, err := svc.GetByID(context.Background(), primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrVideoNotFound)
	assert.Equal(t, common.StatusNotFound, common.AsError(err).StatusCode)
}

func TestUpdateAndToggle(t *testing.T) {
	store := newMemoryVideoStore()
	uploader := &stubUploader{}
	svc := NewVideoServiceWithStore(store, uploader)
	ctx := context.Background()

	video, err := store.InsertOne(ctx, videomodels.Video{Title: "old", IsPublished: true})
	require.NoError(t, err)

	_, err = svc.Update(ctx, video.ID, videodto.UpdateVideoInput{Title: "new", Description: "d"})
	assert.Equal(t, common.StatusBadRequest, common.AsError(err).StatusCode)

	_, err = svc.Update(ctx, video.ID, videodto.UpdateVideoInput{Title: "   ", Description: "d", ThumbnailPath: "t2.png"})
	require.Error(t, err)
	assert.Equal(t, common.StatusBadRequest, common.AsError(err).StatusCode)
	assert.Equal(t, "title and description field is required", common.AsError(err).Message)
	_, err = svc.Update(ctx, video.ID, videodto.UpdateVideoInput{Title: "new", ThumbnailPath: "t2.png"})
	assert.Equal(t, common.StatusBadRequest, common.AsError(err).StatusCode)
	assert.Empty(t, uploader.calls)

	updated, err := svc.Update(ctx, video.ID, videodto.UpdateVideoInput{Title: "new", Description: "d", ThumbnailPath: "t2.png"})
	require.NoError(t, err)
	assert.Equal(t, "new", updated.Title)
	assert.Equal(t, "https://cdn.test/t2.png", updated.Thumbnail)

	_, err = svc.Update(ctx, primitive.NewObjectID(), videodto.UpdateVideoInput{Title: "x", Description: "y", ThumbnailPath: "t"})
	assert.ErrorIs(t, err, ErrVideoNotFound)

	toggled, err := svc.TogglePublish(ctx, video.ID)
	require.NoError(t, err)
	assert.False(t, toggled.IsPublished)
	toggled, err = svc.TogglePublish(ctx, video.ID)
	require.NoError(t, err)
	assert.True(t, toggled.IsPublished)

	_, err = svc.TogglePublish(ctx, primitive.NewObjectID())
	assert.ErrorIs(t, err, ErrVideoNotFound)

	require.NoError(t, svc.Delete(ctx, video.ID))
	assert.ErrorIs(t, svc.Delete(ctx, video.ID), ErrVideoNotFound)

	exists, err := svc.Exists(ctx, video.ID)
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestPublishedPipelineAppliesPagination(t *testing.T) {
	p := publishedPipeline(basemodels.NewPagination(3, 20))

	assert.Equal(t, bson.E{Key: "$match", Value: bson.D{{Key: "isPublished", Value: true}}}, p[0][0])
	assert.Equal(t, bson.E{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}, p[1][0])
	assert.Equal(t, bson.E{Key: "$skip", Value: int64(40)}, p[2][0])
	assert.Equal(t, bson.E{Key: "$limit", Value: int64(20)}, p[3][0])
	assert.Equal(t, "$lookup", p[4][0].Key)
	assert.Equal(t, bson.E{Key: "$unwind", Value: "$owner"}, p[5][0])
}

func TestOwnerPipelineHasNoPublishFilter(t *testing.T) {
	owner := primitive.NewObjectID()
	p := ownerPipeline(owner, basemodels.NewPagination(1, 10))
	assert.Equal(t, bson.E{Key: "$match", Value: bson.D{{Key: "owner", Value: owner}}}, p[0][0])
	for _, stage := range p {
		if stage[0].Key == "$match" {
			assert.NotContains(t, stage[0].Value.(bson.D).Map(), "isPublished")
		}
	}
}
