package videosvc

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	basemodels "github.com/anurag2169/RiseStream-backend/internal/api/base/models"
	basesvc "github.com/anurag2169/RiseStream-backend/internal/api/base/service"
	videodto "github.com/anurag2169/RiseStream-backend/internal/api/video/dto"
	videomodels "github.com/anurag2169/RiseStream-backend/internal/api/video/models"
	"github.com/anurag2169/RiseStream-backend/internal/common"
	"github.com/anurag2169/RiseStream-backend/internal/global"
	"github.com/anurag2169/RiseStream-backend/internal/media"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var ErrVideoNotFound = common.NewNotFoundError("Video not found")

// VideoService manages the video catalog.
type VideoService struct {
	store        VideoStore
	uploader     media.Uploader
	storeTimeout time.Duration
}

// NewVideoService binds the service to the registered videos collection.
func NewVideoService(uploader media.Uploader) (*VideoService, error) {
	collection, exist := global.RegistryCollections.Get(global.MongoDB_ColNames.Videos)
	if !exist {
		return nil, fmt.Errorf("failed to get videos collection: %w", common.ErrNotFound)
	}
	store := &mongoVideoStore{BaseServiceMongoImpl: basesvc.NewBaseServiceMongo[videomodels.Video](collection)}
	return NewVideoServiceWithStore(store, uploader), nil
}

// NewVideoServiceWithStore builds a service over any VideoStore.
func NewVideoServiceWithStore(store VideoStore, uploader media.Uploader) *VideoService {
	timeout := 5 * time.Second
	if cfg := global.MongoDB_ServerConfig; cfg != nil {
		timeout = cfg.StoreTimeout()
	}
	return &VideoService{store: store, uploader: uploader, storeTimeout: timeout}
}

// storeContext bounds a store call issued after a long upload.
func (s *VideoService) storeContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.storeTimeout)
}

// ListPublished returns published videos, newest first.
func (s *VideoService) ListPublished(ctx context.Context, p basemodels.Pagination) ([]videomodels.VideoView, error) {
	return s.store.AggregateViews(ctx, publishedPipeline(p))
}

// ListByOwner returns all videos of owner, newest first.
func (s *VideoService) ListByOwner(ctx context.Context, owner primitive.ObjectID, p basemodels.Pagination) ([]videomodels.VideoView, error) {
	return s.store.AggregateViews(ctx, ownerPipeline(owner, p))
}

// GetByID returns one video with its owner profile.
func (s *VideoService) GetByID(ctx context.Context, id primitive.ObjectID) (videomodels.VideoView, error) {
	views, err := s.store.AggregateViews(ctx, byIDPipeline(id))
	if err != nil {
		return videomodels.VideoView{}, err
	}
	if len(views) == 0 {
		return videomodels.VideoView{}, ErrVideoNotFound
	}
	return views[0], nil
}

// Publish uploads both files and stores a published video owned by owner.
// ctx should not carry the store deadline since it also covers the uploads.
func (s *VideoService) Publish(ctx context.Context, owner primitive.ObjectID, input videodto.PublishVideoInput) (videomodels.Video, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" && description == "" {
		return videomodels.Video{}, common.NewValidationError("title and description field is required", nil)
	}
	if input.VideoPath == "" || input.ThumbnailPath == "" {
		return videomodels.Video{}, common.NewValidationError("Video file and Thumbnail are required", nil)
	}

	videoFile, err := s.uploader.Upload(ctx, input.VideoPath, media.KindVideo)
	if err != nil {
		return videomodels.Video{}, common.NewUpstreamError("Something went wrong while uploading the video", err)
	}
	thumbnail, err := s.uploader.Upload(ctx, input.ThumbnailPath, media.KindImage)
	if err != nil {
		return videomodels.Video{}, common.NewUpstreamError("Something went wrong while uploading the thumbnail", err)
	}

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()
	return s.store.InsertOne(storeCtx, videomodels.Video{
		VideoFile:   videoFile.URL,
		Thumbnail:   thumbnail.URL,
		Title:       title,
		Description: description,
		Duration:    videoFile.Duration,
		Views:       0,
		IsPublished: true,
		Owner:       owner,
	})
}

// Update replaces title, description and thumbnail of a video.
func (s *VideoService) Update(ctx context.Context, id primitive.ObjectID, input videodto.UpdateVideoInput) (videomodels.Video, error) {
	title := strings.TrimSpace(input.Title)
	description := strings.TrimSpace(input.Description)
	if title == "" || description == "" {
		return videomodels.Video{}, common.NewValidationError("title and description field is required", nil)
	}
	if input.ThumbnailPath == "" {
		return videomodels.Video{}, common.NewValidationError("Thumbnail is required", nil)
	}
	checkCtx, cancelCheck := s.storeContext(ctx)
	_, err := s.store.FindOneById(checkCtx, id)
	cancelCheck()
	if err != nil {
		return videomodels.Video{}, notFound(err)
	}

	thumbnail, err := s.uploader.Upload(ctx, input.ThumbnailPath, media.KindImage)
	if err != nil {
		return videomodels.Video{}, common.NewUpstreamError("Something went wrong while uploading the thumbnail", err)
	}

	storeCtx, cancel := s.storeContext(ctx)
	defer cancel()
	video, err := s.store.UpdateById(storeCtx, id, basesvc.UpdateData{Set: map[string]interface{}{
		"title":       title,
		"description": description,
		"thumbnail":   thumbnail.URL,
	}})
	return video, notFound(err)
}

// Delete removes a video.
func (s *VideoService) Delete(ctx context.Context, id primitive.ObjectID) error {
	return notFound(s.store.DeleteById(ctx, id))
}

// TogglePublish flips the published flag.
func (s *VideoService) TogglePublish(ctx context.Context, id primitive.ObjectID) (videomodels.Video, error) {
	video, err := s.store.TogglePublished(ctx, id)
	return video, notFound(err)
}

// Exists reports whether a video with id is stored.
func (s *VideoService) Exists(ctx context.Context, id primitive.ObjectID) (bool, error) {
	_, err := s.store.FindOneById(ctx, id)
	if errors.Is(err, common.ErrNotFound) {
		return false, nil
	}
	return err == nil, err
}

func notFound(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return ErrVideoNotFound
	}
	return err
}
