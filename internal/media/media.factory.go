package media

import (
	"context"
	"fmt"

	"github.com/anurag2169/RiseStream-backend/config"
)

// NewUploader builds the backend selected by MEDIA_BACKEND.
func NewUploader(ctx context.Context, cfg *config.Configuration) (Uploader, error) {
	switch cfg.MediaBackend {
	case "", "cloudinary":
		return NewCloudinaryUploader(cfg.CloudinaryURL, cfg.CloudinaryFolder)
	case "minio":
		return NewMinioUploader(ctx, MinioOptions{
			Endpoint:  cfg.MinioEndpoint,
			AccessKey: cfg.MinioAccessKey,
			SecretKey: cfg.MinioSecretKey,
			Bucket:    cfg.MinioBucket,
			UseSSL:    cfg.MinioUseSSL,
			PublicURL: cfg.MinioPublicURL,
		})
	default:
		return nil, fmt.Errorf("unknown MEDIA_BACKEND %q", cfg.MediaBackend)
	}
}
