package media

import (
	"context"
	"errors"
	"fmt"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

type cloudinaryAPI interface {
	Upload(ctx context.Context, file interface{}, params uploader.UploadParams) (*uploader.UploadResult, error)
}

// CloudinaryUploader stores files in a Cloudinary folder.
type CloudinaryUploader struct {
	api    cloudinaryAPI
	folder string
	probe  DurationProber
}

// NewCloudinaryUploader creates an uploader from a cloudinary:// URL.
func NewCloudinaryUploader(cloudinaryURL, folder string) (*CloudinaryUploader, error) {
	if cloudinaryURL == "" {
		return nil, errors.New("CLOUDINARY_URL is empty")
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("init cloudinary: %w", err)
	}
	return &CloudinaryUploader{api: &cld.Upload, folder: folder, probe: ProbeDuration}, nil
}

func (u *CloudinaryUploader) Upload(ctx context.Context, localPath string, kind Kind) (*Asset, error) {
	var duration float64
	if kind == KindVideo {
		d, err := u.probe(localPath)
		if err != nil {
			return nil, err
		}
		duration = d
	}

	publicID := objectID(kind)
	result, err := u.api.Upload(ctx, localPath, uploader.UploadParams{
		ResourceType: resourceType(kind),
		Folder:       u.folder,
		PublicID:     publicID,
	})
	if err != nil {
		return nil, fmt.Errorf("cloudinary upload: %w", err)
	}
	if result.Error.Message != "" {
		return nil, fmt.Errorf("cloudinary upload: %s", result.Error.Message)
	}

	url := result.SecureURL
	if url == "" {
		url = result.URL
	}
	return &Asset{URL: url, PublicID: result.PublicID, Duration: duration}, nil
}

func resourceType(kind Kind) string {
	if kind == KindVideo {
		return "video"
	}
	return "image"
}
