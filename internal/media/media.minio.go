package media

import (
	"context"
	"fmt"
	"mime"
	"path/filepath"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

type objectPutter interface {
	FPutObject(ctx context.Context, bucketName, objectName, filePath string, opts minio.PutObjectOptions) (minio.UploadInfo, error)
}

// MinioUploader stores files in an S3 compatible bucket.
type MinioUploader struct {
	client    objectPutter
	bucket    string
	publicURL string
	probe     DurationProber
}

// MinioOptions configures NewMinioUploader.
type MinioOptions struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
	PublicURL string // defaults to the endpoint
}

// NewMinioUploader connects to the endpoint and creates the bucket when missing.
func NewMinioUploader(ctx context.Context, opts MinioOptions) (*MinioUploader, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("init minio: %w", err)
	}

	exists, err := client.BucketExists(ctx, opts.Bucket)
	if err != nil {
		return nil, fmt.Errorf("check bucket %s: %w", opts.Bucket, err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, opts.Bucket, minio.MakeBucketOptions{}); err != nil {
			return nil, fmt.Errorf("create bucket %s: %w", opts.Bucket, err)
		}
	}

	publicURL := opts.PublicURL
	if publicURL == "" {
		scheme := "http"
		if opts.UseSSL {
			scheme = "https"
		}
		publicURL = scheme + "://" + opts.Endpoint
	}
	return &MinioUploader{client: client, bucket: opts.Bucket, publicURL: strings.TrimRight(publicURL, "/"), probe: ProbeDuration}, nil
}

func (u *MinioUploader) Upload(ctx context.Context, localPath string, kind Kind) (*Asset, error) {
	var duration float64
	if kind == KindVideo {
		d, err := u.probe(localPath)
		if err != nil {
			return nil, err
		}
		duration = d
	}

	name := objectName(kind, localPath)
	contentType := mime.TypeByExtension(filepath.Ext(localPath))
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	if _, err := u.client.FPutObject(ctx, u.bucket, name, localPath, minio.PutObjectOptions{ContentType: contentType}); err != nil {
		return nil, fmt.Errorf("minio upload: %w", err)
	}

	return &Asset{
		URL:      fmt.Sprintf("%s/%s/%s", u.publicURL, u.bucket, name),
		PublicID: name,
		Duration: duration,
	}, nil
}
