// Package media uploads local media files to external storage.
package media

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/google/uuid"
	ffmpeg "github.com/u2takey/ffmpeg-go"
)

// Kind selects how a file is stored.
type Kind string

const (
	KindVideo Kind = "video"
	KindImage Kind = "image"
)

// Asset is the stored file as reported by the backend.
type Asset struct {
	URL      string
	PublicID string
	Duration float64 // seconds, zero for images
}

// Uploader stores a local file and returns its public location.
type Uploader interface {
	Upload(ctx context.Context, localPath string, kind Kind) (*Asset, error)
}

// DurationProber returns the duration in seconds of a local media file.
type DurationProber func(localPath string) (float64, error)

type probeOutput struct {
	Format struct {
		Duration string `json:"duration"`
	} `json:"format"`
}

// ProbeDuration reads the container duration with ffprobe.
func ProbeDuration(localPath string) (float64, error) {
	out, err := ffmpeg.Probe(localPath)
	if err != nil {
		return 0, fmt.Errorf("ffprobe %s: %w", filepath.Base(localPath), err)
	}
	return parseProbeDuration(out)
}

func parseProbeDuration(out string) (float64, error) {
	var probe probeOutput
	if err := json.Unmarshal([]byte(out), &probe); err != nil {
		return 0, fmt.Errorf("decode ffprobe output: %w", err)
	}
	if probe.Format.Duration == "" {
		return 0, nil
	}
	return strconv.ParseFloat(probe.Format.Duration, 64)
}

// objectID builds a unique key such as videos/<uuid>.
func objectID(kind Kind) string {
	return fmt.Sprintf("%ss/%s", kind, uuid.NewString())
}

// objectName is objectID plus the lowercased file extension.
func objectName(kind Kind, localPath string) string {
	return objectID(kind) + strings.ToLower(filepath.Ext(localPath))
}
