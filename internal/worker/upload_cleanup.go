// Package worker holds background jobs started by the server.
package worker

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/anurag2169/RiseStream-backend/internal/logger"
	"github.com/anurag2169/RiseStream-backend/internal/utility"
)

// UploadCleanupWorker removes temp uploads that outlived their request, for
// example after a crash between saving and removing the file.
type UploadCleanupWorker struct {
	dir      string
	interval time.Duration
	maxAge   time.Duration
	now      func() time.Time
}

// NewUploadCleanupWorker sweeps dir every interval. Defaults are 10 minutes
// and 1 hour.
func NewUploadCleanupWorker(dir string, interval, maxAge time.Duration) *UploadCleanupWorker {
	if interval < time.Minute {
		interval = 10 * time.Minute
	}
	if maxAge < time.Minute {
		maxAge = time.Hour
	}
	return &UploadCleanupWorker{dir: dir, interval: interval, maxAge: maxAge, now: time.Now}
}

// Start runs until ctx is cancelled.
func (w *UploadCleanupWorker) Start(ctx context.Context) {
	log := logger.WithModule("upload_cleanup")

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	log.WithField("interval", w.interval.String()).WithField("maxAge", w.maxAge.String()).Info("Starting upload cleanup worker")
	for {
		select {
		case <-ctx.Done():
			log.Info("Upload cleanup worker stopped")
			return
		case <-ticker.C:
			utility.GoProtect(func() {
				removed, err := w.Sweep()
				if err != nil {
					log.WithError(err).Error("Failed to sweep upload directory")
					return
				}
				if removed > 0 {
					log.WithField("removed", removed).Info("Removed stale uploads")
				}
			})
		}
	}
}

// Sweep deletes regular files in the upload directory older than maxAge and
// returns how many were removed. A missing directory is not an error.
func (w *UploadCleanupWorker) Sweep() (int, error) {
	entries, err := os.ReadDir(w.dir)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	cutoff := w.now().Add(-w.maxAge)
	removed := 0
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(w.dir, entry.Name())); err == nil {
			removed++
		}
	}
	return removed, nil
}
