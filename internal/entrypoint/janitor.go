package entrypoint

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/kopeckyd/vocabulaire/internal/config"
)

// uploadJanitor sweeps stale files out of the upload directory on a cron
// schedule. The upload handler removes its own temp files; the janitor
// only covers leftovers from crashed requests.
type uploadJanitor struct {
	cron *cron.Cron
}

func startUploadJanitor(cfg config.Upload) (*uploadJanitor, error) {
	c := cron.New()
	_, err := c.AddFunc(cfg.CleanupSchedule, func() {
		removed := sweepUploads(cfg.Dir, cfg.MaxAge)
		if removed > 0 {
			log.Printf("Upload janitor removed %d stale file(s) from %s", removed, cfg.Dir)
		}
	})
	if err != nil {
		return nil, err
	}

	c.Start()
	log.Printf("Upload janitor scheduled (%s) for %s", cfg.CleanupSchedule, cfg.Dir)
	return &uploadJanitor{cron: c}, nil
}

// Stop waits for a running sweep to finish, bounded by ctx.
func (j *uploadJanitor) Stop(ctx context.Context) {
	select {
	case <-j.cron.Stop().Done():
	case <-ctx.Done():
	}
}

// sweepUploads removes regular files older than maxAge and returns how
// many were deleted. A missing directory is not an error.
func sweepUploads(dir string, maxAge time.Duration) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("Upload janitor could not read %s: %v", dir, err)
		}
		return 0
	}

	cutoff := time.Now().Add(-maxAge)
	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			log.Printf("Upload janitor could not remove %s: %v", entry.Name(), err)
			continue
		}
		removed++
	}
	return removed
}
