package server

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/wahhaj007/portfolio/internal/page"
)

const defaultDebounce = 250 * time.Millisecond

// Reloader rebuilds the page when the profile file changes on disk. A failed
// rebuild keeps the previous page.
type Reloader struct {
	path     string
	build    func() (*page.Page, error)
	apply    func(*page.Page)
	logger   *zap.Logger
	debounce time.Duration
}

// NewReloader watches path; build constructs a fresh page from it and apply
// installs the result.
func NewReloader(path string, build func() (*page.Page, error), apply func(*page.Page), logger *zap.Logger) *Reloader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Reloader{
		path:     filepath.Clean(path),
		build:    build,
		apply:    apply,
		logger:   logger,
		debounce: defaultDebounce,
	}
}

// Run watches until ctx is cancelled. The parent directory is watched so
// editors that save by rename are picked up.
func (r *Reloader) Run(ctx context.Context) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer w.Close()

	if err := w.Add(filepath.Dir(r.path)); err != nil {
		return fmt.Errorf("watching %s: %w", r.path, err)
	}
	r.logger.Info("Watching profile", zap.String("path", r.path))

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != r.path || ev.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(r.debounce)
			} else {
				timer.Reset(r.debounce)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			r.logger.Warn("Watcher error", zap.Error(err))
		case <-fire:
			fire = nil
			r.reload()
		}
	}
}

func (r *Reloader) reload() {
	pg, err := r.build()
	if err != nil {
		r.logger.Error("Profile reload failed, keeping previous page", zap.Error(err))
		return
	}
	r.apply(pg)
	r.logger.Info("Profile reloaded", zap.String("path", r.path))
}
