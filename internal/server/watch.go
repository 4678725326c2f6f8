package server

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/toshiksharma271/collab-insight-engine/internal/dataset"
)

// ReloadDelay debounces bursts of file events into one reload.
var ReloadDelay = 300 * time.Millisecond

// Watch reloads the dataset whenever a data file in dir changes. It blocks
// until ctx is cancelled. The directory is created if it does not exist.
func (s *Server) Watch(ctx context.Context, dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "creating data dir %s", dir)
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Wrap(err, "creating file watcher")
	}
	defer w.Close()

	if err := w.Add(dir); err != nil {
		return errors.Wrapf(err, "watching %s", dir)
	}
	s.log.Info("watching data dir", zap.String("dir", dir))

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			s.log.Debug("data file changed",
				zap.String("file", event.Name),
				zap.String("op", event.Op.String()),
			)
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(ReloadDelay, func() {
				_ = s.Reload()
			})

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("file watcher error", zap.Error(err))
		}
	}
}

func relevant(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	return dataset.IsDataFile(filepath.Base(event.Name))
}
