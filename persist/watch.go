package persist

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/viant/afs/url"
)

// Watcher reloads the snapshot whenever the snapshot file is written.
type Watcher struct {
	service  *Service
	watcher  *fsnotify.Watcher
	fileName string
}

// NewWatcher starts watching the storage directory of service. Only local
// storage can be watched.
func NewWatcher(ctx context.Context, service *Service) (*Watcher, error) {
	dir := service.StorageURL()
	if scheme := url.Scheme(dir, "file"); scheme != "file" {
		return nil, fmt.Errorf("watch %q: unsupported scheme %q", dir, scheme)
	}
	exists, err := service.fs.Exists(ctx, dir)
	if err != nil {
		return nil, fmt.Errorf("check storage dir %q: %w", dir, err)
	}
	if !exists {
		if err := service.fs.Create(ctx, dir, dirMode, true); err != nil {
			return nil, fmt.Errorf("create storage dir %q: %w", dir, err)
		}
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	localDir := url.Path(dir)
	if err := watcher.Add(localDir); err != nil {
		_ = watcher.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", localDir, err)
	}
	return &Watcher{service: service, watcher: watcher, fileName: service.config.FileName()}, nil
}

// Run loads the snapshot on every write until ctx is done. onLoad receives the
// result of each load and may be nil.
func (w *Watcher) Run(ctx context.Context, onLoad func(Outcome, error)) error {
	defer func() { _ = w.watcher.Close() }()
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != w.fileName {
				continue
			}
			if event.Op&fsnotify.Write == 0 && event.Op&fsnotify.Create == 0 {
				continue
			}
			outcome, err := w.service.Load(ctx)
			if err != nil {
				w.service.logger.Printf("reload %s: %v", event.Name, err)
			}
			if onLoad != nil {
				onLoad(outcome, err)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			w.service.logger.Printf("watcher error: %v", err)
		}
	}
}
