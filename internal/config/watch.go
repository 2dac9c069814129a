package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/homebase-labs/homebase-core/internal/logger"
)

// Watch reloads the config file on change and invokes onChange with
// the newly resolved configuration. A file that fails to reload keeps
// the previous configuration; the failure is logged, not raised.
// The returned stop function releases the watcher.
func Watch(path string, onChange func(*Config)) (stop func() error, err error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory: editors replace the file on save, which
	// drops a watch held on the file itself.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				cfg, err := Load(path)
				if err != nil {
					logger.Warn("config: reload failed: %v", err)
					continue
				}
				logger.Info("config: reloaded from %s", path)
				onChange(cfg)
			case werr, ok := <-watcher.Errors:
				if !ok {
					return
				}
				logger.Warn("config: watcher error: %v", werr)
			}
		}
	}()

	return watcher.Close, nil
}
