package config

import (
	"context"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the settings whenever the underlying file changes and
// invokes onChange after each reload. It blocks until ctx is done, so
// callers run it on its own goroutine. A settings-less editor (no file
// found) returns immediately.
func (s *Settings) Watch(ctx context.Context, onChange func(*Settings)) error {
	path := s.Path()
	if path == "" {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			s.logger.WithField("path", path).Debug("Settings file changed, reloading")
			if err := s.Reload(); err != nil {
				// Editors save non-atomically, so a Write event can land
				// mid-write with unparseable content. The old values are
				// kept and the follow-up event carries the final file.
				continue
			}
			if onChange != nil {
				onChange(s)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.WithError(err).Warn("Settings watcher error")
		}
	}
}
