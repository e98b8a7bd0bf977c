package config

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch reloads the given properties file into the store whenever it
// changes on disk. The onChange callback, when non-nil, receives each
// reload's LoadResult; callers wanting already-created loggers to pick up
// the new rules pair it with a registry Reset. The returned stop function
// ends the watch.
//
// The parent directory is watched rather than the file itself so that
// editors which replace the file (rename-over-write) keep triggering.
func (s *Store) Watch(path string, onChange func(LoadResult)) (stop func(), err error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch logging config %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch logging config %s: %w", path, err)
	}
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		watcher.Close()
		return nil, fmt.Errorf("watch logging config %s: %w", path, err)
	}

	done := make(chan struct{})
	go func() {
		for {
			select {
			case event, open := <-watcher.Events:
				if !open {
					return
				}
				if filepath.Clean(event.Name) != abs {
					continue
				}
				if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) {
					continue
				}
				res, err := s.LoadFile(abs)
				if err != nil {
					continue
				}
				if onChange != nil {
					onChange(res)
				}
			case <-watcher.Errors:
				// Watch errors are not the logging path's concern.
			case <-done:
				return
			}
		}
	}()

	return func() {
		close(done)
		watcher.Close()
	}, nil
}
