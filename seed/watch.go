package seed

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/odvcencio/furry-store/store"
)

// Watch reloads the seed file whenever it is written or replaced and passes
// the result to fn. It watches the parent directory so editors that save by
// rename are seen. Watch blocks until ctx is done or the watcher fails to
// start; reload errors go to fn and do not stop the watch.
func Watch(ctx context.Context, path string, fn func(store.Record, error)) error {
	if fn == nil {
		return nil
	}
	if _, err := FormatOf(path); err != nil {
		return err
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve seed path: %w", err)
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()
	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			fn(Load(abs))
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fn(nil, fmt.Errorf("watch seed: %w", err))
		}
	}
}
