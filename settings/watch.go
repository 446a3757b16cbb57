package settings

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// WatchDebounce is the quiet period that must pass after a file system event
// before the settings file is reloaded.
const WatchDebounce = 150 * time.Millisecond

// Watch reloads the settings whenever the settings file is changed by
// something other than the store, such as a text editor.
//
// onChange is called with the new settings after each reload that changed
// them. Watch returns once the watch is established; the watch ends when ctx
// is cancelled.
func (store *Store) Watch(ctx context.Context, onChange func(Settings)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dir := filepath.Dir(store.path)
	if err := w.Add(dir); err != nil {
		w.Close()
		return err
	}

	go store.watch(ctx, w, onChange)

	return nil
}

func (store *Store) watch(ctx context.Context, w *fsnotify.Watcher, onChange func(Settings)) {
	defer w.Close()

	var (
		mutex sync.Mutex
		timer *time.Timer
	)

	reload := func() {
		changed, err := store.Reload()
		if err != nil {
			store.log("%v", err)
			return
		}
		if changed && onChange != nil {
			onChange(store.Current())
		}
	}

	defer func() {
		mutex.Lock()
		if timer != nil {
			timer.Stop()
		}
		mutex.Unlock()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.Events:
			if !ok {
				return
			}
			if !store.isSettingsFile(ev.Name) {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			mutex.Lock()
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(WatchDebounce, reload)
			mutex.Unlock()
		case err, ok := <-w.Errors:
			if !ok {
				return
			}
			store.log("Watch error: %v", err)
		}
	}
}

func (store *Store) isSettingsFile(name string) bool {
	return strings.EqualFold(filepath.Clean(name), filepath.Clean(store.path))
}
