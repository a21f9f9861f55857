package hotload

import (
	"context"

	"github.com/fsnotify/fsnotify"
)

// runEventLoop processes fsnotify events until ctx is done.
func runEventLoop(ctx context.Context, wc *WatchContext) error {
	defer wc.stopTimer()
	for {
		select {
		case <-ctx.Done():
			wc.logger.Debug().Msg("watcher stopped")
			return nil
		case event, ok := <-wc.watcher.Events:
			if !ok {
				return nil
			}
			if handleEvent(wc, event) {
				wc.armOrResetDebounce()
			}
		case err, ok := <-wc.watcher.Errors:
			if !ok {
				return nil
			}
			wc.logger.Error().Err(err).Msg("watcher error")
		}
	}
}

// handleEvent updates the state cache and reports whether the event is a real change.
func handleEvent(wc *WatchContext, event fsnotify.Event) bool {
	wc.logger.Trace().Str("op", event.Op.String()).Str("name", event.Name).Msg("event")

	if event.Has(fsnotify.Create) {
		if isDir, ok := statDir(event.Name); ok && isDir && wc.config.Recursive && !ignoredDir(event.Name, wc.config.IgnorePatterns) {
			if err := wc.watcher.Add(event.Name); err != nil {
				wc.logger.Warn().Err(err).Str("dir", event.Name).Msg("failed to watch new directory")
			}
			return false
		}
	}
	if ignoredFile(event.Name, wc.config.Filter, wc.config.IgnorePatterns) {
		return false
	}

	wc.mu.Lock()
	defer wc.mu.Unlock()

	old, tracked := wc.cache[event.Name]
	switch {
	case event.Has(fsnotify.Remove), event.Has(fsnotify.Rename):
		if !tracked {
			return false
		}
		delete(wc.cache, event.Name)
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write):
		st, ok := statFile(event.Name)
		if !ok {
			if !tracked {
				return false
			}
			delete(wc.cache, event.Name)
			break
		}
		// editors often truncate before writing; wait for the content
		if st.size == 0 && tracked && old.size > 0 {
			wc.cache[event.Name] = st
			return false
		}
		if tracked && st.hash != "" && st.hash == old.hash {
			return false
		}
		wc.cache[event.Name] = st
	default:
		return false
	}
	wc.changed = append(wc.changed, event.Name)
	return true
}
