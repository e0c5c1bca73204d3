package dictionary

import (
	"context"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits for more changes before rescanning
const DefaultDebounce = 500 * time.Millisecond

// RescanHandler is called after the watcher has rescanned the cache. err is the
// scan error, in which case catalog is the previous one.
type RescanHandler func(catalog *Catalog, err error)

// Watcher rescans a Cache when dictionary or thesaurus files change in one of
// its directories. Changes are debounced so that copying a pair of files
// triggers a single rescan.
type Watcher struct {
	cache    *Cache
	watcher  *fsnotify.Watcher
	handler  RescanHandler
	debounce time.Duration
	logger   *slog.Logger

	stopOnce sync.Once
	done     chan struct{}
}

// NewWatcher creates a watcher for cache. A debounce of zero uses DefaultDebounce.
func NewWatcher(cache *Cache, handler RescanHandler, debounce time.Duration, logger *slog.Logger) (*Watcher, error) {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	if logger == nil {
		logger = slog.Default()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	return &Watcher{
		cache:    cache,
		watcher:  fw,
		handler:  handler,
		debounce: debounce,
		logger:   logger,
		done:     make(chan struct{}),
	}, nil
}

// Start watches every existing candidate directory of the cache and rescans in
// the background until ctx is canceled or Stop is called.
func (w *Watcher) Start(ctx context.Context) error {
	for _, dir := range ScanOrder(w.cache.Candidates()) {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
		w.logger.Debug("watching dictionary directory", "path", dir)
	}

	go w.loop(ctx)
	return nil
}

// Stop ends watching. It is safe to call more than once.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.done)
		w.watcher.Close()
	})
}

func (w *Watcher) loop(ctx context.Context) {
	timer := time.NewTimer(w.debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !isDictionaryFile(event.Name) {
				continue
			}
			if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
				continue
			}
			timer.Reset(w.debounce)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("dictionary watcher error", "err", err)
		case <-timer.C:
			catalog, err := w.cache.Rescan()
			if w.handler != nil {
				w.handler(catalog, err)
			}
		}
	}
}

// isDictionaryFile reports whether name has one of the four pair extensions
func isDictionaryFile(name string) bool {
	switch filepath.Ext(name) {
	case ExtDictionary, ExtAffix, ExtThesaurus, ExtIndex:
		return true
	}
	return false
}
