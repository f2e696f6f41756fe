package content

import (
	"context"
	"errors"
	"fmt"
	"log"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
)

const defaultReloadDebounce = 200 * time.Millisecond

// Store holds the live content document.
type Store struct {
	current atomic.Pointer[Site]
}

// NewStore returns a store serving site.
func NewStore(site *Site) *Store {
	store := &Store{}
	store.current.Store(site)
	return store
}

// Current returns the live document.
func (s *Store) Current() *Site {
	return s.current.Load()
}

// Swap replaces the live document.
func (s *Store) Swap(site *Site) {
	if site == nil {
		return
	}
	s.current.Store(site)
}

// Watcher reloads a content file into a Store when it changes on disk.
// A document that fails to load is logged and the previous one kept.
type Watcher struct {
	path     string
	store    *Store
	logger   *log.Logger
	debounce time.Duration
}

// NewWatcher builds a watcher for path. A nil logger uses the standard one.
func NewWatcher(path string, store *Store, logger *log.Logger) *Watcher {
	if logger == nil {
		logger = log.Default()
	}
	return &Watcher{path: path, store: store, logger: logger, debounce: defaultReloadDebounce}
}

// Run watches until ctx ends. The parent directory is watched so editors
// that save by rename are picked up.
func (w *Watcher) Run(ctx context.Context) error {
	if w.store == nil {
		return errors.New("content store is required")
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create content watcher: %w", err)
	}
	defer fsw.Close()

	target := filepath.Clean(w.path)
	if err := fsw.Add(filepath.Dir(target)); err != nil {
		return fmt.Errorf("watch %s: %w", filepath.Dir(target), err)
	}

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.After(w.debounce)
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Printf("content watcher error path=%s err=%v", target, err)
		case <-pending:
			pending = nil
			w.reload(target)
		}
	}
}

func (w *Watcher) reload(path string) {
	site, err := LoadFile(path)
	if err != nil {
		w.logger.Printf("content reload failed path=%s err=%v", path, err)
		return
	}
	w.store.Swap(site)
	w.logger.Printf("content reloaded path=%s projects=%d", path, len(site.Projects))
}
