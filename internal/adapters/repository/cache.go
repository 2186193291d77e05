package repository

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/okian/paddock/pkg/metrics"
)

// Cache is a lazily-initialized, read-only handle to the relational
// store. It loads the tables on first use, republishes only fully-loaded
// snapshots, and reloads when the table files change on disk. Concurrent
// callers share a single in-flight load.
type Cache struct {
	dir   string
	watch bool

	group singleflight.Group

	mu    sync.RWMutex
	store *MemoryStore
	stamp string // table-file fingerprint at load time
}

// CacheOption applies a configuration option to the Cache.
type CacheOption func(*Cache)

// WithModTimeWatch toggles modification-time checks on the data
// directory. When disabled the store loads once per process lifetime
// unless Invalidate is called.
func WithModTimeWatch(enabled bool) CacheOption {
	return func(c *Cache) {
		c.watch = enabled
	}
}

// NewCache creates a cache over the given data directory.
func NewCache(dir string, opts ...CacheOption) *Cache {
	c := &Cache{
		dir:   dir,
		watch: true,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get returns the current store snapshot, loading or reloading it first
// when needed. singleflight guarantees at most one concurrent (re)load;
// readers either get the previous complete snapshot or wait for the new
// one, never a partially-loaded store.
func (c *Cache) Get(ctx context.Context) (*MemoryStore, error) {
	c.mu.RLock()
	store, stamp := c.store, c.stamp
	c.mu.RUnlock()

	if store != nil {
		if !c.watch || stamp == c.fingerprint() {
			return store, nil
		}
	}

	v, err, _ := c.group.Do("load", func() (interface{}, error) {
		// Re-check under the flight: a concurrent caller may have
		// finished the load while this one was queued.
		c.mu.RLock()
		cur, curStamp := c.store, c.stamp
		c.mu.RUnlock()
		next := c.fingerprint()
		if cur != nil && (!c.watch || curStamp == next) {
			return cur, nil
		}

		start := time.Now()
		loaded, err := LoadDir(ctx, c.dir)
		if err != nil {
			return nil, err
		}
		metrics.RecordStoreReload(float64(time.Since(start).Milliseconds()), loaded.Counts(ctx)["results"])

		c.mu.Lock()
		c.store = loaded
		c.stamp = next
		c.mu.Unlock()
		return loaded, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*MemoryStore), nil
}

// Invalidate drops the cached snapshot so the next Get reloads from disk.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.store = nil
	c.stamp = ""
	c.mu.Unlock()
}

// fingerprint summarizes the size and mtime of each table file. Any
// change to a file changes the fingerprint and triggers a reload.
func (c *Cache) fingerprint() string {
	var fp string
	for _, name := range []string{resultsFile, racesFile, driversFile, constructorsFile} {
		info, err := os.Stat(filepath.Join(c.dir, name))
		if err != nil {
			fp += name + ":missing;"
			continue
		}
		fp += fmt.Sprintf("%s:%d:%d;", name, info.Size(), info.ModTime().UnixNano())
	}
	return fp
}
