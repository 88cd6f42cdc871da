package catalog

import (
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// cacheEntry holds one loaded catalog together with its build time.
type cacheEntry struct {
	catalog *Catalog
	built   time.Time
	ttl     time.Duration
}

// expired returns true if this entry has outlived its TTL.
func (e *cacheEntry) expired() bool {
	if e.ttl == 0 {
		return true // no caching
	}
	return time.Since(e.built) > e.ttl
}

// cacheStore holds loaded catalogs keyed by source identifier, with
// singleflight protection so concurrent requests share one load.
type cacheStore struct {
	mu      sync.RWMutex
	entries map[string]*cacheEntry
	sf      singleflight.Group
}

func newCacheStore() *cacheStore {
	return &cacheStore{entries: make(map[string]*cacheEntry)}
}

// getOrLoad returns the cached catalog for key, or runs load exactly once
// across concurrent callers and caches the result for ttl.
func (s *cacheStore) getOrLoad(key string, ttl time.Duration, load func() (*Catalog, error)) (*Catalog, error) {
	if ttl > 0 {
		s.mu.RLock()
		entry, ok := s.entries[key]
		s.mu.RUnlock()
		if ok && !entry.expired() {
			return entry.catalog, nil
		}
	}

	result, err, _ := s.sf.Do(key, func() (any, error) {
		// re-check under singleflight: another caller may have rebuilt it
		s.mu.RLock()
		entry, ok := s.entries[key]
		s.mu.RUnlock()
		if ok && !entry.expired() {
			return entry.catalog, nil
		}

		catalog, err := load()
		if err != nil {
			return nil, err
		}
		if ttl > 0 {
			s.mu.Lock()
			s.entries[key] = &cacheEntry{catalog: catalog, built: time.Now(), ttl: ttl}
			s.mu.Unlock()
		}
		return catalog, nil
	})
	if err != nil {
		return nil, err
	}
	return result.(*Catalog), nil
}

// invalidate drops the cached catalog for key.
func (s *cacheStore) invalidate(key string) {
	s.mu.Lock()
	delete(s.entries, key)
	s.mu.Unlock()
}
