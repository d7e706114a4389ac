// Package querycache provides the filter-keyed client cache of backend
// query results. Entries are bounded by an LRU so long-running sessions
// with many distinct filters do not grow without limit.
package querycache

import (
	"strings"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/taskdeck/taskdeck/internal/domain"
)

// Ensure Store implements domain.QueryCache.
var _ domain.QueryCache = (*Store)(nil)

// DefaultSize bounds the number of live cache entries.
const DefaultSize = 512

// subscriberBuffer is the per-subscriber channel capacity. Sends beyond
// it are dropped; subscribers refetch on the next key they do receive.
const subscriberBuffer = 16

type entry struct {
	value any
	stale bool
}

type subscriber struct {
	prefix string
	ch     chan string
}

// Store is an in-memory query cache. Values are treated as immutable:
// writers replace entries wholesale, never mutate them in place. That
// discipline is what makes Snapshot/Restore an exact rollback.
type Store struct {
	entries *lru.Cache[string, *entry]
	subs    map[int]*subscriber
	nextSub int
	mu      sync.Mutex
}

// New creates a Store bounded to size entries.
func New(size int) (*Store, error) {
	if size <= 0 {
		size = DefaultSize
	}
	entries, err := lru.New[string, *entry](size)
	if err != nil {
		return nil, err
	}
	return &Store{
		entries: entries,
		subs:    make(map[int]*subscriber),
	}, nil
}

// Get returns the cached value for key, if present. Stale entries are
// still returned so reads stay locally responsive while a refetch runs.
func (s *Store) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries.Get(key)
	if !ok {
		return nil, false
	}
	return e.value, true
}

// Put stores a fresh value and clears the stale flag.
func (s *Store) Put(key string, value any) {
	s.mu.Lock()
	s.entries.Add(key, &entry{value: value})
	s.notifyLocked(key)
	s.mu.Unlock()
}

// Keys returns all live keys with the given prefix.
func (s *Store) Keys(prefix string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var keys []string
	for _, k := range s.entries.Keys() {
		if strings.HasPrefix(k, prefix) {
			keys = append(keys, k)
		}
	}
	return keys
}

// Snapshot captures the current value (or absence) of the given keys.
// Peek is used so snapshotting does not disturb LRU recency.
func (s *Store) Snapshot(keys ...string) domain.CacheSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	snap := make(domain.CacheSnapshot, len(keys))
	for _, k := range keys {
		if e, ok := s.entries.Peek(k); ok {
			snap[k] = domain.SnapshotEntry{Value: e.value, Present: true}
		} else {
			snap[k] = domain.SnapshotEntry{Present: false}
		}
	}
	return snap
}

// Restore re-establishes the exact state captured by Snapshot. Entries
// that were absent at snapshot time are removed, not zeroed.
func (s *Store) Restore(snap domain.CacheSnapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, se := range snap {
		if se.Present {
			s.entries.Add(k, &entry{value: se.Value})
		} else {
			s.entries.Remove(k)
		}
		s.notifyLocked(k)
	}
}

// Invalidate marks entries stale. Unknown keys are a no-op, observable
// only on the next read.
func (s *Store) Invalidate(keys ...string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range keys {
		e, ok := s.entries.Peek(k)
		if !ok {
			continue
		}
		e.stale = true
		s.notifyLocked(k)
	}
}

// InvalidatePrefix marks every entry under prefix stale.
func (s *Store) InvalidatePrefix(prefix string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, k := range s.entries.Keys() {
		if !strings.HasPrefix(k, prefix) {
			continue
		}
		if e, ok := s.entries.Peek(k); ok {
			e.stale = true
			s.notifyLocked(k)
		}
	}
}

// IsStale reports whether key needs a refetch. Missing keys are stale.
func (s *Store) IsStale(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries.Peek(key)
	if !ok {
		return true
	}
	return e.stale
}

// Subscribe delivers keys written or invalidated under prefix. Sends are
// non-blocking: a subscriber that is not draining misses notifications
// rather than stalling mutations.
func (s *Store) Subscribe(prefix string) (<-chan string, func()) {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	sub := &subscriber{prefix: prefix, ch: make(chan string, subscriberBuffer)}
	s.subs[id] = sub
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(sub.ch)
		}
		s.mu.Unlock()
	}
	return sub.ch, cancel
}

// notifyLocked fans a key out to matching subscribers. Caller holds s.mu.
func (s *Store) notifyLocked(key string) {
	for _, sub := range s.subs {
		if !strings.HasPrefix(key, sub.prefix) {
			continue
		}
		select {
		case sub.ch <- key:
		default:
		}
	}
}
